package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	authgate "github.com/tair/favorites-service/internal/auth"
	authhttp "github.com/tair/favorites-service/internal/auth/delivery/http"
	authcommand "github.com/tair/favorites-service/internal/auth/usecase/command"
	clienthttp "github.com/tair/favorites-service/internal/client/delivery/http"
	favoritehttp "github.com/tair/favorites-service/internal/favorite/delivery/http"
	producthttp "github.com/tair/favorites-service/internal/product/delivery/http"
	"github.com/tair/favorites-service/internal/server"
	"github.com/tair/favorites-service/kafka"
	"github.com/tair/favorites-service/pkg/auth"
	"github.com/tair/favorites-service/pkg/config"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/ratelimit"
)

// Protect guards a route with the bearer-token gate.
type Protect func(http.HandlerFunc) http.HandlerFunc

// API is what the HTTP router needs from the assembled service.
type API struct {
	Handlers server.Handlers
	Protect  Protect
}

// NewRegistry returns a registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func ProvideTokenManager(cfg *config.Config) (*auth.TokenManager, error) {
	return auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.TokenTTL())
}

func ProvideOperator(cfg *config.Config) authcommand.Credentials {
	return authcommand.Credentials{Login: cfg.Auth.User, Password: cfg.Auth.Password}
}

func ProvideProtect(tokens *auth.TokenManager) Protect {
	return authhttp.AuthMiddleware(authgate.NewGate(tokens))
}

// ProvideLimiter uses Redis when REDIS_ADDR is set so limits hold across
// replicas; otherwise counts are kept in process.
func ProvideLimiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func()) {
	rl := cfg.RateLimit
	if rl.RedisAddr == "" {
		return ratelimit.NewMemoryLimiter(rl.Limit, rl.Window), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: rl.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", rl.RedisAddr).Msg("Redis unreachable, rate limiter will fail open until it recovers")
	}
	return ratelimit.NewRedisLimiter(client, "favorites:ratelimit:", rl.Limit, rl.Window), func() { _ = client.Close() }
}

// ProvidePublisher returns a nil publisher when Kafka is not configured.
func ProvidePublisher(cfg *config.Config) (kafka.EventPublisher, func(), error) {
	if !cfg.Kafka.Enabled() {
		return nil, func() {}, nil
	}

	p, err := kafka.NewPublisher(cfg.Kafka.Brokers)
	if err != nil {
		return nil, nil, err
	}
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to close Kafka producer")
		}
	}, nil
}

// NewRouter mounts api on a router with the standard middleware chain.
func NewRouter(cfg *config.Config, api *API, store server.Pinger, reg *prometheus.Registry, swagger http.Handler) http.Handler {
	return server.NewRouter(api.Handlers, server.RouterConfig{
		Middleware: server.DefaultMiddlewareConfig(cfg.RequestTimeout),
		Protect:    api.Protect,
		Store:      store,
		Gatherer:   reg,
		Swagger:    swagger,
	})
}

// ProvideHandlers groups the delivery handlers for the router.
func ProvideHandlers(
	a *authhttp.AuthHandler,
	c *clienthttp.ClientHandler,
	p *producthttp.ProductHandler,
	f *favoritehttp.FavoriteHandler,
) server.Handlers {
	return server.Handlers{Auth: a, Client: c, Product: p, Favorite: f}
}

func ProvideAPI(handlers server.Handlers, protect Protect) *API {
	return &API{Handlers: handlers, Protect: protect}
}
