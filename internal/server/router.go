// Package server assembles the HTTP router, the middleware chain and the
// gRPC health server.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/tair/favorites-service/internal/auth/delivery/http"
	clienthttp "github.com/tair/favorites-service/internal/client/delivery/http"
	favoritehttp "github.com/tair/favorites-service/internal/favorite/delivery/http"
	producthttp "github.com/tair/favorites-service/internal/product/delivery/http"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/response"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups the delivery handlers mounted on the router.
type Handlers struct {
	Auth     *authhttp.AuthHandler
	Client   *clienthttp.ClientHandler
	Product  *producthttp.ProductHandler
	Favorite *favoritehttp.FavoriteHandler
}

// RouterConfig carries everything NewRouter needs besides the handlers.
type RouterConfig struct {
	Middleware *MiddlewareConfig
	Protect    func(http.HandlerFunc) http.HandlerFunc
	Store      Pinger
	Gatherer   prometheus.Gatherer
	Swagger    http.Handler // optional
}

// NewRouter builds the full HTTP handler, CORS included.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	RegisterMiddlewares(router, cfg.Middleware)

	h.Auth.RegisterRoutes(router)
	h.Client.RegisterRoutes(router, cfg.Protect)
	h.Product.RegisterRoutes(router, cfg.Protect)
	h.Favorite.RegisterRoutes(router, cfg.Protect)

	router.HandleFunc("/health", HealthCheck(cfg.Store)).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	if cfg.Swagger != nil {
		RegisterSwaggerDocs(router, cfg.Swagger)
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, apperror.NotFound(catalog.RouteNotFound))
	})

	return SetupCORS(cfg.Middleware)(router)
}

// HealthCheck handles GET /health
// @Summary Health check
// @Description Check service health and store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 503 {object} response.ErrorEnvelope
// @Router /health [get]
func HealthCheck(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Health check failed")
			response.Error(w, apperror.New(http.StatusServiceUnavailable, catalog.ServiceUnavailable).WithCause(err))
			return
		}
		response.Success(w, http.StatusOK, catalog.ServiceHealthy, map[string]string{"status": "healthy"})
	}
}

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}
