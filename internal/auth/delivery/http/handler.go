package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tair/favorites-service/internal/auth/usecase/command"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/metrics"
	"github.com/tair/favorites-service/pkg/ratelimit"
	"github.com/tair/favorites-service/pkg/response"
	"github.com/tair/favorites-service/pkg/validation"
)

// AuthHandler serves the login routes.
type AuthHandler struct {
	loginHandler *command.LoginHandler
	validator    *validation.Validator
	limiter      ratelimit.Limiter
	metrics      *metrics.HTTPMetrics
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	loginHandler *command.LoginHandler,
	validator *validation.Validator,
	limiter ratelimit.Limiter,
	reg prometheus.Registerer,
) *AuthHandler {
	return &AuthHandler{
		loginHandler: loginHandler,
		validator:    validator,
		limiter:      limiter,
		metrics:      metrics.NewHTTPMetrics(reg, "auth_service"),
	}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	login := ratelimit.Middleware(h.limiter, "login")(http.HandlerFunc(h.Login))
	for _, path := range []string{"/auth/login", "/user/login"} {
		router.HandleFunc(path, h.metrics.Wrap(path, login.ServeHTTP)).Methods(http.MethodPost)
	}
}

// Login handles POST /auth/login and POST /user/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	doc, body, err := response.DecodeBody(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.validator.Validate(validation.AuthLogin, doc); err != nil {
		response.Error(w, err)
		return
	}

	var req struct {
		Username string `json:"username"`
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := response.Unmarshal(body, &req); err != nil {
		response.Error(w, err)
		return
	}
	login := req.Username
	if login == "" {
		login = req.Login
	}

	result, err := h.loginHandler.Handle(ctx, command.LoginCommand{Login: login, Password: req.Password})
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("login", login).
			Str("client_ip", ratelimit.ClientIP(r)).
			Msg("Login failed")
		response.Error(w, err)
		return
	}

	logger.Info(ctx).Str("login", login).Msg("Login succeeded")
	response.JSON(w, http.StatusOK, result)
}
