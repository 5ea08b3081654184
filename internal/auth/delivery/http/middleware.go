package http

import (
	"net/http"

	"github.com/tair/favorites-service/internal/auth"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/response"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(gate *auth.Gate) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, err := gate.Authenticate(r.Header.Get("Authorization")); err != nil {
				logger.Warn(r.Context()).
					Err(err).
					Str("path", r.URL.Path).
					Msg("Request rejected by access gate")
				response.Error(w, err)
				return
			}

			next(w, r)
		}
	}
}

