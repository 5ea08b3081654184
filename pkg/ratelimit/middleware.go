package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/logger"
	"github.com/tair/favorites-service/pkg/response"
)

// ClientIP returns the first X-Forwarded-For hop, or the remote address host.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware limits requests per client IP under scope. Limiter failures
// let the request through.
func Middleware(limiter Limiter, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			identifier := scope + ":" + ClientIP(r)

			result, err := limiter.Allow(ctx, identifier)
			if err != nil {
				logger.Error(ctx).
					Err(err).
					Str("identifier", identifier).
					Msg("Rate limiter error")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				retry := result.RetryAfterSeconds(time.Now())
				logger.Warn(ctx).
					Str("identifier", identifier).
					Int("limit", result.Limit).
					Msg("Rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				response.Error(w, apperror.TooManyRequests(retry))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
