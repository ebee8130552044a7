package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
)

// RateLimit applies a global token-bucket limit to the API. One shared
// bucket is enough for a single front desk; there is no per-client keying.
func RateLimit(rps float64, burst int, logger Logger) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("%s %s - Rate limit exceeded", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
