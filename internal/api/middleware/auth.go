// Package middleware holds the HTTP middleware chain: staff identification,
// request metrics and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hopes-corner/HC-OpsService/internal/api/handlers"
)

// StaffIDHeader carries the acting staff member's id. It identifies who did
// what in the action log; it is not authentication.
const StaffIDHeader = "X-Staff-ID"

type staffIDKey struct{}

// Logger narrow logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// StaffIDFromContext returns the staff id attached by RequireStaff
func StaffIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(staffIDKey{}).(int64)
	return id, ok
}

// RequireStaff rejects mutating requests without a valid staff header and
// attaches the staff id to the request context.
func RequireStaff(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(StaffIDHeader)
			if raw == "" {
				logger.Warn("%s %s - Missing %s header", r.Method, r.URL.Path, StaffIDHeader)
				handlers.RespondForbidden(w, "staff identification required")
				return
			}

			staffID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || staffID <= 0 {
				logger.Warn("%s %s - Invalid %s header %q", r.Method, r.URL.Path, StaffIDHeader, raw)
				handlers.RespondForbidden(w, "invalid staff id")
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
