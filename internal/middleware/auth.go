package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jbweber/homelab/campus/internal/auth"
)

// Authenticate verifies an "Authorization: Bearer" token and attaches the
// principal to the request context. Requests without a valid token continue
// anonymously; role checks happen per route.
func Authenticate(secret string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			principal, err := auth.ParseToken(secret, strings.TrimSpace(raw))
			if err != nil {
				logger.DebugContext(r.Context(), "rejected bearer token",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.Any("error", err),
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.ContextWithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole rejects callers lacking role with 403 and an empty body
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.PrincipalFromContext(r.Context()).HasRole(role) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
