package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/georgemunganga/users-api/internal/httpx"
)

const bearerPrefix = "bearer "

type ctxKey struct{}

// RequireAuth rejects requests without a valid bearer token and stores the
// token subject in the request context.
func RequireAuth(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				httpx.WriteError(w, http.StatusUnauthorized, "Missing bearer token")
				return
			}

			subject, err := service.VerifyToken(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized request")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// subjectFromContext returns the authenticated user id, if any.
func subjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(ctxKey{}).(string)
	return subject, ok
}
