package middleware

import (
	"net/http"
	"strings"

	authctx "pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/services"
)

// AuthMiddleware resolves the Bearer token into session claims and puts
// them on the request context. Requests without a valid session are
// rejected.
func AuthMiddleware(sessions *services.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := sessions.Resolve(r.Context(), token)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
				return
			}

			ctx := authctx.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
