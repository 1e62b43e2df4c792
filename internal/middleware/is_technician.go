package middleware

import (
	"net/http"

	authctx "pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/constants"
)

func IsTechnicianMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := authctx.GetUserClaims(r.Context())

			if claims != nil && claims.Role() == constants.RoleTechnician {
				next.ServeHTTP(w, r)
				return
			}
			http.Error(w, "Unauthorized. Need technician perms", http.StatusForbidden)
		})
	}
}
