package api

import (
	"net/http"
	"strings"

	"pneutrack/backend/internal/models/dtos"
	"pneutrack/backend/internal/services"
)

// LoginHandler handles POST /api/v1/auth/login
func LoginHandler(sessions *services.SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if !bindJSON(w, r, &req) {
			return
		}

		token, session, err := sessions.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		result := dtos.LoginResult{
			Token: token,
			Email: session.Email,
			Name:  session.Name,
			Role:  session.Role.String(),
		}
		respondWithSuccess(w, http.StatusOK, &result)
	}
}

// LogoutHandler handles POST /api/v1/auth/logout
func LogoutHandler(sessions *services.SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			sessions.Logout(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
		}

		msg := "logged out"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}
