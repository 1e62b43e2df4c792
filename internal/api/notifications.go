package api

import (
	"net/http"

	authctx "pneutrack/backend/internal/auth"
	"pneutrack/backend/internal/services"
)

// NotificationFeedHandler handles GET /api/v1/notifications.
// The feed is scoped to the caller's role.
func NotificationFeedHandler(notifications *services.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := authctx.GetUserClaims(r.Context())

		feed, err := notifications.Feed(r.Context(), claims.Role())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &feed)
	}
}

// MarkNotificationReadHandler handles PUT /api/v1/notifications/{notification_id}/read
func MarkNotificationReadHandler(notifications *services.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "notification_id")
		if !ok {
			return
		}
		claims := authctx.GetUserClaims(r.Context())

		if err := notifications.MarkRead(r.Context(), claims.Role(), id); err != nil {
			respondWithServiceError(w, err)
			return
		}
		msg := "marked read"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// UnreadCountHandler handles GET /api/v1/notifications/unread-count
func UnreadCountHandler(notifications *services.NotificationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := authctx.GetUserClaims(r.Context())

		count, err := notifications.UnreadCount(r.Context(), claims.Role())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &count)
	}
}
