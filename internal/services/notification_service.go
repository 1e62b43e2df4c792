package services

import (
	"context"
	"fmt"
	"time"

	"pneutrack/backend/internal/cache"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	models "pneutrack/backend/internal/models/gorm"
)

const unreadCountTTL = 30 * time.Second

// NotificationService is the read side of the notification feed. The feed
// is filtered by the requesting user's role, newest first. Unread counts
// are cached briefly since every page render asks for them.
type NotificationService struct {
	notifications *repositories.NotificationRepository
	cache         cache.CacheInterface
}

func NewNotificationService(notifications *repositories.NotificationRepository, c cache.CacheInterface) *NotificationService {
	return &NotificationService{notifications: notifications, cache: c}
}

// Feed lists the notifications targeted at the caller's role
func (s *NotificationService) Feed(ctx context.Context, role constants.Role) ([]models.Notification, error) {
	return s.notifications.ListForRole(ctx, role)
}

// MarkRead flips the read flag and drops the cached unread count
func (s *NotificationService) MarkRead(ctx context.Context, role constants.Role, id uint) error {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(unreadKey(role))
	return nil
}

// UnreadCount returns the role's unread total, cached for a short window
func (s *NotificationService) UnreadCount(ctx context.Context, role constants.Role) (int64, error) {
	if val, found := s.cache.Get(unreadKey(role)); found {
		if count, ok := val.(int64); ok {
			return count, nil
		}
	}

	count, err := s.notifications.UnreadCount(ctx, role)
	if err != nil {
		return 0, err
	}
	s.cache.Set(unreadKey(role), count, unreadCountTTL)
	return count, nil
}

func unreadKey(role constants.Role) string {
	return fmt.Sprintf("notifications:unread:%s", role)
}
