package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	models "pneutrack/backend/internal/models/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// ListForRole returns notifications targeted at the given role, newest first
func (r *NotificationRepository) ListForRole(ctx context.Context, role constants.Role) ([]models.Notification, error) {
	var notes []models.Notification
	err := r.db.WithContext(ctx).
		Where("target_role = ?", role).
		Order("created_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notes, nil
}

// MarkRead flips the read flag on a single notification
func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("notification", id)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a role
func (r *NotificationRepository) UnreadCount(ctx context.Context, role constants.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("target_role = ? AND read = ?", role, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
