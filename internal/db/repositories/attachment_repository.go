package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	models "pneutrack/backend/internal/models/gorm"
)

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *models.Attachment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create attachment: %w", err)
	}
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*models.Attachment, error) {
	var a models.Attachment
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("attachment", id)
		}
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	return &a, nil
}

// GetByStoredName resolves a stored filename back to its attachment record
func (r *AttachmentRepository) GetByStoredName(ctx context.Context, filename string) (*models.Attachment, error) {
	var a models.Attachment
	err := r.db.WithContext(ctx).Where("filename = ?", filename).First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("attachment %q: %w", filename, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	return &a, nil
}

// ListForOrder returns an order's attachments in upload order
func (r *AttachmentRepository) ListForOrder(ctx context.Context, orderID uint) ([]models.Attachment, error) {
	var list []models.Attachment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list order attachments: %w", err)
	}
	return list, nil
}

// ListForVehicle returns a vehicle's attachments in upload order
func (r *AttachmentRepository) ListForVehicle(ctx context.Context, vehicleID uint) ([]models.Attachment, error) {
	var list []models.Attachment
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("id asc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle attachments: %w", err)
	}
	return list, nil
}
