package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	models "pneutrack/backend/internal/models/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) GetByID(ctx context.Context, id uint) (*models.Inspection, error) {
	var ins models.Inspection
	err := r.db.WithContext(ctx).Preload("Items").First(&ins, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("inspection", id)
		}
		return nil, fmt.Errorf("failed to fetch inspection: %w", err)
	}
	return &ins, nil
}

// ListByVehicle returns a vehicle's inspections newest first
func (r *InspectionRepository) ListByVehicle(ctx context.Context, vehicleID uint) ([]models.Inspection, error) {
	var list []models.Inspection
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("vehicle_id = ?", vehicleID).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return list, nil
}
