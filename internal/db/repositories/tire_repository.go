package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	models "pneutrack/backend/internal/models/gorm"
)

type TireRepository struct {
	db *gorm.DB
}

func NewTireRepository(db *gorm.DB) *TireRepository {
	return &TireRepository{db: db}
}

func (r *TireRepository) Create(ctx context.Context, t *models.Tire) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create tire: %w", err)
	}
	return nil
}

func (r *TireRepository) Update(ctx context.Context, t *models.Tire) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("failed to update tire: %w", err)
	}
	return nil
}

func (r *TireRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Tire{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete tire: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("tire", id)
	}
	return nil
}

func (r *TireRepository) GetByID(ctx context.Context, id uint) (*models.Tire, error) {
	var t models.Tire
	err := r.db.WithContext(ctx).First(&t, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tire", id)
		}
		return nil, fmt.Errorf("failed to fetch tire: %w", err)
	}
	return &t, nil
}

// Search matches the query as a substring of serial number, brand, model or
// size. An empty query returns all tires. Ordered by id descending.
func (r *TireRepository) Search(ctx context.Context, query string) ([]models.Tire, error) {
	q := r.db.WithContext(ctx).Model(&models.Tire{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"serial_number LIKE ? OR brand LIKE ? OR model LIKE ? OR size LIKE ?",
			like, like, like, like,
		)
	}

	var tires []models.Tire
	if err := q.Order("id desc").Find(&tires).Error; err != nil {
		return nil, fmt.Errorf("failed to search tires: %w", err)
	}
	return tires, nil
}

// ListByStatus returns tires with the given status ordered by brand. Used
// to pre-filter the mount form to in-stock tires.
func (r *TireRepository) ListByStatus(ctx context.Context, status constants.TireStatus) ([]models.Tire, error) {
	var tires []models.Tire
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("brand asc").
		Find(&tires).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tires by status: %w", err)
	}
	return tires, nil
}

// FindByBarcode looks a tire up by its exact barcode
func (r *TireRepository) FindByBarcode(ctx context.Context, barcode string) (*models.Tire, error) {
	var t models.Tire
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no tire with barcode %q: %w", barcode, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch tire by barcode: %w", err)
	}
	return &t, nil
}
