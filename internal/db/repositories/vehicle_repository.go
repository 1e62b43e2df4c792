package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	models "pneutrack/backend/internal/models/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.db.WithContext(ctx).First(&v, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("vehicle", id)
		}
		return nil, fmt.Errorf("failed to fetch vehicle: %w", err)
	}
	return &v, nil
}

// List returns all vehicles ordered by plate ascending
func (r *VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vs []models.Vehicle
	if err := r.db.WithContext(ctx).Order("plate asc").Find(&vs).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vs, nil
}

// Delete removes a vehicle and cascades to its axles, positions, history
// entries, authorized services, service orders (with their line items and
// attachments) and vehicle attachments, all in one transaction. Mounted
// tires lose their position row but keep their status.
func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var v models.Vehicle
		if err := tx.First(&v, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("vehicle", id)
			}
			return fmt.Errorf("failed to fetch vehicle: %w", err)
		}

		var orderIDs []uint
		if err := tx.Model(&models.ServiceOrder{}).Where("vehicle_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return fmt.Errorf("failed to collect order ids: %w", err)
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderLineItem{}).Error; err != nil {
				return fmt.Errorf("failed to delete order line items: %w", err)
			}
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.Attachment{}).Error; err != nil {
				return fmt.Errorf("failed to delete order attachments: %w", err)
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&models.ServiceOrder{}).Error; err != nil {
				return fmt.Errorf("failed to delete service orders: %w", err)
			}
		}

		for _, m := range []interface{}{
			&models.TirePosition{},
			&models.Axle{},
			&models.HistoryEntry{},
			&models.AuthorizedService{},
			&models.Attachment{},
		} {
			if err := tx.Where("vehicle_id = ?", id).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to cascade vehicle delete: %w", err)
			}
		}

		if err := tx.Delete(&v).Error; err != nil {
			return fmt.Errorf("failed to delete vehicle: %w", err)
		}
		return nil
	})
}

/* ---------- Axles ---------- */

func (r *VehicleRepository) CreateAxle(ctx context.Context, a *models.Axle) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create axle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetAxle(ctx context.Context, id uint) (*models.Axle, error) {
	var a models.Axle
	err := r.db.WithContext(ctx).First(&a, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("axle", id)
		}
		return nil, fmt.Errorf("failed to fetch axle: %w", err)
	}
	return &a, nil
}

// ListAxles returns a vehicle's axles ordered by order index ascending
func (r *VehicleRepository) ListAxles(ctx context.Context, vehicleID uint) ([]models.Axle, error) {
	var axles []models.Axle
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("order_index asc").
		Find(&axles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list axles: %w", err)
	}
	return axles, nil
}

func (r *VehicleRepository) DeleteAxle(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Axle{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete axle: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("axle", id)
	}
	return nil
}

/* ---------- Positions ---------- */

func (r *VehicleRepository) CreatePosition(ctx context.Context, p *models.TirePosition) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create position: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetPosition(ctx context.Context, id uint) (*models.TirePosition, error) {
	var p models.TirePosition
	err := r.db.WithContext(ctx).Preload("Tire").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("position", id)
		}
		return nil, fmt.Errorf("failed to fetch position: %w", err)
	}
	return &p, nil
}

// ListPositions returns a vehicle's positions in insertion order
func (r *VehicleRepository) ListPositions(ctx context.Context, vehicleID uint) ([]models.TirePosition, error) {
	var ps []models.TirePosition
	err := r.db.WithContext(ctx).
		Preload("Tire").
		Where("vehicle_id = ?", vehicleID).
		Order("id asc").
		Find(&ps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return ps, nil
}
