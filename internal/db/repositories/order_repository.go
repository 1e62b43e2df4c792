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

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *models.ServiceOrder) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*models.ServiceOrder, error) {
	var o models.ServiceOrder
	err := r.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order", id)
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &o, nil
}

// List returns all orders newest first
func (r *OrderRepository) List(ctx context.Context) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Delete removes an order together with its line items and attachments
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.ServiceOrder
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("order", id)
			}
			return fmt.Errorf("failed to fetch order: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLineItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete line items: %w", err)
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
			return fmt.Errorf("failed to delete order attachments: %w", err)
		}
		if err := tx.Delete(&o).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}

func (r *OrderRepository) GetItem(ctx context.Context, id uint) (*models.OrderLineItem, error) {
	var it models.OrderLineItem
	err := r.db.WithContext(ctx).First(&it, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("order line item", id)
		}
		return nil, fmt.Errorf("failed to fetch line item: %w", err)
	}
	return &it, nil
}

/* ---------- Authorized services ---------- */

func (r *OrderRepository) CreateAuthorizedService(ctx context.Context, s *models.AuthorizedService) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create authorized service: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetAuthorizedService(ctx context.Context, id uint) (*models.AuthorizedService, error) {
	var s models.AuthorizedService
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("authorized service", id)
		}
		return nil, fmt.Errorf("failed to fetch authorized service: %w", err)
	}
	return &s, nil
}

// ListAuthorizedServices returns all authorized services newest first
func (r *OrderRepository) ListAuthorizedServices(ctx context.Context) ([]models.AuthorizedService, error) {
	var list []models.AuthorizedService
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list authorized services: %w", err)
	}
	return list, nil
}

// ListOrdersByStatus returns orders in the given status, newest first
func (r *OrderRepository) ListOrdersByStatus(ctx context.Context, status constants.OrderStatus) ([]models.ServiceOrder, error) {
	var orders []models.ServiceOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("status = ?", status).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by status: %w", err)
	}
	return orders, nil
}

// ListAuthorizedServicesByStatus returns services in the given status, newest first
func (r *OrderRepository) ListAuthorizedServicesByStatus(ctx context.Context, status constants.ServiceStatus) ([]models.AuthorizedService, error) {
	var list []models.AuthorizedService
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list authorized services by status: %w", err)
	}
	return list, nil
}
