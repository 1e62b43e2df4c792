package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

// OrderService owns service orders with their line items and cost rollup,
// plus manager-authorized services.
type OrderService struct {
	db          *gorm.DB
	orders      *repositories.OrderRepository
	vehicles    *repositories.VehicleRepository
	attachments *repositories.AttachmentRepository
	notifier    *Notifier
	audit       *AuditService
}

func NewOrderService(db *gorm.DB, orders *repositories.OrderRepository, vehicles *repositories.VehicleRepository,
	attachments *repositories.AttachmentRepository, notifier *Notifier, audit *AuditService) *OrderService {
	return &OrderService{db: db, orders: orders, vehicles: vehicles, attachments: attachments, notifier: notifier, audit: audit}
}

func (s *OrderService) List(ctx context.Context) ([]models.ServiceOrder, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*dtos.OrderDetail, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	atts, err := s.attachments.ListForOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dtos.OrderDetail{Order: *o, Attachments: atts}, nil
}

// Create opens a new order and notifies the manager role
func (s *OrderService) Create(ctx context.Context, actor string, req dtos.OrderRequest) (*models.ServiceOrder, error) {
	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	o := models.ServiceOrder{
		VehicleID:   v.ID,
		Description: req.Description,
		Status:      constants.OrderOpen,
		TotalCost:   decimal.Zero,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		msg := fmt.Sprintf("Service order #%d created for vehicle %s", o.ID, v.Plate)
		return s.notifier.Emit(tx, constants.RoleManager, msg, fmt.Sprintf("/orders/%d", o.ID))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityServiceOrder, o.ID, "vehicle="+v.Plate)
	return &o, nil
}

func (s *OrderService) Delete(ctx context.Context, actor string, id uint) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, constants.ActionDelete, constants.EntityServiceOrder, id, "")
	return nil
}

/* ---------- Line items & cost rollup ---------- */

// AddItem appends a line item and recomputes the order total from scratch
func (s *OrderService) AddItem(ctx context.Context, actor string, orderID uint, req dtos.LineItemRequest) (*models.OrderLineItem, error) {
	qty, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return nil, apperrors.NewValidation("quantity", "malformed number "+req.Quantity)
	}
	unit, err := decimal.NewFromString(req.UnitValue)
	if err != nil {
		return nil, apperrors.NewValidation("unit_value", "malformed number "+req.UnitValue)
	}

	item := models.OrderLineItem{
		OrderID:     orderID,
		Description: req.Description,
		Quantity:    qty,
		UnitValue:   unit,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o models.ServiceOrder
		if err := tx.First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("order", orderID)
			}
			return fmt.Errorf("failed to fetch order: %w", err)
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create line item: %w", err)
		}
		return recomputeTotal(tx, orderID)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityOrderLineItem, item.ID, fmt.Sprintf("order=%d", orderID))
	return &item, nil
}

// RemoveItem deletes a line item and recomputes the order total from scratch
func (s *OrderService) RemoveItem(ctx context.Context, actor string, itemID uint) error {
	var orderID uint

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.OrderLineItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("order line item", itemID)
			}
			return fmt.Errorf("failed to fetch line item: %w", err)
		}
		orderID = item.OrderID

		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete line item: %w", err)
		}
		return recomputeTotal(tx, orderID)
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actor, constants.ActionDelete, constants.EntityOrderLineItem, itemID, fmt.Sprintf("order=%d", orderID))
	return nil
}

// recomputeTotal persists the exact sum of the current subtotals. Always a
// full recompute, never an incremental update, so the total cannot drift.
func recomputeTotal(tx *gorm.DB, orderID uint) error {
	var items []models.OrderLineItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return fmt.Errorf("failed to load line items: %w", err)
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}

	if err := tx.Model(&models.ServiceOrder{}).Where("id = ?", orderID).
		Update("total_cost", total).Error; err != nil {
		return fmt.Errorf("failed to persist order total: %w", err)
	}
	return nil
}

/* ---------- Status ---------- */

// SetStatus writes a caller-supplied status. Any enumerated value is
// accepted in any order, unknown values are rejected. The technician role
// is notified.
func (s *OrderService) SetStatus(ctx context.Context, actor string, orderID uint, status string) (*models.ServiceOrder, error) {
	newStatus := constants.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidation("status", "unknown order status "+status)
	}

	var o models.ServiceOrder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("order", orderID)
			}
			return fmt.Errorf("failed to fetch order: %w", err)
		}

		var v models.Vehicle
		if err := tx.First(&v, o.VehicleID).Error; err != nil {
			return fmt.Errorf("failed to fetch vehicle: %w", err)
		}

		o.Status = newStatus
		if err := tx.Save(&o).Error; err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}

		msg := fmt.Sprintf("Service order #%d for vehicle %s updated to %s", o.ID, v.Plate, newStatus)
		return s.notifier.Emit(tx, constants.RoleTechnician, msg, fmt.Sprintf("/orders/%d", o.ID))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionChangeStatus, constants.EntityServiceOrder, o.ID, "status="+status)
	return &o, nil
}

/* ---------- Authorized services ---------- */

func (s *OrderService) ListAuthorizedServices(ctx context.Context) ([]models.AuthorizedService, error) {
	return s.orders.ListAuthorizedServices(ctx)
}

// TechnicianQueue gathers the work waiting on the technician: services still
// in authorized state and orders still open.
func (s *OrderService) TechnicianQueue(ctx context.Context) (*dtos.TechnicianQueue, error) {
	pending, err := s.orders.ListAuthorizedServicesByStatus(ctx, constants.ServiceAuthorized)
	if err != nil {
		return nil, err
	}
	open, err := s.orders.ListOrdersByStatus(ctx, constants.OrderOpen)
	if err != nil {
		return nil, err
	}
	return &dtos.TechnicianQueue{PendingServices: pending, OpenOrders: open}, nil
}

// Authorize creates an AuthorizedService and notifies the technician role
func (s *OrderService) Authorize(ctx context.Context, actor string, req dtos.AuthorizeServiceRequest) (*models.AuthorizedService, error) {
	v, err := s.vehicles.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	svc := models.AuthorizedService{
		VehicleID:   v.ID,
		Description: req.Description,
		Status:      constants.ServiceAuthorized,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&svc).Error; err != nil {
			return fmt.Errorf("failed to create authorized service: %w", err)
		}
		msg := fmt.Sprintf("Service authorized for vehicle %s", v.Plate)
		return s.notifier.Emit(tx, constants.RoleTechnician, msg, "/authorized-services")
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionAuthorize, constants.EntityAuthorizedService, svc.ID, "vehicle="+v.Plate)
	return &svc, nil
}

// SetAuthorizedServiceStatus completes or cancels a service. Only services
// still in authorized state can move.
func (s *OrderService) SetAuthorizedServiceStatus(ctx context.Context, actor string, id uint, status string) (*models.AuthorizedService, error) {
	newStatus := constants.ServiceStatus(status)
	if !newStatus.IsValid() {
		return nil, apperrors.NewValidation("status", "unknown service status "+status)
	}

	svc, err := s.orders.GetAuthorizedService(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.Status != constants.ServiceAuthorized && svc.Status != newStatus {
		return nil, apperrors.NewValidation("status", fmt.Sprintf("service %d is already %s", id, svc.Status))
	}

	svc.Status = newStatus
	if err := s.db.WithContext(ctx).Save(svc).Error; err != nil {
		return nil, fmt.Errorf("failed to update service status: %w", err)
	}

	s.audit.Record(ctx, actor, constants.ActionChangeStatus, constants.EntityAuthorizedService, svc.ID, "status="+status)
	return svc, nil
}
