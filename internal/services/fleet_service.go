package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

// FleetService owns vehicles, axles and tire positions, including the
// mount/unmount workflow.
type FleetService struct {
	db          *gorm.DB
	vehicles    *repositories.VehicleRepository
	attachments *repositories.AttachmentRepository
	audit       *AuditService
}

func NewFleetService(db *gorm.DB, vehicles *repositories.VehicleRepository, attachments *repositories.AttachmentRepository, audit *AuditService) *FleetService {
	return &FleetService{db: db, vehicles: vehicles, attachments: attachments, audit: audit}
}

func (s *FleetService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *FleetService) GetVehicle(ctx context.Context, id uint) (*models.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *FleetService) CreateVehicle(ctx context.Context, actor string, req dtos.VehicleRequest) (*models.Vehicle, error) {
	v := models.Vehicle{
		Plate:      req.Plate,
		DriverName: req.DriverName,
		MaxKmAlert: req.MaxKmAlert,
	}
	if v.MaxKmAlert == 0 {
		v.MaxKmAlert = 50000
	}
	if err := s.vehicles.Create(ctx, &v); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityVehicle, v.ID, "plate="+v.Plate)
	return &v, nil
}

func (s *FleetService) UpdateVehicle(ctx context.Context, actor string, id uint, req dtos.VehicleRequest) (*models.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Plate = req.Plate
	v.DriverName = req.DriverName
	if req.MaxKmAlert > 0 {
		v.MaxKmAlert = req.MaxKmAlert
	}
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionEdit, constants.EntityVehicle, v.ID, "plate="+v.Plate)
	return v, nil
}

func (s *FleetService) DeleteVehicle(ctx context.Context, actor string, id uint) error {
	if err := s.vehicles.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, constants.ActionDelete, constants.EntityVehicle, id, "")
	return nil
}

// VehicleDetail assembles the per-vehicle view: axles in display order and
// positions grouped by axle, insertion order preserved inside each group.
// Positions with no axle come last under a nil axle.
func (s *FleetService) VehicleDetail(ctx context.Context, id uint) (*dtos.VehicleDetail, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	axles, err := s.vehicles.ListAxles(ctx, id)
	if err != nil {
		return nil, err
	}
	positions, err := s.vehicles.ListPositions(ctx, id)
	if err != nil {
		return nil, err
	}
	attachments, err := s.attachments.ListForVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	byAxle := make(map[uint][]models.TirePosition)
	var unassigned []models.TirePosition
	for _, p := range positions {
		if p.AxleID == nil {
			unassigned = append(unassigned, p)
			continue
		}
		byAxle[*p.AxleID] = append(byAxle[*p.AxleID], p)
	}

	groups := make([]dtos.PositionGroup, 0, len(axles)+1)
	for i := range axles {
		groups = append(groups, dtos.PositionGroup{
			Axle:      &axles[i],
			Positions: byAxle[axles[i].ID],
		})
	}
	if len(unassigned) > 0 {
		groups = append(groups, dtos.PositionGroup{Positions: unassigned})
	}

	return &dtos.VehicleDetail{
		Vehicle:     *v,
		Axles:       axles,
		Groups:      groups,
		Attachments: attachments,
	}, nil
}

/* ---------- Axles & positions ---------- */

func (s *FleetService) AddAxle(ctx context.Context, actor string, vehicleID uint, req dtos.AxleRequest) (*models.Axle, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	a := models.Axle{VehicleID: vehicleID, Name: req.Name, OrderIndex: req.OrderIndex}
	if err := s.vehicles.CreateAxle(ctx, &a); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityAxle, a.ID, fmt.Sprintf("vehicle=%d", vehicleID))
	return &a, nil
}

func (s *FleetService) DeleteAxle(ctx context.Context, actor string, id uint) error {
	if err := s.vehicles.DeleteAxle(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, constants.ActionDelete, constants.EntityAxle, id, "")
	return nil
}

func (s *FleetService) AddPosition(ctx context.Context, actor string, vehicleID uint, req dtos.PositionRequest) (*models.TirePosition, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}
	p := models.TirePosition{VehicleID: vehicleID, AxleID: req.AxleID, Label: req.Label}
	if err := s.vehicles.CreatePosition(ctx, &p); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityVehicle, vehicleID, "position="+req.Label)
	return &p, nil
}

/* ---------- Mount / unmount ---------- */

// Mount installs an in-stock tire at a position. The whole read-check-write
// runs in one transaction. Fails when the tire is not in stock or is
// already mounted somewhere else.
func (s *FleetService) Mount(ctx context.Context, actor string, positionID, tireID uint) error {
	var auditDetail string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pos models.TirePosition
		if err := tx.First(&pos, positionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("position", positionID)
			}
			return fmt.Errorf("failed to fetch position: %w", err)
		}

		var tire models.Tire
		if err := tx.First(&tire, tireID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("tire", tireID)
			}
			return fmt.Errorf("failed to fetch tire: %w", err)
		}

		if tire.Status != constants.TireInStock {
			return apperrors.NewValidation("tire", fmt.Sprintf("tire %d is %s, only in-stock tires can be mounted", tire.ID, tire.Status))
		}

		// single-slot occupancy: the status check above already rules out a
		// mounted tire, this guards against a stale status
		var occupied int64
		if err := tx.Model(&models.TirePosition{}).Where("tire_id = ?", tire.ID).Count(&occupied).Error; err != nil {
			return fmt.Errorf("failed to check occupancy: %w", err)
		}
		if occupied > 0 {
			return apperrors.NewValidation("tire", fmt.Sprintf("tire %d is already mounted", tire.ID))
		}

		pos.TireID = &tire.ID
		tire.Status = constants.TireActive
		if err := tx.Save(&pos).Error; err != nil {
			return fmt.Errorf("failed to update position: %w", err)
		}
		if err := tx.Save(&tire).Error; err != nil {
			return fmt.Errorf("failed to update tire: %w", err)
		}

		hist := models.HistoryEntry{
			VehicleID: &pos.VehicleID,
			TireID:    &tire.ID,
			Action:    constants.ActionMount,
			Detail:    fmt.Sprintf("position=%s", pos.Label),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}

		auditDetail = fmt.Sprintf("vehicle=%d position=%s", pos.VehicleID, pos.Label)
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(ctx, actor, constants.ActionMount, constants.EntityTire, tireID, auditDetail)
	return nil
}

// Unmount clears a position and returns its tire to stock. A position with
// no mounted tire is a no-op, not an error.
func (s *FleetService) Unmount(ctx context.Context, actor string, positionID uint) error {
	var unmountedTire uint
	var auditDetail string

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pos models.TirePosition
		if err := tx.First(&pos, positionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("position", positionID)
			}
			return fmt.Errorf("failed to fetch position: %w", err)
		}

		if pos.TireID == nil {
			return nil
		}
		tireID := *pos.TireID

		if err := tx.Model(&models.Tire{}).Where("id = ?", tireID).
			Update("status", constants.TireInStock).Error; err != nil {
			return fmt.Errorf("failed to update tire: %w", err)
		}
		if err := tx.Model(&models.TirePosition{}).Where("id = ?", pos.ID).
			Update("tire_id", nil).Error; err != nil {
			return fmt.Errorf("failed to clear position: %w", err)
		}

		hist := models.HistoryEntry{
			VehicleID: &pos.VehicleID,
			TireID:    &tireID,
			Action:    constants.ActionUnmount,
			Detail:    fmt.Sprintf("position=%s", pos.Label),
		}
		if err := tx.Create(&hist).Error; err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}

		unmountedTire = tireID
		auditDetail = fmt.Sprintf("vehicle=%d position=%s", pos.VehicleID, pos.Label)
		return nil
	})
	if err != nil {
		return err
	}

	if unmountedTire != 0 {
		s.audit.Record(ctx, actor, constants.ActionUnmount, constants.EntityTire, unmountedTire, auditDetail)
	}
	return nil
}
