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

// InspectionService owns the checklist lifecycle:
// open -> sent -> approved | rejected.
type InspectionService struct {
	db          *gorm.DB
	inspections *repositories.InspectionRepository
	vehicles    *repositories.VehicleRepository
	notifier    *Notifier
	audit       *AuditService
}

func NewInspectionService(db *gorm.DB, inspections *repositories.InspectionRepository,
	vehicles *repositories.VehicleRepository, notifier *Notifier, audit *AuditService) *InspectionService {
	return &InspectionService{db: db, inspections: inspections, vehicles: vehicles, notifier: notifier, audit: audit}
}

func (s *InspectionService) Get(ctx context.Context, id uint) (*models.Inspection, error) {
	return s.inspections.GetByID(ctx, id)
}

func (s *InspectionService) ListByVehicle(ctx context.Context, vehicleID uint) ([]models.Inspection, error) {
	return s.inspections.ListByVehicle(ctx, vehicleID)
}

// Create opens an inspection seeded with the fixed default checklist,
// every item starting as not-ok
func (s *InspectionService) Create(ctx context.Context, actor string, vehicleID uint) (*models.Inspection, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	ins := models.Inspection{
		VehicleID: vehicleID,
		Status:    constants.InspectionOpen,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ins).Error; err != nil {
			return fmt.Errorf("failed to create inspection: %w", err)
		}
		for _, title := range constants.DefaultChecklist {
			item := models.InspectionChecklistItem{
				InspectionID: ins.ID,
				Title:        title,
				OK:           false,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to seed checklist item: %w", err)
			}
			ins.Items = append(ins.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityInspection, ins.ID, fmt.Sprintf("vehicle=%d", vehicleID))
	return &ins, nil
}

// SubmitChecklist writes pass/fail flags and notes from the form. The
// inspection status is untouched at this step.
func (s *InspectionService) SubmitChecklist(ctx context.Context, actor string, inspectionID uint, sub dtos.ChecklistSubmission) (*models.Inspection, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ins models.Inspection
		if err := tx.First(&ins, inspectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("inspection", inspectionID)
			}
			return fmt.Errorf("failed to fetch inspection: %w", err)
		}

		for _, upd := range sub.Items {
			res := tx.Model(&models.InspectionChecklistItem{}).
				Where("id = ? AND inspection_id = ?", upd.ID, inspectionID).
				Updates(map[string]interface{}{"ok": upd.OK, "note": upd.Note})
			if res.Error != nil {
				return fmt.Errorf("failed to update checklist item: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return apperrors.NotFound("checklist item", upd.ID)
			}
		}

		ins.Notes = sub.Notes
		if err := tx.Save(&ins).Error; err != nil {
			return fmt.Errorf("failed to save inspection notes: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionEdit, constants.EntityInspection, inspectionID, "checklist saved")
	return s.inspections.GetByID(ctx, inspectionID)
}

// Send hands an open inspection to the manager for approval
func (s *InspectionService) Send(ctx context.Context, actor string, inspectionID uint) (*models.Inspection, error) {
	var ins models.Inspection

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ins, inspectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("inspection", inspectionID)
			}
			return fmt.Errorf("failed to fetch inspection: %w", err)
		}
		if ins.Status != constants.InspectionOpen {
			return apperrors.NewValidation("status", fmt.Sprintf("inspection %d is %s, only open inspections can be sent", ins.ID, ins.Status))
		}

		var v models.Vehicle
		if err := tx.First(&v, ins.VehicleID).Error; err != nil {
			return fmt.Errorf("failed to fetch vehicle: %w", err)
		}

		ins.Status = constants.InspectionSent
		if err := tx.Save(&ins).Error; err != nil {
			return fmt.Errorf("failed to update inspection: %w", err)
		}

		msg := fmt.Sprintf("Checklist sent for vehicle %s", v.Plate)
		return s.notifier.Emit(tx, constants.RoleManager, msg, fmt.Sprintf("/inspections/%d", ins.ID))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionSend, constants.EntityInspection, ins.ID, "")
	return &ins, nil
}

// Resolve lets the manager approve or reject a sent inspection and
// notifies the technician role
func (s *InspectionService) Resolve(ctx context.Context, actor string, inspectionID uint, status string) (*models.Inspection, error) {
	newStatus := constants.InspectionStatus(status)
	if newStatus != constants.InspectionApproved && newStatus != constants.InspectionRejected {
		return nil, apperrors.NewValidation("status", "inspection can only be approved or rejected, got "+status)
	}

	var ins models.Inspection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ins, inspectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("inspection", inspectionID)
			}
			return fmt.Errorf("failed to fetch inspection: %w", err)
		}
		if ins.Status != constants.InspectionSent {
			return apperrors.NewValidation("status", fmt.Sprintf("inspection %d is %s, only sent inspections can be resolved", ins.ID, ins.Status))
		}

		var v models.Vehicle
		if err := tx.First(&v, ins.VehicleID).Error; err != nil {
			return fmt.Errorf("failed to fetch vehicle: %w", err)
		}

		ins.Status = newStatus
		if err := tx.Save(&ins).Error; err != nil {
			return fmt.Errorf("failed to update inspection: %w", err)
		}

		msg := fmt.Sprintf("Inspection for vehicle %s was %s", v.Plate, newStatus)
		return s.notifier.Emit(tx, constants.RoleTechnician, msg, fmt.Sprintf("/inspections/%d", ins.ID))
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionChangeStatus, constants.EntityInspection, ins.ID, "status="+status)
	return &ins, nil
}
