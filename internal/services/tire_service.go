package services

import (
	"context"
	"strings"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

// TireService owns the tire inventory: CRUD, search and the barcode tool.
type TireService struct {
	tires *repositories.TireRepository
	audit *AuditService
}

func NewTireService(tires *repositories.TireRepository, audit *AuditService) *TireService {
	return &TireService{tires: tires, audit: audit}
}

func (s *TireService) Get(ctx context.Context, id uint) (*models.Tire, error) {
	return s.tires.GetByID(ctx, id)
}

// Search runs the substring query over serial/brand/model/size; empty query
// lists everything
func (s *TireService) Search(ctx context.Context, query string) ([]models.Tire, error) {
	return s.tires.Search(ctx, strings.TrimSpace(query))
}

// InStock lists the tires offered on the mount form
func (s *TireService) InStock(ctx context.Context) ([]models.Tire, error) {
	return s.tires.ListByStatus(ctx, constants.TireInStock)
}

func (s *TireService) Create(ctx context.Context, actor string, req dtos.TireRequest) (*models.Tire, error) {
	status := constants.TireStatus(req.Status)
	if req.Status == "" {
		status = constants.TireInStock
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidation("status", "unknown tire status "+req.Status)
	}

	t := models.Tire{
		FireNumber:   req.FireNumber,
		SerialNumber: req.SerialNumber,
		Brand:        req.Brand,
		Model:        req.Model,
		Size:         req.Size,
		Status:       status,
		Pressure:     req.Pressure,
		TreadDepth:   req.TreadDepth,
	}
	if err := s.tires.Create(ctx, &t); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityTire, t.ID, "serial="+t.SerialNumber)
	return &t, nil
}

func (s *TireService) Update(ctx context.Context, actor string, id uint, req dtos.TireRequest) (*models.Tire, error) {
	t, err := s.tires.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status := constants.TireStatus(req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidation("status", "unknown tire status "+req.Status)
		}
		t.Status = status
	}
	if req.FireNumber != "" {
		t.FireNumber = req.FireNumber
	}
	if req.SerialNumber != "" {
		t.SerialNumber = req.SerialNumber
	}
	if req.Brand != "" {
		t.Brand = req.Brand
	}
	if req.Model != "" {
		t.Model = req.Model
	}
	if req.Size != "" {
		t.Size = req.Size
	}
	t.Pressure = req.Pressure
	t.TreadDepth = req.TreadDepth

	if err := s.tires.Update(ctx, t); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionEdit, constants.EntityTire, t.ID, "")
	return t, nil
}

func (s *TireService) Delete(ctx context.Context, actor string, id uint) error {
	if err := s.tires.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, constants.ActionDelete, constants.EntityTire, id, "")
	return nil
}

/* ---------- Barcode tool ---------- */

func (s *TireService) FindByBarcode(ctx context.Context, barcode string) (*models.Tire, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, apperrors.NewValidation("barcode", "barcode is required")
	}
	return s.tires.FindByBarcode(ctx, barcode)
}

// SetBarcode assigns or clears a tire's barcode (empty input clears)
func (s *TireService) SetBarcode(ctx context.Context, actor string, id uint, barcode string) (*models.Tire, error) {
	t, err := s.tires.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		t.Barcode = nil
	} else {
		t.Barcode = &barcode
	}
	if err := s.tires.Update(ctx, t); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, actor, constants.ActionEdit, constants.EntityTire, t.ID, "set barcode")
	return t, nil
}
