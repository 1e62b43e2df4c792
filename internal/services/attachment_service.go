package services

import (
	"context"

	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db/repositories"
	models "pneutrack/backend/internal/models/gorm"
	"pneutrack/backend/internal/storage"
)

// AttachmentService stores uploaded files through the file store and keeps
// the metadata record. Exactly one of order/vehicle is referenced per
// upload.
type AttachmentService struct {
	attachments *repositories.AttachmentRepository
	orders      *repositories.OrderRepository
	vehicles    *repositories.VehicleRepository
	store       *storage.LocalStore
	audit       *AuditService
}

func NewAttachmentService(attachments *repositories.AttachmentRepository, orders *repositories.OrderRepository,
	vehicles *repositories.VehicleRepository, store *storage.LocalStore, audit *AuditService) *AttachmentService {
	return &AttachmentService{attachments: attachments, orders: orders, vehicles: vehicles, store: store, audit: audit}
}

// UploadForOrder attaches a file to a service order
func (s *AttachmentService) UploadForOrder(ctx context.Context, actor string, orderID uint, originalName string, data []byte) (*models.Attachment, error) {
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		return nil, err
	}

	storedName, err := s.store.Save(originalName, data)
	if err != nil {
		return nil, err
	}

	a := models.Attachment{
		OrderID:      &orderID,
		Filename:     storedName,
		OriginalName: storage.SanitizeName(originalName),
	}
	if err := s.attachments.Create(ctx, &a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityAttachment, a.ID, "order upload "+a.OriginalName)
	return &a, nil
}

// UploadForVehicle attaches a file to a vehicle
func (s *AttachmentService) UploadForVehicle(ctx context.Context, actor string, vehicleID uint, originalName string, data []byte) (*models.Attachment, error) {
	if _, err := s.vehicles.GetByID(ctx, vehicleID); err != nil {
		return nil, err
	}

	storedName, err := s.store.Save(originalName, data)
	if err != nil {
		return nil, err
	}

	a := models.Attachment{
		VehicleID:    &vehicleID,
		Filename:     storedName,
		OriginalName: storage.SanitizeName(originalName),
	}
	if err := s.attachments.Create(ctx, &a); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, constants.ActionCreate, constants.EntityAttachment, a.ID, "vehicle upload "+a.OriginalName)
	return &a, nil
}

// Download resolves a stored filename to its record and bytes
func (s *AttachmentService) Download(ctx context.Context, storedName string) (*models.Attachment, []byte, error) {
	a, err := s.attachments.GetByStoredName(ctx, storedName)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.store.Open(storedName)
	if err != nil {
		return nil, nil, err
	}
	return a, data, nil
}
