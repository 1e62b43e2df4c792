package api

import (
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"pneutrack/backend/internal/cache"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/metrics"
	"pneutrack/backend/internal/services"
	"pneutrack/backend/internal/storage"
)

type Repositories struct {
	Vehicles      *repositories.VehicleRepository
	Tires         *repositories.TireRepository
	Orders        *repositories.OrderRepository
	Inspections   *repositories.InspectionRepository
	Notifications *repositories.NotificationRepository
	Attachments   *repositories.AttachmentRepository
	Users         *repositories.UserRepository
}

type Services struct {
	Session       *services.SessionService
	Fleet         *services.FleetService
	Tires         *services.TireService
	Orders        *services.OrderService
	Inspections   *services.InspectionService
	Notifications *services.NotificationService
	Attachments   *services.AttachmentService
	Audit         *services.AuditService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services together. The audit
// connection is optional: when absent the audit trail falls back to the
// primary database.
func InitDependencies(orm *gorm.DB, auditDB *sqlx.DB, c cache.CacheInterface,
	metricsReg *metrics.MetricsRegistry, store *storage.LocalStore, jwtSecret []byte) (*Dependencies, error) {

	repo := &Repositories{
		Vehicles:      repositories.NewVehicleRepository(orm),
		Tires:         repositories.NewTireRepository(orm),
		Orders:        repositories.NewOrderRepository(orm),
		Inspections:   repositories.NewInspectionRepository(orm),
		Notifications: repositories.NewNotificationRepository(orm),
		Attachments:   repositories.NewAttachmentRepository(orm),
		Users:         repositories.NewUserRepository(orm),
	}

	var sink repositories.AuditSink
	if auditDB != nil {
		sink = repositories.NewSqlxAuditRepository(auditDB)
	} else {
		sink = repositories.NewGormAuditRepository(orm)
	}

	auditSvc := services.NewAuditService(sink, metricsReg)
	notifier := services.NewNotifier(metricsReg)

	svcs := &Services{
		Session:       services.NewSessionService(repo.Users, c, jwtSecret),
		Fleet:         services.NewFleetService(orm, repo.Vehicles, repo.Attachments, auditSvc),
		Tires:         services.NewTireService(repo.Tires, auditSvc),
		Orders:        services.NewOrderService(orm, repo.Orders, repo.Vehicles, repo.Attachments, notifier, auditSvc),
		Inspections:   services.NewInspectionService(orm, repo.Inspections, repo.Vehicles, notifier, auditSvc),
		Notifications: services.NewNotificationService(repo.Notifications, c),
		Attachments:   services.NewAttachmentService(repo.Attachments, repo.Orders, repo.Vehicles, store, auditSvc),
		Audit:         auditSvc,
	}

	return &Dependencies{Repo: repo, Services: svcs}, nil
}
