package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pneutrack/backend/internal/cache"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/db"
	"pneutrack/backend/internal/db/repositories"
	"pneutrack/backend/internal/metrics"
	models "pneutrack/backend/internal/models/gorm"
)

// promauto registers against the default registry, so the test registry is
// created exactly once per process
var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.MetricsRegistry
)

func testMetricsRegistry() *metrics.MetricsRegistry {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewMetricsRegistry()
	})
	return testMetrics
}

type testEnv struct {
	db            *gorm.DB
	cache         cache.CacheInterface
	fleet         *FleetService
	tires         *TireService
	orders        *OrderService
	inspections   *InspectionService
	notifications *NotificationService
	sessions      *SessionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mem := cache.NewMemoryCache(time.Minute, time.Minute)
	t.Cleanup(func() { mem.Close() })

	metricsReg := testMetricsRegistry()
	auditSvc := NewAuditService(repositories.NewGormAuditRepository(gdb), metricsReg)
	notifier := NewNotifier(metricsReg)

	vehicles := repositories.NewVehicleRepository(gdb)
	tires := repositories.NewTireRepository(gdb)
	orders := repositories.NewOrderRepository(gdb)
	inspections := repositories.NewInspectionRepository(gdb)
	notifications := repositories.NewNotificationRepository(gdb)
	attachments := repositories.NewAttachmentRepository(gdb)
	users := repositories.NewUserRepository(gdb)

	return &testEnv{
		db:            gdb,
		cache:         mem,
		fleet:         NewFleetService(gdb, vehicles, attachments, auditSvc),
		tires:         NewTireService(tires, auditSvc),
		orders:        NewOrderService(gdb, orders, vehicles, attachments, notifier, auditSvc),
		inspections:   NewInspectionService(gdb, inspections, vehicles, notifier, auditSvc),
		notifications: NewNotificationService(notifications, mem),
		sessions:      NewSessionService(users, mem, []byte("test-secret")),
	}
}

func (e *testEnv) mustCreateVehicle(t *testing.T, plate string) *models.Vehicle {
	t.Helper()
	v := models.Vehicle{Plate: plate, DriverName: "Driver " + plate, MaxKmAlert: 50000}
	if err := e.db.Create(&v).Error; err != nil {
		t.Fatalf("failed to create vehicle: %v", err)
	}
	return &v
}

func (e *testEnv) mustCreateTire(t *testing.T, serial string, status constants.TireStatus) *models.Tire {
	t.Helper()
	tire := models.Tire{SerialNumber: serial, Brand: "Michelin", Model: "XZE", Size: "295/80R22.5", Status: status}
	if err := e.db.Create(&tire).Error; err != nil {
		t.Fatalf("failed to create tire: %v", err)
	}
	return &tire
}

func (e *testEnv) mustCreatePosition(t *testing.T, vehicleID uint, label string) *models.TirePosition {
	t.Helper()
	p := models.TirePosition{VehicleID: vehicleID, Label: label}
	if err := e.db.Create(&p).Error; err != nil {
		t.Fatalf("failed to create position: %v", err)
	}
	return &p
}
