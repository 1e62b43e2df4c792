package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	models "pneutrack/backend/internal/models/gorm"
)

var ORM *gorm.DB

// InitPostgresORM opens the primary GORM connection against Postgres
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	ORM = db
	return db, nil
}

// InitSQLiteORM opens a file-backed (or :memory:) sqlite database. Used for
// single-box deployments and for tests.
func InitSQLiteORM(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}

	ORM = db
	return db, nil
}

// Migrate creates or updates the full relational schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Axle{},
		&models.Tire{},
		&models.TirePosition{},
		&models.HistoryEntry{},
		&models.AuthorizedService{},
		&models.ServiceOrder{},
		&models.OrderLineItem{},
		&models.Inspection{},
		&models.InspectionChecklistItem{},
		&models.Notification{},
		&models.Attachment{},
		&models.AuditLogEntry{},
	)
}
