package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pneutrack/backend/internal/db"
	models "pneutrack/backend/internal/models/gorm"
)

// initdb rebuilds the schema from scratch and loads the demo dataset.
func main() {
	drop := flag.Bool("drop", false, "drop all tables before migrating")
	flag.Parse()

	_ = godotenv.Load()

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"),
			os.Getenv("PG_HOST"), os.Getenv("PG_PORT"), os.Getenv("PG_DB"))
		if _, err := db.InitPostgresORM(dsn); err != nil {
			log.Fatalf("failed to connect: %v", err)
		}
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "pneutrack.db"
		}
		if _, err := db.InitSQLiteORM(path); err != nil {
			log.Fatalf("failed to open sqlite: %v", err)
		}
	default:
		log.Fatalf("unknown DB_DRIVER %q", driver)
	}

	if *drop {
		err := db.ORM.Migrator().DropTable(
			&models.AuditLogEntry{},
			&models.Attachment{},
			&models.Notification{},
			&models.InspectionChecklistItem{},
			&models.Inspection{},
			&models.OrderLineItem{},
			&models.ServiceOrder{},
			&models.AuthorizedService{},
			&models.HistoryEntry{},
			&models.TirePosition{},
			&models.Tire{},
			&models.Axle{},
			&models.Vehicle{},
			&models.User{},
		)
		if err != nil {
			log.Fatalf("failed to drop tables: %v", err)
		}
		log.Println("dropped existing tables")
	}

	if err := db.Migrate(db.ORM); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(db.ORM); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("database initialized")
}
