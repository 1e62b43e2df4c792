package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"pneutrack/backend/internal/models/entities"
)

// HealthCheckHandler handles GET /healthCheck. It pings the primary
// database and, when configured, the dedicated audit connection.
func HealthCheckHandler(orm *gorm.DB, audit *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]entities.ServiceStatus)

		dbStatus := "ok"
		dbDetails := "Database connected"
		if sqlDB, err := orm.DB(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		services["database"] = entities.ServiceStatus{
			Status:  dbStatus,
			Details: dbDetails,
		}

		if audit != nil {
			auditStatus := "ok"
			auditDetails := "Audit connection ok"
			if err := audit.Ping(); err != nil {
				auditStatus = "down"
				auditDetails = err.Error()
			}
			services["audit"] = entities.ServiceStatus{
				Status:  auditStatus,
				Details: auditDetails,
			}
		}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   overallStatus,
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
