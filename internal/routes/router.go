package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"pneutrack/backend/internal/api"
	"pneutrack/backend/internal/logging"
	"pneutrack/backend/internal/metrics"
	"pneutrack/backend/internal/middleware"
)

// RegisterRoutes builds the chi router with the global middleware chain
// and all API routes mounted.
func RegisterRoutes(deps *api.Dependencies, metricsReg *metrics.MetricsRegistry,
	orm *gorm.DB, auditDB *sqlx.DB, upSince time.Time) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with request-id, rate-limit and CORS middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(orm, auditDB, upSince))

	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
