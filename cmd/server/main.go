package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"pneutrack/backend/internal/api"
	"pneutrack/backend/internal/cache"
	"pneutrack/backend/internal/db"
	"pneutrack/backend/internal/logging"
	"pneutrack/backend/internal/metrics"
	"pneutrack/backend/internal/routes"
	"pneutrack/backend/internal/storage"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	_ = godotenv.Load()

	appEnv := env("APP_ENV", "development")

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("PneuTrack starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Primary database: Postgres in production, sqlite for single-box runs
	driver := env("DB_DRIVER", "sqlite")
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("PG_USER"), os.Getenv("PG_PASSWORD"),
			os.Getenv("PG_HOST"), env("PG_PORT", "5432"), os.Getenv("PG_DB"))

		if _, err := db.InitPostgresORM(dsn); err != nil {
			logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
			log.Fatalf("failed to connect to Postgres (GORM): %v", err)
		}
		logging.Info("Connected to Postgres (GORM)")

		if err := db.InitAuditDB(dsn); err != nil {
			logging.Error("Failed to connect to Postgres (audit)", "error", err.Error())
			log.Fatalf("failed to connect to Postgres (audit): %v", err)
		}
		logging.Info("Connected to Postgres (audit)")

	case "sqlite":
		path := env("SQLITE_PATH", "pneutrack.db")
		if _, err := db.InitSQLiteORM(path); err != nil {
			logging.Error("Failed to open sqlite", "error", err.Error())
			log.Fatalf("failed to open sqlite: %v", err)
		}
		logging.Info("Opened sqlite database", "path", path)

	default:
		log.Fatalf("unknown DB_DRIVER %q", driver)
	}

	if err := db.Migrate(db.ORM); err != nil {
		logging.Error("Migration failed", "error", err.Error())
		log.Fatalf("migration failed: %v", err)
	}
	if err := db.Seed(db.ORM); err != nil {
		logging.Error("Seeding failed", "error", err.Error())
		log.Fatalf("seeding failed: %v", err)
	}

	// Session cache: Redis when configured, in-memory otherwise
	var cacheBackend cache.CacheInterface
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		client := cache.NewRedisClient(redisHost, env("REDIS_PORT", "6379"), os.Getenv("REDIS_PASSWORD"))
		cacheBackend = cache.NewRedisCache(client)
		logging.Info("Using Redis session cache", "host", redisHost)
	} else {
		cacheBackend = cache.NewMemoryCache(10*time.Minute, 10*time.Minute)
		logging.Info("Using in-memory session cache")
	}
	defer cacheBackend.Close()

	store, err := storage.NewLocalStore(env("UPLOAD_DIR", "uploads"))
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	jwtSecret := env("JWT_SECRET", "dev-secret-change-me")

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(db.ORM, db.Audit, cacheBackend, metricsReg, store, []byte(jwtSecret))
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, metricsReg, db.ORM, db.Audit, upSince)

	appAddr := ":" + env("PORT", "8080")
	metricsAddr := ":" + env("METRICS_PORT", "9090")

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		logging.Info("Server starting", "addr", appAddr, "environment", appEnv)
		return http.ListenAndServe(appAddr, router)
	})
	g.Go(func() error {
		logging.Info("Metrics endpoint starting", "addr", metricsAddr)
		return http.ListenAndServe(metricsAddr, metricsMux)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited", "error", err.Error())
		log.Fatal(err)
	}
}
