package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/pkg/db"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// Applies the embedded schema for the sql drivers. mongo and s3 need none.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: "leads-migrate",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !cfg.StoreConfigured() {
		logger.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	logger.Info("Starting database migrations",
		zap.String("driver", cfg.Database.Driver),
		zap.String("database", maskDatabaseURL(cfg.Database.URL)))

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		err = db.RunPostgresMigrations(cfg.Database.URL, cfg.Database.CACertPath)
	case config.DriverSQLite:
		// OpenSQLite migrates on open
		sqlDB, openErr := db.OpenSQLite(cfg.Database.URL)
		if openErr == nil {
			openErr = sqlDB.Close()
		}
		err = openErr
	default:
		logger.Info("Driver has no schema to migrate", zap.String("driver", cfg.Database.Driver))
		return
	}

	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database migrations completed successfully")
}

// maskDatabaseURL hides credentials in a connection URL for logging
func maskDatabaseURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return "***"
	}
	return u.Redacted()
}
