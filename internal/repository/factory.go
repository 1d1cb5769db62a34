package repository

import (
	"context"
	"fmt"

	"github.com/nocodesaarthi/leads-api/config"
	"github.com/nocodesaarthi/leads-api/pkg/db"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"go.uber.org/zap"
)

// Open connects the document store selected by cfg.Database.Driver.
// An unconfigured target yields a store that reports ErrNotConfigured
// rather than an error, so the API still serves its diagnostic endpoint.
func Open(ctx context.Context, cfg *config.Config) (DocumentStore, error) {
	driver := cfg.Database.Driver
	if !cfg.StoreConfigured() {
		logger.Warn("Document store not configured; lead submissions will fail",
			zap.String("driver", driver))
		return Instrument(NewUnconfiguredStore(), driver), nil
	}

	var (
		store DocumentStore
		err   error
	)

	switch driver {
	case config.DriverMongo:
		store, err = openMongo(ctx, cfg.Database)
	case config.DriverPostgres:
		store, err = openPostgres(ctx, cfg.Database)
	case config.DriverSQLite:
		store, err = openSQLite(cfg.Database)
	case config.DriverS3:
		store = NewS3Store(S3Options{
			Bucket:          cfg.S3.Bucket,
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("Document store connected", zap.String("driver", driver))
	return Instrument(store, driver), nil
}

func openMongo(ctx context.Context, cfg config.DatabaseConfig) (DocumentStore, error) {
	var maxPool uint64
	if cfg.MaxConns > 0 {
		maxPool = uint64(cfg.MaxConns)
	}

	client, err := db.ConnectMongo(ctx, cfg.URL, maxPool)
	if err != nil {
		return nil, err
	}
	return NewMongoStore(client, client.Database(cfg.Name)), nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (DocumentStore, error) {
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:        cfg.URL,
		CACertPath: cfg.CACertPath,
		MaxConns:   cfg.MaxConns,
		MinConns:   cfg.MinConns,
	})
	if err != nil {
		return nil, err
	}
	return NewPostgresStore(pool), nil
}

func openSQLite(cfg config.DatabaseConfig) (DocumentStore, error) {
	sqlDB, err := db.OpenSQLite(cfg.URL)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(sqlDB), nil
}
