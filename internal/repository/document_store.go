package repository

import (
	"context"
	"time"

	"github.com/nocodesaarthi/leads-api/internal/models"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"github.com/nocodesaarthi/leads-api/pkg/metrics"
	"github.com/nocodesaarthi/leads-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const createdAtField = "created_at"

// stamp copies doc and adds the creation timestamp
func stamp(doc models.Document, now time.Time) models.Document {
	out := make(models.Document, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}
	out[createdAtField] = now
	return out
}

// unconfiguredStore stands in when no database target was configured
type unconfiguredStore struct{}

// NewUnconfiguredStore returns a store whose every call fails with ErrNotConfigured
func NewUnconfiguredStore() DocumentStore {
	return unconfiguredStore{}
}

func (unconfiguredStore) CreateDocument(context.Context, string, models.Document) (string, error) {
	return "", apperrors.NotConfiguredError("database")
}

func (unconfiguredStore) ListCollections(context.Context) ([]string, error) {
	return nil, apperrors.NotConfiguredError("database")
}

func (unconfiguredStore) Close(context.Context) error { return nil }

// instrumentedStore records metrics, spans and call logs around a driver
type instrumentedStore struct {
	next   DocumentStore
	driver string
}

// Instrument wraps store with metrics, tracing and call logging
func Instrument(store DocumentStore, driver string) DocumentStore {
	return &instrumentedStore{next: store, driver: driver}
}

func (s *instrumentedStore) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "repository.CreateDocument",
		attribute.String("db.system", s.driver),
		attribute.String("db.collection.name", collection),
	)

	id, err := s.next.CreateDocument(ctx, collection, doc)
	tracing.EndSpan(span, err)
	metrics.ObserveStoreOperation(s.driver, "create_document", start, err)
	s.log("create_document", start, err, zap.String("collection", collection), zap.String("id", id))
	return id, err
}

func (s *instrumentedStore) ListCollections(ctx context.Context) ([]string, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "repository.ListCollections", attribute.String("db.system", s.driver))

	names, err := s.next.ListCollections(ctx)
	tracing.EndSpan(span, err)
	metrics.ObserveStoreOperation(s.driver, "list_collections", start, err)
	s.log("list_collections", start, err, zap.Int("count", len(names)))
	return names, err
}

func (s *instrumentedStore) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}

func (s *instrumentedStore) log(operation string, start time.Time, err error, fields ...zap.Field) {
	status := "success"
	if err != nil {
		status = "error"
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall(s.driver, operation, status, metrics.MeasureDuration(start), fields...)
}
