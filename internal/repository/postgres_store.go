package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nocodesaarthi/leads-api/internal/models"
)

// pgxPool is the subset of *pgxpool.Pool the store needs; pgxmock satisfies it
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore keeps every collection in one jsonb documents table
type PostgresStore struct {
	pool pgxPool
	now  func() time.Time
}

// NewPostgresStore creates a store backed by pool
func NewPostgresStore(pool pgxPool) *PostgresStore {
	return &PostgresStore{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument inserts one row and returns its uuid
func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	now := s.now()
	body, err := json.Marshal(stamp(doc, now))
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO documents (id, collection, body, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.pool.Exec(ctx, query, id, collection, body, now); err != nil {
		return "", fmt.Errorf("postgres insert into %s: %w", collection, err)
	}

	return id, nil
}

// ListCollections returns the distinct collection names in use
func (s *PostgresStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("postgres list collections: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres list collections: %w", err)
	}
	return names, nil
}

// Close closes the pool
func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}
