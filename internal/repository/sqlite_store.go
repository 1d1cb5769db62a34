package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nocodesaarthi/leads-api/internal/models"
)

// SQLiteStore keeps every collection in one documents table with JSON text bodies
type SQLiteStore struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// NewSQLiteStore creates a store over an already-migrated handle
func NewSQLiteStore(sqlDB *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		sqlDB: sqlDB,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument inserts one row and returns its uuid
func (s *SQLiteStore) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	now := s.now()
	body, err := json.Marshal(stamp(doc, now))
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	id := uuid.NewString()
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body, created_at) VALUES (?, ?, ?, ?)`,
		id, collection, string(body), now.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("sqlite insert into %s: %w", collection, err)
	}
	return id, nil
}

// ListCollections returns the distinct collection names in use
func (s *SQLiteStore) ListCollections(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("sqlite list collections: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sqlite scan collection: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite list collections: %w", err)
	}
	return names, nil
}

// GetDocument loads one stored body
func (s *SQLiteStore) GetDocument(ctx context.Context, collection, id string) (models.Document, error) {
	var body string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`, collection, id,
	).Scan(&body)
	if err != nil {
		return nil, fmt.Errorf("sqlite get %s/%s: %w", collection, id, err)
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// Close closes the database handle
func (s *SQLiteStore) Close(context.Context) error {
	return s.sqlDB.Close()
}
