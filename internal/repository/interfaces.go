package repository

import (
	"context"

	"github.com/nocodesaarthi/leads-api/internal/models"
)

// DocumentStore persists schemaless records grouped into named collections.
// Implementations assign the identifier and stamp created_at.
type DocumentStore interface {
	// CreateDocument writes one record and returns its generated id
	CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error)

	// ListCollections names the collections that currently exist
	ListCollections(ctx context.Context) ([]string, error)

	// Close releases connections held by the store
	Close(ctx context.Context) error
}

// Ensure stores implement the interface
var _ DocumentStore = (*MongoStore)(nil)
var _ DocumentStore = (*PostgresStore)(nil)
var _ DocumentStore = (*SQLiteStore)(nil)
var _ DocumentStore = (*S3Store)(nil)
var _ DocumentStore = unconfiguredStore{}
var _ DocumentStore = (*instrumentedStore)(nil)
