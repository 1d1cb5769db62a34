package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nocodesaarthi/leads-api/internal/models"
	apperrors "github.com/nocodesaarthi/leads-api/pkg/errors"
	"github.com/nocodesaarthi/leads-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
}

type fakeStore struct {
	id       string
	names    []string
	err      error
	lastColl string
	lastDoc  models.Document
	closed   bool
}

func (f *fakeStore) CreateDocument(_ context.Context, collection string, doc models.Document) (string, error) {
	f.lastColl = collection
	f.lastDoc = doc
	return f.id, f.err
}

func (f *fakeStore) ListCollections(context.Context) ([]string, error) {
	return f.names, f.err
}

func (f *fakeStore) Close(context.Context) error {
	f.closed = true
	return nil
}

func TestStamp_CopiesAndAddsCreatedAt(t *testing.T) {
	doc := models.Document{"name": "Asha"}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	out := stamp(doc, now)

	assert.Equal(t, now, out[createdAtField])
	assert.Equal(t, "Asha", out["name"])
	assert.NotContains(t, doc, createdAtField, "input must not be mutated")
}

func TestUnconfiguredStore(t *testing.T) {
	store := NewUnconfiguredStore()
	ctx := context.Background()

	_, err := store.CreateDocument(ctx, models.LeadCollection, models.Document{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotConfigured))
	assert.Equal(t, "database not configured", err.Error())

	_, err = store.ListCollections(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotConfigured))

	assert.NoError(t, store.Close(ctx))
}

func TestInstrument_PassesThrough(t *testing.T) {
	inner := &fakeStore{id: "abc", names: []string{"lead"}}
	store := Instrument(inner, "fake")
	ctx := context.Background()

	id, err := store.CreateDocument(ctx, models.LeadCollection, models.Document{"name": "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	assert.Equal(t, models.LeadCollection, inner.lastColl)
	assert.Equal(t, "Asha", inner.lastDoc["name"])

	names, err := store.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"lead"}, names)

	require.NoError(t, store.Close(ctx))
	assert.True(t, inner.closed)
}

func TestInstrument_PropagatesErrors(t *testing.T) {
	boom := errors.New("connection refused")
	store := Instrument(&fakeStore{err: boom}, "fake")

	_, err := store.CreateDocument(context.Background(), models.LeadCollection, models.Document{})
	assert.ErrorIs(t, err, boom)

	_, err = store.ListCollections(context.Background())
	assert.ErrorIs(t, err, boom)
}
