package services_test

import (
	"context"

	"github.com/nocodesaarthi/leads-api/internal/models"
	"github.com/nocodesaarthi/leads-api/internal/notify"
	"github.com/stretchr/testify/mock"
)

// MockDocumentStore is a mock implementation of repository.DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	args := m.Called(ctx, collection, doc)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) ListCollections(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentStore) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockNotifier is a mock implementation of notify.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, lead *models.Lead) notify.Result {
	args := m.Called(ctx, lead)
	return args.Get(0).(notify.Result)
}
