package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/nocodesaarthi/leads-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore writes each collection's documents to a MongoDB collection
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// NewMongoStore creates a store over database. client may be nil when the
// caller owns the connection lifecycle.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{
		client: client,
		db:     db,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateDocument inserts doc and returns the generated ObjectID in hex
func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc models.Document) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, bson.M(stamp(doc, s.now())))
	if err != nil {
		return "", fmt.Errorf("mongo insert into %s: %w", collection, err)
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprint(id), nil
	}
}

// ListCollections lists collection names in the database
func (s *MongoStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("mongo list collections: %w", err)
	}
	return names, nil
}

// Close disconnects the client if the store owns it
func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
