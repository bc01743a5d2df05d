package repositories

import (
	"context"
	"time"

	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// EventRepository defines the interface for event store operations. The
// store is append-only: no update or delete is exposed.
type EventRepository interface {
	RecordEvent(ctx context.Context, event *models.Event) error
}

// MongoEventRepository implements EventRepository for MongoDB
type MongoEventRepository struct {
	collection *mongo.Collection
}

// NewMongoEventRepository creates a new MongoEventRepository
func NewMongoEventRepository(db *mongo.Database) *MongoEventRepository {
	return &MongoEventRepository{collection: db.Collection("events")}
}

// RecordEvent assigns the event its ID and timestamp and persists it in
// MongoDB. A persistence failure propagates to the caller; the event must
// not be considered recorded.
func (r *MongoEventRepository) RecordEvent(ctx context.Context, event *models.Event) error {
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}
