package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event represents an ingested domain event stored in MongoDB. Events are
// immutable: once recorded they are never updated or deleted.
type Event struct {
	ID           primitive.ObjectID     `json:"-" bson:"_id,omitempty"`
	EventID      string                 `json:"eventId" bson:"event_id"`
	Type         string                 `json:"type" bson:"type"` // like, comment, follow, ...
	SourceUserID string                 `json:"sourceUserId" bson:"source_user_id"`
	TargetUserID string                 `json:"targetUserId" bson:"target_user_id"`
	Data         map[string]interface{} `json:"data" bson:"data"` // Opaque payload; "sourceUsername" carries the actor's display name
	Timestamp    time.Time              `json:"timestamp" bson:"timestamp"`
}

// CreateEventRequest defines the request body for submitting a new event
type CreateEventRequest struct {
	Type         string                 `json:"type" validate:"required"`
	SourceUserID string                 `json:"sourceUserId" validate:"required"`
	TargetUserID string                 `json:"targetUserId" validate:"required"`
	Data         map[string]interface{} `json:"data,omitempty"`
}
