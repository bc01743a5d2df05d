package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationStatusSent is the only status the pipeline produces; there is
// no delivery-confirmation or read-state lifecycle.
const NotificationStatusSent = "sent"

// Notification represents a per-user notification stored in MongoDB.
// Created by the dispatcher or via the direct-creation endpoint; never
// mutated afterwards.
type Notification struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	NotificationID string             `json:"notificationId" bson:"notification_id"`
	UserID         string             `json:"userId" bson:"user_id"` // Recipient
	Type           string             `json:"type" bson:"type"`
	Content        string             `json:"content" bson:"content"`
	Status         string             `json:"status" bson:"status"`
	Timestamp      time.Time          `json:"timestamp" bson:"timestamp"`
}

// CreateNotificationRequest defines the request body for creating a
// notification directly, bypassing the dispatch queue and preference check
type CreateNotificationRequest struct {
	UserID  string `json:"userId" validate:"required"`
	Type    string `json:"type" validate:"required"`
	Content string `json:"content" validate:"required"`
}
