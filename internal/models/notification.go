package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminNotification lands in its own collection and feeds the admin inbox.
// ClientName and ClientLogo are snapshots taken at creation time and are
// deliberately never refreshed when the client later edits their profile.
type AdminNotification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID   primitive.ObjectID `bson:"client_id" json:"client_id"`
	ClientName string             `bson:"client_name" json:"client_name"`
	ClientLogo string             `bson:"client_logo" json:"client_logo"`
	Type       NotificationType   `bson:"type" json:"type"`
	Title      string             `bson:"title" json:"title"`
	Message    string             `bson:"message" json:"message"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// ClientNotification is embedded in the Client document, most-recent-first.
// Immutable once created except for Read.
type ClientNotification struct {
	ID        string           `bson:"id" json:"id"`
	Type      NotificationType `bson:"type" json:"type"`
	Title     string           `bson:"title" json:"title"`
	Message   string           `bson:"message" json:"message"`
	Read      bool             `bson:"read" json:"read"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}
