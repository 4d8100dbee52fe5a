package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportTicket belongs to one client. Messages are append-only and ordered.
type SupportTicket struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  primitive.ObjectID `bson:"client_id" json:"client_id" validate:"required"`
	Subject   string             `bson:"subject" json:"subject" validate:"required"`
	Category  string             `bson:"category" json:"category"`
	Priority  TicketPriority     `bson:"priority" json:"priority"`
	Status    TicketStatus       `bson:"status" json:"status"`
	Messages  []TicketMessage    `bson:"messages" json:"messages"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type TicketMessage struct {
	ID         string     `bson:"id" json:"id"`
	SenderType SenderType `bson:"sender_type" json:"sender_type" validate:"required,oneof=client admin"`
	Body       string     `bson:"body" json:"body" validate:"required"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}
