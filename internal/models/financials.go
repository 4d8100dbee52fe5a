package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientFinancials is keyed by client; one document per client.
type ClientFinancials struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID       primitive.ObjectID `bson:"client_id" json:"client_id" validate:"required"`
	MonthlyRevenue []MonthlyRevenue   `bson:"monthly_revenue" json:"monthly_revenue"`
	Payments       []Payment          `bson:"payments" json:"payments"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// MonthlyRevenue holds at most one entry per month label; adding a month that
// already exists overwrites the amount (upsert-by-month-key).
type MonthlyRevenue struct {
	Month  string  `bson:"month" json:"month" validate:"required"`
	Amount float64 `bson:"amount" json:"amount" validate:"gte=0"`
}

// Payment entries are append-only.
type Payment struct {
	ID     string        `bson:"id" json:"id"`
	Date   time.Time     `bson:"date" json:"date"`
	Amount float64       `bson:"amount" json:"amount" validate:"gte=0"`
	Status PaymentStatus `bson:"status" json:"status"`
	Method string        `bson:"method" json:"method"`
}

// RevenueTotals is the read-time aggregation over one client's financials.
type RevenueTotals struct {
	TotalEarnings float64 `json:"total_earnings"`
	TotalPaid     float64 `json:"total_paid"`
	PendingPayout float64 `json:"pending_payout"`
}
