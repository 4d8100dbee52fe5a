package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Phone       string             `bson:"phone" json:"phone"`
	Company     string             `bson:"company" json:"company"`
	Logo        string             `bson:"logo" json:"logo"`
	Password    string             `bson:"password" json:"-"`
	PayPalEmail string             `bson:"paypal_email" json:"paypal_email"`

	Plan          Plan         `bson:"plan" json:"plan" validate:"required,oneof=Basic Standard Premium Enterprise"`
	Status        ClientStatus `bson:"status" json:"status"`
	BanReason     string       `bson:"ban_reason,omitempty" json:"ban_reason,omitempty"`
	SuspendReason string       `bson:"suspend_reason,omitempty" json:"suspend_reason,omitempty"`

	// RevenueShare is a percentage in [0, 100]; MonthlyFee is >= 0.
	RevenueShare float64 `bson:"revenue_share" json:"revenue_share"`
	MonthlyFee   float64 `bson:"monthly_fee" json:"monthly_fee"`

	// ChannelIDs mirrors Channel.ClientID; both sides are always updated in
	// the same transaction.
	ChannelIDs []primitive.ObjectID `bson:"channel_ids" json:"channel_ids"`

	RokuChannels []DistributionChannel `bson:"roku_channels" json:"roku_channels"`

	// Notifications is most-recent-first; only the read flag is mutable.
	Notifications []ClientNotification `bson:"notifications" json:"notifications"`
	AdminActions  []AdminAction        `bson:"admin_actions" json:"admin_actions"`

	// DeviceDistribution maps platform label to a share percentage (>= 0).
	DeviceDistribution map[string]float64 `bson:"device_distribution,omitempty" json:"device_distribution,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DistributionChannel is a client's app registration on a playback platform
// (the "Roku channel"), embedded in the owning Client document. ChannelID is
// the external platform id and must be unique within the client's list,
// case-insensitively.
type DistributionChannel struct {
	ID         string             `bson:"id" json:"id"`
	Platform   Platform           `bson:"platform" json:"platform" validate:"required"`
	ChannelID  string             `bson:"channel_id" json:"channel_id" validate:"required"`
	Name       string             `bson:"name" json:"name"`
	Status     DistributionStatus `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	ApprovedAt *time.Time         `bson:"approved_at,omitempty" json:"approved_at,omitempty"`
}

// AdminAction is one entry of the client's audit trail, prepended on every
// admin intervention (ban, suspend, warn, fee change, ...).
type AdminAction struct {
	Type    AdminActionType `bson:"type" json:"type"`
	Reason  string          `bson:"reason,omitempty" json:"reason,omitempty"`
	Details string          `bson:"details,omitempty" json:"details,omitempty"`
	At      time.Time       `bson:"at" json:"at"`
}

func (c *Client) OwnsChannel(channelID primitive.ObjectID) bool {
	for _, id := range c.ChannelIDs {
		if id == channelID {
			return true
		}
	}
	return false
}

func (c *Client) UnreadNotifications() int {
	n := 0
	for _, notif := range c.Notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}
