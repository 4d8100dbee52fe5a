package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel is a branded streaming outlet. It is owned by at most one client;
// ClientID mirrors the owner's ChannelIDs list.
type Channel struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name" validate:"required"`
	Category    string               `bson:"category" json:"category"`
	Logo        string               `bson:"logo" json:"logo"`
	Subscribers int64                `bson:"subscribers" json:"subscribers"`
	MovieIDs    []primitive.ObjectID `bson:"movie_ids" json:"movie_ids"`
	SeriesIDs   []primitive.ObjectID `bson:"series_ids" json:"series_ids"`
	ClientID    *primitive.ObjectID  `bson:"client_id" json:"client_id"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
}

func (c *Channel) HasMovie(id primitive.ObjectID) bool {
	for _, m := range c.MovieIDs {
		if m == id {
			return true
		}
	}
	return false
}

func (c *Channel) HasSeries(id primitive.ObjectID) bool {
	for _, s := range c.SeriesIDs {
		if s == id {
			return true
		}
	}
	return false
}
