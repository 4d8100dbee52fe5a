package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Movie belongs to at most one channel; ChannelID mirrors the channel's
// MovieIDs list.
type Movie struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title           string              `bson:"title" json:"title" validate:"required"`
	Genre           string              `bson:"genre" json:"genre"`
	Year            int                 `bson:"year" json:"year"`
	Rating          float64             `bson:"rating" json:"rating" validate:"gte=0,lte=10"`
	DurationMinutes int                 `bson:"duration_minutes" json:"duration_minutes"`
	Poster          string              `bson:"poster" json:"poster"`
	ChannelID       *primitive.ObjectID `bson:"channel_id" json:"channel_id"`
	Views           int64               `bson:"views" json:"views"`
	Revenue         float64             `bson:"revenue" json:"revenue"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

type Series struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title     string              `bson:"title" json:"title" validate:"required"`
	Genre     string              `bson:"genre" json:"genre"`
	Year      int                 `bson:"year" json:"year"`
	Rating    float64             `bson:"rating" json:"rating" validate:"gte=0,lte=10"`
	Seasons   int                 `bson:"seasons" json:"seasons"`
	Episodes  int                 `bson:"episodes" json:"episodes"`
	Poster    string              `bson:"poster" json:"poster"`
	ChannelID *primitive.ObjectID `bson:"channel_id" json:"channel_id"`
	Views     int64               `bson:"views" json:"views"`
	Revenue   float64             `bson:"revenue" json:"revenue"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time           `bson:"updated_at" json:"updated_at"`
}
