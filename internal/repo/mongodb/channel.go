package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

type ChannelRepository interface {
	Create(ctx context.Context, channel *models.Channel) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Channel, error)
	List(ctx context.Context) ([]*models.Channel, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.Channel, error)
	UpdateInfo(ctx context.Context, channel *models.Channel) error
	SetOwner(ctx context.Context, id primitive.ObjectID, clientID *primitive.ObjectID) error
	ClearOwnerForClient(ctx context.Context, clientID primitive.ObjectID) error
	AddMovieID(ctx context.Context, id, movieID primitive.ObjectID) error
	RemoveMovieID(ctx context.Context, id, movieID primitive.ObjectID) error
	AddSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error
	RemoveSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type channelRepo struct {
	collection *mongo.Collection
}

func NewChannelRepository(db *DB) ChannelRepository {
	return &channelRepo{
		collection: db.Database.Collection("channels"),
	}
}

func (r *channelRepo) Create(ctx context.Context, channel *models.Channel) error {
	now := time.Now()
	channel.ID = primitive.NewObjectID()
	channel.CreatedAt = now
	channel.UpdatedAt = now
	if channel.MovieIDs == nil {
		channel.MovieIDs = []primitive.ObjectID{}
	}
	if channel.SeriesIDs == nil {
		channel.SeriesIDs = []primitive.ObjectID{}
	}

	if _, err := r.collection.InsertOne(ctx, channel); err != nil {
		return fmt.Errorf("insert channel: %w", err)
	}
	return nil
}

func (r *channelRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Channel, error) {
	var channel models.Channel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&channel)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find channel: %w", err)
	}
	return &channel, nil
}

func (r *channelRepo) List(ctx context.Context) ([]*models.Channel, error) {
	return r.find(ctx, bson.M{})
}

func (r *channelRepo) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.Channel, error) {
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *channelRepo) find(ctx context.Context, filter bson.M) ([]*models.Channel, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	var channels []*models.Channel
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, fmt.Errorf("decode channels: %w", err)
	}
	return channels, nil
}

// UpdateInfo patches metadata fields only; ownership and content lists go
// through the relationship operations.
func (r *channelRepo) UpdateInfo(ctx context.Context, channel *models.Channel) error {
	return r.updateOne(ctx, channel.ID, bson.M{
		"$set": bson.M{
			"name":        channel.Name,
			"category":    channel.Category,
			"logo":        channel.Logo,
			"subscribers": channel.Subscribers,
			"updated_at":  time.Now(),
		},
	})
}

func (r *channelRepo) SetOwner(ctx context.Context, id primitive.ObjectID, clientID *primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"client_id":  clientID,
			"updated_at": time.Now(),
		},
	})
}

// ClearOwnerForClient detaches every channel owned by the client, used when
// the client is deleted so no channel keeps a dangling owner reference.
func (r *channelRepo) ClearOwnerForClient(ctx context.Context, clientID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"client_id": clientID}, bson.M{
		"$set": bson.M{
			"client_id":  nil,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("clear channel owners: %w", err)
	}
	return nil
}

func (r *channelRepo) AddMovieID(ctx context.Context, id, movieID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$addToSet": bson.M{"movie_ids": movieID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *channelRepo) RemoveMovieID(ctx context.Context, id, movieID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$pull": bson.M{"movie_ids": movieID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *channelRepo) AddSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$addToSet": bson.M{"series_ids": seriesID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *channelRepo) RemoveSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$pull": bson.M{"series_ids": seriesID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *channelRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete channel: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *channelRepo) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update channel: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
