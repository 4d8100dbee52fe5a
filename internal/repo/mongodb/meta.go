package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// seedSentinelID is the fixed id of the document guarding one-time seeding.
const seedSentinelID = "seed"

type MetaRepository interface {
	IsSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

type metaRepo struct {
	collection *mongo.Collection
}

func NewMetaRepository(db *DB) MetaRepository {
	return &metaRepo{
		collection: db.Database.Collection("meta"),
	}
}

func (r *metaRepo) IsSeeded(ctx context.Context) (bool, error) {
	err := r.collection.FindOne(ctx, bson.M{"_id": seedSentinelID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check seed sentinel: %w", err)
	}
	return true, nil
}

func (r *metaRepo) MarkSeeded(ctx context.Context) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": seedSentinelID},
		bson.M{"$setOnInsert": bson.M{"seeded_at": time.Now()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}
	return nil
}
