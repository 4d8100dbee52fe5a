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

type FinancialsRepository interface {
	GetByClient(ctx context.Context, clientID primitive.ObjectID) (*models.ClientFinancials, error)
	EnsureForClient(ctx context.Context, clientID primitive.ObjectID) error
	UpsertMonthlyRevenue(ctx context.Context, clientID primitive.ObjectID, entry models.MonthlyRevenue) error
	AppendPayment(ctx context.Context, clientID primitive.ObjectID, payment models.Payment) error
	DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error
}

type financialsRepo struct {
	collection *mongo.Collection
}

func NewFinancialsRepository(db *DB) FinancialsRepository {
	return &financialsRepo{
		collection: db.Database.Collection("financials"),
	}
}

func (r *financialsRepo) GetByClient(ctx context.Context, clientID primitive.ObjectID) (*models.ClientFinancials, error) {
	var fin models.ClientFinancials
	err := r.collection.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&fin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find financials: %w", err)
	}
	return &fin, nil
}

func (r *financialsRepo) EnsureForClient(ctx context.Context, clientID primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"client_id": clientID},
		bson.M{
			"$setOnInsert": bson.M{
				"client_id":       clientID,
				"monthly_revenue": []models.MonthlyRevenue{},
				"payments":        []models.Payment{},
			},
			"$set": bson.M{"updated_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("ensure financials: %w", err)
	}
	return nil
}

// UpsertMonthlyRevenue overwrites the amount when an entry for the month
// label already exists, otherwise appends one. At most one entry per month.
func (r *financialsRepo) UpsertMonthlyRevenue(ctx context.Context, clientID primitive.ObjectID, entry models.MonthlyRevenue) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"client_id": clientID, "monthly_revenue.month": entry.Month},
		bson.M{"$set": bson.M{
			"monthly_revenue.$.amount": entry.Amount,
			"updated_at":               time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update monthly revenue: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	if err := r.EnsureForClient(ctx, clientID); err != nil {
		return err
	}
	_, err = r.collection.UpdateOne(ctx,
		bson.M{"client_id": clientID, "monthly_revenue.month": bson.M{"$ne": entry.Month}},
		bson.M{
			"$push": bson.M{"monthly_revenue": entry},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("append monthly revenue: %w", err)
	}
	return nil
}

func (r *financialsRepo) AppendPayment(ctx context.Context, clientID primitive.ObjectID, payment models.Payment) error {
	if err := r.EnsureForClient(ctx, clientID); err != nil {
		return err
	}
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"client_id": clientID},
		bson.M{
			"$push": bson.M{"payments": payment},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("append payment: %w", err)
	}
	return nil
}

func (r *financialsRepo) DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"client_id": clientID})
	if err != nil {
		return fmt.Errorf("delete financials: %w", err)
	}
	return nil
}
