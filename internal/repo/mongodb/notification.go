package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

type AdminNotificationRepository interface {
	Insert(ctx context.Context, notif *models.AdminNotification) error
	List(ctx context.Context) ([]*models.AdminNotification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	MarkAllRead(ctx context.Context) error
	Clear(ctx context.Context) error
}

type adminNotificationRepo struct {
	collection *mongo.Collection
}

func NewAdminNotificationRepository(db *DB) AdminNotificationRepository {
	return &adminNotificationRepo{
		collection: db.Database.Collection("admin_notifications"),
	}
}

func (r *adminNotificationRepo) Insert(ctx context.Context, notif *models.AdminNotification) error {
	notif.ID = primitive.NewObjectID()
	notif.CreatedAt = time.Now()
	notif.Read = false

	if _, err := r.collection.InsertOne(ctx, notif); err != nil {
		return fmt.Errorf("insert admin notification: %w", err)
	}
	return nil
}

func (r *adminNotificationRepo) List(ctx context.Context) ([]*models.AdminNotification, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list admin notifications: %w", err)
	}
	var notifs []*models.AdminNotification
	if err := cursor.All(ctx, &notifs); err != nil {
		return nil, fmt.Errorf("decode admin notifications: %w", err)
	}
	return notifs, nil
}

func (r *adminNotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"read": false})
}

func (r *adminNotificationRepo) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"read": true},
	})
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *adminNotificationRepo) MarkAllRead(ctx context.Context) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"read": false}, bson.M{
		"$set": bson.M{"read": true},
	})
	if err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}
	return nil
}

func (r *adminNotificationRepo) Clear(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear admin notifications: %w", err)
	}
	return nil
}
