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

// keepNotifications caps the embedded notification list so a busy client
// document cannot grow without bound.
const keepNotifications = 100

type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
	List(ctx context.Context) ([]*models.Client, error)
	UpdateProfile(ctx context.Context, client *models.Client) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClientStatus, banReason, suspendReason string) error
	SetRevenueTerms(ctx context.Context, id primitive.ObjectID, revenueShare, monthlyFee float64) error
	SetPassword(ctx context.Context, id primitive.ObjectID, password string) error
	SetPayPalEmail(ctx context.Context, id primitive.ObjectID, email string) error
	PushAdminAction(ctx context.Context, id primitive.ObjectID, action models.AdminAction) error
	AddChannelID(ctx context.Context, id, channelID primitive.ObjectID) error
	RemoveChannelID(ctx context.Context, id, channelID primitive.ObjectID) error
	PushNotification(ctx context.Context, id primitive.ObjectID, notif models.ClientNotification) error
	MarkNotificationRead(ctx context.Context, id primitive.ObjectID, notifID string) error
	MarkAllNotificationsRead(ctx context.Context, id primitive.ObjectID) error
	AddDistributionChannel(ctx context.Context, id primitive.ObjectID, dc models.DistributionChannel) error
	RemoveDistributionChannel(ctx context.Context, id primitive.ObjectID, dcID string) error
	SetDistributionStatus(ctx context.Context, id primitive.ObjectID, dcID string, status models.DistributionStatus, approvedAt *time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type clientRepo struct {
	collection *mongo.Collection
}

func NewClientRepository(db *DB) ClientRepository {
	return &clientRepo{
		collection: db.Database.Collection("clients"),
	}
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	now := time.Now()
	client.ID = primitive.NewObjectID()
	client.CreatedAt = now
	client.UpdatedAt = now
	if client.Status == "" {
		client.Status = models.ClientActive
	}
	if client.ChannelIDs == nil {
		client.ChannelIDs = []primitive.ObjectID{}
	}
	if client.RokuChannels == nil {
		client.RokuChannels = []models.DistributionChannel{}
	}
	if client.Notifications == nil {
		client.Notifications = []models.ClientNotification{}
	}
	if client.AdminActions == nil {
		client.AdminActions = []models.AdminAction{}
	}

	if _, err := r.collection.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *clientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find client by email: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) List(ctx context.Context) ([]*models.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	var clients []*models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

// UpdateProfile patches the plain profile fields only; relationship arrays,
// notifications and audit entries have their own targeted operations.
func (r *clientRepo) UpdateProfile(ctx context.Context, client *models.Client) error {
	set := bson.M{
		"name":       client.Name,
		"email":      client.Email,
		"phone":      client.Phone,
		"company":    client.Company,
		"logo":       client.Logo,
		"plan":       client.Plan,
		"updated_at": time.Now(),
	}
	if client.DeviceDistribution != nil {
		set["device_distribution"] = client.DeviceDistribution
	}
	return r.setFields(ctx, client.ID, set)
}

func (r *clientRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClientStatus, banReason, suspendReason string) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	unset := bson.M{}
	if banReason != "" {
		set["ban_reason"] = banReason
	} else {
		unset["ban_reason"] = ""
	}
	if suspendReason != "" {
		set["suspend_reason"] = suspendReason
	} else {
		unset["suspend_reason"] = ""
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return r.updateOne(ctx, id, update)
}

func (r *clientRepo) SetRevenueTerms(ctx context.Context, id primitive.ObjectID, revenueShare, monthlyFee float64) error {
	return r.setFields(ctx, id, bson.M{
		"revenue_share": revenueShare,
		"monthly_fee":   monthlyFee,
		"updated_at":    time.Now(),
	})
}

func (r *clientRepo) SetPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	return r.setFields(ctx, id, bson.M{"password": password, "updated_at": time.Now()})
}

func (r *clientRepo) SetPayPalEmail(ctx context.Context, id primitive.ObjectID, email string) error {
	return r.setFields(ctx, id, bson.M{"paypal_email": email, "updated_at": time.Now()})
}

func (r *clientRepo) PushAdminAction(ctx context.Context, id primitive.ObjectID, action models.AdminAction) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{
			"admin_actions": bson.M{
				"$each":     []models.AdminAction{action},
				"$position": 0,
			},
		},
		"$set": bson.M{"updated_at": time.Now()},
	})
}

// AddChannelID uses $addToSet so assigning the same channel twice cannot
// duplicate the reference.
func (r *clientRepo) AddChannelID(ctx context.Context, id, channelID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$addToSet": bson.M{"channel_ids": channelID},
		"$set":      bson.M{"updated_at": time.Now()},
	})
}

func (r *clientRepo) RemoveChannelID(ctx context.Context, id, channelID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$pull": bson.M{"channel_ids": channelID},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *clientRepo) PushNotification(ctx context.Context, id primitive.ObjectID, notif models.ClientNotification) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{
			"notifications": bson.M{
				"$each":     []models.ClientNotification{notif},
				"$position": 0,
				"$slice":    keepNotifications,
			},
		},
	})
}

func (r *clientRepo) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, notifID string) error {
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []any{bson.M{"n.id": notifID}},
	})
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"notifications.$[n].read": true},
	}, opts)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *clientRepo) MarkAllNotificationsRead(ctx context.Context, id primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{"notifications.$[].read": true},
	})
}

func (r *clientRepo) AddDistributionChannel(ctx context.Context, id primitive.ObjectID, dc models.DistributionChannel) error {
	return r.updateOne(ctx, id, bson.M{
		"$push": bson.M{"roku_channels": dc},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *clientRepo) RemoveDistributionChannel(ctx context.Context, id primitive.ObjectID, dcID string) error {
	return r.updateOne(ctx, id, bson.M{
		"$pull": bson.M{"roku_channels": bson.M{"id": dcID}},
		"$set":  bson.M{"updated_at": time.Now()},
	})
}

func (r *clientRepo) SetDistributionStatus(ctx context.Context, id primitive.ObjectID, dcID string, status models.DistributionStatus, approvedAt *time.Time) error {
	set := bson.M{
		"roku_channels.$[c].status": status,
		"updated_at":                time.Now(),
	}
	if approvedAt != nil {
		set["roku_channels.$[c].approved_at"] = *approvedAt
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []any{bson.M{"c.id": dcID}},
	})
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return fmt.Errorf("set distribution status: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *clientRepo) setFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return r.updateOne(ctx, id, bson.M{"$set": set})
}

func (r *clientRepo) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
