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

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.SupportTicket, error)
	List(ctx context.Context) ([]*models.SupportTicket, error)
	ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.SupportTicket, error)
	AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.TicketMessage, status *models.TicketStatus) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error
	DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error
}

type ticketRepo struct {
	collection *mongo.Collection
}

func NewTicketRepository(db *DB) TicketRepository {
	return &ticketRepo{
		collection: db.Database.Collection("tickets"),
	}
}

func (r *ticketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	now := time.Now()
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now
	if ticket.Status == "" {
		ticket.Status = models.TicketOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = models.PriorityMedium
	}

	if _, err := r.collection.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (r *ticketRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find ticket: %w", err)
	}
	return &ticket, nil
}

func (r *ticketRepo) List(ctx context.Context) ([]*models.SupportTicket, error) {
	return r.find(ctx, bson.M{})
}

func (r *ticketRepo) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.SupportTicket, error) {
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *ticketRepo) find(ctx context.Context, filter bson.M) ([]*models.SupportTicket, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"updated_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	var tickets []*models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return tickets, nil
}

// AppendMessage appends to the ordered message list and optionally moves the
// ticket to a new status in the same write.
func (r *ticketRepo) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.TicketMessage, status *models.TicketStatus) error {
	set := bson.M{"updated_at": time.Now()}
	if status != nil {
		set["status"] = *status
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"messages": msg},
		"$set":  set,
	})
	if err != nil {
		return fmt.Errorf("append ticket message: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ticketRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status, "updated_at": time.Now()},
	})
	if err != nil {
		return fmt.Errorf("set ticket status: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *ticketRepo) DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"client_id": clientID}); err != nil {
		return fmt.Errorf("delete tickets: %w", err)
	}
	return nil
}
