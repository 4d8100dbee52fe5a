package usecase

import (
	"context"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/kafka"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

// Notifier synthesizes a notification as a side effect of a state change and
// delivers it to its audience: a document in admin_notifications for the
// admin inbox, or a prepended entry in the client's embedded list. Every
// emission is also pushed over the websocket hub and published to Kafka.
//
// Fan-out is best-effort: failures are logged and never fail the mutation
// that triggered them.
type Notifier interface {
	NotifyAdmin(ctx context.Context, client *models.Client, typ models.NotificationType, title, message string)
	NotifyClient(ctx context.Context, clientID primitive.ObjectID, typ models.NotificationType, title, message string)
}

type notifier struct {
	adminNotifs mongodb.AdminNotificationRepository
	clients     mongodb.ClientRepository
	producer    kafka.Producer
	broadcaster Broadcaster
	publisher   Publisher
}

func NewNotifier(
	adminNotifs mongodb.AdminNotificationRepository,
	clients mongodb.ClientRepository,
	producer kafka.Producer,
	broadcaster Broadcaster,
	publisher Publisher,
) Notifier {
	return &notifier{
		adminNotifs: adminNotifs,
		clients:     clients,
		producer:    producer,
		broadcaster: broadcaster,
		publisher:   publisher,
	}
}

// NotifyAdmin snapshots the client's name and logo at creation time; the
// snapshot is never refreshed if the client is later renamed.
func (n *notifier) NotifyAdmin(ctx context.Context, client *models.Client, typ models.NotificationType, title, message string) {
	notif := &models.AdminNotification{
		ClientID:   client.ID,
		ClientName: client.Name,
		ClientLogo: client.Logo,
		Type:       typ,
		Title:      title,
		Message:    message,
	}
	if err := n.adminNotifs.Insert(ctx, notif); err != nil {
		log.Errorw(ctx, "insert admin notification", "type", typ, "error", err)
		return
	}

	n.broadcaster.BroadcastToAdmin("notification", notif)
	n.publisher.CollectionChanged(ctx, "admin_notifications")
	n.producer.PublishNotification(ctx, kafka.NotificationEvent{
		Audience: "admin",
		ClientID: client.ID.Hex(),
		Type:     typ,
		Title:    title,
		Message:  message,
		At:       notif.CreatedAt,
	})
}

func (n *notifier) NotifyClient(ctx context.Context, clientID primitive.ObjectID, typ models.NotificationType, title, message string) {
	notif := models.ClientNotification{
		ID:        uuid.NewString(),
		Type:      typ,
		Title:     title,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
	if err := n.clients.PushNotification(ctx, clientID, notif); err != nil {
		log.Errorw(ctx, "push client notification", "client_id", clientID.Hex(), "type", typ, "error", err)
		return
	}

	n.broadcaster.BroadcastToClient(clientID.Hex(), "notification", notif)
	n.publisher.CollectionChanged(ctx, "clients")
	n.producer.PublishNotification(ctx, kafka.NotificationEvent{
		Audience: "client",
		ClientID: clientID.Hex(),
		Type:     typ,
		Title:    title,
		Message:  message,
		At:       notif.CreatedAt,
	})
}
