package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

type DistributionUsecase struct {
	clients   mongodb.ClientRepository
	notifier  Notifier
	publisher Publisher
}

func NewDistributionUsecase(clients mongodb.ClientRepository, notifier Notifier, publisher Publisher) *DistributionUsecase {
	return &DistributionUsecase{
		clients:   clients,
		notifier:  notifier,
		publisher: publisher,
	}
}

// Add registers a new distribution channel for the client. The external
// channel id must be unique within the client's list, case-insensitively;
// a duplicate is rejected before any write happens.
func (uc *DistributionUsecase) Add(ctx context.Context, clientID primitive.ObjectID, dc models.DistributionChannel) (*models.DistributionChannel, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	external := strings.TrimSpace(dc.ChannelID)
	if external == "" {
		return nil, status.Errorf(codes.InvalidArgument, "channel id must not be empty")
	}
	for _, existing := range client.RokuChannels {
		if strings.EqualFold(existing.ChannelID, external) {
			return nil, status.Errorf(codes.AlreadyExists, "channel id %q already registered", external)
		}
	}

	dc.ID = uuid.NewString()
	dc.ChannelID = external
	dc.Status = models.DistributionPending
	dc.CreatedAt = time.Now()
	dc.ApprovedAt = nil

	if err := uc.clients.AddDistributionChannel(ctx, clientID, dc); err != nil {
		return nil, err
	}

	uc.notifier.NotifyAdmin(ctx, client, models.NotifDistributionAdd,
		"Distribution Channel Added",
		fmt.Sprintf("Client %q registered %s channel %q.", client.Name, dc.Platform, dc.ChannelID))
	uc.publisher.CollectionChanged(ctx, "clients")
	return &dc, nil
}

func (uc *DistributionUsecase) Remove(ctx context.Context, clientID primitive.ObjectID, dcID string) error {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}

	var removed *models.DistributionChannel
	for i := range client.RokuChannels {
		if client.RokuChannels[i].ID == dcID {
			removed = &client.RokuChannels[i]
			break
		}
	}
	if removed == nil {
		return models.ErrNotFound
	}

	if err := uc.clients.RemoveDistributionChannel(ctx, clientID, dcID); err != nil {
		return err
	}

	uc.notifier.NotifyAdmin(ctx, client, models.NotifDistributionRemove,
		"Distribution Channel Removed",
		fmt.Sprintf("Client %q removed %s channel %q.", client.Name, removed.Platform, removed.ChannelID))
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// SetStatus moves a distribution channel through approval. Only the
// transition to Active counts as an approval and notifies the client.
func (uc *DistributionUsecase) SetStatus(ctx context.Context, clientID primitive.ObjectID, dcID string, statusTo models.DistributionStatus) error {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}

	var target *models.DistributionChannel
	for i := range client.RokuChannels {
		if client.RokuChannels[i].ID == dcID {
			target = &client.RokuChannels[i]
			break
		}
	}
	if target == nil {
		return models.ErrNotFound
	}

	var approvedAt *time.Time
	if statusTo == models.DistributionActive {
		now := time.Now()
		approvedAt = &now
	}
	if err := uc.clients.SetDistributionStatus(ctx, clientID, dcID, statusTo, approvedAt); err != nil {
		return err
	}

	if statusTo == models.DistributionActive {
		uc.notifier.NotifyClient(ctx, clientID, models.NotifSuccess,
			"Distribution Channel Approved",
			fmt.Sprintf("Your %s channel %q has been approved and is now active.", target.Platform, target.ChannelID))
	}
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}
