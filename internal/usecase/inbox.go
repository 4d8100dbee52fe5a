package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

// InboxUsecase manages the admin notification feed.
type InboxUsecase struct {
	notifications mongodb.AdminNotificationRepository
	publisher     Publisher
}

func NewInboxUsecase(notifications mongodb.AdminNotificationRepository, publisher Publisher) *InboxUsecase {
	return &InboxUsecase{notifications: notifications, publisher: publisher}
}

func (uc *InboxUsecase) List(ctx context.Context) ([]*models.AdminNotification, error) {
	return uc.notifications.List(ctx)
}

func (uc *InboxUsecase) CountUnread(ctx context.Context) (int64, error) {
	return uc.notifications.CountUnread(ctx)
}

func (uc *InboxUsecase) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	if err := uc.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "admin_notifications")
	return nil
}

func (uc *InboxUsecase) MarkAllRead(ctx context.Context) error {
	if err := uc.notifications.MarkAllRead(ctx); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "admin_notifications")
	return nil
}

func (uc *InboxUsecase) Clear(ctx context.Context) error {
	if err := uc.notifications.Clear(ctx); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "admin_notifications")
	return nil
}
