package usecase

import (
	"context"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/util"
)

type ClientUsecase struct {
	clients    mongodb.ClientRepository
	financials mongodb.FinancialsRepository
	notifier   Notifier
	publisher  Publisher
}

func NewClientUsecase(
	clients mongodb.ClientRepository,
	financials mongodb.FinancialsRepository,
	notifier Notifier,
	publisher Publisher,
) *ClientUsecase {
	return &ClientUsecase{
		clients:    clients,
		financials: financials,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (uc *ClientUsecase) Create(ctx context.Context, client *models.Client) error {
	client.RevenueShare = util.Clamp(client.RevenueShare, 0, 100)
	if client.MonthlyFee < 0 {
		client.MonthlyFee = 0
	}
	if err := uc.clients.Create(ctx, client); err != nil {
		return err
	}
	if err := uc.financials.EnsureForClient(ctx, client.ID); err != nil {
		log.Warnw(ctx, "create financials for new client", "client_id", client.ID.Hex(), "error", err)
	}

	uc.notifier.NotifyAdmin(ctx, client, models.NotifClientAction,
		"New Client", fmt.Sprintf("Client %q was created on the %s plan.", client.Name, client.Plan))
	uc.publisher.CollectionChanged(ctx, "clients", "financials")
	return nil
}

func (uc *ClientUsecase) Get(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	return uc.clients.GetByID(ctx, id)
}

func (uc *ClientUsecase) List(ctx context.Context) ([]*models.Client, error) {
	return uc.clients.List(ctx)
}

func (uc *ClientUsecase) UpdateProfile(ctx context.Context, client *models.Client) error {
	for k, v := range client.DeviceDistribution {
		if v < 0 {
			client.DeviceDistribution[k] = 0
		}
	}
	if err := uc.clients.UpdateProfile(ctx, client); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// SetStatus applies a status transition, records it in the audit trail
// regardless of direction, and notifies the client with a severity matching
// the transition: ban -> alert, suspend -> warning, activate -> success.
func (uc *ClientUsecase) SetStatus(ctx context.Context, id primitive.ObjectID, statusTo models.ClientStatus, reason string) error {
	if _, err := uc.clients.GetByID(ctx, id); err != nil {
		return err
	}

	var banReason, suspendReason string
	switch statusTo {
	case models.ClientBanned:
		banReason = reason
	case models.ClientSuspended:
		suspendReason = reason
	case models.ClientActive, models.ClientInactive:
	default:
		return status.Errorf(codes.InvalidArgument, "unknown status %q", statusTo)
	}

	if err := uc.clients.SetStatus(ctx, id, statusTo, banReason, suspendReason); err != nil {
		return err
	}

	action := models.AdminAction{Reason: reason, At: time.Now()}
	var notifType models.NotificationType
	var title, message string
	switch statusTo {
	case models.ClientBanned:
		action.Type = models.ActionBan
		notifType, title = models.NotifAlert, "Account Banned"
		message = fmt.Sprintf("Your account has been banned. Reason: %s", reason)
	case models.ClientSuspended:
		action.Type = models.ActionSuspend
		notifType, title = models.NotifWarning, "Account Suspended"
		message = fmt.Sprintf("Your account has been suspended. Reason: %s", reason)
	case models.ClientActive:
		action.Type = models.ActionActivate
		notifType, title = models.NotifSuccess, "Account Activated"
		message = "Your account is active again."
	case models.ClientInactive:
		action.Type = models.ActionDeactivate
		notifType, title = models.NotifInfo, "Account Deactivated"
		message = "Your account has been marked inactive."
	}

	if err := uc.clients.PushAdminAction(ctx, id, action); err != nil {
		log.Warnw(ctx, "record admin action", "client_id", id.Hex(), "error", err)
	}
	uc.notifier.NotifyClient(ctx, id, notifType, title, message)
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// SendWarning is the ad-hoc admin warning, outside any status change.
func (uc *ClientUsecase) SendWarning(ctx context.Context, id primitive.ObjectID, message string) error {
	if _, err := uc.clients.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.clients.PushAdminAction(ctx, id, models.AdminAction{
		Type:    models.ActionWarn,
		Details: message,
		At:      time.Now(),
	}); err != nil {
		return err
	}
	uc.notifier.NotifyClient(ctx, id, models.NotifAlert, "Warning", message)
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

func (uc *ClientUsecase) ChangePassword(ctx context.Context, id primitive.ObjectID, password string) error {
	if password == "" {
		return status.Errorf(codes.InvalidArgument, "password must not be empty")
	}
	if err := uc.clients.SetPassword(ctx, id, password); err != nil {
		return err
	}
	if err := uc.clients.PushAdminAction(ctx, id, models.AdminAction{
		Type: models.ActionPasswordChange,
		At:   time.Now(),
	}); err != nil {
		log.Warnw(ctx, "record admin action", "client_id", id.Hex(), "error", err)
	}
	uc.notifier.NotifyClient(ctx, id, models.NotifInfo,
		"Password Changed", "Your account password was changed by an administrator.")
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// UpdateRevenueTerms clamps the share into [0, 100] and the fee to >= 0.
func (uc *ClientUsecase) UpdateRevenueTerms(ctx context.Context, id primitive.ObjectID, revenueShare, monthlyFee float64) error {
	revenueShare = util.Clamp(revenueShare, 0, 100)
	if monthlyFee < 0 {
		monthlyFee = 0
	}
	if err := uc.clients.SetRevenueTerms(ctx, id, revenueShare, monthlyFee); err != nil {
		return err
	}
	if err := uc.clients.PushAdminAction(ctx, id, models.AdminAction{
		Type:    models.ActionFeeUpdate,
		Details: fmt.Sprintf("revenue share %.0f%%, monthly fee %.2f", revenueShare, monthlyFee),
		At:      time.Now(),
	}); err != nil {
		log.Warnw(ctx, "record admin action", "client_id", id.Hex(), "error", err)
	}
	uc.notifier.NotifyClient(ctx, id, models.NotifInfo,
		"Terms Updated",
		fmt.Sprintf("Your revenue share is now %.0f%% and your monthly fee is %.2f.", revenueShare, monthlyFee))
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// RequestPasswordReset notifies the admin and acknowledges the client. No
// automatic reset happens: the admin manually sets a new password through the
// password change flow.
func (uc *ClientUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	client, err := uc.clients.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	uc.notifier.NotifyAdmin(ctx, client, models.NotifPasswordReset,
		"Password Reset Requested",
		fmt.Sprintf("Client %q requested a password reset.", client.Name))
	uc.notifier.NotifyClient(ctx, client.ID, models.NotifInfo,
		"Password Reset Requested",
		"Your password reset request was received. An administrator will review it shortly.")
	return nil
}

func (uc *ClientUsecase) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, notifID string) error {
	if err := uc.clients.MarkNotificationRead(ctx, id, notifID); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

func (uc *ClientUsecase) MarkAllNotificationsRead(ctx context.Context, id primitive.ObjectID) error {
	if err := uc.clients.MarkAllNotificationsRead(ctx, id); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}
