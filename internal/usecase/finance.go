package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

type FinanceUsecase struct {
	financials mongodb.FinancialsRepository
	clients    mongodb.ClientRepository
	notifier   Notifier
	publisher  Publisher
}

func NewFinanceUsecase(
	financials mongodb.FinancialsRepository,
	clients mongodb.ClientRepository,
	notifier Notifier,
	publisher Publisher,
) *FinanceUsecase {
	return &FinanceUsecase{
		financials: financials,
		clients:    clients,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (uc *FinanceUsecase) Get(ctx context.Context, clientID primitive.ObjectID) (*models.ClientFinancials, error) {
	fin, err := uc.financials.GetByClient(ctx, clientID)
	if err == models.ErrNotFound {
		// financials are created lazily; an empty view is fine
		return &models.ClientFinancials{
			ClientID:       clientID,
			MonthlyRevenue: []models.MonthlyRevenue{},
			Payments:       []models.Payment{},
		}, nil
	}
	return fin, err
}

// AddMonthlyRevenue upserts by month label: a month that already has an entry
// is overwritten, never duplicated.
func (uc *FinanceUsecase) AddMonthlyRevenue(ctx context.Context, clientID primitive.ObjectID, entry models.MonthlyRevenue) error {
	if entry.Month == "" {
		return status.Errorf(codes.InvalidArgument, "month must not be empty")
	}
	if entry.Amount < 0 {
		entry.Amount = 0
	}
	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return err
	}
	if err := uc.financials.UpsertMonthlyRevenue(ctx, clientID, entry); err != nil {
		return err
	}
	uc.notifier.NotifyClient(ctx, clientID, models.NotifInfo,
		"Revenue Recorded",
		fmt.Sprintf("Revenue of %.2f was recorded for %s.", entry.Amount, entry.Month))
	uc.publisher.CollectionChanged(ctx, "financials")
	return nil
}

func (uc *FinanceUsecase) AddPayment(ctx context.Context, clientID primitive.ObjectID, payment models.Payment) error {
	if payment.Amount < 0 {
		return status.Errorf(codes.InvalidArgument, "payment amount must be >= 0")
	}
	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return err
	}
	payment.ID = uuid.NewString()
	if payment.Date.IsZero() {
		payment.Date = time.Now()
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	if err := uc.financials.AppendPayment(ctx, clientID, payment); err != nil {
		return err
	}
	uc.notifier.NotifyClient(ctx, clientID, models.NotifSuccess,
		"Payment Added",
		fmt.Sprintf("A payment of %.2f (%s) was added to your account.", payment.Amount, payment.Status))
	uc.publisher.CollectionChanged(ctx, "financials")
	return nil
}

func (uc *FinanceUsecase) UpdatePayPalEmail(ctx context.Context, clientID primitive.ObjectID, email string) error {
	if email == "" {
		return status.Errorf(codes.InvalidArgument, "email must not be empty")
	}
	if err := uc.clients.SetPayPalEmail(ctx, clientID, email); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "clients")
	return nil
}

// Totals sums earnings and payouts over one client's financials. Earnings is
// the sum of all monthly revenue; paid counts Paid payments; pending counts
// Pending and Processing.
func Totals(fin *models.ClientFinancials) models.RevenueTotals {
	var totals models.RevenueTotals
	for _, m := range fin.MonthlyRevenue {
		totals.TotalEarnings += m.Amount
	}
	for _, p := range fin.Payments {
		switch p.Status {
		case models.PaymentPaid:
			totals.TotalPaid += p.Amount
		case models.PaymentPending, models.PaymentProcessing:
			totals.PendingPayout += p.Amount
		}
	}
	return totals
}
