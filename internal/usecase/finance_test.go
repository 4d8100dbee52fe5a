package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

type financeFixture struct {
	financials *fakeFinancialsRepo
	clients    *fakeClientRepo
	notifier   *fakeNotifier
	publisher  *fakePublisher
	uc         *FinanceUsecase
	client     *models.Client
}

func newFinanceFixture(t *testing.T) *financeFixture {
	t.Helper()
	f := &financeFixture{
		financials: newFakeFinancialsRepo(),
		clients:    newFakeClientRepo(),
		notifier:   &fakeNotifier{},
		publisher:  &fakePublisher{},
	}
	f.uc = NewFinanceUsecase(f.financials, f.clients, f.notifier, f.publisher)
	f.client = &models.Client{Name: "Acme", Email: "acme@example.com", Plan: models.PlanStandard}
	require.NoError(t, f.clients.Create(context.Background(), f.client))
	return f
}

func TestFinanceGet(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	// no document yet: an empty view, not an error
	fin, err := f.uc.Get(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, f.client.ID, fin.ClientID)
	assert.Empty(t, fin.MonthlyRevenue)
	assert.Empty(t, fin.Payments)
}

func TestFinanceAddMonthlyRevenue(t *testing.T) {
	ctx := context.Background()

	t.Run("upserts by month label", func(t *testing.T) {
		f := newFinanceFixture(t)

		require.NoError(t, f.uc.AddMonthlyRevenue(ctx, f.client.ID, models.MonthlyRevenue{Month: "2026-07", Amount: 1200}))
		require.NoError(t, f.uc.AddMonthlyRevenue(ctx, f.client.ID, models.MonthlyRevenue{Month: "2026-07", Amount: 1500}))
		require.NoError(t, f.uc.AddMonthlyRevenue(ctx, f.client.ID, models.MonthlyRevenue{Month: "2026-08", Amount: 900}))

		fin, err := f.uc.Get(ctx, f.client.ID)
		require.NoError(t, err)
		require.Len(t, fin.MonthlyRevenue, 2)
		assert.Equal(t, float64(1500), fin.MonthlyRevenue[0].Amount)
		assert.True(t, f.notifier.hasTitle("Revenue Recorded"))
	})

	t.Run("empty month rejected", func(t *testing.T) {
		f := newFinanceFixture(t)
		err := f.uc.AddMonthlyRevenue(ctx, f.client.ID, models.MonthlyRevenue{Amount: 10})
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("negative amount clamps to zero", func(t *testing.T) {
		f := newFinanceFixture(t)
		require.NoError(t, f.uc.AddMonthlyRevenue(ctx, f.client.ID, models.MonthlyRevenue{Month: "2026-07", Amount: -50}))

		fin, err := f.uc.Get(ctx, f.client.ID)
		require.NoError(t, err)
		require.Len(t, fin.MonthlyRevenue, 1)
		assert.Zero(t, fin.MonthlyRevenue[0].Amount)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := newFinanceFixture(t)
		err := f.uc.AddMonthlyRevenue(ctx, primitive.NewObjectID(), models.MonthlyRevenue{Month: "2026-07", Amount: 10})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestFinanceAddPayment(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	require.NoError(t, f.uc.AddPayment(ctx, f.client.ID, models.Payment{Amount: 250, Method: "PayPal"}))

	fin, err := f.uc.Get(ctx, f.client.ID)
	require.NoError(t, err)
	require.Len(t, fin.Payments, 1)
	assert.NotEmpty(t, fin.Payments[0].ID)
	assert.Equal(t, models.PaymentPending, fin.Payments[0].Status)
	assert.False(t, fin.Payments[0].Date.IsZero())
	assert.True(t, f.notifier.hasTitle("Payment Added"))

	err = f.uc.AddPayment(ctx, f.client.ID, models.Payment{Amount: -1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestFinanceUpdatePayPalEmail(t *testing.T) {
	ctx := context.Background()
	f := newFinanceFixture(t)

	require.NoError(t, f.uc.UpdatePayPalEmail(ctx, f.client.ID, "payouts@acme.example"))

	got, err := f.clients.GetByID(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, "payouts@acme.example", got.PayPalEmail)

	err = f.uc.UpdatePayPalEmail(ctx, f.client.ID, "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTotals(t *testing.T) {
	fin := &models.ClientFinancials{
		MonthlyRevenue: []models.MonthlyRevenue{
			{Month: "2026-06", Amount: 1000},
			{Month: "2026-07", Amount: 1500},
		},
		Payments: []models.Payment{
			{Amount: 800, Status: models.PaymentPaid},
			{Amount: 300, Status: models.PaymentPending},
			{Amount: 200, Status: models.PaymentProcessing},
		},
	}

	totals := Totals(fin)
	assert.Equal(t, float64(2500), totals.TotalEarnings)
	assert.Equal(t, float64(800), totals.TotalPaid)
	assert.Equal(t, float64(500), totals.PendingPayout)

	empty := Totals(&models.ClientFinancials{})
	assert.Zero(t, empty.TotalEarnings)
	assert.Zero(t, empty.TotalPaid)
	assert.Zero(t, empty.PendingPayout)
}
