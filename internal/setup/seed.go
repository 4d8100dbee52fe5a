package setup

import (
	"context"
	"fmt"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

// Seeder loads a small demo dataset on first boot so a fresh install has
// something to show. The meta sentinel makes it run at most once per
// database.
type Seeder struct {
	meta       mongodb.MetaRepository
	clients    mongodb.ClientRepository
	channels   mongodb.ChannelRepository
	movies     mongodb.MovieRepository
	series     mongodb.SeriesRepository
	financials mongodb.FinancialsRepository
	tickets    mongodb.TicketRepository
}

func NewSeeder(
	meta mongodb.MetaRepository,
	clients mongodb.ClientRepository,
	channels mongodb.ChannelRepository,
	movies mongodb.MovieRepository,
	series mongodb.SeriesRepository,
	financials mongodb.FinancialsRepository,
	tickets mongodb.TicketRepository,
) *Seeder {
	return &Seeder{
		meta:       meta,
		clients:    clients,
		channels:   channels,
		movies:     movies,
		series:     series,
		financials: financials,
		tickets:    tickets,
	}
}

func RunSeed(lc fx.Lifecycle, cfg *config.Config, seeder *Seeder) {
	if !cfg.Seed.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return seeder.Run(ctx)
		},
	})
}

func (s *Seeder) Run(ctx context.Context) error {
	seeded, err := s.meta.IsSeeded(ctx)
	if err != nil {
		return fmt.Errorf("check seed sentinel: %w", err)
	}
	if seeded {
		return nil
	}

	log.Infow(ctx, "seeding demo data")

	client := &models.Client{
		Name:         "Acme Streaming",
		Email:        "owner@acmestreaming.example",
		Phone:        "+1 555 0100",
		Company:      "Acme Streaming LLC",
		Password:     "changeme",
		Plan:         models.PlanPremium,
		Status:       models.ClientActive,
		RevenueShare: 70,
		MonthlyFee:   199,
		DeviceDistribution: map[string]float64{
			"Roku":     55,
			"Fire TV":  25,
			"Apple TV": 20,
		},
		RokuChannels: []models.DistributionChannel{{
			ID:        uuid.NewString(),
			Platform:  models.PlatformRoku,
			ChannelID: "acme-movies",
			Name:      "Acme Movies",
			Status:    models.DistributionActive,
			CreatedAt: time.Now(),
		}},
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return fmt.Errorf("seed client: %w", err)
	}

	channel := &models.Channel{
		Name:        "Acme Movies",
		Category:    "Movies",
		Subscribers: 12400,
		ClientID:    &client.ID,
	}
	if err := s.channels.Create(ctx, channel); err != nil {
		return fmt.Errorf("seed channel: %w", err)
	}
	if err := s.clients.AddChannelID(ctx, client.ID, channel.ID); err != nil {
		return fmt.Errorf("link seed channel: %w", err)
	}

	movies := []*models.Movie{
		{Title: "Midnight Harbor", Genre: "Thriller", Year: 2023, Rating: 7.8, DurationMinutes: 104, Views: 48211, Revenue: 9642.20},
		{Title: "The Long Meadow", Genre: "Drama", Year: 2021, Rating: 6.9, DurationMinutes: 118, Views: 30577, Revenue: 6115.40},
	}
	for _, m := range movies {
		m.ChannelID = &channel.ID
		if err := s.movies.Create(ctx, m); err != nil {
			return fmt.Errorf("seed movie: %w", err)
		}
		if err := s.channels.AddMovieID(ctx, channel.ID, m.ID); err != nil {
			return fmt.Errorf("link seed movie: %w", err)
		}
	}

	show := &models.Series{
		Title: "Harbor Patrol", Genre: "Crime", Year: 2022, Rating: 8.1,
		Seasons: 2, Episodes: 16, Views: 77310, Revenue: 15462.00,
		ChannelID: &channel.ID,
	}
	if err := s.series.Create(ctx, show); err != nil {
		return fmt.Errorf("seed series: %w", err)
	}
	if err := s.channels.AddSeriesID(ctx, channel.ID, show.ID); err != nil {
		return fmt.Errorf("link seed series: %w", err)
	}

	if err := s.financials.EnsureForClient(ctx, client.ID); err != nil {
		return fmt.Errorf("seed financials: %w", err)
	}
	for i, month := range []string{"2026-05", "2026-06", "2026-07"} {
		entry := models.MonthlyRevenue{Month: month, Amount: 2500 + float64(i)*400}
		if err := s.financials.UpsertMonthlyRevenue(ctx, client.ID, entry); err != nil {
			return fmt.Errorf("seed revenue: %w", err)
		}
	}
	if err := s.financials.AppendPayment(ctx, client.ID, models.Payment{
		ID:     uuid.NewString(),
		Date:   time.Now().AddDate(0, -1, 0),
		Amount: 2500,
		Status: models.PaymentPaid,
		Method: "PayPal",
	}); err != nil {
		return fmt.Errorf("seed payment: %w", err)
	}

	ticket := &models.SupportTicket{
		ClientID: client.ID,
		Subject:  "Artwork not updating on Roku",
		Category: "Distribution",
		Priority: models.PriorityMedium,
		Messages: []models.TicketMessage{{
			ID:         uuid.NewString(),
			SenderType: models.SenderClient,
			Body:       "We pushed new channel artwork two days ago and the store still shows the old one.",
			CreatedAt:  time.Now(),
		}},
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return fmt.Errorf("seed ticket: %w", err)
	}

	if err := s.meta.MarkSeeded(ctx); err != nil {
		return fmt.Errorf("mark seeded: %w", err)
	}

	log.Infow(ctx, "demo data seeded", "client_id", client.ID.Hex())
	return nil
}
