package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

type ticketFixture struct {
	tickets   *fakeTicketRepo
	clients   *fakeClientRepo
	llm       *fakeLLM
	notifier  *fakeNotifier
	publisher *fakePublisher
	uc        *TicketUsecase
	client    *models.Client
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	f := &ticketFixture{
		tickets:   newFakeTicketRepo(),
		clients:   newFakeClientRepo(),
		llm:       &fakeLLM{},
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
	}
	f.uc = NewTicketUsecase(f.tickets, f.clients, f.llm, f.notifier, f.publisher)
	f.client = &models.Client{Name: "Acme", Email: "acme@example.com", Plan: models.PlanStandard}
	require.NoError(t, f.clients.Create(context.Background(), f.client))
	return f
}

func (f *ticketFixture) open(t *testing.T, body string) *models.SupportTicket {
	t.Helper()
	ticket := &models.SupportTicket{ClientID: f.client.ID, Subject: "Playback stutter"}
	require.NoError(t, f.uc.Create(context.Background(), ticket, body))
	return ticket
}

func TestTicketCreate(t *testing.T) {
	f := newTicketFixture(t)
	ticket := f.open(t, "Streams buffer every few seconds.")

	got, err := f.tickets.GetByID(context.Background(), ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketOpen, got.Status)
	assert.Equal(t, models.PriorityMedium, got.Priority)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, models.SenderClient, got.Messages[0].SenderType)
	assert.True(t, f.notifier.hasTitle("New Support Ticket"))
}

func TestTicketReply(t *testing.T) {
	ctx := context.Background()

	t.Run("first admin reply moves open to in progress", func(t *testing.T) {
		f := newTicketFixture(t)
		ticket := f.open(t, "help")

		require.NoError(t, f.uc.Reply(ctx, ticket.ID, models.SenderAdmin, "Looking into it."))

		got, err := f.tickets.GetByID(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TicketInProgress, got.Status)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, models.SenderAdmin, got.Messages[1].SenderType)

		last := f.notifier.sent[len(f.notifier.sent)-1]
		assert.Equal(t, "client", last.Audience)
		assert.Equal(t, "Support Reply", last.Title)
	})

	t.Run("client reply notifies the admin", func(t *testing.T) {
		f := newTicketFixture(t)
		ticket := f.open(t, "help")

		require.NoError(t, f.uc.Reply(ctx, ticket.ID, models.SenderClient, "Still broken."))

		last := f.notifier.sent[len(f.notifier.sent)-1]
		assert.Equal(t, "admin", last.Audience)
		assert.Equal(t, "Ticket Reply", last.Title)

		// a client reply never changes the status
		got, err := f.tickets.GetByID(ctx, ticket.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TicketOpen, got.Status)
	})

	t.Run("closed and resolved tickets refuse replies", func(t *testing.T) {
		f := newTicketFixture(t)
		for _, st := range []models.TicketStatus{models.TicketClosed, models.TicketResolved} {
			ticket := f.open(t, "help")
			require.NoError(t, f.uc.SetStatus(ctx, ticket.ID, st))

			err := f.uc.Reply(ctx, ticket.ID, models.SenderAdmin, "too late")
			require.Error(t, err)
			assert.Equal(t, codes.FailedPrecondition, status.Code(err))
		}
	})

	t.Run("empty body rejected", func(t *testing.T) {
		f := newTicketFixture(t)
		ticket := f.open(t, "help")
		err := f.uc.Reply(ctx, ticket.ID, models.SenderAdmin, "")
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestTicketSetStatus(t *testing.T) {
	ctx := context.Background()
	f := newTicketFixture(t)
	ticket := f.open(t, "help")

	require.NoError(t, f.uc.SetStatus(ctx, ticket.ID, models.TicketResolved))

	got, err := f.tickets.GetByID(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketResolved, got.Status)
	assert.True(t, f.publisher.sawCollection("tickets"))
}

func TestChatbotReply(t *testing.T) {
	f := newTicketFixture(t)
	f.llm.reply = "Check the payouts page."

	reply := f.uc.ChatbotReply(context.Background(), "When do I get paid?")
	assert.Equal(t, "Check the payouts page.", reply)
}
