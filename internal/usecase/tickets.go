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
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/llm"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

type TicketUsecase struct {
	tickets   mongodb.TicketRepository
	clients   mongodb.ClientRepository
	llm       llm.Service
	notifier  Notifier
	publisher Publisher
}

func NewTicketUsecase(
	tickets mongodb.TicketRepository,
	clients mongodb.ClientRepository,
	llmService llm.Service,
	notifier Notifier,
	publisher Publisher,
) *TicketUsecase {
	return &TicketUsecase{
		tickets:   tickets,
		clients:   clients,
		llm:       llmService,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (uc *TicketUsecase) Create(ctx context.Context, ticket *models.SupportTicket, body string) error {
	client, err := uc.clients.GetByID(ctx, ticket.ClientID)
	if err != nil {
		return err
	}
	if body != "" {
		ticket.Messages = append(ticket.Messages, models.TicketMessage{
			ID:         uuid.NewString(),
			SenderType: models.SenderClient,
			Body:       body,
			CreatedAt:  time.Now(),
		})
	}
	if err := uc.tickets.Create(ctx, ticket); err != nil {
		return err
	}

	uc.notifier.NotifyAdmin(ctx, client, models.NotifClientAction,
		"New Support Ticket",
		fmt.Sprintf("Client %q opened a ticket: %s", client.Name, ticket.Subject))
	uc.publisher.CollectionChanged(ctx, "tickets")
	return nil
}

func (uc *TicketUsecase) Get(ctx context.Context, id primitive.ObjectID) (*models.SupportTicket, error) {
	return uc.tickets.GetByID(ctx, id)
}

func (uc *TicketUsecase) List(ctx context.Context) ([]*models.SupportTicket, error) {
	return uc.tickets.List(ctx)
}

func (uc *TicketUsecase) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.SupportTicket, error) {
	return uc.tickets.ListByClient(ctx, clientID)
}

// Reply appends a message to the ticket. The first admin reply moves an Open
// ticket to In Progress. Admin replies notify the client; client replies
// notify the admin.
func (uc *TicketUsecase) Reply(ctx context.Context, ticketID primitive.ObjectID, sender models.SenderType, body string) error {
	if body == "" {
		return status.Errorf(codes.InvalidArgument, "reply must not be empty")
	}
	ticket, err := uc.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.Status == models.TicketClosed || ticket.Status == models.TicketResolved {
		return status.Errorf(codes.FailedPrecondition, "ticket is %s", ticket.Status)
	}

	msg := models.TicketMessage{
		ID:         uuid.NewString(),
		SenderType: sender,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	var nextStatus *models.TicketStatus
	if sender == models.SenderAdmin && ticket.Status == models.TicketOpen {
		inProgress := models.TicketInProgress
		nextStatus = &inProgress
	}
	if err := uc.tickets.AppendMessage(ctx, ticketID, msg, nextStatus); err != nil {
		return err
	}

	switch sender {
	case models.SenderAdmin:
		uc.notifier.NotifyClient(ctx, ticket.ClientID, models.NotifInfo,
			"Support Reply",
			fmt.Sprintf("Support replied to your ticket %q.", ticket.Subject))
	case models.SenderClient:
		if client, err := uc.clients.GetByID(ctx, ticket.ClientID); err == nil {
			uc.notifier.NotifyAdmin(ctx, client, models.NotifClientAction,
				"Ticket Reply",
				fmt.Sprintf("Client %q replied to ticket %q.", client.Name, ticket.Subject))
		}
	}
	uc.publisher.CollectionChanged(ctx, "tickets")
	return nil
}

func (uc *TicketUsecase) SetStatus(ctx context.Context, ticketID primitive.ObjectID, statusTo models.TicketStatus) error {
	if err := uc.tickets.SetStatus(ctx, ticketID, statusTo); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "tickets")
	return nil
}

// ChatbotReply answers a portal support question. Model failures fall back
// to keyword-matched canned responses inside the llm service.
func (uc *TicketUsecase) ChatbotReply(ctx context.Context, message string) string {
	return uc.llm.ChatReply(ctx, message)
}
