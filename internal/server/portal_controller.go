package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/actor"
)

// PortalController serves the client portal. Every handler is scoped to the
// authenticated client; a client can never read or touch another account.
type PortalController interface {
	Dashboard(c echo.Context) error
	GetProfile(c echo.Context) error
	UpdateProfile(c echo.Context) error

	MarkNotificationRead(c echo.Context) error
	MarkAllNotificationsRead(c echo.Context) error

	AddDistributionChannel(c echo.Context) error
	RemoveDistributionChannel(c echo.Context) error

	GetFinancials(c echo.Context) error
	UpdatePayPalEmail(c echo.Context) error

	CreateTicket(c echo.Context) error
	ListTickets(c echo.Context) error
	GetTicket(c echo.Context) error
	ReplyTicket(c echo.Context) error

	Chatbot(c echo.Context) error
}

type portalController struct {
	clients      *usecase.ClientUsecase
	distribution *usecase.DistributionUsecase
	finance      *usecase.FinanceUsecase
	tickets      *usecase.TicketUsecase
	aggregate    *usecase.AggregateUsecase
}

func NewPortalController(
	clients *usecase.ClientUsecase,
	distribution *usecase.DistributionUsecase,
	finance *usecase.FinanceUsecase,
	tickets *usecase.TicketUsecase,
	aggregate *usecase.AggregateUsecase,
) PortalController {
	return &portalController{
		clients:      clients,
		distribution: distribution,
		finance:      finance,
		tickets:      tickets,
		aggregate:    aggregate,
	}
}

func actorClientID(c echo.Context) (primitive.ObjectID, error) {
	a, ok := actor.From(c.Request().Context())
	if !ok || a.ClientID == "" {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusForbidden, "client access required")
	}
	id, err := primitive.ObjectIDFromHex(a.ClientID)
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusForbidden, "invalid session identity")
	}
	return id, nil
}

func (h *portalController) Dashboard(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	dashboard, err := h.aggregate.ClientDashboard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

func (h *portalController) GetProfile(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

type profileUpdateRequest struct {
	Name               string             `json:"name" validate:"required"`
	Email              string             `json:"email" validate:"required,email"`
	Phone              string             `json:"phone"`
	Company            string             `json:"company"`
	Logo               string             `json:"logo"`
	DeviceDistribution map[string]float64 `json:"device_distribution"`
}

func (h *portalController) UpdateProfile(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	var req profileUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	client, err := h.clients.Get(ctx, id)
	if err != nil {
		return err
	}
	client.Name = req.Name
	client.Email = req.Email
	client.Phone = req.Phone
	client.Company = req.Company
	client.Logo = req.Logo
	client.DeviceDistribution = req.DeviceDistribution

	if err := h.clients.UpdateProfile(ctx, client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *portalController) MarkNotificationRead(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	if err := h.clients.MarkNotificationRead(c.Request().Context(), id, c.Param("notifID")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *portalController) MarkAllNotificationsRead(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	if err := h.clients.MarkAllNotificationsRead(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type addDistributionRequest struct {
	Platform  string `json:"platform" validate:"required"`
	ChannelID string `json:"channel_id" validate:"required"`
	Name      string `json:"name"`
}

func (h *portalController) AddDistributionChannel(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	var req addDistributionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	dc, err := h.distribution.Add(c.Request().Context(), id, models.DistributionChannel{
		Platform:  models.Platform(req.Platform),
		ChannelID: req.ChannelID,
		Name:      req.Name,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dc)
}

func (h *portalController) RemoveDistributionChannel(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	if err := h.distribution.Remove(c.Request().Context(), id, c.Param("dcID")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *portalController) GetFinancials(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	fin, err := h.finance.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, financialsResponse{
		ClientFinancials: fin,
		Totals:           usecase.Totals(fin),
	})
}

type paypalEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *portalController) UpdatePayPalEmail(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	var req paypalEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.finance.UpdatePayPalEmail(c.Request().Context(), id, req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type createTicketRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Body     string `json:"body" validate:"required"`
}

func (h *portalController) CreateTicket(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ticket := models.SupportTicket{
		ClientID: id,
		Subject:  req.Subject,
		Category: req.Category,
		Priority: models.TicketPriority(req.Priority),
	}
	if err := h.tickets.Create(c.Request().Context(), &ticket, req.Body); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}

func (h *portalController) ListTickets(c echo.Context) error {
	id, err := actorClientID(c)
	if err != nil {
		return err
	}
	tickets, err := h.tickets.ListByClient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *portalController) GetTicket(c echo.Context) error {
	clientID, err := actorClientID(c)
	if err != nil {
		return err
	}
	ticketID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ticket, err := h.tickets.Get(c.Request().Context(), ticketID)
	if err != nil {
		return err
	}
	if ticket.ClientID != clientID {
		return echo.NewHTTPError(http.StatusNotFound, "ticket not found")
	}
	return c.JSON(http.StatusOK, ticket)
}

func (h *portalController) ReplyTicket(c echo.Context) error {
	clientID, err := actorClientID(c)
	if err != nil {
		return err
	}
	ticketID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ticket, err := h.tickets.Get(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.ClientID != clientID {
		return echo.NewHTTPError(http.StatusNotFound, "ticket not found")
	}

	if err := h.tickets.Reply(ctx, ticketID, models.SenderClient, req.Body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type chatbotRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *portalController) Chatbot(c echo.Context) error {
	if _, err := actorClientID(c); err != nil {
		return err
	}
	var req chatbotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	reply := h.tickets.ChatbotReply(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, map[string]string{"reply": reply})
}
