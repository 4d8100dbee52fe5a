package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
)

type AdminController interface {
	CreateClient(c echo.Context) error
	ListClients(c echo.Context) error
	GetClient(c echo.Context) error
	UpdateClient(c echo.Context) error
	DeleteClient(c echo.Context) error
	SetClientStatus(c echo.Context) error
	WarnClient(c echo.Context) error
	ChangeClientPassword(c echo.Context) error
	UpdateClientTerms(c echo.Context) error
	ClientDashboard(c echo.Context) error

	CreateChannel(c echo.Context) error
	ListChannels(c echo.Context) error
	GetChannel(c echo.Context) error
	UpdateChannel(c echo.Context) error
	DeleteChannel(c echo.Context) error
	AssignChannelOwner(c echo.Context) error

	CreateMovie(c echo.Context) error
	ListMovies(c echo.Context) error
	UpdateMovie(c echo.Context) error
	DeleteMovie(c echo.Context) error
	AssignMovieChannel(c echo.Context) error

	CreateSeries(c echo.Context) error
	ListSeries(c echo.Context) error
	UpdateSeries(c echo.Context) error
	DeleteSeries(c echo.Context) error
	AssignSeriesChannel(c echo.Context) error

	GetFinancials(c echo.Context) error
	AddMonthlyRevenue(c echo.Context) error
	AddPayment(c echo.Context) error

	SetDistributionStatus(c echo.Context) error

	ListTickets(c echo.Context) error
	GetTicket(c echo.Context) error
	ReplyTicket(c echo.Context) error
	SetTicketStatus(c echo.Context) error

	ListNotifications(c echo.Context) error
	UnreadNotificationCount(c echo.Context) error
	MarkNotificationRead(c echo.Context) error
	MarkAllNotificationsRead(c echo.Context) error
	ClearNotifications(c echo.Context) error
}

type adminController struct {
	clients       *usecase.ClientUsecase
	content       *usecase.ContentUsecase
	relationships *usecase.RelationshipUsecase
	finance       *usecase.FinanceUsecase
	distribution  *usecase.DistributionUsecase
	tickets       *usecase.TicketUsecase
	aggregate     *usecase.AggregateUsecase
	inbox         *usecase.InboxUsecase
}

func NewAdminController(
	clients *usecase.ClientUsecase,
	content *usecase.ContentUsecase,
	relationships *usecase.RelationshipUsecase,
	finance *usecase.FinanceUsecase,
	distribution *usecase.DistributionUsecase,
	tickets *usecase.TicketUsecase,
	aggregate *usecase.AggregateUsecase,
	inbox *usecase.InboxUsecase,
) AdminController {
	return &adminController{
		clients:       clients,
		content:       content,
		relationships: relationships,
		finance:       finance,
		distribution:  distribution,
		tickets:       tickets,
		aggregate:     aggregate,
		inbox:         inbox,
	}
}

func pathID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// optionalID decodes a nullable hex id from a request body; nil means unset.
func optionalID(hex *string) (*primitive.ObjectID, error) {
	if hex == nil || *hex == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*hex)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid object id")
	}
	return &id, nil
}

// clients

func (h *adminController) CreateClient(c echo.Context) error {
	var client models.Client
	if err := c.Bind(&client); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(client); err != nil {
		return err
	}

	if err := h.clients.Create(c.Request().Context(), &client); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

func (h *adminController) ListClients(c echo.Context) error {
	clients, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

func (h *adminController) GetClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.clients.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *adminController) UpdateClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var client models.Client
	if err := c.Bind(&client); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	client.ID = id
	if err := c.Validate(client); err != nil {
		return err
	}

	if err := h.clients.UpdateProfile(c.Request().Context(), &client); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

func (h *adminController) DeleteClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.DeleteClient(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason"`
}

func (h *adminController) SetClientStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.clients.SetStatus(c.Request().Context(), id, models.ClientStatus(req.Status), req.Reason); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type warnRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *adminController) WarnClient(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req warnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.clients.SendWarning(c.Request().Context(), id, req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

func (h *adminController) ChangeClientPassword(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.clients.ChangePassword(c.Request().Context(), id, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type updateTermsRequest struct {
	RevenueShare float64 `json:"revenue_share" validate:"gte=0,lte=100"`
	MonthlyFee   float64 `json:"monthly_fee" validate:"gte=0"`
}

func (h *adminController) UpdateClientTerms(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateTermsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.clients.UpdateRevenueTerms(c.Request().Context(), id, req.RevenueShare, req.MonthlyFee); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *adminController) ClientDashboard(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dashboard, err := h.aggregate.ClientDashboard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}

// channels

type channelRequest struct {
	models.Channel
	OwnerID *string `json:"owner_id"`
}

func (h *adminController) CreateChannel(c echo.Context) error {
	var req channelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req.Channel); err != nil {
		return err
	}
	ownerID, err := optionalID(req.OwnerID)
	if err != nil {
		return err
	}

	if err := h.content.CreateChannel(c.Request().Context(), &req.Channel, ownerID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, req.Channel)
}

func (h *adminController) ListChannels(c echo.Context) error {
	channels, err := h.content.ListChannels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channels)
}

func (h *adminController) GetChannel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.aggregate.ChannelDetail(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

func (h *adminController) UpdateChannel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var channel models.Channel
	if err := c.Bind(&channel); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	channel.ID = id
	if err := c.Validate(channel); err != nil {
		return err
	}

	if err := h.content.UpdateChannel(c.Request().Context(), &channel); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channel)
}

func (h *adminController) DeleteChannel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.DeleteChannel(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type assignOwnerRequest struct {
	ClientID *string `json:"client_id"`
}

func (h *adminController) AssignChannelOwner(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	clientID, err := optionalID(req.ClientID)
	if err != nil {
		return err
	}

	if err := h.relationships.AssignChannelToClient(c.Request().Context(), id, clientID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// movies

type movieRequest struct {
	models.Movie
	TargetChannelID *string `json:"target_channel_id"`
}

func (h *adminController) CreateMovie(c echo.Context) error {
	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req.Movie); err != nil {
		return err
	}
	channelID, err := optionalID(req.TargetChannelID)
	if err != nil {
		return err
	}

	if err := h.content.CreateMovie(c.Request().Context(), &req.Movie, channelID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, req.Movie)
}

func (h *adminController) ListMovies(c echo.Context) error {
	movies, err := h.content.ListMovies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movies)
}

func (h *adminController) UpdateMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var movie models.Movie
	if err := c.Bind(&movie); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	movie.ID = id
	if err := c.Validate(movie); err != nil {
		return err
	}

	if err := h.content.UpdateMovie(c.Request().Context(), &movie); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, movie)
}

func (h *adminController) DeleteMovie(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.DeleteMovie(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type assignChannelRequest struct {
	ChannelID *string `json:"channel_id"`
}

func (h *adminController) AssignMovieChannel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	channelID, err := optionalID(req.ChannelID)
	if err != nil {
		return err
	}

	if err := h.relationships.AssignMovieToChannel(c.Request().Context(), id, channelID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// series

type seriesRequest struct {
	models.Series
	TargetChannelID *string `json:"target_channel_id"`
}

func (h *adminController) CreateSeries(c echo.Context) error {
	var req seriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req.Series); err != nil {
		return err
	}
	channelID, err := optionalID(req.TargetChannelID)
	if err != nil {
		return err
	}

	if err := h.content.CreateSeries(c.Request().Context(), &req.Series, channelID); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, req.Series)
}

func (h *adminController) ListSeries(c echo.Context) error {
	series, err := h.content.ListSeries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

func (h *adminController) UpdateSeries(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var series models.Series
	if err := c.Bind(&series); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	series.ID = id
	if err := c.Validate(series); err != nil {
		return err
	}

	if err := h.content.UpdateSeries(c.Request().Context(), &series); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, series)
}

func (h *adminController) DeleteSeries(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.relationships.DeleteSeries(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *adminController) AssignSeriesChannel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req assignChannelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	channelID, err := optionalID(req.ChannelID)
	if err != nil {
		return err
	}

	if err := h.relationships.AssignSeriesToChannel(c.Request().Context(), id, channelID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// finance

type financialsResponse struct {
	*models.ClientFinancials
	Totals models.RevenueTotals `json:"totals"`
}

func (h *adminController) GetFinancials(c echo.Context) error {
	id, err := pathID(c, "id")
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

func (h *adminController) AddMonthlyRevenue(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var entry models.MonthlyRevenue
	if err := c.Bind(&entry); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(entry); err != nil {
		return err
	}

	if err := h.finance.AddMonthlyRevenue(c.Request().Context(), id, entry); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type paymentRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	Status string  `json:"status"`
	Method string  `json:"method"`
	Date   string  `json:"date"`
}

func (h *adminController) AddPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	payment := models.Payment{
		Amount: req.Amount,
		Status: models.PaymentStatus(req.Status),
		Method: req.Method,
	}
	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid date, want RFC3339")
		}
		payment.Date = date
	}

	if err := h.finance.AddPayment(c.Request().Context(), id, payment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// distribution

type distributionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Active Inactive"`
}

func (h *adminController) SetDistributionStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	dcID := c.Param("dcID")
	var req distributionStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.distribution.SetStatus(c.Request().Context(), id, dcID, models.DistributionStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// tickets

func (h *adminController) ListTickets(c echo.Context) error {
	tickets, err := h.tickets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tickets)
}

func (h *adminController) GetTicket(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ticket, err := h.tickets.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

type replyRequest struct {
	Body string `json:"body" validate:"required"`
}

func (h *adminController) ReplyTicket(c echo.Context) error {
	id, err := pathID(c, "id")
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

	if err := h.tickets.Reply(c.Request().Context(), id, models.SenderAdmin, req.Body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

type ticketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open 'In Progress' Resolved Closed"`
}

func (h *adminController) SetTicketStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req ticketStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.tickets.SetStatus(c.Request().Context(), id, models.TicketStatus(req.Status)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// notifications

func (h *adminController) ListNotifications(c echo.Context) error {
	notifs, err := h.inbox.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notifs)
}

func (h *adminController) UnreadNotificationCount(c echo.Context) error {
	count, err := h.inbox.CountUnread(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": count})
}

func (h *adminController) MarkNotificationRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.inbox.MarkRead(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *adminController) MarkAllNotificationsRead(c echo.Context) error {
	if err := h.inbox.MarkAllRead(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

func (h *adminController) ClearNotifications(c echo.Context) error {
	if err := h.inbox.Clear(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
