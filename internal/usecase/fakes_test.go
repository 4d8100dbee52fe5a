package usecase

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/kafka"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

// in-memory fakes for the mongodb repository interfaces

type fakeClientRepo struct {
	byID map[primitive.ObjectID]*models.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[primitive.ObjectID]*models.Client)}
}

func (r *fakeClientRepo) get(id primitive.ObjectID) (*models.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return c, nil
}

func (r *fakeClientRepo) Create(ctx context.Context, client *models.Client) error {
	client.ID = primitive.NewObjectID()
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt
	if client.Status == "" {
		client.Status = models.ClientActive
	}
	stored := *client
	r.byID[client.ID] = &stored
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error) {
	c, err := r.get(id)
	if err != nil {
		return nil, err
	}
	clone := *c
	return &clone, nil
}

func (r *fakeClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	for _, c := range r.byID {
		if c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeClientRepo) List(ctx context.Context) ([]*models.Client, error) {
	out := make([]*models.Client, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeClientRepo) UpdateProfile(ctx context.Context, client *models.Client) error {
	c, err := r.get(client.ID)
	if err != nil {
		return err
	}
	c.Name = client.Name
	c.Email = client.Email
	c.Phone = client.Phone
	c.Company = client.Company
	c.Logo = client.Logo
	c.Plan = client.Plan
	c.DeviceDistribution = client.DeviceDistribution
	return nil
}

func (r *fakeClientRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.ClientStatus, banReason, suspendReason string) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.Status = status
	c.BanReason = banReason
	c.SuspendReason = suspendReason
	return nil
}

func (r *fakeClientRepo) SetRevenueTerms(ctx context.Context, id primitive.ObjectID, revenueShare, monthlyFee float64) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.RevenueShare = revenueShare
	c.MonthlyFee = monthlyFee
	return nil
}

func (r *fakeClientRepo) SetPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.Password = password
	return nil
}

func (r *fakeClientRepo) SetPayPalEmail(ctx context.Context, id primitive.ObjectID, email string) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.PayPalEmail = email
	return nil
}

func (r *fakeClientRepo) PushAdminAction(ctx context.Context, id primitive.ObjectID, action models.AdminAction) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.AdminActions = append([]models.AdminAction{action}, c.AdminActions...)
	return nil
}

func (r *fakeClientRepo) AddChannelID(ctx context.Context, id, channelID primitive.ObjectID) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	if !c.OwnsChannel(channelID) {
		c.ChannelIDs = append(c.ChannelIDs, channelID)
	}
	return nil
}

func (r *fakeClientRepo) RemoveChannelID(ctx context.Context, id, channelID primitive.ObjectID) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	kept := c.ChannelIDs[:0]
	for _, existing := range c.ChannelIDs {
		if existing != channelID {
			kept = append(kept, existing)
		}
	}
	c.ChannelIDs = kept
	return nil
}

func (r *fakeClientRepo) PushNotification(ctx context.Context, id primitive.ObjectID, notif models.ClientNotification) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.Notifications = append([]models.ClientNotification{notif}, c.Notifications...)
	if len(c.Notifications) > 100 {
		c.Notifications = c.Notifications[:100]
	}
	return nil
}

func (r *fakeClientRepo) MarkNotificationRead(ctx context.Context, id primitive.ObjectID, notifID string) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	for i := range c.Notifications {
		if c.Notifications[i].ID == notifID {
			c.Notifications[i].Read = true
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeClientRepo) MarkAllNotificationsRead(ctx context.Context, id primitive.ObjectID) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	for i := range c.Notifications {
		c.Notifications[i].Read = true
	}
	return nil
}

func (r *fakeClientRepo) AddDistributionChannel(ctx context.Context, id primitive.ObjectID, dc models.DistributionChannel) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	c.RokuChannels = append(c.RokuChannels, dc)
	return nil
}

func (r *fakeClientRepo) RemoveDistributionChannel(ctx context.Context, id primitive.ObjectID, dcID string) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	kept := c.RokuChannels[:0]
	for _, dc := range c.RokuChannels {
		if dc.ID != dcID {
			kept = append(kept, dc)
		}
	}
	c.RokuChannels = kept
	return nil
}

func (r *fakeClientRepo) SetDistributionStatus(ctx context.Context, id primitive.ObjectID, dcID string, status models.DistributionStatus, approvedAt *time.Time) error {
	c, err := r.get(id)
	if err != nil {
		return err
	}
	for i := range c.RokuChannels {
		if c.RokuChannels[i].ID == dcID {
			c.RokuChannels[i].Status = status
			if approvedAt != nil {
				c.RokuChannels[i].ApprovedAt = approvedAt
			}
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeClientRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeChannelRepo struct {
	byID map[primitive.ObjectID]*models.Channel
}

func newFakeChannelRepo() *fakeChannelRepo {
	return &fakeChannelRepo{byID: make(map[primitive.ObjectID]*models.Channel)}
}

func (r *fakeChannelRepo) get(id primitive.ObjectID) (*models.Channel, error) {
	ch, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return ch, nil
}

func (r *fakeChannelRepo) Create(ctx context.Context, channel *models.Channel) error {
	channel.ID = primitive.NewObjectID()
	channel.CreatedAt = time.Now()
	channel.UpdatedAt = channel.CreatedAt
	stored := *channel
	r.byID[channel.ID] = &stored
	return nil
}

func (r *fakeChannelRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Channel, error) {
	ch, err := r.get(id)
	if err != nil {
		return nil, err
	}
	clone := *ch
	return &clone, nil
}

func (r *fakeChannelRepo) List(ctx context.Context) ([]*models.Channel, error) {
	out := make([]*models.Channel, 0, len(r.byID))
	for _, ch := range r.byID {
		clone := *ch
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeChannelRepo) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.Channel, error) {
	var out []*models.Channel
	for _, ch := range r.byID {
		if ch.ClientID != nil && *ch.ClientID == clientID {
			clone := *ch
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeChannelRepo) UpdateInfo(ctx context.Context, channel *models.Channel) error {
	ch, err := r.get(channel.ID)
	if err != nil {
		return err
	}
	ch.Name = channel.Name
	ch.Category = channel.Category
	ch.Logo = channel.Logo
	ch.Subscribers = channel.Subscribers
	return nil
}

func (r *fakeChannelRepo) SetOwner(ctx context.Context, id primitive.ObjectID, clientID *primitive.ObjectID) error {
	ch, err := r.get(id)
	if err != nil {
		return err
	}
	ch.ClientID = clientID
	return nil
}

func (r *fakeChannelRepo) ClearOwnerForClient(ctx context.Context, clientID primitive.ObjectID) error {
	for _, ch := range r.byID {
		if ch.ClientID != nil && *ch.ClientID == clientID {
			ch.ClientID = nil
		}
	}
	return nil
}

func (r *fakeChannelRepo) AddMovieID(ctx context.Context, id, movieID primitive.ObjectID) error {
	ch, err := r.get(id)
	if err != nil {
		return err
	}
	if !ch.HasMovie(movieID) {
		ch.MovieIDs = append(ch.MovieIDs, movieID)
	}
	return nil
}

func (r *fakeChannelRepo) RemoveMovieID(ctx context.Context, id, movieID primitive.ObjectID) error {
	ch, err := r.get(id)
	if err != nil {
		return err
	}
	kept := ch.MovieIDs[:0]
	for _, existing := range ch.MovieIDs {
		if existing != movieID {
			kept = append(kept, existing)
		}
	}
	ch.MovieIDs = kept
	return nil
}

func (r *fakeChannelRepo) AddSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error {
	ch, err := r.get(id)
	if err != nil {
		return err
	}
	if !ch.HasSeries(seriesID) {
		ch.SeriesIDs = append(ch.SeriesIDs, seriesID)
	}
	return nil
}

func (r *fakeChannelRepo) RemoveSeriesID(ctx context.Context, id, seriesID primitive.ObjectID) error {
	ch, err := r.get(id)
	if err != nil {
		return err
	}
	kept := ch.SeriesIDs[:0]
	for _, existing := range ch.SeriesIDs {
		if existing != seriesID {
			kept = append(kept, existing)
		}
	}
	ch.SeriesIDs = kept
	return nil
}

func (r *fakeChannelRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeMovieRepo struct {
	byID map[primitive.ObjectID]*models.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{byID: make(map[primitive.ObjectID]*models.Movie)}
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	stored := *movie
	r.byID[movie.ID] = &stored
	return nil
}

func (r *fakeMovieRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *fakeMovieRepo) List(ctx context.Context) ([]*models.Movie, error) {
	out := make([]*models.Movie, 0, len(r.byID))
	for _, m := range r.byID {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeMovieRepo) ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Movie, error) {
	var out []*models.Movie
	for _, m := range r.byID {
		if m.ChannelID != nil && *m.ChannelID == channelID {
			clone := *m
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeMovieRepo) UpdateInfo(ctx context.Context, movie *models.Movie) error {
	m, ok := r.byID[movie.ID]
	if !ok {
		return models.ErrNotFound
	}
	m.Title = movie.Title
	m.Genre = movie.Genre
	m.Year = movie.Year
	m.Rating = movie.Rating
	m.DurationMinutes = movie.DurationMinutes
	m.Poster = movie.Poster
	return nil
}

func (r *fakeMovieRepo) SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error {
	m, ok := r.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	m.ChannelID = channelID
	return nil
}

func (r *fakeMovieRepo) ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error {
	for _, m := range r.byID {
		if m.ChannelID != nil && *m.ChannelID == channelID {
			m.ChannelID = nil
		}
	}
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeSeriesRepo struct {
	byID map[primitive.ObjectID]*models.Series
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{byID: make(map[primitive.ObjectID]*models.Series)}
}

func (r *fakeSeriesRepo) Create(ctx context.Context, series *models.Series) error {
	series.ID = primitive.NewObjectID()
	series.CreatedAt = time.Now()
	series.UpdatedAt = series.CreatedAt
	stored := *series
	r.byID[series.ID] = &stored
	return nil
}

func (r *fakeSeriesRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSeriesRepo) List(ctx context.Context) ([]*models.Series, error) {
	out := make([]*models.Series, 0, len(r.byID))
	for _, s := range r.byID {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeSeriesRepo) ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Series, error) {
	var out []*models.Series
	for _, s := range r.byID {
		if s.ChannelID != nil && *s.ChannelID == channelID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeSeriesRepo) UpdateInfo(ctx context.Context, series *models.Series) error {
	s, ok := r.byID[series.ID]
	if !ok {
		return models.ErrNotFound
	}
	s.Title = series.Title
	s.Genre = series.Genre
	s.Year = series.Year
	s.Rating = series.Rating
	s.Seasons = series.Seasons
	s.Episodes = series.Episodes
	s.Poster = series.Poster
	return nil
}

func (r *fakeSeriesRepo) SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error {
	s, ok := r.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	s.ChannelID = channelID
	return nil
}

func (r *fakeSeriesRepo) ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error {
	for _, s := range r.byID {
		if s.ChannelID != nil && *s.ChannelID == channelID {
			s.ChannelID = nil
		}
	}
	return nil
}

func (r *fakeSeriesRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeFinancialsRepo struct {
	byClient map[primitive.ObjectID]*models.ClientFinancials
}

func newFakeFinancialsRepo() *fakeFinancialsRepo {
	return &fakeFinancialsRepo{byClient: make(map[primitive.ObjectID]*models.ClientFinancials)}
}

func (r *fakeFinancialsRepo) GetByClient(ctx context.Context, clientID primitive.ObjectID) (*models.ClientFinancials, error) {
	fin, ok := r.byClient[clientID]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *fin
	return &clone, nil
}

func (r *fakeFinancialsRepo) EnsureForClient(ctx context.Context, clientID primitive.ObjectID) error {
	if _, ok := r.byClient[clientID]; !ok {
		r.byClient[clientID] = &models.ClientFinancials{
			ID:             primitive.NewObjectID(),
			ClientID:       clientID,
			MonthlyRevenue: []models.MonthlyRevenue{},
			Payments:       []models.Payment{},
		}
	}
	return nil
}

func (r *fakeFinancialsRepo) UpsertMonthlyRevenue(ctx context.Context, clientID primitive.ObjectID, entry models.MonthlyRevenue) error {
	if err := r.EnsureForClient(ctx, clientID); err != nil {
		return err
	}
	fin := r.byClient[clientID]
	for i := range fin.MonthlyRevenue {
		if fin.MonthlyRevenue[i].Month == entry.Month {
			fin.MonthlyRevenue[i].Amount = entry.Amount
			return nil
		}
	}
	fin.MonthlyRevenue = append(fin.MonthlyRevenue, entry)
	return nil
}

func (r *fakeFinancialsRepo) AppendPayment(ctx context.Context, clientID primitive.ObjectID, payment models.Payment) error {
	if err := r.EnsureForClient(ctx, clientID); err != nil {
		return err
	}
	fin := r.byClient[clientID]
	fin.Payments = append(fin.Payments, payment)
	return nil
}

func (r *fakeFinancialsRepo) DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error {
	delete(r.byClient, clientID)
	return nil
}

type fakeTicketRepo struct {
	byID map[primitive.ObjectID]*models.SupportTicket
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{byID: make(map[primitive.ObjectID]*models.SupportTicket)}
}

func (r *fakeTicketRepo) Create(ctx context.Context, ticket *models.SupportTicket) error {
	ticket.ID = primitive.NewObjectID()
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = ticket.CreatedAt
	if ticket.Status == "" {
		ticket.Status = models.TicketOpen
	}
	if ticket.Priority == "" {
		ticket.Priority = models.PriorityMedium
	}
	stored := *ticket
	r.byID[ticket.ID] = &stored
	return nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SupportTicket, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *fakeTicketRepo) List(ctx context.Context) ([]*models.SupportTicket, error) {
	out := make([]*models.SupportTicket, 0, len(r.byID))
	for _, t := range r.byID {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByClient(ctx context.Context, clientID primitive.ObjectID) ([]*models.SupportTicket, error) {
	var out []*models.SupportTicket
	for _, t := range r.byID {
		if t.ClientID == clientID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) AppendMessage(ctx context.Context, id primitive.ObjectID, msg models.TicketMessage, status *models.TicketStatus) error {
	t, ok := r.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	t.Messages = append(t.Messages, msg)
	if status != nil {
		t.Status = *status
	}
	t.UpdatedAt = time.Now()
	return nil
}

func (r *fakeTicketRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status models.TicketStatus) error {
	t, ok := r.byID[id]
	if !ok {
		return models.ErrNotFound
	}
	t.Status = status
	return nil
}

func (r *fakeTicketRepo) DeleteByClient(ctx context.Context, clientID primitive.ObjectID) error {
	for id, t := range r.byID {
		if t.ClientID == clientID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeAdminNotifRepo struct {
	notifs []*models.AdminNotification
}

func (r *fakeAdminNotifRepo) Insert(ctx context.Context, notif *models.AdminNotification) error {
	notif.ID = primitive.NewObjectID()
	notif.CreatedAt = time.Now()
	notif.Read = false
	r.notifs = append([]*models.AdminNotification{notif}, r.notifs...)
	return nil
}

func (r *fakeAdminNotifRepo) List(ctx context.Context) ([]*models.AdminNotification, error) {
	return r.notifs, nil
}

func (r *fakeAdminNotifRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	for _, notif := range r.notifs {
		if !notif.Read {
			n++
		}
	}
	return n, nil
}

func (r *fakeAdminNotifRepo) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	for _, notif := range r.notifs {
		if notif.ID == id {
			notif.Read = true
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeAdminNotifRepo) MarkAllRead(ctx context.Context) error {
	for _, notif := range r.notifs {
		notif.Read = true
	}
	return nil
}

func (r *fakeAdminNotifRepo) Clear(ctx context.Context) error {
	r.notifs = nil
	return nil
}

// fakes for the usecase-level collaborators

type recordedNotif struct {
	Audience string // "admin" or "client"
	ClientID primitive.ObjectID
	Type     models.NotificationType
	Title    string
	Message  string
}

type fakeNotifier struct {
	sent []recordedNotif
}

func (n *fakeNotifier) NotifyAdmin(ctx context.Context, client *models.Client, typ models.NotificationType, title, message string) {
	n.sent = append(n.sent, recordedNotif{Audience: "admin", ClientID: client.ID, Type: typ, Title: title, Message: message})
}

func (n *fakeNotifier) NotifyClient(ctx context.Context, clientID primitive.ObjectID, typ models.NotificationType, title, message string) {
	n.sent = append(n.sent, recordedNotif{Audience: "client", ClientID: clientID, Type: typ, Title: title, Message: message})
}

func (n *fakeNotifier) titles() []string {
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Title)
	}
	return out
}

func (n *fakeNotifier) hasTitle(title string) bool {
	for _, s := range n.sent {
		if s.Title == title {
			return true
		}
	}
	return false
}

type fakePublisher struct {
	changed []string
}

func (p *fakePublisher) CollectionChanged(ctx context.Context, collections ...string) {
	p.changed = append(p.changed, collections...)
}

func (p *fakePublisher) sawCollection(name string) bool {
	for _, c := range p.changed {
		if c == name {
			return true
		}
	}
	return false
}

type broadcastEvent struct {
	Audience string
	ClientID string
	Event    string
	Payload  any
}

type fakeBroadcaster struct {
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastToAdmin(event string, payload any) {
	b.events = append(b.events, broadcastEvent{Audience: "admin", Event: event, Payload: payload})
}

func (b *fakeBroadcaster) BroadcastToClient(clientID string, event string, payload any) {
	b.events = append(b.events, broadcastEvent{Audience: "client", ClientID: clientID, Event: event, Payload: payload})
}

type fakeProducer struct {
	events []kafka.NotificationEvent
}

func (p *fakeProducer) PublishNotification(ctx context.Context, event kafka.NotificationEvent) {
	p.events = append(p.events, event)
}

// fakeTxn runs the function inline; the repos above mutate in place so the
// transactional behavior under test is the pairing of writes, not rollback.
type fakeTxn struct {
	calls int
}

func (t *fakeTxn) RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fakeLLM struct {
	rating float64
	reply  string
}

func (l *fakeLLM) RateTitle(ctx context.Context, title, genre string, year int) float64 {
	if l.rating != 0 {
		return l.rating
	}
	return 7.0
}

func (l *fakeLLM) ChatReply(ctx context.Context, message string) string {
	if l.reply != "" {
		return l.reply
	}
	if strings.Contains(strings.ToLower(message), "payment") {
		return "payments help"
	}
	return "ok"
}
