package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/util"
)

// ClientTotals is the per-client dashboard summary, recomputed from the full
// collections on every request; nothing here is cached or stored.
type ClientTotals struct {
	Subscribers     int64 `json:"subscribers"`
	Movies          int   `json:"movies"`
	Series          int   `json:"series"`
	UnreadCount     int   `json:"unread_count"`
	PendingChannels int   `json:"pending_channels"`
	ActiveChannels  int   `json:"active_channels"`
	ChannelCount    int   `json:"channel_count"`
}

// ChannelView is a channel plus its read-time derivations. AverageRating is
// nil when the channel has no rated content; the UI renders N/A.
type ChannelView struct {
	*models.Channel
	AverageRating *float64 `json:"average_rating"`
}

type ClientDashboard struct {
	Client     *models.Client           `json:"client"`
	Channels   []ChannelView            `json:"channels"`
	Totals     ClientTotals             `json:"totals"`
	Genres     map[string]int           `json:"genres"`
	Financials *models.ClientFinancials `json:"financials"`
	Revenue    models.RevenueTotals     `json:"revenue"`
}

type AggregateUsecase struct {
	clients    mongodb.ClientRepository
	channels   mongodb.ChannelRepository
	movies     mongodb.MovieRepository
	series     mongodb.SeriesRepository
	financials mongodb.FinancialsRepository
}

func NewAggregateUsecase(
	clients mongodb.ClientRepository,
	channels mongodb.ChannelRepository,
	movies mongodb.MovieRepository,
	series mongodb.SeriesRepository,
	financials mongodb.FinancialsRepository,
) *AggregateUsecase {
	return &AggregateUsecase{
		clients:    clients,
		channels:   channels,
		movies:     movies,
		series:     series,
		financials: financials,
	}
}

func (uc *AggregateUsecase) ClientDashboard(ctx context.Context, clientID primitive.ObjectID) (*ClientDashboard, error) {
	client, err := uc.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var (
		channels []*models.Channel
		movies   []*models.Movie
		series   []*models.Series
		fin      *models.ClientFinancials
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		channels, err = uc.channels.ListByClient(gctx, clientID)
		return err
	})
	group.Go(func() (err error) {
		movies, err = uc.movies.List(gctx)
		return err
	})
	group.Go(func() (err error) {
		series, err = uc.series.List(gctx)
		return err
	})
	group.Go(func() (err error) {
		fin, err = uc.financials.GetByClient(gctx, clientID)
		if err == models.ErrNotFound {
			fin = &models.ClientFinancials{ClientID: clientID}
			err = nil
		}
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var (
		reachableMovies []*models.Movie
		reachableSeries []*models.Series
	)
	for _, m := range movies {
		if m.ChannelID != nil && util.SliceIncludes(client.ChannelIDs, *m.ChannelID) {
			reachableMovies = append(reachableMovies, m)
		}
	}
	for _, s := range series {
		if s.ChannelID != nil && util.SliceIncludes(client.ChannelIDs, *s.ChannelID) {
			reachableSeries = append(reachableSeries, s)
		}
	}

	return &ClientDashboard{
		Client:     client,
		Channels:   channelViews(channels, movies, series),
		Totals:     ComputeClientTotals(client, channels, movies, series),
		Genres:     GenreDistribution(reachableMovies, reachableSeries),
		Financials: fin,
		Revenue:    Totals(fin),
	}, nil
}

// ChannelDetail is the single-channel read for the admin console, with the
// same derived rating the portal dashboard carries.
func (uc *AggregateUsecase) ChannelDetail(ctx context.Context, id primitive.ObjectID) (*ChannelView, error) {
	channel, err := uc.channels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		movies []*models.Movie
		series []*models.Series
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		movies, err = uc.movies.List(gctx)
		return err
	})
	group.Go(func() (err error) {
		series, err = uc.series.List(gctx)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	view := ChannelView{Channel: channel}
	if avg, ok := ChannelAverageRating(channel, movies, series); ok {
		view.AverageRating = util.Ptr(avg)
	}
	return &view, nil
}

func channelViews(channels []*models.Channel, movies []*models.Movie, series []*models.Series) []ChannelView {
	return util.ConvertList(channels, func(ch *models.Channel) ChannelView {
		view := ChannelView{Channel: ch}
		if avg, ok := ChannelAverageRating(ch, movies, series); ok {
			view.AverageRating = util.Ptr(avg)
		}
		return view
	})
}

// ComputeClientTotals joins the denormalized collections at read time:
// subscribers over owned channels, content reachable through them, unread
// notifications, distribution channel counts by status.
func ComputeClientTotals(client *models.Client, channels []*models.Channel, movies []*models.Movie, series []*models.Series) ClientTotals {
	totals := ClientTotals{
		UnreadCount:  client.UnreadNotifications(),
		ChannelCount: len(client.ChannelIDs),
	}

	owned := make(map[primitive.ObjectID]bool, len(channels))
	for _, ch := range channels {
		if util.Val(ch.ClientID) == client.ID {
			owned[ch.ID] = true
			totals.Subscribers += ch.Subscribers
		}
	}
	for _, m := range movies {
		if m.ChannelID != nil && owned[*m.ChannelID] {
			totals.Movies++
		}
	}
	for _, s := range series {
		if s.ChannelID != nil && owned[*s.ChannelID] {
			totals.Series++
		}
	}
	for _, dc := range client.RokuChannels {
		switch dc.Status {
		case models.DistributionPending:
			totals.PendingChannels++
		case models.DistributionActive:
			totals.ActiveChannels++
		}
	}
	return totals
}

// ChannelAverageRating is the mean rating over the channel's current movies
// and series. ok is false when the channel has no content: the caller must
// render N/A, not zero.
func ChannelAverageRating(channel *models.Channel, movies []*models.Movie, series []*models.Series) (avg float64, ok bool) {
	var sum float64
	var count int
	for _, m := range movies {
		if channel.HasMovie(m.ID) {
			sum += m.Rating
			count++
		}
	}
	for _, s := range series {
		if channel.HasSeries(s.ID) {
			sum += s.Rating
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// GenreDistribution counts movies and series per genre label. Integer counts
// only; proportional display is the UI's job.
func GenreDistribution(movies []*models.Movie, series []*models.Series) map[string]int {
	dist := make(map[string]int)
	for _, m := range movies {
		if m.Genre != "" {
			dist[m.Genre]++
		}
	}
	for _, s := range series {
		if s.Genre != "" {
			dist[s.Genre]++
		}
	}
	return dist
}
