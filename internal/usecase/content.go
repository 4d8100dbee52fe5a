package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/llm"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

// ContentUsecase covers the admin catalog: channels and the movie/series
// library. Assignments and deletes delegate to the relationship module so a
// create-and-assign stays two-sided.
type ContentUsecase struct {
	channels      mongodb.ChannelRepository
	movies        mongodb.MovieRepository
	series        mongodb.SeriesRepository
	relationships *RelationshipUsecase
	llm           llm.Service
	publisher     Publisher
}

func NewContentUsecase(
	channels mongodb.ChannelRepository,
	movies mongodb.MovieRepository,
	series mongodb.SeriesRepository,
	relationships *RelationshipUsecase,
	llmService llm.Service,
	publisher Publisher,
) *ContentUsecase {
	return &ContentUsecase{
		channels:      channels,
		movies:        movies,
		series:        series,
		relationships: relationships,
		llm:           llmService,
		publisher:     publisher,
	}
}

func (uc *ContentUsecase) CreateChannel(ctx context.Context, channel *models.Channel, clientID *primitive.ObjectID) error {
	channel.ClientID = nil
	if err := uc.channels.Create(ctx, channel); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "channels")
	if clientID != nil {
		return uc.relationships.AssignChannelToClient(ctx, channel.ID, clientID)
	}
	return nil
}

func (uc *ContentUsecase) UpdateChannel(ctx context.Context, channel *models.Channel) error {
	if err := uc.channels.UpdateInfo(ctx, channel); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "channels")
	return nil
}

func (uc *ContentUsecase) ListChannels(ctx context.Context) ([]*models.Channel, error) {
	return uc.channels.List(ctx)
}

// CreateMovie auto-rates the title when no rating was provided.
func (uc *ContentUsecase) CreateMovie(ctx context.Context, movie *models.Movie, channelID *primitive.ObjectID) error {
	movie.ChannelID = nil
	if movie.Rating == 0 {
		movie.Rating = uc.llm.RateTitle(ctx, movie.Title, movie.Genre, movie.Year)
	}
	if err := uc.movies.Create(ctx, movie); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "movies")
	if channelID != nil {
		return uc.relationships.AssignMovieToChannel(ctx, movie.ID, channelID)
	}
	return nil
}

func (uc *ContentUsecase) UpdateMovie(ctx context.Context, movie *models.Movie) error {
	if err := uc.movies.UpdateInfo(ctx, movie); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "movies")
	return nil
}

func (uc *ContentUsecase) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	return uc.movies.List(ctx)
}

func (uc *ContentUsecase) CreateSeries(ctx context.Context, series *models.Series, channelID *primitive.ObjectID) error {
	series.ChannelID = nil
	if series.Rating == 0 {
		series.Rating = uc.llm.RateTitle(ctx, series.Title, series.Genre, series.Year)
	}
	if err := uc.series.Create(ctx, series); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "series")
	if channelID != nil {
		return uc.relationships.AssignSeriesToChannel(ctx, series.ID, channelID)
	}
	return nil
}

func (uc *ContentUsecase) UpdateSeries(ctx context.Context, series *models.Series) error {
	if err := uc.series.UpdateInfo(ctx, series); err != nil {
		return err
	}
	uc.publisher.CollectionChanged(ctx, "series")
	return nil
}

func (uc *ContentUsecase) ListSeries(ctx context.Context) ([]*models.Series, error) {
	return uc.series.List(ctx)
}
