package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error)
	List(ctx context.Context) ([]*models.Movie, error)
	ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Movie, error)
	UpdateInfo(ctx context.Context, movie *models.Movie) error
	SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error
	ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type movieRepo struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *DB) MovieRepository {
	return &movieRepo{
		collection: db.Database.Collection("movies"),
	}
}

func (r *movieRepo) Create(ctx context.Context, movie *models.Movie) error {
	now := time.Now()
	movie.ID = primitive.NewObjectID()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, movie); err != nil {
		return fmt.Errorf("insert movie: %w", err)
	}
	return nil
}

func (r *movieRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieRepo) List(ctx context.Context) ([]*models.Movie, error) {
	return r.find(ctx, bson.M{})
}

func (r *movieRepo) ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Movie, error) {
	return r.find(ctx, bson.M{"channel_id": channelID})
}

func (r *movieRepo) find(ctx context.Context, filter bson.M) ([]*models.Movie, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	var movies []*models.Movie
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func (r *movieRepo) UpdateInfo(ctx context.Context, movie *models.Movie) error {
	return r.updateOne(ctx, movie.ID, bson.M{
		"$set": bson.M{
			"title":            movie.Title,
			"genre":            movie.Genre,
			"year":             movie.Year,
			"rating":           movie.Rating,
			"duration_minutes": movie.DurationMinutes,
			"poster":           movie.Poster,
			"views":            movie.Views,
			"revenue":          movie.Revenue,
			"updated_at":       time.Now(),
		},
	})
}

func (r *movieRepo) SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"channel_id": channelID,
			"updated_at": time.Now(),
		},
	})
}

func (r *movieRepo) ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"channel_id": channelID}, bson.M{
		"$set": bson.M{
			"channel_id": nil,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("clear movie channels: %w", err)
	}
	return nil
}

func (r *movieRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *movieRepo) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

type SeriesRepository interface {
	Create(ctx context.Context, series *models.Series) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error)
	List(ctx context.Context) ([]*models.Series, error)
	ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Series, error)
	UpdateInfo(ctx context.Context, series *models.Series) error
	SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error
	ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type seriesRepo struct {
	collection *mongo.Collection
}

func NewSeriesRepository(db *DB) SeriesRepository {
	return &seriesRepo{
		collection: db.Database.Collection("series"),
	}
}

func (r *seriesRepo) Create(ctx context.Context, series *models.Series) error {
	now := time.Now()
	series.ID = primitive.NewObjectID()
	series.CreatedAt = now
	series.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, series); err != nil {
		return fmt.Errorf("insert series: %w", err)
	}
	return nil
}

func (r *seriesRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Series, error) {
	var series models.Series
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&series)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find series: %w", err)
	}
	return &series, nil
}

func (r *seriesRepo) List(ctx context.Context) ([]*models.Series, error) {
	return r.find(ctx, bson.M{})
}

func (r *seriesRepo) ListByChannel(ctx context.Context, channelID primitive.ObjectID) ([]*models.Series, error) {
	return r.find(ctx, bson.M{"channel_id": channelID})
}

func (r *seriesRepo) find(ctx context.Context, filter bson.M) ([]*models.Series, error) {
	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	var series []*models.Series
	if err := cursor.All(ctx, &series); err != nil {
		return nil, fmt.Errorf("decode series: %w", err)
	}
	return series, nil
}

func (r *seriesRepo) UpdateInfo(ctx context.Context, series *models.Series) error {
	return r.updateOne(ctx, series.ID, bson.M{
		"$set": bson.M{
			"title":      series.Title,
			"genre":      series.Genre,
			"year":       series.Year,
			"rating":     series.Rating,
			"seasons":    series.Seasons,
			"episodes":   series.Episodes,
			"poster":     series.Poster,
			"views":      series.Views,
			"revenue":    series.Revenue,
			"updated_at": time.Now(),
		},
	})
}

func (r *seriesRepo) SetChannel(ctx context.Context, id primitive.ObjectID, channelID *primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"channel_id": channelID,
			"updated_at": time.Now(),
		},
	})
}

func (r *seriesRepo) ClearChannelFor(ctx context.Context, channelID primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"channel_id": channelID}, bson.M{
		"$set": bson.M{
			"channel_id": nil,
			"updated_at": time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("clear series channels: %w", err)
	}
	return nil
}

func (r *seriesRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete series: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *seriesRepo) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
