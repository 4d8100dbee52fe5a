package usecase

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
)

// RelationshipUsecase owns every ownership edge in the data model. All
// mutations here are two-sided or cascading: no code path anywhere else may
// update one side of a Client<->Channel<->Movie/Series reference without the
// other. Each multi-document flow runs in one transaction.
type RelationshipUsecase struct {
	clients    mongodb.ClientRepository
	channels   mongodb.ChannelRepository
	movies     mongodb.MovieRepository
	series     mongodb.SeriesRepository
	financials mongodb.FinancialsRepository
	tickets    mongodb.TicketRepository
	txn        TxnRunner
	notifier   Notifier
	publisher  Publisher
}

func NewRelationshipUsecase(
	clients mongodb.ClientRepository,
	channels mongodb.ChannelRepository,
	movies mongodb.MovieRepository,
	series mongodb.SeriesRepository,
	financials mongodb.FinancialsRepository,
	tickets mongodb.TicketRepository,
	db *mongodb.DB,
	notifier Notifier,
	publisher Publisher,
) *RelationshipUsecase {
	return &RelationshipUsecase{
		clients:    clients,
		channels:   channels,
		movies:     movies,
		series:     series,
		financials: financials,
		tickets:    tickets,
		txn:        db,
		notifier:   notifier,
		publisher:  publisher,
	}
}

// AssignChannelToClient moves a channel between owners. A nil clientID
// unassigns the channel (it survives ownerless). Assigning the same channel
// to the same client twice is a no-op.
func (uc *RelationshipUsecase) AssignChannelToClient(ctx context.Context, channelID primitive.ObjectID, clientID *primitive.ObjectID) error {
	channel, err := uc.channels.GetByID(ctx, channelID)
	if err != nil {
		return err
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if prev := channel.ClientID; prev != nil && (clientID == nil || *prev != *clientID) {
			if err := uc.clients.RemoveChannelID(ctx, *prev, channelID); err != nil {
				return fmt.Errorf("detach previous owner: %w", err)
			}
		}
		if clientID != nil {
			if err := uc.clients.AddChannelID(ctx, *clientID, channelID); err != nil {
				return fmt.Errorf("attach new owner: %w", err)
			}
		}
		return uc.channels.SetOwner(ctx, channelID, clientID)
	})
	if err != nil {
		return err
	}

	if clientID != nil {
		uc.notifier.NotifyClient(ctx, *clientID, models.NotifSuccess,
			"Channel Assigned",
			fmt.Sprintf("The channel %q has been assigned to your account.", channel.Name))
	}
	uc.publisher.CollectionChanged(ctx, "channels", "clients")
	return nil
}

// AssignMovieToChannel moves a movie between channels, one level down from
// channel ownership. The owning client of the target channel, if any, gets a
// success notification.
func (uc *RelationshipUsecase) AssignMovieToChannel(ctx context.Context, movieID primitive.ObjectID, channelID *primitive.ObjectID) error {
	movie, err := uc.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}

	var target *models.Channel
	if channelID != nil {
		if target, err = uc.channels.GetByID(ctx, *channelID); err != nil {
			return err
		}
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if prev := movie.ChannelID; prev != nil && (channelID == nil || *prev != *channelID) {
			if err := uc.channels.RemoveMovieID(ctx, *prev, movieID); err != nil {
				return fmt.Errorf("detach previous channel: %w", err)
			}
		}
		if channelID != nil {
			if err := uc.channels.AddMovieID(ctx, *channelID, movieID); err != nil {
				return fmt.Errorf("attach new channel: %w", err)
			}
		}
		return uc.movies.SetChannel(ctx, movieID, channelID)
	})
	if err != nil {
		return err
	}

	if target != nil && target.ClientID != nil {
		uc.notifier.NotifyClient(ctx, *target.ClientID, models.NotifSuccess,
			"New Movie Added",
			fmt.Sprintf("%q was added to your channel %q.", movie.Title, target.Name))
	}
	uc.publisher.CollectionChanged(ctx, "movies", "channels")
	return nil
}

func (uc *RelationshipUsecase) AssignSeriesToChannel(ctx context.Context, seriesID primitive.ObjectID, channelID *primitive.ObjectID) error {
	series, err := uc.series.GetByID(ctx, seriesID)
	if err != nil {
		return err
	}

	var target *models.Channel
	if channelID != nil {
		if target, err = uc.channels.GetByID(ctx, *channelID); err != nil {
			return err
		}
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if prev := series.ChannelID; prev != nil && (channelID == nil || *prev != *channelID) {
			if err := uc.channels.RemoveSeriesID(ctx, *prev, seriesID); err != nil {
				return fmt.Errorf("detach previous channel: %w", err)
			}
		}
		if channelID != nil {
			if err := uc.channels.AddSeriesID(ctx, *channelID, seriesID); err != nil {
				return fmt.Errorf("attach new channel: %w", err)
			}
		}
		return uc.series.SetChannel(ctx, seriesID, channelID)
	})
	if err != nil {
		return err
	}

	if target != nil && target.ClientID != nil {
		uc.notifier.NotifyClient(ctx, *target.ClientID, models.NotifSuccess,
			"New Series Added",
			fmt.Sprintf("%q was added to your channel %q.", series.Title, target.Name))
	}
	uc.publisher.CollectionChanged(ctx, "series", "channels")
	return nil
}

// DeleteClient detaches every channel the client owns (channels survive
// ownerless), removes the client's financials and tickets, then deletes the
// client document.
func (uc *RelationshipUsecase) DeleteClient(ctx context.Context, clientID primitive.ObjectID) error {
	if _, err := uc.clients.GetByID(ctx, clientID); err != nil {
		return err
	}

	err := uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if err := uc.channels.ClearOwnerForClient(ctx, clientID); err != nil {
			return err
		}
		if err := uc.financials.DeleteByClient(ctx, clientID); err != nil {
			return err
		}
		if err := uc.tickets.DeleteByClient(ctx, clientID); err != nil {
			return err
		}
		return uc.clients.Delete(ctx, clientID)
	})
	if err != nil {
		return err
	}

	uc.publisher.CollectionChanged(ctx, "clients", "channels", "financials", "tickets")
	return nil
}

// DeleteChannel nulls out the channel reference on every movie and series it
// listed, removes the channel from its owner's list, then deletes it.
func (uc *RelationshipUsecase) DeleteChannel(ctx context.Context, channelID primitive.ObjectID) error {
	channel, err := uc.channels.GetByID(ctx, channelID)
	if err != nil {
		return err
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if err := uc.movies.ClearChannelFor(ctx, channelID); err != nil {
			return err
		}
		if err := uc.series.ClearChannelFor(ctx, channelID); err != nil {
			return err
		}
		if channel.ClientID != nil {
			if err := uc.clients.RemoveChannelID(ctx, *channel.ClientID, channelID); err != nil {
				return err
			}
		}
		return uc.channels.Delete(ctx, channelID)
	})
	if err != nil {
		return err
	}

	uc.publisher.CollectionChanged(ctx, "channels", "clients", "movies", "series")
	return nil
}

func (uc *RelationshipUsecase) DeleteMovie(ctx context.Context, movieID primitive.ObjectID) error {
	movie, err := uc.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if movie.ChannelID != nil {
			if err := uc.channels.RemoveMovieID(ctx, *movie.ChannelID, movieID); err != nil {
				return err
			}
		}
		return uc.movies.Delete(ctx, movieID)
	})
	if err != nil {
		return err
	}

	uc.publisher.CollectionChanged(ctx, "movies", "channels")
	return nil
}

func (uc *RelationshipUsecase) DeleteSeries(ctx context.Context, seriesID primitive.ObjectID) error {
	series, err := uc.series.GetByID(ctx, seriesID)
	if err != nil {
		return err
	}

	err = uc.txn.RunTransaction(ctx, func(ctx context.Context) error {
		if series.ChannelID != nil {
			if err := uc.channels.RemoveSeriesID(ctx, *series.ChannelID, seriesID); err != nil {
				return err
			}
		}
		return uc.series.Delete(ctx, seriesID)
	})
	if err != nil {
		return err
	}

	uc.publisher.CollectionChanged(ctx, "series", "channels")
	return nil
}
