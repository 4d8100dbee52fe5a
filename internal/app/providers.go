package app

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/server"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/usecase"
)

func newMongoDB(lc fx.Lifecycle, cfg *config.Config) (*mongodb.DB, error) {
	opts := options.Client().
		SetAppName("ott-backoffice").
		SetDirect(cfg.Database.Direct).
		SetHosts(cfg.Database.Hosts)

	if cfg.Database.Username != "" {
		opts.SetAuth(options.Credential{
			Username:      cfg.Database.Username,
			Password:      cfg.Database.Password,
			AuthSource:    cfg.Database.AuthDB,
			AuthMechanism: "SCRAM-SHA-1",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mongoClient, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("init mongo client: %w", err)
	}

	mongoDB := mongoClient.Database(cfg.Database.Database)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return mongoClient.Ping(ctx, nil)
		},
		OnStop: func(ctx context.Context) error {
			return mongoClient.Disconnect(ctx)
		},
	})

	return &mongodb.DB{
		Client:   mongoClient,
		Database: mongoDB,
	}, nil
}

func newBroadcaster(hub *server.Hub) usecase.Broadcaster {
	return hub
}

func newSnapshotSink(hub *server.Hub) mongodb.SnapshotSink {
	return hub.BroadcastSnapshot
}

func newPublisher(w *mongodb.Watcher) usecase.Publisher {
	return w
}

// StartWatcher runs the change stream bridge for the lifetime of the app.
// Change streams need a replica set, so they are opt-in; local mutations
// still push snapshots through the Publisher path either way.
func StartWatcher(lc fx.Lifecycle, cfg *config.Config, w *mongodb.Watcher) {
	if !cfg.Database.Watch {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return w.Start(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
