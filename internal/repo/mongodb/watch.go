package mongodb

import (
	"context"
	"fmt"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WatchedCollections are the collections mirrored live into browser sessions.
var WatchedCollections = []string{
	"clients",
	"channels",
	"movies",
	"series",
	"financials",
	"admin_notifications",
	"tickets",
}

// Snapshot is a full re-read of one collection, delivered on subscribe and
// after every server-side mutation.
type Snapshot struct {
	Collection string   `json:"collection"`
	Documents  []bson.M `json:"documents"`
}

type SnapshotSink func(snap Snapshot)

// Watcher bridges MongoDB change streams to collection snapshots. Change
// streams need a replica set; when watching is disabled the Publish path is
// the only trigger, so mutations made by other processes are not observed.
type Watcher struct {
	db   *DB
	sink SnapshotSink
}

func NewWatcher(db *DB, sink SnapshotSink) *Watcher {
	return &Watcher{db: db, sink: sink}
}

// Start opens one change stream per watched collection and re-delivers the
// full collection on every change. The initial snapshot is pushed before the
// stream starts so new subscribers see current state immediately.
func (w *Watcher) Start(ctx context.Context) error {
	for _, name := range WatchedCollections {
		if err := w.Publish(ctx, name); err != nil {
			return err
		}
		go w.watchCollection(ctx, name)
	}
	return nil
}

// Publish re-reads a collection and pushes the snapshot to the sink. Called
// by the watcher on change events and by usecases after local writes when
// change streams are unavailable.
func (w *Watcher) Publish(ctx context.Context, collection string) error {
	docs, err := w.readAll(ctx, collection)
	if err != nil {
		return err
	}
	w.sink(Snapshot{Collection: collection, Documents: docs})
	return nil
}

// CollectionChanged publishes fresh snapshots after a local mutation. Errors
// are logged, not returned: a stale browser view never fails the write that
// caused it.
func (w *Watcher) CollectionChanged(ctx context.Context, collections ...string) {
	for _, name := range collections {
		if err := w.Publish(ctx, name); err != nil {
			log.Warnw(ctx, "publish snapshot", "collection", name, "error", err)
		}
	}
}

func (w *Watcher) watchCollection(ctx context.Context, name string) {
	coll := w.db.Database.Collection(name)
	stream, err := coll.Watch(ctx, bson.A{}, options.ChangeStream())
	if err != nil {
		log.Errorw(ctx, "open change stream", "collection", name, "error", err)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		if err := w.Publish(ctx, name); err != nil {
			log.Warnw(ctx, "publish snapshot", "collection", name, "error", err)
		}
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Errorw(ctx, "change stream closed", "collection", name, "error", err)
	}
}

func (w *Watcher) readAll(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := w.db.Database.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", collection, err)
	}
	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return docs, nil
}
