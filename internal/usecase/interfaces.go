package usecase

import (
	"context"
)

// Broadcaster pushes events to connected browser sessions. Implemented by the
// websocket hub in internal/server.
type Broadcaster interface {
	BroadcastToAdmin(event string, payload any)
	BroadcastToClient(clientID string, event string, payload any)
}

// TxnRunner runs fn atomically. Implemented by mongodb.DB; every
// relationship-changing mutation goes through it so both sides of a
// denormalized reference commit together.
type TxnRunner interface {
	RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher re-delivers collection snapshots to live subscribers after a
// local mutation. Implemented by mongodb.Watcher.
type Publisher interface {
	CollectionChanged(ctx context.Context, collections ...string)
}
