// Package actor carries the authenticated identity of a request: the single
// back-office admin, or one client of the platform.
package actor

import "context"

type Actor struct {
	Admin    bool
	ClientID string // hex object id, empty for admin
}

func (a Actor) IsClient(clientID string) bool {
	return !a.Admin && a.ClientID == clientID
}

type ctxKey struct{}

func With(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

func From(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}
