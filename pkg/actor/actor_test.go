package actor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFrom(t *testing.T) {
	ctx := With(context.Background(), Actor{ClientID: "abc123"})
	a, ok := From(ctx)
	require.True(t, ok)
	assert.False(t, a.Admin)
	assert.Equal(t, "abc123", a.ClientID)
}

func TestFromMissing(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)
}

func TestIsClient(t *testing.T) {
	client := Actor{ClientID: "abc"}
	assert.True(t, client.IsClient("abc"))
	assert.False(t, client.IsClient("other"))

	// The admin never matches a client id, even its own empty one.
	admin := Actor{Admin: true}
	assert.False(t, admin.IsClient(""))
	assert.False(t, admin.IsClient("abc"))
}
