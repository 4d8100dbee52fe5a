package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

func TestNotifyAdmin(t *testing.T) {
	ctx := context.Background()
	inbox := &fakeAdminNotifRepo{}
	clients := newFakeClientRepo()
	producer := &fakeProducer{}
	broadcaster := &fakeBroadcaster{}
	publisher := &fakePublisher{}
	n := NewNotifier(inbox, clients, producer, broadcaster, publisher)

	client := &models.Client{Name: "Acme", Logo: "https://cdn.example/acme.png", Email: "acme@example.com"}
	require.NoError(t, clients.Create(ctx, client))

	n.NotifyAdmin(ctx, client, models.NotifClientAction, "New Client", "Acme joined.")

	require.Len(t, inbox.notifs, 1)
	got := inbox.notifs[0]
	assert.Equal(t, client.ID, got.ClientID)
	assert.Equal(t, "Acme", got.ClientName)
	assert.Equal(t, "https://cdn.example/acme.png", got.ClientLogo)
	assert.False(t, got.Read)

	require.Len(t, broadcaster.events, 1)
	assert.Equal(t, "admin", broadcaster.events[0].Audience)
	assert.Equal(t, "notification", broadcaster.events[0].Event)

	require.Len(t, producer.events, 1)
	assert.Equal(t, "admin", producer.events[0].Audience)
	assert.True(t, publisher.sawCollection("admin_notifications"))
}

func TestNotifyAdminSnapshotIsFrozen(t *testing.T) {
	ctx := context.Background()
	inbox := &fakeAdminNotifRepo{}
	clients := newFakeClientRepo()
	n := NewNotifier(inbox, clients, &fakeProducer{}, &fakeBroadcaster{}, &fakePublisher{})

	client := &models.Client{Name: "Before", Email: "x@example.com"}
	require.NoError(t, clients.Create(ctx, client))
	n.NotifyAdmin(ctx, client, models.NotifInfo, "Hello", "first")

	// rename the client afterwards; the stored notification keeps the old name
	client.Name = "After"
	require.NoError(t, clients.UpdateProfile(ctx, client))

	require.Len(t, inbox.notifs, 1)
	assert.Equal(t, "Before", inbox.notifs[0].ClientName)
}

func TestNotifyClient(t *testing.T) {
	ctx := context.Background()
	clients := newFakeClientRepo()
	producer := &fakeProducer{}
	broadcaster := &fakeBroadcaster{}
	publisher := &fakePublisher{}
	n := NewNotifier(&fakeAdminNotifRepo{}, clients, producer, broadcaster, publisher)

	client := &models.Client{Name: "Acme", Email: "acme@example.com"}
	require.NoError(t, clients.Create(ctx, client))

	n.NotifyClient(ctx, client.ID, models.NotifSuccess, "Channel Assigned", "Enjoy.")
	n.NotifyClient(ctx, client.ID, models.NotifInfo, "Second", "Newest first.")

	got, err := clients.GetByID(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, got.Notifications, 2)
	// most recent first
	assert.Equal(t, "Second", got.Notifications[0].Title)
	assert.Equal(t, "Channel Assigned", got.Notifications[1].Title)
	assert.NotEmpty(t, got.Notifications[0].ID)
	assert.False(t, got.Notifications[0].Read)

	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, "client", broadcaster.events[0].Audience)
	assert.Equal(t, client.ID.Hex(), broadcaster.events[0].ClientID)

	require.Len(t, producer.events, 2)
	assert.Equal(t, "client", producer.events[0].Audience)
}

func TestNotifyClientUnknownIDIsSwallowed(t *testing.T) {
	ctx := context.Background()
	clients := newFakeClientRepo()
	n := NewNotifier(&fakeAdminNotifRepo{}, clients, &fakeProducer{}, &fakeBroadcaster{}, &fakePublisher{})

	// fan-out is best effort; a missing client must not panic or error out
	n.NotifyClient(ctx, primitive.NewObjectID(), models.NotifInfo, "Ghost", "nobody home")
}
