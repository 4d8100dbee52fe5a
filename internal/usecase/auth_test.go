package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
)

func newAuthFixture(t *testing.T) (*AuthUsecase, *fakeClientRepo, *fakeNotifier, *models.Client) {
	t.Helper()
	clients := newFakeClientRepo()
	notifier := &fakeNotifier{}
	cfg := &config.Config{Admin: config.AdminConfig{Email: "admin@backoffice.example", Password: "admin-secret"}}
	uc := NewAuthUsecase(cfg, clients, notifier)

	client := &models.Client{
		Name:     "Acme",
		Email:    "acme@example.com",
		Password: "client-secret",
		Plan:     models.PlanStandard,
	}
	require.NoError(t, clients.Create(context.Background(), client))
	return uc, clients, notifier, client
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin", func(t *testing.T) {
		uc, _, notifier, _ := newAuthFixture(t)

		token, a, err := uc.Login(ctx, "admin@backoffice.example", "admin-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.True(t, a.Admin)
		assert.Empty(t, a.ClientID)
		// admin logins are not announced to anyone
		assert.Empty(t, notifier.sent)
	})

	t.Run("admin wrong password", func(t *testing.T) {
		uc, _, _, _ := newAuthFixture(t)
		_, _, err := uc.Login(ctx, "admin@backoffice.example", "nope")
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("client", func(t *testing.T) {
		uc, _, notifier, client := newAuthFixture(t)

		token, a, err := uc.Login(ctx, client.Email, "client-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.False(t, a.Admin)
		assert.Equal(t, client.ID.Hex(), a.ClientID)
		assert.True(t, notifier.hasTitle("Client Login"))
	})

	t.Run("client wrong password", func(t *testing.T) {
		uc, _, _, client := newAuthFixture(t)
		_, _, err := uc.Login(ctx, client.Email, "nope")
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _ := newAuthFixture(t)
		_, _, err := uc.Login(ctx, "ghost@example.com", "whatever")
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("banned client rejected", func(t *testing.T) {
		uc, clients, _, client := newAuthFixture(t)
		require.NoError(t, clients.SetStatus(ctx, client.ID, models.ClientBanned, "fraud", ""))

		_, _, err := uc.Login(ctx, client.Email, "client-secret")
		assert.Equal(t, codes.PermissionDenied, status.Code(err))
	})
}

func TestAuthValidateAndLogout(t *testing.T) {
	ctx := context.Background()
	uc, _, notifier, client := newAuthFixture(t)

	token, _, err := uc.Login(ctx, client.Email, "client-secret")
	require.NoError(t, err)

	a, ok := uc.Validate(token)
	require.True(t, ok)
	assert.Equal(t, client.ID.Hex(), a.ClientID)

	_, ok = uc.Validate("bogus-token")
	assert.False(t, ok)

	uc.Logout(ctx, token)
	_, ok = uc.Validate(token)
	assert.False(t, ok)
	assert.True(t, notifier.hasTitle("Client Logout"))

	// logging out twice is harmless
	uc.Logout(ctx, token)
}
