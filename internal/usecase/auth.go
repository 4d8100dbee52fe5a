package usecase

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nguyentranbao-ct/ott-backoffice/internal/config"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/models"
	"github.com/nguyentranbao-ct/ott-backoffice/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/ott-backoffice/pkg/actor"
)

var errInvalidCredentials = status.Errorf(codes.Unauthenticated, "invalid credentials")

// AuthUsecase is a fixed-credential check, not a security boundary: the admin
// credential comes from config and client credentials live on the client
// documents. Sessions are held in memory and vanish on restart.
type AuthUsecase struct {
	clients  mongodb.ClientRepository
	notifier Notifier
	admin    config.AdminConfig

	mu       sync.RWMutex
	sessions map[string]actor.Actor
}

func NewAuthUsecase(cfg *config.Config, clients mongodb.ClientRepository, notifier Notifier) *AuthUsecase {
	return &AuthUsecase{
		clients:  clients,
		notifier: notifier,
		admin:    cfg.Admin,
		sessions: make(map[string]actor.Actor),
	}
}

// Login authenticates either the admin or a client. Client logins notify the
// admin inbox; banned accounts are rejected.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (token string, a actor.Actor, err error) {
	if subtle.ConstantTimeCompare([]byte(email), []byte(uc.admin.Email)) == 1 {
		if subtle.ConstantTimeCompare([]byte(password), []byte(uc.admin.Password)) != 1 {
			return "", actor.Actor{}, errInvalidCredentials
		}
		a = actor.Actor{Admin: true}
		return uc.newSession(a), a, nil
	}

	client, err := uc.clients.GetByEmail(ctx, email)
	if err == models.ErrNotFound {
		return "", actor.Actor{}, errInvalidCredentials
	}
	if err != nil {
		return "", actor.Actor{}, err
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) != 1 {
		return "", actor.Actor{}, errInvalidCredentials
	}
	if client.Status == models.ClientBanned {
		return "", actor.Actor{}, status.Errorf(codes.PermissionDenied, "account banned")
	}

	a = actor.Actor{ClientID: client.ID.Hex()}
	uc.notifier.NotifyAdmin(ctx, client, models.NotifClientLogin,
		"Client Login", client.Name+" logged in to the portal.")
	return uc.newSession(a), a, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context, token string) {
	uc.mu.Lock()
	a, ok := uc.sessions[token]
	delete(uc.sessions, token)
	uc.mu.Unlock()
	if !ok || a.Admin {
		return
	}

	if id, err := parseObjectID(a.ClientID); err == nil {
		if client, err := uc.clients.GetByID(ctx, id); err == nil {
			uc.notifier.NotifyAdmin(ctx, client, models.NotifClientAction,
				"Client Logout", client.Name+" logged out of the portal.")
		}
	}
}

func (uc *AuthUsecase) Validate(token string) (actor.Actor, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	a, ok := uc.sessions[token]
	return a, ok
}

func (uc *AuthUsecase) newSession(a actor.Actor) string {
	token := uuid.NewString()
	uc.mu.Lock()
	uc.sessions[token] = a
	uc.mu.Unlock()
	return token
}
