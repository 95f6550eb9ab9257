package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/revisor-lab/revisor/pkg/domain/interfaces"
	"github.com/revisor-lab/revisor/pkg/domain/model/auth"
	"github.com/revisor-lab/revisor/pkg/domain/types"
	"github.com/revisor-lab/revisor/pkg/kv"
	"github.com/revisor-lab/revisor/pkg/utils/logging"
)

const sessionKey = "auth_session"

// AuthConfig is the demo login allow-list. All users share one
// password; this mirrors a mock authentication setup, not a real
// credential store.
type AuthConfig struct {
	Users      []auth.User
	Password   string
	LoginDelay time.Duration
	SessionTTL time.Duration
}

// DefaultAuthConfig returns the built-in demo users
func DefaultAuthConfig() AuthConfig {
	return AuthConfig{
		Users: []auth.User{
			{
				ID:          1,
				Username:    "admin",
				Name:        "Administrator",
				Email:       "admin@auditsystem.com",
				Role:        types.RoleAdmin,
				Permissions: []string{"all"},
			},
			{
				ID:          2,
				Username:    "auditor1",
				Name:        "Juan Perez",
				Email:       "jperez@auditsystem.com",
				Role:        types.RoleAuditor,
				Permissions: []string{"audits", "checklists", "reports"},
			},
			{
				ID:          3,
				Username:    "supervisor1",
				Name:        "Maria Garcia",
				Email:       "mgarcia@auditsystem.com",
				Role:        types.RoleSupervisor,
				Permissions: []string{"audits", "checklists", "reports", "actions"},
			},
		},
		Password:   "123456",
		LoginDelay: time.Second,
		SessionTTL: 24 * time.Hour,
	}
}

type AuthUseCase struct {
	backend interfaces.Backend
	clock   interfaces.Clock
	config  AuthConfig
}

func NewAuthUseCase(backend interfaces.Backend, clock interfaces.Clock, config AuthConfig) *AuthUseCase {
	if clock == nil {
		clock = interfaces.RealClock
	}
	return &AuthUseCase{backend: backend, clock: clock, config: config}
}

// Login checks the credentials against the allow-list and persists a
// new session. The artificial delay and the single generic error keep
// timing and wording from leaking which part of the check failed.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*auth.Session, error) {
	if uc.config.LoginDelay > 0 {
		select {
		case <-time.After(uc.config.LoginDelay):
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "login cancelled")
		}
	}

	var matched *auth.User
	for i := range uc.config.Users {
		if uc.config.Users[i].Username == username {
			matched = &uc.config.Users[i]
			break
		}
	}
	if matched == nil || password != uc.config.Password {
		return nil, ErrInvalidCredentials
	}

	now := uc.clock()
	session := &auth.Session{
		ID:        auth.NewSessionID(),
		User:      matched.Clone(),
		CreatedAt: now,
		ExpiresAt: now.Add(uc.config.SessionTTL),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode session")
	}
	if err := uc.backend.Put(ctx, sessionKey, raw); err != nil {
		return nil, goerr.Wrap(err, "failed to persist session")
	}

	logging.From(ctx).Info("user logged in",
		"username", matched.Username, "role", matched.Role)
	return session, nil
}

// CurrentSession returns the stored session, if any and not expired.
// An expired or corrupt session is discarded.
func (uc *AuthUseCase) CurrentSession(ctx context.Context) (*auth.Session, error) {
	raw, err := uc.backend.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, goerr.Wrap(err, "failed to load session")
	}

	var session auth.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		uc.discardSession(ctx)
		return nil, ErrNotAuthenticated
	}
	if session.Validate() != nil || session.Expired(uc.clock()) {
		uc.discardSession(ctx)
		return nil, ErrNotAuthenticated
	}
	return &session, nil
}

// Logout removes the stored session. Logging out with no session is
// not an error.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	if err := uc.backend.Delete(ctx, sessionKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return goerr.Wrap(err, "failed to remove session")
	}
	return nil
}

func (uc *AuthUseCase) discardSession(ctx context.Context) {
	if err := uc.backend.Delete(ctx, sessionKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		logging.From(ctx).Warn("failed to discard stale session", "error", err)
	}
}
