package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/revisor-lab/revisor/pkg/kv/memory"
	"github.com/revisor-lab/revisor/pkg/usecase"
)

func newAuthUseCase(cfg usecase.AuthConfig) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(memory.New(), nil, cfg)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	cfg := usecase.DefaultAuthConfig()
	cfg.LoginDelay = 0

	t.Run("valid credentials", func(t *testing.T) {
		uc := newAuthUseCase(cfg)
		session, err := uc.Login(ctx, "admin", "123456")
		gt.NoError(t, err).Required()
		gt.Value(t, session.User.Username).Equal("admin")
		gt.NoError(t, session.ID.Validate())
		gt.Value(t, session.ExpiresAt.After(session.CreatedAt)).Equal(true)
	})

	t.Run("unknown user and wrong password fail identically", func(t *testing.T) {
		uc := newAuthUseCase(cfg)
		_, errUser := uc.Login(ctx, "nobody", "123456")
		_, errPass := uc.Login(ctx, "admin", "wrong")
		gt.Value(t, errors.Is(errUser, usecase.ErrInvalidCredentials)).Equal(true)
		gt.Value(t, errors.Is(errPass, usecase.ErrInvalidCredentials)).Equal(true)
		gt.Value(t, errUser.Error()).Equal(errPass.Error())
	})

	t.Run("login delay is applied", func(t *testing.T) {
		delayed := cfg
		delayed.LoginDelay = 50 * time.Millisecond
		uc := newAuthUseCase(delayed)

		start := time.Now()
		_, err := uc.Login(ctx, "admin", "123456")
		gt.NoError(t, err)
		gt.Value(t, time.Since(start) >= 50*time.Millisecond).Equal(true)
	})
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := usecase.DefaultAuthConfig()
	cfg.LoginDelay = 0

	t.Run("current session after login", func(t *testing.T) {
		uc := newAuthUseCase(cfg)
		created, err := uc.Login(ctx, "auditor1", "123456")
		gt.NoError(t, err).Required()

		session, err := uc.CurrentSession(ctx)
		gt.NoError(t, err).Required()
		gt.Value(t, session.ID).Equal(created.ID)
		gt.Value(t, session.User.Name).Equal("Juan Perez")
	})

	t.Run("no session without login", func(t *testing.T) {
		uc := newAuthUseCase(cfg)
		_, err := uc.CurrentSession(ctx)
		gt.Value(t, errors.Is(err, usecase.ErrNotAuthenticated)).Equal(true)
	})

	t.Run("expired session is discarded", func(t *testing.T) {
		backend := memory.New()
		now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
		expired := usecase.NewAuthUseCase(backend, func() time.Time { return now }, cfg)

		_, err := expired.Login(ctx, "admin", "123456")
		gt.NoError(t, err).Required()

		// Same backend, clock past the TTL.
		later := usecase.NewAuthUseCase(backend, func() time.Time { return now.Add(cfg.SessionTTL + time.Hour) }, cfg)
		_, err = later.CurrentSession(ctx)
		gt.Value(t, errors.Is(err, usecase.ErrNotAuthenticated)).Equal(true)
	})

	t.Run("logout removes session", func(t *testing.T) {
		uc := newAuthUseCase(cfg)
		_, err := uc.Login(ctx, "supervisor1", "123456")
		gt.NoError(t, err).Required()

		gt.NoError(t, uc.Logout(ctx))
		_, err = uc.CurrentSession(ctx)
		gt.Value(t, errors.Is(err, usecase.ErrNotAuthenticated)).Equal(true)

		// Logging out twice is fine.
		gt.NoError(t, uc.Logout(ctx))
	})
}
