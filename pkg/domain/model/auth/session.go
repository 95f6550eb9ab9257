package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// SessionID identifies a login session
type SessionID string

// NewSessionID generates a new random session ID
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// Validate checks if the session ID is a well-formed UUID
func (id SessionID) Validate() error {
	if _, err := uuid.Parse(string(id)); err != nil {
		return goerr.Wrap(err, "invalid session ID")
	}
	return nil
}

func (id SessionID) String() string {
	return string(id)
}

// Session is a logged-in user session, persisted as a single JSON blob
// through the key-value backend.
type Session struct {
	ID        SessionID `json:"id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Validate checks the session fields
func (s *Session) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return err
	}
	if err := s.User.Validate(); err != nil {
		return goerr.Wrap(err, "invalid session user")
	}
	return nil
}

// Expired reports whether the session has expired at now
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
