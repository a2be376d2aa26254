// Package session implements server-side session management for the cookie
// authentication flow.
//
// A session associates an opaque random token with an authenticated user ID
// and an expiry time. The token itself is never sent to clients directly: the
// HTTP layer wraps it in a signed JWT before placing it in a cookie. Stores
// are pluggable: the default keeps sessions in memory and sweeps expired
// entries periodically, while a SQLite-backed store persists them across
// restarts.
package session

import (
	"context"
	"time"

	"tasktracker/internal/logger"

	"github.com/google/uuid"
)

// Session is a server-side record associating a request with an
// authenticated user ID.
type Session struct {
	// Token is the opaque random session identifier (UUID v4).
	Token string

	// UserID is the authenticated user the session belongs to.
	UserID int64

	// ExpiresAt is the absolute time after which the session is invalid.
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry time.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store is the persistence contract for sessions. Implementations must treat
// an expired session as absent in Find.
type Store interface {
	// Save persists the session, overwriting any record with the same token.
	Save(ctx context.Context, session Session) error

	// Find returns the live session for token, or ErrSessionNotFound when
	// the token is unknown or the session has expired.
	Find(ctx context.Context, token string) (Session, error)

	// Delete removes the session for token. Deleting an unknown token is
	// not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired evicts every expired session.
	DeleteExpired(ctx context.Context) error
}

// Manager creates, resolves and revokes sessions on top of a [Store].
type Manager struct {
	store  Store
	ttl    time.Duration
	logger *logger.Logger
}

// NewManager constructs a session Manager. ttl controls how long a newly
// created session remains valid.
func NewManager(store Store, ttl time.Duration, logger *logger.Logger) *Manager {
	logger.Debug().Dur("ttl", ttl).Msg("creating session manager")
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Create issues a new session for userID with a fresh random token.
func (m *Manager) Create(ctx context.Context, userID int64) (Session, error) {
	session := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl),
	}

	if err := m.store.Save(ctx, session); err != nil {
		return Session{}, err
	}

	return session, nil
}

// Get resolves a session token to its live session.
// Returns ErrSessionNotFound for unknown or expired tokens.
func (m *Manager) Get(ctx context.Context, token string) (Session, error) {
	return m.store.Find(ctx, token)
}

// Delete revokes the session for token.
func (m *Manager) Delete(ctx context.Context, token string) error {
	return m.store.Delete(ctx, token)
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
