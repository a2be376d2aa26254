package session

import (
	"context"
	"sync"

	"tasktracker/internal/logger"
)

// memoryStore is the default, non-durable [Store]: a mutex-guarded map that
// lives for the lifetime of the process.
//
// Expired sessions are dropped lazily on Find and in bulk by DeleteExpired,
// which the session sweeper worker calls periodically.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session

	logger *logger.Logger
}

// NewMemoryStore constructs an empty in-memory session [Store].
func NewMemoryStore(logger *logger.Logger) Store {
	logger.Debug().Msg("creating in-memory session store")
	return &memoryStore{
		sessions: make(map[string]Session),
		logger:   logger,
	}
}

func (s *memoryStore) Save(ctx context.Context, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = session
	return nil
}

func (s *memoryStore) Find(ctx context.Context, token string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	if session.Expired() {
		delete(s.sessions, token)
		return Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *memoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *memoryStore) DeleteExpired(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if session.Expired() {
			delete(s.sessions, token)
		}
	}

	return nil
}
