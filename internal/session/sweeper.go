package session

import (
	"context"
	"time"

	"tasktracker/internal/logger"
)

// Sweeper periodically evicts expired sessions from a [Store]. It implements
// the workers.Worker interface and spawns its ticker loop internally.
type Sweeper struct {
	store    Store
	interval time.Duration
	logger   *logger.Logger
}

// NewSweeper constructs a Sweeper evicting expired sessions every interval.
func NewSweeper(store Store, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop on its own goroutine and returns immediately.
// The loop runs for the lifetime of the process.
func (s *Sweeper) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("starting session sweeper")

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for range ticker.C {
			if err := s.store.DeleteExpired(context.Background()); err != nil {
				s.logger.Err(err).Msg("session sweep failed")
			}
		}
	}()
}
