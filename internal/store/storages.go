package store

import (
	"context"

	"tasktracker/internal/config"
	"tasktracker/internal/logger"
)

// Storages aggregates the repositories injected into the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages constructs the repository set selected by configuration.
//
// When a database DSN is configured, both repositories are backed by
// PostgreSQL and pending migrations are applied at startup. Otherwise the
// non-durable in-memory repositories are used and state lives only as long
// as the process.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory stores")
		return &Storages{
			UserRepository: NewMemoryUserRepository(log),
			TaskRepository: NewMemoryTaskRepository(log),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}
