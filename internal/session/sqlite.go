package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

const createSessionsTable = `CREATE TABLE IF NOT EXISTS sessions (
    token      TEXT PRIMARY KEY,
    user_id    INTEGER NOT NULL,
    expires_at TIMESTAMP NOT NULL
);`

// sqliteStore is the persistent [Store] implementation backed by a SQLite
// file, for deployments that must keep sessions across restarts.
type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at path,
// bootstraps the sessions table, and returns the store.
func NewSQLiteStore(path string, log *logger.Logger) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error opening session database")
		return nil, fmt.Errorf("error opening session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting session database (ping)")
		return nil, err
	}

	if _, err := db.Exec(createSessionsTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error bootstrapping sessions table")
		return nil, fmt.Errorf("error bootstrapping sessions table: %w", err)
	}

	log.Debug().Str("path", path).Msg("created sqlite session store")

	return &sqliteStore{
		db:     db,
		logger: log,
	}, nil
}

func (s *sqliteStore) Save(ctx context.Context, session Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (token, user_id, expires_at) VALUES (?, ?, ?);`,
		session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

func (s *sqliteStore) Find(ctx context.Context, token string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT token, user_id, expires_at FROM sessions WHERE token = ?;`, token)

	var session Session
	if err := row.Scan(&session.Token, &session.UserID, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("error scanning session: %w", err)
	}

	if session.Expired() {
		_ = s.Delete(ctx, token)
		return Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *sqliteStore) Delete(ctx context.Context, token string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?;`, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}

	return nil
}

func (s *sqliteStore) DeleteExpired(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?;`, time.Now()); err != nil {
		return fmt.Errorf("error deleting expired sessions: %w", err)
	}

	return nil
}
