// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/logger"
	"tasktracker/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps an existing *sql.DB for tests.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var userColumns = []string{"user_id", "username", "password"}

func TestUserRepository_CreateUser_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "digest.salt").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(1), "alice", "digest.salt"))

	created, err := repo.CreateUser(testContext(), models.User{Username: "alice", Password: "digest.salt"})
	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: 1, Username: "alice", Password: "digest.salt"}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_UniqueViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "digest.salt").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice", Password: "digest.salt"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_UnexpectedError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "digest.salt").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.CreateUser(testContext(), models.User{Username: "alice", Password: "digest.salt"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByUsername(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		wantErr  error
		wantUser models.User
	}{
		{
			name:     "found",
			rows:     sqlmock.NewRows(userColumns).AddRow(int64(3), "bob", "digest.salt"),
			wantUser: models.User{UserID: 3, Username: "bob", Password: "digest.salt"},
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(userColumns),
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta(findUserByUsername)).
				WithArgs("bob").
				WillReturnRows(tt.rows)

			found, err := repo.FindUserByUsername(testContext(), "bob")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindUserByID(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		wantErr  error
		wantUser models.User
	}{
		{
			name:     "found",
			rows:     sqlmock.NewRows(userColumns).AddRow(int64(5), "carol", "digest.salt"),
			wantUser: models.User{UserID: 5, Username: "carol", Password: "digest.salt"},
		},
		{
			name:    "not found",
			rows:    sqlmock.NewRows(userColumns),
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewUserRepository(newDBFromSQL(db), logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
				WithArgs(int64(5)).
				WillReturnRows(tt.rows)

			found, err := repo.FindUserByID(testContext(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, found)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
