package store

import (
	"context"
	"fmt"
	"testing"

	"tasktracker/internal/logger"
	"tasktracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryUserRepo(t *testing.T) UserRepository {
	t.Helper()
	return NewMemoryUserRepository(logger.Nop())
}

func TestMemoryUserRepository_CreateUser_AssignsSequentialIDs(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-a"})
	require.NoError(t, err)
	second, err := repo.CreateUser(ctx, models.User{Username: "bob", Password: "blob-b"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.UserID)
	assert.Equal(t, int64(2), second.UserID)
}

func TestMemoryUserRepository_CreateUser_DuplicateUsername(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-a"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-b"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestMemoryUserRepository_UsernameIsCaseSensitive(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-a"})
	require.NoError(t, err)

	// "Alice" and "alice" are distinct accounts.
	_, err = repo.CreateUser(ctx, models.User{Username: "Alice", Password: "blob-b"})
	require.NoError(t, err)

	_, err = repo.FindUserByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_FindUserByUsername(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-a"})
	require.NoError(t, err)

	found, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_FindUserByID(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, models.User{Username: "alice", Password: "blob-a"})
	require.NoError(t, err)

	found, err := repo.FindUserByID(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = repo.FindUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_ConcurrentCreates(t *testing.T) {
	repo := newMemoryUserRepo(t)
	ctx := context.Background()

	const n = 50
	done := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := repo.CreateUser(ctx, models.User{
				Username: fmt.Sprintf("user-%d", i),
				Password: "blob",
			})
			done <- err
		}(i)
	}

	for i := 0; i < n; i++ {
		require.NoError(t, <-done)
	}

	// All IDs were handed out exactly once.
	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		user, err := repo.FindUserByUsername(ctx, fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
		assert.False(t, seen[user.UserID], "duplicate user ID %d", user.UserID)
		seen[user.UserID] = true
	}
}
