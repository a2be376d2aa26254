package store

import (
	"context"
	"sync"

	"tasktracker/internal/logger"
	"tasktracker/models"
)

// memoryUserRepository is the in-memory implementation of [UserRepository].
//
// State lives for the lifetime of the process; nothing is persisted across
// restarts. All read-modify-write sections (ID assignment, uniqueness check
// plus insert) are guarded by a single mutex so the repository is safe for
// concurrent request handling.
type memoryUserRepository struct {
	mu         sync.RWMutex
	nextID     int64
	byID       map[int64]models.User
	byUsername map[string]int64

	logger *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
// IDs start at 1 and are never reused.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		nextID:     1,
		byID:       make(map[int64]models.User),
		byUsername: make(map[string]int64),
		logger:     logger,
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[user.Username]; exists {
		return models.User{}, ErrUsernameTaken
	}

	user.UserID = r.nextID
	r.nextID++

	r.byID[user.UserID] = user
	r.byUsername[user.Username] = user.UserID

	return user, nil
}

func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return r.byID[id], nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}
