package service

import (
	"context"

	"tasktracker/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register creates a new account from the supplied credentials and
	// returns the stored user. Surfaces store.ErrUsernameTaken when the
	// username is already registered.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the supplied credentials against the stored account.
	// Returns ErrInvalidCredentials for an unknown username or a wrong
	// password; the two cases are not distinguished.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// GetUser looks up a user by ID, typically to resolve the principal of
	// an authenticated session.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// TaskService implements the ownership-scoped task operations. Every method
// takes the authenticated user's ID as resolved from the session; task
// bodies never carry an owner.
type TaskService interface {
	CreateTask(ctx context.Context, userID int64, create models.TaskCreate) (models.Task, error)
	GetTasks(ctx context.Context, userID int64) ([]models.Task, error)
	UpdateTask(ctx context.Context, taskID, userID int64, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID int64) error
}
