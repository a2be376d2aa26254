package store

import (
	"context"

	"tasktracker/models"
)

// UserRepository holds user accounts and answers credential lookups.
// Accounts are immutable once created: there are no update or delete
// operations by design.
type UserRepository interface {
	// CreateUser persists a new user and returns it with a server-assigned
	// UserID. Returns ErrUsernameTaken when the username already exists
	// (case-sensitive exact match).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a user by exact username match.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID looks up a user by primary key.
	// Returns ErrUserNotFound when no such user exists.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// TaskRepository holds task records scoped by owning user. Every operation
// takes the owner's user ID as an explicit argument supplied by the caller,
// never trusted from client-supplied task fields.
//
// UpdateTask and DeleteTask intentionally collapse "task does not exist" and
// "task is owned by a different user" into a single ErrTaskNotFound outcome:
// a malicious user must not be able to learn whether a task ID exists for
// someone else.
type TaskRepository interface {
	// CreateTask persists a new task owned by userID, assigning a fresh ID
	// and stamping CreatedAt. The UserID and CreatedAt fields of task are
	// ignored.
	CreateTask(ctx context.Context, userID int64, task models.Task) (models.Task, error)

	// GetTasks returns all tasks owned by userID in insertion order.
	GetTasks(ctx context.Context, userID int64) ([]models.Task, error)

	// UpdateTask applies the non-nil fields of patch to the task identified
	// by taskID, provided it is owned by userID. Returns the updated task,
	// or ErrTaskNotFound when the task is absent or owned by another user.
	UpdateTask(ctx context.Context, taskID, userID int64, patch models.TaskPatch) (models.Task, error)

	// DeleteTask removes the task identified by taskID, provided it is owned
	// by userID. Returns ErrTaskNotFound when the task is absent or owned by
	// another user. Deletion is not recoverable.
	DeleteTask(ctx context.Context, taskID, userID int64) error
}
