package service

import (
	"context"
	"fmt"
	"time"

	"tasktracker/internal/logger"
	"tasktracker/internal/store"
	"tasktracker/models"
)

// taskService is the concrete implementation of TaskService. It validates
// request payloads, parses due-date strings, and delegates persistence to a
// TaskRepository with the session-derived user ID as the ownership scope.
type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

// NewTaskService constructs a new TaskService wired to the given
// TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask validates the payload (title and category are required), parses
// the optional due-date string, and persists the task under userID.
func (t *taskService) CreateTask(ctx context.Context, userID int64, create models.TaskCreate) (models.Task, error) {
	log := logger.FromContext(ctx)

	if create.Title == "" || create.Category == "" {
		log.Error().Any("task", create).Msg("invalid task data provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	dueDate, err := parseDueDate(create.DueDate)
	if err != nil {
		log.Err(err).Str("dueDate", create.DueDate).Msg("invalid due date provided")
		return models.Task{}, err
	}

	task := models.Task{
		Title:       create.Title,
		Description: create.Description,
		DueDate:     dueDate,
		Completed:   create.Completed,
		Category:    create.Category,
	}

	created, err := t.taskRepository.CreateTask(ctx, userID, task)
	if err != nil {
		log.Err(err).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return created, nil
}

// GetTasks returns all tasks owned by userID.
func (t *taskService) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	tasks, err := t.taskRepository.GetTasks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// UpdateTask converts the wire-level partial update into a parsed patch and
// applies it. The repository's collapsed store.ErrTaskNotFound outcome
// (absent task and foreign task alike) passes through wrapped.
func (t *taskService) UpdateTask(ctx context.Context, taskID, userID int64, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	patch := models.TaskPatch{
		Title:       update.Title,
		Description: update.Description,
		Completed:   update.Completed,
		Category:    update.Category,
	}

	if update.DueDate != nil && *update.DueDate != "" {
		dueDate, err := parseDueDate(*update.DueDate)
		if err != nil {
			log.Err(err).Str("dueDate", *update.DueDate).Msg("invalid due date provided")
			return models.Task{}, err
		}
		patch.DueDate = dueDate
	}

	updated, err := t.taskRepository.UpdateTask(ctx, taskID, userID, patch)
	if err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTask removes the task, subject to the same collapsed ownership check
// as UpdateTask.
func (t *taskService) DeleteTask(ctx context.Context, taskID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := t.taskRepository.DeleteTask(ctx, taskID, userID); err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}

// parseDueDate parses an optional client-supplied due-date string. An empty
// string means "no due date". Accepted formats are a bare ISO-8601 date
// ("2024-06-01") and a full RFC 3339 timestamp.
func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return &parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDueDate, value)
	}

	return &parsed, nil
}
