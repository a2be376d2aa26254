// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"sync"
	"time"

	"tasktracker/internal/logger"
	"tasktracker/models"
)

// memoryTaskRepository is the in-memory implementation of [TaskRepository].
//
// Tasks are stored in a map keyed by ID; an ordered slice of IDs preserves
// insertion order for listing. IDs are assigned from a monotonic counter that
// is never reclaimed on delete, so a deleted task's ID can never be confused
// with a live one.
type memoryTaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
	order  []int64

	logger *logger.Logger
}

// NewMemoryTaskRepository constructs an empty in-memory [TaskRepository].
func NewMemoryTaskRepository(logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating in-memory task repository")
	return &memoryTaskRepository{
		nextID: 1,
		tasks:  make(map[int64]models.Task),
		logger: logger,
	}
}

func (r *memoryTaskRepository) CreateTask(ctx context.Context, userID int64, task models.Task) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++

	task.UserID = userID
	task.CreatedAt = time.Now()

	r.tasks[task.ID] = task
	r.order = append(r.order, task.ID)

	return task, nil
}

func (r *memoryTaskRepository) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, 0)
	for _, id := range r.order {
		task, ok := r.tasks[id]
		if !ok {
			continue // deleted; ID stays in order but has no record
		}
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	return tasks, nil
}

func (r *memoryTaskRepository) UpdateTask(ctx context.Context, taskID, userID int64, patch models.TaskPatch) (models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return models.Task{}, ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}

	r.tasks[taskID] = task

	return task, nil
}

func (r *memoryTaskRepository) DeleteTask(ctx context.Context, taskID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return ErrTaskNotFound
	}

	delete(r.tasks, taskID)

	return nil
}
