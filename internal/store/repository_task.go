package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tasktracker/internal/logger"
	"tasktracker/models"

	sq "github.com/Masterminds/squirrel"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
//
// Every query carries the owner's user_id in its WHERE clause, so the
// collapsed not-found/forbidden contract of the interface falls out of the
// SQL naturally: a row owned by someone else matches nothing, exactly like a
// row that does not exist.
type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

func (r *taskRepository) CreateTask(ctx context.Context, userID int64, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTask,
		userID, task.Title, task.Description, task.DueDate, task.Completed, task.Category)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var created models.Task
	if err := scanTask(row, &created); err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

func (r *taskRepository) GetTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getTasksByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTasks").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		if err := scanTask(rows, &task); err != nil {
			log.Err(err).Str("func", "*taskRepository.GetTasks").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// UpdateTask builds a partial UPDATE containing only the fields present in
// patch and returns the updated row. An empty patch degrades to a plain
// ownership-scoped SELECT so the caller still gets the collapsed
// [ErrTaskNotFound] outcome for foreign or missing tasks.
func (r *taskRepository) UpdateTask(ctx context.Context, taskID, userID int64, patch models.TaskPatch) (models.Task, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		return r.getTask(ctx, taskID, userID)
	}

	query, args, err := buildTaskUpdateQuery(taskID, userID, patch)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error building update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: row is nil")
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var updated models.Task
	if err := scanTask(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("error: scanning error")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return updated, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, taskID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTask, taskID, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) getTask(ctx context.Context, taskID, userID int64) (models.Task, error) {
	row := r.db.QueryRowContext(ctx, getTaskByIDAndUser, taskID, userID)
	if err := row.Err(); err != nil {
		return models.Task{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var task models.Task
	if err := scanTask(row, &task); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// buildTaskUpdateQuery assembles the partial UPDATE statement with squirrel,
// setting only the fields present in patch. The WHERE clause always carries
// both the task ID and the owner's user ID.
func buildTaskUpdateQuery(taskID, userID int64, patch models.TaskPatch) (string, []any, error) {
	builder := sq.Update("tasks").PlaceholderFormat(sq.Dollar)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.DueDate != nil {
		builder = builder.Set("due_date", *patch.DueDate)
	}
	if patch.Completed != nil {
		builder = builder.Set("completed", *patch.Completed)
	}
	if patch.Category != nil {
		builder = builder.Set("category", *patch.Category)
	}

	builder = builder.
		Where(sq.Eq{"id": taskID, "user_id": userID}).
		Suffix("RETURNING id, user_id, title, description, due_date, completed, category, created_at")

	return builder.ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner, task *models.Task) error {
	var description sql.NullString
	var dueDate sql.NullTime

	if err := row.Scan(&task.ID, &task.UserID, &task.Title, &description,
		&dueDate, &task.Completed, &task.Category, &task.CreatedAt); err != nil {
		return err
	}

	if description.Valid {
		task.Description = description.String
	}
	if dueDate.Valid {
		due := dueDate.Time
		task.DueDate = &due
	}

	return nil
}
