package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/inmovia/inmovia/internal/domain/task"
	ierr "github.com/inmovia/inmovia/internal/errors"
	"github.com/inmovia/inmovia/internal/logger"
	"github.com/inmovia/inmovia/internal/postgres"
	"github.com/inmovia/inmovia/internal/types"
)

type taskRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTaskRepository(db *postgres.DB, logger *logger.Logger) task.Repository {
	return &taskRepository{db: db, logger: logger}
}

const taskColumns = `
	id, title, description, due_date, priority, task_status,
	assigned_to, created_by, status, created_at, updated_at
`

func (r *taskRepository) Create(ctx context.Context, t *task.Task) error {
	query := `
	INSERT INTO tasks (` + taskColumns + `
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
	)
	`

	_, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Priority,
		t.Status,
		t.AssignedTo,
		t.CreatedBy,
		t.BaseModel.Status,
		t.CreatedAt,
		t.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create task").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *taskRepository) Get(ctx context.Context, id string) (*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND status = $2`

	row := r.db.GetQuerier(ctx).QueryRowContext(ctx, query, id, types.StatusActive)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.WithError(err).
				WithHintf("Task %s was not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get task").
			Mark(ierr.ErrDatabase)
	}
	return t, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*task.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.GetQuerier(ctx).QueryContext(ctx, query, types.StatusActive)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tasks").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan task").
				Mark(ierr.ErrDatabase)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tasks").
			Mark(ierr.ErrDatabase)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, t *task.Task) error {
	query := `
	UPDATE tasks SET
		title = $2, description = $3, due_date = $4, priority = $5,
		task_status = $6, assigned_to = $7, updated_at = $8
	WHERE id = $1 AND status = $9
	`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.DueDate,
		t.Priority,
		t.Status,
		t.AssignedTo,
		t.UpdatedAt,
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update task").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update task").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", t.ID).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE tasks SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`

	result, err := r.db.GetQuerier(ctx).ExecContext(ctx, query,
		id,
		types.StatusDeleted,
		time.Now().UTC(),
		types.StatusActive,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete task").
			Mark(ierr.ErrDatabase)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete task").
			Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.DueDate,
		&t.Priority,
		&t.Status,
		&t.AssignedTo,
		&t.CreatedBy,
		&t.BaseModel.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
