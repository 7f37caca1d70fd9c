// Package sqlite implements the task repository on an injected database/sql
// handle using the modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"

	"taskbook/internal/domain"
	"taskbook/internal/errors"
	"taskbook/internal/repository"
)

// TaskRepository implements repository.TaskRepository on SQLite.
// It holds only the injected handle; the handle's pool manages connection
// acquisition and release per statement.
type TaskRepository struct {
	db *sql.DB
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

// New creates a repository on an externally managed database handle. The
// caller owns the handle's lifecycle and must have provisioned the schema.
func New(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save inserts the task as a new row and assigns the generated identifier
// onto it. Save never updates existing rows.
func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
	INSERT INTO task (title, finished, created_date)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, task.Title, task.Finished, FormatTimeForDB(task.CreatedDate))
	if err != nil {
		return nil, err
	}

	task.ID = id
	return task, nil
}

// FindAll retrieves every task ordered ascending by identifier.
func (r *TaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	ORDER BY task_id`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// FindAllNotFinished retrieves the tasks that are not finished yet.
// The query carries no ORDER BY; callers must not rely on result order.
func (r *TaskRepository) FindAllNotFinished(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	WHERE finished = 0`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// FindNewestTasks retrieves the n most recently created tasks, newest first.
func (r *TaskRepository) FindNewestTasks(ctx context.Context, n int) ([]*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	ORDER BY created_date DESC
	LIMIT ?`

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", n)
}

// GetByID retrieves a task by identifier, returning (nil, nil) when no row
// matches.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	WHERE task_id = ?`

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			appErr.WithContext("task_id", id)
		}
		return nil, err
	}
	return task, nil
}

// FinishTask marks the row matching the task's identifier as finished and
// mirrors the flag onto the passed instance. Updating a missing row affects
// zero rows and is not an error.
func (r *TaskRepository) FinishTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `UPDATE task SET finished = 1 WHERE task_id = ?`

	if _, err := ExecuteWithRowsAffected(ctx, r.db, query, task.ID); err != nil {
		return nil, err
	}

	task.Finished = true
	return task, nil
}

// DeleteByID deletes the row with the given identifier. Deleting a missing
// row is a no-op.
func (r *TaskRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM task WHERE task_id = ?`

	_, err := ExecuteWithRowsAffected(ctx, r.db, query, id)
	return err
}

// DeleteAll deletes every task and returns the number of rows removed.
func (r *TaskRepository) DeleteAll(ctx context.Context) (int64, error) {
	query := `DELETE FROM task`

	return ExecuteWithRowsAffected(ctx, r.db, query)
}
