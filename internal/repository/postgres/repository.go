// Package postgres implements the task repository on an injected pgx
// connection pool. Each operation acquires a connection from the pool for a
// single statement and releases it before returning.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskbook/internal/domain"
	apperrors "taskbook/internal/errors"
	"taskbook/internal/repository"
)

// TaskRepository implements repository.TaskRepository on PostgreSQL.
type TaskRepository struct {
	pool *pgxpool.Pool
}

var _ repository.TaskRepository = (*TaskRepository)(nil)

// New creates a repository on an externally managed connection pool. The
// caller owns the pool's lifecycle and must have provisioned the schema.
func New(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// Save inserts the task as a new row and assigns the generated identifier
// onto it, reading it back through RETURNING.
func (r *TaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `
	INSERT INTO task (title, finished, created_date)
	VALUES ($1, $2, $3)
	RETURNING task_id`

	var id int64
	err := r.pool.QueryRow(ctx, query, task.Title, task.Finished, task.CreatedDate.UTC()).Scan(&id)
	if err != nil {
		return nil, apperrors.NewDatabaseError("insert task", err)
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

	return r.queryTasks(ctx, query)
}

// FindAllNotFinished retrieves the tasks that are not finished yet.
// The query carries no ORDER BY; callers must not rely on result order.
func (r *TaskRepository) FindAllNotFinished(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	WHERE finished = FALSE`

	return r.queryTasks(ctx, query)
}

// FindNewestTasks retrieves the n most recently created tasks, newest first.
func (r *TaskRepository) FindNewestTasks(ctx context.Context, n int) ([]*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	ORDER BY created_date DESC
	LIMIT $1`

	return r.queryTasks(ctx, query, n)
}

// GetByID retrieves a task by identifier, returning (nil, nil) when no row
// matches.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
	SELECT task_id, title, finished, created_date
	FROM task
	WHERE task_id = $1`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError("get task", err).WithContext("task_id", id)
	}
	return task, nil
}

// FinishTask marks the row matching the task's identifier as finished and
// mirrors the flag onto the passed instance. Updating a missing row affects
// zero rows and is not an error.
func (r *TaskRepository) FinishTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query := `UPDATE task SET finished = TRUE WHERE task_id = $1`

	if _, err := r.pool.Exec(ctx, query, task.ID); err != nil {
		return nil, apperrors.NewDatabaseError("finish task", err).WithContext("task_id", task.ID)
	}

	task.Finished = true
	return task, nil
}

// DeleteByID deletes the row with the given identifier. Deleting a missing
// row is a no-op.
func (r *TaskRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM task WHERE task_id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return apperrors.NewDatabaseError("delete task", err).WithContext("task_id", id)
	}
	return nil
}

// DeleteAll deletes every task and returns the number of rows removed.
func (r *TaskRepository) DeleteAll(ctx context.Context) (int64, error) {
	query := `DELETE FROM task`

	tag, err := r.pool.Exec(ctx, query)
	if err != nil {
		return 0, apperrors.NewDatabaseError("delete all tasks", err)
	}
	return tag.RowsAffected(), nil
}

// scanTask scans one task row. pgx decodes TIMESTAMP values in UTC, which is
// also how the SQLite store stores them.
func scanTask(row pgx.Row) (*domain.Task, error) {
	task := &domain.Task{}
	err := row.Scan(&task.ID, &task.Title, &task.Finished, &task.CreatedDate)
	if err != nil {
		return nil, err
	}
	task.CreatedDate = task.CreatedDate.UTC()
	return task, nil
}

// queryTasks runs a multi-row query and scans the results. The result is
// never nil, an empty result set yields an empty slice.
func (r *TaskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]*domain.Task, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewDatabaseError("query tasks", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError("scan tasks", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError("read tasks", err)
	}

	return tasks, nil
}
