// Package repository defines the storage contract for tasks.
//
// Implementations translate each operation into a single parameterized
// statement against a `task` table. The database handle or pool is injected
// at construction; a connection is acquired for the duration of one statement
// and released on every exit path.
package repository

import (
	"context"

	"taskbook/internal/domain"
)

// TaskRepository defines the database operations for tasks.
type TaskRepository interface {
	// Save inserts a new row and assigns the generated identifier onto the
	// passed task. It always inserts, never updates.
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// FindAll returns every task ordered ascending by identifier.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindAllNotFinished returns the tasks whose completion flag is false.
	// Result order is unspecified.
	FindAllNotFinished(ctx context.Context) ([]*domain.Task, error)

	// FindNewestTasks returns the n tasks with the most recent creation
	// timestamp, newest first. Fewer than n rows returns all of them.
	FindNewestTasks(ctx context.Context, n int) ([]*domain.Task, error)

	// GetByID returns the task with the given identifier, or (nil, nil) when
	// no such row exists. Errors are reserved for underlying failures.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// FinishTask marks the row matching the task's identifier as finished and
	// sets the flag on the passed instance. A missing row is not an error.
	FinishTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// DeleteByID deletes the row with the given identifier. Deleting a row
	// that does not exist is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll deletes every row and returns the number of rows removed.
	DeleteAll(ctx context.Context) (int64, error)
}
