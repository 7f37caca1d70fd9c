package domain

import (
	"time"
)

// Task represents a single task row as an in-memory value.
// ID is zero until the task has been persisted for the first time; the
// repository assigns it after a successful save. The struct carries no
// validation logic of its own.
type Task struct {
	ID          int64
	Title       string
	Finished    bool
	CreatedDate time.Time
}

// NewTask creates an unsaved Task with the given title, completion flag and
// creation time.
func NewTask(title string, finished bool, createdDate time.Time) *Task {
	return &Task{
		Title:       title,
		Finished:    finished,
		CreatedDate: createdDate,
	}
}

// IsPersisted returns true once the task has been saved and carries a
// database-assigned identifier.
func (t *Task) IsPersisted() bool {
	return t.ID != 0
}

// String returns the task title for display purposes.
func (t *Task) String() string {
	return t.Title
}
