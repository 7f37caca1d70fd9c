// Package validation holds input checks performed in front of the CLI.
// The task entity and the repository are deliberately validation-free.
package validation

import (
	"strings"

	"taskbook/internal/errors"
)

// TaskValidator provides validation for task input from the command line
type TaskValidator struct {
	titleMinLength int
	titleMaxLength int
}

// NewTaskValidator creates a new task validator with the given title bounds
func NewTaskValidator(titleMinLength, titleMaxLength int) *TaskValidator {
	return &TaskValidator{
		titleMinLength: titleMinLength,
		titleMaxLength: titleMaxLength,
	}
}

// ValidateTitle validates a task title, returning the trimmed title on success
func (tv *TaskValidator) ValidateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return "", errors.NewInvalidInputError("title", title, "title is required")
	}
	if len(trimmed) < tv.titleMinLength || len(trimmed) > tv.titleMaxLength {
		return "", errors.NewInvalidInputError("title", title, "title length is out of bounds")
	}

	return trimmed, nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if id <= 0 {
		return errors.NewInvalidInputError("task_id", id, "must be a positive integer")
	}
	return nil
}

// ValidateCount validates a result count argument
func (tv *TaskValidator) ValidateCount(n int) error {
	if n <= 0 {
		return errors.NewInvalidInputError("count", n, "must be a positive integer")
	}
	return nil
}
