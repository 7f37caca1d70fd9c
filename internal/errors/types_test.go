package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.errorType.String())
	}
}

func TestAppErrorError(t *testing.T) {
	err := &AppError{
		Type:    ErrorTypeDatabase,
		Message: "database operation failed: insert task",
	}
	assert.Equal(t, "database: database operation failed: insert task", err.Error())

	cause := errors.New("connection refused")
	err.Cause = cause
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseError("insert task", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestAppErrorIs(t *testing.T) {
	first := NewDatabaseError("insert task", nil)
	second := NewDatabaseError("delete task", nil)
	other := NewNotFoundError("task", "42")

	assert.True(t, first.Is(second))
	assert.False(t, first.Is(other))
}

func TestAppErrorWithContext(t *testing.T) {
	err := NewDatabaseError("get task", nil).WithContext("task_id", int64(42))

	value, ok := err.GetContext("task_id")
	assert.True(t, ok)
	assert.Equal(t, int64(42), value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}
