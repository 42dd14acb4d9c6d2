package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *AppError
		typ     ErrorType
		code    string
		message string
	}{
		{"validation", NewValidationError("bad title", nil), ErrorTypeValidation, "VALIDATION_FAILED", "bad title"},
		{"not found", NewNotFoundError("task", "3"), ErrorTypeNotFound, "NOT_FOUND", "task not found: 3"},
		{"database", NewDatabaseError("insert task", nil), ErrorTypeDatabase, "DATABASE_ERROR", "database operation failed: insert task"},
		{"invalid input", NewInvalidInputError("id", "x", "not a number"), ErrorTypeInvalidInput, "INVALID_INPUT", "invalid input for id: not a number"},
		{"invalid instance", NewInvalidInstanceError("append task"), ErrorTypeInvalidInstance, "INVALID_INSTANCE", "append task called on an uninitialized or destroyed instance"},
		{"io", NewIOError("open", "a.dat", nil), ErrorTypeIO, "IO_FAILURE", "open failed for a.dat"},
		{"allocation", NewAllocationError("task", "id space exhausted"), ErrorTypeAllocation, "ALLOCATION_FAILURE", "cannot allocate task: id space exhausted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typ, tt.err.Type)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Message)
		})
	}
}

func TestNewNotFoundError_Context(t *testing.T) {
	err := NewNotFoundError("group", "12")

	resource, ok := err.GetContext("resource")
	assert.True(t, ok)
	assert.Equal(t, "group", resource)

	identifier, ok := err.GetContext("identifier")
	assert.True(t, ok)
	assert.Equal(t, "12", identifier)
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeDatabase, "wrapped message")

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "database", err.Code)
	assert.Same(t, cause, err.Cause)
}

func TestAsAppError(t *testing.T) {
	appErr := NewNotFoundError("task", "1")
	wrapped := fmt.Errorf("delete: %w", appErr)

	got, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.Same(t, appErr, got)

	got, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, got)

	assert.False(t, IsAppError(nil))
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(NewIOError("read", "p", nil), ErrorTypeIO))
	assert.False(t, IsErrorType(NewIOError("read", "p", nil), ErrorTypeNotFound))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeIO))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NewNotFoundError("task", "2"))))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("title too long", nil), "title too long"},
		{"not found", NewNotFoundError("task", "9"), "task not found: 9"},
		{"database", NewDatabaseError("query", errors.New("locked")), "A database error occurred. Please try again."},
		{"io", NewIOError("open", "x.dat", nil), "Could not access the data file: open failed for x.dat"},
		{"invalid instance", NewInvalidInstanceError("score"), "The instance is not available. Run 'ac init' first."},
		{"regular", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("task", "1")))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("regular")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("x", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.False(t, ShouldLogError(NewInvalidInputError("id", "x", "bad")))
	assert.True(t, ShouldLogError(NewIOError("write", "p", nil)))
	assert.True(t, ShouldLogError(NewAllocationError("task", "full")))
	assert.True(t, ShouldLogError(NewInvalidInstanceError("load")))
	assert.True(t, ShouldLogError(errors.New("regular")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitNotFound, ExitCode(NewNotFoundError("task", "3")))
	assert.Equal(t, ExitNoInstance, ExitCode(fmt.Errorf("load: %w", NewInvalidInstanceError("load"))))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("plain")))
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(fmt.Errorf("append: %w", NewAllocationError("task", "id space exhausted"))))
	assert.False(t, IsFatal(NewNotFoundError("task", "3")))
	assert.False(t, IsFatal(errors.New("plain")))
}
