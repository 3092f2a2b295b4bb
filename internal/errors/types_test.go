package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypePermission, "permission"},
		{ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "without cause",
			appError: &AppError{Type: ErrorTypeNotFound, Message: "task file not found: todo.txt"},
			expected: "not_found: task file not found: todo.txt",
		},
		{
			name: "with cause",
			appError: &AppError{
				Type:    ErrorTypeStorage,
				Message: "storage operation failed: read todo.txt",
				Cause:   errors.New("input/output error"),
			},
			expected: "storage: storage operation failed: read todo.txt (caused by: input/output error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Is(t *testing.T) {
	notFound := NewNotFoundError("task file", "todo.txt")
	otherNotFound := NewNotFoundError("log file", "log.txt")
	storage := NewStorageError("read", "todo.txt", nil)

	assert.True(t, errors.Is(notFound, otherNotFound))
	assert.False(t, errors.Is(notFound, storage))
	assert.False(t, notFound.Is(errors.New("not an app error")))
}

func TestAppError_Fields(t *testing.T) {
	storage := NewStorageError("append", "data/todo.txt", errors.New("disk full"))
	assert.Equal(t, []interface{}{"code", "STORAGE_ERROR", "op", "append", "path", "data/todo.txt"}, storage.Fields())

	input := NewInvalidInputError("format", "unsupported format")
	assert.Equal(t, []interface{}{"code", "INVALID_INPUT"}, input.Fields())
}
