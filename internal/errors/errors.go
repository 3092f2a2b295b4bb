package errors

import (
	"errors"
	"fmt"
)

// NewNotFoundError reports a missing file or directory
func NewNotFoundError(resource string, path string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, path),
		Code:    "NOT_FOUND",
		Path:    path,
	}
}

// NewStorageError creates an error for a failed operation on the task store or log file
func NewStorageError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s %s", operation, path),
		Code:    "STORAGE_ERROR",
		Op:      operation,
		Path:    path,
		Cause:   cause,
	}
}

// NewInvalidInputError reports a malformed command line
func NewInvalidInputError(field string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
	}
}

func NewPermissionError(operation string, path string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, path),
		Code:    "PERMISSION_DENIED",
		Op:      operation,
		Path:    path,
		Cause:   cause,
	}
}

// WrapError wraps an existing error with a type and message
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetUserMessage returns a message suitable for printing to the user
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypePermission:
			return appErr.Message
		case ErrorTypeStorage:
			return "Could not access the task file. See the log file for details."
		default:
			return "An unexpected error occurred."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether the error belongs in the diagnostic log.
// User mistakes and permission problems are only reported on the console.
func ShouldLogError(err error) bool {
	if err == nil {
		return false
	}
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypePermission:
			return false
		default:
			return true
		}
	}
	return true
}
