package errors

import (
	"fmt"
)

// ErrorType represents the category of an application error
type ErrorType int

const (
	ErrorTypeNotFound ErrorType = iota
	ErrorTypeStorage
	ErrorTypeInvalidInput
	ErrorTypePermission
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeStorage:
		return "storage"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypePermission:
		return "permission"
	default:
		return "unknown"
	}
}

// AppError is a failure raised outside the task record core, by the text
// file repository and the command dispatcher. Op and Path are set for file
// system failures and end up in the diagnostic log.
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Op      string
	Path    string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// Fields returns the error's key/value pairs for a structured log line.
// Empty values are left out.
func (e *AppError) Fields() []interface{} {
	fields := []interface{}{"code", e.Code}
	if e.Op != "" {
		fields = append(fields, "op", e.Op)
	}
	if e.Path != "" {
		fields = append(fields, "path", e.Path)
	}
	return fields
}
