package cli

import (
	stderrors "errors"
	"fmt"

	"todo-text/internal/config"
	"todo-text/internal/domain"
	"todo-text/internal/errors"
	"todo-text/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.HandleSimple(err).Error())
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	var recordErr *domain.RecordError
	if stderrors.As(err, &recordErr) {
		return fmt.Errorf("%s", recordErr.Message)
	}

	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return fmt.Errorf("invalid configuration: %s", configErr.Error())
	}

	return err
}

// ShouldLog reports whether err belongs in the diagnostic log.
// Mistakes the user can fix from the message alone are not logged.
func (eh *ErrorHandler) ShouldLog(err error) bool {
	if err == nil {
		return false
	}
	if eh.IsValidationError(err) {
		return false
	}
	var recordErr *domain.RecordError
	if stderrors.As(err, &recordErr) {
		return false
	}
	var configErr *config.ConfigError
	if stderrors.As(err, &configErr) {
		return false
	}
	return errors.ShouldLogError(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return validation.IsValidationError(err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
