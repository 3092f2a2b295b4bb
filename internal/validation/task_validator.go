package validation

import (
	stderrors "errors"
	"time"

	"todo-text/internal/domain"
)

// TaskValidator validates the arguments of the add command
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWith creates a task validator backed by v
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateTaskName validates a task name typed by the user
func (tv *TaskValidator) ValidateTaskName(name string) error {
	validationError := NewValidationError()
	tv.checkName(validationError, name)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateTaskDate validates a dd/MM/yy date typed by the user
func (tv *TaskValidator) ValidateTaskDate(dateText string) error {
	validationError := NewValidationError()
	tv.checkDate(validationError, dateText)
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateAddInput validates both add arguments, reporting every problem at once,
// and builds the task when they are valid.
func (tv *TaskValidator) ValidateAddInput(name, dateText string) (domain.Task, error) {
	validationError := NewValidationError()
	tv.checkName(validationError, name)
	date, dateOK := tv.checkDate(validationError, dateText)
	if validationError.HasErrors() || !dateOK {
		return domain.Task{}, validationError
	}

	task, err := domain.NewTask(name, date)
	if err != nil {
		var recordErr *domain.RecordError
		if stderrors.As(err, &recordErr) {
			validationError.AddRecordError(recordErr.Field, recordErr)
			return domain.Task{}, validationError
		}
		return domain.Task{}, err
	}
	return task, nil
}

func (tv *TaskValidator) checkName(ve *ValidationError, name string) {
	if !tv.validator.IsNonEmptyString(name) {
		ve.AddRequiredError("name")
		return
	}
	if tv.validator.HasFieldSeparator(name) {
		ve.AddInvalidCharacterError("name", name, "tabs and line breaks are not allowed")
	}
	if !tv.validator.IsValidTaskNameLength(name) {
		ve.AddInvalidLengthError("name", name, tv.validator.TaskNameMaxLength())
	}
}

func (tv *TaskValidator) checkDate(ve *ValidationError, dateText string) (time.Time, bool) {
	if !tv.validator.IsNonEmptyString(dateText) {
		ve.AddRequiredError("date")
		return time.Time{}, false
	}
	date, err := domain.ParseDate(dateText)
	if err != nil {
		ve.AddInvalidFormatError("date", dateText, "dd/MM/yy")
		return time.Time{}, false
	}
	if !domain.IsDateInRange(date) {
		ve.AddInvalidRangeError("date", dateText, "must be between 01/01/2000 and 01/01/2100")
		return time.Time{}, false
	}
	return date, true
}
