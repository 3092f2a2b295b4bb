package validation

import (
	"fmt"
	"strings"
	"testing"

	"todo-text/internal/domain"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "name", Message: "name is required"}}, "validation error for field 'name': name is required"},
		{"Multiple errors", []FieldError{
			{Field: "name", Message: "name is required"},
			{Field: "date", Message: "date has invalid format"},
		}, "multiple validation errors: validation error for field 'name': name is required; validation error for field 'date': date has invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			if result := ve.Error(); result != tt.expectError {
				t.Errorf("ValidationError.Error() = %q, expected %q", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	if ve.HasErrors() {
		t.Fatal("new ValidationError should have no errors")
	}

	ve.AddRequiredError("name")
	ve.AddInvalidFormatError("date", "1/1/24", "dd/MM/yy")
	ve.AddInvalidLengthError("name", "xxxx", 3)
	ve.AddInvalidRangeError("date", "01/01/99", "too late")
	ve.AddInvalidCharacterError("name", "a\tb", "tabs are not allowed")

	expected := []struct {
		field   string
		errType ValidationErrorType
		message string
	}{
		{"name", ErrorTypeRequired, "name is required"},
		{"date", ErrorTypeInvalidFormat, "date has invalid format, expected: dd/MM/yy"},
		{"name", ErrorTypeInvalidLength, "name must be at most 3 characters long"},
		{"date", ErrorTypeInvalidRange, "date is out of range: too late"},
		{"name", ErrorTypeInvalidCharacter, "name contains invalid characters: tabs are not allowed"},
	}

	if len(ve.Errors) != len(expected) {
		t.Fatalf("expected %d errors, got %d", len(expected), len(ve.Errors))
	}
	for i, want := range expected {
		got := ve.Errors[i]
		if got.Field != want.field || got.Type != want.errType || got.Message != want.message {
			t.Errorf("error %d = %+v, want field=%s type=%s message=%q", i, got, want.field, want.errType, want.message)
		}
	}

	if n := len(ve.GetFieldErrors("name")); n != 3 {
		t.Errorf("GetFieldErrors(name) returned %d errors, expected 3", n)
	}
	if n := len(ve.GetFieldErrors("missing")); n != 0 {
		t.Errorf("GetFieldErrors(missing) returned %d errors, expected 0", n)
	}
}

func TestValidationError_AddRecordError(t *testing.T) {
	tests := []struct {
		name     string
		kind     domain.ErrorKind
		expected ValidationErrorType
	}{
		{"bad date format", domain.KindBadDateFormat, ErrorTypeInvalidFormat},
		{"invalid date", domain.KindInvalidDate, ErrorTypeInvalidRange},
		{"empty input", domain.KindEmptyInput, ErrorTypeRequired},
		{"invalid name", domain.KindInvalidName, ErrorTypeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := NewValidationError()
			ve.AddRecordError("field", &domain.RecordError{Kind: tt.kind, Message: "details"})
			if len(ve.Errors) != 1 || ve.Errors[0].Type != tt.expected {
				t.Errorf("AddRecordError(%s) produced %+v, expected type %s", tt.kind, ve.Errors, tt.expected)
			}
		})
	}
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	if !IsValidationError(ve) {
		t.Error("IsValidationError should be true for *ValidationError")
	}
	if !IsValidationError(fmt.Errorf("add: %w", ve)) {
		t.Error("IsValidationError should be true for a wrapped *ValidationError")
	}
	if IsValidationError(fmt.Errorf("plain")) {
		t.Error("IsValidationError should be false for other errors")
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	if msg := ve.GetUserFriendlyMessage(); msg != "Input validation failed" {
		t.Errorf("empty message = %q", msg)
	}

	ve.AddRequiredError("name")
	if msg := ve.GetUserFriendlyMessage(); msg != "name is required" {
		t.Errorf("single message = %q", msg)
	}

	ve.AddInvalidFormatError("date", "x", "dd/MM/yy")
	msg := ve.GetUserFriendlyMessage()
	if !strings.HasPrefix(msg, "Multiple validation errors occurred:\n") {
		t.Errorf("multiple message = %q", msg)
	}
	if !strings.Contains(msg, "- name is required\n- date has invalid format, expected: dd/MM/yy") {
		t.Errorf("multiple message does not list every error: %q", msg)
	}
}
