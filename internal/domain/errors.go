package domain

import (
	"fmt"
)

// ErrorKind identifies why a task record could not be built or parsed.
type ErrorKind int

const (
	KindInvalidName ErrorKind = iota + 1
	KindInvalidDate
	KindEmptyInput
	KindWrongFieldCount
	KindBadDateFormat
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidName:
		return "invalid_name"
	case KindInvalidDate:
		return "invalid_date"
	case KindEmptyInput:
		return "empty_input"
	case KindWrongFieldCount:
		return "wrong_field_count"
	case KindBadDateFormat:
		return "bad_date_format"
	default:
		return "unknown"
	}
}

// Sentinel errors for matching with errors.Is.
var (
	ErrInvalidName     = &RecordError{Kind: KindInvalidName}
	ErrInvalidDate     = &RecordError{Kind: KindInvalidDate}
	ErrEmptyInput      = &RecordError{Kind: KindEmptyInput}
	ErrWrongFieldCount = &RecordError{Kind: KindWrongFieldCount}
	ErrBadDateFormat   = &RecordError{Kind: KindBadDateFormat}
)

// RecordError is the failure outcome of NewTask and ParseTask.
type RecordError struct {
	Kind    ErrorKind
	Field   string
	Value   string
	Message string
}

// Error implements the error interface
func (e *RecordError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Is reports whether target is a RecordError of the same kind.
func (e *RecordError) Is(target error) bool {
	t, ok := target.(*RecordError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newRecordError(kind ErrorKind, field, value, format string, args ...interface{}) *RecordError {
	return &RecordError{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
