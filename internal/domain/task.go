package domain

import (
	"strings"
	"time"
)

// FieldSeparator divides the date and name fields of a serialized task.
const FieldSeparator = "\t"

// Task represents a dated task in the domain model.
// A Task can only be obtained through NewTask or ParseTask, so it is always valid.
type Task struct {
	name string
	date time.Time
}

// NewTask creates a new Task with the given name and calendar date.
func NewTask(name string, date time.Time) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, newRecordError(KindInvalidName, "name", name, "task name is required")
	}
	if strings.ContainsAny(name, "\t\r\n") {
		return Task{}, newRecordError(KindInvalidName, "name", name, "task name must not contain tabs or line breaks")
	}
	if !IsDateInRange(date) {
		return Task{}, newRecordError(KindInvalidDate, "date", FormatDate(date),
			"date must be between %s and %s", MinDate.Format("2006/01/02"), MaxDate.Format("2006/01/02"))
	}
	return Task{name: name, date: DateOf(date)}, nil
}

// ParseTask parses a single store line of the form "dd/MM/yy<TAB>name".
func ParseTask(line string) (Task, error) {
	if line == "" {
		return Task{}, newRecordError(KindEmptyInput, "line", line, "line is empty")
	}
	fields := strings.Split(line, FieldSeparator)
	if len(fields) != 2 {
		return Task{}, newRecordError(KindWrongFieldCount, "line", line, "expected 2 tab separated fields, got %d", len(fields))
	}
	date, err := ParseDate(fields[0])
	if err != nil {
		return Task{}, err
	}
	return NewTask(fields[1], date)
}

// TryParseTask parses a line and reports success instead of returning an error.
func TryParseTask(line string) (Task, bool) {
	task, err := ParseTask(line)
	if err != nil {
		return Task{}, false
	}
	return task, true
}

// Name returns the task name.
func (t Task) Name() string {
	return t.name
}

// Date returns the calendar date of the task.
func (t Task) Date() time.Time {
	return t.date
}

// OnDay reports whether the task falls on the calendar day of d.
func (t Task) OnDay(d time.Time) bool {
	return t.date.Equal(DateOf(d))
}

// Serialize returns the store representation of the task.
func (t Task) Serialize() string {
	return FormatDate(t.date) + FieldSeparator + t.name
}

// String returns the store representation for display purposes.
func (t Task) String() string {
	return t.Serialize()
}
