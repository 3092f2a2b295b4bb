package domain

import (
	"time"
)

// DateLayout is the dd/MM/yy layout used by the task store and the add command.
const DateLayout = "02/01/06"

// Task dates must fall within [MinDate, MaxDate].
var (
	MinDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	MaxDate = time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DateOf strips the time of day and location from t, keeping its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a date as dd/MM/yy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an exact dd/MM/yy date. Two-digit years are read as 20yy.
func ParseDate(s string) (time.Time, error) {
	if !hasDateShape(s) {
		return time.Time{}, newRecordError(KindBadDateFormat, "date", s, "date %q must be a calendar date formatted as dd/MM/yy", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, newRecordError(KindBadDateFormat, "date", s, "date %q must be a calendar date formatted as dd/MM/yy", s)
	}
	if t.Year() < 2000 {
		t = t.AddDate(100, 0, 0)
	}
	return DateOf(t), nil
}

// hasDateShape reports whether s is exactly dd/MM/yy with every field made of two ASCII digits.
// time.Parse alone would accept a signed year such as "+4".
func hasDateShape(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 2, 5:
			if s[i] != '/' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}

// IsDateInRange reports whether the calendar day of t lies within [MinDate, MaxDate].
func IsDateInRange(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(MinDate) && !d.After(MaxDate)
}
