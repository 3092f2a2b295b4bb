package validation

import (
	"strings"
	"unicode/utf8"

	"todo-text/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskNameLength checks the rune count of a name against the configured maximum.
// A maximum of zero disables the check.
func (v *Validator) IsValidTaskNameLength(name string) bool {
	max := v.TaskNameMaxLength()
	return max <= 0 || utf8.RuneCountInString(name) <= max
}

// HasFieldSeparator reports whether s contains characters that would split a store record
func (v *Validator) HasFieldSeparator(s string) bool {
	return strings.ContainsAny(s, "\t\r\n")
}

// TaskNameMaxLength returns the configured maximum task name length or the default
func (v *Validator) TaskNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskNameMaxLength
	}
	return config.DefaultTaskNameMaxLength
}
