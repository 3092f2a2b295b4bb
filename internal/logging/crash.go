package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	apperrors "todo-text/internal/errors"
)

// CrashLog appends unexpected failures to the diagnostic log file
type CrashLog struct {
	path string
	now  func() time.Time
}

// NewCrashLog creates a crash log that writes to path
func NewCrashLog(path string) *CrashLog {
	return &CrashLog{path: path, now: time.Now}
}

// Path returns the log file location
func (c *CrashLog) Path() string {
	return c.path
}

// Append writes err as one logfmt line, with the operation and path of file
// system failures. The file and its directory are created on demand.
func (c *CrashLog) Append(err error) error {
	if err == nil {
		return nil
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0755); mkErr != nil {
			return fmt.Errorf("creating log directory: %w", mkErr)
		}
	}

	f, openErr := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if openErr != nil {
		return fmt.Errorf("opening log file: %w", openErr)
	}
	defer f.Close()

	now := c.now
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.ErrorLevel,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		TimeFunction:    func(time.Time) time.Time { return now() },
		Prefix:          Prefix,
	})
	keyvals := []interface{}{"err", err.Error(), "type", fmt.Sprintf("%T", err)}
	if appErr, ok := apperrors.AsAppError(err); ok {
		keyvals = append(keyvals, appErr.Fields()...)
	}
	logger.Error("unexpected failure", keyvals...)
	return nil
}
