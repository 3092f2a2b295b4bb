package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every diagnostic line
const Prefix = "todo"

// Options controls the diagnostic logger
type Options struct {
	Verbose         bool
	ReportTimestamp bool
}

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("TODO_DEBUG") != ""
}

// Level returns the level diagnostics are emitted at
func (o Options) Level() log.Level {
	if o.Verbose || DebugEnabled() {
		return log.DebugLevel
	}
	return log.WarnLevel
}

// New creates the diagnostic logger. Output goes to w, normally stderr,
// so it never mixes with listings on stdout.
func New(w io.Writer, opts Options) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level(),
		Formatter:       log.TextFormatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}
