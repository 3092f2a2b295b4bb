package main

import (
	"fmt"

	"todo-text/internal/cli"
	"todo-text/internal/config"
	"todo-text/internal/logging"
	"todo-text/internal/ui"
)

// boundary turns failures into a console message, a log entry and an exit code
type boundary struct {
	streams  cli.Streams
	config   *config.Config
	handler  *cli.ErrorHandler
	crashLog func(path string) *logging.CrashLog
}

func newBoundary(streams cli.Streams, cfg *config.Config) *boundary {
	return &boundary{
		streams:  streams,
		config:   cfg,
		handler:  cli.NewErrorHandler(),
		crashLog: logging.NewCrashLog,
	}
}

// report prints err for the user and logs it when it is unexpected
func (b *boundary) report(err error) int {
	console := ui.NewConsole(b.streams.Err, b.config.Display.NoColor)
	console.Error(b.handler.HandleSimple(err).Error())

	if b.handler.ShouldLog(err) {
		if logErr := b.crashLog(b.config.LogFilePath()).Append(err); logErr != nil {
			console.Muted(fmt.Sprintf("could not write log file: %v", logErr))
		}
	}
	return 1
}

// recovered reports a panic as an unexpected failure
func (b *boundary) recovered(r interface{}) int {
	return b.report(fmt.Errorf("panic: %v", r))
}
