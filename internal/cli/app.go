package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"todo-text/internal/config"
	"todo-text/internal/logging"
	"todo-text/internal/services"
	"todo-text/internal/ui"
	"todo-text/internal/validation"
)

// Streams are the process's standard streams
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns stdin, stdout and stderr
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Confirmer asks the user a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// TerminalConfirmer reads a single key press from the terminal
type TerminalConfirmer struct {
	in      io.Reader
	out     io.Writer
	console *ui.Console
}

// NewTerminalConfirmer creates a confirmer that prompts on out and reads from in
func NewTerminalConfirmer(in io.Reader, out io.Writer, console *ui.Console) *TerminalConfirmer {
	return &TerminalConfirmer{in: in, out: out, console: console}
}

func (c *TerminalConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	return ui.Confirm(ctx, c.in, c.out, c.console.QuestionText(question))
}

// App represents the main CLI application
type App struct {
	service   services.TaskService
	validator *validation.TaskValidator
	confirmer Confirmer
	out       *ui.Console
	logger    *log.Logger
	assumeYes bool
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(service services.TaskService, validator *validation.TaskValidator, confirmer Confirmer, out *ui.Console, logger *log.Logger, assumeYes bool) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		service:   service,
		validator: validator,
		confirmer: confirmer,
		out:       out,
		logger:    logger,
		assumeYes: assumeYes,
	}
}

// NewAppWithConfig wires the text file repository, services and console described by cfg
func NewAppWithConfig(cfg *config.Config, streams Streams, now func() time.Time, confirmer Confirmer) *App {
	logger := logging.New(streams.Err, logging.Options{Verbose: cfg.Application.Verbose})
	out := ui.NewConsole(streams.Out, cfg.Display.NoColor)
	if confirmer == nil {
		confirmer = NewTerminalConfirmer(streams.In, streams.Out, out)
	}

	repo := config.CreateRepository(cfg)
	service := services.NewTaskService(repo, now, logger)
	validator := validation.NewTaskValidatorWith(validation.NewValidatorWithConfig(cfg))

	return NewApp(service, validator, confirmer, out, logger, cfg.Application.AssumeYes)
}
