package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"todo-text/internal/config"
	"todo-text/internal/errors"
)

const rootUsage = "usage: todo <add <name> <dd/MM/yy> | today | all | output format=csv|yaml|json>"

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	config    *config.Config
	streams   Streams
	now       func() time.Time
	confirmer Confirmer
	app       *App
}

// Option customises the root command, mainly for tests
type Option func(*RootCommand)

// WithStreams replaces the standard streams
func WithStreams(streams Streams) Option {
	return func(r *RootCommand) { r.streams = streams }
}

// WithClock replaces the clock used to decide what "today" is
func WithClock(now func() time.Time) Option {
	return func(r *RootCommand) { r.now = now }
}

// WithConfirmer replaces the interactive terminal prompt
func WithConfirmer(confirmer Confirmer) Option {
	return func(r *RootCommand) { r.confirmer = confirmer }
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, opts ...Option) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		streams: StandardStreams(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line dated task list",
		Long: `todo keeps a list of dated tasks in a plain text file, one task per line.

EXAMPLES:
  todo add "Buy milk" 14/03/26            # Add a task for 14 March 2026
  todo today                              # List today's tasks
  todo all                                # List every task grouped by day
  todo output format=csv > tasks.csv      # Export tasks

FILES:
  todo.txt   task list, one "dd/MM/yy<TAB>name" record per line
  log.txt    diagnostic log of unexpected failures
  todo.toml  optional configuration file

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

    TODO_CONFIG                            Config file (default: todo.toml)
    TODO_DIR                               Directory holding the files (default: .)
    TODO_FILE                              Task file name (default: todo.txt)
    TODO_LOG_FILE                          Log file name (default: log.txt)
    TODO_DIR_PERMISSIONS                   Octal permissions for a created directory (default: 755)
    TODO_TASK_NAME_MAX                     Max task name length, 0 for no limit (default: 0)
    TODO_NO_COLOR                          Disable colours (default: false)
    TODO_VERBOSE                           Enable verbose output (default: false)
    TODO_ASSUME_YES                        Create a missing task file without asking (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.NewInvalidInputError("command", fmt.Sprintf("unknown command %q, %s", args[0], rootUsage))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.NewInvalidInputError("command", rootUsage)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.prepare()
		},
	}

	root.cmd.SetIn(root.streams.In)
	root.cmd.SetOut(root.streams.Out)
	root.cmd.SetErr(root.streams.Err)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on interrupt
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration in effect after flag overrides
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides TODO_CONFIG)")
	flags.String("dir", "", "Directory holding the task and log files (overrides TODO_DIR)")
	flags.String("file", "", "Task file name (overrides TODO_FILE)")
	flags.String("log-file", "", "Log file name (overrides TODO_LOG_FILE)")
	flags.BoolP("yes", "y", false, "Create a missing task file without asking (overrides TODO_ASSUME_YES)")
	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides TODO_VERBOSE)")
	flags.Bool("no-color", false, "Disable colours (overrides TODO_NO_COLOR)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add <name> <dd/MM/yy>",
		Short: "Add a dated task",
		Long: `Append a task to the task file.

The date uses a two-digit year and must fall between 01/01/00 and 31/12/99.
If the task file is missing you are asked whether to create it.

Example:
  todo add "Write report" 01/04/26`,
		Args: exactArgs(2, "usage: todo add <name> <dd/MM/yy>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewAddCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	todayCmd := &cobra.Command{
		Use:   "today",
		Short: "List today's tasks",
		Args:  exactArgs(0, "usage: todo today"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app, ScopeToday).Execute(cmd.Context(), args)
		},
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "List every task grouped by day",
		Long:  "List every task from the earliest to the latest date in the task file, grouped by day.",
		Args:  exactArgs(0, "usage: todo all"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewListCommand(r.app, ScopeAll).Execute(cmd.Context(), args)
		},
	}

	outputCmd := &cobra.Command{
		Use:   "output format=csv|yaml|json",
		Short: "Export tasks in the specified format",
		Long: `Export every valid task, in file order, to standard output.

Supported formats:
  csv  - Comma-separated values with a date,name header
  yaml - A YAML sequence of {date, name} mappings
  json - A JSON array of {date, name} objects

Dates are written as YYYY-MM-DD. Lines that cannot be parsed are skipped.

Example:
  todo output format=csv`,
		Args: exactArgs(1, "usage: todo output format=csv|yaml|json"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewOutputCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(addCmd, todayCmd, allCmd, outputCmd)
}

// exactArgs requires n positional arguments and reports usage otherwise
func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.NewInvalidInputError("arguments", fmt.Sprintf("expected %d, got %d; %s", n, len(args), usage))
		}
		return nil
	}
}

// prepare applies flag overrides to the configuration and wires the application
func (r *RootCommand) prepare() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	if err := r.applyFlags(); err != nil {
		return err
	}

	r.app = NewAppWithConfig(r.config, r.streams, r.now, r.confirmer)
	r.app.logger.Debug("configuration ready",
		"task_file", r.config.TaskFilePath(),
		"log_file", r.config.LogFilePath())
	return nil
}

// applyFlags updates the configuration with values from command-line flags
func (r *RootCommand) applyFlags() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		cfg, err := config.NewLoaderWithFile(path).Load()
		if err != nil {
			return err
		}
		r.config = cfg
	}

	overrides := &config.ConfigOverrides{}
	if flags.Changed("dir") {
		dir, _ := flags.GetString("dir")
		overrides.Dir = &dir
	}
	if flags.Changed("file") {
		file, _ := flags.GetString("file")
		overrides.TaskFile = &file
	}
	if flags.Changed("log-file") {
		file, _ := flags.GetString("log-file")
		overrides.LogFile = &file
	}
	if flags.Changed("yes") {
		yes, _ := flags.GetBool("yes")
		overrides.AssumeYes = &yes
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}
	if flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		overrides.NoColor = &noColor
	}

	overrides.Apply(r.config)
	return r.config.Validate()
}
