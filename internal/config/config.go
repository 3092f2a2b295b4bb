package config

import (
	"os"
	"path/filepath"
	"strconv"
)

const (
	// DefaultTaskFilename is the task store file name
	DefaultTaskFilename = "todo.txt"
	// DefaultLogFilename is the diagnostic log file name
	DefaultLogFilename = "log.txt"
	// DefaultConfigFilename is the optional project config file looked up in the working directory
	DefaultConfigFilename = "todo.toml"
	// DefaultTaskNameMaxLength is the longest task name the add command accepts; 0 means no limit
	DefaultTaskNameMaxLength = 0
)

// Config holds all configuration options for the todo application
type Config struct {
	Store       StoreConfig       `toml:"store"`
	Validation  ValidationConfig  `toml:"validation"`
	Display     DisplayConfig     `toml:"display"`
	Application ApplicationConfig `toml:"application"`
}

// StoreConfig holds the location of the task file and the diagnostic log
type StoreConfig struct {
	Dir            string `toml:"dir" env:"TODO_DIR"`
	TaskFile       string `toml:"task_file" env:"TODO_FILE"`
	LogFile        string `toml:"log_file" env:"TODO_LOG_FILE"`
	DirPermissions uint32 `toml:"dir_permissions" env:"TODO_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules for the add command
type ValidationConfig struct {
	TaskNameMaxLength int `toml:"task_name_max_length" env:"TODO_TASK_NAME_MAX"`
}

// DisplayConfig holds console output options
type DisplayConfig struct {
	NoColor bool `toml:"no_color" env:"TODO_NO_COLOR"`
}

// ApplicationConfig holds application-level options
type ApplicationConfig struct {
	Verbose   bool `toml:"verbose" env:"TODO_VERBOSE"`
	AssumeYes bool `toml:"assume_yes" env:"TODO_ASSUME_YES"`
}

// NewConfig creates a configuration with the defaults: both files live in the working directory
func NewConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Dir:            ".",
			TaskFile:       DefaultTaskFilename,
			LogFile:        DefaultLogFilename,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TaskNameMaxLength: DefaultTaskNameMaxLength,
		},
	}
}

// TaskFilePath returns the full path to the task file
func (c *Config) TaskFilePath() string {
	return c.resolve(c.Store.TaskFile)
}

// LogFilePath returns the full path to the diagnostic log
func (c *Config) LogFilePath() string {
	return c.resolve(c.Store.LogFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.Store.Dir == "" {
		return name
	}
	return filepath.Join(c.Store.Dir, name)
}

// LoadFromEnvironment overrides configuration values from environment variables.
// Unparseable numbers and booleans are ignored.
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TODO_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if file := os.Getenv("TODO_FILE"); file != "" {
		c.Store.TaskFile = file
	}
	if file := os.Getenv("TODO_LOG_FILE"); file != "" {
		c.Store.LogFile = file
	}
	if perms := os.Getenv("TODO_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Store.DirPermissions = uint32(p)
		}
	}

	if maxLen := os.Getenv("TODO_TASK_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskNameMaxLength = n
		}
	}

	if noColor := os.Getenv("TODO_NO_COLOR"); noColor != "" {
		if b, err := strconv.ParseBool(noColor); err == nil {
			c.Display.NoColor = b
		}
	}

	if verbose := os.Getenv("TODO_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}
	if yes := os.Getenv("TODO_ASSUME_YES"); yes != "" {
		if b, err := strconv.ParseBool(yes); err == nil {
			c.Application.AssumeYes = b
		}
	}

	return nil
}

// Validate validates the configuration and returns the first problem found
func (c *Config) Validate() error {
	if c.Store.TaskFile == "" {
		return &ConfigError{Field: "store.task_file", Message: "task file name cannot be empty"}
	}
	if c.Store.LogFile == "" {
		return &ConfigError{Field: "store.log_file", Message: "log file name cannot be empty"}
	}
	if c.TaskFilePath() == c.LogFilePath() {
		return &ConfigError{Field: "store.log_file", Message: "log file must differ from the task file"}
	}
	if c.Store.DirPermissions == 0 || c.Store.DirPermissions > 0777 {
		return &ConfigError{Field: "store.dir_permissions", Message: "directory permissions must be between 1 and 0777"}
	}
	if c.Validation.TaskNameMaxLength < 0 {
		return &ConfigError{Field: "validation.task_name_max_length", Message: "task name maximum length cannot be negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
