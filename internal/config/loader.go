package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
	// required is set when the file was named explicitly; only the default todo.toml is optional
	required bool
}

// NewLoader creates a new configuration loader.
// The config file is TODO_CONFIG when set, todo.toml in the working directory otherwise.
func NewLoader() *Loader {
	if path := os.Getenv("TODO_CONFIG"); path != "" {
		return NewLoaderWithFile(path)
	}
	return &Loader{
		config:   NewConfig(),
		filePath: DefaultConfigFilename,
	}
}

// NewLoaderWithFile creates a loader that reads the given config file, which must exist
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: path,
		required: true,
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, when present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if l.required {
		if _, err := os.Stat(l.filePath); os.IsNotExist(err) {
			return nil, &ConfigError{Field: "config", Message: fmt.Sprintf("config file %s does not exist", l.filePath)}
		}
	}

	if err := l.config.LoadFromFile(l.filePath); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile overrides configuration values with the keys present in a TOML file.
// A missing file is not an error.
func (c *Config) LoadFromFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &ConfigError{Field: undecoded[0].String(), Message: fmt.Sprintf("unknown key in %s", path)}
	}
	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Dir       *string
	TaskFile  *string
	LogFile   *string
	NoColor   *bool
	Verbose   *bool
	AssumeYes *bool
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.Dir != nil {
		config.Store.Dir = *o.Dir
	}
	if o.TaskFile != nil {
		config.Store.TaskFile = *o.TaskFile
	}
	if o.LogFile != nil {
		config.Store.LogFile = *o.LogFile
	}
	if o.NoColor != nil {
		config.Display.NoColor = *o.NoColor
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.AssumeYes != nil {
		config.Application.AssumeYes = *o.AssumeYes
	}
}
