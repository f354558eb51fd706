// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"time"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Settings      SettingsConfig     `mapstructure:"settings"`
		Tips          TipsConfig         `mapstructure:"tips"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SettingsConfig holds the defaults of the log prompt and the command
	// run after a record is logged.
	SettingsConfig struct {
		Language string `mapstructure:"language"`
		Cmd      string `mapstructure:"cmd"`
		Division int    `mapstructure:"division"`
	}

	// TipsConfig controls the tips shown while no session is in progress.
	TipsConfig struct {
		Interval time.Duration `mapstructure:"interval"`
		Enabled  bool          `mapstructure:"enabled"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		Color     string `mapstructure:"color"`
		DarkTheme bool   `mapstructure:"dark_theme"`
	}

	// CLIConfig holds options that only exist on the command line.
	CLIConfig struct {
		Output  string
		NoColor bool
		Debug   bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v1.0.0"

const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// New creates a new Config and applies opts in order. The result is
// validated before it is returned.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
