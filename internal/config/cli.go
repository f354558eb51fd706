package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Language      string
	Cmd           string
	Output        string
	Division      uint
	NoTips        bool
	DisableNotify bool
	NoColor       bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Language:      ctx.String("language"),
			Division:      ctx.Uint("division"),
			Cmd:           ctx.String("cmd"),
			Output:        ctx.String("output"),
			NoTips:        ctx.Bool("no-tips"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
			Debug:         ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Language != "" {
		c.Settings.Language = opts.Language
	}

	if opts.Division > 0 {
		c.Settings.Division = int(opts.Division)
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	if opts.NoTips {
		c.Tips.Enabled = false
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.Output = opts.Output
	if c.CLI.Output == "" {
		c.CLI.Output = OutputTable
	}

	c.CLI.NoColor = opts.NoColor
	c.CLI.Debug = opts.Debug
}
