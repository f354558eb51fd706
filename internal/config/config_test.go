package config_test

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/srmtimer/srm/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Settings: config.SettingsConfig{
			Language: "Swift",
			Division: 1,
			Cmd:      "",
		},
		Tips: config.TipsConfig{
			Enabled:  true,
			Interval: 4 * time.Second,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
			Color:     "#C644FC",
		},
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte(content), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	return configPath
}

func cliContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("srm", flag.ContinueOnError)

	for k, v := range flags {
		_ = f.String(k, "", "")

		if err := f.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, configPath)

	// the written file must load back to the same values
	again, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := writeConfig(t, `settings:
  language: C++
  division: 2
  cmd: notify-send logged
tips:
  enabled: false
  interval: 10s
notifications:
  enabled: true
display:
  dark_theme: false
  color: "#5856D6"
`)

	want := &config.Config{
		Settings: config.SettingsConfig{
			Language: "C++",
			Division: 2,
			Cmd:      "notify-send logged",
		},
		Tips: config.TipsConfig{
			Enabled:  false,
			Interval: 10 * time.Second,
		},
		Notifications: config.NotificationConfig{
			Enabled: true,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
			Color:     "#5856D6",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, cfg)
}

func TestViperPartialConfig(t *testing.T) {
	configPath := writeConfig(t, `settings:
  language: Python
`)

	want := defaultConfig()
	want.Settings.Language = "Python"

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, cfg)
}

func TestCLIOverrides(t *testing.T) {
	configPath := writeConfig(t, `settings:
  language: C++
notifications:
  enabled: true
`)

	ctx := cliContext(t, map[string]string{
		"language":             "Ruby",
		"division":             "2",
		"cmd":                  "echo done",
		"output":               "json",
		"no-tips":              "true",
		"disable-notification": "true",
	})

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "Ruby", cfg.Settings.Language)
	assert.Equal(t, 2, cfg.Settings.Division)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
	assert.Equal(t, config.OutputJSON, cfg.CLI.Output)
	assert.False(t, cfg.Tips.Enabled)
	assert.False(t, cfg.Notifications.Enabled)
}

func TestCLIDefaultOutput(t *testing.T) {
	configPath := writeConfig(t, "")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(cliContext(t, nil)),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, config.OutputTable, cfg.CLI.Output)
	assert.Equal(t, "Swift", cfg.Settings.Language)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name   string
		Modify func(c *config.Config)
		Valid  bool
	}{
		{
			Name:   "defaults",
			Modify: func(_ *config.Config) {},
			Valid:  true,
		},
		{
			Name:   "unknown language",
			Modify: func(c *config.Config) { c.Settings.Language = "Go" },
		},
		{
			Name:   "division zero",
			Modify: func(c *config.Config) { c.Settings.Division = 0 },
		},
		{
			Name:   "division three",
			Modify: func(c *config.Config) { c.Settings.Division = 3 },
		},
		{
			Name:   "bad color",
			Modify: func(c *config.Config) { c.Display.Color = "purple" },
		},
		{
			Name:   "tip interval too short",
			Modify: func(c *config.Config) { c.Tips.Interval = time.Millisecond },
		},
		{
			Name: "tip interval ignored when tips are off",
			Modify: func(c *config.Config) {
				c.Tips.Enabled = false
				c.Tips.Interval = 0
			},
			Valid: true,
		},
		{
			Name:   "unknown output",
			Modify: func(c *config.Config) { c.CLI.Output = "xml" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			c := defaultConfig()
			tc.Modify(c)

			err := c.Validate()
			if tc.Valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestInvalidFileIsRejected(t *testing.T) {
	configPath := writeConfig(t, `settings:
  division: 5
`)

	_, err := config.New(
		config.WithViperConfig(configPath),
	)

	assert.Error(t, err)
}

func TestReadErrorIsReported(t *testing.T) {
	configPath := writeConfig(t, "settings: [unterminated\n")

	_, err := config.New(
		config.WithViperConfig(configPath),
	)

	assert.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
}
