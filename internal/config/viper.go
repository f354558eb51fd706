package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"github.com/srmtimer/srm/internal/models"
)

const (
	keyLanguage             = "settings.language"
	keyDivision             = "settings.division"
	keyCmd                  = "settings.cmd"
	keyTipsEnabled          = "tips.enabled"
	keyTipsInterval         = "tips.interval"
	keyNotificationsEnabled = "notifications.enabled"
	keyDarkTheme            = "display.dark_theme"
	keyColor                = "display.color"
)

// WithViperConfig returns an Option that loads configuration from the yaml
// file at configPath. A missing file is created with the default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and first-run prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyLanguage, models.DefaultLanguage)
	v.SetDefault(keyDivision, 1)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyTipsEnabled, true)
	v.SetDefault(keyTipsInterval, "4s")
	v.SetDefault(keyNotificationsEnabled, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyColor, "#C644FC")

	if c.Settings.Language != "" {
		v.Set(keyLanguage, c.Settings.Language)
	}

	if c.Settings.Division != 0 {
		v.Set(keyDivision, c.Settings.Division)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
