package config

import (
	"regexp"
	"slices"
	"time"

	"github.com/srmtimer/srm/internal/models"
)

var (
	minTipInterval = 1 * time.Second
	maxTipInterval = 1 * time.Minute

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if !slices.Contains(models.Languages, c.Settings.Language) {
		return errUnknownLanguage.Fmt(c.Settings.Language)
	}

	if c.Settings.Division < 1 || c.Settings.Division > len(models.Divisions) {
		return errInvalidDivision.Fmt(c.Settings.Division)
	}

	if !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	if c.Tips.Enabled &&
		(c.Tips.Interval < minTipInterval || c.Tips.Interval > maxTipInterval) {
		return errInvalidTipInterval.Fmt(minTipInterval, maxTipInterval)
	}

	switch c.CLI.Output {
	case "", OutputTable, OutputJSON:
	default:
		return errUnknownOutput.Fmt(c.CLI.Output)
	}

	return nil
}
