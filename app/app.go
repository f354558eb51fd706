// Package app wires the srm command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/srmtimer/srm/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the srm app instance.
func Get() *cli.App {
	srmApp := &cli.App{
		Name: "srm",
		Usage: `
		SRM Timer is a practice stopwatch for Single Round Matches. Time each
		problem you solve, then log it with its division and language.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "languages",
				Usage:  "List the languages a record can be logged in",
				Action: languagesAction,
			},
		},
		Flags: []cli.Flag{
			languageFlag,
			divisionFlag,
			noTipsFlag,
			disableNotificationFlag,
			sessionCmdFlag,
			outputFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return srmApp
}
