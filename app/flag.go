package app

import "github.com/urfave/cli/v2"

var (
	languageFlag = &cli.StringFlag{
		Name:    "language",
		Aliases: []string{"l"},
		Usage:   "Language selected by default when logging a session (see 'srm languages')",
	}

	divisionFlag = &cli.UintFlag{
		Name:    "division",
		Aliases: []string{"d"},
		Usage:   "Division selected by default when logging a session (1 or 2)",
	}

	noTipsFlag = &cli.BoolFlag{
		Name:  "no-tips",
		Usage: "Hide the tips shown between sessions",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:  "disable-notification",
		Usage: "Disable the system notification that appears after a session is logged",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each logged session",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Format of the report printed on exit: table or json",
		Value:   "table",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug entries to the log file",
	}
)
