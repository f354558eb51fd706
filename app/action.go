package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/logger"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/osutil"
	"github.com/srmtimer/srm/internal/pathutil"
	"github.com/srmtimer/srm/internal/ui"
	"github.com/srmtimer/srm/report"
	"github.com/srmtimer/srm/timer"
)

const (
	envNoColor    = "NO_COLOR"
	envSRMNoColor = "SRM_NO_COLOR"
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig builds the program config from the config file and the
// command-line flags.
func loadConfig(ctx *cli.Context, opts ...config.Option) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	opts = append(
		opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// editConfigAction handles the edit-config command which opens the srm config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// Loading the config first writes the defaults if the file is missing.
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// languagesAction prints the languages in selection order and marks the
// configured default.
func languagesAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	items := make([]pterm.BulletListItem, len(models.Languages))

	for i, lang := range models.Languages {
		items[i] = pterm.BulletListItem{Text: lang}

		if lang == cfg.Settings.Language {
			items[i].Text = ui.Green(lang + " (default)")
		}
	}

	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.App.Writer, list)

	return err
}

// defaultAction runs the practice timer and prints the logged records once
// the user quits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(
		ctx,
		config.WithPromptConfig(pathutil.ConfigFilePath()),
	)
	if err != nil {
		return err
	}

	t := timer.New(cfg)

	p := tea.NewProgram(
		t,
		tea.WithAltScreen(),
		tea.WithContext(ctx.Context),
	)

	if _, err := p.Run(); err != nil {
		return err
	}

	if t.Records().Count() == 0 {
		return nil
	}

	return report.Records(ctx.App.Writer, t.Records().Records(), cfg.CLI.Output)
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Fprintf(c.App.Writer, "%s %s/%s\n", c.App.Name, runtime.GOOS, runtime.GOARCH)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SRM_NO_COLOR is set
	if _, exists := os.LookupEnv(envSRMNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	logCloser = logger.Init(pathutil.LogFilePath(), ctx.Bool("debug"))

	slog.InfoContext(
		ctx.Context,
		"starting srm",
		slog.String("version", config.Version),
		slog.String("config", pathutil.ConfigFilePath()),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting srm")

	if logCloser != nil {
		if err := logCloser.Close(); err != nil {
			report.Error(err)
		}
	}

	return nil
}
