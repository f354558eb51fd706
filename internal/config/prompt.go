package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/srmtimer/srm/internal/models"
)

const asciiLogo = `
███████╗██████╗ ███╗   ███╗
██╔════╝██╔══██╗████╗ ████║
███████╗██████╔╝██╔████╔██║
╚════██║██╔══██╗██║╚██╔╝██║
███████║██║  ██║██║ ╚═╝ ██║
╚══════╝╚═╝  ╚═╝╚═╝     ╚═╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Language string
	Division int
}

// WithPromptConfig returns an Option that asks for the log prompt defaults
// when no config file exists yet. It must be applied before
// WithViperConfig so the answers end up in the new file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if os.Getenv("SRM_ENV") == "testing" ||
			!isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Language: models.DefaultLanguage,
		Division: 1,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure SRM Timer for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'srm edit-config' to change any settings.`, " ").
		Render()

	languages := make([]huh.Option[string], len(models.Languages))
	for i, lang := range models.Languages {
		languages[i] = huh.NewOption(lang, lang)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language you practice in most").
				Options(languages...).
				Value(&opts.Language),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Division you usually compete in").
				Options(
					huh.NewOption(models.Divisions[0], 1),
					huh.NewOption(models.Divisions[1], 2),
				).
				Value(&opts.Division),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Settings.Language = opts.Language
	c.Settings.Division = opts.Division
}
