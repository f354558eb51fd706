package timer

import (
	"github.com/charmbracelet/huh"

	"github.com/srmtimer/srm/internal/models"
)

const promptTitle = "What did you just practice?"

// newPrompt builds the log form for a session that ran for elapsed seconds.
// The division and language fields start at the configured defaults.
func (t *Timer) newPrompt(elapsed int) *logPrompt {
	p := &logPrompt{
		elapsed:  elapsed,
		division: t.Opts.Settings.Division - 1,
		language: models.LanguageIndex(t.Opts.Settings.Language),
		add:      true,
	}

	if p.division < 0 || p.division >= len(models.Divisions) {
		p.division = 0
	}

	if p.language < 0 {
		p.language = models.LanguageIndex(models.DefaultLanguage)
	}

	divisions := make([]huh.Option[int], len(models.Divisions))
	for i, label := range models.Divisions {
		divisions[i] = huh.NewOption(label, i)
	}

	languages := make([]huh.Option[int], len(models.Languages))
	for i, lang := range models.Languages {
		languages[i] = huh.NewOption(lang, i)
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Problem").
				Placeholder("Problem name").
				Value(&p.name),
			huh.NewSelect[int]().
				Title("Division").
				Options(divisions...).
				Inline(true).
				Value(&p.division),
			huh.NewSelect[int]().
				Title("Language").
				Options(languages...).
				Height(5).
				Value(&p.language),
			huh.NewConfirm().
				Affirmative("Add").
				Negative("Dismiss").
				Value(&p.add),
		),
	).WithTheme(huh.ThemeCharm())

	return p
}
