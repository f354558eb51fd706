package timer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/session"
	"github.com/srmtimer/srm/internal/timeutil"
	"github.com/srmtimer/srm/stats"
)

const noRecordsMsg = "No practice sessions logged yet"

var recordColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Problem", Width: 24},
	{Title: "Div", Width: 4},
	{Title: "Language", Width: 12},
	{Title: "Time", Width: 13},
}

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	clock     lipgloss.Style
	table     table.Styles
}

func newStyles(d config.DisplayConfig) styles {
	accent := lipgloss.Color(d.Color)

	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	if d.DarkTheme {
		subtle = lipgloss.AdaptiveColor{Light: "#5C5C5C", Dark: "#9B9B9B"}
	}

	s := styles{
		base:      lipgloss.NewStyle().Padding(1, 1),
		main:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		secondary: lipgloss.NewStyle().Foreground(accent),
		hint:      lipgloss.NewStyle().Foreground(subtle).Italic(true),
		clock:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
	}

	s.table = table.DefaultStyles()
	s.table.Header = s.table.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(subtle).
		BorderBottom(true).
		Bold(true)
	s.table.Selected = s.table.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(accent).
		Bold(false)

	return s
}

func recordRow(i int, r models.Record) table.Row {
	return table.Row{
		strconv.Itoa(i + 1),
		r.Name,
		strconv.Itoa(r.Division),
		r.Language,
		timeutil.FormatDuration(r.Time),
	}
}

func (t *Timer) clockView() string {
	var s strings.Builder

	s.WriteString(t.style.main.SetString("SRM Practice").String())

	if t.clock.State() == session.Paused {
		s.WriteString(" " + t.style.secondary.SetString("[Paused]").String())
	}

	s.WriteString("\n\n")
	s.WriteString(t.style.clock.Render(timeutil.FormatDuration(t.clock.Elapsed())))

	return s.String()
}

func (t *Timer) promptView() string {
	var s strings.Builder

	s.WriteString(t.style.main.SetString(promptTitle).String())
	s.WriteString("\n")
	s.WriteString(
		t.style.hint.SetString(
			"Session time: " + timeutil.FormatDuration(t.prompt.elapsed),
		).String(),
	)
	s.WriteString("\n\n")
	s.WriteString(t.prompt.form.View())
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.esc,
		defaultKeymap.forceQuit,
	}))

	return s.String()
}

func (t *Timer) recordsView() string {
	if t.log.Count() == 0 {
		return t.style.hint.SetString(noRecordsMsg).String()
	}

	summary := stats.Summarize(t.log.Records())

	footer := fmt.Sprintf(
		"%d logged, %s total, %s average",
		summary.Count,
		summary.Total(),
		summary.Average(),
	)

	return t.table.View() + "\n" + t.style.hint.SetString(footer).String()
}

func (t *Timer) tipView() string {
	if !t.Opts.Tips.Enabled || len(models.Tips) == 0 {
		return ""
	}

	tip := models.Tips[t.tipIndex%len(models.Tips)]

	return "\n\n" + t.style.hint.SetString("Tip: "+tip).String()
}

func (t *Timer) helpView() string {
	var bindings []key.Binding

	switch t.clock.State() {
	case session.Idle:
		bindings = []key.Binding{defaultKeymap.start, defaultKeymap.quit}
	default:
		bindings = []key.Binding{
			defaultKeymap.togglePlay,
			defaultKeymap.stop,
			defaultKeymap.quit,
		}
	}

	return "\n\n" + t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	if t.prompt != nil {
		return t.style.base.Render(t.promptView())
	}

	var s strings.Builder

	s.WriteString(t.clockView())
	s.WriteString("\n\n")
	s.WriteString(t.recordsView())

	if t.clock.State() == session.Idle {
		s.WriteString(t.tipView())
	}

	s.WriteString(t.helpView())

	return t.style.base.Render(s.String())
}
