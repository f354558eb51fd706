// Package timer runs the interactive practice timer and logs completed
// sessions
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/session"
	"github.com/srmtimer/srm/store"
)

const tableHeight = 8

type (
	// tickMsg reports that the running session gained a second.
	tickMsg struct {
		elapsed int
	}

	// tipMsg advances the tips carousel.
	tipMsg struct{}

	// postLogMsg carries the outcome of the actions run after a record is
	// logged.
	postLogMsg struct {
		err error
	}
)

// logPrompt holds the form shown when a session is stopped, and the values
// bound to its fields.
type logPrompt struct {
	form     *huh.Form
	name     string
	division int // zero-based selection index
	language int // zero-based selection index
	elapsed  int // captured from the session timer on stop
	add      bool
}

// Timer is the bubbletea model of the practice timer. It owns the session
// timer and the record log.
type Timer struct {
	Opts     *config.Config
	clock    *session.Timer
	log      *store.RecordLog
	prompt   *logPrompt
	ticks    chan int
	style    styles
	table    table.Model
	help     help.Model
	tipIndex int
	quitting bool
}

// New creates a timer model. The options are passed on to the session
// timer.
func New(cfg *config.Config, opts ...session.Option) *Timer {
	t := &Timer{
		Opts:  cfg,
		log:   store.NewRecordLog(),
		ticks: make(chan int, 1),
		help:  help.New(),
		style: newStyles(cfg.Display),
	}

	opts = append([]session.Option{session.WithTickHook(t.forwardTick)}, opts...)

	t.clock = session.New(opts...)

	t.table = table.New(
		table.WithColumns(recordColumns),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
		table.WithStyles(t.style.table),
	)

	return t
}

// Records returns the records logged so far.
func (t *Timer) Records() store.Log {
	return t.log
}

// forwardTick hands the new elapsed value to the bubbletea loop. If the
// previous tick has not been picked up yet, the value is dropped; the view
// always reads the current value from the clock.
func (t *Timer) forwardTick(elapsed int) {
	select {
	case t.ticks <- elapsed:
	default:
	}
}

func waitForTick(ticks <-chan int) tea.Cmd {
	return func() tea.Msg {
		return tickMsg{elapsed: <-ticks}
	}
}

func (t *Timer) tipTick() tea.Cmd {
	if !t.Opts.Tips.Enabled {
		return nil
	}

	return tea.Tick(t.Opts.Tips.Interval, func(_ time.Time) tea.Msg {
		return tipMsg{}
	})
}

func (t *Timer) Init() tea.Cmd {
	return tea.Batch(waitForTick(t.ticks), t.tipTick())
}

// stopSession ends the current session and opens the log prompt for it.
// The clock is reset before the prompt is shown, so a dismissed session
// cannot be resumed.
func (t *Timer) stopSession() tea.Cmd {
	if t.clock.State() == session.Idle {
		return nil
	}

	elapsed := t.clock.Stop()

	t.prompt = t.newPrompt(elapsed)

	return t.prompt.form.Init()
}

// complete finishes the log prompt. The record is only appended if the user
// chose to add it.
func (t *Timer) complete() tea.Cmd {
	p := t.prompt
	t.prompt = nil

	if p == nil {
		return nil
	}

	if !p.add {
		slog.Info("session discarded", slog.Int("elapsed", p.elapsed))
		return nil
	}

	r := models.NewRecord(p.name, p.division, p.language, p.elapsed)

	t.log.Append(r)
	t.refreshTable()

	slog.Info(
		"session logged",
		slog.String("name", r.Name),
		slog.Int("division", r.Division),
		slog.String("language", r.Language),
		slog.Int("time", r.Time),
	)

	return t.postLog(r)
}

// discard closes the log prompt without recording the session.
func (t *Timer) discard() {
	if t.prompt != nil {
		t.prompt.add = false
	}

	_ = t.complete()
}

// quit ends the program. A session still in progress is stopped and its
// time is dropped.
func (t *Timer) quit() tea.Cmd {
	if t.clock.State() != session.Idle {
		slog.Info("session abandoned on exit", slog.Int("elapsed", t.clock.Stop()))
	}

	t.discard()

	t.quitting = true

	return tea.Quit
}

func (t *Timer) refreshTable() {
	records := t.log.Records()
	rows := make([]table.Row, len(records))

	for i := range records {
		rows[i] = recordRow(i, records[i])
	}

	t.table.SetRows(rows)
	t.table.GotoBottom()
}
