package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/session"
)

// handlePromptMsg forwards msg to the log form. The commands the form
// returns on completion or abort are dropped so that they cannot end the
// program.
func (t *Timer) handlePromptMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, defaultKeymap.forceQuit):
			return t, t.quit()
		case key.Matches(keyMsg, defaultKeymap.esc):
			t.discard()
			return t, nil
		}
	}

	form, cmd := t.prompt.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.prompt.form = f
	}

	switch t.prompt.form.State {
	case huh.StateCompleted:
		return t, t.complete()
	case huh.StateAborted:
		t.discard()
		return t, nil
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return t, t.quit()

	case key.Matches(msg, defaultKeymap.start):
		if t.clock.State() == session.Idle {
			t.clock.Start()
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.togglePlay):
		t.clock.Toggle()

		return t, nil

	case key.Matches(msg, defaultKeymap.stop):
		return t, t.stopSession()
	}

	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		slog.Debug("timer update", slog.String("msg", spew.Sdump(msg)))
	}

	// Ticks and tips keep flowing while the prompt is open.
	switch msg := msg.(type) {
	case tickMsg:
		return t, waitForTick(t.ticks)

	case tipMsg:
		if t.clock.State() == session.Idle && t.prompt == nil {
			t.tipIndex = (t.tipIndex + 1) % len(models.Tips)
		}

		return t, t.tipTick()

	case postLogMsg:
		if msg.err != nil {
			slog.Error("post-log action failed", slog.Any("error", msg.err))
		}

		return t, nil

	case tea.WindowSizeMsg:
		t.help.Width = msg.Width
	}

	if t.prompt != nil {
		return t.handlePromptMsg(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return t.handleKeyPress(msg)
	}

	return t, nil
}
