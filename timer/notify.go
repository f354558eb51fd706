package timer

import (
	"errors"
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/srmtimer/srm/internal/config"
	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/timeutil"
)

const untitledProblem = "Untitled problem"

// postLog returns a command that runs the configured side effects of
// logging r off the bubbletea loop.
func (t *Timer) postLog(r models.Record) tea.Cmd {
	opts := t.Opts

	if !opts.Notifications.Enabled && opts.Settings.Cmd == "" {
		return nil
	}

	return func() tea.Msg {
		return postLogMsg{
			err: errors.Join(notify(opts, r), runSessionCmd(opts.Settings.Cmd)),
		}
	}
}

// notify sends a desktop notification announcing a logged record.
func notify(opts *config.Config, r models.Record) error {
	if !opts.Notifications.Enabled {
		return nil
	}

	name := r.Name
	if name == "" {
		name = untitledProblem
	}

	msg := fmt.Sprintf(
		"%s (%s, %s) in %s",
		name,
		models.DivisionLabel(r.Division),
		r.Language,
		timeutil.FormatDuration(r.Time),
	)

	if err := beeep.Notify("Practice session logged", msg, ""); err != nil {
		return errNotify.Wrap(err)
	}

	return nil
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errParseSessionCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		return errRunSessionCmd.Wrap(err)
	}

	return nil
}
