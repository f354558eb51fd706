// Package session tracks the elapsed time of a practice session
package session

import (
	"log/slog"
	"sync"
	"time"
)

// TickInterval is the period between two increments of a running session.
const TickInterval = time.Second

// State is the state of a session timer.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Option configures a Timer.
type Option func(*Timer)

// WithScheduler sets the scheduler that delivers ticks to the timer.
func WithScheduler(s Scheduler) Option {
	return func(t *Timer) {
		t.scheduler = s
	}
}

// WithTickHook registers fn to be called with the new elapsed value after
// every accepted tick. It runs on the goroutine that delivered the tick.
func WithTickHook(fn func(elapsed int)) Option {
	return func(t *Timer) {
		t.onTick = fn
	}
}

// Timer accumulates the whole seconds spent in the Running state of a
// session. Calls that do not apply to the current state are ignored.
type Timer struct {
	scheduler Scheduler
	onTick    func(elapsed int)
	cancel    func()
	mu        sync.Mutex
	elapsed   int
	state     State
	// gen identifies the current tick schedule. Ticks carrying an older
	// generation were scheduled before a pause or stop and are dropped.
	gen uint64
}

// New returns an idle timer. Ticks are delivered by a TickerScheduler unless
// another scheduler is provided.
func New(opts ...Option) *Timer {
	t := &Timer{
		scheduler: TickerScheduler{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Start begins a new session.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Idle {
		return
	}

	t.state = Running
	t.schedule()

	slog.Debug("session started")
}

// Pause freezes the elapsed time of a running session.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return
	}

	t.unschedule()
	t.state = Paused

	slog.Debug("session paused", slog.Int("elapsed", t.elapsed))
}

// Resume continues a paused session from its frozen elapsed time.
func (t *Timer) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Paused {
		return
	}

	t.state = Running
	t.schedule()

	slog.Debug("session resumed", slog.Int("elapsed", t.elapsed))
}

// Toggle pauses a running session or resumes a paused one.
func (t *Timer) Toggle() {
	switch t.State() {
	case Running:
		t.Pause()
	case Paused:
		t.Resume()
	case Idle:
	}
}

// Stop ends the session and returns its elapsed seconds. The timer is reset
// to zero before Stop returns, so the value must be captured by the caller.
func (t *Timer) Stop() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Idle {
		return 0
	}

	t.unschedule()

	final := t.elapsed

	t.elapsed = 0
	t.state = Idle

	slog.Debug("session stopped", slog.Int("elapsed", final))

	return final
}

// Elapsed returns the seconds accumulated by the current session.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.elapsed
}

// State returns the current state of the timer.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// schedule must be called with t.mu held.
func (t *Timer) schedule() {
	t.gen++

	gen := t.gen

	t.cancel = t.scheduler.Schedule(TickInterval, func() {
		t.tick(gen)
	})
}

// unschedule must be called with t.mu held.
func (t *Timer) unschedule() {
	t.gen++

	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()

	if t.state != Running || gen != t.gen {
		t.mu.Unlock()
		return
	}

	t.elapsed++

	elapsed := t.elapsed

	t.mu.Unlock()

	if t.onTick != nil {
		t.onTick(elapsed)
	}
}
