// Package pomodoro implements the focus/break countdown state machine.
// The timer itself is UI-agnostic: callers feed it elapsed seconds and
// react to the completions it reports.
package pomodoro

import (
	"time"

	"studydash/internal/storage"
)

// Mode selects which countdown is loaded.
type Mode string

// Countdown modes.
const (
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// Countdown lengths.
const (
	FocusDuration = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

// Duration returns the full countdown length for m.
func (m Mode) Duration() time.Duration {
	if m == ModeBreak {
		return BreakDuration
	}
	return FocusDuration
}

// Seconds returns the full countdown length for m in whole seconds.
func (m Mode) Seconds() int {
	return int(m.Duration() / time.Second)
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}

// Label returns the uppercase display name for m.
func (m Mode) Label() string {
	if m == ModeBreak {
		return "BREAK"
	}
	return "FOCUS"
}

// Phase is the run state of the countdown.
type Phase int

// Countdown phases.
const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
)

// Timer is the pomodoro state machine. It owns the remaining-seconds
// countdown and the persistent focus session counter. Timer is not
// safe for concurrent use; the UI drives it from a single update loop.
type Timer struct {
	store     *storage.Storage
	mode      Mode
	phase     Phase
	remaining int // seconds
	sessions  int
}

// New creates an idle focus timer, loading the persisted session
// counter.
func New(store *storage.Storage) (*Timer, error) {
	sessions, err := store.LoadSessionCount()
	if err != nil {
		return nil, err
	}
	return &Timer{
		store:     store,
		mode:      ModeFocus,
		phase:     PhaseIdle,
		remaining: ModeFocus.Seconds(),
		sessions:  sessions,
	}, nil
}

// Mode returns the currently loaded countdown mode.
func (t *Timer) Mode() Mode { return t.mode }

// Phase returns the current run state.
func (t *Timer) Phase() Phase { return t.phase }

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int { return t.remaining }

// Sessions returns the number of completed focus sessions.
func (t *Timer) Sessions() int { return t.sessions }

// Running reports whether the countdown is ticking.
func (t *Timer) Running() bool { return t.phase == PhaseRunning }

// Start begins or resumes the countdown. Starting a running timer is a
// no-op.
func (t *Timer) Start() {
	if t.phase != PhaseRunning {
		t.phase = PhaseRunning
	}
}

// Pause freezes the countdown, preserving the remaining time. Pausing
// an idle or paused timer is a no-op.
func (t *Timer) Pause() {
	if t.phase == PhaseRunning {
		t.phase = PhasePaused
	}
}

// Reset stops the countdown and reloads the current mode's full
// duration. The session counter is untouched.
func (t *Timer) Reset() {
	t.phase = PhaseIdle
	t.remaining = t.mode.Seconds()
}

// SetMode switches the loaded countdown and resets it. Switching to the
// current mode still resets, matching an explicit reset. Only the focus
// and break modes exist; anything else is rejected.
func (t *Timer) SetMode(m Mode) error {
	if m != ModeFocus && m != ModeBreak {
		return storage.Validationf("unknown timer mode %q", m)
	}
	t.mode = m
	t.Reset()
	return nil
}

// Tick advances a running countdown by one second. When the countdown
// reaches zero it completes: the finished mode is returned, the session
// counter is bumped and persisted for focus completions, and the timer
// chains into the opposite mode already running. A non-running timer
// ignores ticks.
func (t *Timer) Tick() (Mode, error) {
	return t.Advance(1)
}

// Advance moves a running countdown forward by the given number of
// seconds, reconciling wall-clock gaps after suspend or a stalled event
// loop. At most one completion fires per call; surplus seconds beyond
// the completion are discarded rather than eating into the next
// countdown.
func (t *Timer) Advance(seconds int) (Mode, error) {
	if t.phase != PhaseRunning || seconds <= 0 {
		return "", nil
	}

	if seconds < t.remaining {
		t.remaining -= seconds
		return "", nil
	}
	return t.complete()
}

func (t *Timer) complete() (Mode, error) {
	finished := t.mode

	var err error
	if finished == ModeFocus {
		t.sessions++
		err = t.store.SaveSessionCount(t.sessions)
	}

	// Chain straight into the opposite countdown.
	t.mode = finished.Other()
	t.remaining = t.mode.Seconds()
	t.phase = PhaseRunning

	return finished, err
}
