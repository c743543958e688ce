package core

import "time"

// TimerMode selects whether a Timer stops or wraps when it finishes.
type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer accumulates elapsed simulation time toward a duration.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Mode     TimerMode

	justFinished bool
}

// NewTimer creates a timer that has not started counting yet.
func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer. A once timer stays finished until Reset; a
// repeating timer wraps around and reports JustFinished on each wrap.
func (t *Timer) Tick(dt time.Duration) {
	wasFinished := t.Finished()
	t.Elapsed += dt
	t.justFinished = false

	switch t.Mode {
	case TimerRepeating:
		if t.Duration > 0 && t.Elapsed >= t.Duration {
			t.Elapsed %= t.Duration
			t.justFinished = true
		}
	default:
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.justFinished = !wasFinished
		}
	}
}

// Finished reports whether a once timer has reached its duration.
// Repeating timers are finished only on the tick they wrap.
func (t *Timer) Finished() bool {
	if t.Mode == TimerRepeating {
		return t.justFinished
	}
	return t.Elapsed >= t.Duration
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Reset restarts the timer from zero.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}
