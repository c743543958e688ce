// Package keyhold turns the key presses a terminal reports into press and
// release pairs.
//
// Terminals send a key once when it goes down and then auto-repeat it after a
// delay, but never report it going up. A Tracker treats a key as held while
// presses keep arriving and releases it once none arrives within the hold
// window. The first window is longer to cover the auto-repeat delay.
package keyhold

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Default hold windows, tuned for common keyboard repeat settings.
const (
	DefaultInitial = 550 * time.Millisecond
	DefaultRepeat  = 120 * time.Millisecond
)

// Tracker synthesizes KeyRelease events for held keys. It is not safe for
// concurrent use.
type Tracker struct {
	initial time.Duration
	repeat  time.Duration
	held    map[core.Key]time.Time // Release deadline per held key
}

// New creates a tracker. Non-positive windows fall back to the defaults.
func New(initial, repeat time.Duration) *Tracker {
	if initial <= 0 {
		initial = DefaultInitial
	}
	if repeat <= 0 {
		repeat = DefaultRepeat
	}
	return &Tracker{
		initial: initial,
		repeat:  repeat,
		held:    make(map[core.Key]time.Time),
	}
}

// Press records a press of k at now. It returns a KeyPress when the key was
// not held already; auto-repeats only extend the hold.
func (t *Tracker) Press(k core.Key, now time.Time) []core.Event {
	if t.holding(k) {
		t.held[k] = now.Add(t.repeat)
		return nil
	}
	t.held[k] = now.Add(t.initial)
	return []core.Event{core.KeyPress{Key: k}}
}

// release ends the hold on k.
func (t *Tracker) release(k core.Key) []core.Event {
	if !t.holding(k) {
		return nil
	}
	delete(t.held, k)
	return []core.Event{core.KeyRelease{Key: k}}
}

// Expire releases every key whose hold window has passed at now.
// Releases are ordered by key.
func (t *Tracker) Expire(now time.Time) []core.Event {
	var keys []core.Key
	for k, deadline := range t.held {
		if !now.Before(deadline) {
			keys = append(keys, k)
		}
	}
	return t.releaseKeys(keys)
}

// ReleaseAll releases every held key, e.g. when the terminal loses focus.
func (t *Tracker) ReleaseAll() []core.Event {
	keys := make([]core.Key, 0, len(t.held))
	for k := range t.held {
		keys = append(keys, k)
	}
	return t.releaseKeys(keys)
}

func (t *Tracker) releaseKeys(keys []core.Key) []core.Event {
	if len(keys) == 0 {
		return nil
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	events := make([]core.Event, 0, len(keys))
	for _, k := range keys {
		events = append(events, t.release(k)...)
	}
	return events
}

// holding reports whether k is currently held.
func (t *Tracker) holding(k core.Key) bool {
	_, ok := t.held[k]
	return ok
}
