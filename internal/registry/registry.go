// Package registry lets games announce themselves from init so the CLI can
// list and create them by id.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Game is a simulation driven by a platform run loop. It knows nothing about
// terminals: the platform gathers input, paces the ticks and shows Buffer.
type Game interface {
	ID() string
	Title() string

	// Reset builds a fresh run. It is called before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by dt, consuming the input events
	// gathered since the previous tick.
	Step(events []core.Event, dt time.Duration) core.StepResult

	// Buffer returns the frame composed by the last Step.
	Buffer() *core.Buffer

	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game factory under id. Registering the same id twice is a
// programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return infos
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
