package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Outcome describes why a game stopped.
type Outcome int

const (
	OutcomeRunning       Outcome = iota
	OutcomeLevelComplete         // Frame scrolled past the end of the level
	OutcomeDestroyed             // Player collided with an enemy
	OutcomeQuit                  // Player pressed Esc
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeLevelComplete:
		return "level complete"
	case OutcomeDestroyed:
		return "destroyed"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Kills    int     // Enemies destroyed by shots
	Progress float64 // Level progress in percent, 0 until a frame exists
	Ticks    int     // Simulation ticks run so far
	Outcome  Outcome // OutcomeRunning until the game terminates
}

// Over reports whether the game has terminated.
func (s GameState) Over() bool {
	return s.Outcome != OutcomeRunning
}

// Cue is a notable gameplay moment a platform may turn into sound or effects.
type Cue int

const (
	CueFire Cue = iota
	CueKill
	CueDestroyed
	CueLevelComplete
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Exit is true on the tick the termination signal fired and on every
	// tick after it. The run loop must stop ticking once it sees it.
	Exit bool
	Cues []Cue
}
