// Package shooter implements a side-scrolling space shooter.
//
// A Level owns a Frame that scrolls through it. The Player flies inside the
// Frame and fires Shots at Enemies drifting in from the right. The level ends
// when the Frame reaches the end of the Level or the Player is hit.
//
// The simulation is built on the ecs package: every system reads and writes
// component stores, structural changes are deferred through Commands, and the
// level lifecycle is driven by LevelEvents.
package shooter

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// progressLogInterval is how often level progress is logged.
const progressLogInterval = 5 * time.Second

// Game implements the shooter simulation.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.ShooterConfig
	fixedCfg   bool // cfg was supplied by NewWithConfig and is not reloaded
	difficulty *config.DifficultyManager
	log        *log.Logger

	w      *world
	cmds   *ecs.Commands
	events *ecs.Events[LevelEvent]

	// One reader per system consuming level events.
	levelStarts ecs.Reader[LevelEvent]
	rootSpawns  ecs.Reader[LevelEvent]
	levelEnds   ecs.Reader[LevelEvent]

	spawner  *Spawner
	progress core.Timer
	buf      *core.Buffer

	kills   int
	percent float64
	ticks   int
	outcome core.Outcome
	cues    []core.Cue
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// logger is shared by games created after SetLogger.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a shooter that loads its configuration on Reset.
func New() *Game {
	return &Game{log: logger}
}

// NewWithConfig creates a shooter that always uses cfg.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "shooter"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Side Shooter"
}

// Config returns the configuration in effect since the last Reset.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// Reset builds an empty world and requests a new level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		cfg, err := config.LoadShooter(configPath)
		if err != nil {
			g.log.Warn("using default shooter config", "error", err)
			cfg = config.DefaultShooterConfig()
		}
		if difficultyPreset != "" {
			config.ApplyShooterPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.w = newWorld()
	g.cmds = ecs.NewCommands(g.w.World)
	g.events = ecs.NewEvents[LevelEvent](g.w.World)
	g.levelStarts = ecs.Reader[LevelEvent]{}
	g.rootSpawns = ecs.Reader[LevelEvent]{}
	g.levelEnds = ecs.Reader[LevelEvent]{}

	g.spawner = NewSpawner(runtime.Seed, &g.cfg.Enemy, g.difficulty)
	g.progress = core.NewTimer(progressLogInterval, core.TimerRepeating)
	g.buf = core.NewBuffer(g.cfg.Frame.Width, g.cfg.Frame.Height)

	g.kills = 0
	g.percent = 0
	g.ticks = 0
	g.outcome = core.OutcomeRunning
	g.cues = nil

	g.events.Send(LevelEvent{Kind: LevelStart})
}

// Step advances the simulation by dt.
func (g *Game) Step(events []core.Event, dt time.Duration) core.StepResult {
	if g.w == nil {
		return core.StepResult{}
	}
	if g.outcome != core.OutcomeRunning {
		return core.StepResult{State: g.State(), Exit: true}
	}

	g.ticks++
	g.cues = nil
	g.buf.Clear()
	g.events.Update()

	g.dispatchInput(events)

	g.spawnLevel()
	g.spawnFrame()
	g.spawnPlayer()
	g.spawner.Run(g, dt)

	g.scrollFrame(dt)
	g.movePlayer(dt)
	g.driftEnemies(dt)
	g.moveShots(dt)

	g.fireWeapons(dt)
	g.collide()
	g.trackProgress(dt)
	g.teardownLevel()

	g.cmds.Apply()
	g.render()

	return core.StepResult{
		State: g.State(),
		Exit:  g.outcome != core.OutcomeRunning,
		Cues:  g.cues,
	}
}

// Buffer returns the frame composed by the last Step.
func (g *Game) Buffer() *core.Buffer {
	return g.buf
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Kills:    g.kills,
		Progress: g.percent,
		Ticks:    g.ticks,
		Outcome:  g.outcome,
	}
}

// exit stops the game. Only the first call has any effect.
func (g *Game) exit(outcome core.Outcome) {
	if g.outcome != core.OutcomeRunning {
		return
	}
	g.outcome = outcome
	g.log.Info("exiting", "reason", outcome, "kills", g.kills, "ticks", g.ticks)

	switch outcome {
	case core.OutcomeDestroyed:
		g.cue(core.CueDestroyed)
	case core.OutcomeLevelComplete:
		g.cue(core.CueLevelComplete)
	}
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// unique returns the only entity holding a component of s.
// Zero or several instances break an invariant of the caller: the problem is
// logged and ok is false so the caller can skip its work for this tick.
func unique[T any](l *log.Logger, s *ecs.Store[T]) (e ecs.Entity, c *T, ok bool) {
	e, c, err := s.Single()
	if err != nil {
		l.Error("couldn't get unique instance", "store", s.Name(), "error", err)
		return ecs.None, nil, false
	}
	return e, c, true
}

// frameBody returns the unique frame and its world-space box.
func (g *Game) frameBody() (ecs.Entity, core.Body, bool) {
	frame, _, ok := unique(g.log, g.w.frames)
	if !ok {
		return ecs.None, core.Body{}, false
	}
	body, err := g.w.body(frame)
	if err != nil {
		g.log.Error("couldn't place frame", "error", err)
		return ecs.None, core.Body{}, false
	}
	return frame, body, true
}

// logPlacement reports a broken hierarchy; dead entities are skipped quietly.
func (g *Game) logPlacement(e ecs.Entity, err error) {
	if errors.Is(err, ecs.ErrNotAlive) {
		return
	}
	g.log.Error("couldn't place entity", "entity", e, "error", err)
}

func init() {
	registry.Register("shooter", func() registry.Game {
		return New()
	})
}
