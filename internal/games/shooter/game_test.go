package shooter

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

const tick = 10 * time.Millisecond

// testConfig returns a static level with no spawner, so tests place enemies
// themselves.
func testConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Frame.ScrollSpeed = 0
	cfg.Enemy.SpawnInterval = 0
	cfg.Difficulty.Enabled = false
	return cfg
}

func newTestGame(cfg config.ShooterConfig) *Game {
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{TickRate: 100, Seed: 42})
	return g
}

// bootstrap runs the two ticks it takes to build level, frame and player.
func bootstrap(t *testing.T, g *Game) (root, frame, player ecs.Entity) {
	t.Helper()
	g.Step(nil, tick)
	g.Step(nil, tick)

	var err error
	if root, _, err = g.w.levels.Single(); err != nil {
		t.Fatalf("level: %v", err)
	}
	if frame, _, err = g.w.frames.Single(); err != nil {
		t.Fatalf("frame: %v", err)
	}
	if player, _, err = g.w.players.Single(); err != nil {
		t.Fatalf("player: %v", err)
	}
	return root, frame, player
}

func press(k core.Key) []core.Event {
	return []core.Event{core.KeyPress{Key: k}}
}

func countCues(cues []core.Cue, want core.Cue) int {
	n := 0
	for _, c := range cues {
		if c == want {
			n++
		}
	}
	return n
}

func TestLevelBootstrap(t *testing.T) {
	g := newTestGame(testConfig())

	g.Step(nil, tick)
	if g.w.levels.Len() != 1 || g.w.frames.Len() != 1 {
		t.Fatalf("after tick 1: levels=%d frames=%d, expected 1 and 1", g.w.levels.Len(), g.w.frames.Len())
	}
	if g.w.players.Len() != 0 {
		t.Errorf("after tick 1: players=%d, expected 0", g.w.players.Len())
	}

	root, frame, player := bootstrap(t, g)
	if g.w.weapons.Len() != 1 {
		t.Fatalf("weapons=%d, expected 1", g.w.weapons.Len())
	}

	for i := 0; i < 10; i++ {
		g.Step(nil, tick)
	}
	if g.w.levels.Len() != 1 || g.w.frames.Len() != 1 || g.w.players.Len() != 1 || g.w.weapons.Len() != 1 {
		t.Errorf("entities duplicated: levels=%d frames=%d players=%d weapons=%d",
			g.w.levels.Len(), g.w.frames.Len(), g.w.players.Len(), g.w.weapons.Len())
	}

	if p, _ := g.w.Parent(frame); p != root {
		t.Errorf("frame parent = %d, expected level %d", p, root)
	}
	if p, _ := g.w.Parent(player); p != frame {
		t.Errorf("player parent = %d, expected frame %d", p, frame)
	}
	weapon := g.w.weapons.Entities()[0]
	if p, _ := g.w.Parent(weapon); p != player {
		t.Errorf("weapon parent = %d, expected player %d", p, player)
	}

	if at, _ := g.w.Translation(player); at.X != 2 || at.Y != 14 {
		t.Errorf("player at %v, expected (2, 14)", at)
	}
}

func TestDuplicateLevelEventsAreIdempotent(t *testing.T) {
	g := newTestGame(testConfig())
	g.events.Send(LevelEvent{Kind: LevelStart})
	g.events.Send(LevelEvent{Kind: LevelStart})

	g.Step(nil, tick)
	if g.w.levels.Len() != 1 {
		t.Fatalf("levels=%d, expected 1", g.w.levels.Len())
	}

	root, _, _ := g.w.levels.Single()
	g.events.Send(LevelEvent{Kind: RootSpawned, Root: root})
	g.events.Send(LevelEvent{Kind: RootSpawned, Root: root})
	g.events.Send(LevelEvent{Kind: LevelStart})
	g.Step(nil, tick)

	if g.w.levels.Len() != 1 {
		t.Errorf("levels=%d, expected 1", g.w.levels.Len())
	}
	if g.w.frames.Len() != 1 {
		t.Errorf("frames=%d, expected 1", g.w.frames.Len())
	}
}

func TestEscQuits(t *testing.T) {
	g := newTestGame(testConfig())
	bootstrap(t, g)

	res := g.Step(press(core.KeyEsc), tick)
	if !res.Exit || res.State.Outcome != core.OutcomeQuit {
		t.Fatalf("Step(esc) = exit %v outcome %v, expected exit quit", res.Exit, res.State.Outcome)
	}

	ticks := res.State.Ticks
	res = g.Step(nil, tick)
	if !res.Exit {
		t.Error("Step() after exit should keep reporting Exit")
	}
	if res.State.Ticks != ticks {
		t.Errorf("Step() after exit advanced ticks to %d, expected %d", res.State.Ticks, ticks)
	}
}

func TestLevelCompletes(t *testing.T) {
	cfg := testConfig()
	cfg.Level.Length = 120
	cfg.Frame.ScrollSpeed = 100 // one cell per tick
	cfg.Enemy.SpawnInterval = 0.05
	g := newTestGame(cfg)

	// The weapon exists from the third tick on. Fire stays held from then
	// until the end, so shots and enemies are live when the level ends.
	exits, completes := 0, 0
	exited := false
	maxEnemies, maxShots := 0, 0
	for i := 0; i < 200; i++ {
		var events []core.Event
		if i == 2 {
			events = press(core.KeyFire)
		}
		res := g.Step(events, tick)
		completes += countCues(res.Cues, core.CueLevelComplete)
		if res.Exit && !exited {
			exits++
			exited = true
		}
		if !exited {
			maxEnemies = max(maxEnemies, g.w.enemies.Len())
			maxShots = max(maxShots, g.w.shots.Len())
		}
	}

	if exits != 1 || completes != 1 {
		t.Errorf("exits=%d completes=%d, expected exactly one each", exits, completes)
	}
	if maxEnemies == 0 || maxShots == 0 {
		t.Fatalf("enemies=%d shots=%d while running, expected both to be live", maxEnemies, maxShots)
	}
	state := g.State()
	if state.Outcome != core.OutcomeLevelComplete {
		t.Errorf("Outcome = %v, expected %v", state.Outcome, core.OutcomeLevelComplete)
	}
	if state.Progress != 100 {
		t.Errorf("Progress = %v, expected 100", state.Progress)
	}
	if g.w.Len() != 0 {
		t.Errorf("%d entities left after teardown, expected 0", g.w.Len())
	}
	if strings.TrimSpace(g.Buffer().String()) != "" {
		t.Error("buffer should be empty after teardown")
	}
}

func TestProgressSkippedForDegenerateLevel(t *testing.T) {
	cfg := testConfig()
	cfg.Level.Length = float64(cfg.Frame.Width)
	cfg.Frame.ScrollSpeed = 1
	g := newTestGame(cfg)

	for i := 0; i < 5; i++ {
		g.Step(nil, tick)
	}
	if got := g.State().Progress; got != 0 {
		t.Errorf("Progress = %v, expected 0 when level is as wide as the frame", got)
	}
	if g.State().Outcome != core.OutcomeLevelComplete {
		t.Errorf("Outcome = %v, expected level complete", g.State().Outcome)
	}
}

func TestPlayerEnemyCollision(t *testing.T) {
	g := newTestGame(testConfig())
	root, _, _ := bootstrap(t, g)

	// Player occupies [2,5)x[14,15); its top-left corner is inside this enemy.
	g.spawnEnemy(root, core.V3(1, 13, 0), 0)
	g.cmds.Apply()

	res := g.Step(nil, tick)
	if !res.Exit || res.State.Outcome != core.OutcomeDestroyed {
		t.Fatalf("Step() = exit %v outcome %v, expected destroyed", res.Exit, res.State.Outcome)
	}
	if countCues(res.Cues, core.CueDestroyed) != 1 {
		t.Errorf("cues = %v, expected one destroyed cue", res.Cues)
	}
}

func TestShotKillsEnemy(t *testing.T) {
	g := newTestGame(testConfig())
	root, _, _ := bootstrap(t, g)

	g.spawnEnemy(root, core.V3(20, 12, 0), 0)
	g.cmds.Apply()

	// Fire a single shot.
	events := press(core.KeyFire)
	for i := 0; i < 200 && g.kills == 0; i++ {
		res := g.Step(events, tick)
		events = nil
		if res.Exit {
			t.Fatalf("unexpected exit: %v", res.State.Outcome)
		}
		if countCues(res.Cues, core.CueFire) > 0 {
			events = []core.Event{core.KeyRelease{Key: core.KeyFire}}
		}
	}

	if g.State().Kills != 1 {
		t.Fatalf("Kills = %d, expected 1", g.State().Kills)
	}
	if g.w.enemies.Len() != 0 {
		t.Errorf("enemies=%d, expected 0", g.w.enemies.Len())
	}
	if g.w.shots.Len() != 0 {
		t.Errorf("shots=%d, expected the hitting shot to be gone", g.w.shots.Len())
	}
}

func TestShotsAndEnemiesOverlapping(t *testing.T) {
	// Shots move 0.4 cells in the tick below; enemies hold still.
	tests := []struct {
		name    string
		enemies []core.Vec3
		shots   []core.Vec3
		kills   int
	}{
		{
			name:    "two shots in one enemy",
			enemies: []core.Vec3{core.V3(20, 5, 0)},
			shots:   []core.Vec3{core.V3(20.5, 6.5, 0), core.V3(20.5, 7.5, 0)},
			kills:   1,
		},
		{
			name:    "one shot across stacked enemies",
			enemies: []core.Vec3{core.V3(20, 5, 0), core.V3(20, 9.5, 0)},
			shots:   []core.Vec3{core.V3(20.5, 9.2, 0)},
			kills:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(testConfig())
			root, frame, _ := bootstrap(t, g)
			for _, at := range tt.enemies {
				g.spawnEnemy(root, at, 0)
			}
			for _, at := range tt.shots {
				g.spawnShot(frame, at)
			}
			g.cmds.Apply()

			res := g.Step(nil, tick)

			if g.w.enemies.Len() != 0 || g.w.shots.Len() != 0 {
				t.Errorf("enemies=%d shots=%d, expected 0 and 0", g.w.enemies.Len(), g.w.shots.Len())
			}
			if got := g.State().Kills; got != tt.kills {
				t.Errorf("Kills = %d, expected %d", got, tt.kills)
			}
			if got := countCues(res.Cues, core.CueKill); got != tt.kills {
				t.Errorf("kill cues = %d, expected %d", got, tt.kills)
			}
		})
	}
}

func TestShotsOutsideFrameDespawn(t *testing.T) {
	tests := []struct {
		name string
		at   core.Vec3
		kept bool
	}{
		{"inside", core.V3(50, 5, 0), true},
		{"overlapping right edge", core.V3(99, 5, 0), true},
		{"past right edge", core.V3(100.5, 5, 0), false},
		{"above frame", core.V3(50, -3, 0), false},
		{"below frame", core.V3(50, 31, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(testConfig())
			_, frame, _ := bootstrap(t, g)

			g.spawnShot(frame, tt.at)
			g.cmds.Apply()
			g.Step(nil, tick)

			if kept := g.w.shots.Len() == 1; kept != tt.kept {
				t.Errorf("shot at %v kept = %v, expected %v", tt.at, kept, tt.kept)
			}
		})
	}
}

func TestEnemyLeavingFrameDespawns(t *testing.T) {
	g := newTestGame(testConfig())
	root, _, _ := bootstrap(t, g)

	g.spawnEnemy(root, core.V3(-5, 0, 0), 30)
	g.spawnEnemy(root, core.V3(50, 0, 0), 30)
	g.cmds.Apply()
	g.Step(nil, tick)

	if g.w.enemies.Len() != 1 {
		t.Errorf("enemies=%d, expected only the one inside the frame", g.w.enemies.Len())
	}
}

func TestEnemyDriftsOnlyInsideFrame(t *testing.T) {
	g := newTestGame(testConfig())
	root, _, _ := bootstrap(t, g)

	inside := g.spawnEnemy(root, core.V3(50, 0, 0), 30)
	edge := g.spawnEnemy(root, core.V3(0, 20, 0), 30)
	g.cmds.Apply()
	g.Step(nil, tick)

	if at, _ := g.w.Translation(inside); at.X >= 50 {
		t.Errorf("inside enemy x = %v, expected it to drift left", at.X)
	}
	if at, _ := g.w.Translation(edge); at.X != 0 {
		t.Errorf("enemy on the left edge x = %v, expected it to stay", at.X)
	}
}

func TestWeaponReloadCadence(t *testing.T) {
	cfg := testConfig()
	cfg.Weapon.ReloadSeconds = 0.25
	g := newTestGame(cfg)
	bootstrap(t, g)

	fired := countCues(g.Step(press(core.KeyFire), tick).Cues, core.CueFire)
	for i := 1; i < 75; i++ {
		fired += countCues(g.Step(nil, tick).Cues, core.CueFire)
	}
	if fired != 3 {
		t.Errorf("fired %d shots in 750ms, expected 3", fired)
	}

	g.Step([]core.Event{core.KeyRelease{Key: core.KeyFire}}, tick)
	fired = 0
	for i := 0; i < 100; i++ {
		fired += countCues(g.Step(nil, tick).Cues, core.CueFire)
	}
	if fired != 0 {
		t.Errorf("fired %d shots with trigger released, expected 0", fired)
	}
}

func TestPlayerDirection(t *testing.T) {
	const d = 0.7071067811865476
	tests := []struct {
		name   string
		moving uint8
		x, y   float64
	}{
		{"none", 0, 0, 0},
		{"left", MovingLeft, -1, 0},
		{"right", MovingRight, 1, 0},
		{"up", MovingUp, 0, -1},
		{"down", MovingDown, 0, 1},
		{"left and right cancel", MovingLeft | MovingRight, 0, 0},
		{"all cancel", MovingLeft | MovingRight | MovingUp | MovingDown, 0, 0},
		{"down right", MovingDown | MovingRight, d, d},
		{"up left", MovingUp | MovingLeft, -d, -d},
		{"up down right", MovingUp | MovingDown | MovingRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Player{Moving: tt.moving}.Direction()
			if !approx(got.X, tt.x) || !approx(got.Y, tt.y) {
				t.Errorf("Direction(%04b) = %v, expected (%v, %v)", tt.moving, got, tt.x, tt.y)
			}
		})
	}
}

func approx(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}

func TestPlayerClampedToFrame(t *testing.T) {
	g := newTestGame(testConfig())
	_, _, player := bootstrap(t, g)

	g.Step([]core.Event{core.KeyPress{Key: core.KeyLeft}, core.KeyPress{Key: core.KeyUp}}, tick)
	for i := 0; i < 200; i++ {
		g.Step(nil, tick)
	}
	if at, _ := g.w.Translation(player); at.X != 0 || at.Y != 0 {
		t.Errorf("player at %v, expected top-left corner (0, 0)", at)
	}

	g.Step([]core.Event{
		core.KeyRelease{Key: core.KeyLeft},
		core.KeyRelease{Key: core.KeyUp},
		core.KeyPress{Key: core.KeyRight},
		core.KeyPress{Key: core.KeyDown},
	}, tick)
	for i := 0; i < 1000; i++ {
		g.Step(nil, tick)
	}
	if at, _ := g.w.Translation(player); at.X != 97 || at.Y != 29 {
		t.Errorf("player at %v, expected bottom-right corner (97, 29)", at)
	}
}

func TestRenderPlayer(t *testing.T) {
	g := newTestGame(testConfig())
	bootstrap(t, g)
	g.Step(nil, tick)

	row := g.Buffer().Row(14)
	if idx := strings.Index(row, "]o>"); idx != 2 {
		t.Errorf("player sprite at column %d of row 14, expected 2: %q", idx, row)
	}
	if g.Buffer().Width() != 100 || g.Buffer().Height() != 30 {
		t.Errorf("buffer %dx%d, expected 100x30", g.Buffer().Width(), g.Buffer().Height())
	}
}

func TestRenderIsCameraRelative(t *testing.T) {
	cfg := testConfig()
	cfg.Frame.ScrollSpeed = 100
	g := newTestGame(cfg)
	bootstrap(t, g)
	for i := 0; i < 10; i++ {
		g.Step(nil, tick)
	}

	if idx := strings.Index(g.Buffer().Row(14), "]o>"); idx != 2 {
		t.Errorf("player sprite at column %d while scrolling, expected 2", idx)
	}
}

func TestInvariantViolationIsNoOp(t *testing.T) {
	cfg := testConfig()
	cfg.Frame.ScrollSpeed = 100
	g := newTestGame(cfg)
	root, frame, _ := bootstrap(t, g)

	extra := g.w.Spawn(root)
	g.w.frames.Set(extra, Frame{ScrollSpeed: 100})

	before, _ := g.w.Translation(frame)
	res := g.Step(nil, tick)
	if res.Exit {
		t.Fatalf("unexpected exit %v", res.State.Outcome)
	}
	if after, _ := g.w.Translation(frame); after != before {
		t.Errorf("frame moved from %v to %v with two frames present", before, after)
	}
	if at, _ := g.w.Translation(extra); at.X != 0 {
		t.Errorf("extra frame moved to %v", at.X)
	}
}

func TestSpawnerRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.Enemy.SpawnInterval = 0.05
	cfg.Enemy.MaxAlive = 2
	cfg.Enemy.Speed = 0
	g := newTestGame(cfg)

	for i := 0; i < 100; i++ {
		g.Step(nil, tick)
	}

	if g.w.enemies.Len() != 2 {
		t.Fatalf("enemies=%d, expected cap of 2", g.w.enemies.Len())
	}
	for _, e := range g.w.enemies.Entities() {
		at, err := g.w.global(e)
		if err != nil {
			t.Fatal(err)
		}
		if at.X != 97 || at.Y < 0 || at.Y > 25 {
			t.Errorf("enemy spawned at %v, expected x=97 and 0<=y<=25", at)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Level.Length = 300

	run := func() (core.GameState, string) {
		g := newTestGame(cfg)
		for i := 0; i < 600; i++ {
			var events []core.Event
			if i == 5 {
				events = press(core.KeyFire)
			}
			if g.Step(events, time.Second/60).Exit {
				break
			}
		}
		return g.State(), g.Buffer().String()
	}

	s1, b1 := run()
	s2, b2 := run()
	if s1 != s2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", s1, s2)
	}
	if b1 != b2 {
		t.Error("Determinism failed: buffers differ")
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New()
	res := g.Step(nil, tick)
	if res.Exit || res.State.Ticks != 0 {
		t.Errorf("Step() before Reset = %+v, expected zero result", res)
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("shooter")
	if err != nil {
		t.Fatalf("registry.Create(shooter) error = %v", err)
	}
	if g.ID() != "shooter" || g.Title() != "Side Shooter" {
		t.Errorf("registered game = %s/%s, expected shooter/Side Shooter", g.ID(), g.Title())
	}
}
