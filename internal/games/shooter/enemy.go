package shooter

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// Spawner releases enemies just inside the right edge of the frame at a
// random row. Its interval and the enemy speed follow the difficulty curve.
type Spawner struct {
	rng        *rand.Rand
	cfg        *config.EnemyConfig
	difficulty *config.DifficultyManager
	timer      core.Timer
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.EnemyConfig, diff *config.DifficultyManager) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		difficulty: diff,
	}
	s.Reset(seed)
	return s
}

// Reset restarts the spawn timer and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.timer = core.NewTimer(seconds(s.cfg.SpawnInterval), core.TimerRepeating)
}

// Run spawns at most one enemy per tick.
func (s *Spawner) Run(g *Game, dt time.Duration) {
	if s.cfg.SpawnInterval <= 0 || g.w.frames.Empty() || g.w.levels.Empty() {
		return
	}

	interval := s.difficulty.Interval(s.cfg.SpawnInterval, g.progressSoFar())
	s.timer.Duration = seconds(interval)
	s.timer.Tick(dt)
	if !s.timer.JustFinished() {
		return
	}
	if s.cfg.MaxAlive > 0 && g.w.enemies.Len() >= s.cfg.MaxAlive {
		return
	}

	root, _, ok := unique(g.log, g.w.levels)
	if !ok {
		return
	}
	_, frame, ok := g.frameBody()
	if !ok {
		return
	}
	rootAt, err := g.w.global(root)
	if err != nil {
		g.logPlacement(root, err)
		return
	}

	sprite := enemySprite()
	ew, eh := float64(sprite.Width()), float64(sprite.Height())
	rows := int(frame.Collider.Size.Y - eh + 1)
	if rows < 1 {
		rows = 1
	}

	at := core.V3(
		frame.At.X+frame.Collider.Size.X-ew-1,
		frame.At.Y+float64(s.rng.Intn(rows)),
		0,
	)
	speed := s.difficulty.Speed(s.cfg.Speed, g.progressSoFar())

	g.log.Debug("spawning enemy", "x", at.X, "y", at.Y, "speed", speed)
	g.spawnEnemy(root, at.Sub(rootAt), speed)
}

// spawnEnemy places an enemy in level space.
func (g *Game) spawnEnemy(root ecs.Entity, local core.Vec3, speed float64) ecs.Entity {
	sprite := enemySprite()
	return g.cmds.Spawn(root, func(e ecs.Entity) {
		g.w.enemies.Set(e, Enemy{Speed: speed})
		g.w.SetTranslation(e, local)
		g.w.colliders.Set(e, core.NewCollider(float64(sprite.Width()), float64(sprite.Height())))
		g.w.sprites.Set(e, sprite)
	})
}

// driftEnemies moves enemies left while their left edge is strictly inside
// the frame's horizontal range.
func (g *Game) driftEnemies(dt time.Duration) {
	if g.w.enemies.Empty() || g.w.frames.Empty() {
		return
	}
	_, frame, ok := g.frameBody()
	if !ok {
		return
	}
	left, right := frame.At.X, frame.At.X+frame.Collider.Size.X

	for _, e := range g.w.enemies.Entities() {
		at, err := g.w.global(e)
		if err != nil {
			g.logPlacement(e, err)
			continue
		}
		if at.X <= left || at.X >= right {
			continue
		}
		g.w.Translate(e, core.V3(-g.w.enemies.Get(e).Speed*dt.Seconds(), 0, 0))
	}
}

// progressSoFar feeds the difficulty curve.
func (g *Game) progressSoFar() config.Progress {
	return config.Progress{Kills: g.kills, Ticks: g.ticks}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
