package shooter

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// spawnFrame attaches the viewport to the level root announced by
// RootSpawned. Duplicate announcements are ignored.
func (g *Game) spawnFrame() {
	root := ecs.None
	for _, ev := range g.rootSpawns.Read(g.events) {
		if ev.Kind == RootSpawned && root == ecs.None {
			root = ev.Root
		}
	}
	if root == ecs.None || !g.w.frames.Empty() {
		return
	}

	fc := g.cfg.Frame
	g.log.Info("spawning frame", "width", fc.Width, "height", fc.Height)
	g.cmds.Spawn(root, func(e ecs.Entity) {
		g.w.frames.Set(e, Frame{ScrollSpeed: fc.ScrollSpeed})
		g.w.colliders.Set(e, core.NewCollider(float64(fc.Width), float64(fc.Height)))
	})
}

// scrollFrame moves the frame through the level at a constant speed.
func (g *Game) scrollFrame(dt time.Duration) {
	if g.w.frames.Empty() {
		return
	}
	frame, f, ok := unique(g.log, g.w.frames)
	if !ok {
		return
	}
	g.w.Translate(frame, core.V3(f.ScrollSpeed*dt.Seconds(), 0, 0))
}

// trackProgress ends the level once the frame's far edge passes the level
// length and logs progress periodically.
func (g *Game) trackProgress(dt time.Duration) {
	g.progress.Tick(dt)
	if g.w.frames.Empty() || g.w.levels.Empty() {
		return
	}

	_, body, ok := g.frameBody()
	if !ok {
		return
	}
	_, level, ok := unique(g.log, g.w.levels)
	if !ok {
		return
	}

	width := body.Collider.Size.X
	far := body.Box().Right()

	if span := level.Length - width; math.Abs(span) > 1e-9 {
		pct := (far - width) * 100 / span
		g.percent = core.ClampF(pct, 0, 100)
		if g.progress.JustFinished() {
			g.log.Info("level progress", "percent", fmt.Sprintf("%.1f", pct))
		}
	}

	if far > level.Length {
		g.events.Send(LevelEvent{Kind: LevelEnd})
	}
}
