package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// spawnLevel creates the level root on LevelStart when none exists.
func (g *Game) spawnLevel() {
	started := false
	for _, ev := range g.levelStarts.Read(g.events) {
		if ev.Kind == LevelStart {
			started = true
		}
	}
	if !started || !g.w.levels.Empty() {
		return
	}

	g.log.Info("spawning level", "length", g.cfg.Level.Length)
	root := g.cmds.Spawn(ecs.None, func(e ecs.Entity) {
		g.w.levels.Set(e, Level{Length: g.cfg.Level.Length})
	})
	g.events.Send(LevelEvent{Kind: RootSpawned, Root: root})
}

// teardownLevel despawns the whole level on LevelEnd and stops the game.
func (g *Game) teardownLevel() {
	ended := false
	for _, ev := range g.levelEnds.Read(g.events) {
		if ev.Kind == LevelEnd {
			ended = true
		}
	}
	if !ended || g.w.levels.Empty() {
		return
	}

	g.log.Info("teardown level")
	root, _, ok := unique(g.log, g.w.levels)
	if !ok {
		return
	}
	g.cmds.DespawnRecursive(root)
	g.exit(core.OutcomeLevelComplete)
}
