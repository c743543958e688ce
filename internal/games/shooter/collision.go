package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// collide resolves every interaction for this tick: the player hitting an
// enemy, shots hitting enemies, and shots or enemies leaving the frame.
func (g *Game) collide() {
	g.collidePlayer()
	hit := g.collideShots()
	g.cullOutside(hit)
}

func (g *Game) collidePlayer() {
	if g.w.players.Empty() || g.w.enemies.Empty() {
		return
	}
	player, _, ok := unique(g.log, g.w.players)
	if !ok {
		return
	}
	pb, err := g.w.body(player)
	if err != nil {
		g.logPlacement(player, err)
		return
	}

	for _, e := range g.w.enemies.Entities() {
		eb, err := g.w.body(e)
		if err != nil {
			g.logPlacement(e, err)
			continue
		}
		if core.Overlaps(pb, eb) {
			g.log.Info("player destroyed", "enemy", e)
			g.exit(core.OutcomeDestroyed)
			return
		}
	}
}

// collideShots despawns every shot and enemy that overlap each other. A shot
// passing through stacked enemies takes all of them, and an enemy hit by
// several shots is counted as one kill.
// It returns the entities already scheduled for removal.
func (g *Game) collideShots() map[ecs.Entity]bool {
	gone := make(map[ecs.Entity]bool)
	if g.w.shots.Empty() || g.w.enemies.Empty() {
		return gone
	}

	shots := make(map[ecs.Entity]core.Body, g.w.shots.Len())
	order := g.w.shots.Entities()
	for _, s := range order {
		b, err := g.w.body(s)
		if err != nil {
			g.logPlacement(s, err)
			continue
		}
		shots[s] = b
	}

	remove := func(e ecs.Entity) {
		if !gone[e] {
			gone[e] = true
			g.cmds.Despawn(e)
		}
	}

	for _, e := range g.w.enemies.Entities() {
		eb, err := g.w.body(e)
		if err != nil {
			g.logPlacement(e, err)
			continue
		}
		for _, s := range order {
			sb, ok := shots[s]
			if !ok || !core.Overlaps(sb, eb) {
				continue
			}
			g.log.Debug("enemy shot down", "enemy", e, "shot", s)
			if !gone[e] {
				g.kills++
				g.cue(core.CueKill)
			}
			remove(e)
			remove(s)
		}
	}
	return gone
}

// cullOutside despawns shots and enemies whose box lies entirely beyond an
// edge of the frame.
func (g *Game) cullOutside(gone map[ecs.Entity]bool) {
	if g.w.frames.Empty() || (g.w.shots.Empty() && g.w.enemies.Empty()) {
		return
	}
	_, frame, ok := g.frameBody()
	if !ok {
		return
	}
	box := frame.Box()

	cull := func(e ecs.Entity) {
		if gone[e] {
			return
		}
		b, err := g.w.body(e)
		if err != nil {
			g.logPlacement(e, err)
			return
		}
		if b.Box().OutsideOf(box) {
			g.log.Debug("despawning outside frame", "entity", e)
			g.cmds.Despawn(e)
		}
	}
	for _, e := range g.w.shots.Entities() {
		cull(e)
	}
	for _, e := range g.w.enemies.Entities() {
		cull(e)
	}
}
