package shooter

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// fireWeapons reloads every weapon and fires those that are ready with the
// trigger held. Shots belong to the frame and start at the weapon position.
func (g *Game) fireWeapons(dt time.Duration) {
	if g.w.weapons.Empty() || g.w.frames.Empty() {
		return
	}
	frame, body, ok := g.frameBody()
	if !ok {
		return
	}

	for _, e := range g.w.weapons.Entities() {
		w := g.w.weapons.Get(e)
		w.Reload.Tick(dt)
		if w.Reload.JustFinished() {
			g.log.Debug("weapon ready", "weapon", e)
		}
		if !w.Ready() || !w.Trigger {
			continue
		}

		at, err := g.w.global(e)
		if err != nil {
			g.logPlacement(e, err)
			continue
		}
		g.log.Debug("firing weapon", "weapon", e)
		g.spawnShot(frame, at.Sub(body.At))
		w.Reload.Reset()
		g.cue(core.CueFire)
	}
}

func (g *Game) spawnShot(frame ecs.Entity, local core.Vec3) {
	g.cmds.Spawn(frame, func(e ecs.Entity) {
		g.w.shots.Set(e, Shot{Speed: g.cfg.Weapon.ShotSpeed})
		g.w.SetTranslation(e, local)
		g.w.colliders.Set(e, core.NewCollider(1, 1))
		g.w.sprites.Set(e, shotSprite())
	})
}

// moveShots advances every shot to the right, relative to the frame.
func (g *Game) moveShots(dt time.Duration) {
	for _, e := range g.w.shots.Entities() {
		g.w.Translate(e, core.V3(g.w.shots.Get(e).Speed*dt.Seconds(), 0, 0))
	}
}
