package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// keyBits maps movement keys to Player.Moving bits.
var keyBits = map[core.Key]uint8{
	core.KeyLeft:  MovingLeft,
	core.KeyRight: MovingRight,
	core.KeyUp:    MovingUp,
	core.KeyDown:  MovingDown,
}

// dispatchInput applies this tick's input events in order.
func (g *Game) dispatchInput(events []core.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case core.KeyPress:
			if ev.Key == core.KeyEsc {
				g.exit(core.OutcomeQuit)
				continue
			}
			g.applyKey(ev.Key, true)
		case core.KeyRelease:
			g.applyKey(ev.Key, false)
		case core.Resize:
			g.log.Debug("terminal resized", "width", ev.Width, "height", ev.Height)
		}
	}
}

func (g *Game) applyKey(k core.Key, down bool) {
	if k == core.KeyFire {
		for _, e := range g.w.weapons.Entities() {
			g.w.weapons.Get(e).Trigger = down
		}
		return
	}

	bit, ok := keyBits[k]
	if !ok || g.w.players.Empty() {
		return
	}
	_, p, ok := unique(g.log, g.w.players)
	if !ok {
		return
	}
	if down {
		p.Moving |= bit
	} else {
		p.Moving &^= bit
	}
}

// spawnPlayer places the ship and its weapon at the left of the frame,
// centered vertically.
func (g *Game) spawnPlayer() {
	if g.w.frames.Empty() || !g.w.players.Empty() {
		return
	}
	frame, body, ok := g.frameBody()
	if !ok {
		return
	}

	sprite := playerSprite()
	pw, ph := float64(sprite.Width()), float64(sprite.Height())
	y := math.Floor((body.Collider.Size.Y - ph) / 2)

	g.log.Info("spawning player")
	player := g.cmds.Spawn(frame, func(e ecs.Entity) {
		g.w.players.Set(e, Player{Speed: g.cfg.Player.Speed})
		g.w.SetTranslation(e, core.V3(g.cfg.Player.X, y, 0))
		g.w.colliders.Set(e, core.NewCollider(pw, ph))
		g.w.sprites.Set(e, sprite)
	})
	g.cmds.Spawn(player, func(e ecs.Entity) {
		g.w.weapons.Set(e, Weapon{
			Reload: core.NewTimer(g.cfg.Weapon.ReloadDuration(), core.TimerOnce),
		})
		g.w.SetTranslation(e, core.V3(pw, 0, 0))
	})
}

// movePlayer moves the ship along the held direction and keeps it inside
// the frame.
func (g *Game) movePlayer(dt time.Duration) {
	if g.w.players.Empty() {
		return
	}
	player, p, ok := unique(g.log, g.w.players)
	if !ok {
		return
	}
	_, frame, ok := g.frameBody()
	if !ok {
		return
	}
	at, ok := g.w.Translation(player)
	if !ok {
		return
	}

	step := p.Direction().Scale(p.Speed * dt.Seconds())
	at.X += step.X
	at.Y += step.Y

	var size core.Vec2
	if c := g.w.colliders.Get(player); c != nil {
		size = c.Size
	}
	bounds := frame.Collider.Size.Sub(size)
	at.X = core.ClampF(at.X, 0, bounds.X)
	at.Y = core.ClampF(at.Y, 0, bounds.Y)
	g.w.SetTranslation(player, at)
}
