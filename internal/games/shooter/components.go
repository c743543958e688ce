package shooter

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// Level is the root of everything that lives in a level.
type Level struct {
	Length float64 // World x at which the level ends
}

// Frame is the viewport scrolling through the level.
// Its size is carried by its Collider.
type Frame struct {
	ScrollSpeed float64 // Cells per second along +x
}

// Movement bits held in Player.Moving.
const (
	MovingLeft uint8 = 1 << iota
	MovingRight
	MovingUp
	MovingDown
)

// Player is the ship controlled from the keyboard.
type Player struct {
	Speed  float64 // Cells per second
	Moving uint8   // Held direction keys, see MovingLeft etc.
}

// Direction returns the unit vector for the held keys, or zero when nothing
// is held or opposing keys cancel out.
func (p Player) Direction() core.Vec2 {
	bit := func(flag uint8) float64 {
		if p.Moving&flag != 0 {
			return 1
		}
		return 0
	}
	return core.V2(
		bit(MovingRight)-bit(MovingLeft),
		bit(MovingDown)-bit(MovingUp),
	).NormalizeOrZero()
}

// Weapon fires shots from its entity's position, which sits at the muzzle
// of the player's ship.
type Weapon struct {
	Reload  core.Timer
	Trigger bool
}

// Ready reports whether the weapon has reloaded.
func (w *Weapon) Ready() bool {
	return w.Reload.Finished()
}

// Shot is a projectile moving right inside the frame.
type Shot struct {
	Speed float64 // Cells per second
}

// Enemy drifts left while it is inside the frame.
type Enemy struct {
	Speed float64 // Cells per second
}

var (
	levelType    = donburi.NewComponentType[Level]()
	frameType    = donburi.NewComponentType[Frame]()
	playerType   = donburi.NewComponentType[Player]()
	weaponType   = donburi.NewComponentType[Weapon]()
	shotType     = donburi.NewComponentType[Shot]()
	enemyType    = donburi.NewComponentType[Enemy]()
	colliderType = donburi.NewComponentType[core.Collider]()
	spriteType   = donburi.NewComponentType[core.Sprite]()
)

// world bundles the entity registry with every component store the game uses.
// Every entity carries a translation through the registry itself.
type world struct {
	*ecs.World

	levels    *ecs.Store[Level]
	frames    *ecs.Store[Frame]
	players   *ecs.Store[Player]
	weapons   *ecs.Store[Weapon]
	shots     *ecs.Store[Shot]
	enemies   *ecs.Store[Enemy]
	colliders *ecs.Store[core.Collider]
	sprites   *ecs.Store[core.Sprite]
}

func newWorld() *world {
	w := ecs.NewWorld()
	return &world{
		World:     w,
		levels:    ecs.NewStore(w, levelType, "level"),
		frames:    ecs.NewStore(w, frameType, "frame"),
		players:   ecs.NewStore(w, playerType, "player"),
		weapons:   ecs.NewStore(w, weaponType, "weapon"),
		shots:     ecs.NewStore(w, shotType, "shot"),
		enemies:   ecs.NewStore(w, enemyType, "enemy"),
		colliders: ecs.NewStore(w, colliderType, "collider"),
		sprites:   ecs.NewStore(w, spriteType, "sprite"),
	}
}

// global returns the world-space translation of e.
func (w *world) global(e ecs.Entity) (core.Vec3, error) {
	return w.GlobalTranslation(e)
}

// body returns e's collider placed at its world-space translation.
func (w *world) body(e ecs.Entity) (core.Body, error) {
	at, err := w.global(e)
	if err != nil {
		return core.Body{}, err
	}
	var c core.Collider
	if col := w.colliders.Get(e); col != nil {
		c = *col
	}
	return core.Body{Collider: c, At: at}, nil
}
