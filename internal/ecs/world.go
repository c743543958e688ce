// Package ecs adapts a donburi world to the lifecycle the game needs: ids
// handed out before an entity exists, parent links that outlive the parent
// for error reporting, and translations that compose with a depth.
//
// Storage, queries, the parent/child hierarchy and world positions come from
// donburi and its transform feature.
package ecs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/features/transform"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Entity is a stable identifier for an entity. The zero value is never used.
type Entity uint64

// None is the zero Entity.
const None Entity = 0

// Sentinel errors returned by uniqueness queries.
var (
	ErrNoEntity  = errors.New("ecs: no entity")
	ErrNotUnique = errors.New("ecs: entity not unique")
	ErrNoParent  = errors.New("ecs: broken parent chain")
	ErrNotAlive  = errors.New("ecs: entity not alive")
)

// node ties a donburi entity back to its stable id.
type node struct {
	id     Entity
	parent Entity
	z      float64 // Local depth; donburi transforms are 2D
}

var nodeType = donburi.NewComponentType[node]()

// World contains all live entities.
type World struct {
	dw      donburi.World
	nextID  Entity
	handles map[Entity]donburi.Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		dw:      donburi.NewWorld(),
		nextID:  1,
		handles: make(map[Entity]donburi.Entity),
	}
}

// reserve hands out a fresh id without creating the entity.
func (w *World) reserve() Entity {
	id := w.nextID
	w.nextID++
	return id
}

// Spawn creates a live entity immediately. A parent of None makes it a root.
// A dead parent leaves nothing spawned and returns None.
func (w *World) Spawn(parent Entity) Entity {
	e := w.reserve()
	if !w.activate(e, parent) {
		return None
	}
	return e
}

func (w *World) activate(e, parent Entity) bool {
	var parentEntry *donburi.Entry
	if parent != None {
		if parentEntry = w.entry(parent); parentEntry == nil {
			return false
		}
	}

	h := w.dw.Create(nodeType, transform.Transform)
	entry := w.dw.Entry(h)
	nodeType.SetValue(entry, node{id: e, parent: parent})
	transform.Transform.SetValue(entry, transform.TransformData{LocalScale: dmath.Vec2{X: 1, Y: 1}})
	w.handles[e] = h

	if parentEntry != nil {
		transform.AppendChild(parentEntry, entry, false)
	}
	return true
}

// entry returns e's donburi entry, or nil when e is not alive.
func (w *World) entry(e Entity) *donburi.Entry {
	h, ok := w.handles[e]
	if !ok || !w.dw.Valid(h) {
		return nil
	}
	return w.dw.Entry(h)
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	return w.entry(e) != nil
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.handles)
}

// Parent returns the parent e was spawned under, if any. The parent may
// have been despawned since.
func (w *World) Parent(e Entity) (Entity, bool) {
	entry := w.entry(e)
	if entry == nil {
		return None, false
	}
	p := nodeType.Get(entry).parent
	return p, p != None
}

// Children returns e's live direct children in ascending id order.
func (w *World) Children(e Entity) []Entity {
	entry := w.entry(e)
	if entry == nil {
		return nil
	}
	linked, ok := transform.GetChildren(entry)
	if !ok {
		return nil
	}

	var children []Entity
	for _, c := range linked {
		if !c.Valid() {
			continue
		}
		n := nodeType.Get(c)
		if n.parent == e && w.Alive(n.id) {
			children = append(children, n.id)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
	return children
}

// Despawn removes e and all of its components. Children are left in place;
// use DespawnRecursive to take down a subtree. Despawning a dead entity is a
// no-op.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	w.dw.Remove(w.handles[e])
	delete(w.handles, e)
}

// DespawnRecursive removes e and its whole subtree, deepest entities first.
// It returns the number of entities removed.
func (w *World) DespawnRecursive(e Entity) int {
	if !w.Alive(e) {
		return 0
	}
	n := 0
	for _, child := range w.Children(e) {
		n += w.DespawnRecursive(child)
	}
	w.Despawn(e)
	return n + 1
}

// SetTranslation places e relative to its parent.
func (w *World) SetTranslation(e Entity, t core.Vec3) {
	entry := w.entry(e)
	if entry == nil {
		return
	}
	tf := transform.Transform.Get(entry)
	tf.LocalPosition.X, tf.LocalPosition.Y = t.X, t.Y
	nodeType.Get(entry).z = t.Z
}

// Translation returns e's translation relative to its parent.
func (w *World) Translation(e Entity) (core.Vec3, bool) {
	entry := w.entry(e)
	if entry == nil {
		return core.Vec3{}, false
	}
	tf := transform.Transform.Get(entry)
	return core.V3(tf.LocalPosition.X, tf.LocalPosition.Y, nodeType.Get(entry).z), true
}

// Translate moves e by d relative to its parent.
func (w *World) Translate(e Entity, d core.Vec3) {
	if t, ok := w.Translation(e); ok {
		w.SetTranslation(e, t.Add(d))
	}
}

// GlobalTranslation composes e's translation with every ancestor's.
func (w *World) GlobalTranslation(e Entity) (core.Vec3, error) {
	entry := w.entry(e)
	if entry == nil {
		return core.Vec3{}, fmt.Errorf("%w: %d", ErrNotAlive, e)
	}

	z := 0.0
	for cur := entry; ; {
		n := nodeType.Get(cur)
		z += n.z
		if n.parent == None {
			break
		}
		if cur = w.entry(n.parent); cur == nil {
			return core.Vec3{}, fmt.Errorf("%w: %d -> %d", ErrNoParent, n.id, n.parent)
		}
	}

	at := transform.WorldPosition(entry)
	return core.V3(at.X, at.Y, z), nil
}
