package ecs

// Commands queues structural changes so systems iterating a store are never
// invalidated by another system's spawn or despawn. Apply runs the queue in
// order at a fixed point in the tick.
type Commands struct {
	world *World
	ops   []func(w *World)
}

// NewCommands creates an empty command buffer for w.
func NewCommands(w *World) *Commands {
	return &Commands{world: w}
}

// Spawn reserves an id now and queues the entity's creation under parent.
// attach, if non-nil, runs at apply time to insert components.
func (c *Commands) Spawn(parent Entity, attach func(e Entity)) Entity {
	e := c.world.reserve()
	c.ops = append(c.ops, func(w *World) {
		// A parent that went away earlier in the same apply takes the
		// child with it.
		if !w.activate(e, parent) {
			return
		}
		if attach != nil {
			attach(e)
		}
	})
	return e
}

// Despawn queues removal of e alone.
func (c *Commands) Despawn(e Entity) {
	c.ops = append(c.ops, func(w *World) {
		w.Despawn(e)
	})
}

// DespawnRecursive queues removal of e and its subtree. The subtree is
// resolved at apply time, so children spawned earlier in the same buffer are
// included.
func (c *Commands) DespawnRecursive(e Entity) {
	c.ops = append(c.ops, func(w *World) {
		w.DespawnRecursive(e)
	})
}

// Apply runs and clears the queue.
func (c *Commands) Apply() {
	ops := c.ops
	c.ops = nil
	for _, op := range ops {
		op(c.world)
	}
}
