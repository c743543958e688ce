package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Events is a broadcast queue on top of a donburi event type. Every Reader
// sees every event exactly once, regardless of how many other readers exist.
// Events survive the tick they were sent in and the following one, so a
// reader that runs before the sender in a tick still observes them next tick.
type Events[T any] struct {
	world  *World
	typ    *events.EventType[T]
	buf    []stamped[T]
	nextID uint64
	tick   uint64
}

type stamped[T any] struct {
	id   uint64
	tick uint64
	val  T
}

// Reader tracks which events one consumer has already seen.
type Reader[T any] struct {
	last uint64
}

// NewEvents creates a queue publishing through w.
func NewEvents[T any](w *World) *Events[T] {
	q := &Events[T]{world: w, typ: events.NewEventType[T]()}
	q.typ.Subscribe(w.dw, q.record)
	return q
}

func (q *Events[T]) record(_ donburi.World, v T) {
	q.nextID++
	q.buf = append(q.buf, stamped[T]{id: q.nextID, tick: q.tick, val: v})
}

// flush moves published events into the buffer, stamped with this tick.
func (q *Events[T]) flush() {
	q.typ.ProcessEvents(q.world.dw)
}

// Send queues an event.
func (q *Events[T]) Send(v T) {
	q.typ.Publish(q.world.dw, v)
}

// Update advances to the next tick and drops events older than the
// previous one. Call it once at the start of every tick.
func (q *Events[T]) Update() {
	q.flush()
	q.tick++
	kept := q.buf[:0]
	for _, ev := range q.buf {
		if ev.tick+1 >= q.tick {
			kept = append(kept, ev)
		}
	}
	q.buf = kept
}

// Len returns the number of buffered events.
func (q *Events[T]) Len() int {
	q.flush()
	return len(q.buf)
}

// Read returns the events r has not seen yet and marks them seen.
func (r *Reader[T]) Read(q *Events[T]) []T {
	q.flush()
	var out []T
	for _, ev := range q.buf {
		if ev.id > r.last {
			out = append(out, ev.val)
		}
	}
	if q.nextID > r.last {
		r.last = q.nextID
	}
	return out
}
