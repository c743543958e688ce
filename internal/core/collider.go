package core

// Collider is an axis-aligned box attached to an entity. Offset is measured
// from the entity's transform origin.
type Collider struct {
	Size   Vec2
	Offset Vec2
}

// NewCollider creates a collider of the given size with no offset.
func NewCollider(w, h float64) Collider {
	return Collider{Size: V2(w, h)}
}

// Box returns the collider's world-space box for an entity whose effective
// translation is at.
func (c Collider) Box(at Vec3) Rect {
	min := at.XY().Add(c.Offset)
	return NewRect(min.X, min.Y, c.Size.X, c.Size.Y)
}

// Body pairs a collider with its owner's effective translation.
type Body struct {
	Collider Collider
	At       Vec3
}

// Box returns the body's world-space box.
func (b Body) Box() Rect {
	return b.Collider.Box(b.At)
}

// Overlaps reports whether two bodies collide.
//
// The test is corner containment: a and b overlap if the top-left or
// bottom-right corner of either box lies strictly inside the other. Touching
// edges never overlap. Two boxes that cross without any corner inside the
// other (a plus sign shape), or that share a boundary coordinate, are not
// reported. Gameplay is tuned against this behaviour.
func Overlaps(a, b Body) bool {
	ab, bb := a.Box(), b.Box()
	return cornerInside(ab, bb) || cornerInside(bb, ab)
}

// cornerInside reports whether r's top-left or bottom-right corner lies
// strictly inside o.
func cornerInside(r, o Rect) bool {
	return o.ContainsStrict(r.Min()) || o.ContainsStrict(r.Max())
}
