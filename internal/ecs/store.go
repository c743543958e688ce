package ecs

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Store gives id-based access to one donburi component type in a World.
// Component types are declared once per package with
// donburi.NewComponentType and shared by every world.
type Store[T any] struct {
	w     *World
	name  string
	ctype *donburi.ComponentType[T]
	query *donburi.Query
}

// NewStore binds ctype to w. name labels the store in error messages.
func NewStore[T any](w *World, ctype *donburi.ComponentType[T], name string) *Store[T] {
	return &Store[T]{
		w:     w,
		name:  name,
		ctype: ctype,
		query: donburi.NewQuery(filter.Contains(ctype)),
	}
}

// Name returns the store's label used in error messages.
func (s *Store[T]) Name() string {
	return s.name
}

// Set inserts or replaces e's component. Dead entities are ignored.
func (s *Store[T]) Set(e Entity, val T) {
	entry := s.w.entry(e)
	if entry == nil {
		return
	}
	if !entry.HasComponent(s.ctype) {
		entry.AddComponent(s.ctype)
	}
	s.ctype.SetValue(entry, val)
}

// Get returns a pointer to e's component, or nil. The pointer is valid until
// the next structural change to the world.
func (s *Store[T]) Get(e Entity) *T {
	entry := s.w.entry(e)
	if entry == nil || !entry.HasComponent(s.ctype) {
		return nil
	}
	return s.ctype.Get(entry)
}

// Has checks if e has this component.
func (s *Store[T]) Has(e Entity) bool {
	entry := s.w.entry(e)
	return entry != nil && entry.HasComponent(s.ctype)
}

// Entities returns a snapshot of the entities holding this component in
// ascending id order, which is spawn order.
func (s *Store[T]) Entities() []Entity {
	var result []Entity
	s.query.Each(s.w.dw, func(entry *donburi.Entry) {
		result = append(result, nodeType.Get(entry).id)
	})
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	return s.query.Count(s.w.dw)
}

// Empty reports whether no entity holds this component.
func (s *Store[T]) Empty() bool {
	return s.Len() == 0
}

// Single returns the only entity with this component. It fails with
// ErrNoEntity or ErrNotUnique when there are zero or several.
func (s *Store[T]) Single() (Entity, *T, error) {
	switch n := s.Len(); n {
	case 0:
		return None, nil, fmt.Errorf("%w: %s", ErrNoEntity, s.name)
	case 1:
		e := s.Entities()[0]
		return e, s.Get(e), nil
	default:
		return None, nil, fmt.Errorf("%w: %d %s instances", ErrNotUnique, n, s.name)
	}
}
