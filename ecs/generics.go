package ecs

import "github.com/TkmOhara/kero3d/ecs/component"

// Add attaches a component value to an entity, replacing any existing one.
func Add[T any](w *World, e Entity, k component.Kind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.storage(k.ID(), true).Set(int(e.id()), v)
	return nil
}

// Get returns a mutable reference to an entity's component.
func Get[T any](w *World, e Entity, k component.Kind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	s := w.storage(k.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.Get(int(e.id())).(*T)
	return v, ok
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, k component.Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := w.storage(k.ID(), false)
	return s != nil && s.Has(int(e.id()))
}

// Remove detaches the component from the entity.
func Remove[T any](w *World, e Entity, k component.Kind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	s := w.storage(k.ID(), false)
	return s != nil && s.Remove(int(e.id()))
}

// ForEach visits every live entity carrying the component. The visited set
// is snapshotted first so callbacks may add or remove components.
func ForEach[T any](w *World, k component.Kind[T], fn func(Entity, *T)) {
	s := w.storage(k.ID(), false)
	if s == nil || fn == nil {
		return
	}
	ids := append([]int(nil), s.IDs()...)
	for _, rawID := range ids {
		e, ok := w.entities.handleFor(rawID)
		if !ok {
			continue
		}
		if v, ok := s.Get(rawID).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.Kind[A], kb component.Kind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}
