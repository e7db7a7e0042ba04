package ecs

import "github.com/TkmOhara/kero3d/ecs/component"

// World owns entities, component tables, the tick clock, the shared
// animation set, and the event queue. It is single-threaded: all systems
// run in the fixed order the scheduler was built with.
type World struct {
	entities entityStore
	storages map[component.ID]*SparseSet
	events   EventQueue

	clock      *Clock
	animations *component.AnimationSet
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{storages: make(map[component.ID]*SparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.storages {
		s.Remove(int(e.id()))
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

func (w *World) storage(id component.ID, create bool) *SparseSet {
	s, ok := w.storages[id]
	if !ok && create {
		s = &SparseSet{}
		w.storages[id] = s
	}
	return s
}

// Query returns all live entities carrying every listed component.
func (w *World) Query(ids ...component.ID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	base := w.storage(ids[0], false)
	if base == nil {
		return nil
	}
	var out []Entity
	for _, rawID := range base.IDs() {
		match := true
		for _, id := range ids[1:] {
			s := w.storage(id, false)
			if s == nil || !s.Has(rawID) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.handleFor(rawID); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns an arbitrary entity carrying the component, if any exists.
func (w *World) First(id component.ID) (Entity, bool) {
	s := w.storage(id, false)
	if s == nil || s.Len() == 0 {
		return 0, false
	}
	return w.entities.handleFor(s.IDs()[0])
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// SetClock attaches the tick clock.
func (w *World) SetClock(c *Clock) {
	w.clock = c
}

// Clock returns the attached tick clock, if any.
func (w *World) Clock() *Clock {
	return w.clock
}

// SetAnimations attaches the shared, read-only animation set.
func (w *World) SetAnimations(set *component.AnimationSet) {
	w.animations = set
}

// Animations returns the shared animation set, if any.
func (w *World) Animations() *component.AnimationSet {
	return w.animations
}
