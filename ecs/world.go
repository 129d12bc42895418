package ecs

import "github.com/milk9111/duskrun/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, components, pending timers and the frame delta.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	events   EventQueue
	timers   timerQueue

	dt    float64
	frame uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e, cancels its pending timers and
// invalidates the handle. It reports whether e was alive.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	w.timers.cancelOwner(e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.list()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once with the given frame delta in seconds, then
// fires due timers and drops undrained events.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	w.dt = dt
	w.frame++
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.timers.advance(w, dt)
	w.events.flush()
}

// Delta returns the delta of the frame being updated.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame returns the number of updates run so far.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the live entities that have every listed component.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	var out []Entity
	for i, k := range kinds {
		store := w.stores[k.ID()]
		if store == nil {
			return nil
		}
		if i == 0 {
			out = store.Entities()
			continue
		}
		filtered := out[:0]
		for _, e := range out {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		out = filtered
	}
	return out
}

// First returns any entity that has the component.
func (w *World) First(kind component.Kind) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store := w.stores[kind.ID()]
	if store == nil || store.Len() == 0 {
		return 0, false
	}
	return store.denseEntities[0], true
}

// Count returns how many entities carry the component.
func (w *World) Count(kind component.Kind) int {
	if w == nil {
		return 0
	}
	return w.stores[kind.ID()].Len()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
