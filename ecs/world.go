package ecs

import "github.com/milk9111/grapplerig/ecs/component"

// World owns entities, their components and the frame's event queue.
type World struct {
	gens   []generation
	alive  []bool
	free   []entityID
	count  int
	stores map[component.ComponentID]store
	events EventQueue
}

func NewWorld() *World {
	return &World{stores: map[component.ComponentID]store{}}
}

func CreateEntity(w *World) Entity {
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.gens))
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes e and all of its components. It reports false for
// handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.removeEntity(id)
	}
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() || int(e.id()) > len(w.gens) {
		return false
	}
	idx := e.id() - 1
	return w.alive[idx] && w.gens[idx] == e.generation()
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.count)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) entityFor(id entityID) Entity {
	return makeEntity(id, w.gens[id-1])
}
