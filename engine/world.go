package engine

import (
	"github.com/lixenwraith/ember2d/component"
	"github.com/lixenwraith/ember2d/core"
)

// World owns the live-entity list and all component tables.
// Entity IDs are issued monotonically from 1 and never reused within a
// world lifetime; Reset is the only destruction operation.
//
// The live list is kept in creation order, and that order is the explicit
// draw-order policy: the render pass traverses Entities() front to back,
// so later-created entities paint on top.
type World struct {
	nextEntityID core.Entity
	entities     []core.Entity

	Transforms *Store[component.Transform]
	Sprites    *Store[component.Sprite]
	Bodies     *Store[component.Body]
}

// NewWorld creates an empty world with allocation starting at 1
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		entities:     make([]core.Entity, 0, 64),
		Transforms:   NewStore[component.Transform](),
		Sprites:      NewStore[component.Sprite](),
		Bodies:       NewStore[component.Body](),
	}
}

// CreateEntity issues a fresh identifier, appends it to the live list and
// installs a default Transform. Every live entity has a Transform from the
// moment it exists; Sprite and Body are attached by the caller as needed.
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities = append(w.entities, id)
	w.Transforms.Set(id, component.DefaultTransform())
	return id
}

// Entities returns the live-entity list in creation order.
// The slice is a copy; the caller may not retain it across a Reset.
func (w *World) Entities() []core.Entity {
	result := make([]core.Entity, len(w.entities))
	copy(result, w.entities)
	return result
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return len(w.entities)
}

// Reset clears the live list and every component table and restarts
// identifier allocation from 1. Intended for session teardown, not
// steady-state gameplay; there is no per-entity destroy.
func (w *World) Reset() {
	w.entities = w.entities[:0]
	w.nextEntityID = 1
	w.Transforms.Clear()
	w.Sprites.Clear()
	w.Bodies.Clear()
}
