package engine

import "github.com/lixenwraith/ember2d/core"

// Store is a generic table for a single component type T.
// Sparse set pattern: a map for lookup plus an insertion-ordered entity
// slice for iteration. The world and all stores belong to one control
// goroutine for the process lifetime, so no locking is needed.
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity
}

// NewStore creates an empty component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or replaces the component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity.
// Callers must branch on ok before using the value; absence is an
// expected state for optional components, never an error.
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether the entity holds this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component from an entity, if present.
// The entity slice is compacted in place rather than swap-removed:
// insertion order is part of the store's contract.
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns the entities holding this component, in insertion order.
// The slice is a copy; mutating it does not affect the store.
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns the number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes every component from the store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
