package engine

import (
	"sync"

	"vecarrow/core"
)

// AnyStore is the type-erased surface of a component store, used by the
// world for uniform entity destruction and journal flushing
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Clear()
	FlushJournal()
}

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
//
// Each store keeps per-tick journals of entities whose component appeared
// or disappeared since the last flush. Systems read them via Added and
// Removed; the world flushes all journals at the end of a tick. This gives
// lifecycle systems "just added" and "removed since last tick" semantics
// without change-detection flags on the components themselves.
type Store[T any] struct {
	mu         sync.RWMutex
	components map[core.Entity]T
	entities   []core.Entity

	added   []core.Entity
	removed []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity. First insertion is
// journaled as an addition; overwrites are not.
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
		s.added = append(s.added, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.components[e]
	return val, ok
}

// Remove deletes a component from an entity and journals the removal
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
	s.removed = append(s.removed, e)
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.components[e]
	return ok
}

// All returns all entities with this component type
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Added returns entities whose component appeared since the last journal
// flush, in insertion order
func (s *Store[T]) Added() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.added))
	copy(result, s.added)
	return result
}

// Removed returns entities whose component disappeared since the last
// journal flush. The component value is gone; only the identifier remains.
func (s *Store[T]) Removed() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.removed))
	copy(result, s.removed)
	return result
}

// FlushJournal clears the added/removed journals. Called by the world at
// the end of each tick, after every system has run.
func (s *Store[T]) FlushJournal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.added = s.added[:0]
	s.removed = s.removed[:0]
}

// Clear removes all components and journals from this store
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
	s.added = s.added[:0]
	s.removed = s.removed[:0]
}
