package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"vecarrow/component"
	"vecarrow/core"
	"vecarrow/event"
)

// System is the interface all tick-driven systems implement
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	// Global resource registry
	Resources *ResourceStore

	// Component stores (public for direct system access)
	Transforms   *Store[component.Transform]
	Visibilities *Store[component.Visibility]
	Arrows       *Store[component.VecArrow]
	Parts        *Store[component.ArrowParts]
	Meshes       *Store[component.Mesh]
	Materials    *Store[component.Material]
	Shafts       *Store[component.ArrowShaft]
	Tips         *Store[component.ArrowTip]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore

	// Direct pointers for the event hot path
	eventQueue  *event.EventQueue
	frameSource *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Transforms:   NewStore[component.Transform](),
		Visibilities: NewStore[component.Visibility](),
		Arrows:       NewStore[component.VecArrow](),
		Parts:        NewStore[component.ArrowParts](),
		Meshes:       NewStore[component.Mesh](),
		Materials:    NewStore[component.Material](),
		Shafts:       NewStore[component.ArrowShaft](),
		Tips:         NewStore[component.ArrowTip](),
		systems:      make([]System, 0),
	}

	w.allStores = []AnyStore{
		w.Transforms,
		w.Visibilities,
		w.Arrows,
		w.Parts,
		w.Meshes,
		w.Materials,
		w.Shafts,
		w.Tips,
	}

	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity.
// Generated arrow children recorded in ArrowParts are destroyed with their
// owner, and any pool-backed mesh/material handles on a destroyed entity
// are released if a PoolResource is registered.
func (w *World) DestroyEntity(e core.Entity) {
	if parts, ok := w.Parts.Get(e); ok {
		w.DestroyEntity(parts.Shaft)
		w.DestroyEntity(parts.Tip)
	}

	w.releaseVisuals(e)

	for _, store := range w.allStores {
		store.Remove(e)
	}
}

// releaseVisuals returns an entity's pool handles before its components go away
func (w *World) releaseVisuals(e core.Entity) {
	poolRes, ok := GetResource[*PoolResource](w.Resources)
	if !ok || poolRes.Pool == nil {
		return
	}
	if m, ok := w.Meshes.Get(e); ok {
		poolRes.Pool.ReleaseMesh(m.Handle)
	}
	if m, ok := w.Materials.Get(e); ok {
		poolRes.Pool.ReleaseMaterial(m.Handle)
	}
}

// HasAnyComponent checks if an entity has at least one component
func (w *World) HasAnyComponent(e core.Entity) bool {
	for _, store := range w.allStores {
		if store.Has(e) {
			return true
		}
	}
	return false
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.allStores {
		store.Clear()
	}
}

// EntityCount returns the approximate number of entities in the world,
// calculated from the highest issued ID
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return int(w.nextEntityID - 1)
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs one tick: all systems in priority order, then journal flush
func (w *World) Update(dt time.Duration) {
	w.RunSafe(func() {
		w.UpdateLocked(dt)
	})
}

// UpdateLocked runs systems assuming the caller already holds the update
// lock, then flushes the component journals so the next tick sees a fresh
// added/removed window
func (w *World) UpdateLocked(dt time.Duration) {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w, dt)
	}

	w.FlushJournals()
}

// FlushJournals clears the added/removed journals of every store
func (w *World) FlushJournals() {
	for _, store := range w.allStores {
		store.FlushJournal()
	}
}

// SetEventMetadata wires the direct pointers for PushEvent
// Called once during scheduler initialization
func (w *World) SetEventMetadata(q *event.EventQueue, f *atomic.Int64) {
	w.eventQueue = q
	w.frameSource = f
}

// PushEvent emits a world event using direct cached pointers
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil || w.frameSource == nil {
		return // Not yet initialized
	}

	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frameSource.Load(),
	})
}
