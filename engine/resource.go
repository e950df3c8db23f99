package engine

import (
	"reflect"
	"sync"
	"time"

	"vecarrow/event"
	"vecarrow/render"
)

// ResourceStore is a thread-safe container for global world resources.
// It lets systems access shared data (time, pool, event queue) without
// coupling to the scheduler.
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or updates a resource in the store.
// Pointer types are recommended so systems observe in-place updates.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// Useful for core resources (time, events) that must exist
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("required resource not found: " + reflect.TypeOf(target).String())
	}
	return res
}

// --- Core Resources ---

// TimeResource wraps time data for systems
// Updated by the TickScheduler at the start of each tick
type TimeResource struct {
	// Now is the wall-clock time of the current tick
	Now time.Time

	// DeltaTime is the duration since the last tick
	DeltaTime time.Duration

	// FrameNumber is the current tick count
	FrameNumber int64
}

// Update modifies TimeResource fields in-place (zero allocation)
// Must be called under the world update lock
func (tr *TimeResource) Update(now time.Time, deltaTime time.Duration, frameNumber int64) {
	tr.Now = now
	tr.DeltaTime = deltaTime
	tr.FrameNumber = frameNumber
}

// EventQueueResource wraps the event queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// PoolResource wraps the visual primitive pool the arrow systems allocate
// from. The world releases handles into it when entities are destroyed.
type PoolResource struct {
	Pool render.Pool
}
