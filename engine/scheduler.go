package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"vecarrow/event"
)

// TickScheduler drives the world on a fixed tick. Each tick it advances
// the time resource, dispatches queued events to registered handlers, runs
// every system in priority order and flushes the component journals.
//
// Demos that already own a frame loop (ebiten, tcell) call Tick directly;
// Start runs the loop on a goroutine for hosts without one.
type TickScheduler struct {
	world   *World
	timeRes *TimeResource
	eqRes   *EventQueueResource

	router       *event.Router
	tickInterval time.Duration

	frame     atomic.Int64
	tickCount atomic.Uint64
	lastTick  time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickScheduler creates a scheduler for the world. The world must carry
// TimeResource and EventQueueResource; missing core resources panic.
func NewTickScheduler(world *World, tickInterval time.Duration) *TickScheduler {
	timeRes := MustGetResource[*TimeResource](world.Resources)
	eqRes := MustGetResource[*EventQueueResource](world.Resources)

	ts := &TickScheduler{
		world:        world,
		timeRes:      timeRes,
		eqRes:        eqRes,
		router:       event.NewRouter(eqRes.Queue),
		tickInterval: tickInterval,
		lastTick:     time.Now(),
		stopChan:     make(chan struct{}),
	}

	world.SetEventMetadata(eqRes.Queue, &ts.frame)

	return ts
}

// RegisterEventHandler adds an event handler to the router, must be called
// before the first tick
func (ts *TickScheduler) RegisterEventHandler(handler event.Handler) {
	ts.router.Register(handler)
}

// Start begins the scheduler loop on a goroutine
func (ts *TickScheduler) Start() {
	if ts.running.CompareAndSwap(false, true) {
		ts.wg.Add(1)
		go ts.loop()
	}
}

// Stop halts the scheduler loop
func (ts *TickScheduler) Stop() {
	ts.stopOnce.Do(func() {
		if ts.running.CompareAndSwap(true, false) {
			close(ts.stopChan)
			ts.wg.Wait()
		}
	})
}

func (ts *TickScheduler) loop() {
	defer ts.wg.Done()

	ticker := time.NewTicker(ts.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		case <-ticker.C:
			ts.Tick()
		}
	}
}

// Tick executes one scheduler cycle
func (ts *TickScheduler) Tick() {
	now := time.Now()
	dt := now.Sub(ts.lastTick)
	ts.lastTick = now

	ts.world.RunSafe(func() {
		frame := ts.frame.Add(1)
		ts.timeRes.Update(now, dt, frame)

		// Events first, then systems, then journal flush
		ts.router.DispatchAll()
		ts.world.UpdateLocked(dt)
	})

	ts.tickCount.Add(1)
}

// TickCount returns the number of completed ticks
func (ts *TickScheduler) TickCount() uint64 {
	return ts.tickCount.Load()
}
