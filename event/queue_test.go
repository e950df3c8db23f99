package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecarrow/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()

	q.Push(GameEvent{Type: EventArrowAttached, Frame: 1})
	q.Push(GameEvent{Type: EventSpaceToggled, Frame: 2})
	q.Push(GameEvent{Type: EventArrowDetached, Frame: 3})
	assert.Equal(t, 3, q.Len())

	events := q.Consume()
	require.Len(t, events, 3)
	assert.Equal(t, EventArrowAttached, events[0].Type)
	assert.Equal(t, EventSpaceToggled, events[1].Type)
	assert.Equal(t, EventArrowDetached, events[2].Type)

	assert.Nil(t, q.Consume(), "second consume finds nothing")
	assert.Equal(t, 0, q.Len())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()

	total := int(parameter.EventQueueSize) + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventArrowAttached, Frame: int64(i)})
	}

	events := q.Consume()
	require.Len(t, events, int(parameter.EventQueueSize))
	assert.Equal(t, int64(10), events[0].Frame, "oldest events are overwritten")
	assert.Equal(t, int64(total-1), events[len(events)-1].Frame)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()

	const producers = 8
	const perProducer = 16

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{Type: EventArrowAttached})
			}
		}()
	}
	wg.Wait()

	events := q.Consume()
	assert.Len(t, events, producers*perProducer)
}

func TestRouterDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var attached, detached []GameEvent
	r.Register(&typedHandler{
		types: []EventType{EventArrowAttached},
		fn:    func(ev GameEvent) { attached = append(attached, ev) },
	})
	r.Register(&typedHandler{
		types: []EventType{EventArrowDetached},
		fn:    func(ev GameEvent) { detached = append(detached, ev) },
	})

	q.Push(GameEvent{Type: EventArrowAttached, Frame: 1})
	q.Push(GameEvent{Type: EventArrowDetached, Frame: 2})
	q.Push(GameEvent{Type: EventSpaceToggled, Frame: 3}) // no handler, dropped

	r.DispatchAll()

	require.Len(t, attached, 1)
	assert.Equal(t, int64(1), attached[0].Frame)
	require.Len(t, detached, 1)
	assert.Equal(t, int64(2), detached[0].Frame)
}

func TestRouterMultipleHandlersInOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter(q)

	var order []string
	r.Register(&typedHandler{
		types: []EventType{EventSpaceToggled},
		fn:    func(GameEvent) { order = append(order, "first") },
	})
	r.Register(&typedHandler{
		types: []EventType{EventSpaceToggled},
		fn:    func(GameEvent) { order = append(order, "second") },
	})

	assert.True(t, r.HasHandlers(EventSpaceToggled))
	assert.Equal(t, 2, r.HandlerCount(EventSpaceToggled))
	assert.False(t, r.HasHandlers(EventArrowAttached))

	q.Push(GameEvent{Type: EventSpaceToggled})
	r.DispatchAll()

	assert.Equal(t, []string{"first", "second"}, order)
}

type typedHandler struct {
	types []EventType
	fn    func(GameEvent)
}

func (h *typedHandler) EventTypes() []EventType { return h.types }
func (h *typedHandler) HandleEvent(ev GameEvent) {
	h.fn(ev)
}
