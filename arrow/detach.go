package arrow

import (
	"fmt"
	"time"

	"vecarrow/engine"
	"vecarrow/event"
	"vecarrow/parameter"
)

// DetachSystem tears arrows down. For every still-alive entity whose
// VecArrow was removed since the last tick it destroys the recorded shaft
// and tip (the world releases their pool handles) and drops the ArrowParts
// record. An owner without ArrowParts is a no-op: the descriptor was
// removed before it was ever materialized, or cleanup already ran.
//
// An owner destroyed outright gets no removal pass here; the world's
// DestroyEntity cascades over ArrowParts instead.
type DetachSystem struct{}

func NewDetachSystem() *DetachSystem {
	return &DetachSystem{}
}

func (s *DetachSystem) Priority() int {
	return parameter.PriorityArrowDetach
}

func (s *DetachSystem) Update(world *engine.World, dt time.Duration) {
	for _, owner := range world.Arrows.Removed() {
		parts, ok := world.Parts.Get(owner)
		if !ok {
			continue
		}

		// The recorded children must still be live; anything else means an
		// external actor broke the tracking invariant.
		if !world.Transforms.Has(parts.Shaft) || !world.Transforms.Has(parts.Tip) {
			panic(fmt.Sprintf("arrow parts out of sync: owner %d detaching but shaft %d or tip %d is already gone",
				owner, parts.Shaft, parts.Tip))
		}

		world.DestroyEntity(parts.Shaft)
		world.DestroyEntity(parts.Tip)
		world.Parts.Remove(owner)

		world.PushEvent(event.EventArrowDetached, &event.ArrowLifecyclePayload{
			Owner: owner,
			Shaft: parts.Shaft,
			Tip:   parts.Tip,
		})
	}
}
