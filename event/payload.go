package event

import (
	"vecarrow/core"
)

// ArrowLifecyclePayload carries the owner and its generated children for
// arrow attach/detach events
type ArrowLifecyclePayload struct {
	Owner core.Entity
	Shaft core.Entity
	Tip   core.Entity
}

// SpaceToggledPayload reports how many arrow descriptors were flipped
type SpaceToggledPayload struct {
	Count int
}
