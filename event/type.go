package event

// EventType represents the type of a world event
type EventType int

const (
	// EventArrowAttached signals a freshly materialized arrow
	// Trigger: AttachSystem after spawning shaft and tip
	// Payload: *ArrowLifecyclePayload
	EventArrowAttached EventType = iota

	// EventArrowDetached signals a torn-down arrow
	// Trigger: DetachSystem after destroying shaft and tip
	// Payload: *ArrowLifecyclePayload
	EventArrowDetached

	// EventSpaceToggled signals that arrow coordinate spaces flipped
	// Trigger: demo input handling
	// Payload: SpaceToggledPayload
	EventSpaceToggled
)

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
