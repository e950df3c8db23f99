package parameter

import "time"

// Event queue sizing. Size must be a power of two for mask arithmetic.
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// DefaultTickInterval is the scheduler tick used by the demos (30 Hz)
const DefaultTickInterval = time.Second / 30
