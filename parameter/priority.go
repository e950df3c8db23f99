package parameter

// System priorities, lower runs first. Attach must precede update and
// detach within a tick so a descriptor added this tick is materialized
// before it is refreshed or torn down.
const (
	PriorityDemoInput = 50
	PriorityDemoTween = 60

	PriorityArrowAttach = 100
	PriorityArrowUpdate = 200
	PriorityArrowDetach = 300
)
