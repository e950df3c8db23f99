package parameter

// Authored arrow dimensions. The shaft and tip meshes are unit primitives;
// the solver stretches them per target, so only the defaults live here.
const (
	// ArrowThickness is the authored shaft radius hint. The solver does not
	// feed it into the shaft scale; the shaft keeps the mesh radius.
	ArrowThickness float32 = 0.1

	// ArrowTipThickness is the default cone base diameter
	ArrowTipThickness float32 = 0.075

	// ArrowTipLength is the default cone axial length
	ArrowTipLength float32 = 0.15

	// Shaft mesh authoring: thin unit-height cylinder
	ShaftMeshRadius float32 = 0.01
	ShaftMeshHeight float32 = 1.0

	// Tip mesh authoring: unit cone, scaled per descriptor at placement
	TipMeshRadius float32 = 1.0
	TipMeshHeight float32 = 1.0
)
