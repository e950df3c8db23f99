package render

import (
	"vecarrow/core"
)

// MeshHandle identifies a mesh allocated from a Pool
type MeshHandle uint32

// MaterialHandle identifies a material allocated from a Pool
type MaterialHandle uint32

// ShapeKind selects the primitive geometry of a mesh
type ShapeKind uint8

const (
	ShapeCylinder ShapeKind = iota
	ShapeCone
	ShapeCuboid
	ShapeCircle
)

// Shape describes authored primitive geometry. Cylinders and cones are
// centered on the origin with their axis along +Y; cuboids store full
// extents; circles lie in the XZ plane.
type Shape struct {
	Kind    ShapeKind
	Radius  float32
	Height  float32
	Extents [3]float32
}

func Cylinder(radius, height float32) Shape {
	return Shape{Kind: ShapeCylinder, Radius: radius, Height: height}
}

func Cone(radius, height float32) Shape {
	return Shape{Kind: ShapeCone, Radius: radius, Height: height}
}

func Cuboid(x, y, z float32) Shape {
	return Shape{Kind: ShapeCuboid, Extents: [3]float32{x, y, z}}
}

func Circle(radius float32) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Pool is the visual primitive store the arrow systems allocate from and
// release into. Implementations own resource lifetime and must synchronize
// access themselves; systems only write colors and hold handles.
type Pool interface {
	AllocateMesh(shape Shape) MeshHandle
	AllocateMaterial(color core.Color) MaterialHandle

	// MaterialColor reports the current color of a live material
	MaterialColor(h MaterialHandle) (core.Color, bool)

	// SetMaterialColor overwrites a material's color, returns false if the
	// handle is not live
	SetMaterialColor(h MaterialHandle, color core.Color) bool

	ReleaseMesh(h MeshHandle)
	ReleaseMaterial(h MaterialHandle)
}
