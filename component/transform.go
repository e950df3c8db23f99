package component

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform holds translation, rotation and non-uniform scale for an
// entity. There is no scene graph; every Transform is expressed in world
// axes and parenting is recomposed explicitly where needed.
type Transform struct {
	Rotation    mgl32.Quat
	Translation mgl32.Vec3
	Scale       mgl32.Vec3
}

// NewTransform returns the identity transform
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns an identity transform at the given position
func FromTranslation(t mgl32.Vec3) Transform {
	tr := NewTransform()
	tr.Translation = t
	return tr
}

// Apply maps a point from the transform's local axes into world axes:
// scale, then rotate, then translate.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	scaled := mgl32.Vec3{p.X() * t.Scale.X(), p.Y() * t.Scale.Y(), p.Z() * t.Scale.Z()}
	return t.Rotation.Rotate(scaled).Add(t.Translation)
}

// Visibility marks whether an entity should be drawn
type Visibility struct {
	Hidden bool
}
