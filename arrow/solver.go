package arrow

import (
	"github.com/go-gl/mathgl/mgl32"

	"vecarrow/component"
)

// OwnerTransform is the owner's world rotation and translation, the only
// fields the solver consumes. A nil owner is treated as identity, so a
// freshly spawned owner without a transform still gets a sensible arrow at
// the world origin.
type OwnerTransform struct {
	Rotation    mgl32.Quat
	Translation mgl32.Vec3
}

// ShaftTransform computes the world transform of the arrow's cylindrical
// body. The shaft mesh is a unit-height cylinder centered on the origin, so
// it sits at the midpoint of the effective vector, stretched along Y to the
// vector's length. A zero effective vector yields a zero-scale transform:
// the shaft renders nothing, and no error is raised.
func ShaftTransform(owner *OwnerTransform, target mgl32.Vec3, space component.Space) component.Transform {
	e := effectiveVector(owner, target, space)

	length := e.Len()
	if length == 0 {
		return zeroScale()
	}

	local := component.Transform{
		Rotation:    mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, e.Mul(1/length)),
		Translation: e.Mul(0.5),
		Scale:       mgl32.Vec3{1, length, 1},
	}

	return composeSelective(owner, local, space)
}

// TipTransform computes the world transform of the arrow's cone. The tip
// mesh is a unit cone; it sits at the effective vector's endpoint, scaled
// to the descriptor's tip dimensions.
func TipTransform(owner *OwnerTransform, target mgl32.Vec3, space component.Space, tipLength, tipThickness float32) component.Transform {
	e := effectiveVector(owner, target, space)

	length := e.Len()
	if length == 0 {
		return zeroScale()
	}

	local := component.Transform{
		Rotation:    mgl32.QuatBetweenVectors(mgl32.Vec3{0, 1, 0}, e.Mul(1/length)),
		Translation: e,
		Scale:       mgl32.Vec3{tipThickness, tipLength, tipThickness},
	}

	return composeSelective(owner, local, space)
}

// effectiveVector resolves the coordinate-space semantics of the target.
// Local targets already read as a vector in the owner's axes. A global
// target is an absolute world point, so the vector runs from the owner's
// current position to it.
func effectiveVector(owner *OwnerTransform, target mgl32.Vec3, space component.Space) mgl32.Vec3 {
	if space == component.SpaceGlobal && owner != nil {
		return target.Sub(owner.Translation)
	}
	return target
}

// composeSelective folds the owner's frame into a locally-computed
// transform. Global-space transforms are already oriented in world axes and
// only need the owner's translation. Local-space transforms compose as a
// true child: rotation and translation only. Non-uniform owner scale is
// deliberately never folded in; the arrow can distort under a
// non-uniformly-scaled owner, which is an accepted limitation of this
// selective composition.
func composeSelective(owner *OwnerTransform, local component.Transform, space component.Space) component.Transform {
	if owner == nil {
		return local
	}

	switch space {
	case component.SpaceGlobal:
		local.Translation = local.Translation.Add(owner.Translation)
	case component.SpaceLocal:
		local.Translation = owner.Rotation.Rotate(local.Translation).Add(owner.Translation)
		local.Rotation = owner.Rotation.Mul(local.Rotation)
	}

	return local
}

func zeroScale() component.Transform {
	return component.Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{0, 0, 0},
	}
}
