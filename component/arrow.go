package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"vecarrow/core"
	"vecarrow/parameter"
)

// Space selects the coordinate system a VecArrow target is interpreted in
type Space uint8

const (
	// SpaceLocal interprets the target in the owner's own axes; the arrow
	// rotates and translates with the owner.
	SpaceLocal Space = iota

	// SpaceGlobal interprets the target as an absolute world point; the
	// arrow is anchored at the owner but never re-rotated by it.
	SpaceGlobal
)

func (s Space) String() string {
	switch s {
	case SpaceLocal:
		return "local"
	case SpaceGlobal:
		return "global"
	}
	return "unknown"
}

// Toggle returns the other coordinate space
func (s Space) Toggle() Space {
	if s == SpaceLocal {
		return SpaceGlobal
	}
	return SpaceLocal
}

// VecArrow is a directional arrow from the owning entity's origin toward
// Target. Attach it to an entity and the arrow systems materialize and
// maintain a shaft and a tip for it; remove it and they are torn down.
type VecArrow struct {
	// Target is where the arrow points, interpreted per Space.
	// The zero vector is valid and renders nothing.
	Target mgl32.Vec3

	Space Space

	// Thickness is the authored shaft radius hint in scene units. The
	// current solver leaves the shaft at the mesh radius and does not
	// consume this field; it is kept for authoring compatibility.
	Thickness float32

	// Color of both the shaft and the tip
	Color core.Color

	// TipThickness is the cone base diameter, TipLength its axial length
	TipThickness float32
	TipLength    float32
}

// NewVecArrow builds an arrow descriptor with authored defaults
func NewVecArrow(target mgl32.Vec3, space Space) VecArrow {
	return VecArrow{
		Target:       target,
		Space:        space,
		Thickness:    parameter.ArrowThickness,
		Color:        core.ColorWhite,
		TipThickness: parameter.ArrowTipThickness,
		TipLength:    parameter.ArrowTipLength,
	}
}

func (a VecArrow) WithThickness(thickness float32) VecArrow {
	a.Thickness = thickness
	return a
}

func (a VecArrow) WithColor(color core.Color) VecArrow {
	a.Color = color
	return a
}

func (a VecArrow) WithTipSize(thickness, length float32) VecArrow {
	a.TipThickness = thickness
	a.TipLength = length
	return a
}

// ArrowParts records the two generated child entities for an owner with a
// materialized arrow. It exists iff the arrow is materialized; the owner
// exclusively owns both children.
type ArrowParts struct {
	Shaft core.Entity
	Tip   core.Entity
}

// ArrowShaft marks a generated shaft primitive and points back at its owner
type ArrowShaft struct {
	Owner core.Entity
}

// ArrowTip marks a generated tip primitive and points back at its owner
type ArrowTip struct {
	Owner core.Entity
}
