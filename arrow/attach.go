package arrow

import (
	"time"

	"vecarrow/component"
	"vecarrow/core"
	"vecarrow/engine"
	"vecarrow/event"
	"vecarrow/parameter"
	"vecarrow/render"
)

// AttachSystem materializes arrows. For every entity whose VecArrow
// appeared since the last tick it spawns a shaft (thin unit cylinder) and a
// tip (unit cone) with solver-computed transforms and the descriptor's
// color, and records both child ids in an ArrowParts on the owner.
type AttachSystem struct {
	pool render.Pool
}

func NewAttachSystem(pool render.Pool) *AttachSystem {
	return &AttachSystem{pool: pool}
}

func (s *AttachSystem) Priority() int {
	return parameter.PriorityArrowAttach
}

func (s *AttachSystem) Update(world *engine.World, dt time.Duration) {
	for _, owner := range world.Arrows.Added() {
		desc, ok := world.Arrows.Get(owner)
		if !ok {
			// Added and removed within the same tick window, nothing to build
			continue
		}
		if world.Parts.Has(owner) {
			// Already materialized, idempotent re-entry
			continue
		}

		// Ensure the owner carries a spatial transform and a visibility
		// flag without overwriting existing ones
		if !world.Transforms.Has(owner) {
			world.Transforms.Set(owner, component.NewTransform())
		}
		if !world.Visibilities.Has(owner) {
			world.Visibilities.Set(owner, component.Visibility{})
		}

		ot := ownerTransform(world, owner)

		shaft := world.CreateEntity()
		world.Transforms.Set(shaft, ShaftTransform(ot, desc.Target, desc.Space))
		world.Meshes.Set(shaft, component.Mesh{
			Handle: s.pool.AllocateMesh(render.Cylinder(parameter.ShaftMeshRadius, parameter.ShaftMeshHeight)),
			Shape:  render.Cylinder(parameter.ShaftMeshRadius, parameter.ShaftMeshHeight),
		})
		world.Materials.Set(shaft, component.Material{Handle: s.pool.AllocateMaterial(desc.Color)})
		world.Shafts.Set(shaft, component.ArrowShaft{Owner: owner})

		tip := world.CreateEntity()
		world.Transforms.Set(tip, TipTransform(ot, desc.Target, desc.Space, desc.TipLength, desc.TipThickness))
		world.Meshes.Set(tip, component.Mesh{
			Handle: s.pool.AllocateMesh(render.Cone(parameter.TipMeshRadius, parameter.TipMeshHeight)),
			Shape:  render.Cone(parameter.TipMeshRadius, parameter.TipMeshHeight),
		})
		world.Materials.Set(tip, component.Material{Handle: s.pool.AllocateMaterial(desc.Color)})
		world.Tips.Set(tip, component.ArrowTip{Owner: owner})

		world.Parts.Set(owner, component.ArrowParts{Shaft: shaft, Tip: tip})

		world.PushEvent(event.EventArrowAttached, &event.ArrowLifecyclePayload{
			Owner: owner,
			Shaft: shaft,
			Tip:   tip,
		})
	}
}

// ownerTransform reads the owner's current world transform for the solver,
// nil when the owner has none
func ownerTransform(world *engine.World, e core.Entity) *OwnerTransform {
	t, ok := world.Transforms.Get(e)
	if !ok {
		return nil
	}
	return &OwnerTransform{Rotation: t.Rotation, Translation: t.Translation}
}
