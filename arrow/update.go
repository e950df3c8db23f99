package arrow

import (
	"fmt"
	"time"

	"vecarrow/core"
	"vecarrow/engine"
	"vecarrow/parameter"
	"vecarrow/render"
)

// UpdateSystem refreshes materialized arrows. Every tick it recomputes both
// child transforms from the owner's current world transform and the
// descriptor's current fields, and pushes the descriptor color into both
// materials. There is no dirty tracking; recomputing unconditionally keeps
// the arrow correct under arbitrary per-tick descriptor mutation.
type UpdateSystem struct {
	pool render.Pool
}

func NewUpdateSystem(pool render.Pool) *UpdateSystem {
	return &UpdateSystem{pool: pool}
}

func (s *UpdateSystem) Priority() int {
	return parameter.PriorityArrowUpdate
}

func (s *UpdateSystem) Update(world *engine.World, dt time.Duration) {
	for _, owner := range world.Arrows.All() {
		parts, ok := world.Parts.Get(owner)
		if !ok {
			// Not yet materialized (attach runs earlier in the same tick,
			// so this only happens if attach was skipped for the entity)
			continue
		}
		desc, ok := world.Arrows.Get(owner)
		if !ok {
			continue
		}

		ot := ownerTransform(world, owner)

		// A recorded child missing its components means something outside
		// the arrow systems destroyed it. The tracking invariant is broken;
		// continuing would corrupt the rest of the update.
		if !world.Transforms.Has(parts.Shaft) || !world.Transforms.Has(parts.Tip) {
			panic(fmt.Sprintf("arrow parts out of sync: owner %d recorded shaft %d and tip %d but a child transform is gone",
				owner, parts.Shaft, parts.Tip))
		}

		world.Transforms.Set(parts.Shaft, ShaftTransform(ot, desc.Target, desc.Space))
		world.Transforms.Set(parts.Tip, TipTransform(ot, desc.Target, desc.Space, desc.TipLength, desc.TipThickness))

		s.recolor(world, owner, parts.Shaft, desc.Color)
		s.recolor(world, owner, parts.Tip, desc.Color)
	}
}

// recolor overwrites a child material from the descriptor color. A missing
// material component or a dead pool handle is the same tracking violation
// as a missing transform and fails loudly.
func (s *UpdateSystem) recolor(world *engine.World, owner, child core.Entity, color core.Color) {
	mat, ok := world.Materials.Get(child)
	if !ok {
		panic(fmt.Sprintf("arrow parts out of sync: child %d of owner %d lost its material component", child, owner))
	}
	if !s.pool.SetMaterialColor(mat.Handle, color) {
		panic(fmt.Sprintf("arrow parts out of sync: material handle %d of child %d was released out-of-band", mat.Handle, child))
	}
}
