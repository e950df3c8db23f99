// Package arrow renders directional debug arrows for entities. Attaching a
// component.VecArrow to an entity materializes a shaft and a cone tip from
// the entity's origin toward the descriptor's target, in either the
// entity's local frame or the world frame, and keeps them synchronized as
// the entity moves or the descriptor changes. Removing the descriptor tears
// the primitives down.
package arrow

import (
	"vecarrow/engine"
	"vecarrow/render"
)

// Register wires the arrow lifecycle systems into the world and records the
// visual primitive pool as a world resource so entity destruction can
// release handles. Call once during world setup.
func Register(world *engine.World, pool render.Pool) {
	engine.AddResource(world.Resources, &engine.PoolResource{Pool: pool})

	world.AddSystem(NewAttachSystem(pool))
	world.AddSystem(NewUpdateSystem(pool))
	world.AddSystem(NewDetachSystem())
}
