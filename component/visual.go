package component

import (
	"vecarrow/render"
)

// Mesh attaches pool-allocated geometry to an entity. Shape mirrors the
// authored primitive so renderers can build wireframes without a pool
// round-trip.
type Mesh struct {
	Handle render.MeshHandle
	Shape  render.Shape
}

// Material attaches a pool-allocated material to an entity
type Material struct {
	Handle render.MaterialHandle
}
