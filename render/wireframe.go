package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Segment is a wireframe line in mesh-local space
type Segment struct {
	A, B mgl32.Vec3
}

const ringSegments = 12

// Wireframe approximates a shape with line segments in its authored local
// space. Cylinders and cones are centered on the origin, axis along +Y.
func Wireframe(s Shape) []Segment {
	switch s.Kind {
	case ShapeCylinder:
		half := s.Height / 2
		segs := []Segment{{A: mgl32.Vec3{0, -half, 0}, B: mgl32.Vec3{0, half, 0}}}
		segs = append(segs, ring(s.Radius, -half)...)
		segs = append(segs, ring(s.Radius, half)...)
		return segs

	case ShapeCone:
		half := s.Height / 2
		apex := mgl32.Vec3{0, half, 0}
		segs := ring(s.Radius, -half)
		// Four slant lines from the base ring to the apex
		for i := 0; i < 4; i++ {
			a := float64(i) * math.Pi / 2
			base := mgl32.Vec3{s.Radius * float32(math.Cos(a)), -half, s.Radius * float32(math.Sin(a))}
			segs = append(segs, Segment{A: base, B: apex})
		}
		return segs

	case ShapeCuboid:
		hx, hy, hz := s.Extents[0]/2, s.Extents[1]/2, s.Extents[2]/2
		var c [8]mgl32.Vec3
		for i := 0; i < 8; i++ {
			x, y, z := hx, hy, hz
			if i&1 != 0 {
				x = -x
			}
			if i&2 != 0 {
				y = -y
			}
			if i&4 != 0 {
				z = -z
			}
			c[i] = mgl32.Vec3{x, y, z}
		}
		edges := [12][2]int{
			{0, 1}, {2, 3}, {4, 5}, {6, 7}, // X edges
			{0, 2}, {1, 3}, {4, 6}, {5, 7}, // Y edges
			{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Z edges
		}
		segs := make([]Segment, 0, 12)
		for _, e := range edges {
			segs = append(segs, Segment{A: c[e[0]], B: c[e[1]]})
		}
		return segs

	case ShapeCircle:
		return ring(s.Radius, 0)
	}

	return nil
}

// ring builds a circle of segments in the XZ plane at the given height
func ring(radius, y float32) []Segment {
	segs := make([]Segment, 0, ringSegments)
	for i := 0; i < ringSegments; i++ {
		a0 := float64(i) * 2 * math.Pi / ringSegments
		a1 := float64(i+1) * 2 * math.Pi / ringSegments
		segs = append(segs, Segment{
			A: mgl32.Vec3{radius * float32(math.Cos(a0)), y, radius * float32(math.Sin(a0))},
			B: mgl32.Vec3{radius * float32(math.Cos(a1)), y, radius * float32(math.Sin(a1))},
		})
	}
	return segs
}
