package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecarrow/core"
)

func TestMemoryPoolMeshLifecycle(t *testing.T) {
	pool := NewMemoryPool()

	shape := Cylinder(0.01, 1)
	h := pool.AllocateMesh(shape)
	assert.NotZero(t, h)

	got, ok := pool.MeshShape(h)
	require.True(t, ok)
	assert.Equal(t, shape, got)
	assert.Equal(t, 1, pool.MeshCount())

	pool.ReleaseMesh(h)
	_, ok = pool.MeshShape(h)
	assert.False(t, ok)
	assert.Equal(t, 0, pool.MeshCount())
}

func TestMemoryPoolMaterialLifecycle(t *testing.T) {
	pool := NewMemoryPool()

	h := pool.AllocateMaterial(core.ColorRed)
	c, ok := pool.MaterialColor(h)
	require.True(t, ok)
	assert.Equal(t, core.ColorRed, c)

	assert.True(t, pool.SetMaterialColor(h, core.ColorBlue))
	c, _ = pool.MaterialColor(h)
	assert.Equal(t, core.ColorBlue, c)

	pool.ReleaseMaterial(h)
	assert.False(t, pool.SetMaterialColor(h, core.ColorWhite), "writes to released handles must fail")
	_, ok = pool.MaterialColor(h)
	assert.False(t, ok)
}

func TestMemoryPoolHandlesAreUnique(t *testing.T) {
	pool := NewMemoryPool()

	a := pool.AllocateMesh(Cone(1, 1))
	b := pool.AllocateMesh(Cone(1, 1))
	assert.NotEqual(t, a, b)

	ma := pool.AllocateMaterial(core.ColorWhite)
	mb := pool.AllocateMaterial(core.ColorWhite)
	assert.NotEqual(t, ma, mb)
}

func TestWireframeSegmentCounts(t *testing.T) {
	// Cylinder: axis line plus two rings
	assert.Len(t, Wireframe(Cylinder(0.01, 1)), 1+2*ringSegments)

	// Cone: base ring plus four slant lines
	assert.Len(t, Wireframe(Cone(1, 1)), ringSegments+4)

	assert.Len(t, Wireframe(Cuboid(1, 1, 1)), 12)
	assert.Len(t, Wireframe(Circle(4)), ringSegments)
}

func TestWireframeConeApex(t *testing.T) {
	segs := Wireframe(Cone(1, 2))

	// Slant lines end at the apex on +Y
	apex := mgl32.Vec3{0, 1, 0}
	found := 0
	for _, s := range segs {
		if s.B == apex {
			found++
		}
	}
	assert.Equal(t, 4, found)
}

func TestWireframeCircleRadius(t *testing.T) {
	for _, s := range Wireframe(Circle(4)) {
		assert.InDelta(t, 4, s.A.Len(), 1e-4)
		assert.Zero(t, s.A.Y(), "circles lie in the XZ plane")
	}
}

func TestCameraProjectCentersTarget(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})

	x, y, ok := cam.Project(mgl32.Vec3{0, 0, 0}, 80, 24, 1)
	require.True(t, ok)
	assert.InDelta(t, 40, x, 1e-4)
	assert.InDelta(t, 12, y, 1e-4)
}

func TestCameraProjectRejectsBehindEye(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})

	_, _, ok := cam.Project(mgl32.Vec3{0, 0, 20}, 80, 24, 1)
	assert.False(t, ok, "points behind the near plane must be rejected")
}

func TestCameraProjectDirections(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})

	// Looking down -Z: world +Y maps up on screen (smaller y), world +X
	// maps right of center
	x0, y0, _ := cam.Project(mgl32.Vec3{0, 0, 0}, 80, 24, 1)
	xu, yu, _ := cam.Project(mgl32.Vec3{0, 1, 0}, 80, 24, 1)
	assert.Less(t, yu, y0)
	assert.InDelta(t, float64(x0), float64(xu), 1e-4)

	xr, _, _ := cam.Project(mgl32.Vec3{1, 0, 0}, 80, 24, 1)
	assert.Greater(t, xr, x0)
}

func TestCameraAspectStretch(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 0})

	x1, _, _ := cam.Project(mgl32.Vec3{1, 0, 0}, 80, 24, 1)
	x2, _, _ := cam.Project(mgl32.Vec3{1, 0, 0}, 80, 24, 2)

	center := float32(40)
	assert.InDelta(t, float64(2*(x1-center)), float64(x2-center), 1e-4,
		"aspectX must scale horizontal offsets linearly")
}

func TestCylinderRingHeights(t *testing.T) {
	segs := Wireframe(Cylinder(0.5, 3))
	var ys []float32
	for _, s := range segs[1:] { // skip the axis line
		ys = append(ys, s.A.Y())
	}
	for _, y := range ys {
		assert.InDelta(t, 1.5, math.Abs(float64(y)), 1e-4, "rings sit at the half heights")
	}
}
