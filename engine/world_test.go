package engine

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vecarrow/component"
	"vecarrow/core"
	"vecarrow/render"
)

func TestCreateEntityIssuesUniqueIDs(t *testing.T) {
	world := NewWorld()

	a := world.CreateEntity()
	b := world.CreateEntity()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, core.EntityNone, a)
	assert.Equal(t, 2, world.EntityCount())
}

func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.Transforms.Set(e, component.NewTransform())
	world.Visibilities.Set(e, component.Visibility{Hidden: true})

	world.DestroyEntity(e)
	assert.False(t, world.HasAnyComponent(e))
}

func TestDestroyEntityCascadesOverParts(t *testing.T) {
	world := NewWorld()

	owner := world.CreateEntity()
	shaft := world.CreateEntity()
	tip := world.CreateEntity()
	world.Transforms.Set(shaft, component.NewTransform())
	world.Transforms.Set(tip, component.NewTransform())
	world.Parts.Set(owner, component.ArrowParts{Shaft: shaft, Tip: tip})

	world.DestroyEntity(owner)

	assert.False(t, world.HasAnyComponent(owner))
	assert.False(t, world.HasAnyComponent(shaft))
	assert.False(t, world.HasAnyComponent(tip))
}

func TestDestroyEntityReleasesPoolHandles(t *testing.T) {
	world := NewWorld()
	pool := render.NewMemoryPool()
	AddResource(world.Resources, &PoolResource{Pool: pool})

	e := world.CreateEntity()
	shape := render.Cuboid(1, 1, 1)
	world.Meshes.Set(e, component.Mesh{Handle: pool.AllocateMesh(shape), Shape: shape})
	world.Materials.Set(e, component.Material{Handle: pool.AllocateMaterial(core.ColorWhite)})

	world.DestroyEntity(e)

	assert.Equal(t, 0, pool.MeshCount())
	assert.Equal(t, 0, pool.MaterialCount())
}

func TestDestroyEntityWithoutPoolResource(t *testing.T) {
	// No PoolResource registered: destruction still works, handles leak to
	// the caller's pool
	world := NewWorld()
	e := world.CreateEntity()
	world.Meshes.Set(e, component.Mesh{Handle: 1})

	assert.NotPanics(t, func() { world.DestroyEntity(e) })
	assert.False(t, world.HasAnyComponent(e))
}

// orderedSystem appends its tag to a shared log when it runs
type orderedSystem struct {
	tag      string
	priority int
	log      *[]string
}

func (s *orderedSystem) Priority() int { return s.priority }

func (s *orderedSystem) Update(world *World, dt time.Duration) {
	*s.log = append(*s.log, s.tag)
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	world := NewWorld()
	var log []string

	world.AddSystem(&orderedSystem{tag: "detach", priority: 300, log: &log})
	world.AddSystem(&orderedSystem{tag: "attach", priority: 100, log: &log})
	world.AddSystem(&orderedSystem{tag: "update", priority: 200, log: &log})

	world.Update(time.Millisecond)

	assert.Equal(t, []string{"attach", "update", "detach"}, log)
}

func TestUpdateFlushesJournals(t *testing.T) {
	world := NewWorld()

	e := world.CreateEntity()
	world.Transforms.Set(e, component.FromTranslation(mgl32.Vec3{1, 0, 0}))
	require.Len(t, world.Transforms.Added(), 1)

	world.Update(time.Millisecond)

	assert.Empty(t, world.Transforms.Added(), "journals must be flushed after a tick")
}

func TestClearResetsWorld(t *testing.T) {
	world := NewWorld()
	e := world.CreateEntity()
	world.Transforms.Set(e, component.NewTransform())

	world.Clear()

	assert.Equal(t, 0, world.EntityCount())
	assert.Equal(t, 0, world.Transforms.Count())
}

func TestPushEventBeforeSchedulerIsNoop(t *testing.T) {
	world := NewWorld()
	assert.NotPanics(t, func() { world.PushEvent(0, nil) })
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()

	_, ok := GetResource[*TimeResource](rs)
	assert.False(t, ok)
	assert.Panics(t, func() { MustGetResource[*TimeResource](rs) })

	tr := &TimeResource{FrameNumber: 9}
	AddResource(rs, tr)

	got, ok := GetResource[*TimeResource](rs)
	require.True(t, ok)
	assert.Same(t, tr, got, "resources are shared by pointer")
	assert.Same(t, tr, MustGetResource[*TimeResource](rs))
}
