// Command orbit is a windowed demo: a small cube circles the origin while
// a global-space arrow keeps pointing from it at a fixed beacon and a
// local-space arrow tracks the cube's own up axis. Tab flips every arrow's
// coordinate space to make the difference visible.
package main

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"vecarrow/arrow"
	"vecarrow/component"
	"vecarrow/core"
	"vecarrow/engine"
	"vecarrow/event"
	"vecarrow/parameter"
	"vecarrow/render"
)

const (
	screenWidth  = 640
	screenHeight = 480

	orbitRadius = 3.0
	orbitRate   = 0.6 // radians per second
	spinRate    = 1.1
)

var beacon = mgl32.Vec3{2, 0, 0}

type game struct {
	world  *engine.World
	sched  *engine.TickScheduler
	pool   *render.MemoryPool
	camera *render.Camera

	satellite core.Entity
	angle     float64
}

func newGame() *game {
	pool := render.NewMemoryPool()
	world := engine.NewWorld()
	engine.AddResource(world.Resources, &engine.TimeResource{})
	engine.AddResource(world.Resources, &engine.EventQueueResource{Queue: event.NewEventQueue()})

	arrow.Register(world, pool)

	// beacon marker
	marker := world.CreateEntity()
	markerShape := render.Circle(0.2)
	world.Transforms.Set(marker, component.FromTranslation(beacon))
	world.Meshes.Set(marker, component.Mesh{Handle: pool.AllocateMesh(markerShape), Shape: markerShape})
	world.Materials.Set(marker, component.Material{Handle: pool.AllocateMaterial(core.ColorRed)})

	// orbiting cube with both arrows: the global one chases the beacon, the
	// local one rides the cube's own axes
	satellite := world.CreateEntity()
	cubeShape := render.Cuboid(0.4, 0.4, 0.4)
	world.Transforms.Set(satellite, component.FromTranslation(mgl32.Vec3{orbitRadius, 0, 0}))
	world.Meshes.Set(satellite, component.Mesh{Handle: pool.AllocateMesh(cubeShape), Shape: cubeShape})
	world.Materials.Set(satellite, component.Material{Handle: pool.AllocateMaterial(core.ColorWhite)})
	world.Arrows.Set(satellite, component.NewVecArrow(beacon, component.SpaceGlobal).WithColor(core.ColorYellow))

	upOwner := world.CreateEntity()
	world.Transforms.Set(upOwner, component.FromTranslation(mgl32.Vec3{orbitRadius, 0, 0}))
	world.Arrows.Set(upOwner, component.NewVecArrow(mgl32.Vec3{0, 1.5, 0}, component.SpaceLocal).WithColor(core.ColorGreen))

	sched := engine.NewTickScheduler(world, parameter.DefaultTickInterval)

	camera := render.NewCamera(mgl32.Vec3{0, 5, 10}, mgl32.Vec3{0, 0, 0})
	camera.FocalLen = 60

	g := &game{
		world:     world,
		sched:     sched,
		pool:      pool,
		camera:    camera,
		satellite: satellite,
	}
	g.follower(upOwner)
	return g
}

// follower keeps the up-arrow owner on the satellite, a poor man's parent
func (g *game) follower(owner core.Entity) {
	g.world.AddSystem(&followSystem{leader: g.satellite, owner: owner})
}

type followSystem struct {
	leader core.Entity
	owner  core.Entity
}

func (s *followSystem) Priority() int { return parameter.PriorityDemoInput }

func (s *followSystem) Update(world *engine.World, dt time.Duration) {
	if t, ok := world.Transforms.Get(s.leader); ok {
		world.Transforms.Set(s.owner, t)
	}
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.angle += orbitRate * dt

	t, ok := g.world.Transforms.Get(g.satellite)
	if ok {
		t.Translation = mgl32.Vec3{
			float32(orbitRadius * math.Cos(g.angle)),
			float32(0.8 * math.Sin(2*g.angle)),
			float32(orbitRadius * math.Sin(g.angle)),
		}
		t.Rotation = mgl32.QuatRotate(float32(g.angle*spinRate), mgl32.Vec3{0, 0, 1})
		g.world.Transforms.Set(g.satellite, t)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		count := 0
		for _, e := range g.world.Arrows.All() {
			a, ok := g.world.Arrows.Get(e)
			if !ok {
				continue
			}
			a.Space = a.Space.Toggle()
			g.world.Arrows.Set(e, a)
			count++
		}
		g.world.PushEvent(event.EventSpaceToggled, event.SpaceToggledPayload{Count: count})
	}

	g.sched.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, e := range g.world.Meshes.All() {
		t, ok := g.world.Transforms.Get(e)
		if !ok {
			continue
		}
		mesh, _ := g.world.Meshes.Get(e)

		clr := color.RGBA{255, 255, 255, 255}
		if mat, ok := g.world.Materials.Get(e); ok {
			if c, ok := g.pool.MaterialColor(mat.Handle); ok {
				r, gg, b := c.RGB8()
				clr = color.RGBA{r, gg, b, 255}
			}
		}

		for _, seg := range render.Wireframe(mesh.Shape) {
			ax, ay, aok := g.camera.Project(t.Apply(seg.A), screenWidth, screenHeight, 1)
			bx, by, bok := g.camera.Project(t.Apply(seg.B), screenWidth, screenHeight, 1)
			if !aok || !bok {
				continue
			}
			vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, true)
		}
	}

	ebitenutil.DebugPrint(screen, "tab: toggle arrow coordinate space")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("vecarrow orbit")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
