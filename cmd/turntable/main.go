// Command turntable is an interactive demo scene: a cube carrying four
// local-space arrows (X red, Y green, Z blue, XY yellow) on a circular
// base, drawn as a terminal wireframe. The cube can be moved and rolled to
// random orientations, the camera orbits, and the arrows follow.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"vecarrow/arrow"
	"vecarrow/component"
	"vecarrow/core"
	"vecarrow/engine"
	"vecarrow/event"
	"vecarrow/parameter"
	"vecarrow/render"
	"vecarrow/render/terminal"
)

const (
	moveSpeed    = 0.1
	orbitSpeed   = 0.05
	rollDuration = 200 * time.Millisecond
)

var helpLines = []string{
	"space roll cube   tab toggle coordinate space",
	"w/s a/d q/e move cube   o/p orbit camera   esc quit",
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal init: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	core.SetCrashCleanup(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()

	pool := render.NewMemoryPool()
	world := engine.NewWorld()
	engine.AddResource(world.Resources, &engine.TimeResource{})
	engine.AddResource(world.Resources, &engine.EventQueueResource{Queue: event.NewEventQueue()})

	arrow.Register(world, pool)

	scene := buildScene(world, pool)

	follow := &followSystem{cube: scene.cube, owners: scene.arrowOwners}
	world.AddSystem(follow)
	roll := &rollSystem{cube: scene.cube}
	world.AddSystem(roll)

	sched := engine.NewTickScheduler(world, parameter.DefaultTickInterval)

	hud := &hudHandler{space: component.SpaceLocal}
	sched.RegisterEventHandler(hud)

	camera := render.NewCamera(mgl32.Vec3{-2.5, 4.5, 9.0}, mgl32.Vec3{0, 0, 0})
	renderer := terminal.NewRenderer(screen, camera)

	events := make(chan tcell.Event, 16)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(parameter.DefaultTickInterval)
	defer ticker.Stop()

	var yaw float32
	for {
		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
				return
			case key.Key() == tcell.KeyTab:
				count := toggleSpaces(world)
				world.PushEvent(event.EventSpaceToggled, event.SpaceToggledPayload{Count: count})
			case key.Rune() == ' ':
				roll.start(world, randomOrientation())
			case key.Rune() == 'o':
				yaw -= orbitSpeed
			case key.Rune() == 'p':
				yaw += orbitSpeed
			default:
				moveCube(world, scene.cube, key.Rune())
			}

		case <-ticker.C:
			camera.Eye = orbitEye(yaw)
			sched.Tick()
			renderer.SetStatus(append(hud.lines(), helpLines...))
			renderer.Draw(world)
		}
	}
}

type sceneEntities struct {
	cube        core.Entity
	arrowOwners []core.Entity
}

// buildScene spawns the base, the cube and the four arrow owners
func buildScene(world *engine.World, pool *render.MemoryPool) sceneEntities {
	base := world.CreateEntity()
	world.Transforms.Set(base, component.FromTranslation(mgl32.Vec3{0, -1, 0}))
	baseShape := render.Circle(4)
	world.Meshes.Set(base, component.Mesh{Handle: pool.AllocateMesh(baseShape), Shape: baseShape})
	world.Materials.Set(base, component.Material{Handle: pool.AllocateMaterial(core.ColorWhite.Scale(0.4))})

	cube := world.CreateEntity()
	world.Transforms.Set(cube, component.FromTranslation(mgl32.Vec3{0, 1, 0}))
	cubeShape := render.Cuboid(1, 1, 1)
	world.Meshes.Set(cube, component.Mesh{Handle: pool.AllocateMesh(cubeShape), Shape: cubeShape})
	world.Materials.Set(cube, component.Material{Handle: pool.AllocateMaterial(core.Color{R: 0.49, G: 0.56, B: 1, A: 1})})

	arrows := []component.VecArrow{
		component.NewVecArrow(mgl32.Vec3{2, 0, 0}, component.SpaceLocal).WithColor(core.ColorRed),
		component.NewVecArrow(mgl32.Vec3{0, 2, 0}, component.SpaceLocal).WithColor(core.ColorGreen),
		component.NewVecArrow(mgl32.Vec3{0, 0, 2}, component.SpaceLocal).WithColor(core.ColorBlue),
		component.NewVecArrow(mgl32.Vec3{2, 2, 0}, component.SpaceLocal).WithColor(core.ColorYellow),
	}

	owners := make([]core.Entity, 0, len(arrows))
	for _, a := range arrows {
		owner := world.CreateEntity()
		world.Transforms.Set(owner, component.FromTranslation(mgl32.Vec3{0, 1, 0}))
		world.Arrows.Set(owner, a)
		owners = append(owners, owner)
	}

	return sceneEntities{cube: cube, arrowOwners: owners}
}

// followSystem keeps the arrow owners glued to the cube's transform,
// standing in for scene-graph parenting
type followSystem struct {
	cube   core.Entity
	owners []core.Entity
}

func (s *followSystem) Priority() int { return parameter.PriorityDemoInput }

func (s *followSystem) Update(world *engine.World, dt time.Duration) {
	t, ok := world.Transforms.Get(s.cube)
	if !ok {
		return
	}
	for _, owner := range s.owners {
		world.Transforms.Set(owner, t)
	}
}

// rollSystem slerps the cube toward a random orientation with a quadratic
// ease-in-out over rollDuration
type rollSystem struct {
	cube    core.Entity
	from    mgl32.Quat
	to      mgl32.Quat
	elapsed time.Duration
	active  bool
}

func (s *rollSystem) Priority() int { return parameter.PriorityDemoTween }

func (s *rollSystem) start(world *engine.World, dest mgl32.Quat) {
	t, ok := world.Transforms.Get(s.cube)
	if !ok {
		return
	}
	s.from = t.Rotation
	s.to = dest
	s.elapsed = 0
	s.active = true
}

func (s *rollSystem) Update(world *engine.World, dt time.Duration) {
	if !s.active {
		return
	}
	s.elapsed += dt
	progress := float32(s.elapsed) / float32(rollDuration)
	if progress >= 1 {
		progress = 1
		s.active = false
	}

	t, ok := world.Transforms.Get(s.cube)
	if !ok {
		s.active = false
		return
	}
	t.Rotation = mgl32.QuatSlerp(s.from, s.to, easeInOutQuad(progress))
	world.Transforms.Set(s.cube, t)
}

func easeInOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	f := -2*t + 2
	return 1 - f*f/2
}

// randomOrientation draws a uniformly distributed rotation
func randomOrientation() mgl32.Quat {
	u := rand.Float64()
	v := rand.Float64()
	w := rand.Float64()
	sqrtU := math.Sqrt(u)
	sqrtNegU := math.Sqrt(1 - u)

	return mgl32.Quat{
		W: float32(sqrtU * math.Cos(2*math.Pi*w)),
		V: mgl32.Vec3{
			float32(sqrtNegU * math.Sin(2*math.Pi*v)),
			float32(sqrtNegU * math.Cos(2*math.Pi*v)),
			float32(sqrtU * math.Sin(2*math.Pi*w)),
		},
	}
}

func toggleSpaces(world *engine.World) int {
	count := 0
	for _, e := range world.Arrows.All() {
		a, ok := world.Arrows.Get(e)
		if !ok {
			continue
		}
		a.Space = a.Space.Toggle()
		world.Arrows.Set(e, a)
		count++
	}
	return count
}

func moveCube(world *engine.World, cube core.Entity, r rune) {
	var delta mgl32.Vec3
	switch r {
	case 'w':
		delta = mgl32.Vec3{moveSpeed, 0, 0}
	case 's':
		delta = mgl32.Vec3{-moveSpeed, 0, 0}
	case 'a':
		delta = mgl32.Vec3{0, 0, -moveSpeed}
	case 'd':
		delta = mgl32.Vec3{0, 0, moveSpeed}
	case 'q':
		delta = mgl32.Vec3{0, moveSpeed, 0}
	case 'e':
		delta = mgl32.Vec3{0, -moveSpeed, 0}
	default:
		return
	}
	t, ok := world.Transforms.Get(cube)
	if !ok {
		return
	}
	t.Translation = t.Translation.Add(delta)
	world.Transforms.Set(cube, t)
}

// orbitEye rotates the camera's home position around the Y axis
func orbitEye(yaw float32) mgl32.Vec3 {
	home := mgl32.Vec3{-2.5, 4.5, 9.0}
	sin, cos := float32(math.Sin(float64(yaw))), float32(math.Cos(float64(yaw)))
	return mgl32.Vec3{
		home.X()*cos + home.Z()*sin,
		home.Y(),
		-home.X()*sin + home.Z()*cos,
	}
}

// hudHandler listens for lifecycle events and keeps the status line fresh
type hudHandler struct {
	space    component.Space
	attached int
}

func (h *hudHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventArrowAttached, event.EventArrowDetached, event.EventSpaceToggled}
}

func (h *hudHandler) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventArrowAttached:
		h.attached++
	case event.EventArrowDetached:
		h.attached--
	case event.EventSpaceToggled:
		h.space = h.space.Toggle()
	}
}

func (h *hudHandler) lines() []string {
	return []string{fmt.Sprintf("arrows: %d   space: %s", h.attached, h.space)}
}
