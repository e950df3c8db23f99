// Package terminal draws the world as a colored wireframe projection on a
// tcell screen. It is a debug backend: geometry comes from the authored
// shapes mirrored on Mesh components, colors from the primitive pool.
package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"vecarrow/core"
	"vecarrow/engine"
	"vecarrow/render"
)

// terminal cells are roughly twice as tall as wide
const cellAspectX = 2.0

type Renderer struct {
	screen tcell.Screen
	camera *render.Camera
	status []string
}

func NewRenderer(screen tcell.Screen, camera *render.Camera) *Renderer {
	return &Renderer{screen: screen, camera: camera}
}

// Camera exposes the camera for input-driven orbiting
func (r *Renderer) Camera() *render.Camera {
	return r.camera
}

// SetStatus replaces the HUD lines drawn in the top-left corner
func (r *Renderer) SetStatus(lines []string) {
	r.status = lines
}

// Draw renders every visible mesh-bearing entity and the HUD, then flips
// the screen
func (r *Renderer) Draw(world *engine.World) {
	r.screen.Clear()
	width, height := r.screen.Size()

	poolRes, _ := engine.GetResource[*engine.PoolResource](world.Resources)

	for _, e := range world.Meshes.All() {
		if r.hidden(world, e) {
			continue
		}
		t, ok := world.Transforms.Get(e)
		if !ok {
			continue
		}
		mesh, _ := world.Meshes.Get(e)

		color := core.ColorWhite
		if mat, ok := world.Materials.Get(e); ok && poolRes != nil && poolRes.Pool != nil {
			if c, ok := poolRes.Pool.MaterialColor(mat.Handle); ok {
				color = c
			}
		}

		style := tcell.StyleDefault.Foreground(rgbColor(color))
		for _, seg := range render.Wireframe(mesh.Shape) {
			r.line(t.Apply(seg.A), t.Apply(seg.B), style, width, height)
		}
	}

	for i, line := range r.status {
		r.text(1, 1+i, line, tcell.StyleDefault)
	}

	r.screen.Show()
}

// hidden reports whether the entity, or the owner of a generated arrow
// part, is flagged invisible
func (r *Renderer) hidden(world *engine.World, e core.Entity) bool {
	if v, ok := world.Visibilities.Get(e); ok && v.Hidden {
		return true
	}
	owner := core.EntityNone
	if s, ok := world.Shafts.Get(e); ok {
		owner = s.Owner
	} else if t, ok := world.Tips.Get(e); ok {
		owner = t.Owner
	}
	if owner != core.EntityNone {
		if v, ok := world.Visibilities.Get(owner); ok && v.Hidden {
			return true
		}
	}
	return false
}

// line projects a world-space segment and rasterizes it onto cells
func (r *Renderer) line(a, b mgl32.Vec3, style tcell.Style, width, height int) {
	ax, ay, aok := r.camera.Project(a, width, height, cellAspectX)
	bx, by, bok := r.camera.Project(b, width, height, cellAspectX)
	if !aok || !bok {
		// No near-plane clipping in the debug backend; drop the segment
		return
	}

	x0, y0 := int(ax+0.5), int(ay+0.5)
	x1, y1 := int(bx+0.5), int(by+0.5)

	glyph := slopeGlyph(x1-x0, y1-y0)

	// Bresenham over cells
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if x0 >= 0 && x0 < width && y0 >= 0 && y0 < height {
			r.screen.SetContent(x0, y0, glyph, nil, style)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// slopeGlyph picks an ASCII stroke matching the projected line direction
func slopeGlyph(dx, dy int) rune {
	adx, ady := abs(dx), abs(dy)
	switch {
	case adx > 2*ady:
		return '-'
	case ady > 2*adx:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func rgbColor(c core.Color) tcell.Color {
	cr, cg, cb := c.RGB8()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
