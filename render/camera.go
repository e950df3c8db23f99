package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a simple perspective look-at camera for the demo backends
type Camera struct {
	Eye      mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FocalLen float32
}

// NewCamera creates a camera at eye looking at target with Y up
func NewCamera(eye, target mgl32.Vec3) *Camera {
	return &Camera{
		Eye:      eye,
		Target:   target,
		Up:       mgl32.Vec3{0, 1, 0},
		FocalLen: 12,
	}
}

// ToView maps a world point into camera space: X right, Y up, Z forward
func (c *Camera) ToView(p mgl32.Vec3) mgl32.Vec3 {
	forward := c.Target.Sub(c.Eye).Normalize()
	right := forward.Cross(c.Up).Normalize()
	up := right.Cross(forward)

	d := p.Sub(c.Eye)
	return mgl32.Vec3{d.Dot(right), d.Dot(up), d.Dot(forward)}
}

// Project maps a world point to backend coordinates. aspectX stretches the
// horizontal axis (terminal cells are roughly half as wide as tall, so the
// terminal backend passes 2). Returns ok=false for points behind the near
// plane.
func (c *Camera) Project(p mgl32.Vec3, width, height int, aspectX float32) (x, y float32, ok bool) {
	const near = 0.1

	v := c.ToView(p)
	if v.Z() < near {
		return 0, 0, false
	}

	cx := float32(width) / 2
	cy := float32(height) / 2
	scale := c.FocalLen / v.Z()

	return cx + v.X()*scale*aspectX, cy - v.Y()*scale, true
}
