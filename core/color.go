package core

// Color stores linear RGBA channels in [0,1], decoupled from any backend
type Color struct {
	R, G, B, A float32
}

// Predefined colors
var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// Scale multiplies the color channels by factor, clamped to [0,1] (alpha untouched)
func (c Color) Scale(factor float32) Color {
	return Color{
		R: clamp01(c.R * factor),
		G: clamp01(c.G * factor),
		B: clamp01(c.B * factor),
		A: c.A,
	}
}

// Lerp blends toward dst: result = c*(1-t) + dst*t
func (c Color) Lerp(dst Color, t float32) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	inv := 1 - t
	return Color{
		R: c.R*inv + dst.R*t,
		G: c.G*inv + dst.G*t,
		B: c.B*inv + dst.B*t,
		A: c.A*inv + dst.A*t,
	}
}

// RGB8 converts to 8-bit channels for terminal and pixel backends
func (c Color) RGB8() (r, g, b uint8) {
	return uint8(clamp01(c.R) * 255), uint8(clamp01(c.G) * 255), uint8(clamp01(c.B) * 255)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
