// Package palette blends the anchor colors of the trail gradient.
package palette

import "image/color"

// Color is an RGB triple. Channels are kept as int so that blending outside
// [0, 1] stays visible to callers; Clamped limits them when the color is drawn.
type Color struct {
	R, G, B int
}

// RGB returns the color (r, g, b).
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp blends c1 towards c2 by t, truncating each channel toward zero.
// t is not clamped; values outside [0, 1] extrapolate.
func Lerp(c1, c2 Color, t float64) Color {
	return Color{
		R: lerp(c1.R, c2.R, t),
		G: lerp(c1.G, c2.G, t),
		B: lerp(c1.B, c2.B, t),
	}
}

func lerp(a, b int, t float64) int {
	return int(float64(a) + float64(b-a)*t)
}

// Gradient maps progress along the trail to a color: the first half blends
// dark into mid, the second half mid into light.
func Gradient(dark, mid, light Color, progress float64) Color {
	if progress < 0.5 {
		return Lerp(dark, mid, progress*2)
	}
	return Lerp(mid, light, (progress-0.5)*2)
}

// Clamped converts c to an opaque color.RGBA, clamping each channel to [0, 255].
func (c Color) Clamped() color.RGBA {
	return color.RGBA{R: clamp8(c.R), G: clamp8(c.G), B: clamp8(c.B), A: 0xff}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
