// Package geom holds the plane geometry used to trace the curve and shape the
// arrowhead. Coordinates are screen space: x to the right, y down.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in screen space.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// XY32 returns the point's coordinates as float32, the precision the
// renderers draw with.
func (p Point) XY32() (float32, float32) {
	return float32(p.X), float32(p.Y)
}

// Sub returns the offset p−o as a point.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Rotate rotates p about c by theta radians.
func Rotate(p, c Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	d := p.Sub(c)
	return Point{
		X: cos*d.X - sin*d.Y + c.X,
		Y: sin*d.X + cos*d.Y + c.Y,
	}
}

// RescaleSegment returns the segment that starts at p0 and points towards p1
// but has the given length. If p0 == p1 the direction is undefined and the
// second point has NaN coordinates.
func RescaleSegment(p0, p1 Point, length float64) (Point, Point) {
	d := p1.Sub(p0)
	n := math.Hypot(d.X, d.Y)
	if n == 0 {
		return p0, Point{X: math.NaN(), Y: math.NaN()}
	}
	return p0, Point{
		X: p0.X + d.X/n*length,
		Y: p0.Y + d.Y/n*length,
	}
}

// Lemniscate returns the point at parameter theta on the lemniscate of
// Bernoulli with half-width size, centered at c.
//
//	x = size·cos θ / (1 + sin² θ)
//	y = size·cos θ·sin θ / (1 + sin² θ)
func Lemniscate(theta, size float64, c Point) Point {
	sin, cos := math.Sincos(theta)
	den := 1 + sin*sin
	n := size * cos
	return Point{
		X: n/den + c.X,
		Y: n*sin/den + c.Y,
	}
}
