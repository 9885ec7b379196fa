// Package game advances the lemniscate animation one frame at a time and
// describes each frame as a list of strokes, independent of any backend.
package game

import (
	"math"

	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/geom"
	"github.com/iburimskiy/lemniscate/internal/palette"
	"github.com/iburimskiy/lemniscate/internal/trail"
)

// Points of the arrowhead closer than this are treated as coincident and the
// arrowhead is skipped for the frame.
const minArrowGap = 1e-6

// Surface is what a backend must provide to draw a frame.
type Surface interface {
	Fill(c palette.Color)
	StrokeLine(a, b geom.Point, width float64, c palette.Color)
}

// QuitPoller reports whether the user asked to quit. It must not block.
type QuitPoller interface {
	PollQuit() bool
}

// QuitFunc adapts a function to QuitPoller.
type QuitFunc func() bool

func (f QuitFunc) PollQuit() bool { return f() }

// Driver owns the animation state: the curve angle and the trail.
type Driver struct {
	angle  float64
	frames int
	trail  *trail.Buffer
	size   float64
	center geom.Point

	// OnRevolution, if set, is called with the number of completed turns each
	// time the angle crosses a multiple of 2π.
	OnRevolution func(n int)
}

// NewDriver returns a driver for a surface of the given size. The curve is
// centered on the surface and spans two thirds of its width.
func NewDriver(width, height int) *Driver {
	return &Driver{
		trail:  trail.New(config.TrailLength),
		size:   float64(width) / 3,
		center: geom.Pt(float64(width)/2, float64(height)/2),
	}
}

// Angle returns the curve parameter the next frame will sample.
func (d *Driver) Angle() float64 { return d.angle }

// Frames returns the number of frames advanced so far.
func (d *Driver) Frames() int { return d.frames }

// Advance samples the curve at the current angle, records the point in the
// trail and returns the frame to draw. The angle then moves one step on.
func (d *Driver) Advance() Frame {
	pts := d.trail.Add(geom.Lemniscate(d.angle, d.size, d.center))
	f := frameFrom(pts)

	before := revolutions(d.angle)
	d.angle += config.AngleStep
	d.frames++
	if after := revolutions(d.angle); after > before && d.OnRevolution != nil {
		d.OnRevolution(after)
	}
	return f
}

// Tick advances one frame unless q reports a quit request, in which case ok
// is false and the state is left untouched.
func (d *Driver) Tick(q QuitPoller) (f Frame, ok bool) {
	if q.PollQuit() {
		return Frame{}, false
	}
	return d.Advance(), true
}

func revolutions(angle float64) int {
	return int(math.Floor(angle / (2 * math.Pi)))
}
