package game

import (
	"math"

	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/geom"
	"github.com/iburimskiy/lemniscate/internal/palette"
)

// Segment is one stroke of a frame.
type Segment struct {
	A, B  geom.Point
	Color palette.Color
}

// Frame is everything drawn on one tick: the gradient trail, oldest segment
// first, and the two wings of the arrowhead.
type Frame struct {
	Points   []geom.Point
	Segments []Segment
	Wings    []Segment
}

func frameFrom(pts []geom.Point) Frame {
	f := Frame{Points: pts}
	if len(pts) < 2 {
		return f
	}

	// progress is i/len(pts), so the newest segment never reaches the light
	// anchor exactly.
	f.Segments = make([]Segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		progress := float64(i) / float64(len(pts))
		f.Segments = append(f.Segments, Segment{
			A:     pts[i],
			B:     pts[i+1],
			Color: palette.Gradient(config.Dark, config.Mid, config.Light, progress),
		})
	}

	prev, tip := pts[len(pts)-2], pts[len(pts)-1]
	if tip.Distance(prev) < minArrowGap {
		return f
	}
	a, b := geom.RescaleSegment(tip, prev, config.ArrowLength)
	spread := math.Pi * config.ArrowSpread
	f.Wings = []Segment{
		{A: geom.Rotate(b, a, spread), B: tip, Color: config.Light},
		{A: geom.Rotate(b, a, -spread), B: tip, Color: config.Light},
	}
	return f
}

// Draw clears s and strokes the frame onto it.
func (f Frame) Draw(s Surface) {
	s.Fill(config.Background)
	for _, seg := range f.Segments {
		s.StrokeLine(seg.A, seg.B, config.LineWidth, seg.Color)
	}
	for _, w := range f.Wings {
		s.StrokeLine(w.A, w.B, config.LineWidth, w.Color)
	}
}
