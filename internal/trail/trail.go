// Package trail keeps the most recent points of the traced curve.
package trail

import "github.com/iburimskiy/lemniscate/internal/geom"

// Buffer records the last N points into a ring so the renderer can draw the
// tail of the curve. Once full, every Add overwrites the oldest point.
type Buffer struct {
	points    []geom.Point
	nextIndex int
	full      bool
}

// New returns an empty buffer holding at most capacity points.
func New(capacity int) *Buffer {
	if capacity < 1 {
		panic("trail: capacity must be positive")
	}
	return &Buffer{points: make([]geom.Point, capacity)}
}

// Add appends p, dropping the oldest point if the buffer is full, and returns
// a copy of the contents, oldest first.
func (b *Buffer) Add(p geom.Point) []geom.Point {
	b.points[b.nextIndex] = p
	b.nextIndex++
	if b.nextIndex >= len(b.points) {
		b.nextIndex = 0
		b.full = true
	}
	return b.Snapshot()
}

// Len returns the number of points held.
func (b *Buffer) Len() int {
	if b.full {
		return len(b.points)
	}
	return b.nextIndex
}

// Snapshot returns a copy of the contents in insertion order.
func (b *Buffer) Snapshot() []geom.Point {
	out := make([]geom.Point, b.Len())
	if b.full {
		// oldest point sits at nextIndex
		n := copy(out, b.points[b.nextIndex:])
		copy(out[n:], b.points[:b.nextIndex])
	} else {
		copy(out, b.points[:b.nextIndex])
	}
	return out
}
