package game

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/geom"
	"github.com/iburimskiy/lemniscate/internal/palette"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

type stroke struct {
	A, B  geom.Point
	Width float64
	Color palette.Color
}

type recorder struct {
	fills   []palette.Color
	strokes []stroke
}

func (r *recorder) Fill(c palette.Color) { r.fills = append(r.fills, c) }

func (r *recorder) StrokeLine(a, b geom.Point, width float64, c palette.Color) {
	r.strokes = append(r.strokes, stroke{a, b, width, c})
}

func hasNaN(p geom.Point) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func TestFirstFrame(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	f := d.Advance()

	if d := cmp.Diff([]geom.Point{geom.Pt(1000, 400)}, f.Points, approx); d != "" {
		t.Error(d)
	}
	if len(f.Segments) != 0 || len(f.Wings) != 0 {
		t.Errorf("got %d segments and %d wings, want none", len(f.Segments), len(f.Wings))
	}
	if got := d.Angle(); got != config.AngleStep {
		t.Errorf("got angle %v, want %v", got, config.AngleStep)
	}

	var r recorder
	f.Draw(&r)
	if d := cmp.Diff([]palette.Color{config.Background}, r.fills); d != "" {
		t.Error(d)
	}
	if len(r.strokes) != 0 {
		t.Errorf("got %d strokes, want 0", len(r.strokes))
	}
}

func TestSecondFrame(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	d.Advance()
	f := d.Advance()

	center := geom.Pt(600, 400)
	p0 := geom.Lemniscate(0, 400, center)
	p1 := geom.Lemniscate(config.AngleStep, 400, center)

	want := []Segment{{A: p0, B: p1, Color: config.Dark}}
	if d := cmp.Diff(want, f.Segments, approx); d != "" {
		t.Error(d)
	}
	if len(f.Wings) != 2 {
		t.Fatalf("got %d wings, want 2", len(f.Wings))
	}
	for _, w := range f.Wings {
		if d := cmp.Diff(p1, w.B, approx); d != "" {
			t.Errorf("wing does not end at the tip: %s", d)
		}
		if w.Color != config.Light {
			t.Errorf("got wing color %v, want %v", w.Color, config.Light)
		}
		if l := w.A.Distance(p1); math.Abs(l-config.ArrowLength) > 1e-9 {
			t.Errorf("got wing length %v, want %v", l, config.ArrowLength)
		}
	}

	// Wings sit symmetrically around the backward direction of travel.
	back := p0.Sub(p1)
	heading := math.Atan2(back.Y, back.X)
	for i, sign := range []float64{1, -1} {
		v := f.Wings[i].A.Sub(p1)
		got := math.Remainder(math.Atan2(v.Y, v.X)-heading, 2*math.Pi)
		if want := sign * math.Pi / 8; math.Abs(got-want) > 1e-9 {
			t.Errorf("wing %d at %v rad from the trail, want %v", i, got, want)
		}
	}

	var r recorder
	f.Draw(&r)
	if len(r.strokes) != 3 {
		t.Fatalf("got %d strokes, want 3", len(r.strokes))
	}
	for _, s := range r.strokes {
		if s.Width != config.LineWidth {
			t.Errorf("got width %v, want %v", s.Width, config.LineWidth)
		}
	}
}

func TestTrailIsBounded(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	var f Frame
	for i := 0; i < config.TrailLength+30; i++ {
		f = d.Advance()
	}
	if len(f.Points) != config.TrailLength {
		t.Fatalf("got %d points, want %d", len(f.Points), config.TrailLength)
	}
	if len(f.Segments) != config.TrailLength-1 {
		t.Fatalf("got %d segments, want %d", len(f.Segments), config.TrailLength-1)
	}
	for i := 1; i < len(f.Segments); i++ {
		if f.Segments[i-1].B != f.Segments[i].A {
			t.Fatalf("segments %d and %d are not joined", i-1, i)
		}
	}
	tip := f.Points[len(f.Points)-1]
	want := geom.Lemniscate(float64(config.TrailLength+29)*config.AngleStep, 400, geom.Pt(600, 400))
	if d := cmp.Diff(want, tip, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Error(d)
	}
}

func TestGradientAlongTrail(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	var f Frame
	for i := 0; i < config.TrailLength; i++ {
		f = d.Advance()
	}
	n := float64(len(f.Points))
	for i, s := range f.Segments {
		want := palette.Gradient(config.Dark, config.Mid, config.Light, float64(i)/n)
		if s.Color != want {
			t.Errorf("segment %d: got %v, want %v", i, s.Color, want)
		}
	}
	if got := f.Segments[0].Color; got != config.Dark {
		t.Errorf("oldest segment: got %v, want %v", got, config.Dark)
	}
	if got := f.Segments[len(f.Segments)-1].Color; got == config.Light {
		t.Errorf("newest segment reached the light anchor")
	}
}

func TestCoincidentTipSkipsArrow(t *testing.T) {
	p := geom.Pt(10, 10)
	f := frameFrom([]geom.Point{geom.Pt(0, 0), p, p})
	if len(f.Segments) != 2 {
		t.Errorf("got %d segments, want 2", len(f.Segments))
	}
	if len(f.Wings) != 0 {
		t.Errorf("got %d wings, want 0", len(f.Wings))
	}
	for _, s := range f.Segments {
		if hasNaN(s.A) || hasNaN(s.B) {
			t.Errorf("NaN in %v", s)
		}
	}
}

func TestRevolutionHook(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	var turns []int
	var frames []int
	d.OnRevolution = func(n int) {
		turns = append(turns, n)
		frames = append(frames, d.Frames())
	}
	for i := 0; i < 260; i++ {
		d.Advance()
	}
	// 2π / (1/20) ≈ 125.7 frames per turn.
	if diff := cmp.Diff([]int{1, 2}, turns); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]int{126, 252}, frames); diff != "" {
		t.Error(diff)
	}
}

func TestTick(t *testing.T) {
	d := NewDriver(config.WindowWidth, config.WindowHeight)
	quit := false
	q := QuitFunc(func() bool { return quit })

	for i := 0; i < 3; i++ {
		if _, ok := d.Tick(q); !ok {
			t.Fatalf("tick %d stopped early", i)
		}
	}
	quit = true
	if f, ok := d.Tick(q); ok || len(f.Points) != 0 {
		t.Errorf("got (%d points, %v) after quit", len(f.Points), ok)
	}
	if d.Frames() != 3 {
		t.Errorf("got %d frames, want 3", d.Frames())
	}
}
