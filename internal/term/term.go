// Package term draws the animation in a terminal with tcell. The logical
// window is scaled onto the cell grid; each stroke becomes a run of full
// block cells.
package term

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/game"
	"github.com/iburimskiy/lemniscate/internal/geom"
	"github.com/iburimskiy/lemniscate/internal/palette"
)

const block = '█'

// Screen adapts a tcell.Screen to game.Surface and game.QuitPoller.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	bg     tcell.Style
	done   bool

	stop      chan struct{}
	pumpDone  chan struct{}
	closeOnce sync.Once
}

// NewScreen initializes s and starts forwarding its events. The caller must
// call Close.
func NewScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.HideCursor()

	ts := &Screen{
		screen: s,
		events:   make(chan tcell.Event, 100),
		bg:       tcell.StyleDefault.Background(tcellColor(config.Background)),
		stop:     make(chan struct{}),
		pumpDone: make(chan struct{}),
	}
	go ts.pump()
	return ts, nil
}

// pump forwards events until the screen is finalized or Close is called.
func (s *Screen) pump() {
	defer close(s.pumpDone)
	for {
		ev := s.screen.PollEvent()
		select {
		case s.events <- ev:
		case <-s.stop:
			return
		}
		if ev == nil {
			return
		}
	}
}

func tcellColor(c palette.Color) tcell.Color {
	rgba := c.Clamped()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// scale returns the cell size of one logical pixel.
func (s *Screen) scale() (float64, float64) {
	w, h := s.screen.Size()
	return float64(w) / config.WindowWidth, float64(h) / config.WindowHeight
}

func (s *Screen) Fill(c palette.Color) {
	s.bg = tcell.StyleDefault.Background(tcellColor(c))
	s.screen.Fill(' ', s.bg)
}

func (s *Screen) StrokeLine(a, b geom.Point, width float64, c palette.Color) {
	sx, sy := s.scale()
	x0, y0 := a.X*sx, a.Y*sy
	x1, y1 := b.X*sx, b.Y*sy
	half := int(width * math.Min(sx, sy) / 2)
	style := s.bg.Foreground(tcellColor(c))

	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := int(math.Floor(x0 + (x1-x0)*t))
		cy := int(math.Floor(y0 + (y1-y0)*t))
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				s.set(cx+dx, cy+dy, style)
			}
		}
	}
}

func (s *Screen) set(x, y int, style tcell.Style) {
	w, h := s.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.screen.SetContent(x, y, block, nil, style)
}

// Show presents the drawn frame.
func (s *Screen) Show() { s.screen.Show() }

// PollQuit drains pending events and reports Esc, Ctrl-C, q or a closed
// event stream.
func (s *Screen) PollQuit() bool {
	for !s.done {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return false
		}
	}
	return true
}

func (s *Screen) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		s.done = true
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			s.done = true
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// Close restores the terminal and stops the event pump. It is safe to call
// more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.screen.Fini()
	})
}

// Run draws one frame per interval until a quit is requested.
func Run(d *game.Driver, s *Screen, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		f, ok := d.Tick(s)
		if !ok {
			return
		}
		f.Draw(s)
		s.Show()
		<-ticker.C
	}
}
