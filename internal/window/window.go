// Package window runs the animation in a desktop window using Ebitengine.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/game"
	"github.com/iburimskiy/lemniscate/internal/geom"
	"github.com/iburimskiy/lemniscate/internal/palette"
)

// imageSurface draws strokes onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Fill(c palette.Color) {
	s.img.Fill(c.Clamped())
}

func (s imageSurface) StrokeLine(a, b geom.Point, width float64, c palette.Color) {
	x0, y0 := a.XY32()
	x1, y1 := b.XY32()
	vector.StrokeLine(s.img, x0, y0, x1, y1, float32(width), c.Clamped(), true)
}

// quitRequested reports a window close request or Esc/Q.
func quitRequested() bool {
	return ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

type animation struct {
	driver *game.Driver
	quit   game.QuitPoller
	frame  game.Frame
}

func (a *animation) Update() error {
	f, ok := a.driver.Tick(a.quit)
	if !ok {
		return ebiten.Termination
	}
	a.frame = f
	return nil
}

func (a *animation) Draw(screen *ebiten.Image) {
	a.frame.Draw(imageSurface{img: screen})
}

func (a *animation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Run opens the window and blocks until the user quits. Closing the window
// returns nil.
func Run(d *game.Driver) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	a := &animation{driver: d, quit: game.QuitFunc(quitRequested)}
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
