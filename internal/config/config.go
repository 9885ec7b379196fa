package config

import (
	"time"

	"github.com/iburimskiy/lemniscate/internal/palette"
)

const (
	WindowWidth  = 1200
	WindowHeight = 800
	WindowTitle  = "Lemniscate Animation"

	// Frames per second the loop is capped at.
	TPS = 60

	// Trail parameters
	TrailLength = 50
	AngleStep   = 1.0 / 20
	LineWidth   = 12

	// Arrowhead parameters
	ArrowLength = 70
	ArrowSpread = 1.0 / 8 // fraction of π each wing is rotated by

	// Revolution chime
	ChimeSampleRate = 44100
	ChimeFrequency  = 660
	ChimeDuration   = 120 * time.Millisecond
	ChimeVolume     = 0.2

	// Terminal backend ticks at the same rate as the window.
	TermFrameInterval = time.Second / TPS
)

// Colors of the trail gradient, dark blue fading to light grayish blue, on a
// white background.
var (
	Background = palette.RGB(255, 255, 255)
	Dark       = palette.RGB(0, 52, 89)
	Mid        = palette.RGB(25, 85, 140)
	Light      = palette.RGB(120, 150, 180)
)
