package main

import (
	"log"
	"os"

	"github.com/faiface/beep"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lemniscate/internal/chime"
	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/game"
	"github.com/iburimskiy/lemniscate/internal/window"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lemniscate: ")

	c, err := chime.New(beep.SampleRate(config.ChimeSampleRate), config.ChimeFrequency, config.ChimeDuration, config.ChimeVolume)
	if err != nil {
		// Non-fatal, the animation runs without sound
		log.Printf("chime disabled: %v", err)
	}
	defer c.Close()

	d := game.NewDriver(config.WindowWidth, config.WindowHeight)
	d.OnRevolution = c.Play

	if err := window.Run(d); err != nil {
		log.Printf("window: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		c.Close()
		os.Exit(1)
	}
	log.Printf("quit after %d frames", d.Frames())
}
