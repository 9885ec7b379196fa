// Command lemniscate-term runs the animation inside the terminal.
package main

import (
	"log"

	"github.com/faiface/beep"
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/lemniscate/internal/chime"
	"github.com/iburimskiy/lemniscate/internal/config"
	"github.com/iburimskiy/lemniscate/internal/game"
	"github.com/iburimskiy/lemniscate/internal/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("lemniscate-term: ")

	ts, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	s, err := term.NewScreen(ts)
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}

	c, chimeErr := chime.New(beep.SampleRate(config.ChimeSampleRate), config.ChimeFrequency, config.ChimeDuration, config.ChimeVolume)

	d := game.NewDriver(config.WindowWidth, config.WindowHeight)
	d.OnRevolution = c.Play

	term.Run(d, s, config.TermFrameInterval)

	c.Close()
	s.Close()
	if chimeErr != nil {
		log.Printf("chime disabled: %v", chimeErr)
	}
	log.Printf("quit after %d frames", d.Frames())
}
