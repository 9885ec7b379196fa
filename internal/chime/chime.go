// Package chime plays a short tone through the default audio device every
// time the tracer completes a turn of the curve.
package chime

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// tone is a finite sine wave that fades out linearly over its length.
type tone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	length     int
	pos        int
}

// Tone returns a streamer producing freq Hz for dur, fading to silence.
func Tone(sr beep.SampleRate, freq float64, dur time.Duration, volume float64) beep.Streamer {
	return &tone{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		length:     sr.N(dur),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.length {
			break
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sampleRate)
		fade := 1 - float64(t.pos)/float64(t.length)
		v := t.volume * fade * math.Sin(phase)
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// Chime owns the speaker. A zero Chime is silent.
type Chime struct {
	sampleRate beep.SampleRate
	freq       float64
	dur        time.Duration
	volume     float64
	ready      bool
}

// New initializes the speaker. The returned Chime is usable even when err is
// non-nil; it just stays silent.
func New(sr beep.SampleRate, freq float64, dur time.Duration, volume float64) (*Chime, error) {
	c := &Chime{sampleRate: sr, freq: freq, dur: dur, volume: volume}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("init speaker: %w", err)
	}
	c.ready = true
	return c, nil
}

// Play queues one tone. It has the shape of a revolution hook; the
// revolution number is ignored.
func (c *Chime) Play(int) {
	if c == nil || !c.ready {
		return
	}
	speaker.Play(Tone(c.sampleRate, c.freq, c.dur, c.volume))
}

// Close stops anything still playing.
func (c *Chime) Close() {
	if c == nil || !c.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	c.ready = false
}
