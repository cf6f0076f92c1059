// Package synth builds the ambient bed and sound cues as beep streamers.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Waveform maps a phase in [0, 1) to a sample in [-1, 1].
type Waveform func(phase float64) float64

var (
	Sine Waveform = func(p float64) float64 { return math.Sin(2 * math.Pi * p) }

	Square Waveform = func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	}

	// Noise ignores the phase.
	Noise Waveform = func(float64) float64 { return rand.Float64()*2 - 1 }
)

// tone plays a waveform at a fixed pitch. left counts the samples still to
// play; a negative count never runs out.
type tone struct {
	wave  Waveform
	step  float64 // phase advance per sample
	phase float64
	left  int
}

// NewTone plays wave at freq for d. A zero d plays forever.
func NewTone(wave Waveform, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	left := -1
	if d > 0 {
		left = rate.N(d)
	}
	return &tone{wave: wave, step: freq / float64(rate), left: left}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.left == 0 {
			return i, i > 0
		}
		v := t.wave(t.phase)
		samples[i] = [2]float64{v, v}

		_, t.phase = math.Modf(t.phase + t.step)
		if t.left > 0 {
			t.left--
		}
	}
	return len(samples), true
}

func (*tone) Err() error { return nil }

// scaled multiplies s by a linear factor. Zero or less mutes it.
func scaled(s beep.Streamer, factor float64) beep.Streamer {
	if factor < 0 {
		factor = 0
	}
	return &effects.Gain{Streamer: s, Gain: factor - 1}
}
