package synth

import (
	"math"

	"github.com/gopxl/beep"
)

// Lowpass is a one-pole low-pass filter.
type Lowpass struct {
	Streamer beep.Streamer
	alpha    float64
	y        [2]float64
}

// NewLowpass filters s with the given cutoff frequency in Hz.
func NewLowpass(s beep.Streamer, cutoff float64, rate beep.SampleRate) *Lowpass {
	dt := 1 / float64(rate)
	rc := 1 / (2 * math.Pi * cutoff)
	return &Lowpass{Streamer: s, alpha: dt / (rc + dt)}
}

func (l *Lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			l.y[c] += l.alpha * (samples[i][c] - l.y[c])
			samples[i][c] = l.y[c]
		}
	}
	return n, ok
}

func (l *Lowpass) Err() error { return l.Streamer.Err() }

// Tremolo modulates amplitude with a slow sine. Depth 0 leaves the signal
// untouched; depth 1 swings it down to silence.
type Tremolo struct {
	Streamer beep.Streamer
	depth    float64
	step     float64
	phase    float64
}

func NewTremolo(s beep.Streamer, rateHz, depth float64, rate beep.SampleRate) *Tremolo {
	return &Tremolo{Streamer: s, depth: depth, step: rateHz / float64(rate)}
}

func (t *Tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - t.depth*(0.5-0.5*math.Cos(2*math.Pi*t.phase))
		samples[i][0] *= g
		samples[i][1] *= g
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
	}
	return n, ok
}

func (t *Tremolo) Err() error { return t.Streamer.Err() }

// Fader ramps its gain linearly toward a target so the ambient bed can be
// switched without clicks.
type Fader struct {
	Streamer beep.Streamer
	gain     float64
	target   float64
	step     float64
}

func NewFader(s beep.Streamer) *Fader {
	return &Fader{Streamer: s}
}

// FadeTo heads toward target over the given number of samples.
func (f *Fader) FadeTo(target float64, samples int) {
	f.target = target
	if samples <= 0 {
		f.gain = target
		f.step = 0
		return
	}
	f.step = math.Abs(target-f.gain) / float64(samples)
}

// Silent reports whether the fader has settled at zero.
func (f *Fader) Silent() bool {
	return f.gain == 0 && f.target == 0
}

func (f *Fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.Silent() {
		// keep the source's phase frozen while muted
		clear(samples)
		return len(samples), true
	}
	n, ok = f.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		switch {
		case f.gain < f.target:
			f.gain = math.Min(f.gain+f.step, f.target)
		case f.gain > f.target:
			f.gain = math.Max(f.gain-f.step, f.target)
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *Fader) Err() error { return f.Streamer.Err() }
