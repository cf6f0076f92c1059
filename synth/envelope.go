package synth

import (
	"time"

	"github.com/gopxl/beep"
)

// Envelope is a note's loudness over its Length samples: a linear rise over
// Attack, full level, then a linear fall over the last Release samples.
type Envelope struct {
	Attack  int
	Release int
	Length  int
}

// Level is the envelope value at sample i. The fall wins over the rise when
// a note is too short for both.
func (e Envelope) Level(i int) float64 {
	switch {
	case i < 0 || i >= e.Length:
		return 0
	case e.Release > 0 && i >= e.Length-e.Release:
		return float64(e.Length-i) / float64(e.Release)
	case i < e.Attack:
		return float64(i) / float64(e.Attack)
	}
	return 1
}

// Gain is the level at sample pos of a total-sample note with the given
// attack and release lengths.
func Gain(pos, attack, release, total int) float64 {
	return Envelope{Attack: attack, Release: release, Length: total}.Level(pos)
}

// shaped applies an Envelope to a source and stops after Length samples.
type shaped struct {
	src beep.Streamer
	env Envelope
	pos int
}

// NewEnvelope shapes s into a note of the given duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &shaped{
		src: s,
		env: Envelope{
			Attack:  rate.N(attack),
			Release: rate.N(release),
			Length:  rate.N(duration),
		},
	}
}

func (s *shaped) Stream(samples [][2]float64) (int, bool) {
	if left := s.env.Length - s.pos; left < len(samples) {
		samples = samples[:max(left, 0)]
	}
	if len(samples) == 0 {
		return 0, false
	}

	n, ok := s.src.Stream(samples)
	for i := range samples[:n] {
		g := s.env.Level(s.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		s.pos++
	}
	return n, ok
}

func (s *shaped) Err() error { return s.src.Err() }
