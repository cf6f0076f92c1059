package synth

import (
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/gopxl/beep"
)

// Ambient is the endless bed: white noise, low-passed, with a slow tremolo.
func Ambient(rate beep.SampleRate) beep.Streamer {
	a := cfg.Audio
	noise := NewTone(Noise, 0, 0, rate)
	filtered := NewLowpass(noise, a.LowpassCutoff, rate)
	swell := NewTremolo(filtered, a.TremoloRate, a.TremoloDepth, rate)
	return scaled(swell, a.AmbientVolume)
}

// Chime is a two-partial bell: the fundamental and its octave, the octave
// fading faster.
func Chime(rate beep.SampleRate) beep.Streamer {
	a := cfg.Audio
	fund := NewEnvelope(
		NewTone(Sine, a.ChimeFreq, a.ChimeDuration, rate),
		a.ChimeDuration, a.ChimeAttack, a.ChimeDuration-a.ChimeAttack, rate)
	over := NewEnvelope(
		NewTone(Sine, a.ChimeFreq*2, a.ChimeDuration/2, rate),
		a.ChimeDuration/2, a.ChimeAttack, a.ChimeDuration/2-a.ChimeAttack, rate)

	mixed := beep.Mix(scaled(fund, 0.7), scaled(over, 0.3))
	return scaled(mixed, cueVolume(cfg.SoundChime))
}

// Blip is a short square tick.
func Blip(rate beep.SampleRate) beep.Streamer {
	a := cfg.Audio
	osc := NewTone(Square, a.BlipFreq, a.BlipDuration, rate)
	note := NewEnvelope(osc, a.BlipDuration, a.BlipAttack, a.BlipRelease, rate)
	return scaled(note, cueVolume(cfg.SoundBlip))
}

// Cue builds the streamer for a sound id, or nil for unknown ids.
func Cue(id cfg.SoundID, rate beep.SampleRate) beep.Streamer {
	switch id {
	case cfg.SoundChime:
		return Chime(rate)
	case cfg.SoundBlip:
		return Blip(rate)
	}
	return nil
}

func cueVolume(id cfg.SoundID) float64 {
	v := cfg.Audio.CueVolume
	if mult, ok := cfg.Audio.VolumeMultiple[id]; ok {
		v *= mult
	}
	return v
}
