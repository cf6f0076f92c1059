package config

import "time"

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	SoundChime
	SoundBlip
)

// AudioConfig contains synthesis and output settings
type AudioConfig struct {
	SampleRate int
	BufferSize time.Duration

	// Ambient bed
	AmbientVolume  float64
	LowpassCutoff  float64 // Hz
	TremoloRate    float64 // Hz
	TremoloDepth   float64 // 0..1
	AmbientFadeIn  time.Duration
	AmbientFadeOut time.Duration

	// Cues
	CueVolume      float64
	ChimeFreq      float64
	ChimeDuration  time.Duration
	ChimeAttack    time.Duration
	BlipFreq       float64
	BlipDuration   time.Duration
	BlipAttack     time.Duration
	BlipRelease    time.Duration
	VolumeMultiple map[SoundID]float64
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
		BufferSize: 100 * time.Millisecond,

		AmbientVolume:  0.18,
		LowpassCutoff:  420,
		TremoloRate:    0.15,
		TremoloDepth:   0.6,
		AmbientFadeIn:  1500 * time.Millisecond,
		AmbientFadeOut: 400 * time.Millisecond,

		CueVolume:     0.5,
		ChimeFreq:     880,
		ChimeDuration: 900 * time.Millisecond,
		ChimeAttack:   8 * time.Millisecond,
		BlipFreq:      660,
		BlipDuration:  70 * time.Millisecond,
		BlipAttack:    4 * time.Millisecond,
		BlipRelease:   40 * time.Millisecond,
		VolumeMultiple: map[SoundID]float64{
			SoundBlip: 0.6,
		},
	}
}
