package components

import (
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi"
)

// CuePlayer is the sound output the audio system drains into.
// Implementations must tolerate being called when no audio device exists.
type CuePlayer interface {
	PlayCue(id cfg.SoundID)
	SetAmbient(on bool)
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Player     CuePlayer
	PendingCue []cfg.SoundID
	AmbientOn  bool // last state pushed to Player
}

var Audio = donburi.NewComponentType[AudioData]()
