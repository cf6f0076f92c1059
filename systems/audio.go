package systems

import (
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi/ecs"
)

// QueueCue schedules a sound cue for the end of this tick.
func QueueCue(ecs *ecs.ECS, id cfg.SoundID) {
	a := GetOrCreateAudio(ecs)
	a.PendingCue = append(a.PendingCue, id)
}

// SetCuePlayer attaches the sound output.
func SetCuePlayer(ecs *ecs.ECS, p components.CuePlayer) {
	a := GetOrCreateAudio(ecs)
	a.Player = p
	a.AmbientOn = false
}

// UpdateAudio syncs the ambient bed with the sound preference and drains the
// cue queue. Cues queued while sound is off are dropped.
func UpdateAudio(ecs *ecs.ECS) {
	a := GetOrCreateAudio(ecs)
	prefs := GetOrCreatePrefs(ecs)

	if a.Player != nil {
		if a.AmbientOn != prefs.SoundEnabled {
			a.Player.SetAmbient(prefs.SoundEnabled)
			a.AmbientOn = prefs.SoundEnabled
		}
		if prefs.SoundEnabled {
			for _, id := range a.PendingCue {
				a.Player.PlayCue(id)
			}
		}
	}
	a.PendingCue = a.PendingCue[:0]
}

// ToggleSound flips and persists the sound preference. Turning sound on plays
// the chime once the ambient bed is running.
func ToggleSound(ecs *ecs.ECS) bool {
	prefs := GetOrCreatePrefs(ecs)
	prefs.SoundEnabled = !prefs.SoundEnabled
	saveItem(KeySoundEnabled, prefs.SoundEnabled)
	if prefs.SoundEnabled {
		QueueCue(ecs, cfg.SoundChime)
	}
	return prefs.SoundEnabled
}
