package components

import "github.com/yohamta/donburi"

// PrefsData mirrors the persisted user preferences (singleton component)
type PrefsData struct {
	SoundEnabled   bool
	OnboardingSeen bool
	Language       string
	Theme          string
}

var Prefs = donburi.NewComponentType[PrefsData]()
