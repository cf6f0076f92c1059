package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Hotspot  = donburi.NewTag().SetName("Hotspot")
	Orb      = donburi.NewTag().SetName("Orb")
	Creature = donburi.NewTag().SetName("Creature")
)

// Resolv tags for the proximity broad phase
const (
	ResolvPlayer  = "Player"
	ResolvHotspot = "Hotspot"
)
