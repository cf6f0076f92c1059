package components

import "github.com/yohamta/donburi"

// OrbData is a large soft glow drifting behind the world canvas.
type OrbData struct {
	Pos     Vector
	Vel     Vector
	Radius  float64
	Opacity float64
	Color   ColorTag
}

var Orb = donburi.NewComponentType[OrbData]()
