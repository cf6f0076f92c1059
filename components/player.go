package components

import (
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the avatar walked around the world canvas in game mode.
type PlayerData struct {
	Pos      Vector
	Vel      Vector
	Radius   float64
	Speed    float64
	Friction float64 // 0 < Friction < 1
	Heading  float64 // angle of the last non-zero motion, radians
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayer returns an avatar at rest using the configured tuning.
func NewPlayer(x, y float64) PlayerData {
	return PlayerData{
		Pos:      Vector{X: x, Y: y},
		Radius:   cfg.Player.Radius,
		Speed:    cfg.Player.Speed,
		Friction: cfg.Player.Friction,
	}
}
