package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// WorldData is the canvas-wide state shared by every system (singleton component)
type WorldData struct {
	Width     float64
	Height    float64
	GameMode  bool // the mini-game owns the keyboard
	Available bool // a world map was loaded, game mode may start
	Now       time.Time
	Delta     float64 // elapsed time in 60 Hz frame units
	Tick      uint64
}

var World = donburi.NewComponentType[WorldData]()
