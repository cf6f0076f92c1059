package components

import (
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi"
)

// Direction indexes the four movement booleans.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirCount // Must be last - used for array sizing
)

// InputData is the normalized input snapshot for one tick.
// Devices write it; systems only read it.
type InputData struct {
	Dirs         [DirCount]bool
	Pointer      Vector
	PointerMoved bool
	ScrollDelta  float64 // wheel notches this tick, positive scrolls down

	// Captured is set while a text field owns the keyboard; shortcuts and
	// movement are suppressed.
	Captured bool

	// Actions pressed this tick (edge triggered)
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()

// JustPressed reports whether the action went down this tick.
func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}
