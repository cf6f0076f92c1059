package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is a short floating message that fades in and out (singleton component)
type ToastData struct {
	Text  string
	Alpha float64
	Fade  *gween.Sequence
}

var Toast = donburi.NewComponentType[ToastData]()

// Visible reports whether anything should be drawn.
func (t *ToastData) Visible() bool {
	return t.Fade != nil && t.Alpha > 0
}
