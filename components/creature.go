package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CreatureData is the decorative companion anchored in a canvas corner.
// Deadlines are wall-clock times; zero means "not scheduled".
type CreatureData struct {
	Anchor    Vector
	LookAngle float64

	NextBlink  time.Time
	BlinkUntil time.Time

	NextSpeech  time.Time
	SpeechUntil time.Time
	Line        string
	LineIndex   int

	BubbleScale float64
	BubbleTween *gween.Tween
}

var Creature = donburi.NewComponentType[CreatureData]()

// Blinking reports whether the eyes are closed at now.
func (c *CreatureData) Blinking(now time.Time) bool {
	return now.Before(c.BlinkUntil)
}

// Speaking reports whether the speech bubble is shown at now.
func (c *CreatureData) Speaking(now time.Time) bool {
	return c.Line != "" && now.Before(c.SpeechUntil)
}
