package systems

import (
	"math"
	"math/rand"
	"time"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCreature turns the creature's eyes toward the avatar and runs its
// blink and speech schedules. Without an avatar the eyes track the pointer.
func UpdateCreature(ecs *ecs.ECS) {
	world := GetOrCreateWorld(ecs)
	target := GetOrCreateInput(ecs).Pointer
	if e, ok := tags.Player.First(ecs.World); ok {
		target = components.Player.Get(e).Pos
	}
	lines := content.Default().Locale(GetOrCreatePrefs(ecs).Language).Creature

	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Creature.Get(e)
		if StepCreature(c, target, world.Now, world.Delta, lines) {
			QueueCue(ecs, cfg.SoundBlip)
		}
	})
}

// StepCreature advances one creature to now and reports whether it started a
// new line of speech. Deadlines are wall-clock so frame rate does not matter.
func StepCreature(c *components.CreatureData, target components.Vector, now time.Time, dt float64, lines []string) bool {
	c.LookAngle = math.Atan2(target.Y-c.Anchor.Y, target.X-c.Anchor.X)

	conf := cfg.Creature
	if c.NextBlink.IsZero() {
		c.NextBlink = now.Add(jitter(conf.BlinkIntervalMin, conf.BlinkIntervalVar))
	}
	if !now.Before(c.NextBlink) {
		c.BlinkUntil = now.Add(seconds(conf.BlinkDuration))
		c.NextBlink = now.Add(jitter(conf.BlinkIntervalMin, conf.BlinkIntervalVar))
	}

	if c.BubbleTween != nil {
		v, done := c.BubbleTween.Update(Seconds(dt))
		c.BubbleScale = float64(v)
		if done {
			c.BubbleTween = nil
		}
	}

	if c.NextSpeech.IsZero() {
		c.NextSpeech = now.Add(seconds(conf.SpeechFirstDelay))
	}
	if len(lines) == 0 || now.Before(c.NextSpeech) {
		return false
	}

	c.Line = lines[c.LineIndex%len(lines)]
	c.LineIndex++
	c.SpeechUntil = now.Add(seconds(conf.SpeechDuration))
	c.NextSpeech = c.SpeechUntil.Add(jitter(conf.SpeechIntervalMin, conf.SpeechIntervalVar))
	c.BubbleScale = 0
	c.BubbleTween = gween.New(0, 1, 0.3, ease.OutBack)
	return true
}

// AnchorCreature pins the creature to the bottom-right corner of the canvas.
func AnchorCreature(c *components.CreatureData, width, height float64) {
	c.Anchor = components.Vector{
		X: math.Max(width-cfg.Creature.MarginX, cfg.Creature.BodyRadius),
		Y: math.Max(height-cfg.Creature.MarginY, cfg.Creature.BodyRadius),
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func jitter(base, spread float64) time.Duration {
	return seconds(base + rand.Float64()*spread)
}
