package systems

import (
	"time"

	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Clock supplies wall time. Tests swap in a manual clock.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameClock turns wall time into per-tick deltas measured in reference frames,
// so a tick at exactly 60 Hz yields 1.0.
type FrameClock struct {
	source Clock
	last   time.Time
}

func NewFrameClock(source Clock) *FrameClock {
	if source == nil {
		source = SystemClock{}
	}
	return &FrameClock{source: source}
}

// Tick returns the current time and the clamped delta since the previous tick.
// The first tick counts as one frame.
func (c *FrameClock) Tick() (time.Time, float64) {
	now := c.source.Now()
	if c.last.IsZero() {
		c.last = now
		return now, 1
	}
	dt := now.Sub(c.last).Seconds() * cfg.Clock.FrameRate
	c.last = now
	return now, gamemath.Clamp(dt, 0, cfg.Clock.MaxFrameDelta)
}

// Update is the ECS system that stamps the world with this tick's time.
func (c *FrameClock) Update(e *ecs.ECS) {
	world := GetOrCreateWorld(e)
	world.Now, world.Delta = c.Tick()
	world.Tick++
}

// Seconds converts a frame delta to seconds for tweens.
func Seconds(dt float64) float32 {
	return float32(dt / cfg.Clock.FrameRate)
}
