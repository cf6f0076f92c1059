package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/systems/factory"
)

func TestCreatureSpeechSchedule(t *testing.T) {
	c := &components.CreatureData{}
	lines := []string{"hello", "again"}
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	firstDelay := time.Duration(cfg.Creature.SpeechFirstDelay * float64(time.Second))

	if StepCreature(c, components.Vector{}, start, 1, lines) {
		t.Fatal("spoke immediately")
	}
	if StepCreature(c, components.Vector{}, start.Add(firstDelay-time.Millisecond), 1, lines) {
		t.Fatal("spoke before the first delay")
	}

	at := start.Add(firstDelay)
	if !StepCreature(c, components.Vector{}, at, 1, lines) {
		t.Fatal("did not speak after the first delay")
	}
	if c.Line != "hello" || !c.Speaking(at) {
		t.Errorf("line = %q speaking = %v", c.Line, c.Speaking(at))
	}
	if !c.NextSpeech.After(c.SpeechUntil) {
		t.Error("next speech scheduled before the current one ends")
	}

	if !StepCreature(c, components.Vector{}, c.NextSpeech, 1, lines) || c.Line != "again" {
		t.Errorf("second line = %q, want again", c.Line)
	}
}

func TestCreatureBubbleGrows(t *testing.T) {
	c := &components.CreatureData{}
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c.NextSpeech = start
	StepCreature(c, components.Vector{}, start, 1, []string{"hi"})
	if c.BubbleScale != 0 || c.BubbleTween == nil {
		t.Fatalf("bubble = %v tween %v, want growing from 0", c.BubbleScale, c.BubbleTween)
	}

	StepCreature(c, components.Vector{}, start, cfg.Clock.FrameRate, []string{"hi"})
	if c.BubbleScale != 1 || c.BubbleTween != nil {
		t.Errorf("bubble after one second = %v, want 1", c.BubbleScale)
	}
}

func TestStepCreatureLooksAtTarget(t *testing.T) {
	c := &components.CreatureData{Anchor: components.Vector{X: 100, Y: 100}}
	now := time.Now()

	StepCreature(c, components.Vector{X: 200, Y: 100}, now, 1, nil)
	if c.LookAngle != 0 {
		t.Errorf("look angle = %v, want 0 to the right", c.LookAngle)
	}
	StepCreature(c, components.Vector{X: 100, Y: 200}, now, 1, nil)
	if math.Abs(c.LookAngle-math.Pi/2) > 1e-12 {
		t.Errorf("look angle = %v, want pi/2 below", c.LookAngle)
	}
}

func TestCreatureBlinks(t *testing.T) {
	c := &components.CreatureData{}
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	StepCreature(c, components.Vector{}, start, 1, nil)
	if c.Blinking(start) {
		t.Fatal("blinking before the first interval")
	}

	at := c.NextBlink
	StepCreature(c, components.Vector{}, at, 1, nil)
	if !c.Blinking(at) {
		t.Error("not blinking at the scheduled time")
	}
	if !c.NextBlink.After(at) {
		t.Error("next blink not rescheduled")
	}
}

func TestCreatureWatchesPlayerNotPointer(t *testing.T) {
	e, _ := newTestECS(t)
	creature := factory.CreateCreature(e)
	components.Creature.Get(creature).Anchor = components.Vector{X: 300, Y: 400}
	factory.CreatePlayer(e, 400, 400)
	GetOrCreateInput(e).Pointer = components.Vector{X: 300, Y: 100}
	GetOrCreateWorld(e).Now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	UpdateCreature(e)
	if c := components.Creature.Get(creature); c.LookAngle != 0 {
		t.Errorf("look angle = %v, want 0 toward the avatar", c.LookAngle)
	}
}
