package systems

import (
	"math"

	"github.com/automoto/portfolio-world/components"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/automoto/portfolio-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer advances the avatar one tick from the current input.
func UpdatePlayer(ecs *ecs.ECS) {
	world := GetOrCreateWorld(ecs)
	input := GetOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		StepPlayer(player, input.Dirs, world.Delta, world.Width, world.Height)
	})
}

// StepPlayer applies input, friction and integration, then clamps the avatar
// inside the canvas. Held directions set the velocity outright; with no input
// the velocity decays by Friction per frame unit.
func StepPlayer(p *components.PlayerData, dirs [components.DirCount]bool, dt, width, height float64) {
	dx, dy := DirectionVector(dirs)
	if dx != 0 || dy != 0 {
		p.Vel = components.Vector{X: dx * p.Speed, Y: dy * p.Speed}
	} else {
		p.Vel.X = gamemath.Decay(p.Vel.X, p.Friction, dt)
		p.Vel.Y = gamemath.Decay(p.Vel.Y, p.Friction, dt)
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	if p.Vel.X != 0 || p.Vel.Y != 0 {
		p.Heading = math.Atan2(p.Vel.Y, p.Vel.X)
	}
	ClampPlayer(p, width, height)
}

// ClampPlayer keeps the whole avatar inside a width x height canvas.
func ClampPlayer(p *components.PlayerData, width, height float64) {
	p.Pos.X = gamemath.Clamp(p.Pos.X, p.Radius, width-p.Radius)
	p.Pos.Y = gamemath.Clamp(p.Pos.Y, p.Radius, height-p.Radius)
}
