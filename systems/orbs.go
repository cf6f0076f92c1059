package systems

import (
	"github.com/automoto/portfolio-world/components"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbs drifts the background glows, wrapping them around the canvas.
func UpdateOrbs(ecs *ecs.ECS) {
	world := GetOrCreateWorld(ecs)
	components.Orb.Each(ecs.World, func(e *donburi.Entry) {
		StepOrb(components.Orb.Get(e), world.Delta, world.Width, world.Height)
	})
}

func StepOrb(o *components.OrbData, dt, width, height float64) {
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	o.Pos.X = gamemath.Wrap(o.Pos.X, o.Radius, width)
	o.Pos.Y = gamemath.Wrap(o.Pos.Y, o.Radius, height)
}
