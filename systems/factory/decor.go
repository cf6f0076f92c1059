package factory

import (
	"math/rand"

	"github.com/automoto/portfolio-world/archetypes"
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOrbs scatters the ambient glows across a width x height canvas.
func CreateOrbs(ecs *ecs.ECS, width, height float64) {
	for i := 0; i < cfg.Orbs.Count; i++ {
		orb := archetypes.Orb.Spawn(ecs)
		color := components.ColorCyan
		if i%2 == 1 {
			color = components.ColorPink
		}
		components.Orb.SetValue(orb, components.OrbData{
			Pos: components.Vector{X: rand.Float64() * width, Y: rand.Float64() * height},
			Vel: components.Vector{
				X: (rand.Float64() - 0.5) * cfg.Orbs.Drift,
				Y: (rand.Float64() - 0.5) * cfg.Orbs.Drift,
			},
			Radius:  cfg.Orbs.RadiusMin + rand.Float64()*cfg.Orbs.RadiusRange,
			Opacity: cfg.Orbs.OpacityMin + rand.Float64()*cfg.Orbs.OpacityVar,
			Color:   color,
		})
	}
}

// CreateCreature spawns the corner companion. Its anchor is set by the resize step.
func CreateCreature(ecs *ecs.ECS) *donburi.Entry {
	creature := archetypes.Creature.Spawn(ecs)
	components.Creature.SetValue(creature, components.CreatureData{BubbleScale: 0})
	return creature
}
