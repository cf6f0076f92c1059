package archetypes

import (
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Hotspot = newArchetype(
		tags.Hotspot,
		components.Hotspot,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
	)
	Creature = newArchetype(
		tags.Creature,
		components.Creature,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
