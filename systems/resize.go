package systems

import (
	"github.com/automoto/portfolio-world/components"
	"github.com/automoto/portfolio-world/systems/factory"
	"github.com/automoto/portfolio-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Resize adopts a new canvas size. It clamps the avatar back inside, re-anchors
// the creature and rebuilds the proximity space. Calling it again with the
// same size changes nothing.
func Resize(ecs *ecs.ECS, width, height float64) {
	world := GetOrCreateWorld(ecs)
	if world.Width == width && world.Height == height {
		if _, ok := components.Space.First(ecs.World); ok {
			return
		}
	}
	world.Width, world.Height = width, height

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		ClampPlayer(components.Player.Get(e), width, height)
	})
	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		AnchorCreature(components.Creature.Get(e), width, height)
	})
	factory.RebuildSpace(ecs, width, height)
	RefreshPage(ecs)
}
