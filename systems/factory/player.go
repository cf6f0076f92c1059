package factory

import (
	"github.com/automoto/portfolio-world/archetypes"
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the avatar at (x, y) with a proximity probe covering the glow radius.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	glow := cfg.Hotspot.GlowRadius
	obj := resolv.NewObject(x-glow, y-glow, glow*2, glow*2, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.NewPlayer(x, y))

	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
	return player
}
