package factory

import (
	"github.com/automoto/portfolio-world/archetypes"
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// RebuildSpace replaces the proximity space with one sized to the canvas and
// re-registers every hotspot and the player probe in it.
func RebuildSpace(ecs *ecs.ECS, width, height float64) *resolv.Space {
	cell := int(cfg.HUD.GridSize)
	w, h := int(width), int(height)
	if w < cell {
		w = cell
	}
	if h < cell {
		h = cell
	}

	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = CreateSpace(ecs, w, h, cell, cell)
	} else {
		components.Space.Set(entry, resolv.NewSpace(w, h, cell, cell))
	}
	space := components.Space.Get(entry)

	components.Hotspot.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Hotspot.Get(e).Object; obj != nil {
			space.Add(obj)
		}
	})
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		if obj := components.Object.Get(e).Object; obj != nil {
			space.Add(obj)
		}
	})
	return space
}
