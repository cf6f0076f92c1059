package factory

import (
	"fmt"

	"github.com/automoto/portfolio-world/archetypes"
	"github.com/automoto/portfolio-world/components"
	"github.com/automoto/portfolio-world/shared/worlddata"
	"github.com/automoto/portfolio-world/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHotspot spawns a validated hotspot and registers its bounding box in the space.
func CreateHotspot(ecs *ecs.ECS, data components.HotspotData) *donburi.Entry {
	hotspot := archetypes.Hotspot.Spawn(ecs)

	x, y, w, h := data.Bounds()
	obj := resolv.NewObject(x, y, w, h, tags.ResolvHotspot)
	obj.Data = hotspot
	data.Object = obj
	components.Hotspot.SetValue(hotspot, data)

	if entry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(entry).Add(obj)
	}
	return hotspot
}

// CreateHotspots spawns every hotspot of a world map in declaration order.
// Ellipses become circles whose radius is half the authored width.
func CreateHotspots(ecs *ecs.ECS, world *worlddata.WorldMap) error {
	for i, def := range world.Hotspots {
		var (
			data components.HotspotData
			err  error
		)
		if def.Ellipse {
			data, err = components.NewCircleHotspot(def.Section, def.Label, def.X, def.Y, def.W/2)
		} else {
			data, err = components.NewRectHotspot(def.Section, def.Label, def.X, def.Y, def.W, def.H)
		}
		if err != nil {
			return fmt.Errorf("hotspot %d: %w", i, err)
		}
		data.Order = i
		CreateHotspot(ecs, data)
	}
	return nil
}
