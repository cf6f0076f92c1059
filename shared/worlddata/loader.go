package worlddata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// HotspotLayer is the object group hotspots are read from.
const HotspotLayer = "Hotspots"

var ErrNoHotspots = errors.New("world map has no hotspots")

// Load parses a TMX file and returns its hotspot layout. It takes an fs.FS so
// callers can pass the embedded assets or a directory on disk.
func Load(fsys fs.FS, tmxPath string) (*WorldMap, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	world := &WorldMap{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		if og.Name != HotspotLayer {
			continue
		}
		for _, o := range og.Objects {
			section := o.Properties.GetString("section")
			if section == "" {
				return nil, fmt.Errorf("object %d in %s: missing section property", o.ID, tmxPath)
			}
			label := o.Properties.GetString("label")
			if label == "" {
				label = o.Name
			}
			world.Hotspots = append(world.Hotspots, HotspotDef{
				Ellipse: len(o.Ellipses) > 0,
				X:       o.X + o.Width/2,
				Y:       o.Y + o.Height/2,
				W:       o.Width,
				H:       o.Height,
				Section: section,
				Label:   label,
			})
		}
	}

	if len(world.Hotspots) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoHotspots)
	}
	return world, nil
}
