package assets

import (
	"embed"

	"github.com/automoto/portfolio-world/shared/worlddata"
)

// WorldPath is the map laid out for the mini-game.
const WorldPath = "worlds/portfolio.tmx"

var (
	//go:embed all:worlds
	worldFS embed.FS
)

// LoadWorld parses the embedded portfolio world.
func LoadWorld() (*worlddata.WorldMap, error) {
	return worlddata.Load(worldFS, WorldPath)
}
