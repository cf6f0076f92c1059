// Package worlddata parses the world map that lays out the mini-game's hotspots.
// The types are plain data with no engine dependencies.
package worlddata

// WorldMap holds everything the mini-game needs from a TMX world file.
type WorldMap struct {
	Width    float64
	Height   float64
	Hotspots []HotspotDef
}

// HotspotDef is one hotspot as authored in the map, in declaration order.
type HotspotDef struct {
	Ellipse bool
	X, Y    float64 // center
	W, H    float64
	Section string
	Label   string
}
