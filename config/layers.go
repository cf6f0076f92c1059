package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order.
const (
	LayerPage ecs.LayerID = iota
	LayerGame
	LayerOverlay
)

// Default is the layer entities are created on.
const Default = LayerPage
