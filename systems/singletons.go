package systems

import (
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreate returns the singleton component c, creating it with init if needed.
func getOrCreate[T any](e *ecs.ECS, c *donburi.ComponentType[T], init T) *T {
	if ent, ok := c.First(e.World); ok {
		return c.Get(ent)
	}
	ent := e.World.Entry(e.World.Create(c))
	c.SetValue(ent, init)
	return c.Get(ent)
}

// GetOrCreateWorld returns the canvas state, sized to the configured window until the first resize.
func GetOrCreateWorld(e *ecs.ECS) *components.WorldData {
	return getOrCreate(e, components.World, components.WorldData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
		Delta:  1,
	})
}

func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	return getOrCreate(e, components.Input, components.InputData{})
}

func GetOrCreateParticles(e *ecs.ECS) *components.ParticleFieldData {
	return getOrCreate(e, components.ParticleField, components.ParticleFieldData{
		Max: cfg.Particles.MaxLive,
	})
}

func GetOrCreatePage(e *ecs.ECS) *components.PageData {
	return getOrCreate(e, components.Page, components.PageData{})
}

func GetOrCreateToast(e *ecs.ECS) *components.ToastData {
	return getOrCreate(e, components.Toast, components.ToastData{})
}

// GetOrCreatePrefs returns the in-memory preferences, loading them from the store on first use.
func GetOrCreatePrefs(e *ecs.ECS) *components.PrefsData {
	if ent, ok := components.Prefs.First(e.World); ok {
		return components.Prefs.Get(ent)
	}
	return getOrCreate(e, components.Prefs, LoadPrefs())
}

func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	return getOrCreate(e, components.Audio, components.AudioData{})
}
