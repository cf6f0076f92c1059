package systems

import (
	"github.com/automoto/portfolio-world/components"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EnterGameMode starts the mini-game with the avatar at rest in the canvas
// center. Hotspot latches are cleared so the previous session's last visit
// does not suppress the next one. It does nothing when no world was loaded. The first entry ever
// shows the onboarding toast.
func EnterGameMode(ecs *ecs.ECS) bool {
	world := GetOrCreateWorld(ecs)
	if !world.Available || world.GameMode {
		return false
	}
	world.GameMode = true

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		p.Pos = components.Vector{X: world.Width / 2, Y: world.Height / 2}
		p.Vel = components.Vector{}
		ClampPlayer(p, world.Width, world.Height)
	})

	// A new session may trigger every hotspot again.
	components.Hotspot.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hotspot.Get(e)
		h.Inside = false
		h.Near = false
	})

	prefs := GetOrCreatePrefs(ecs)
	if !prefs.OnboardingSeen {
		ShowToast(ecs, content.Default().Locale(prefs.Language).UI.Onboarding)
		prefs.OnboardingSeen = true
		saveItem(KeyOnboardingSeen, true)
	}
	return true
}

// ExitGameMode hands the keyboard back to the page.
func ExitGameMode(ecs *ecs.ECS) {
	GetOrCreateWorld(ecs).GameMode = false
}

func ToggleGameMode(ecs *ecs.ECS) {
	if GetOrCreateWorld(ecs).GameMode {
		ExitGameMode(ecs)
		return
	}
	EnterGameMode(ecs)
}

// WithGameMode wraps a system so it only runs while the mini-game is active.
func WithGameMode(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if !GetOrCreateWorld(ecs).GameMode {
			return
		}
		system(ecs)
	}
}

// WithPageMode wraps a system so it only runs while the page owns the input.
func WithPageMode(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreateWorld(ecs).GameMode {
			return
		}
		system(ecs)
	}
}
