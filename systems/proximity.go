package systems

import (
	"sort"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProximity returns the system that fires hotspots through nav.
func UpdateProximity(nav components.Navigator) ecs.System {
	return func(ecs *ecs.ECS) {
		CheckProximity(ecs, nav)
	}
}

// CheckProximity compares the player against every hotspot. The resolv space
// narrows the candidates; exact distance or containment decides. A hotspot
// navigates once per continuous overlap, and the first one in declaration
// order wins when several overlap in the same tick.
func CheckProximity(ecs *ecs.ECS, nav components.Navigator) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	candidates := broadPhase(ecs.World, playerEntry, player.Pos)

	for _, e := range hotspotsInOrder(ecs) {
		h := components.Hotspot.Get(e)
		_, candidate := candidates[e.Entity()]

		near := candidate && player.Pos.DistanceTo(h.Center) < cfg.Hotspot.GlowRadius
		if h.Near && !near {
			QueueCue(ecs, cfg.SoundBlip)
		}
		h.Near = near

		inside := candidate && h.Contains(player.Pos)
		if !inside {
			h.Inside = false
			continue
		}
		if h.Inside {
			continue
		}

		h.Inside = true
		QueueCue(ecs, cfg.SoundChime)
		ShowToast(ecs, content.Default().Locale(GetOrCreatePrefs(ecs).Language).Found(h.Label))
		if nav != nil {
			nav.Navigate(h.SectionID)
		}
		// navigation leaves game mode, nothing else may fire this tick
		return
	}
}

// broadPhase moves the player's probe to pos and returns the hotspot entities
// sharing a cell with it. Without a probe every hotspot is a candidate.
func broadPhase(w donburi.World, playerEntry *donburi.Entry, pos components.Vector) map[donburi.Entity]struct{} {
	candidates := map[donburi.Entity]struct{}{}

	if !playerEntry.HasComponent(components.Object) {
		return everyHotspot(w, candidates)
	}
	probe := components.Object.Get(playerEntry)
	if !probe.Registered() {
		return everyHotspot(w, candidates)
	}

	probe.CenterOn(pos)
	if check := probe.Check(0, 0, tags.ResolvHotspot); check != nil {
		for _, obj := range check.Objects {
			if e, ok := obj.Data.(*donburi.Entry); ok {
				candidates[e.Entity()] = struct{}{}
			}
		}
	}
	return candidates
}

func everyHotspot(w donburi.World, into map[donburi.Entity]struct{}) map[donburi.Entity]struct{} {
	components.Hotspot.Each(w, func(e *donburi.Entry) {
		into[e.Entity()] = struct{}{}
	})
	return into
}

func hotspotsInOrder(ecs *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	components.Hotspot.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return components.Hotspot.Get(entries[i]).Order < components.Hotspot.Get(entries[j]).Order
	})
	return entries
}
