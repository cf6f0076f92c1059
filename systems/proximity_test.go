package systems

import (
	"testing"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/systems/factory"
)

func TestProximityFiresOncePerOverlap(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateHotspot(e, mustCircle(t, "projets", 400, 300, 28))
	factory.CreatePlayer(e, 400, 300)
	nav := &recordingNav{}

	CheckProximity(e, nav)
	CheckProximity(e, nav)
	if len(nav.sections) != 1 || nav.sections[0] != "projets" {
		t.Fatalf("after two ticks inside: navigated %v, want [projets]", nav.sections)
	}

	p := playerOf(t, e)
	p.Pos = components.Vector{X: 400, Y: 400}
	CheckProximity(e, nav)
	if len(nav.sections) != 1 {
		t.Fatalf("leaving fired again: %v", nav.sections)
	}

	p.Pos = components.Vector{X: 410, Y: 300}
	CheckProximity(e, nav)
	if len(nav.sections) != 2 {
		t.Errorf("re-entry after exit: navigated %v, want two entries", nav.sections)
	}
}

func TestProximityFirstDeclaredWins(t *testing.T) {
	e, _ := newTestECS(t)
	first := mustCircle(t, "accueil", 200, 200, 28)
	first.Order = 0
	second := mustCircle(t, "contact", 210, 200, 28)
	second.Order = 1
	// spawn in reverse so storage order differs from declaration order
	factory.CreateHotspot(e, second)
	factory.CreateHotspot(e, first)
	factory.CreatePlayer(e, 205, 200)
	nav := &recordingNav{}

	CheckProximity(e, nav)
	if len(nav.sections) != 1 || nav.sections[0] != "accueil" {
		t.Errorf("navigated %v, want [accueil]", nav.sections)
	}
}

func TestProximityRectContainment(t *testing.T) {
	e, _ := newTestECS(t)
	rect, err := components.NewRectHotspot("certificates", "Certificates", 400, 260, 120, 80)
	if err != nil {
		t.Fatal(err)
	}
	factory.CreateHotspot(e, rect)
	factory.CreatePlayer(e, 460, 300) // bottom-right corner, inclusive
	nav := &recordingNav{}

	CheckProximity(e, nav)
	if len(nav.sections) != 1 {
		t.Errorf("corner of rect did not trigger: %v", nav.sections)
	}
}

func TestProximityGlowAndBlip(t *testing.T) {
	e, _ := newTestECS(t)
	hs := factory.CreateHotspot(e, mustCircle(t, "stats", 400, 300, 28))
	factory.CreatePlayer(e, 400+cfg.Hotspot.GlowRadius-1, 300)

	CheckProximity(e, nil)
	h := components.Hotspot.Get(hs)
	if !h.Near || h.Inside {
		t.Fatalf("inside glow only: near=%v inside=%v", h.Near, h.Inside)
	}

	playerOf(t, e).Pos.X = 400 + cfg.Hotspot.GlowRadius + 1
	CheckProximity(e, nil)
	if h.Near {
		t.Error("still near after leaving the glow radius")
	}
	a := GetOrCreateAudio(e)
	if len(a.PendingCue) != 1 || a.PendingCue[0] != cfg.SoundBlip {
		t.Errorf("pending cues = %v, want one blip", a.PendingCue)
	}
}

func TestProximityNavigationShowsFoundToast(t *testing.T) {
	e, _ := newTestECS(t)
	GetOrCreatePrefs(e).Language = "en"
	factory.CreateHotspot(e, mustCircle(t, "contact", 400, 300, 28))
	factory.CreatePlayer(e, 400, 300)

	CheckProximity(e, &recordingNav{})
	if got := GetOrCreateToast(e).Text; got != "Found contact!" {
		t.Errorf("toast = %q, want %q", got, "Found contact!")
	}
	a := GetOrCreateAudio(e)
	if len(a.PendingCue) == 0 || a.PendingCue[len(a.PendingCue)-1] != cfg.SoundChime {
		t.Errorf("pending cues = %v, want a chime", a.PendingCue)
	}
}

func TestProximityWithoutSpaceChecksEverything(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateHotspot(e, mustCircle(t, "game", 100, 100, 28))
	player := factory.CreatePlayer(e, 100, 100)
	components.Object.Get(player).Object.Space = nil
	nav := &recordingNav{}

	CheckProximity(e, nav)
	if len(nav.sections) != 1 {
		t.Errorf("navigated %v without a broad phase", nav.sections)
	}
}
