package systems

import (
	"testing"

	"github.com/automoto/portfolio-world/assets"
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

func TestEnterGameModeRequiresWorld(t *testing.T) {
	e, _ := newTestECS(t)
	GetOrCreateWorld(e).Available = false

	if EnterGameMode(e) {
		t.Error("EnterGameMode() = true without a world map")
	}
	if GetOrCreateWorld(e).GameMode {
		t.Error("game mode switched on without a world map")
	}
}

func TestEnterGameModeCentersPlayer(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreatePlayer(e, 30, 30)
	playerOf(t, e).Vel = components.Vector{X: 2, Y: -1}

	if !EnterGameMode(e) {
		t.Fatal("EnterGameMode() = false")
	}
	p := playerOf(t, e)
	if p.Pos != (components.Vector{X: 400, Y: 300}) || p.Vel != (components.Vector{}) {
		t.Errorf("player = pos %+v vel %+v, want centered at rest", p.Pos, p.Vel)
	}
	if EnterGameMode(e) {
		t.Error("entering twice reported a change")
	}
}

func TestOnboardingShownOnce(t *testing.T) {
	e, store := newTestECS(t)
	want := content.Default().Locale(content.DefaultLanguage).UI.Onboarding

	EnterGameMode(e)
	if got := GetOrCreateToast(e).Text; got != want {
		t.Errorf("toast = %q, want %q", got, want)
	}
	if got := string(store[KeyOnboardingSeen]); got != "true" {
		t.Errorf("stored %s = %q, want %q", KeyOnboardingSeen, got, "true")
	}

	ExitGameMode(e)
	GetOrCreateToast(e).Text = ""
	EnterGameMode(e)
	if got := GetOrCreateToast(e).Text; got != "" {
		t.Errorf("second entry showed %q", got)
	}
}

func TestGameModeGates(t *testing.T) {
	e, _ := newTestECS(t)
	var gameRuns, pageRuns int
	game := WithGameMode(func(*ecs.ECS) { gameRuns++ })
	page := WithPageMode(func(*ecs.ECS) { pageRuns++ })

	game(e)
	page(e)
	ToggleGameMode(e)
	game(e)
	page(e)
	ToggleGameMode(e)

	if gameRuns != 1 || pageRuns != 1 {
		t.Errorf("runs: game %d page %d, want 1 and 1", gameRuns, pageRuns)
	}
	if GetOrCreateWorld(e).GameMode {
		t.Error("second toggle did not leave game mode")
	}
}

func TestEmbeddedWorldSpawnIsClear(t *testing.T) {
	e, _ := newTestECS(t)
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	world := GetOrCreateWorld(e)
	world.Width, world.Height = w, h
	world.Delta = 1
	factory.RebuildSpace(e, w, h)

	worldMap, err := assets.LoadWorld()
	if err != nil {
		t.Fatalf("LoadWorld: %v", err)
	}
	if err := factory.CreateHotspots(e, worldMap); err != nil {
		t.Fatalf("CreateHotspots: %v", err)
	}
	factory.CreatePlayer(e, w/2, h/2)

	if !EnterGameMode(e) {
		t.Fatal("EnterGameMode() = false")
	}
	nav := &recordingNav{}
	UpdatePlayer(e)
	CheckProximity(e, nav)

	if len(nav.sections) != 0 {
		t.Errorf("spawn navigated to %v on the first tick", nav.sections)
	}
	if !GetOrCreateWorld(e).GameMode {
		t.Error("game mode ended on the first tick")
	}
}

func TestReenteringGameModeRearmsHotspots(t *testing.T) {
	e, _ := newTestECS(t)
	factory.CreateHotspot(e, mustCircle(t, "contact", 400, 300, 28))
	factory.CreatePlayer(e, 400, 300)
	nav := &recordingNav{}

	EnterGameMode(e)
	CheckProximity(e, nav)
	if len(nav.sections) != 1 {
		t.Fatalf("first session navigated %v, want [contact]", nav.sections)
	}
	ExitGameMode(e)

	EnterGameMode(e)
	CheckProximity(e, nav)
	if len(nav.sections) != 2 {
		t.Errorf("second session navigated %v, want contact twice", nav.sections)
	}
	for _, id := range nav.sections {
		if id != "contact" {
			t.Errorf("navigated to %q, want contact", id)
		}
	}
}
