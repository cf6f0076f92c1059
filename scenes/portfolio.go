package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/portfolio-world/assets"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/sound"
	"github.com/automoto/portfolio-world/systems"
	"github.com/automoto/portfolio-world/systems/factory"
	"github.com/automoto/portfolio-world/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PortfolioScene hosts the page and the mini-game in one ECS world. Only one
// of the two surfaces is drawn at a time; the overlay and the UI are always on top.
type PortfolioScene struct {
	ecs   *ecs.ECS
	ui    *ui.PortfolioUI
	audio *sound.Engine
	clock *systems.FrameClock
	once  sync.Once

	// canvas size requested before the world existed
	width, height int
}

func NewPortfolioScene(clock systems.Clock) *PortfolioScene {
	return &PortfolioScene{
		clock:  systems.NewFrameClock(clock),
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
}

func (ps *PortfolioScene) Update() {
	ps.once.Do(ps.configure)

	ps.ui.Update()
	ps.ecs.Update()
}

func (ps *PortfolioScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	if systems.GetOrCreateWorld(ps.ecs).GameMode {
		ps.ecs.DrawLayer(cfg.LayerGame, screen)
	} else {
		ps.ecs.DrawLayer(cfg.LayerPage, screen)
	}
	ps.ecs.DrawLayer(cfg.LayerOverlay, screen)
	ps.ui.Draw(screen)
}

// Resize adopts the outside window size. Safe to call before the first Update.
func (ps *PortfolioScene) Resize(width, height int) {
	ps.width, ps.height = width, height
	if ps.ecs == nil {
		return
	}
	systems.Resize(ps.ecs, float64(width), float64(height))
}

// Close releases the audio output.
func (ps *PortfolioScene) Close() {
	if ps.audio != nil {
		ps.audio.Close()
	}
}

func (ps *PortfolioScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	nav := systems.PageNavigator{ECS: ecs}

	ecs.AddSystem(ps.clock.Update)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateActions)
	ecs.AddSystem(systems.UpdatePage)
	ecs.AddSystem(systems.WithPageMode(systems.UpdateParticles))

	// Game systems only run while the mini-game owns the keyboard
	ecs.AddSystem(systems.WithGameMode(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameMode(systems.UpdateProximity(nav)))
	ecs.AddSystem(systems.UpdateOrbs)
	ecs.AddSystem(systems.WithGameMode(systems.UpdateCreature))

	ecs.AddSystem(systems.UpdateToast)
	ecs.AddSystem(systems.UpdateAudio)

	// Add renderers
	ecs.AddRenderer(cfg.LayerPage, systems.DrawPage)
	ecs.AddRenderer(cfg.LayerPage, systems.DrawParticles)

	ecs.AddRenderer(cfg.LayerGame, systems.DrawBackground)
	ecs.AddRenderer(cfg.LayerGame, systems.DrawOrbs)
	ecs.AddRenderer(cfg.LayerGame, systems.DrawHotspots)
	ecs.AddRenderer(cfg.LayerGame, systems.DrawCreature)
	ecs.AddRenderer(cfg.LayerGame, systems.DrawPlayer)
	ecs.AddRenderer(cfg.LayerGame, systems.DrawHUD)

	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawToast)
	ecs.AddRenderer(cfg.LayerOverlay, systems.DrawDebug)

	ps.ecs = ecs
	world := systems.GetOrCreateWorld(ecs)
	cfg.ApplyTheme(systems.GetOrCreatePrefs(ecs).Theme)
	w, h := float64(ps.width), float64(ps.height)

	// The proximity space must exist before anything registers in it.
	factory.RebuildSpace(ecs, w, h)

	worldMap, err := assets.LoadWorld()
	if err != nil {
		log.Printf("Warning: Could not load world map, game mode disabled: %v", err)
	} else if err := factory.CreateHotspots(ecs, worldMap); err != nil {
		log.Printf("Warning: Invalid world map, game mode disabled: %v", err)
	} else {
		world.Available = true
	}

	factory.CreatePlayer(ecs, w/2, h/2)
	factory.CreateOrbs(ecs, w, h)
	factory.CreateCreature(ecs)

	ps.audio = sound.New()
	systems.SetCuePlayer(ecs, ps.audio)

	// Force the first layout: anchors, clamps and the page height.
	world.Width, world.Height = 0, 0
	systems.Resize(ecs, w, h)

	ps.ui = ui.NewPortfolioUI(ecs, nav)

	if cfg.Debug.StartInGame {
		systems.EnterGameMode(ecs)
	}
}
