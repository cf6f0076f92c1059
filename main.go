package main

import (
	"log"

	"github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/scenes"
	"github.com/automoto/portfolio-world/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	width, height int
	scene         *scenes.PortfolioScene
}

func NewGame() *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewPortfolioScene(systems.SystemClock{}),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the canvas always fills it.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.width || height != g.height {
		g.width, g.height = width, height
		g.scene.Resize(width, height)
	}
	return width, height
}

func main() {
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence; preferences fall back to memory on failure
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Preferences will not be saved: %v", err)
	}

	game := NewGame()
	err := ebiten.RunGame(game)
	game.scene.Close()
	if err != nil {
		log.Fatal(err)
	}
}
