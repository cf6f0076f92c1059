package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the proximity space and prints the
// frame delta. Toggled with F3.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	world := GetOrCreateWorld(ecs)

	if spaceEntry, ok := components.Space.First(ecs.World); ok && world.GameMode {
		space := components.Space.Get(spaceEntry)
		cw, ch := space.CellWidth, space.CellHeight
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvHotspot) {
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
		drawText(screen, fmt.Sprintf("cells %dx%d", cw, ch), fonts.Mono.Get(),
			float64(screen.Bounds().Dx())-140, cfg.Page.TopBarHeight+cfg.HUD.Margin+cfg.HUD.LineSpacing, color.White)
	}

	drawText(screen, fmt.Sprintf("dt %.2f  tps %.0f", world.Delta, ebiten.ActualTPS()), fonts.Mono.Get(),
		float64(screen.Bounds().Dx())-140, cfg.Page.TopBarHeight+cfg.HUD.Margin, color.White)
}
