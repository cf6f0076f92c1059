package systems

import (
	"fmt"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const toastPadding = 12

// DrawHUD prints the avatar's coordinates and speed below the top bar
// and the controls reminder along the bottom edge.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	p := components.Player.Get(playerEntry)
	ui := content.Default().Locale(GetOrCreatePrefs(ecs).Language).UI

	m := cfg.HUD.Margin
	top := cfg.Page.TopBarHeight + m
	mono := fonts.Mono.Get()
	drawText(screen, fmt.Sprintf("X: %4.0f  Y: %4.0f", p.Pos.X, p.Pos.Y), mono, m, top, cfg.Colors.Cyan)
	drawText(screen, fmt.Sprintf("%s: %.1f", ui.HUDSpeed, p.Vel.Len()), mono, m, top+cfg.HUD.LineSpacing, cfg.Colors.Cyan)

	small := fonts.Small.Get()
	bottom := float64(screen.Bounds().Dy()) - m - cfg.HUD.LineSpacing*2
	drawText(screen, ui.HUDMove, small, m, bottom, cfg.Colors.Muted)
	drawText(screen, ui.HUDHint, small, m, bottom+cfg.HUD.LineSpacing, cfg.Colors.Muted)
}

// DrawToast renders the floating message centered near the top of the screen.
func DrawToast(ecs *ecs.ECS, screen *ebiten.Image) {
	t := GetOrCreateToast(ecs)
	if !t.Visible() {
		return
	}

	face := fonts.Body.Get()
	tw, th := text.Measure(t.Text, face, 0)
	w := tw + toastPadding*2
	h := th + toastPadding*2
	x := (float64(screen.Bounds().Dx()) - w) / 2
	y := cfg.Page.TopBarHeight + 16

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), withAlpha(cfg.Colors.ToastBg, t.Alpha), true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+toastPadding, y+toastPadding)
	op.ColorScale.ScaleWithColor(cfg.Colors.ToastText)
	op.ColorScale.ScaleAlpha(float32(t.Alpha))
	text.Draw(screen, t.Text, face, op)
}
