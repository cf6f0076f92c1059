package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const skillBarWidth = 220

// DrawPage renders the visible part of the scrolled page. The section being
// navigated to gets an accent rule next to its heading.
func DrawPage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.PageBg)

	page := GetOrCreatePage(ecs)
	locale := content.Default().Locale(GetOrCreatePrefs(ecs).Language)
	viewH := float64(screen.Bounds().Dy())

	for i, a := range page.Anchors {
		top := a.Top - page.ScrollY
		if top+a.Height < 0 || top > viewH {
			continue
		}
		if i >= len(locale.Sections) {
			break
		}
		drawSection(screen, locale, locale.Sections[i], page.Filter, top, a.ID == page.Target)
	}
}

func drawSection(screen *ebiten.Image, locale *content.Locale, s content.Section, filter string, top float64, targeted bool) {
	p := cfg.Page
	x := p.MarginX
	y := top + p.SectionPadding

	heading := cfg.Colors.Cyan
	if targeted {
		heading = cfg.Colors.Pink
		vector.DrawFilledRect(screen, float32(x-16), float32(y), 4, float32(p.TitleHeight-12), cfg.Colors.Pink, false)
	}
	drawText(screen, locale.Heading(s.Title), fonts.Heading.Get(), x, y, heading)
	y += p.TitleHeight

	body := fonts.Body.Get()
	for _, line := range s.Lines {
		drawText(screen, line, body, x, y, cfg.Colors.White)
		y += p.LineHeight
	}

	small := fonts.Small.Get()
	labelW := 160.0
	for _, sk := range s.Skills {
		level := gamemath.Clamp(sk.Level, 0, 1)
		drawText(screen, sk.Name, small, x, y+4, cfg.Colors.Muted)
		bx := float32(x + labelW)
		by := float32(y + 6)
		vector.DrawFilledRect(screen, bx, by, skillBarWidth, 10, withAlpha(cfg.Colors.Cyan, 0.2), false)
		vector.DrawFilledRect(screen, bx, by, float32(skillBarWidth*level), 10, cfg.Colors.Cyan, false)
		drawText(screen, fmt.Sprintf("%d%%", int(level*100+0.5)), small, x+labelW+skillBarWidth+10, y+4, cfg.Colors.Muted)
		y += p.SkillRowHeight
	}

	if len(s.Projects) > 0 {
		drawProjects(screen, locale, content.FilterProjects(s.Projects, filter), x, y)
	}

	// divider
	bottom := top + SectionHeight(s, filter) - 1
	vector.StrokeLine(screen, float32(x), float32(bottom), float32(screen.Bounds().Dx())-float32(x), float32(bottom), 1, withAlpha(cfg.Colors.Muted, 0.3), false)
}

// drawProjects lays the cards out one per ProjectHeight row, or the
// empty-state line when the filter left nothing.
func drawProjects(screen *ebiten.Image, locale *content.Locale, projects []content.Project, x, y float64) {
	small := fonts.Small.Get()
	if len(projects) == 0 {
		drawText(screen, locale.UI.NoProjects, fonts.Body.Get(), x, y, cfg.Colors.Muted)
		return
	}

	p := cfg.Page
	w := float32(screen.Bounds().Dx()) - float32(x)*2
	for _, pr := range projects {
		card := float32(p.ProjectHeight - 8)
		vector.DrawFilledRect(screen, float32(x), float32(y), w, card, withAlpha(cfg.Colors.Cyan, 0.06), false)
		vector.StrokeRect(screen, float32(x), float32(y), w, card, 1, withAlpha(cfg.Colors.Cyan, 0.3), false)

		tx := x + 12
		drawText(screen, pr.Title, fonts.Body.Get(), tx, y+6, cfg.Colors.White)
		tag := locale.FilterLabel(pr.Category)
		tagW, _ := text.Measure(tag, small, 0)
		drawText(screen, tag, small, x+float64(w)-tagW-12, y+8, cfg.Colors.Pink)
		drawText(screen, pr.Description, small, tx, y+28, cfg.Colors.Muted)
		drawText(screen, strings.Join(pr.Tech, " · "), small, tx, y+46, cfg.Colors.Cyan)
		y += p.ProjectHeight
	}
}

// DrawParticles renders the page particles: scroll particles first, then the
// pointer trail on top.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	field := GetOrCreateParticles(ecs)
	for _, kind := range [2]components.ParticleKind{components.ParticleScroll, components.ParticleTrail} {
		for i := range field.Items {
			pt := &field.Items[i]
			if pt.Kind != kind {
				continue
			}
			vector.DrawFilledCircle(screen,
				float32(pt.Pos.X), float32(pt.Pos.Y), float32(pt.Size),
				withAlpha(paletteColor(pt.Color), pt.Life), true)
		}
	}
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
