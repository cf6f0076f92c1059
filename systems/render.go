package systems

import (
	"image/color"
	"math"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cached background, rebuilt when the canvas size or the palette changes.
var (
	backdrop      *ebiten.Image
	backdropOp    = &ebiten.DrawImageOptions{}
	backdropStops [3]color.RGBA
)

// orbGlowSteps is how many concentric discs approximate a radial gradient.
const orbGlowSteps = 6

// DrawBackground paints the vertical gradient and the grid.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if backdrop == nil || backdrop.Bounds().Dx() != w || backdrop.Bounds().Dy() != h || backdropStops != cfg.Colors.Gradient {
		if backdrop != nil {
			backdrop.Deallocate()
		}
		backdrop = buildBackdrop(w, h)
		backdropStops = cfg.Colors.Gradient
	}
	backdropOp.GeoM.Reset()
	screen.DrawImage(backdrop, backdropOp)
}

func buildBackdrop(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	stops := cfg.Colors.Gradient

	// horizontal bands blend the three stops top to bottom
	const band = 4
	for y := 0; y < h; y += band {
		t := float64(y) / math.Max(float64(h-1), 1)
		var c color.RGBA
		if t < 0.5 {
			c = lerpColor(stops[0], stops[1], t*2)
		} else {
			c = lerpColor(stops[1], stops[2], (t-0.5)*2)
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(w), band, c, false)
	}

	grid := float32(cfg.HUD.GridSize)
	for x := float32(0); x <= float32(w); x += grid {
		vector.StrokeLine(img, x, 0, x, float32(h), 1, cfg.Colors.Grid, false)
	}
	for y := float32(0); y <= float32(h); y += grid {
		vector.StrokeLine(img, 0, y, float32(w), y, 1, cfg.Colors.Grid, false)
	}
	return img
}

// DrawOrbs renders the drifting glows as stacked translucent discs.
func DrawOrbs(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Orb.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Orb.Get(e)
		for i := orbGlowSteps; i >= 1; i-- {
			frac := float64(i) / orbGlowSteps
			a := o.Opacity * (1 - frac) * 0.6
			vector.DrawFilledCircle(screen,
				float32(o.Pos.X), float32(o.Pos.Y), float32(o.Radius*frac),
				withAlpha(paletteColor(o.Color), a), true)
		}
	})
}

// DrawHotspots outlines every hotspot and prints its label. Hotspots in glow
// range switch to pink with a thicker stroke.
func DrawHotspots(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()

	components.Hotspot.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hotspot.Get(e)
		c, stroke := cfg.Colors.Cyan, float32(2)
		if h.Near {
			c, stroke = cfg.Colors.Pink, 4
		}

		switch h.Shape {
		case components.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(h.Center.X), float32(h.Center.Y), float32(h.Radius), withAlpha(c, 0.15), true)
			vector.StrokeCircle(screen, float32(h.Center.X), float32(h.Center.Y), float32(h.Radius), stroke, c, true)
		case components.ShapeRect:
			x, y, w, ht := h.Bounds()
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(ht), withAlpha(c, 0.15), false)
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(ht), stroke, c, false)
		}

		_, _, _, ht := h.Bounds()
		drawCentered(screen, h.Label, face, h.Center.X, h.Center.Y+ht/2+cfg.Hotspot.LabelSize/2, cfg.Colors.White)
	})
}

// DrawCreature paints the companion: body, eyes following the avatar and the
// speech bubble.
func DrawCreature(ecs *ecs.ECS, screen *ebiten.Image) {
	now := GetOrCreateWorld(ecs).Now

	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Creature.Get(e)
		conf := cfg.Creature
		ax, ay := float32(c.Anchor.X), float32(c.Anchor.Y)

		vector.DrawFilledCircle(screen, ax, ay, float32(conf.BodyRadius), cfg.Colors.CreatureFur, true)

		for _, side := range [2]float64{-1, 1} {
			ex := c.Anchor.X + side*conf.EyeSpacing/2
			ey := c.Anchor.Y - conf.BodyRadius/4
			if c.Blinking(now) {
				vector.StrokeLine(screen,
					float32(ex-conf.EyeRadius), float32(ey),
					float32(ex+conf.EyeRadius), float32(ey),
					2, cfg.Colors.White, true)
				continue
			}
			vector.DrawFilledCircle(screen, float32(ex), float32(ey), float32(conf.EyeRadius), cfg.Colors.White, true)
			px := ex + math.Cos(c.LookAngle)*conf.PupilTravel
			py := ey + math.Sin(c.LookAngle)*conf.PupilTravel
			vector.DrawFilledCircle(screen, float32(px), float32(py), float32(conf.PupilRadius), cfg.Colors.ToastText, true)
		}

		if c.Speaking(now) && c.BubbleScale > 0 {
			drawBubble(screen, c)
		}
	})
}

func drawBubble(screen *ebiten.Image, c *components.CreatureData) {
	face := fonts.Small.Get()
	tw, th := text.Measure(c.Line, face, 0)

	const pad = 8
	w := (tw + pad*2) * c.BubbleScale
	h := (th + pad*2) * c.BubbleScale
	// bubble sits above and left of the body, clamped to the canvas
	x := math.Max(c.Anchor.X-w+cfg.Creature.BodyRadius, 4)
	y := math.Max(c.Anchor.Y-cfg.Creature.BodyRadius-h-10, 4)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.Colors.BubbleBg, true)
	if c.BubbleScale < 0.95 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x+pad, y+pad)
	op.ColorScale.ScaleWithColor(cfg.Colors.ToastText)
	text.Draw(screen, c.Line, face, op)
}

// DrawPlayer renders the avatar: outer aura, body, inner ring and a heading tick.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		conf := cfg.Player
		x, y := float32(p.Pos.X), float32(p.Pos.Y)

		vector.DrawFilledCircle(screen, x, y, float32(conf.AuraRadius), withAlpha(cfg.Colors.Cyan, 0.12), true)
		vector.DrawFilledCircle(screen, x, y, float32(p.Radius), cfg.Colors.Cyan, true)
		vector.StrokeCircle(screen, x, y, float32(p.Radius-conf.InnerRingInset), 1.5, cfg.Colors.White, true)

		hx := p.Pos.X + math.Cos(p.Heading)*conf.DirectionLength
		hy := p.Pos.Y + math.Sin(p.Heading)*conf.DirectionLength
		vector.StrokeLine(screen, x, y, float32(hx), float32(hy), 2, cfg.Colors.Pink, true)
	})
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func paletteColor(t components.ColorTag) color.RGBA {
	if t == components.ColorPink {
		return cfg.Colors.Pink
	}
	return cfg.Colors.Cyan
}

// withAlpha scales a straight color to a premultiplied one at alpha a.
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = math.Max(0, math.Min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
