package config

import "image/color"

// Config holds window-level settings
type Config struct {
	Title  string
	Width  int
	Height int
}

// PlayerConfig contains all avatar-related configuration values
type PlayerConfig struct {
	Radius   float64
	Speed    float64 // pixels per frame while a direction is held
	Friction float64 // per-frame velocity multiplier when no input (0 < f < 1)

	// Visual
	AuraRadius      float64
	InnerRingInset  float64
	DirectionLength float64
}

// HotspotConfig contains the two distinct proximity thresholds.
// TriggerRadius navigates; GlowRadius only changes how the hotspot is drawn.
type HotspotConfig struct {
	TriggerRadius float64
	GlowRadius    float64
	LabelSize     float64
}

// ParticleConfig contains pointer-trail and scroll particle tuning
type ParticleConfig struct {
	MaxLive int // hard cap, oldest evicted first

	// Pointer trail
	TrailPerMove   int
	TrailSpread    float64 // spawn offset range around the pointer
	TrailSpeed     float64 // initial velocity range
	TrailSizeMin   float64
	TrailSizeRange float64
	TrailDecayMin  float64
	TrailDecayVar  float64
	CaptureRadius  float64
	SteerForce     float64

	// Scroll
	ScrollPerEvent  int
	ScrollSizeMin   float64
	ScrollSizeRange float64
	ScrollRiseMin   float64
	ScrollRiseRange float64
	ScrollDrift     float64
	ScrollDecay     float64
	ScrollShrink    float64

	ExitMargin float64
}

// OrbConfig controls the large drifting glows behind the game canvas
type OrbConfig struct {
	Count       int
	RadiusMin   float64
	RadiusRange float64
	Drift       float64
	OpacityMin  float64
	OpacityVar  float64
}

// CreatureConfig contains the decorative creature's layout and timers (seconds)
type CreatureConfig struct {
	MarginX, MarginY float64
	BodyRadius       float64
	EyeSpacing       float64
	EyeRadius        float64
	PupilRadius      float64
	PupilTravel      float64

	BlinkIntervalMin  float64
	BlinkIntervalVar  float64
	BlinkDuration     float64
	SpeechIntervalMin float64
	SpeechIntervalVar float64
	SpeechDuration    float64
	SpeechFirstDelay  float64
}

// ClockConfig controls delta-time integration
type ClockConfig struct {
	FrameRate     float64 // reference rate; dt == 1 at this rate
	MaxFrameDelta float64 // clamp for long stalls (window drag, breakpoints)
}

// PageConfig controls the host page layout and navigation scroll
type PageConfig struct {
	TopBarHeight   float64
	MarginX        float64
	SectionPadding float64
	TitleHeight    float64
	LineHeight     float64
	SkillRowHeight float64
	ProjectHeight  float64 // one project card: title, description, tech
	WheelStep      float64
	ScrollDuration float32 // seconds
}

// ToastConfig controls the fade timings of floating messages (seconds)
type ToastConfig struct {
	FadeIn  float32
	Hold    float32
	FadeOut float32
}

// HUDConfig contains in-game HUD layout
type HUDConfig struct {
	Margin      float64
	LineSpacing float64
	GridSize    float64
}

// ColorConfig is the neon palette shared by the page and the game canvas
type ColorConfig struct {
	Cyan        color.RGBA
	Pink        color.RGBA
	White       color.RGBA
	Muted       color.RGBA
	Accent      color.RGBA
	PageBg      color.RGBA
	Grid        color.RGBA
	Gradient    [3]color.RGBA
	CreatureFur color.RGBA
	BubbleBg    color.RGBA
	ToastBg     color.RGBA
	ToastText   color.RGBA
}

// DebugConfig contains switches used during development
type DebugConfig struct {
	StartInGame   bool
	ShowColliders bool
}

var (
	C         Config
	Player    PlayerConfig
	Hotspot   HotspotConfig
	Particles ParticleConfig
	Orbs      OrbConfig
	Creature  CreatureConfig
	Clock     ClockConfig
	Page      PageConfig
	Toast     ToastConfig
	HUD       HUDConfig
	Colors    ColorConfig
	Debug     DebugConfig

	DarkColors  ColorConfig
	LightColors ColorConfig
)

// Theme names as persisted.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ApplyTheme switches Colors to the named palette. Anything but ThemeLight
// is dark.
func ApplyTheme(name string) {
	if name == ThemeLight {
		Colors = LightColors
		return
	}
	Colors = DarkColors
}

func init() {
	C = Config{
		Title:  "Portfolio World",
		Width:  800,
		Height: 600,
	}

	Player = PlayerConfig{
		Radius:          12,
		Speed:           3,
		Friction:        0.85,
		AuraRadius:      40,
		InnerRingInset:  3,
		DirectionLength: 20,
	}

	Hotspot = HotspotConfig{
		TriggerRadius: 28,
		GlowRadius:    80,
		LabelSize:     20,
	}

	Particles = ParticleConfig{
		MaxLive: 400,

		TrailPerMove:   2,
		TrailSpread:    50,
		TrailSpeed:     4,
		TrailSizeMin:   1,
		TrailSizeRange: 2,
		TrailDecayMin:  0.005,
		TrailDecayVar:  0.01,
		CaptureRadius:  300,
		SteerForce:     0.1,

		ScrollPerEvent:  1,
		ScrollSizeMin:   0.5,
		ScrollSizeRange: 2,
		ScrollRiseMin:   1,
		ScrollRiseRange: 2,
		ScrollDrift:     2,
		ScrollDecay:     0.005,
		ScrollShrink:    0.98,

		ExitMargin: 50,
	}

	Orbs = OrbConfig{
		Count:       6,
		RadiusMin:   150,
		RadiusRange: 100,
		Drift:       0.5,
		OpacityMin:  0.1,
		OpacityVar:  0.1,
	}

	Creature = CreatureConfig{
		MarginX:     90,
		MarginY:     90,
		BodyRadius:  34,
		EyeSpacing:  26,
		EyeRadius:   10,
		PupilRadius: 4,
		PupilTravel: 4.5,

		BlinkIntervalMin:  2.5,
		BlinkIntervalVar:  3.5,
		BlinkDuration:     0.15,
		SpeechIntervalMin: 9,
		SpeechIntervalVar: 6,
		SpeechDuration:    3.5,
		SpeechFirstDelay:  2,
	}

	Clock = ClockConfig{
		FrameRate:     60,
		MaxFrameDelta: 4,
	}

	Page = PageConfig{
		TopBarHeight:   44,
		MarginX:        48,
		SectionPadding: 56,
		TitleHeight:    48,
		LineHeight:     22,
		SkillRowHeight: 26,
		ProjectHeight:  72,
		WheelStep:      48,
		ScrollDuration: 0.6,
	}

	Toast = ToastConfig{
		FadeIn:  0.25,
		Hold:    1.5,
		FadeOut: 0.5,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineSpacing: 20,
		GridSize:    50,
	}

	DarkColors = ColorConfig{
		Cyan:   color.RGBA{0, 240, 255, 255},
		Pink:   color.RGBA{255, 45, 149, 255},
		White:  color.RGBA{255, 255, 255, 255},
		Muted:  color.RGBA{136, 146, 166, 255},
		Accent: color.RGBA{255, 107, 53, 255},
		PageBg: color.RGBA{15, 23, 42, 255},
		Grid:   color.RGBA{0, 29, 31, 31}, // cyan at ~12% alpha, premultiplied
		Gradient: [3]color.RGBA{
			{6, 3, 16, 255},
			{11, 7, 32, 255},
			{5, 2, 10, 255},
		},
		CreatureFur: color.RGBA{120, 82, 220, 255},
		BubbleBg:    color.RGBA{240, 244, 255, 235},
		ToastBg:     color.RGBA{0, 216, 230, 230},
		ToastText:   color.RGBA{10, 14, 39, 255},
	}

	LightColors = ColorConfig{
		Cyan:   color.RGBA{0, 131, 143, 255},
		Pink:   color.RGBA{214, 30, 120, 255},
		White:  color.RGBA{15, 23, 42, 255}, // foreground text
		Muted:  color.RGBA{71, 85, 105, 255},
		Accent: color.RGBA{234, 88, 12, 255},
		PageBg: color.RGBA{241, 245, 249, 255},
		Grid:   color.RGBA{0, 16, 17, 31},
		Gradient: [3]color.RGBA{
			{226, 232, 240, 255},
			{241, 245, 249, 255},
			{203, 213, 225, 255},
		},
		CreatureFur: color.RGBA{139, 92, 246, 255},
		BubbleBg:    color.RGBA{255, 255, 255, 240},
		ToastBg:     color.RGBA{0, 131, 143, 230},
		ToastText:   color.RGBA{255, 255, 255, 255},
	}

	Colors = DarkColors

	Debug = DebugConfig{
		StartInGame:   false,
		ShowColliders: false,
	}
}
