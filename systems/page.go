package systems

import (
	"log"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// PageNavigator scrolls the host page to a section and leaves game mode.
type PageNavigator struct {
	ECS *ecs.ECS
}

func (n PageNavigator) Navigate(sectionID string) {
	ScrollToSection(n.ECS, sectionID)
}

// ScrollToSection starts a smooth scroll to the top of a section. Unknown ids
// only leave game mode.
func ScrollToSection(ecs *ecs.ECS, sectionID string) {
	defer ExitGameMode(ecs)

	page := GetOrCreatePage(ecs)
	top, ok := page.AnchorOf(sectionID)
	if !ok {
		log.Printf("Warning: no section %q on the page", sectionID)
		return
	}
	target := gamemath.Clamp(top-cfg.Page.TopBarHeight, 0, page.MaxScroll)
	page.ScrollTween = gween.New(float32(page.ScrollY), float32(target), cfg.Page.ScrollDuration, ease.OutCubic)
	page.Target = sectionID
}

// UpdatePage applies wheel scrolling and advances any running scroll tween.
// Wheel input cancels a navigation in progress.
func UpdatePage(ecs *ecs.ECS) {
	world := GetOrCreateWorld(ecs)
	input := GetOrCreateInput(ecs)
	page := GetOrCreatePage(ecs)

	if !world.GameMode && input.ScrollDelta != 0 {
		page.ScrollTween = nil
		page.Target = ""
		page.ScrollY = gamemath.Clamp(page.ScrollY+input.ScrollDelta*cfg.Page.WheelStep, 0, page.MaxScroll)
	}

	if page.ScrollTween != nil {
		v, done := page.ScrollTween.Update(Seconds(world.Delta))
		page.ScrollY = float64(v)
		if done {
			page.ScrollTween = nil
			page.Target = ""
		}
	}
}

// SectionHeight is the vertical space a section takes on the page with the
// given project filter. A filter that hides every project leaves room for
// one line of empty-state text.
func SectionHeight(s content.Section, filter string) float64 {
	p := cfg.Page
	h := p.SectionPadding*2 + p.TitleHeight +
		float64(len(s.Lines))*p.LineHeight +
		float64(len(s.Skills))*p.SkillRowHeight
	if len(s.Projects) == 0 {
		return h
	}
	if n := len(content.FilterProjects(s.Projects, filter)); n > 0 {
		return h + float64(n)*p.ProjectHeight
	}
	return h + p.LineHeight
}

// LayoutPage stacks the sections below the top bar and recomputes the scroll range.
func LayoutPage(page *components.PageData, sections []content.Section, viewHeight float64) {
	page.Anchors = page.Anchors[:0]
	y := cfg.Page.TopBarHeight
	for _, s := range sections {
		h := SectionHeight(s, page.Filter)
		page.Anchors = append(page.Anchors, components.SectionAnchor{ID: s.ID, Top: y, Height: h})
		y += h
	}
	page.MaxScroll = y - viewHeight
	if page.MaxScroll < 0 {
		page.MaxScroll = 0
	}
	page.ScrollY = gamemath.Clamp(page.ScrollY, 0, page.MaxScroll)
}

// RefreshPage lays the page out again for the current language and canvas height.
func RefreshPage(ecs *ecs.ECS) {
	locale := content.Default().Locale(GetOrCreatePrefs(ecs).Language)
	LayoutPage(GetOrCreatePage(ecs), locale.Sections, GetOrCreateWorld(ecs).Height)
}

// SetProjectFilter shows one project category and lays the page out again.
func SetProjectFilter(ecs *ecs.ECS, category string) {
	if category == content.AllProjects {
		category = ""
	}
	GetOrCreatePage(ecs).Filter = category
	RefreshPage(ecs)
}

// CycleProjectFilter moves to the next category filter and returns its id.
func CycleProjectFilter(ecs *ecs.ECS) string {
	locale := content.Default().Locale(GetOrCreatePrefs(ecs).Language)
	current := GetOrCreatePage(ecs).Filter
	if current == "" {
		current = content.AllProjects
	}
	next := locale.NextFilter(current)
	SetProjectFilter(ecs, next)
	return next
}
