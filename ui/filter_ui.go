package ui

import (
	"image/color"

	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/systems"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// FilterBar is the row of project category buttons. It shows under the top
// bar while the projects section is on screen and the page has the input.
type FilterBar struct {
	Container *widget.Container

	owner   *PortfolioUI
	buttons []*widget.Button
	ids     []string
	marked  string
}

func NewFilterBar(owner *PortfolioUI) *FilterBar {
	fb := &FilterBar{owner: owner}
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}

	fb.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 14, 39, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				Padding: &widget.Insets{
					Top:   int(cfg.Page.TopBarHeight) + 8,
					Right: int(cfg.Page.MarginX),
				},
			}),
		),
	)
	fb.Refresh()
	fb.Container.GetWidget().Visibility = widget.Visibility_Hide
	return fb
}

// Refresh rebuilds the buttons for the current language.
func (fb *FilterBar) Refresh() {
	locale := fb.owner.locale()
	fb.Container.RemoveChildren()
	fb.buttons = fb.buttons[:0]
	fb.ids = locale.Filters()

	for _, id := range fb.ids {
		id := id
		b := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(80, 24),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
			),
			widget.ButtonOpts.Image(filterButtonImage()),
			widget.ButtonOpts.Text(locale.FilterLabel(id), &fb.owner.smallFace, filterTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				systems.SetProjectFilter(fb.owner.ECS, id)
				fb.mark()
			}),
		)
		fb.buttons = append(fb.buttons, b)
		fb.Container.AddChild(b)
	}
	fb.mark()
}

// Update shows the bar only where it applies and follows filter changes
// made from the keyboard.
func (fb *FilterBar) Update() {
	world := systems.GetOrCreateWorld(fb.owner.ECS)
	page := systems.GetOrCreatePage(fb.owner.ECS)

	vis := widget.Visibility_Hide
	if !world.GameMode && page.InView(content.ProjectsSection, cfg.Page.TopBarHeight, world.Height) {
		vis = widget.Visibility_Show
	}
	fb.Container.GetWidget().Visibility = vis

	if activeFilter(page.Filter) != fb.marked {
		fb.mark()
	}
}

// mark disables the active filter's button so it reads as selected.
func (fb *FilterBar) mark() {
	active := activeFilter(systems.GetOrCreatePage(fb.owner.ECS).Filter)
	for i, b := range fb.buttons {
		b.GetWidget().Disabled = fb.ids[i] == active
	}
	fb.marked = active
}

func activeFilter(id string) string {
	if id == "" {
		return content.AllProjects
	}
	return id
}

func filterButtonImage() *widget.ButtonImage {
	img := buttonImage()
	img.Disabled = image.NewNineSliceColor(color.RGBA{0, 96, 110, 255})
	return img
}

func filterTextColor() *widget.ButtonTextColor {
	c := buttonTextColor()
	c.Disabled = chrome.Cyan
	return c
}
