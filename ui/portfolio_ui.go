package ui

import (
	"image/color"
	"time"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/automoto/portfolio-world/fonts"
	"github.com/automoto/portfolio-world/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// PortfolioUI holds the ebitenui interface drawn over the page and the game:
// the top bar toggles and the chat panel.
type PortfolioUI struct {
	UI  *ebitenui.UI
	ECS *ecs.ECS
	Nav components.Navigator

	// Widget references for updates. Any of them may be nil when the
	// matching capability is missing.
	titleLabel  *widget.Label
	playButton  *widget.Button
	soundButton *widget.Button
	langButton  *widget.Button
	themeButton *widget.Button
	chatButton  *widget.Button
	chat        *ChatPanel
	filters     *FilterBar

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// last state the labels were built from
	shownLang  string
	shownSound bool
	shownGame  bool
	shownTheme string
}

// NewPortfolioUI builds the interface. The play button only exists when a
// world map was loaded; the chat only when the content has a knowledge base.
func NewPortfolioUI(e *ecs.ECS, nav components.Navigator) *PortfolioUI {
	pui := &PortfolioUI{
		ECS: e,
		Nav: nav,
	}

	pui.loadFonts()
	pui.buildUI()
	pui.refreshLabels()

	return pui
}

func (pui *PortfolioUI) loadFonts() {
	pui.titleFace = fonts.Heading.Get()
	pui.normalFace = fonts.Body.Get()
	pui.smallFace = fonts.Small.Get()
}

// now is the frame clock shared with the systems.
func (pui *PortfolioUI) now() time.Time {
	return systems.GetOrCreateWorld(pui.ECS).Now
}

func (pui *PortfolioUI) locale() *content.Locale {
	return content.Default().Locale(systems.GetOrCreatePrefs(pui.ECS).Language)
}

func (pui *PortfolioUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	rootContainer.AddChild(pui.buildTopBar())

	if _, ok := pui.locale().Section(content.ProjectsSection); ok {
		pui.filters = NewFilterBar(pui)
		rootContainer.AddChild(pui.filters.Container)
	}

	if len(pui.locale().Chat.Entries) > 0 {
		pui.chat = NewChatPanel(pui)
		rootContainer.AddChild(pui.chat.Container)
	}

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PortfolioUI) buildTopBar() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 14, 39, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(cfg.Page.TopBarHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	pui.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(content.Default().Owner, &pui.titleFace, &widget.LabelColor{
			Idle: chrome.Cyan,
		}),
		widget.LabelOpts.TextOpts(widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 0),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		)),
	)
	bar.AddChild(pui.titleLabel)

	if systems.GetOrCreateWorld(pui.ECS).Available {
		pui.playButton = pui.newButton(func() {
			systems.ToggleGameMode(pui.ECS)
		})
		bar.AddChild(pui.playButton)
	}

	pui.soundButton = pui.newButton(func() {
		systems.ToggleSound(pui.ECS)
	})
	bar.AddChild(pui.soundButton)

	pui.langButton = pui.newButton(func() {
		systems.ToggleLanguage(pui.ECS)
	})
	bar.AddChild(pui.langButton)

	pui.themeButton = pui.newButton(func() {
		systems.ToggleTheme(pui.ECS)
	})
	bar.AddChild(pui.themeButton)

	if len(pui.locale().Chat.Entries) > 0 {
		pui.chatButton = pui.newButton(func() {
			if pui.chat != nil {
				pui.chat.Toggle()
			}
		})
		bar.AddChild(pui.chatButton)
	}

	return bar
}

func (pui *PortfolioUI) newButton(onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(90, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text("", &pui.smallFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			pui.refreshLabels()
		}),
	)
}

// refreshLabels rewrites every button caption for the current language,
// sound and mode.
func (pui *PortfolioUI) refreshLabels() {
	prefs := systems.GetOrCreatePrefs(pui.ECS)
	world := systems.GetOrCreateWorld(pui.ECS)
	ui := pui.locale().UI

	if pui.playButton != nil {
		if world.GameMode {
			pui.playButton.SetText(ui.Exit)
		} else {
			pui.playButton.SetText(ui.Play)
		}
	}
	if pui.soundButton != nil {
		if prefs.SoundEnabled {
			pui.soundButton.SetText(ui.SoundOn)
		} else {
			pui.soundButton.SetText(ui.SoundOff)
		}
	}
	if pui.langButton != nil {
		pui.langButton.SetText(ui.Language)
	}
	if pui.themeButton != nil {
		if prefs.Theme == cfg.ThemeLight {
			pui.themeButton.SetText(ui.ThemeLight)
		} else {
			pui.themeButton.SetText(ui.ThemeDark)
		}
	}
	if pui.chatButton != nil {
		pui.chatButton.SetText(ui.Chat)
	}
	if pui.shownLang != "" && pui.shownLang != prefs.Language {
		if pui.chat != nil {
			pui.chat.Reset(pui.locale())
		}
		if pui.filters != nil {
			pui.filters.Refresh()
		}
	}

	pui.shownLang = prefs.Language
	pui.shownSound = prefs.SoundEnabled
	pui.shownGame = world.GameMode
	pui.shownTheme = prefs.Theme
}

// Update runs the widgets, then reports keyboard capture back to the input
// system so typing in the chat does not move the avatar.
func (pui *PortfolioUI) Update() {
	prefs := systems.GetOrCreatePrefs(pui.ECS)
	world := systems.GetOrCreateWorld(pui.ECS)
	if prefs.Language != pui.shownLang || prefs.SoundEnabled != pui.shownSound ||
		world.GameMode != pui.shownGame || prefs.Theme != pui.shownTheme {
		pui.refreshLabels()
	}

	if pui.chat != nil {
		pui.chat.Update()
	}
	if pui.filters != nil {
		pui.filters.Update()
	}
	pui.UI.Update()

	input := systems.GetOrCreateInput(pui.ECS)
	input.Captured = pui.chat != nil && pui.chat.Focused()
}

func (pui *PortfolioUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}

// chrome is the palette of the widgets, which stay dark in both themes.
var chrome = &cfg.DarkColors

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{22, 33, 62, 255}),
		Hover:   image.NewNineSliceColor(color.RGBA{0, 96, 110, 255}),
		Pressed: image.NewNineSliceColor(color.RGBA{0, 60, 70, 255}),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    chrome.White,
		Hover:   chrome.Cyan,
		Pressed: chrome.Pink,
	}
}
