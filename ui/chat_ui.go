package ui

import (
	"image/color"
	"time"

	"github.com/automoto/portfolio-world/chatbot"
	"github.com/automoto/portfolio-world/content"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

const (
	chatWidth      = 300
	chatLogHeight  = 260
	chatMaxVisible = 8 // newest messages kept on screen
)

// chatSession is the panel's conversation state, timed by the frame clock.
type chatSession struct {
	conv  *chatbot.Conversation
	open  bool
	clock func() time.Time
}

func newChatSession(kb chatbot.KnowledgeBase, clock func() time.Time) *chatSession {
	return &chatSession{
		conv:  chatbot.NewConversation(chatbot.New(kb)),
		clock: clock,
	}
}

// toggle flips the open state. Opening queues the greeting the first time.
func (s *chatSession) toggle() bool {
	s.open = !s.open
	if s.open {
		s.conv.Open(s.clock())
	}
	return s.open
}

func (s *chatSession) send(text string) bool {
	return s.conv.Send(text, s.clock())
}

// reset starts over with another knowledge base, greeting again if open.
func (s *chatSession) reset(kb chatbot.KnowledgeBase) {
	s.conv = chatbot.NewConversation(chatbot.New(kb))
	if s.open {
		s.conv.Open(s.clock())
	}
}

// deliver hands over a reply whose delay has passed.
func (s *chatSession) deliver() bool {
	return s.conv.Update(s.clock())
}

// ChatPanel is the scripted assistant: a message log, a typing indicator and
// a text input. Bot replies with an action get a button that navigates.
type ChatPanel struct {
	Container *widget.Container

	owner   *PortfolioUI
	session *chatSession

	titleLabel  *widget.Label
	logBox      *widget.Container
	typingLabel *widget.Label
	input       *widget.TextInput
	sendButton  *widget.Button
	shown       int
}

func NewChatPanel(owner *PortfolioUI) *ChatPanel {
	cp := &ChatPanel{owner: owner}
	cp.session = newChatSession(owner.locale().Chat, owner.now)
	cp.build()
	cp.setOpen(false)
	return cp
}

func (cp *ChatPanel) build() {
	ui := cp.owner.locale().UI
	padding := widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}

	cp.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{10, 14, 39, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(chatWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	cp.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text(ui.ChatTitle, &cp.owner.normalFace, &widget.LabelColor{
			Idle: chrome.Cyan,
		}),
	)
	cp.Container.AddChild(cp.titleLabel)

	cp.logBox = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(chatWidth-16, chatLogHeight),
		),
	)
	cp.Container.AddChild(cp.logBox)

	cp.typingLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &cp.owner.smallFace, &widget.LabelColor{
			Idle: chrome.Muted,
		}),
	)
	cp.Container.AddChild(cp.typingLabel)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	cp.input = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(chatWidth-96, 24)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{22, 33, 62, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&cp.owner.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         chrome.Cyan,
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(ui.ChatPlaceholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		widget.TextInputOpts.ClearOnSubmit(true),
		widget.TextInputOpts.IgnoreEmptySubmit(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			cp.Send(args.InputText)
		}),
	)
	row.AddChild(cp.input)

	cp.sendButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 24)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(ui.ChatSend, &cp.owner.smallFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			text := cp.input.GetText()
			cp.input.SetText("")
			cp.Send(text)
		}),
	)
	row.AddChild(cp.sendButton)

	cp.Container.AddChild(row)
}

// Toggle shows or hides the panel. The first opening queues the greeting.
func (cp *ChatPanel) Toggle() {
	cp.setOpen(cp.session.toggle())
}

func (cp *ChatPanel) setOpen(open bool) {
	if open {
		cp.Container.GetWidget().Visibility = widget.Visibility_Show
		return
	}
	cp.Container.GetWidget().Visibility = widget.Visibility_Hide
	if cp.input.IsFocused() {
		cp.input.Focus(false)
	}
}

// Focused reports whether the text input owns the keyboard.
func (cp *ChatPanel) Focused() bool {
	return cp.session.open && cp.input.IsFocused()
}

// Send posts a visitor message.
func (cp *ChatPanel) Send(text string) {
	if cp.session.send(text) {
		cp.rebuildLog()
	}
}

// Reset starts a fresh conversation in another language.
func (cp *ChatPanel) Reset(locale *content.Locale) {
	cp.session.reset(locale.Chat)
	cp.titleLabel.Label = locale.UI.ChatTitle
	cp.sendButton.SetText(locale.UI.ChatSend)
	cp.shown = -1
	cp.rebuildLog()
}

// Update delivers due bot replies and refreshes the typing indicator.
func (cp *ChatPanel) Update() {
	conv := cp.session.conv
	if cp.session.deliver() || cp.shown != len(conv.Log) {
		cp.rebuildLog()
	}
	cp.typingLabel.Label = ""
	if cp.session.open && conv.Typing() && len(conv.Log) > 0 {
		cp.typingLabel.Label = cp.owner.locale().UI.ChatTyping
	}
}

func (cp *ChatPanel) rebuildLog() {
	cp.logBox.RemoveChildren()

	log := cp.session.conv.Log
	if len(log) > chatMaxVisible {
		log = log[len(log)-chatMaxVisible:]
	}
	for _, m := range log {
		cp.logBox.AddChild(cp.messageWidget(m))
		if m.FromBot && m.Action != nil {
			cp.logBox.AddChild(cp.actionButton(m.Action))
		}
	}
	cp.shown = len(cp.session.conv.Log)
}

func (cp *ChatPanel) messageWidget(m chatbot.Message) *widget.Text {
	c := color.Color(chrome.White)
	pos := widget.RowLayoutPositionEnd
	if m.FromBot {
		c = chrome.Cyan
		pos = widget.RowLayoutPositionStart
	}
	return widget.NewText(
		widget.TextOpts.Text(m.Text, &cp.owner.smallFace, c),
		widget.TextOpts.MaxWidth(chatWidth-40),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: pos}),
		),
	)
}

func (cp *ChatPanel) actionButton(a *chatbot.Action) *widget.Button {
	section := a.Section
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 22)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(a.Text, &cp.owner.smallFace, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cp.owner.Nav != nil {
				cp.owner.Nav.Navigate(section)
			}
		}),
	)
}
