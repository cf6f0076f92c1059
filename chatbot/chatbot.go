// Package chatbot answers visitor questions from a small keyword knowledge base.
package chatbot

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Entry is one topic the bot knows about. The first entry with any keyword
// contained in the lower-cased message answers it.
type Entry struct {
	Keywords []string `yaml:"keywords"`
	Response string   `yaml:"response"`
	Action   *Action  `yaml:"action,omitempty"`
}

// Action is an optional follow-up link shown under a reply.
type Action struct {
	Text    string `yaml:"text"`
	Section string `yaml:"section"`
}

// KnowledgeBase is everything the bot can say in one language.
type KnowledgeBase struct {
	Greeting string   `yaml:"greeting"`
	Entries  []Entry  `yaml:"entries"`
	Defaults []string `yaml:"defaults"`
}

// Reply is a bot message ready for display.
type Reply struct {
	Text   string
	Action *Action
}

type Bot struct {
	kb   KnowledgeBase
	pick func(n int) int
}

func New(kb KnowledgeBase) *Bot {
	return &Bot{kb: kb, pick: rand.Intn}
}

// Greeting is the first message shown when the chat opens.
func (b *Bot) Greeting() Reply {
	return Reply{Text: StripMarkup(b.kb.Greeting)}
}

// Answer matches msg against the knowledge base. Unknown messages get one of
// the default replies at random.
func (b *Bot) Answer(msg string) Reply {
	lower := strings.ToLower(strings.TrimSpace(msg))
	for _, e := range b.kb.Entries {
		for _, kw := range e.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return Reply{Text: StripMarkup(e.Response), Action: e.Action}
			}
		}
	}
	if len(b.kb.Defaults) == 0 {
		return Reply{}
	}
	return Reply{Text: StripMarkup(b.kb.Defaults[b.pick(len(b.kb.Defaults))])}
}

var boldMarkup = regexp.MustCompile(`\*\*(.*?)\*\*`)

// StripMarkup removes **bold** markers, keeping the enclosed text.
func StripMarkup(s string) string {
	return boldMarkup.ReplaceAllString(s, "$1")
}

// Message is one line of the conversation log.
type Message struct {
	FromBot bool
	Text    string
	Action  *Action
}

// Conversation holds the chat log and delays bot replies so they read as typed.
type Conversation struct {
	bot     *Bot
	Log     []Message
	pending *Reply
	due     time.Time
	delay   func() time.Duration
}

func NewConversation(bot *Bot) *Conversation {
	return &Conversation{
		bot: bot,
		delay: func() time.Duration {
			return 600*time.Millisecond + time.Duration(rand.Int63n(int64(500*time.Millisecond)))
		},
	}
}

// Open queues the greeting if nothing has been said yet.
func (c *Conversation) Open(now time.Time) {
	if len(c.Log) > 0 || c.pending != nil {
		return
	}
	r := c.bot.Greeting()
	c.pending = &r
	c.due = now.Add(500 * time.Millisecond)
}

// Send logs the visitor's message and schedules the bot's answer. Blank
// messages are ignored.
func (c *Conversation) Send(text string, now time.Time) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	c.flush()
	c.Log = append(c.Log, Message{Text: text})
	r := c.bot.Answer(text)
	c.pending = &r
	c.due = now.Add(c.delay())
	return true
}

// Typing reports whether a reply is still being "typed".
func (c *Conversation) Typing() bool {
	return c.pending != nil
}

// Update delivers the pending reply once its delay has passed and reports
// whether the log changed.
func (c *Conversation) Update(now time.Time) bool {
	if c.pending == nil || now.Before(c.due) {
		return false
	}
	c.flush()
	return true
}

func (c *Conversation) flush() {
	if c.pending == nil {
		return
	}
	c.Log = append(c.Log, Message{FromBot: true, Text: c.pending.Text, Action: c.pending.Action})
	c.pending = nil
}
