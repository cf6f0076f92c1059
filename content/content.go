// Package content holds the portfolio's text: page sections, skills, chatbot
// knowledge and UI strings, per language.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/portfolio-world/chatbot"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used until the visitor picks another one.
const DefaultLanguage = "fr"

// AllProjects is the project filter that keeps every category.
const AllProjects = "all"

// ProjectsSection is the section holding the project cards.
const ProjectsSection = "projets"

//go:embed portfolio.yaml
var portfolioYAML []byte

type Skill struct {
	Name  string  `yaml:"name"`
	Level float64 `yaml:"level"` // 0..1
}

// Project is one card of the projects section.
type Project struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
}

type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Section struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Lines    []string  `yaml:"lines"`
	Skills   []Skill   `yaml:"skills"`
	Projects []Project `yaml:"projects"`
}

// FilterProjects keeps the projects of one category. An empty id or
// AllProjects keeps them all.
func FilterProjects(projects []Project, category string) []Project {
	if category == "" || category == AllProjects {
		return projects
	}
	var out []Project
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// UIStrings are the short labels used by buttons, the HUD and toasts.
type UIStrings struct {
	Play            string `yaml:"play"`
	Exit            string `yaml:"exit"`
	SoundOn         string `yaml:"sound_on"`
	SoundOff        string `yaml:"sound_off"`
	Language        string `yaml:"language"`
	Chat            string `yaml:"chat"`
	ChatTitle       string `yaml:"chat_title"`
	ChatPlaceholder string `yaml:"chat_placeholder"`
	ChatSend        string `yaml:"chat_send"`
	ChatTyping      string `yaml:"chat_typing"`
	Onboarding      string `yaml:"onboarding"`
	Found           string `yaml:"found"` // printf format taking the hotspot label
	Copied          string `yaml:"copied"`
	CopyHint        string `yaml:"copy_hint"`
	HUDMove         string `yaml:"hud_move"`
	HUDHint         string `yaml:"hud_hint"`
	HUDSpeed        string `yaml:"hud_speed"`
	ThemeDark       string `yaml:"theme_dark"`
	ThemeLight      string `yaml:"theme_light"`
	FilterAll       string `yaml:"filter_all"`
	NoProjects      string `yaml:"no_projects"`
}

type Locale struct {
	Name       string                `yaml:"name"`
	UI         UIStrings             `yaml:"ui"`
	Sections   []Section             `yaml:"sections"`
	Creature   []string              `yaml:"creature"`
	Chat       chatbot.KnowledgeBase `yaml:"chat"`
	Categories []Category            `yaml:"categories"`

	tag    language.Tag
	header cases.Caser
}

// Found formats the toast shown after walking into a hotspot.
func (l *Locale) Found(label string) string {
	return fmt.Sprintf(l.UI.Found, label)
}

// Heading upper-cases a section title with the language's casing rules.
func (l *Locale) Heading(title string) string {
	return l.header.String(title)
}

func (l *Locale) hasCategory(id string) bool {
	for _, c := range l.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// Section returns the section with the given id.
func (l *Locale) Section(id string) (Section, bool) {
	for _, s := range l.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// Filters lists the project filter ids in display order, AllProjects first.
func (l *Locale) Filters() []string {
	ids := make([]string, 0, len(l.Categories)+1)
	ids = append(ids, AllProjects)
	for _, c := range l.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// FilterLabel is the button caption of a project filter.
func (l *Locale) FilterLabel(id string) string {
	if id == "" || id == AllProjects {
		return l.UI.FilterAll
	}
	for _, c := range l.Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}

// NextFilter cycles through Filters. Unknown ids restart at AllProjects.
func (l *Locale) NextFilter(current string) string {
	ids := l.Filters()
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return AllProjects
}

type Document struct {
	Owner     string             `yaml:"owner"`
	Email     string             `yaml:"email"`
	Order     []string           `yaml:"order"` // first entry is the fallback
	Languages map[string]*Locale `yaml:"languages"`

	matcher language.Matcher
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if len(doc.Order) == 0 {
		return nil, errors.New("content lists no languages")
	}

	tags := make([]language.Tag, 0, len(doc.Order))
	for _, code := range doc.Order {
		loc, ok := doc.Languages[code]
		if !ok || loc == nil {
			return nil, fmt.Errorf("language %q listed but not defined", code)
		}
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
		for i, s := range loc.Sections {
			if s.ID == "" {
				return nil, fmt.Errorf("language %q: section %d has no id", code, i)
			}
			for _, p := range s.Projects {
				if !loc.hasCategory(p.Category) {
					return nil, fmt.Errorf("language %q: project %q has unknown category %q", code, p.Title, p.Category)
				}
			}
		}
		loc.tag = tag
		loc.header = cases.Upper(tag)
		tags = append(tags, tag)
	}
	doc.matcher = language.NewMatcher(tags)
	return &doc, nil
}

// Match returns the supported language code closest to pref.
func (d *Document) Match(pref string) string {
	tag, err := language.Parse(pref)
	if err != nil {
		return d.Order[0]
	}
	_, index, confidence := d.matcher.Match(tag)
	if confidence == language.No {
		return d.Order[0]
	}
	return d.Order[index]
}

// Locale returns the strings for the language closest to pref.
func (d *Document) Locale(pref string) *Locale {
	return d.Languages[d.Match(pref)]
}

// NextLanguage cycles through the supported languages.
func (d *Document) NextLanguage(current string) string {
	current = d.Match(current)
	for i, code := range d.Order {
		if code == current {
			return d.Order[(i+1)%len(d.Order)]
		}
	}
	return d.Order[0]
}

var (
	defaultDoc  *Document
	defaultOnce sync.Once
)

// Default returns the embedded portfolio content. A broken embedded document
// is a build mistake, so it panics.
func Default() *Document {
	defaultOnce.Do(func() {
		doc, err := Parse(portfolioYAML)
		if err != nil {
			panic("failed to load portfolio content: " + err.Error())
		}
		defaultDoc = doc
	})
	return defaultDoc
}
