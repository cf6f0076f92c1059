package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/quasilyte/gdata"
)

// Preference keys as stored on disk (or in localStorage on the web).
const (
	KeySoundEnabled   = "soundEnabled"
	KeyOnboardingSeen = "onboardingSeen"
	KeyLanguage       = "language"
	KeyTheme          = "theme"
)

// Store is the subset of *gdata.Manager the preferences need.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// MemoryStore keeps items in a map. Used when gdata is unavailable and in tests.
type MemoryStore map[string][]byte

func (m MemoryStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m MemoryStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

var prefStore Store

// InitPersistence opens the gdata manager for preference storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "portfolio_world",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		prefStore = MemoryStore{}
		return err
	}
	prefStore = m
	return nil
}

// SetStore replaces the preference backend.
func SetStore(s Store) {
	prefStore = s
}

// LoadPrefs reads every preference, falling back to defaults for missing or
// unreadable items.
func LoadPrefs() components.PrefsData {
	return components.PrefsData{
		SoundEnabled:   loadBool(KeySoundEnabled, false),
		OnboardingSeen: loadBool(KeyOnboardingSeen, false),
		Language:       loadString(KeyLanguage, content.DefaultLanguage),
		Theme:          loadTheme(),
	}
}

// SavePrefs writes every preference. Failures are logged and otherwise ignored.
func SavePrefs(p *components.PrefsData) {
	saveItem(KeySoundEnabled, p.SoundEnabled)
	saveItem(KeyOnboardingSeen, p.OnboardingSeen)
	saveItem(KeyLanguage, p.Language)
	saveItem(KeyTheme, p.Theme)
}

// loadTheme treats anything but a stored "light" as dark.
func loadTheme() string {
	if loadString(KeyTheme, cfg.ThemeDark) == cfg.ThemeLight {
		return cfg.ThemeLight
	}
	return cfg.ThemeDark
}

func loadBool(key string, def bool) bool {
	var v bool
	if !loadItem(key, &v) {
		return def
	}
	return v
}

func loadString(key, def string) string {
	var v string
	if !loadItem(key, &v) || v == "" {
		return def
	}
	return v
}

func loadItem(key string, into any) bool {
	if prefStore == nil {
		return false
	}
	data, err := prefStore.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}
	if err := json.Unmarshal(data, into); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveItem(key string, v any) {
	if prefStore == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return
	}
	if err := prefStore.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
	}
}
