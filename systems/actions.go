package systems

import (
	"log"

	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActions runs the keyboard shortcuts pressed this tick.
func UpdateActions(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	world := GetOrCreateWorld(ecs)

	switch {
	case input.JustPressed(cfg.ActionLeaveGame) && world.GameMode:
		ExitGameMode(ecs)
	case input.JustPressed(cfg.ActionToggleGame):
		ToggleGameMode(ecs)
	}

	if input.JustPressed(cfg.ActionToggleSound) {
		ToggleSound(ecs)
	}
	if input.JustPressed(cfg.ActionToggleTheme) {
		ToggleTheme(ecs)
	}
	if input.JustPressed(cfg.ActionToggleDebug) {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}

	// page-only shortcuts share letters with movement keys
	if world.GameMode {
		return
	}
	if input.JustPressed(cfg.ActionToggleLanguage) {
		ToggleLanguage(ecs)
	}
	if input.JustPressed(cfg.ActionCopyEmail) {
		CopyEmail(ecs)
	}
	if input.JustPressed(cfg.ActionNextFilter) {
		CycleProjectFilter(ecs)
	}
}

// ToggleLanguage switches between the available languages, persists the
// choice and lays the page out again.
func ToggleLanguage(ecs *ecs.ECS) string {
	prefs := GetOrCreatePrefs(ecs)
	prefs.Language = content.Default().NextLanguage(prefs.Language)
	saveItem(KeyLanguage, prefs.Language)
	RefreshPage(ecs)
	return prefs.Language
}

// ToggleTheme flips between the dark and light palettes and persists the
// choice.
func ToggleTheme(ecs *ecs.ECS) string {
	prefs := GetOrCreatePrefs(ecs)
	if prefs.Theme == cfg.ThemeLight {
		prefs.Theme = cfg.ThemeDark
	} else {
		prefs.Theme = cfg.ThemeLight
	}
	saveItem(KeyTheme, prefs.Theme)
	cfg.ApplyTheme(prefs.Theme)
	return prefs.Theme
}

// CopyEmail puts the contact address on the system clipboard.
func CopyEmail(ecs *ecs.ECS) bool {
	doc := content.Default()
	locale := doc.Locale(GetOrCreatePrefs(ecs).Language)
	if err := writeClipboard(doc.Email); err != nil {
		log.Printf("Warning: Could not copy e-mail: %v", err)
		ShowToast(ecs, doc.Email)
		return false
	}
	ShowToast(ecs, locale.UI.Copied)
	return true
}
