package systems

import (
	"errors"
	"testing"

	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/content"
)

func stubClipboard(t *testing.T, err error) *string {
	t.Helper()
	var written string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		written = s
		return err
	}
	t.Cleanup(func() { writeClipboard = orig })
	return &written
}

func TestCopyEmail(t *testing.T) {
	e, _ := newTestECS(t)
	written := stubClipboard(t, nil)
	doc := content.Default()

	if !CopyEmail(e) {
		t.Fatal("CopyEmail() = false")
	}
	if *written != doc.Email {
		t.Errorf("clipboard = %q, want %q", *written, doc.Email)
	}
	if got, want := GetOrCreateToast(e).Text, doc.Locale(content.DefaultLanguage).UI.Copied; got != want {
		t.Errorf("toast = %q, want %q", got, want)
	}
}

func TestCopyEmailFailureShowsAddress(t *testing.T) {
	e, _ := newTestECS(t)
	stubClipboard(t, errors.New("no clipboard"))

	if CopyEmail(e) {
		t.Fatal("CopyEmail() = true on failure")
	}
	if got := GetOrCreateToast(e).Text; got != content.Default().Email {
		t.Errorf("toast = %q, want the address", got)
	}
}

func TestToggleLanguagePersists(t *testing.T) {
	e, store := newTestECS(t)

	if got := ToggleLanguage(e); got != "en" {
		t.Fatalf("ToggleLanguage() = %q, want en", got)
	}
	if got := string(store[KeyLanguage]); got != `"en"` {
		t.Errorf("stored %s = %s, want %q", KeyLanguage, got, `"en"`)
	}
	if got := ToggleLanguage(e); got != content.DefaultLanguage {
		t.Errorf("second toggle = %q, want back to %q", got, content.DefaultLanguage)
	}
}

func TestPageShortcutsIgnoredInGame(t *testing.T) {
	e, _ := newTestECS(t)
	written := stubClipboard(t, nil)
	GetOrCreateWorld(e).GameMode = true

	in := GetOrCreateInput(e)
	in.Current[cfg.ActionToggleLanguage] = true
	in.Current[cfg.ActionCopyEmail] = true
	UpdateActions(e)

	if GetOrCreatePrefs(e).Language != content.DefaultLanguage {
		t.Error("language changed while playing")
	}
	if *written != "" {
		t.Error("e-mail copied while playing")
	}
}

func TestLeaveAndToggleGame(t *testing.T) {
	e, _ := newTestECS(t)
	in := GetOrCreateInput(e)

	in.Current[cfg.ActionToggleGame] = true
	UpdateActions(e)
	if !GetOrCreateWorld(e).GameMode {
		t.Fatal("toggle did not enter game mode")
	}

	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Current[cfg.ActionLeaveGame] = true
	UpdateActions(e)
	if GetOrCreateWorld(e).GameMode {
		t.Error("leave did not exit game mode")
	}
}

func TestToastFades(t *testing.T) {
	e, _ := newTestECS(t)
	ShowToast(e, "hi")
	toast := GetOrCreateToast(e)
	world := GetOrCreateWorld(e)

	world.Delta = float64(cfg.Toast.FadeIn) * cfg.Clock.FrameRate
	UpdateToast(e)
	if !toast.Visible() || toast.Alpha < 0.99 {
		t.Fatalf("after fade in: alpha %v", toast.Alpha)
	}

	world.Delta = float64(cfg.Toast.Hold+cfg.Toast.FadeOut+1) * cfg.Clock.FrameRate
	for i := 0; i < 3 && toast.Fade != nil; i++ {
		UpdateToast(e)
	}
	if toast.Visible() || toast.Text != "" {
		t.Errorf("toast still shown: %q alpha %v", toast.Text, toast.Alpha)
	}
}

func TestToggleThemePersistsAndSwapsPalette(t *testing.T) {
	e, store := newTestECS(t)
	t.Cleanup(func() { cfg.ApplyTheme(cfg.ThemeDark) })

	if got := GetOrCreatePrefs(e).Theme; got != cfg.ThemeDark {
		t.Fatalf("default theme = %q, want dark", got)
	}
	if got := ToggleTheme(e); got != cfg.ThemeLight {
		t.Fatalf("ToggleTheme() = %q, want light", got)
	}
	if got := string(store[KeyTheme]); got != `"light"` {
		t.Errorf("stored %s = %s, want %q", KeyTheme, got, `"light"`)
	}
	if cfg.Colors != cfg.LightColors {
		t.Error("palette not switched to light")
	}

	if got := ToggleTheme(e); got != cfg.ThemeDark {
		t.Errorf("second toggle = %q, want dark", got)
	}
	if cfg.Colors != cfg.DarkColors {
		t.Error("palette not switched back to dark")
	}
}

func TestThemeShortcutWorksInGame(t *testing.T) {
	e, _ := newTestECS(t)
	t.Cleanup(func() { cfg.ApplyTheme(cfg.ThemeDark) })
	GetOrCreateWorld(e).GameMode = true

	GetOrCreateInput(e).Current[cfg.ActionToggleTheme] = true
	UpdateActions(e)
	if got := GetOrCreatePrefs(e).Theme; got != cfg.ThemeLight {
		t.Errorf("theme = %q, want light", got)
	}
}

func TestLoadPrefsTheme(t *testing.T) {
	tests := []struct {
		stored string
		want   string
	}{
		{"", cfg.ThemeDark},
		{`"light"`, cfg.ThemeLight},
		{`"dark"`, cfg.ThemeDark},
		{`"sepia"`, cfg.ThemeDark},
	}
	for _, tt := range tests {
		store := MemoryStore{}
		if tt.stored != "" {
			store[KeyTheme] = []byte(tt.stored)
		}
		SetStore(store)
		if got := LoadPrefs().Theme; got != tt.want {
			t.Errorf("stored %s: theme = %q, want %q", tt.stored, got, tt.want)
		}
	}
	SetStore(nil)
}
