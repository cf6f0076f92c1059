package systems

import (
	"testing"

	cfg "github.com/automoto/portfolio-world/config"
)

func TestSoundToggleRoundTrip(t *testing.T) {
	e, store := newTestECS(t)
	player := &fakeCuePlayer{}
	SetCuePlayer(e, player)

	QueueCue(e, cfg.SoundBlip)
	UpdateAudio(e)
	if len(player.cues) != 0 || len(player.ambient) != 0 {
		t.Fatalf("sound off: cues %v ambient %v, want nothing", player.cues, player.ambient)
	}

	if !ToggleSound(e) {
		t.Fatal("ToggleSound() = false, want sound on")
	}
	if got := string(store[KeySoundEnabled]); got != "true" {
		t.Errorf("stored %s = %q, want %q", KeySoundEnabled, got, "true")
	}
	UpdateAudio(e)
	if len(player.ambient) != 1 || !player.ambient[0] {
		t.Errorf("ambient calls = %v, want [true]", player.ambient)
	}
	if len(player.cues) != 1 || player.cues[0] != cfg.SoundChime {
		t.Errorf("cues = %v, want one chime", player.cues)
	}

	if ToggleSound(e) {
		t.Fatal("second ToggleSound() = true, want sound off")
	}
	UpdateAudio(e)
	if len(player.ambient) != 2 || player.ambient[1] {
		t.Errorf("ambient calls = %v, want [true false]", player.ambient)
	}
	if len(player.cues) != 1 {
		t.Errorf("turning sound off played %v", player.cues[1:])
	}
	if got := string(store[KeySoundEnabled]); got != "false" {
		t.Errorf("stored %s = %q, want %q", KeySoundEnabled, got, "false")
	}
}

func TestSoundPreferenceLoadsFromStore(t *testing.T) {
	e, store := newTestECS(t)
	store[KeySoundEnabled] = []byte("true")
	player := &fakeCuePlayer{}
	SetCuePlayer(e, player)

	UpdateAudio(e)
	if len(player.ambient) != 1 || !player.ambient[0] {
		t.Errorf("ambient calls = %v, want [true] from the saved preference", player.ambient)
	}
}

func TestUpdateAudioWithoutPlayerDrainsQueue(t *testing.T) {
	e, _ := newTestECS(t)
	GetOrCreatePrefs(e).SoundEnabled = true
	QueueCue(e, cfg.SoundChime)

	UpdateAudio(e)
	if n := len(GetOrCreateAudio(e).PendingCue); n != 0 {
		t.Errorf("pending cues = %d, want 0", n)
	}
}
