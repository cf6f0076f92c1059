package systems

import (
	"testing"
	"time"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS returns an 800x600 world with an empty proximity space and an
// in-memory preference store.
func newTestECS(t *testing.T) (*ecs.ECS, MemoryStore) {
	t.Helper()
	store := MemoryStore{}
	SetStore(store)
	t.Cleanup(func() { SetStore(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	world := GetOrCreateWorld(e)
	world.Width, world.Height = 800, 600
	world.Available = true
	factory.RebuildSpace(e, 800, 600)
	return e, store
}

type recordingNav struct {
	sections []string
}

func (n *recordingNav) Navigate(sectionID string) {
	n.sections = append(n.sections, sectionID)
}

type fakeCuePlayer struct {
	cues    []cfg.SoundID
	ambient []bool
}

func (f *fakeCuePlayer) PlayCue(id cfg.SoundID) {
	f.cues = append(f.cues, id)
}

func (f *fakeCuePlayer) SetAmbient(on bool) {
	f.ambient = append(f.ambient, on)
}

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func mustCircle(t *testing.T, section string, x, y, r float64) components.HotspotData {
	t.Helper()
	h, err := components.NewCircleHotspot(section, section, x, y, r)
	if err != nil {
		t.Fatalf("NewCircleHotspot(%q): %v", section, err)
	}
	return h
}

func playerOf(t *testing.T, e *ecs.ECS) *components.PlayerData {
	t.Helper()
	entry, ok := components.Player.First(e.World)
	if !ok {
		t.Fatal("no player in world")
	}
	return components.Player.Get(entry)
}
