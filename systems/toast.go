package systems

import (
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowToast replaces any visible toast with msg and restarts the fade.
func ShowToast(ecs *ecs.ECS, msg string) {
	t := GetOrCreateToast(ecs)
	t.Text = msg
	t.Alpha = 0
	t.Fade = gween.NewSequence(
		gween.New(0, 1, cfg.Toast.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Toast.Hold, ease.Linear),
		gween.New(1, 0, cfg.Toast.FadeOut, ease.InQuad),
	)
}

func UpdateToast(ecs *ecs.ECS) {
	t := GetOrCreateToast(ecs)
	if t.Fade == nil {
		return
	}
	v, _, done := t.Fade.Update(Seconds(GetOrCreateWorld(ecs).Delta))
	t.Alpha = float64(v)
	if done {
		t.Fade = nil
		t.Alpha = 0
		t.Text = ""
	}
}
