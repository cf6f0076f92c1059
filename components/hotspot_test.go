package components

import (
	"errors"
	"testing"
)

func TestNewHotspotValidation(t *testing.T) {
	tests := []struct {
		name string
		make func() (HotspotData, error)
		want error
	}{
		{"circle ok", func() (HotspotData, error) { return NewCircleHotspot("stats", "Stats", 10, 10, 5) }, nil},
		{"circle empty section", func() (HotspotData, error) { return NewCircleHotspot("", "x", 10, 10, 5) }, ErrEmptySection},
		{"circle zero radius", func() (HotspotData, error) { return NewCircleHotspot("stats", "x", 10, 10, 0) }, ErrBadSize},
		{"rect ok", func() (HotspotData, error) { return NewRectHotspot("game", "Game", 10, 10, 4, 4) }, nil},
		{"rect negative width", func() (HotspotData, error) { return NewRectHotspot("game", "Game", 10, 10, -4, 4) }, ErrBadSize},
		{"rect empty section", func() (HotspotData, error) { return NewRectHotspot("", "Game", 10, 10, 4, 4) }, ErrEmptySection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.make()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestHotspotContains(t *testing.T) {
	circle, _ := NewCircleHotspot("a", "A", 100, 100, 10)
	rect, _ := NewRectHotspot("b", "B", 100, 100, 20, 10)

	tests := []struct {
		name string
		h    HotspotData
		p    Vector
		want bool
	}{
		{"circle center", circle, Vector{X: 100, Y: 100}, true},
		{"circle inside", circle, Vector{X: 109, Y: 100}, true},
		{"circle boundary is outside", circle, Vector{X: 110, Y: 100}, false},
		{"rect corner is inside", rect, Vector{X: 110, Y: 105}, true},
		{"rect just outside", rect, Vector{X: 110.5, Y: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHotspotBounds(t *testing.T) {
	circle, _ := NewCircleHotspot("a", "A", 100, 50, 10)
	if x, y, w, h := circle.Bounds(); x != 90 || y != 40 || w != 20 || h != 20 {
		t.Errorf("circle bounds = %v %v %v %v", x, y, w, h)
	}
	rect, _ := NewRectHotspot("b", "B", 100, 50, 40, 20)
	if x, y, w, h := rect.Bounds(); x != 80 || y != 40 || w != 40 || h != 20 {
		t.Errorf("rect bounds = %v %v %v %v", x, y, w, h)
	}
}
