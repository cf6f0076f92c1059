package gamemath

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{"zero", 0, 0, 0, 0},
		{"axis", -5, 0, -1, 0},
		{"diagonal", 1, 1, math.Sqrt2 / 2, math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Normalize(tt.x, tt.y)
			if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
				t.Errorf("Normalize(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
			if math.IsNaN(x) || math.IsNaN(y) {
				t.Errorf("Normalize(%v, %v) produced NaN", tt.x, tt.y)
			}
		})
	}
}

func TestDecayMatchesRepeatedSteps(t *testing.T) {
	stepped := Decay(Decay(3, 0.85, 1), 0.85, 1)
	once := Decay(3, 0.85, 2)
	if math.Abs(stepped-once) > 1e-12 {
		t.Errorf("two unit steps = %v, one double step = %v", stepped, once)
	}
	if got := Decay(3, 0.85, 1); got != 2.55 {
		t.Errorf("Decay(3, 0.85, 1) = %v, want 2.55", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-4, 12, 388); got != 12 {
		t.Errorf("below range: got %v", got)
	}
	if got := Clamp(790, 12, 388); got != 388 {
		t.Errorf("above range: got %v", got)
	}
	// canvas narrower than the player: sit on the center line
	if got := Clamp(3, 12, 8); got != 10 {
		t.Errorf("empty range: got %v, want 10", got)
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(-201, 200, 800); got != 1000 {
		t.Errorf("left exit: got %v", got)
	}
	if got := Wrap(1001, 200, 800); got != -200 {
		t.Errorf("right exit: got %v", got)
	}
	if got := Wrap(400, 200, 800); got != 400 {
		t.Errorf("inside: got %v", got)
	}
}
