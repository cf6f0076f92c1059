package gamemath

import "math"

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Decay scales v by f once per elapsed frame unit, so dt=2 equals two steps of f.
func Decay(v, f, dt float64) float64 {
	if dt == 1 {
		return v * f
	}
	return v * math.Pow(f, dt)
}

// Clamp limits v to [lo, hi]. When the range is empty it returns the midpoint.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap moves v to the opposite side once it is more than margin past either edge.
func Wrap(v, margin, size float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// AxisFromBools turns a pair of opposing buttons into -1, 0 or 1.
func AxisFromBools(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}
