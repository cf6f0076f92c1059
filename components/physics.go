package components

import "math"

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

func (v Vector) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistanceTo returns the euclidean distance between two points.
func (v Vector) DistanceTo(o Vector) float64 { return v.Sub(o).Len() }
