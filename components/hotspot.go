package components

import (
	"errors"
	"fmt"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Shape selects how a hotspot decides that the player is inside it.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRect
)

var (
	ErrEmptySection = errors.New("hotspot needs a section id")
	ErrBadSize      = errors.New("hotspot size must be positive")
)

// HotspotData is a static named zone that navigates when the player enters it.
// Geometry is fixed at construction; only Inside and Near change afterwards.
type HotspotData struct {
	Order     int // declaration order, lower wins ties
	Shape     Shape
	Center    Vector
	Radius    float64 // ShapeCircle
	Width     float64 // ShapeRect
	Height    float64 // ShapeRect
	SectionID string
	Label     string

	Inside bool // edge trigger latch
	Near   bool // within the glow radius

	Object *resolv.Object // broad phase proxy, owned by the proximity space
}

var Hotspot = donburi.NewComponentType[HotspotData]()

// NewCircleHotspot builds a circular hotspot centered on (x, y).
func NewCircleHotspot(section, label string, x, y, radius float64) (HotspotData, error) {
	if section == "" {
		return HotspotData{}, ErrEmptySection
	}
	if radius <= 0 {
		return HotspotData{}, fmt.Errorf("circle %q radius %v: %w", section, radius, ErrBadSize)
	}
	return HotspotData{
		Shape:     ShapeCircle,
		Center:    Vector{X: x, Y: y},
		Radius:    radius,
		SectionID: section,
		Label:     label,
	}, nil
}

// NewRectHotspot builds an axis-aligned rectangle centered on (cx, cy).
func NewRectHotspot(section, label string, cx, cy, w, h float64) (HotspotData, error) {
	if section == "" {
		return HotspotData{}, ErrEmptySection
	}
	if w <= 0 || h <= 0 {
		return HotspotData{}, fmt.Errorf("rect %q size %vx%v: %w", section, w, h, ErrBadSize)
	}
	return HotspotData{
		Shape:     ShapeRect,
		Center:    Vector{X: cx, Y: cy},
		Width:     w,
		Height:    h,
		SectionID: section,
		Label:     label,
	}, nil
}

// Bounds returns the top-left corner and size of the hotspot's bounding box.
func (h *HotspotData) Bounds() (x, y, w, ht float64) {
	if h.Shape == ShapeCircle {
		return h.Center.X - h.Radius, h.Center.Y - h.Radius, h.Radius * 2, h.Radius * 2
	}
	return h.Center.X - h.Width/2, h.Center.Y - h.Height/2, h.Width, h.Height
}

// Contains is the exact trigger test for a point.
func (h *HotspotData) Contains(p Vector) bool {
	switch h.Shape {
	case ShapeCircle:
		return p.DistanceTo(h.Center) < h.Radius
	case ShapeRect:
		x, y, w, ht := h.Bounds()
		return p.X >= x && p.X <= x+w && p.Y >= y && p.Y <= y+ht
	}
	return false
}
