package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SectionAnchor is the vertical extent of one section on the page.
type SectionAnchor struct {
	ID     string
	Top    float64
	Height float64
}

// PageData is the host page's scroll state (singleton component)
type PageData struct {
	ScrollY     float64
	MaxScroll   float64
	Anchors     []SectionAnchor
	ScrollTween *gween.Tween
	Target      string // section the running tween is heading to
	Filter      string // project category shown, "" for all
}

var Page = donburi.NewComponentType[PageData]()

// AnchorOf returns the top of a section and whether it exists.
func (p *PageData) AnchorOf(id string) (float64, bool) {
	for _, a := range p.Anchors {
		if a.ID == id {
			return a.Top, true
		}
	}
	return 0, false
}

// InView reports whether any part of a section lies between the top bar and
// the bottom of a viewHeight-tall view.
func (p *PageData) InView(id string, barHeight, viewHeight float64) bool {
	for _, a := range p.Anchors {
		if a.ID != id {
			continue
		}
		top := a.Top - p.ScrollY
		return top < viewHeight && top+a.Height > barHeight
	}
	return false
}
