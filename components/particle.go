package components

import "github.com/yohamta/donburi"

// ParticleKind distinguishes the two short-lived particle families.
type ParticleKind int

const (
	ParticleTrail ParticleKind = iota
	ParticleScroll
)

// ColorTag picks one of the palette's neon colors at draw time.
type ColorTag int

const (
	ColorCyan ColorTag = iota
	ColorPink
)

type Particle struct {
	Kind  ParticleKind
	Pos   Vector
	Vel   Vector
	Size  float64
	Life  float64 // starts at 1, only ever decreases
	Decay float64 // life lost per frame unit
	Color ColorTag
	Seq   uint64 // spawn order
}

// ParticleFieldData owns every live particle in spawn order (singleton component).
type ParticleFieldData struct {
	Items   []Particle
	Max     int
	nextSeq uint64
}

var ParticleField = donburi.NewComponentType[ParticleFieldData]()

// Add appends p, evicting the oldest particles once Max is reached.
func (f *ParticleFieldData) Add(p Particle) {
	if f.Max <= 0 {
		return
	}
	if over := len(f.Items) - f.Max + 1; over > 0 {
		n := copy(f.Items, f.Items[over:])
		f.Items = f.Items[:n]
	}
	p.Seq = f.nextSeq
	f.nextSeq++
	f.Items = append(f.Items, p)
}
