package systems

import (
	"math/rand"

	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles spawns page particles from this tick's pointer and wheel
// events, then advances and culls the whole field.
func UpdateParticles(ecs *ecs.ECS) {
	world := GetOrCreateWorld(ecs)
	input := GetOrCreateInput(ecs)
	field := GetOrCreateParticles(ecs)

	if input.PointerMoved {
		SpawnTrail(field, input.Pointer)
	}
	if input.ScrollDelta != 0 {
		SpawnScroll(field, world.Width, world.Height)
	}
	StepParticles(field, input.Pointer, world.Delta, world.Width, world.Height)
}

// SpawnTrail adds the particles emitted by one pointer move event.
func SpawnTrail(field *components.ParticleFieldData, at components.Vector) {
	p := cfg.Particles
	for i := 0; i < p.TrailPerMove; i++ {
		color := components.ColorCyan
		if rand.Float64() < 0.5 {
			color = components.ColorPink
		}
		field.Add(components.Particle{
			Kind: components.ParticleTrail,
			Pos: components.Vector{
				X: at.X + (rand.Float64()-0.5)*p.TrailSpread,
				Y: at.Y + (rand.Float64()-0.5)*p.TrailSpread,
			},
			Vel: components.Vector{
				X: (rand.Float64() - 0.5) * p.TrailSpeed,
				Y: (rand.Float64() - 0.5) * p.TrailSpeed,
			},
			Size:  p.TrailSizeMin + rand.Float64()*p.TrailSizeRange,
			Life:  1,
			Decay: p.TrailDecayMin + rand.Float64()*p.TrailDecayVar,
			Color: color,
		})
	}
}

// SpawnScroll adds the rising particles emitted by one wheel event.
func SpawnScroll(field *components.ParticleFieldData, width, height float64) {
	p := cfg.Particles
	for i := 0; i < p.ScrollPerEvent; i++ {
		field.Add(components.Particle{
			Kind: components.ParticleScroll,
			Pos:  components.Vector{X: rand.Float64() * width, Y: rand.Float64() * height},
			Vel: components.Vector{
				X: (rand.Float64() - 0.5) * p.ScrollDrift,
				Y: -(p.ScrollRiseMin + rand.Float64()*p.ScrollRiseRange),
			},
			Size:  p.ScrollSizeMin + rand.Float64()*p.ScrollSizeRange,
			Life:  1,
			Decay: p.ScrollDecay,
			Color: components.ColorCyan,
		})
	}
}

// StepParticles integrates every particle by dt and compacts out the dead ones
// in place, keeping spawn order. Trail particles are pulled toward the pointer.
func StepParticles(field *components.ParticleFieldData, pointer components.Vector, dt, width, height float64) {
	p := cfg.Particles
	live := field.Items[:0]
	for _, pt := range field.Items {
		if pt.Kind == components.ParticleTrail {
			d := pointer.Sub(pt.Pos)
			if dist := d.Len(); dist > 0 && dist < p.CaptureRadius {
				pt.Vel = pt.Vel.Add(d.Scale(p.SteerForce * dt / dist))
			}
		} else {
			pt.Size = gamemath.Decay(pt.Size, p.ScrollShrink, dt)
		}

		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		pt.Life -= pt.Decay * dt

		if pt.Life <= 0 || outside(pt.Pos, width, height, p.ExitMargin) {
			continue
		}
		live = append(live, pt)
	}
	clear(field.Items[len(live):])
	field.Items = live
}

func outside(pos components.Vector, width, height, margin float64) bool {
	return pos.X < -margin || pos.X > width+margin || pos.Y < -margin || pos.Y > height+margin
}
