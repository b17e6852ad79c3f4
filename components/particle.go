package components

import (
	"image/color"
)

// Particle is one short lived spark of a food burst
type Particle struct {
	X, Y     float64 // Pixel position
	VX, VY   float64 // Velocity in pixels per second
	Size     float64
	Color    color.RGBA
	Lifetime float64 // Remaining lifetime in seconds
}

// Alpha returns the opacity, which fades linearly with the remaining lifetime
func (p *Particle) Alpha() float64 {
	switch {
	case p.Lifetime <= 0:
		return 0
	case p.Lifetime >= 1:
		return 1
	}
	return p.Lifetime
}

// ParticleEffect is a burst of particles spawned at a grid cell
type ParticleEffect struct {
	Origin    Position
	Particles []Particle
	Lifetime  float64
}

// Update advances every particle by dt seconds
func (e *ParticleEffect) Update(dt float64) {
	e.Lifetime -= dt
	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Lifetime -= dt
		p.Color.A = uint8(p.Alpha() * 255)
	}
}

// Expired reports whether the effect should be pruned
func (e *ParticleEffect) Expired() bool {
	return e.Lifetime <= 0
}
