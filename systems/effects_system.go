package systems

import (
	"image/color"
	"math"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/ecs"
	"ebiten-snake/spawners"
)

// EffectsSystem owns the cosmetic per-frame state: particle bursts spawned
// when food is eaten and the food pulse animation
type EffectsSystem struct {
	initialized   bool
	rng           spawners.RandomSource
	effects       []*components.ParticleEffect
	foodAnimation float64
}

// NewEffectsSystem creates a new effects system
func NewEffectsSystem(rng spawners.RandomSource) *EffectsSystem {
	return &EffectsSystem{
		rng:     rng,
		effects: make([]*components.ParticleEffect, 0, 4),
	}
}

// Initialize sets up event listeners for the effects system
func (s *EffectsSystem) Initialize(world *ecs.World) {
	if s.initialized {
		return
	}

	world.GetEventManager().Subscribe(EventFoodEaten, func(event ecs.Event) {
		foodEvent := event.(FoodEatenEvent)
		s.SpawnBurst(foodEvent.At)
	})

	s.initialized = true
}

// Update advances the animations by dt seconds and prunes expired bursts
func (s *EffectsSystem) Update(world *ecs.World, dt float64) {
	// Ensure system is initialized with event handlers
	if !s.initialized {
		s.Initialize(world)
	}

	s.foodAnimation = math.Mod(s.foodAnimation+dt, 2*math.Pi)

	kept := s.effects[:0]
	for _, effect := range s.effects {
		effect.Update(dt)
		if !effect.Expired() {
			kept = append(kept, effect)
		}
	}
	// Release pruned pointers held in the tail of the backing array
	for i := len(kept); i < len(s.effects); i++ {
		s.effects[i] = nil
	}
	s.effects = kept
}

// SpawnBurst creates a particle burst centred on a grid cell
func (s *EffectsSystem) SpawnBurst(at components.Position) {
	cx, cy := components.CellToPixel(at).Center()

	effect := &components.ParticleEffect{
		Origin:    at,
		Particles: make([]components.Particle, 0, config.ParticleCount),
		Lifetime:  config.ParticleLifetime,
	}

	for i := 0; i < config.ParticleCount; i++ {
		angle := spawners.RangeFloat(s.rng, 0, 2*math.Pi)
		speed := spawners.RangeFloat(s.rng, config.ParticleMinSpeed, config.ParticleMaxSpeed)
		green := spawners.RangeFloat(s.rng, 0.5, 1.0)
		effect.Particles = append(effect.Particles, components.Particle{
			X:        cx,
			Y:        cy,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Size:     spawners.RangeFloat(s.rng, config.ParticleMinSize, config.ParticleMaxSize),
			Color:    color.RGBA{255, uint8(green * 255), 0, 255},
			Lifetime: config.ParticleLifetime,
		})
	}

	s.effects = append(s.effects, effect)
}

// Effects returns the live particle bursts
func (s *EffectsSystem) Effects() []*components.ParticleEffect {
	return s.effects
}

// FoodAnimation returns the food pulse phase in [0, 2π)
func (s *EffectsSystem) FoodAnimation() float64 {
	return s.foodAnimation
}

// Clear drops every live burst, used when a new run starts
func (s *EffectsSystem) Clear() {
	for i := range s.effects {
		s.effects[i] = nil
	}
	s.effects = s.effects[:0]
}
