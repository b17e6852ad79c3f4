package ecs

// System is updated once per rendered frame
type System interface {
	// Update advances the system by dt seconds
	Update(world *World, dt float64)
}
