package ecs

// World owns the per-frame systems and the event bus connecting them
type World struct {
	// Systems slice to store all systems
	systems []System
	// Event manager for system communication
	eventManager *EventManager
}

// NewWorld creates a new world
func NewWorld() *World {
	return &World{
		systems:      make([]System, 0),
		eventManager: NewEventManager(),
	}
}

// AddSystem adds a system to the world
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
}

// Update updates all systems in the world
func (w *World) Update(dt float64) {
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.systems
}

// GetEventManager returns the world's event manager
func (w *World) GetEventManager() *EventManager {
	return w.eventManager
}

// EmitEvent is a convenience method to emit an event
func (w *World) EmitEvent(event Event) {
	w.eventManager.Emit(event)
}
