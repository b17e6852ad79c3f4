package screens

import (
	"ebiten-snake/components"
	"ebiten-snake/systems"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct {
	name string
}

// NewBaseScreen creates a new base screen
func NewBaseScreen(name string) *BaseScreen {
	return &BaseScreen{name: name}
}

// HandleInput implements the Screen interface
func (s *BaseScreen) HandleInput(ev components.InputEvent) error {
	return nil
}

// Update implements the Screen interface
func (s *BaseScreen) Update(dt float64) error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(rs *systems.RenderSystem) {
	// Base screen does nothing by default
}

// Name returns the screen name used in logs
func (s *BaseScreen) Name() string {
	return s.name
}
