package screens

import (
	"fmt"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/ecs"
	"ebiten-snake/systems"
)

// GameScreen handles the main gameplay state
type GameScreen struct {
	*BaseScreen
	world         *ecs.World
	stepSystem    *systems.StepSystem
	effectsSystem *systems.EffectsSystem
	lastOutcome   systems.StepOutcome
}

// NewGameScreen creates a new game screen
func NewGameScreen(world *ecs.World, stepSystem *systems.StepSystem, effectsSystem *systems.EffectsSystem) *GameScreen {
	return &GameScreen{
		BaseScreen:    NewBaseScreen("game"),
		world:         world,
		stepSystem:    stepSystem,
		effectsSystem: effectsSystem,
	}
}

// HandleInput queues turns and pauses
func (s *GameScreen) HandleInput(ev components.InputEvent) error {
	key := ev.Command()
	if dir, ok := components.DirectionForKey(key); ok {
		if !s.stepSystem.QueueDirection(dir) {
			systems.GetDebugLog().Add(fmt.Sprintf("Ignored reversal to %s", dir))
		}
		return nil
	}

	switch key {
	case components.KeyEscape, components.KeyPause:
		return ErrPause
	}
	return nil
}

// Update runs the time gated step and the per-frame systems
func (s *GameScreen) Update(dt float64) error {
	outcome, stepped := s.stepSystem.Advance(dt)

	// Update all per-frame systems (particles, food pulse)
	s.world.Update(dt)

	// Effects of this step start their animations on the next frame
	if stepped {
		s.lastOutcome = outcome
		for _, effect := range outcome.Effects {
			s.world.EmitEvent(effect)
		}
	}

	if stepped && outcome.GameOver() {
		return fmt.Errorf("%w: %s", ErrGameOver, outcome.Cause)
	}
	return nil
}

// LastOutcome returns the outcome of the most recent step
func (s *GameScreen) LastOutcome() systems.StepOutcome {
	return s.lastOutcome
}

// Draw renders the board, the HUD and the latest message
func (s *GameScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawBoard(s.stepSystem, s.effectsSystem)
	rs.DrawHUD(s.stepSystem)
	rs.DrawMessages(systems.GetMessageLog(), 1, 10, config.ScreenSize-4)
}
