package screens

import (
	"fmt"

	"ebiten-snake/components"
	"ebiten-snake/ecs"
)

// GameOverScreen displays the final score over the frozen board
type GameOverScreen struct {
	*ModalScreen
	world *ecs.World
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(world *ecs.World) *GameOverScreen {
	return &GameOverScreen{
		ModalScreen: NewModalScreen("Game Over!", nil, 360, 180),
		world:       world,
	}
}

// SetResult fills in the run summary
func (s *GameOverScreen) SetResult(score, highScore int, cause string, qualifies bool) {
	lines := []string{
		fmt.Sprintf("Score: %d   Best: %d", score, highScore),
		fmt.Sprintf("Cause: %s", cause),
	}
	if qualifies {
		lines = append(lines, "Enter: Save score")
	}
	lines = append(lines, "R: Restart   M: Main menu")
	s.SetLines(lines)
}

// HandleInput handles restart, saving and leaving
func (s *GameOverScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Command() {
	case components.KeyRestart:
		return ErrRestart
	case components.KeyEnter:
		return ErrRecordScore
	case components.KeyMenu:
		return ErrShowMenu
	}
	return nil
}

// Update keeps the particle bursts fading behind the popup
func (s *GameOverScreen) Update(dt float64) error {
	s.world.Update(dt)
	return nil
}
