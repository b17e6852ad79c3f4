package screens

import (
	"fmt"

	"ebiten-snake/components"
	"ebiten-snake/data"
	"ebiten-snake/systems"
)

// DifficultyScreen lets the player cycle through the difficulty levels
type DifficultyScreen struct {
	*BaseScreen
	current  func() data.Difficulty
	onChange func(data.Difficulty)
}

// NewDifficultyScreen creates a difficulty screen reading and writing the
// selection through the given functions
func NewDifficultyScreen(current func() data.Difficulty, onChange func(data.Difficulty)) *DifficultyScreen {
	return &DifficultyScreen{
		BaseScreen: NewBaseScreen("difficulty"),
		current:    current,
		onChange:   onChange,
	}
}

// HandleInput cycles the difficulty with wrapping
func (s *DifficultyScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Key {
	case components.KeyUp:
		s.onChange(s.current().Prev())
	case components.KeyDown:
		s.onChange(s.current().Next())
	case components.KeyEnter, components.KeyEscape:
		return ErrShowMenu
	}
	return nil
}

// Draw lists every level with its speed and score multipliers
func (s *DifficultyScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawCentered("Select Difficulty", 50, 3, systems.TextColor)

	selected := s.current()
	for i, d := range data.AllDifficulties {
		c := systems.TextColor
		if d == selected {
			c = systems.HighlightColor
		}
		line := fmt.Sprintf("%s: Speed %.1fx, Score %.1fx", d, d.SpeedMultiplier(), d.Info().ScoreMultiplier)
		rs.DrawCentered(line, 150+float64(i)*50, 2, c)
	}

	rs.DrawCentered("Press ESC to return", 550, 1, systems.HintColor)
}
