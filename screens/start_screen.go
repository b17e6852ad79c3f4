package screens

import (
	"image/color"

	"ebiten-snake/components"
	"ebiten-snake/systems"
)

// Main menu entries
const (
	OptionPlay = iota
	OptionDifficulty
	OptionHighScores
	OptionExit
)

// StartScreen handles the game's main menu
type StartScreen struct {
	*BaseScreen
	selectedOption int
	options        []string
	titleColor     color.RGBA
	optionColor    color.RGBA
	selectedColor  color.RGBA
}

// NewStartScreen creates a new start screen
func NewStartScreen() *StartScreen {
	return &StartScreen{
		BaseScreen:     NewBaseScreen("main menu"),
		selectedOption: OptionPlay,
		options: []string{
			"Play Game",
			"Difficulty",
			"High Scores",
			"Exit",
		},
		titleColor:    systems.TextColor,
		optionColor:   systems.TextColor,
		selectedColor: systems.HighlightColor,
	}
}

// HandleInput handles navigation and selection
func (s *StartScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Key {
	case components.KeyUp:
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	case components.KeyDown:
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	case components.KeyEnter:
		switch s.selectedOption {
		case OptionPlay:
			return ErrNewGame
		case OptionDifficulty:
			return ErrShowDifficulty
		case OptionHighScores:
			return ErrShowHighScores
		case OptionExit:
			return ErrQuit
		}
	}
	return nil
}

// Selected returns the highlighted option
func (s *StartScreen) Selected() int {
	return s.selectedOption
}

// Draw renders the start screen
func (s *StartScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawCentered("SNAKE GAME", 100, 4, s.titleColor)

	for i, option := range s.options {
		textColor := s.optionColor
		if i == s.selectedOption {
			textColor = s.selectedColor
		}
		rs.DrawCentered(option, 250+float64(i)*50, 2, textColor)
	}

	rs.DrawCentered("Up/Down: Select  Enter: Confirm  F1: Debug log", 560, 1, systems.HintColor)
}
