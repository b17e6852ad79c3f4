package screens

import (
	"ebiten-snake/components"
)

// PauseScreen freezes the run until the player resumes or leaves
type PauseScreen struct {
	*ModalScreen
}

// NewPauseScreen creates the pause popup
func NewPauseScreen() *PauseScreen {
	return &PauseScreen{
		ModalScreen: NewModalScreen("Paused", []string{
			"ESC or P: Resume",
			"M: Main menu",
		}, 300, 120),
	}
}

// HandleInput resumes or returns to the menu
func (s *PauseScreen) HandleInput(ev components.InputEvent) error {
	switch ev.Command() {
	case components.KeyEscape, components.KeyPause:
		return ErrResume
	case components.KeyMenu:
		return ErrShowMenu
	}
	return nil
}
