package screens

import (
	"fmt"
	"unicode"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/systems"
)

// NameEntryScreen collects the player name before a score is recorded
type NameEntryScreen struct {
	*BaseScreen
	name []rune
}

// NewNameEntryScreen creates an empty name entry screen
func NewNameEntryScreen() *NameEntryScreen {
	return &NameEntryScreen{
		BaseScreen: NewBaseScreen("name entry"),
		name:       make([]rune, 0, config.MaxNameLength),
	}
}

// HandleInput edits the name. Enter with an empty name is ignored.
func (s *NameEntryScreen) HandleInput(ev components.InputEvent) error {
	if ev.IsChar() {
		if len(s.name) < config.MaxNameLength && (unicode.IsLetter(ev.Char) || unicode.IsDigit(ev.Char)) {
			s.name = append(s.name, ev.Char)
		}
		return nil
	}

	switch ev.Key {
	case components.KeyBackspace:
		if len(s.name) > 0 {
			s.name = s.name[:len(s.name)-1]
		}
	case components.KeyEnter:
		if len(s.name) > 0 {
			return ErrNameEntered
		}
	case components.KeyEscape:
		return ErrDiscardScore
	}
	return nil
}

// Name returns the typed name
func (s *NameEntryScreen) Name() string {
	return string(s.name)
}

// Reset clears the typed name
func (s *NameEntryScreen) Reset() {
	s.name = s.name[:0]
}

// Draw renders the prompt with a cursor
func (s *NameEntryScreen) Draw(rs *systems.RenderSystem) {
	rs.DrawCentered(fmt.Sprintf("Enter your name: %s_", s.Name()), config.ScreenSize/2, 2, systems.TextColor)
	rs.DrawCentered("Enter: Save  Backspace: Delete  ESC: Skip", 550, 1, systems.HintColor)
}
