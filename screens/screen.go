package screens

import (
	"errors"

	"ebiten-snake/components"
	"ebiten-snake/systems"
)

// Error constants for screen transitions
var (
	ErrNewGame        = errors.New("new game")
	ErrRestart        = errors.New("restart")
	ErrQuit           = errors.New("quit")
	ErrCloseScreen    = errors.New("close screen")
	ErrShowMenu       = errors.New("show menu")
	ErrShowDifficulty = errors.New("show difficulty")
	ErrShowHighScores = errors.New("show high scores")
	ErrPause          = errors.New("pause")
	ErrResume         = errors.New("resume")
	ErrGameOver       = errors.New("game over")
	ErrRecordScore    = errors.New("record score")
	ErrNameEntered    = errors.New("name entered")
	ErrDiscardScore   = errors.New("discard score")
)

// Screen represents a game screen that can be pushed onto the screen stack
type Screen interface {
	// HandleInput reacts to one key or character event
	HandleInput(ev components.InputEvent) error
	// Update advances the screen by dt seconds
	Update(dt float64) error
	// Draw queues the screen's draw commands
	Draw(rs *systems.RenderSystem)
}

// ScreenStack manages a stack of screens
type ScreenStack struct {
	screens []Screen
}

// NewScreenStack creates a new screen stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{
		screens: make([]Screen, 0),
	}
}

// Push adds a new screen to the top of the stack
func (s *ScreenStack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// Pop removes the top screen from the stack
func (s *ScreenStack) Pop() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	top := s.screens[len(s.screens)-1]
	s.screens[len(s.screens)-1] = nil
	s.screens = s.screens[:len(s.screens)-1]
	return top
}

// Peek returns the top screen without removing it
func (s *ScreenStack) Peek() Screen {
	if len(s.screens) == 0 {
		return nil
	}
	return s.screens[len(s.screens)-1]
}

// Len returns the number of screens on the stack
func (s *ScreenStack) Len() int {
	return len(s.screens)
}

// Clear removes every screen
func (s *ScreenStack) Clear() {
	for i := range s.screens {
		s.screens[i] = nil
	}
	s.screens = s.screens[:0]
}

// HandleInput forwards an event to the top screen
func (s *ScreenStack) HandleInput(ev components.InputEvent) error {
	if top := s.Peek(); top != nil {
		return top.HandleInput(ev)
	}
	return nil
}

// Update updates the top screen
func (s *ScreenStack) Update(dt float64) error {
	if top := s.Peek(); top != nil {
		return top.Update(dt)
	}
	return nil
}

// Draw draws all screens from bottom to top
func (s *ScreenStack) Draw(rs *systems.RenderSystem) {
	for _, scr := range s.screens {
		scr.Draw(rs)
	}
}
