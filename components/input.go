package components

import (
	"unicode"
)

// Key identifies a discrete key press delivered by a frontend
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyPause
	KeyRestart
	KeyMenu
	KeyDebug
)

// InputEvent is either a key press or a typed character.
// Char is zero for pure key events.
type InputEvent struct {
	Key  Key
	Char rune
}

// KeyEvent builds a key press event
func KeyEvent(k Key) InputEvent {
	return InputEvent{Key: k}
}

// CharEvent builds a text input event
func CharEvent(r rune) InputEvent {
	return InputEvent{Char: r}
}

// IsChar reports whether the event carries typed text
func (e InputEvent) IsChar() bool {
	return e.Char != 0
}

// Command maps gameplay letters to their key. Key events pass through unchanged.
func (e InputEvent) Command() Key {
	if !e.IsChar() {
		return e.Key
	}
	switch unicode.ToLower(e.Char) {
	case 'w':
		return KeyUp
	case 'a':
		return KeyLeft
	case 's':
		return KeyDown
	case 'd':
		return KeyRight
	case 'p':
		return KeyPause
	case 'r':
		return KeyRestart
	case 'm':
		return KeyMenu
	}
	return KeyNone
}

// DirectionForKey maps arrow keys to a movement direction
func DirectionForKey(k Key) (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return DirUp, false
}

// Sound identifies a sound trigger emitted by the simulation
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	}
	return "unknown"
}
