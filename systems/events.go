package systems

import (
	"ebiten-snake/components"
	"ebiten-snake/ecs"
)

// Event type constants
const (
	EventFoodEaten    ecs.EventType = "food_eaten"
	EventGameOver     ecs.EventType = "game_over"
	EventPhaseChanged ecs.EventType = "phase_changed"
	EventScoreRecord  ecs.EventType = "score_recorded"
)

// Game over causes
const (
	CauseWall      = "wall"
	CauseSelf      = "self"
	CauseBoardFull = "board_full"
)

// FoodEatenEvent is emitted when the snake's head reaches the food
type FoodEatenEvent struct {
	At     components.Position // Cell where the food was eaten
	Gained int                 // Points awarded for this food
	Score  int                 // Score after the award
}

// Type returns the event type
func (e FoodEatenEvent) Type() ecs.EventType {
	return EventFoodEaten
}

// GameOverEvent is emitted when a step ends the run
type GameOverEvent struct {
	Score     int    // Final score of the run
	HighScore int    // Session best after the run
	Cause     string // One of the Cause constants
}

// Type returns the event type
func (e GameOverEvent) Type() ecs.EventType {
	return EventGameOver
}

// PhaseChangedEvent is emitted by the session on every phase or menu transition
type PhaseChangedEvent struct {
	From string
	To   string
}

// Type returns the event type
func (e PhaseChangedEvent) Type() ecs.EventType {
	return EventPhaseChanged
}

// ScoreRecordedEvent is emitted after a score has been inserted into the table
type ScoreRecordedEvent struct {
	PlayerName string
	Score      int
	Kept       bool // Whether the entry survived pruning
}

// Type returns the event type
func (e ScoreRecordedEvent) Type() ecs.EventType {
	return EventScoreRecord
}
