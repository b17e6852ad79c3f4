package systems

import (
	"math"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/data"
	"ebiten-snake/ecs"
	"ebiten-snake/spawners"
)

// StepOutcome describes what one discrete step did. Effects lists the events
// the caller should emit; the step itself never touches the event bus.
type StepOutcome struct {
	Moved     bool
	Ate       bool
	Collided  bool
	BoardFull bool
	Cause     string
	Effects   []ecs.Event
}

// GameOver reports whether the step ended the run
func (o StepOutcome) GameOver() bool {
	return o.Collided || o.BoardFull
}

// StepSystem advances the snake one cell at a time, gated by the cooldown
type StepSystem struct {
	snake      *components.Snake
	food       components.Position
	direction  components.Direction
	queued     components.Direction
	score      int
	highScore  int
	cooldown   float64
	acc        float64
	difficulty data.Difficulty
	policy     SpeedPolicy
	spawner    *spawners.FoodSpawner
	over       bool
}

// NewStepSystem creates a step engine. A nil policy uses the decay policy.
func NewStepSystem(spawner *spawners.FoodSpawner, policy SpeedPolicy) *StepSystem {
	if policy == nil {
		policy = DecaySpeedPolicy{}
	}
	s := &StepSystem{
		snake:      components.NewSnake(startPosition(), config.InitialSnakeLength, components.DirRight),
		spawner:    spawner,
		policy:     policy,
		difficulty: data.Medium,
	}
	s.cooldown = policy.Initial(s.difficulty)
	return s
}

func startPosition() components.Position {
	return components.Position{X: config.GridSize / 2, Y: config.GridSize / 2}
}

// Reset starts a new run at the given difficulty
func (s *StepSystem) Reset(d data.Difficulty) {
	s.difficulty = d
	s.snake.Reset(startPosition(), config.InitialSnakeLength, components.DirRight)
	s.direction = components.DirRight
	s.queued = components.DirRight
	s.score = 0
	s.cooldown = s.policy.Initial(d)
	s.acc = 0
	s.over = false

	if food, ok := s.spawner.Spawn(s.snake); ok {
		s.food = food
	} else {
		s.over = true
	}
}

// SetDifficulty changes the difficulty outside of a run and refreshes the cooldown
func (s *StepSystem) SetDifficulty(d data.Difficulty) {
	s.difficulty = d
	s.cooldown = s.policy.Initial(d)
}

// SetHighScore seeds the high score watermark
func (s *StepSystem) SetHighScore(score int) {
	if score > s.highScore {
		s.highScore = score
	}
}

// QueueDirection requests a turn for the next step. A reversal of the current
// direction is rejected; otherwise the last accepted request wins.
func (s *StepSystem) QueueDirection(d components.Direction) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.queued = d
	return true
}

// Advance accumulates frame time and runs a step once the cooldown has elapsed
func (s *StepSystem) Advance(dt float64) (StepOutcome, bool) {
	if s.over {
		return StepOutcome{}, false
	}
	s.acc += dt
	if s.acc < s.cooldown {
		return StepOutcome{}, false
	}
	s.acc = 0
	return s.Step(), true
}

// Step performs one discrete move of the snake
func (s *StepSystem) Step() StepOutcome {
	if s.over {
		return StepOutcome{}
	}

	if s.queued != s.direction.Opposite() {
		s.direction = s.queued
	}

	newHead := s.snake.Head().Add(s.direction)

	if !components.InBounds(newHead) {
		return s.endRun(StepOutcome{Collided: true}, CauseWall)
	}
	// Checked against the whole body, including the tail that is about to move
	if s.snake.Occupies(newHead) {
		return s.endRun(StepOutcome{Collided: true}, CauseSelf)
	}

	ate := newHead == s.food
	s.snake.Advance(newHead, ate)
	outcome := StepOutcome{Moved: true, Ate: ate}
	if !ate {
		return outcome
	}

	gained := int(math.Round(config.BaseFoodValue * s.difficulty.Info().ScoreMultiplier))
	s.score += gained
	s.cooldown = s.policy.Next(s.difficulty, s.cooldown, s.score)
	outcome.Effects = append(outcome.Effects, FoodEatenEvent{At: newHead, Gained: gained, Score: s.score})

	food, ok := s.spawner.Spawn(s.snake)
	if !ok {
		outcome.BoardFull = true
		return s.endRun(outcome, CauseBoardFull)
	}
	s.food = food
	return outcome
}

func (s *StepSystem) endRun(outcome StepOutcome, cause string) StepOutcome {
	s.over = true
	if s.score > s.highScore {
		s.highScore = s.score
	}
	outcome.Cause = cause
	outcome.Effects = append(outcome.Effects, GameOverEvent{
		Score:     s.score,
		HighScore: s.highScore,
		Cause:     cause,
	})
	return outcome
}

// Snake returns the snake entity
func (s *StepSystem) Snake() *components.Snake { return s.snake }

// Food returns the current food cell
func (s *StepSystem) Food() components.Position { return s.food }

// Score returns the score of the current run
func (s *StepSystem) Score() int { return s.score }

// HighScore returns the best score seen this session
func (s *StepSystem) HighScore() int { return s.highScore }

// Cooldown returns the current step interval in seconds
func (s *StepSystem) Cooldown() float64 { return s.cooldown }

// Direction returns the latched movement direction
func (s *StepSystem) Direction() components.Direction { return s.direction }

// Difficulty returns the difficulty of the current run
func (s *StepSystem) Difficulty() data.Difficulty { return s.difficulty }

// Over reports whether the run has ended
func (s *StepSystem) Over() bool { return s.over }

// Speed returns steps per second, shown as the speed multiplier in the HUD
func (s *StepSystem) Speed() float64 {
	return 1 / s.cooldown
}
