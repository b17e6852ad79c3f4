package systems

import (
	"testing"

	"ebiten-snake/components"
	"ebiten-snake/config"
	"ebiten-snake/data"
	"ebiten-snake/spawners"
)

// scriptedSource replays fixed values and then returns zero
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// newTestStep creates a step engine whose food placements follow ints as (x, y) pairs
func newTestStep(d data.Difficulty, policy SpeedPolicy, ints ...int) *StepSystem {
	src := &scriptedSource{ints: ints}
	step := NewStepSystem(spawners.NewFoodSpawner(src, nil), policy)
	step.Reset(d)
	return step
}

func pos(x, y int) components.Position {
	return components.Position{X: x, Y: y}
}

func TestStepSystem_Reset(t *testing.T) {
	step := newTestStep(data.Hard, nil, 3, 4)

	want := []components.Position{pos(15, 15), pos(14, 15), pos(13, 15)}
	got := step.Snake().Segments()
	if len(got) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if step.Food() != pos(3, 4) {
		t.Errorf("Expected food at (3,4), got %v", step.Food())
	}
	if step.Score() != 0 || step.Direction() != components.DirRight {
		t.Errorf("Unexpected initial state: score %d, direction %v", step.Score(), step.Direction())
	}
	if step.Cooldown() != data.Hard.Info().Interval {
		t.Errorf("Expected cooldown %v, got %v", data.Hard.Info().Interval, step.Cooldown())
	}
}

func TestStepSystem_StepRight(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)

	out := step.Step()
	if !out.Moved || out.Ate || out.GameOver() {
		t.Fatalf("Unexpected outcome: %+v", out)
	}

	want := []components.Position{pos(16, 15), pos(15, 15), pos(14, 15)}
	got := step.Snake().Segments()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestStepSystem_ReversalRejected(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)

	if !step.QueueDirection(components.DirUp) {
		t.Error("Up should be accepted while moving right")
	}
	if step.QueueDirection(components.DirLeft) {
		t.Error("Left should be rejected while moving right")
	}

	step.Step()
	if step.Direction() != components.DirUp {
		t.Errorf("Expected latched direction Up, got %v", step.Direction())
	}
	if step.Snake().Head() != pos(15, 14) {
		t.Errorf("Expected head at (15,14), got %v", step.Snake().Head())
	}
}

func TestStepSystem_LastAcceptedDirectionWins(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)

	step.QueueDirection(components.DirUp)
	step.QueueDirection(components.DirDown)
	step.Step()

	if step.Snake().Head() != pos(15, 16) {
		t.Errorf("Expected head at (15,16), got %v", step.Snake().Head())
	}
}

func TestStepSystem_EatGrowsAndScores(t *testing.T) {
	// First food directly ahead, the next one in a corner
	step := newTestStep(data.Medium, nil, 16, 15, 0, 0)

	out := step.Step()
	if !out.Ate {
		t.Fatalf("Expected the snake to eat, got %+v", out)
	}
	if step.Snake().Len() != 4 {
		t.Errorf("Expected length 4, got %d", step.Snake().Len())
	}
	if step.Score() != 15 {
		t.Errorf("Expected score 15 on Medium, got %d", step.Score())
	}
	if step.Food() != pos(0, 0) {
		t.Errorf("Expected new food at (0,0), got %v", step.Food())
	}
	if step.Snake().Occupies(step.Food()) {
		t.Error("Food must not be placed on the snake")
	}

	want := 0.15 * 0.95
	if diff := step.Cooldown() - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected cooldown %v, got %v", want, step.Cooldown())
	}

	if len(out.Effects) != 1 {
		t.Fatalf("Expected one effect, got %d", len(out.Effects))
	}
	ev, ok := out.Effects[0].(FoodEatenEvent)
	if !ok || ev.At != pos(16, 15) || ev.Gained != 15 || ev.Score != 15 {
		t.Errorf("Unexpected food event: %+v", out.Effects[0])
	}
}

func TestStepSystem_WallCollision(t *testing.T) {
	step := newTestStep(data.Medium, nil, 16, 15, 0, 0)
	step.Step() // eat, score 15

	for step.Snake().Head().X < config.GridSize-1 {
		if out := step.Step(); out.GameOver() {
			t.Fatalf("Unexpected game over at %v", step.Snake().Head())
		}
	}

	before := step.Snake().Segments()
	out := step.Step()
	if !out.Collided || out.Cause != CauseWall {
		t.Fatalf("Expected a wall collision, got %+v", out)
	}

	after := step.Snake().Segments()
	if len(after) != len(before) {
		t.Fatalf("Snake length changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Segment %d moved from %v to %v", i, before[i], after[i])
		}
	}

	if step.HighScore() != 15 {
		t.Errorf("Expected high score 15, got %d", step.HighScore())
	}
	if !step.Over() {
		t.Error("Expected the run to be over")
	}

	ev, ok := out.Effects[len(out.Effects)-1].(GameOverEvent)
	if !ok || ev.Score != 15 || ev.HighScore != 15 || ev.Cause != CauseWall {
		t.Errorf("Unexpected game over event: %+v", out.Effects)
	}

	// Further steps do nothing
	if out := step.Step(); out.Moved || out.GameOver() {
		t.Errorf("Expected no-op after game over, got %+v", out)
	}
}

func TestStepSystem_HighScoreKeepsMaximum(t *testing.T) {
	step := newTestStep(data.Easy, nil, 0, 0)
	step.SetHighScore(100)

	for !step.Over() {
		step.Step()
	}
	if step.HighScore() != 100 {
		t.Errorf("Expected high score to stay 100, got %d", step.HighScore())
	}
}

// curl builds the body head first: (5,5) (5,6) (6,6) (6,5) ...extra
func curl(step *StepSystem, extra ...components.Position) {
	path := append([]components.Position{pos(5, 5), pos(5, 6), pos(6, 6), pos(6, 5)}, extra...)
	last := len(path) - 1
	step.snake.Reset(path[last], 1, components.DirLeft)
	for i := last - 1; i >= 0; i-- {
		step.snake.Advance(path[i], true)
	}
	step.direction = components.DirUp
	step.queued = components.DirUp
}

func TestStepSystem_SelfCollision(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)
	curl(step, pos(7, 5))

	step.QueueDirection(components.DirRight)
	before := step.Snake().Segments()
	out := step.Step()

	if !out.Collided || out.Cause != CauseSelf {
		t.Fatalf("Expected a self collision, got %+v", out)
	}
	if step.Snake().Len() != len(before) {
		t.Errorf("Snake changed on collision")
	}
}

func TestStepSystem_TailCellCountsAsCollision(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)
	curl(step)

	step.QueueDirection(components.DirRight)
	if out := step.Step(); out.Cause != CauseSelf {
		t.Errorf("Moving onto the tail should collide, got %+v", out)
	}
}

func TestStepSystem_ScoreMonotonicAndCooldownFloor(t *testing.T) {
	step := newTestStep(data.Expert, nil, 0, 0)

	lastScore := step.Score()
	lastCooldown := step.Cooldown()
	for i := 0; i < 12; i++ {
		step.food = step.Snake().Head().Add(step.Direction())
		out := step.Step()
		if !out.Ate {
			t.Fatalf("Step %d: expected to eat, got %+v", i, out)
		}
		if step.Score() <= lastScore {
			t.Errorf("Step %d: score went from %d to %d", i, lastScore, step.Score())
		}
		if step.Cooldown() > lastCooldown {
			t.Errorf("Step %d: cooldown grew from %v to %v", i, lastCooldown, step.Cooldown())
		}
		if step.Cooldown() < config.FloorCooldown {
			t.Errorf("Step %d: cooldown %v below the floor", i, step.Cooldown())
		}
		lastScore, lastCooldown = step.Score(), step.Cooldown()
	}

	if step.Score() != 12*30 {
		t.Errorf("Expected score 360 on Expert, got %d", step.Score())
	}
	if step.Cooldown() != config.FloorCooldown {
		t.Errorf("Expected cooldown to reach the floor, got %v", step.Cooldown())
	}
}

func TestStepSystem_AdvanceIsTimeGated(t *testing.T) {
	step := newTestStep(data.Medium, nil, 0, 0)

	if _, stepped := step.Advance(0.1); stepped {
		t.Error("Expected no step before the cooldown elapsed")
	}
	if _, stepped := step.Advance(0.05); !stepped {
		t.Error("Expected a step once the cooldown elapsed")
	}
	if step.Snake().Head() != pos(16, 15) {
		t.Errorf("Expected head at (16,15), got %v", step.Snake().Head())
	}
	if _, stepped := step.Advance(0.01); stepped {
		t.Error("Expected the accumulator to reset after a step")
	}
}

func TestStepSystem_BoardFull(t *testing.T) {
	// Serpentine path over the whole grid
	var path []components.Position
	for y := 0; y < config.GridSize; y++ {
		for i := 0; i < config.GridSize; i++ {
			x := i
			if y%2 == 1 {
				x = config.GridSize - 1 - i
			}
			path = append(path, pos(x, y))
		}
	}

	step := newTestStep(data.Easy, nil, 0, 0)
	last := len(path) - 1
	step.snake.Reset(path[0], 1, components.DirRight)
	for i := 1; i < last; i++ {
		step.snake.Advance(path[i], true)
	}
	step.food = path[last]
	step.direction = components.DirLeft
	step.queued = components.DirLeft

	out := step.Step()
	if !out.Ate || !out.BoardFull || !out.GameOver() {
		t.Fatalf("Expected the board to fill, got %+v", out)
	}
	if out.Cause != CauseBoardFull {
		t.Errorf("Expected cause %q, got %q", CauseBoardFull, out.Cause)
	}
	if step.Snake().Len() != config.GridSize*config.GridSize {
		t.Errorf("Expected the snake to cover the grid, got %d", step.Snake().Len())
	}
}
