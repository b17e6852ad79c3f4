package spawners

import (
	"testing"

	"ebiten-snake/components"
	"ebiten-snake/config"
)

// scriptedSource replays a fixed sequence of integers and floats
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

// cellSet is a simple occupancy for tests
type cellSet map[components.Position]bool

func (c cellSet) Occupies(p components.Position) bool { return c[p] }

func TestSpawn_SkipsOccupiedCells(t *testing.T) {
	src := &scriptedSource{ints: []int{1, 1, 2, 2, 3, 3}}
	spawner := NewFoodSpawner(src, nil)

	occupied := cellSet{{X: 1, Y: 1}: true, {X: 2, Y: 2}: true}
	pos, ok := spawner.Spawn(occupied)
	if !ok {
		t.Fatal("Expected a free cell")
	}
	if pos != (components.Position{X: 3, Y: 3}) {
		t.Errorf("Expected (3,3), got %v", pos)
	}
}

func TestSpawn_FallsBackToScan(t *testing.T) {
	// Occupy everything except one cell; the random source always hits (0,0)
	occupied := cellSet{}
	for y := 0; y < config.GridSize; y++ {
		for x := 0; x < config.GridSize; x++ {
			occupied[components.Position{X: x, Y: y}] = true
		}
	}
	free := components.Position{X: 17, Y: 23}
	delete(occupied, free)

	var logged []string
	spawner := NewFoodSpawner(&scriptedSource{}, func(msg string) { logged = append(logged, msg) })

	pos, ok := spawner.Spawn(occupied)
	if !ok {
		t.Fatal("Expected the scan to find the free cell")
	}
	if pos != free {
		t.Errorf("Expected %v, got %v", free, pos)
	}
	if len(logged) != 1 {
		t.Errorf("Expected one fallback log message, got %d", len(logged))
	}
}

func TestSpawn_FullGrid(t *testing.T) {
	full := cellSet{}
	for y := 0; y < config.GridSize; y++ {
		for x := 0; x < config.GridSize; x++ {
			full[components.Position{X: x, Y: y}] = true
		}
	}

	spawner := NewFoodSpawner(&scriptedSource{}, nil)
	if _, ok := spawner.Spawn(full); ok {
		t.Error("Expected no cell on a full grid")
	}
}

func TestSpawn_NeverOnSnake(t *testing.T) {
	snake := components.NewSnake(components.Position{X: 15, Y: 15}, 10, components.DirRight)
	spawner := NewFoodSpawner(NewRandomSource(7), nil)

	for i := 0; i < 500; i++ {
		pos, ok := spawner.Spawn(snake)
		if !ok {
			t.Fatal("Expected a free cell")
		}
		if snake.Occupies(pos) {
			t.Fatalf("Food spawned on the snake at %v", pos)
		}
		if !components.InBounds(pos) {
			t.Fatalf("Food spawned off the grid at %v", pos)
		}
	}
}

func TestRangeFloat(t *testing.T) {
	src := &scriptedSource{floats: []float64{0, 0.5}}
	if v := RangeFloat(src, 50, 150); v != 50 {
		t.Errorf("Expected 50, got %v", v)
	}
	if v := RangeFloat(src, 50, 150); v != 100 {
		t.Errorf("Expected 100, got %v", v)
	}
}
