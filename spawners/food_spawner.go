package spawners

import (
	"ebiten-snake/components"
	"ebiten-snake/config"
)

// MaxSpawnAttempts bounds random sampling before falling back to a full scan
const MaxSpawnAttempts = config.GridSize * config.GridSize

// Occupancy reports whether a cell is taken. *components.Snake satisfies it.
type Occupancy interface {
	Occupies(pos components.Position) bool
}

// FoodSpawner picks free cells for food
type FoodSpawner struct {
	rng        RandomSource
	logMessage func(string) // Function for logging messages
}

// NewFoodSpawner creates a new food spawner
func NewFoodSpawner(rng RandomSource, logFunc func(string)) *FoodSpawner {
	if logFunc == nil {
		logFunc = func(string) {}
	}
	return &FoodSpawner{
		rng:        rng,
		logMessage: logFunc,
	}
}

// Spawn returns a uniformly chosen cell that is not occupied.
// It returns false only when every cell of the grid is occupied.
func (s *FoodSpawner) Spawn(occupied Occupancy) (components.Position, bool) {
	for attempt := 0; attempt < MaxSpawnAttempts; attempt++ {
		pos := components.Position{
			X: s.rng.Intn(config.GridSize),
			Y: s.rng.Intn(config.GridSize),
		}
		if !occupied.Occupies(pos) {
			return pos, true
		}
	}

	// The grid is crowded: collect the free cells and pick one of them
	s.logMessage("Food spawner fell back to a full grid scan")
	free := make([]components.Position, 0, config.GridSize)
	for y := 0; y < config.GridSize; y++ {
		for x := 0; x < config.GridSize; x++ {
			pos := components.Position{X: x, Y: y}
			if !occupied.Occupies(pos) {
				free = append(free, pos)
			}
		}
	}

	if len(free) == 0 {
		return components.Position{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
