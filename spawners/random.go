package spawners

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource is the randomness capability used for food placement and
// particle generation. Tests inject deterministic implementations.
type RandomSource interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// NewRandomSource creates a pseudo random source. A zero seed uses the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(uint64(seed)))
}

// RangeFloat returns a value in [min, max)
func RangeFloat(src RandomSource, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}
