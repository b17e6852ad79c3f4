package data

import (
	"fmt"
	"strings"
)

// Difficulty is the discrete difficulty level chosen in the menu
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// AllDifficulties lists the levels in menu order
var AllDifficulties = []Difficulty{Easy, Medium, Hard, Expert}

// DifficultyInfo describes the speed and scoring of a difficulty level
type DifficultyInfo struct {
	Interval        float64 // Initial step interval in seconds
	LinearRate      float64 // Seconds removed from the interval per score point (linear policy)
	DecayFactor     float64 // Interval multiplier per food eaten (decay policy)
	ScoreMultiplier float64 // Applied to the base food value
}

var difficultyTable = [...]DifficultyInfo{
	Easy:   {Interval: 0.2, LinearRate: 0.0005, DecayFactor: 0.95, ScoreMultiplier: 1.0},
	Medium: {Interval: 0.15, LinearRate: 0.0005, DecayFactor: 0.95, ScoreMultiplier: 1.5},
	Hard:   {Interval: 0.1, LinearRate: 0.0004, DecayFactor: 0.95, ScoreMultiplier: 2.0},
	Expert: {Interval: 0.07, LinearRate: 0.0002, DecayFactor: 0.95, ScoreMultiplier: 3.0},
}

// Info returns the table entry for the level
func (d Difficulty) Info() DifficultyInfo {
	if d < Easy || d > Expert {
		return difficultyTable[Medium]
	}
	return difficultyTable[d]
}

// SpeedMultiplier is the human readable speed shown in the menu
func (d Difficulty) SpeedMultiplier() float64 {
	return 1 / d.Info().Interval
}

// Next returns the following level, wrapping after Expert
func (d Difficulty) Next() Difficulty {
	return (d + 1) % Difficulty(len(AllDifficulties))
}

// Prev returns the previous level, wrapping before Easy
func (d Difficulty) Prev() Difficulty {
	n := Difficulty(len(AllDifficulties))
	return (d - 1 + n) % n
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty converts a level name, case insensitive
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range AllDifficulties {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return Medium, fmt.Errorf("unknown difficulty %q", name)
}

// MarshalText stores the level by name
func (d Difficulty) MarshalText() ([]byte, error) {
	if d < Easy || d > Expert {
		return nil, fmt.Errorf("invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText reads a level name
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
