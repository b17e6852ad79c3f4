package systems

import (
	"fmt"
	"math"

	"ebiten-snake/config"
	"ebiten-snake/data"
)

// SpeedPolicy decides the step cooldown for a difficulty as the score grows
type SpeedPolicy interface {
	// Initial returns the cooldown at the start of a run
	Initial(d data.Difficulty) float64
	// Next returns the cooldown after a food has been eaten
	Next(d data.Difficulty, cooldown float64, score int) float64
	// Name identifies the policy in settings and logs
	Name() string
}

// DecaySpeedPolicy multiplies the cooldown by the difficulty's decay factor per food
type DecaySpeedPolicy struct{}

// Initial implements SpeedPolicy
func (DecaySpeedPolicy) Initial(d data.Difficulty) float64 {
	return math.Max(d.Info().Interval, config.FloorCooldown)
}

// Next implements SpeedPolicy
func (DecaySpeedPolicy) Next(d data.Difficulty, cooldown float64, score int) float64 {
	return math.Max(cooldown*d.Info().DecayFactor, config.FloorCooldown)
}

// Name implements SpeedPolicy
func (DecaySpeedPolicy) Name() string {
	return config.PolicyDecay
}

// LinearSpeedPolicy shortens the cooldown in proportion to the score
type LinearSpeedPolicy struct{}

// Initial implements SpeedPolicy
func (LinearSpeedPolicy) Initial(d data.Difficulty) float64 {
	return math.Max(d.Info().Interval, config.FloorCooldown)
}

// Next implements SpeedPolicy
func (LinearSpeedPolicy) Next(d data.Difficulty, cooldown float64, score int) float64 {
	info := d.Info()
	return math.Max(info.Interval-float64(score)*info.LinearRate, config.FloorCooldown)
}

// Name implements SpeedPolicy
func (LinearSpeedPolicy) Name() string {
	return config.PolicyLinear
}

// NewSpeedPolicy returns the policy registered under name
func NewSpeedPolicy(name string) (SpeedPolicy, error) {
	switch name {
	case config.PolicyDecay, "":
		return DecaySpeedPolicy{}, nil
	case config.PolicyLinear:
		return LinearSpeedPolicy{}, nil
	}
	return nil, fmt.Errorf("unknown speed policy %q", name)
}
