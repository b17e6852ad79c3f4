package config

// Grid and screen layout configuration
const (
	// Grid dimensions in cells (the grid is square)
	GridSize = 30

	// Cell size in pixels
	CellSize = 20

	// Window dimensions in pixels (derived from grid dimensions)
	ScreenSize   = GridSize * CellSize
	WindowWidth  = ScreenSize
	WindowHeight = ScreenSize

	// Initial snake length after a reset
	InitialSnakeLength = 3
)

// Gameplay tuning
const (
	// FloorCooldown is the smallest step interval in seconds
	FloorCooldown = 0.05

	// BaseFoodValue is the score for one food before the difficulty multiplier
	BaseFoodValue = 10

	// MaxScoresPerDifficulty bounds each difficulty bucket of the high score table
	MaxScoresPerDifficulty = 5

	// MaxNameLength caps the player name typed on the name entry screen
	MaxNameLength = 8

	// Particle burst spawned when food is eaten
	ParticleCount    = 20
	ParticleLifetime = 1.0
	ParticleMinSpeed = 50.0
	ParticleMaxSpeed = 150.0
	ParticleMinSize  = 2.0
	ParticleMaxSize  = 5.0
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
