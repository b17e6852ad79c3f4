package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Score storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Speed policies
const (
	PolicyDecay  = "decay"
	PolicyLinear = "linear"
)

// DefaultSettingsFile is read at startup when no -config flag is given
const DefaultSettingsFile = "settings.json"

// Settings holds the runtime options that can be changed without rebuilding
type Settings struct {
	ScoreFile    string `json:"score_file"`    // Path of the high score file
	ScoreBackend string `json:"score_backend"` // "json" or "sqlite"
	SpeedPolicy  string `json:"speed_policy"`  // "decay" or "linear"
	Difficulty   string `json:"difficulty"`    // Difficulty preselected in the menu
	ResourceDir  string `json:"resource_dir"`  // Directory holding the sound files
	Muted        bool   `json:"muted"`
	Fullscreen   bool   `json:"fullscreen"`
	Seed         int64  `json:"seed"` // 0 seeds from the clock
}

// DefaultSettings returns the settings used when no file is present
func DefaultSettings() Settings {
	return Settings{
		ScoreFile:    "high_scores.json",
		ScoreBackend: BackendJSON,
		SpeedPolicy:  PolicyDecay,
		Difficulty:   "Medium",
		ResourceDir:  "resources",
	}
}

// LoadSettings reads settings from a JSON file on top of the defaults.
// A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}

// Validate ensures that enumerated settings hold known values
func (s Settings) Validate() error {
	switch s.ScoreBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("unknown score backend %q", s.ScoreBackend)
	}

	switch s.SpeedPolicy {
	case PolicyDecay, PolicyLinear:
	default:
		return fmt.Errorf("unknown speed policy %q", s.SpeedPolicy)
	}

	if s.ScoreFile == "" {
		return errors.New("score file cannot be empty")
	}

	return nil
}
