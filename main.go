package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"ebiten-snake/config"
	"ebiten-snake/data"
	"ebiten-snake/screens"
	"ebiten-snake/spawners"
	"ebiten-snake/systems"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run parses the options, opens the score store and plays until the player
// exits. Deferred cleanup runs before main reports an error.
func run() error {
	configPath := flag.String("config", config.DefaultSettingsFile, "path of the settings file")
	terminal := flag.Bool("terminal", false, "play in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	policy := flag.String("policy", "", "speed policy: decay or linear")
	scores := flag.String("scores", "", "path of the high score file")
	backend := flag.String("backend", "", "high score backend: json or sqlite")
	flag.Parse()

	// The terminal frontend owns stdout and stderr, so logs go to a file
	if *terminal {
		logFile, err := os.OpenFile("snake.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}

	// Command-line flags override the settings file
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *policy != "" {
		settings.SpeedPolicy = *policy
	}
	if *scores != "" {
		settings.ScoreFile = *scores
	}
	if *backend != "" {
		settings.ScoreBackend = *backend
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	difficulty, err := data.ParseDifficulty(settings.Difficulty)
	if err != nil {
		log.Printf("Warning: %v, using Medium", err)
		difficulty = data.Medium
	}

	speedPolicy, err := systems.NewSpeedPolicy(settings.SpeedPolicy)
	if err != nil {
		return err
	}

	store := data.OpenScoreStore(settings.ScoreBackend, settings.ScoreFile,
		config.DefaultSettings().ScoreFile, func(msg string) { log.Print(msg) })
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("Warning: failed to close score store: %v", err)
		}
	}()

	session := screens.NewSession(context.Background(), screens.SessionConfig{
		Store:      store,
		Random:     spawners.NewRandomSource(settings.Seed),
		Policy:     speedPolicy,
		Difficulty: difficulty,
	})

	if *terminal {
		return runTerminal(session, settings)
	}
	return runWindow(session, settings)
}
