package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"ebiten-snake/config"
)

// ScoreStore persists the high score list between runs
type ScoreStore interface {
	// Load returns the stored entries. A store that does not exist yet yields an empty list.
	Load(ctx context.Context) ([]ScoreEntry, error)
	// Save replaces the stored entries
	Save(ctx context.Context, entries []ScoreEntry) error
	Close() error
}

// JSONScoreStore keeps the list in a JSON file that is rewritten atomically
type JSONScoreStore struct {
	path string
}

// NewJSONScoreStore creates a store backed by the file at path
func NewJSONScoreStore(path string) *JSONScoreStore {
	return &JSONScoreStore{path: path}
}

// Load reads the score file. A missing file is an empty list.
func (s *JSONScoreStore) Load(ctx context.Context) ([]ScoreEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ScoreEntry{}, nil
		}
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	var entries []ScoreEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse score file %s: %w", s.path, err)
	}

	// Files written before entries carried IDs
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = uuid.New().String()
		}
	}

	return entries, nil
}

// Save writes the entries to a temporary file and renames it over the old one
func (s *JSONScoreStore) Save(ctx context.Context, entries []ScoreEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if entries == nil {
		entries = []ScoreEntry{}
	}

	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scores: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create score directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary score file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary score file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace score file: %w", err)
	}
	return nil
}

// Close is a no-op for the file store
func (s *JSONScoreStore) Close() error {
	return nil
}

// OpenScoreStore opens the named backend. A SQLite database that cannot be
// opened is reported through logFunc and replaced by the JSON file at fallbackPath.
func OpenScoreStore(backend, path, fallbackPath string, logFunc func(string)) ScoreStore {
	if backend != config.BackendSQLite {
		return NewJSONScoreStore(path)
	}

	store, err := OpenSQLiteScoreStore(path)
	if err != nil {
		if logFunc != nil {
			logFunc(fmt.Sprintf("Warning: %v, falling back to the JSON score file", err))
		}
		return NewJSONScoreStore(fallbackPath)
	}
	return store
}
