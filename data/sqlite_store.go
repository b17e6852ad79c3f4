package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteScoreStore keeps the high score list in a local SQLite database
type SQLiteScoreStore struct {
	db *sql.DB
}

// OpenSQLiteScoreStore opens (or creates) the database at dbPath and its schema
func OpenSQLiteScoreStore(dbPath string) (*SQLiteScoreStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS high_scores (
		id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		timestamp DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteScoreStore{db: db}, nil
}

// Load returns every stored entry, best first
func (s *SQLiteScoreStore) Load(ctx context.Context) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_name, score, difficulty, timestamp FROM high_scores ORDER BY score DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	entries := []ScoreEntry{}
	for rows.Next() {
		var e ScoreEntry
		var difficulty string
		if err := rows.Scan(&e.ID, &e.PlayerName, &e.Score, &difficulty, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		if err := e.Difficulty.UnmarshalText([]byte(difficulty)); err != nil {
			return nil, fmt.Errorf("score %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}
	return entries, nil
}

// Save replaces the table contents inside one transaction
func (s *SQLiteScoreStore) Save(ctx context.Context, entries []ScoreEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM high_scores`); err != nil {
		return fmt.Errorf("failed to clear scores: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO high_scores (id, player_name, score, difficulty, timestamp) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.PlayerName, e.Score, e.Difficulty.String(), e.Timestamp); err != nil {
			return fmt.Errorf("failed to insert score %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scores: %w", err)
	}
	return nil
}

// Close releases the database handle
func (s *SQLiteScoreStore) Close() error {
	return s.db.Close()
}
