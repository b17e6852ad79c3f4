package data

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"ebiten-snake/config"
)

// ScoreEntry is one row of the high score table
type ScoreEntry struct {
	ID         string     `json:"id"`
	PlayerName string     `json:"player_name"`
	Score      int        `json:"score"`
	Difficulty Difficulty `json:"difficulty"`
	Timestamp  time.Time  `json:"timestamp"`
}

// NewScoreEntry creates an entry stamped with a fresh ID and the current time
func NewScoreEntry(name string, score int, difficulty Difficulty) ScoreEntry {
	return ScoreEntry{
		ID:         uuid.New().String(),
		PlayerName: name,
		Score:      score,
		Difficulty: difficulty,
		Timestamp:  time.Now(),
	}
}

// HighScoreTable keeps the best scores per difficulty, sorted by score descending
type HighScoreTable struct {
	entries []ScoreEntry
	perDiff int
}

// NewHighScoreTable creates a table from previously stored entries
func NewHighScoreTable(entries []ScoreEntry) *HighScoreTable {
	t := &HighScoreTable{perDiff: config.MaxScoresPerDifficulty}
	t.entries = append(t.entries, entries...)
	t.prune()
	return t
}

// Insert adds an entry, then re-sorts and prunes the table.
// It reports whether the entry survived pruning.
func (t *HighScoreTable) Insert(entry ScoreEntry) bool {
	t.entries = append(t.entries, entry)
	t.prune()
	for _, e := range t.entries {
		if e.ID == entry.ID {
			return true
		}
	}
	return false
}

// prune sorts all entries and keeps the first perDiff of each difficulty
func (t *HighScoreTable) prune() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		return t.entries[i].Score > t.entries[j].Score
	})

	counts := make(map[Difficulty]int, len(AllDifficulties))
	kept := t.entries[:0]
	for _, e := range t.entries {
		if counts[e.Difficulty] >= t.perDiff {
			continue
		}
		counts[e.Difficulty]++
		kept = append(kept, e)
	}
	t.entries = kept
}

// Qualifies reports whether a score would enter the table for a difficulty
func (t *HighScoreTable) Qualifies(score int, difficulty Difficulty) bool {
	if score <= 0 {
		return false
	}
	bucket := t.ForDifficulty(difficulty)
	if len(bucket) < t.perDiff {
		return true
	}
	return score > bucket[len(bucket)-1].Score
}

// ForDifficulty returns the entries of one difficulty, best first
func (t *HighScoreTable) ForDifficulty(difficulty Difficulty) []ScoreEntry {
	out := make([]ScoreEntry, 0, t.perDiff)
	for _, e := range t.entries {
		if e.Difficulty == difficulty {
			out = append(out, e)
		}
	}
	return out
}

// Best returns the top score for a difficulty, or zero
func (t *HighScoreTable) Best(difficulty Difficulty) int {
	for _, e := range t.entries {
		if e.Difficulty == difficulty {
			return e.Score
		}
	}
	return 0
}

// Entries returns a copy of every entry, sorted by score descending
func (t *HighScoreTable) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the total number of entries
func (t *HighScoreTable) Len() int {
	return len(t.entries)
}
