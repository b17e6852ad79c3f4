package data

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func entry(name string, score int, d Difficulty) ScoreEntry {
	return NewScoreEntry(name, score, d)
}

func TestHighScoreTable_SortedDescending(t *testing.T) {
	table := NewHighScoreTable(nil)
	for _, s := range []int{30, 90, 10, 60} {
		table.Insert(entry("ann", s, Easy))
	}

	got := table.ForDifficulty(Easy)
	want := []int{90, 60, 30, 10}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Score != w {
			t.Errorf("Entry %d: expected %d, got %d", i, w, got[i].Score)
		}
	}
}

func TestHighScoreTable_CapsPerDifficulty(t *testing.T) {
	table := NewHighScoreTable(nil)
	for i := 1; i <= 8; i++ {
		table.Insert(entry("bob", i*10, Hard))
		table.Insert(entry("cy", i*15, Expert))
	}

	for _, d := range AllDifficulties {
		bucket := table.ForDifficulty(d)
		if len(bucket) > 5 {
			t.Errorf("%v holds %d entries, want at most 5", d, len(bucket))
		}
		for i := 1; i < len(bucket); i++ {
			if bucket[i-1].Score < bucket[i].Score {
				t.Errorf("%v bucket not sorted at %d", d, i)
			}
		}
	}

	if best := table.Best(Hard); best != 80 {
		t.Errorf("Expected best Hard score 80, got %d", best)
	}
	if table.Len() != 10 {
		t.Errorf("Expected 10 entries in total, got %d", table.Len())
	}
}

func TestHighScoreTable_LowSixthScoreLeavesTableUnchanged(t *testing.T) {
	table := NewHighScoreTable(nil)
	for _, s := range []int{50, 40, 30, 20, 15} {
		table.Insert(entry("dee", s, Easy))
	}
	before := table.Entries()

	if table.Qualifies(10, Easy) {
		t.Error("Score 10 should not qualify")
	}
	if kept := table.Insert(entry("eve", 10, Easy)); kept {
		t.Error("Expected the low score to be pruned")
	}

	after := table.Entries()
	if len(after) != len(before) {
		t.Fatalf("Expected %d entries, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("Entry %d changed from %s to %s", i, before[i].ID, after[i].ID)
		}
	}
}

func TestHighScoreTable_OtherDifficultiesUnaffected(t *testing.T) {
	table := NewHighScoreTable(nil)
	for i := 0; i < 5; i++ {
		table.Insert(entry("fay", 100+i, Easy))
	}
	if !table.Qualifies(1, Medium) {
		t.Error("Any positive score should qualify for an empty bucket")
	}
	if !table.Insert(entry("gus", 1, Medium)) {
		t.Error("Expected the Medium entry to be kept")
	}
	if len(table.ForDifficulty(Easy)) != 5 {
		t.Error("Easy bucket should still hold 5 entries")
	}
}

func TestHighScoreTable_ZeroNeverQualifies(t *testing.T) {
	table := NewHighScoreTable(nil)
	if table.Qualifies(0, Easy) {
		t.Error("Zero should not qualify")
	}
}

func TestHighScoreTable_PrunesLoadedEntries(t *testing.T) {
	var loaded []ScoreEntry
	for i := 0; i < 9; i++ {
		loaded = append(loaded, ScoreEntry{ID: fmt.Sprint(i), Score: i, Difficulty: Medium})
	}
	table := NewHighScoreTable(loaded)
	bucket := table.ForDifficulty(Medium)
	if len(bucket) != 5 || bucket[0].Score != 8 || bucket[4].Score != 4 {
		t.Errorf("Unexpected bucket after load: %+v", bucket)
	}
}

func TestDifficulty_Table(t *testing.T) {
	tests := []struct {
		d          Difficulty
		interval   float64
		multiplier float64
	}{
		{Easy, 0.2, 1.0},
		{Medium, 0.15, 1.5},
		{Hard, 0.1, 2.0},
		{Expert, 0.07, 3.0},
	}
	for _, tt := range tests {
		info := tt.d.Info()
		if info.Interval != tt.interval {
			t.Errorf("%v interval = %v, want %v", tt.d, info.Interval, tt.interval)
		}
		if info.ScoreMultiplier != tt.multiplier {
			t.Errorf("%v multiplier = %v, want %v", tt.d, info.ScoreMultiplier, tt.multiplier)
		}
	}

	if got := Easy.SpeedMultiplier(); got != 5 {
		t.Errorf("Easy speed multiplier = %v, want 5", got)
	}
}

func TestDifficulty_Wrapping(t *testing.T) {
	if Expert.Next() != Easy {
		t.Error("Expert.Next() should wrap to Easy")
	}
	if Easy.Prev() != Expert {
		t.Error("Easy.Prev() should wrap to Expert")
	}
	if Medium.Next() != Hard || Medium.Prev() != Easy {
		t.Error("Medium neighbours are wrong")
	}
}

func TestDifficulty_JSON(t *testing.T) {
	e := ScoreEntry{ID: "x", PlayerName: "hal", Score: 45, Difficulty: Expert, Timestamp: time.Unix(0, 0).UTC()}
	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if fields["difficulty"] != "Expert" {
		t.Errorf("Expected difficulty stored by name, got %v", fields["difficulty"])
	}

	var bad ScoreEntry
	if err := json.Unmarshal([]byte(`{"difficulty":"Nightmare"}`), &bad); err == nil {
		t.Error("Expected an error for an unknown difficulty")
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("hard")
	if err != nil || d != Hard {
		t.Errorf("ParseDifficulty(hard) = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("Expected an error for an unknown name")
	}
}
