package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/nurture/core"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file was not created: %v", err)
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.RecordRun(Run{Level: "test_one", Score: 42}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if best, _ := store.BestScore("test_one"); best != 42 {
		t.Errorf("BestScore after reopen = %d, want 42", best)
	}
}

func TestRecordRunRoundTrip(t *testing.T) {
	store := openTemp(t)

	in := Run{
		Level:       "test_one",
		Script:      "scripts/one.yaml",
		Ticks:       241,
		Finished:    true,
		PlayerSaved: true,
		Children:    []core.ChildType{core.Bloat, core.Larry},
		Moves:       3,
		Score:       247,
	}
	saved, err := store.RecordRun(in)
	if err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if saved.ID == "" || saved.CreatedAt.IsZero() {
		t.Fatalf("RecordRun did not fill id/created_at: %+v", saved)
	}

	runs, err := store.RecentRuns("test_one", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	got := runs[0]
	if got.ID != saved.ID || got.Script != in.Script || got.Ticks != 241 || !got.Finished || !got.PlayerSaved {
		t.Errorf("run = %+v", got)
	}
	if len(got.Children) != 2 || got.Children[0] != core.Bloat || got.Children[1] != core.Larry {
		t.Errorf("children = %v", got.Children)
	}
	if got.Moves != 3 || got.Score != 247 {
		t.Errorf("moves/score = %d/%d", got.Moves, got.Score)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
}

func TestRecordRunRequiresLevel(t *testing.T) {
	store := openTemp(t)
	if _, err := store.RecordRun(Run{}); err == nil {
		t.Fatal("expected error for run without level")
	}
}

func TestRecentRunsOrderAndFilter(t *testing.T) {
	store := openTemp(t)
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, r := range []Run{
		{Level: "test_one", Score: 10},
		{Level: "test_two", Score: 20},
		{Level: "test_one", Score: 30},
		{Level: "test_one", Score: 5},
	} {
		r.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if _, err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}

	tests := []struct {
		level  string
		limit  int
		scores []int
	}{
		{"test_one", 10, []int{5, 30, 10}},
		{"test_one", 2, []int{5, 30}},
		{"test_two", 10, []int{20}},
		{"", 10, []int{5, 30, 20, 10}},
		{"missing", 10, nil},
	}
	for _, tt := range tests {
		runs, err := store.RecentRuns(tt.level, tt.limit)
		if err != nil {
			t.Fatalf("RecentRuns(%q) failed: %v", tt.level, err)
		}
		var scores []int
		for _, r := range runs {
			scores = append(scores, r.Score)
		}
		if len(scores) != len(tt.scores) {
			t.Errorf("RecentRuns(%q, %d) = %v, want %v", tt.level, tt.limit, scores, tt.scores)
			continue
		}
		for i := range scores {
			if scores[i] != tt.scores[i] {
				t.Errorf("RecentRuns(%q, %d) = %v, want %v", tt.level, tt.limit, scores, tt.scores)
				break
			}
		}
	}
}

func TestBestScore(t *testing.T) {
	store := openTemp(t)

	best, err := store.BestScore("test_one")
	if err != nil || best != 0 {
		t.Fatalf("BestScore on empty = %d, %v", best, err)
	}

	for _, s := range []int{100, 250, 149} {
		if _, err := store.RecordRun(Run{Level: "test_one", Score: s}); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if _, err := store.RecordRun(Run{Level: "test_two", Score: 999}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}

	if best, _ := store.BestScore("test_one"); best != 250 {
		t.Errorf("BestScore = %d, want 250", best)
	}
}
