package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, level int }{
		{12, 3}, {5, 2}, {27, 6},
	} {
		if _, err := store.SaveRun(run.score, run.level); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(scores))
	}
	if scores[0].Score != 27 || scores[0].Level != 6 {
		t.Errorf("Expected best run 27/level 6 first, got %d/level %d", scores[0].Score, scores[0].Level)
	}
	if scores[2].Score != 5 {
		t.Errorf("Expected lowest run last, got %d", scores[2].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveRun(i, 1); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 runs, got %d", len(scores))
	}

	// Zero limit falls back to the default of 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Empty store should report high score 0, got %d", high)
	}

	store.SaveRun(8, 2)
	store.SaveRun(42, 9)
	store.SaveRun(3, 1)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 42 {
		t.Errorf("Expected high score 42, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(10, 3)
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 {
		t.Errorf("Empty store stats should be zero, got %+v", stats)
	}

	store.SaveRun(10, 3)
	store.SaveRun(20, 5)

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.Runs != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.Runs)
	}
	if stats.HighScore != 20 {
		t.Errorf("Expected high score 20, got %d", stats.HighScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("Expected average 15, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 30 {
		t.Errorf("Expected total 30, got %d", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set after a run")
	}
}
