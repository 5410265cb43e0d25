package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
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

	for _, s := range []struct {
		score, lines, level int
	}{
		{1200, 12, 2},
		{400, 4, 1},
		{9800, 41, 5},
	} {
		if _, err := store.SaveScore("tetris", s.score, s.lines, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris_auto", 50000, 120, 13); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 9800 || scores[1].Score != 1200 || scores[2].Score != 400 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Lines != 41 || scores[0].Level != 5 {
		t.Errorf("Top entry = lines %d level %d, want 41/5", scores[0].Lines, scores[0].Level)
	}

	autoScores, err := store.TopScores("tetris_auto", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(autoScores) != 1 {
		t.Errorf("Expected 1 autopilot score, got %d", len(autoScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tetris", (i+1)*100, i, 1)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 300, 3, 1)
	store.SaveScore("tetris", 200, 2, 1)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 200, 2, 1)
	store.SaveScore("tetris_auto", 300, 3, 1)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	manual, _ := store.TopScores("tetris", 10)
	if len(manual) != 0 {
		t.Errorf("Expected 0 manual scores after clear, got %d", len(manual))
	}

	auto, _ := store.TopScores("tetris_auto", 10)
	if len(auto) != 1 {
		t.Errorf("Autopilot scores should not be affected by clearing tetris")
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	recs := []SessionRecord{
		{GameID: "tetris", Score: 1200, Lines: 12, Level: 2, DurationSecs: 340},
		{GameID: "tetris_auto", Score: 88000, Lines: 210, Level: 22, Autopilot: true, DurationSecs: 1800},
	}
	for _, rec := range recs {
		if _, err := store.SaveSession(rec); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	var auto *SessionRecord
	for i := range sessions {
		if sessions[i].GameID == "tetris_auto" {
			auto = &sessions[i]
		}
	}
	if auto == nil {
		t.Fatal("autopilot session not returned")
	}
	if !auto.Autopilot || auto.Lines != 210 || auto.DurationSecs != 1800 {
		t.Errorf("autopilot session round-trip mismatch: %+v", auto)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", 100, 1, 1)
	store.SaveScore("tetris", 300, 5, 1)

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalLines != 6 {
		t.Errorf("stats = %+v, want 2 games, high 300, 6 total lines", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
