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
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories and the file itself are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if err := store.SaveScore("pursuit", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// Different game must not leak into pursuit results
	if err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("pursuit", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Got %d scores, expected 3", len(scores))
	}
	// Best first
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}
	for _, s := range scores {
		if s.GameID != "pursuit" {
			t.Errorf("Foreign game leaked into results: %q", s.GameID)
		}
	}

	high, err := store.HighScore("pursuit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore = %d, expected 200", high)
	}
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("pursuit")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore on empty table = %d, expected 0", high)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if err := store.SaveScore("pursuit", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pursuit", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Got %d scores, expected limit of 5", len(scores))
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{GameID: "pursuit", Difficulty: "normal", Outcome: "lost", Moves: 42, Tokens: 2, Wave: 3, Score: 92},
		{GameID: "pursuit", Difficulty: "hard", Outcome: "won", Moves: 88, Tokens: 6, Wave: 9, Score: 476},
		{GameID: "pursuit", Difficulty: "easy", Outcome: "won", Moves: 30, Tokens: 4, Wave: 2, Score: 260},
	}
	for _, run := range runs {
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("pursuit", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Got %d runs, expected 3", len(got))
	}

	// Newest first: the easy win was recorded last
	if got[0].Difficulty != "easy" || got[0].Outcome != "won" {
		t.Errorf("First run = %s/%s, expected easy/won", got[0].Difficulty, got[0].Outcome)
	}
	if got[0].Moves != 30 || got[0].Tokens != 4 || got[0].Wave != 2 || got[0].Score != 260 {
		t.Errorf("Run details mangled: %+v", got[0])
	}

	wins, err := store.WinCount("pursuit")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 2 {
		t.Errorf("WinCount = %d, expected 2", wins)
	}
}

func TestStoreWinCountEmpty(t *testing.T) {
	store := openTestStore(t)

	wins, err := store.WinCount("pursuit")
	if err != nil {
		t.Fatalf("WinCount() failed: %v", err)
	}
	if wins != 0 {
		t.Errorf("WinCount on empty table = %d, expected 0", wins)
	}
}
