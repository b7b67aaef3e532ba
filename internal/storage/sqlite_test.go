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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("ABC", 1500, 3, "s1"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 1500 {
		t.Errorf("HighScore() = %d, want 1500", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saves := []struct {
		player   string
		score    int
		maxLevel int
	}{
		{"ABC", 1200, 2},
		{"XYZ", 3400, 4},
		{"ABC", 800, 1},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.player, s.score, s.maxLevel, "session-"+s.player); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		player string
		score  int
		level  int
	}{
		{"XYZ", 3400, 4},
		{"ABC", 1200, 2},
		{"ABC", 800, 1},
	}
	for i, w := range want {
		got := scores[i]
		if got.Player != w.player || got.Score != w.score || got.MaxLevel != w.level {
			t.Errorf("scores[%d] = %s/%d/%d, want %s/%d/%d", i, got.Player, got.Score, got.MaxLevel, w.player, w.score, w.level)
		}
	}
	if scores[0].SessionID != "session-XYZ" {
		t.Errorf("SessionID = %q, want session-XYZ", scores[0].SessionID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 12; i++ {
		store.SaveScore("ABC", (i+1)*100, 1, "")
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[9].Score != 300 {
		t.Errorf("Scores not in expected order: first %d, last %d", scores[0].Score, scores[9].Score)
	}

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d, want 10", len(scores))
	}
}

func TestStoreHighScoreAndPersonalBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveScore("ABC", 100, 1, "")
	store.SaveScore("ABC", 300, 2, "")
	store.SaveScore("XYZ", 900, 3, "")

	tests := []struct {
		player string
		want   int
	}{
		{"ABC", 300},
		{"XYZ", 900},
		{"NEW", 0},
	}
	for _, tc := range tests {
		got, err := store.PersonalBest(tc.player)
		if err != nil {
			t.Fatalf("PersonalBest(%q) failed: %v", tc.player, err)
		}
		if got != tc.want {
			t.Errorf("PersonalBest(%q) = %d, want %d", tc.player, got, tc.want)
		}
	}

	high, _ = store.HighScore()
	if high != 900 {
		t.Errorf("HighScore() = %d, want 900", high)
	}
}

func TestStorePlayerProgress(t *testing.T) {
	store := openTestStore(t)

	p, err := store.Player("ABC")
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	if p.HasPlayed || p.MaxLevel != 0 {
		t.Errorf("unknown player = %+v, want zero progress", p)
	}

	if err := store.RecordLevel("ABC", 3); err != nil {
		t.Fatalf("RecordLevel() failed: %v", err)
	}
	if err := store.RecordLevel("ABC", 2); err != nil {
		t.Fatalf("RecordLevel() failed: %v", err)
	}
	if err := store.MarkPlayed("ABC"); err != nil {
		t.Fatalf("MarkPlayed() failed: %v", err)
	}
	if err := store.MarkPlayed("ABC"); err != nil {
		t.Fatalf("second MarkPlayed() failed: %v", err)
	}

	p, err = store.Player("ABC")
	if err != nil {
		t.Fatalf("Player() failed: %v", err)
	}
	if !p.HasPlayed {
		t.Error("HasPlayed should be true after MarkPlayed")
	}
	if p.MaxLevel != 3 {
		t.Errorf("MaxLevel = %d, want 3 (lower levels ignored)", p.MaxLevel)
	}

	other, _ := store.Player("XYZ")
	if other.HasPlayed {
		t.Error("progress leaked to another player")
	}
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ABC", 100, 1, "a")
	store.SaveScore("XYZ", 200, 1, "b")
	store.SaveScore("ABC", 50, 1, "c")

	scores, err := store.PlayerScores("ABC")
	if err != nil {
		t.Fatalf("PlayerScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[0].SessionID != "c" || scores[1].SessionID != "a" {
		t.Errorf("PlayerScores() order = %s,%s, want newest first", scores[0].SessionID, scores[1].SessionID)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("ABC", 100, 1, "")
	store.SaveScore("XYZ", 200, 1, "")
	store.MarkPlayed("ABC")

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores(10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	p, _ := store.Player("ABC")
	if !p.HasPlayed {
		t.Error("ClearScores should keep player progress")
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
