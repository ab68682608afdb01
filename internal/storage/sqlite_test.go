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

func saveScore(t *testing.T, store *Store, mode string, score int) string {
	t.Helper()
	id, err := store.SaveRound(Round{Mode: mode, Score: score}, nil)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	return id
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveRoundWithWords(t *testing.T) {
	store := openTestStore(t)

	words := []RoundWord{
		{Word: "tea", Points: 1},
		{Word: "teapot", Points: 10},
		{Word: "pot", Points: 6},
	}
	id, err := store.SaveRound(Round{
		Mode:          "wordrush",
		Score:         17,
		WordsFound:    3,
		BestWord:      "teapot",
		LongestStreak: 3,
	}, words)
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("Expected a UUID round ID, got %q", id)
	}

	rounds, err := store.TopScores("wordrush", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(rounds))
	}
	r := rounds[0]
	if r.ID != id || r.Score != 17 || r.WordsFound != 3 || r.BestWord != "teapot" || r.LongestStreak != 3 {
		t.Errorf("Round not stored as saved: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	got, err := store.RoundWords(id)
	if err != nil {
		t.Fatalf("RoundWords() failed: %v", err)
	}
	if len(got) != len(words) {
		t.Fatalf("Expected %d words, got %d", len(words), len(got))
	}
	for i := range words {
		if got[i] != words[i] {
			t.Errorf("word %d = %+v, expected %+v", i, got[i], words[i])
		}
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "wordrush", (i+1)*10)
	}
	saveScore(t, store, "wordrush_zen", 500)

	scores, err := store.TopScores("wordrush", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	zen, err := store.TopScores("wordrush_zen", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(zen) != 1 {
		t.Errorf("Expected 1 zen round, got %d", len(zen))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("wordrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	saveScore(t, store, "wordrush", 10)
	saveScore(t, store, "wordrush", 30)
	saveScore(t, store, "wordrush", 20)

	high, err = store.HighScore("wordrush")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(Round{Mode: "wordrush", Score: 10}, []RoundWord{{Word: "cat", Points: 1}})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	saveScore(t, store, "wordrush_zen", 30)

	if err := store.ClearScores("wordrush"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	rounds, _ := store.TopScores("wordrush", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}
	words, _ := store.RoundWords(id)
	if len(words) != 0 {
		t.Errorf("Expected words of cleared rounds to be gone, got %v", words)
	}

	zen, _ := store.TopScores("wordrush_zen", 10)
	if len(zen) != 1 {
		t.Error("Zen rounds should not be affected by clearing wordrush")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("wordrush")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 0 || stats.LongestWord != "" || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(Round{Mode: "wordrush", Score: 10, WordsFound: 2, LongestStreak: 2},
		[]RoundWord{{Word: "tea", Points: 1}, {Word: "teapot", Points: 10}})
	store.SaveRound(Round{Mode: "wordrush", Score: 20, WordsFound: 1, LongestStreak: 1},
		[]RoundWord{{Word: "elephant", Points: 22}})

	stats, err = store.Stats("wordrush")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Rounds != 2 {
		t.Errorf("Rounds = %d, expected 2", stats.Rounds)
	}
	if stats.HighScore != 20 {
		t.Errorf("HighScore = %d, expected 20", stats.HighScore)
	}
	if stats.AvgScore != 15 {
		t.Errorf("AvgScore = %f, expected 15", stats.AvgScore)
	}
	if stats.TotalWords != 3 {
		t.Errorf("TotalWords = %d, expected 3", stats.TotalWords)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, expected 2", stats.LongestStreak)
	}
	if stats.LongestWord != "elephant" {
		t.Errorf("LongestWord = %q, expected elephant", stats.LongestWord)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
