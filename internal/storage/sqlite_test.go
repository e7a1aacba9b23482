package storage

import (
	"os"
	"path/filepath"
	"sync"
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

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
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

	_, err := store.SaveScore(ScoreEntry{GameID: "2048", Score: 100, MaxTile: 64, Moves: 30, Merges: 12})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	mustSave(t, store, "2048", 50)
	mustSave(t, store, "2048", 200)
	mustSave(t, store, "2048_5x5", 500)

	scores, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if e := scores[1]; e.MaxTile != 64 || e.Moves != 30 || e.Merges != 12 {
		t.Errorf("run details not stored: %+v", e)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	other, err := store.TopScores("2048_5x5", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 5x5 score, got %d", len(other))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		mustSave(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
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

	high, err := store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "2048", 100)
	mustSave(t, store, "2048", 300)
	mustSave(t, store, "2048", 200)

	high, err = store.HighScore("2048")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "2048", 100)
	mustSave(t, store, "2048", 200)
	mustSave(t, store, "2048_3x3", 300)

	if err := store.ClearScores("2048"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("2048", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(classic))
	}

	mini, _ := store.TopScores("2048_3x3", 10)
	if len(mini) != 1 {
		t.Errorf("3x3 scores should not be affected by clearing 2048")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		mustSave(t, store, "test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ScoreEntry{GameID: "2048", Score: 100, MaxTile: 64, Moves: 10, Merges: 4})
	store.SaveScore(ScoreEntry{GameID: "2048", Score: 300, MaxTile: 256, Moves: 40, Merges: 20})
	store.SaveScore(ScoreEntry{GameID: "2048_5x5", Score: 50, MaxTile: 16, Moves: 5, Merges: 2})

	stats, err := store.GetGameStats("2048")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("score aggregates = %+v", stats)
	}
	if stats.BestTile != 256 || stats.TotalMoves != 50 || stats.TotalMerges != 24 {
		t.Errorf("run aggregates = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["2048_5x5"].BestTile != 16 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := Open("~/nested/deep/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, "nested", "deep", "test.db")); os.IsNotExist(err) {
		t.Error("Database file was not created under the home directory")
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("animationMode"); err != nil || ok {
		t.Fatalf("unset setting: ok=%v err=%v", ok, err)
	}

	if err := store.SetSetting("animationMode", "fast"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("animationMode", "off"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}

	v, ok, err := store.Setting("animationMode")
	if err != nil || !ok || v != "off" {
		t.Errorf("Setting() = %q, %v, %v; want off", v, ok, err)
	}
}

func TestStoreBestScoreOnlyRises(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.BestScore("bestScore"); err != nil || best != 0 {
		t.Fatalf("unset best = %d, %v", best, err)
	}

	for _, score := range []int{500, 200, 1200, 900} {
		if err := store.SetBestScore("bestScore", score); err != nil {
			t.Fatalf("SetBestScore(%d) failed: %v", score, err)
		}
	}

	best, err := store.BestScore("bestScore")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 1200 {
		t.Errorf("best = %d, want 1200", best)
	}

	other, _ := store.BestScore("bestScore:2048_5x5")
	if other != 0 {
		t.Errorf("best scores are per key, got %d", other)
	}
}

func TestStoreBestScoreConcurrent(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			// Writers may contend on the database lock; only the final value matters.
			_ = store.SetBestScore("bestScore", score)
		}(i * 100)
	}
	wg.Wait()

	best, err := store.BestScore("bestScore")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best == 0 || best%100 != 0 {
		t.Errorf("best = %d, want one of the written scores", best)
	}
}
