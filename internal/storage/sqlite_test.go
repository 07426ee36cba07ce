package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/levels"
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

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreReopenKeepsSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("breakout", 42, "Classic"); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	version, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("SchemaVersion() = %d, want %d", version, len(migrations))
	}
	if high, _ := store.HighScore("breakout"); high != 42 {
		t.Errorf("HighScore() after reopen = %d, want 42", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("breakout", s, "Classic"); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("jump", 5, ""); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("breakout", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Level != "Classic" || scores[0].GameID != "breakout" {
		t.Errorf("entry = %+v", scores[0])
	}

	jump, _ := store.TopScores("jump", 10)
	if len(jump) != 1 || jump[0].Level != "" {
		t.Errorf("Expected 1 jump score without level, got %v", jump)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveScore("test", (i+1)*100, "")
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

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("breakout")
	if err != nil || high != 0 {
		t.Fatalf("HighScore() on empty = %d, %v", high, err)
	}

	store.SaveScore("breakout", 100, "")
	store.SaveScore("breakout", 300, "")
	store.SaveScore("jump", 7, "")

	if high, _ = store.HighScore("breakout"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("breakout"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("breakout", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("jump", 10); len(scores) != 1 {
		t.Error("jump scores should not be affected by clearing breakout")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("breakout", 10, "")
	store.SaveScore("breakout", 30, "")

	stats, err = store.Stats("breakout")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
}

func testPack() []levels.Level {
	return []levels.Level{
		{
			Name: "Gate",
			Grids: []levels.Descriptor{
				{X: 0, Y: 24, Width: 3, Cells: []int{1, 0, 1, 1, 1, 1}},
				{X: 96, Y: 24, Width: 2, EnvironmentID: 3, Cells: []int{1, 1}},
			},
		},
		{
			Name:       "Bar",
			CellWidth:  8,
			CellHeight: 4,
			Grids:      []levels.Descriptor{{X: 16, Y: 40, Width: 4, Cells: []int{1, 1, 1, 1}}},
		},
		{Name: "Empty"},
	}
}

func TestLevelPackRoundTrip(t *testing.T) {
	store := openTestStore(t)
	pack := testPack()

	if err := store.SaveLevelPack("mine", pack); err != nil {
		t.Fatalf("SaveLevelPack() failed: %v", err)
	}

	got, err := store.LoadLevelPack("mine")
	if err != nil {
		t.Fatalf("LoadLevelPack() failed: %v", err)
	}
	if !reflect.DeepEqual(got, pack) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, pack)
	}
}

func TestLevelPackReplaceAndDelete(t *testing.T) {
	store := openTestStore(t)
	pack := testPack()

	store.SaveLevelPack("mine", pack)
	if err := store.SaveLevelPack("mine", pack[:1]); err != nil {
		t.Fatalf("replacing pack failed: %v", err)
	}
	store.SaveLevelPack("other", pack[1:2])

	packs, err := store.LevelPacks()
	if err != nil {
		t.Fatalf("LevelPacks() failed: %v", err)
	}
	if len(packs) != 2 || packs[0].Name != "mine" || packs[0].Levels != 1 || packs[1].Levels != 1 {
		t.Errorf("packs = %+v", packs)
	}

	got, _ := store.LoadLevelPack("mine")
	if len(got) != 1 || len(got[0].Grids) != 2 {
		t.Errorf("replaced pack = %+v", got)
	}

	if err := store.DeleteLevelPack("mine"); err != nil {
		t.Fatalf("DeleteLevelPack() failed: %v", err)
	}
	if _, err := store.LoadLevelPack("mine"); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("load after delete err = %v, expected ErrPackNotFound", err)
	}
	if err := store.DeleteLevelPack("mine"); !errors.Is(err, ErrPackNotFound) {
		t.Errorf("second delete err = %v, expected ErrPackNotFound", err)
	}
}

func TestLevelPackRejectsInvalid(t *testing.T) {
	store := openTestStore(t)
	bad := []levels.Level{{
		Name:  "bad",
		Grids: []levels.Descriptor{{Width: 3, Cells: []int{1, 1, 1, 1}}},
	}}

	if err := store.SaveLevelPack("bad", bad); err == nil {
		t.Fatal("expected an error for an invalid level")
	}
	if packs, _ := store.LevelPacks(); len(packs) != 0 {
		t.Error("invalid pack should not be stored")
	}
}

func TestCellEncoding(t *testing.T) {
	if got := encodeCells([]int{1, 0, 0, 1}); got != "1001" {
		t.Errorf("encodeCells = %q", got)
	}
	cells, err := decodeCells("0110")
	if err != nil || !reflect.DeepEqual(cells, []int{0, 1, 1, 0}) {
		t.Errorf("decodeCells = %v, %v", cells, err)
	}
	if _, err := decodeCells("01x"); err == nil {
		t.Error("expected an error for an invalid cell")
	}
}
