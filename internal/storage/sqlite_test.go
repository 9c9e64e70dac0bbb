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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	// Reopening runs migrations again
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndGetRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunEntry{
		Seed:       42,
		Outcome:    "lost",
		Moves:      512,
		MaxTile:    1024,
		Lookahead:  3,
		DurationMS: 1500,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive ID, got %d", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.Seed != 42 || run.Outcome != "lost" || run.Moves != 512 || run.MaxTile != 1024 {
		t.Errorf("RunByID() = %+v, fields do not match saved run", *run)
	}
	if run.Lookahead != 3 || run.DurationMS != 1500 {
		t.Errorf("RunByID() = %+v, search fields do not match", *run)
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.RunByID(id + 100)
	if err != nil {
		t.Fatalf("RunByID() of missing run failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing run, got %+v", *missing)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Seed: 1, Outcome: "lost", Moves: 300, MaxTile: 512, Lookahead: 3},
		{Seed: 2, Outcome: "won", Moves: 900, MaxTile: 2048, Lookahead: 3},
		{Seed: 3, Outcome: "lost", Moves: 600, MaxTile: 1024, Lookahead: 3},
		{Seed: 4, Outcome: "lost", Moves: 700, MaxTile: 1024, Lookahead: 3},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Highest tile first, then more moves
	wantSeeds := []int64{2, 4, 3}
	for i, want := range wantSeeds {
		if top[i].Seed != want {
			t.Errorf("top[%d].Seed = %d, want %d", i, top[i].Seed, want)
		}
	}

	// Non-positive limit falls back to a default
	all, err := store.TopRuns(0)
	if err != nil {
		t.Fatalf("TopRuns(0) failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 runs with default limit, got %d", len(all))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunEntry{Seed: int64(i), Outcome: "lost", Moves: i, MaxTile: 64, Lookahead: 3}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(recent))
	}
	if recent[0].Seed != 4 || recent[1].Seed != 3 {
		t.Errorf("Expected newest first, got seeds %d, %d", recent[0].Seed, recent[1].Seed)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Wins != 0 || stats.BestTile != 0 || stats.AvgMoves != 0 {
		t.Errorf("Expected empty stats, got %+v", *stats)
	}

	store.SaveRun(RunEntry{Seed: 1, Outcome: "won", Moves: 1000, MaxTile: 2048, Lookahead: 3})
	store.SaveRun(RunEntry{Seed: 2, Outcome: "lost", Moves: 200, MaxTile: 256, Lookahead: 3})
	store.SaveRun(RunEntry{Seed: 3, Outcome: "move_limit", Moves: 300, MaxTile: 512, Lookahead: 2})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, want 3", stats.Runs)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
	if stats.BestTile != 2048 {
		t.Errorf("BestTile = %d, want 2048", stats.BestTile)
	}
	if stats.AvgMoves != 500 {
		t.Errorf("AvgMoves = %v, want 500", stats.AvgMoves)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Seed: 1, Outcome: "lost", Moves: 10, MaxTile: 16, Lookahead: 3})
	store.SaveRun(RunEntry{Seed: 2, Outcome: "lost", Moves: 20, MaxTile: 32, Lookahead: 3})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
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
