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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Mode: "bag", Lines: 40, Pieces: 100, DurationSecs: 120, EndState: "top_out"},
		{Mode: "bag", Lines: 10, Pieces: 30, DurationSecs: 45, EndState: "completed"},
		{Mode: "bag", Lines: 80, Pieces: 210, DurationSecs: 300, EndState: "top_out"},
		{Mode: "history", Lines: 25, Pieces: 70, DurationSecs: 90, EndState: "exhausted"},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults("bag", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 bag results, got %d", len(results))
	}

	// Should be sorted by lines descending
	if results[0].Lines != 80 || results[1].Lines != 40 || results[2].Lines != 10 {
		t.Errorf("Results not in expected order: %v", results)
	}
	if results[0].EndState != "top_out" {
		t.Errorf("Expected end state top_out, got %s", results[0].EndState)
	}

	// Empty mode matches everything
	all, err := store.TopResults("", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 results across modes, got %d", len(all))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(Result{Mode: "bag", Lines: (i + 1) * 10, Pieces: 1, EndState: "top_out"})
	}

	results, err := store.TopResults("bag", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 50, 40, 30 (top 3)
	if results[0].Lines != 50 || results[1].Lines != 40 || results[2].Lines != 30 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreBestLines(t *testing.T) {
	store := openTestStore(t)

	// No results yet
	best, err := store.BestLines("bag")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best of 0 for empty mode, got %d", best)
	}

	store.SaveResult(Result{Mode: "bag", Lines: 10, Pieces: 30, EndState: "top_out"})
	store.SaveResult(Result{Mode: "bag", Lines: 30, Pieces: 80, EndState: "top_out"})
	store.SaveResult(Result{Mode: "history", Lines: 50, Pieces: 130, EndState: "top_out"})

	best, err = store.BestLines("bag")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("Expected best of 30, got %d", best)
	}

	best, err = store.BestLines("")
	if err != nil {
		t.Fatalf("BestLines() failed: %v", err)
	}
	if best != 50 {
		t.Errorf("Expected overall best of 50, got %d", best)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Mode: "bag", Lines: 10, Pieces: 25, EndState: "top_out"})
	store.SaveResult(Result{Mode: "bag", Lines: 20, Pieces: 55, EndState: "top_out"})
	store.SaveResult(Result{Mode: "history", Lines: 30, Pieces: 80, EndState: "top_out"})

	// Clear only bag results
	if err := store.ClearResults("bag"); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	bagResults, _ := store.TopResults("bag", 10)
	if len(bagResults) != 0 {
		t.Errorf("Expected 0 bag results after clear, got %d", len(bagResults))
	}

	// History should still have results
	historyResults, _ := store.TopResults("history", 10)
	if len(historyResults) != 1 {
		t.Errorf("History results should not be affected by clearing bag")
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 25; i++ {
		store.SaveResult(Result{Mode: "bag", Lines: i, Pieces: i * 3, EndState: "top_out"})
	}

	results, err := store.RecentResults(20)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("Expected 20 results, got %d", len(results))
	}

	// Most recent insert first
	if results[0].Lines != 24 {
		t.Errorf("Expected most recent result first, got lines=%d", results[0].Lines)
	}
}

func TestStoreStatsByMode(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Mode: "bag", Lines: 10, Pieces: 30, EndState: "top_out"})
	store.SaveResult(Result{Mode: "bag", Lines: 30, Pieces: 80, EndState: "top_out"})
	store.SaveResult(Result{Mode: "history", Lines: 5, Pieces: 15, EndState: "completed"})

	stats, err := store.StatsByMode()
	if err != nil {
		t.Fatalf("StatsByMode() failed: %v", err)
	}

	bag, ok := stats["bag"]
	if !ok {
		t.Fatal("Expected stats for bag mode")
	}
	if bag.Games != 2 || bag.BestLines != 30 || bag.TotalLines != 40 {
		t.Errorf("Unexpected bag stats: %+v", bag)
	}
	if stats["history"].Games != 1 {
		t.Errorf("Unexpected history stats: %+v", stats["history"])
	}
}
