package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenEmpty(t *testing.T) {
	store := openTestStore(t)

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected empty leaderboard, got %d results", n)
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best 0 on empty leaderboard, got %d", best)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveResult("brave-otter", 100, 1, 1); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	n, err := b.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected second store to be empty, got %d results", n)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveResult("brave-otter", 300, 1, 2)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := uuid.Parse(saved.ID); err != nil {
		t.Errorf("Expected UUID id, got %q", saved.ID)
	}

	for _, score := range []int{100, 1200} {
		if _, err := store.SaveResult("brave-otter", score, score/1000+1, score/100); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	want := []int{1200, 300, 100}
	for i, w := range want {
		if results[i].Score != w {
			t.Errorf("results[%d].Score = %d, want %d", i, results[i].Score, w)
		}
	}

	if results[1].ID != saved.ID || results[1].Lines != 2 || results[1].Session != "brave-otter" {
		t.Errorf("Round-tripped result mismatch: %+v vs %+v", results[1], saved)
	}
	if results[0].Level != 2 {
		t.Errorf("Expected level 2 for 1200 points, got %d", results[0].Level)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 results
	for i := 0; i < 5; i++ {
		store.SaveResult("s", (i+1)*100, 1, i+1)
	}

	// Request only top 3
	results, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 500, 400, 300 (top 3)
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreTiesGoToEarlierGame(t *testing.T) {
	store := openTestStore(t)
	base := time.Unix(1700000000, 0)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	first, _ := store.SaveResult("first", 500, 1, 5)
	store.SaveResult("second", 500, 1, 5)

	results, err := store.TopResults(2)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if results[0].ID != first.ID {
		t.Errorf("Expected earlier game first, got %q", results[0].Session)
	}
	if !results[0].CreatedAt.Equal(base.Add(time.Second)) {
		t.Errorf("CreatedAt = %v, want %v", results[0].CreatedAt, base.Add(time.Second))
	}
}

func TestStoreBestAndStats(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score int
		lines int
	}{
		{100, 1},
		{800, 4},
		{300, 2},
	}
	for _, tt := range tests {
		if _, err := store.SaveResult("s", tt.score, 1, tt.lines); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	best, err := store.Best()
	if err != nil {
		t.Fatalf("Best() failed: %v", err)
	}
	if best != 800 {
		t.Errorf("Expected best 800, got %d", best)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 3 || stats.Best != 800 || stats.TotalLines != 7 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore < 399 || stats.AvgScore > 401 {
		t.Errorf("Expected average 400, got %f", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreClosedReturnsError(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := store.SaveResult("s", 1, 1, 0); err == nil {
		t.Error("Expected error saving to a closed store")
	}
}
