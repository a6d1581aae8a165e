package storage

import (
	"sync"
	"testing"
	"time"
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

func TestStoreOpenClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRound(RoundResult{SessionID: "s1", Level: "basic", Answer: "go", Won: true}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	sum, err := b.TotalSummary()
	if err != nil {
		t.Fatalf("TotalSummary() failed: %v", err)
	}
	if sum.Played != 0 {
		t.Errorf("second in-memory store saw %d rounds from the first", sum.Played)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRound(RoundResult{
		SessionID:    "s1",
		Level:        "basic",
		Answer:       "python",
		Won:          true,
		LivesLeft:    4,
		WrongGuesses: 1,
		Timeouts:     1,
		Duration:     1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if id == "" {
		t.Error("SaveRound() should assign an ID")
	}

	if _, err := store.SaveRound(RoundResult{SessionID: "s1", Level: "intermediate", Answer: "open ai"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundResult{SessionID: "s2", Level: "basic", Answer: "pytest"}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := store.RecentRounds("s1", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("Expected 2 rounds for s1, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Answer != "open ai" {
		t.Errorf("Expected newest round first, got %q", rounds[0].Answer)
	}
	first := rounds[1]
	if first.ID != id || !first.Won || first.LivesLeft != 4 || first.WrongGuesses != 1 || first.Timeouts != 1 {
		t.Errorf("Round not stored faithfully: %+v", first)
	}
	if first.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", first.Duration)
	}
}

func TestStoreRecentRoundsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveRound(RoundResult{SessionID: "s", Level: "basic", Answer: "go"})
	}

	rounds, err := store.RecentRounds("s", 3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Errorf("Expected 3 rounds with limit, got %d", len(rounds))
	}
}

func TestStoreRejectsEmptySession(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRound(RoundResult{Answer: "go"}); err == nil {
		t.Error("SaveRound() without session should fail")
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	// s1: W W L W W W L W
	outcomes := []bool{true, true, false, true, true, true, false, true}
	for _, won := range outcomes {
		store.SaveRound(RoundResult{SessionID: "s1", Level: "basic", Answer: "go", Won: won})
	}
	store.SaveRound(RoundResult{SessionID: "s2", Level: "basic", Answer: "go", Won: false})

	sum, err := store.SessionSummary("s1")
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}
	want := Summary{Played: 8, Won: 6, Lost: 2, Streak: 1, BestStreak: 3}
	if sum != want {
		t.Errorf("SessionSummary() = %+v, want %+v", sum, want)
	}

	empty, err := store.SessionSummary("nobody")
	if err != nil {
		t.Fatalf("SessionSummary() failed: %v", err)
	}
	if empty != (Summary{}) {
		t.Errorf("Expected empty summary, got %+v", empty)
	}

	total, err := store.TotalSummary()
	if err != nil {
		t.Fatalf("TotalSummary() failed: %v", err)
	}
	if total.Played != 9 || total.Won != 6 || total.Lost != 3 || total.Streak != 0 {
		t.Errorf("TotalSummary() = %+v", total)
	}
}

func TestStoreConcurrentSessions(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	sessions := []string{NewSessionID(), NewSessionID(), NewSessionID()}
	for _, sid := range sessions {
		wg.Add(1)
		go func(sid string) {
			defer wg.Done()
			for i := 0; i < 10; i++ {
				if _, err := store.SaveRound(RoundResult{SessionID: sid, Level: "basic", Answer: "go", Won: true}); err != nil {
					t.Errorf("SaveRound() failed: %v", err)
				}
			}
		}(sid)
	}
	wg.Wait()

	total, err := store.TotalSummary()
	if err != nil {
		t.Fatalf("TotalSummary() failed: %v", err)
	}
	if total.Played != 30 {
		t.Errorf("Expected 30 rounds, got %d", total.Played)
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	if a == "" || a == b {
		t.Errorf("NewSessionID() returned %q and %q", a, b)
	}
}
