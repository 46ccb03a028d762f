package prefs

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/toolscout/toolscout/internal/storage"
)

func newTestStore() (*Store, *storage.MemoryStore) {
	backend := storage.NewMemoryStore()
	return NewStore(backend), backend
}

func TestGet_UnknownUserDefaults(t *testing.T) {
	store, _ := newTestStore()

	p := store.Get("nobody")

	if len(p.FavoriteCategories) != 0 || len(p.ViewedTools) != 0 ||
		len(p.RatedTools) != 0 || len(p.SearchHistory) != 0 {
		t.Errorf("expected empty defaults for unknown user, got %+v", p)
	}
}

func TestLoad_OutcomeDefault(t *testing.T) {
	store, _ := newTestStore()

	_, outcome := store.Load("nobody")
	if outcome != LoadedDefault {
		t.Errorf("expected LoadedDefault, got %v", outcome)
	}
}

func TestLoad_OutcomeStored(t *testing.T) {
	store, backend := newTestStore()

	blob, _ := json.Marshal(UserPreferences{
		FavoriteCategories: []string{"Development"},
	})
	if err := backend.Set("prefs/alice", blob); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	p, outcome := store.Load("alice")
	if outcome != LoadedStored {
		t.Errorf("expected LoadedStored, got %v", outcome)
	}
	if !p.HasFavoriteCategory("Development") {
		t.Errorf("expected stored favorite category, got %+v", p)
	}
}

func TestLoad_CorruptRecordFallsBackSilently(t *testing.T) {
	store, backend := newTestStore()

	if err := backend.Set("prefs/alice", []byte("{not json")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var hookUser string
	var hookErr error
	store.OnFallback(func(userID string, err error) {
		hookUser = userID
		hookErr = err
	})

	p, outcome := store.Load("alice")

	if outcome != LoadedFallback {
		t.Errorf("expected LoadedFallback, got %v", outcome)
	}
	if len(p.ViewedTools) != 0 || len(p.RatedTools) != 0 {
		t.Errorf("expected defaults after corrupt record, got %+v", p)
	}
	if hookUser != "alice" || hookErr == nil {
		t.Errorf("fallback hook not invoked: user=%q err=%v", hookUser, hookErr)
	}
}

func TestTrackView_MovesToFront(t *testing.T) {
	store, _ := newTestStore()

	for _, id := range []string{"a", "b", "c", "a"} {
		if err := store.TrackView("u", id); err != nil {
			t.Fatalf("TrackView failed: %v", err)
		}
	}

	p := store.Get("u")
	want := []string{"a", "c", "b"}
	if len(p.ViewedTools) != len(want) {
		t.Fatalf("expected %v, got %v", want, p.ViewedTools)
	}
	for i := range want {
		if p.ViewedTools[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], p.ViewedTools[i])
		}
	}
}

func TestTrackView_IdempotentOrdering(t *testing.T) {
	store, _ := newTestStore()

	if err := store.TrackView("u", "cursor"); err != nil {
		t.Fatalf("TrackView failed: %v", err)
	}
	if err := store.TrackView("u", "cursor"); err != nil {
		t.Fatalf("TrackView failed: %v", err)
	}

	p := store.Get("u")
	if len(p.ViewedTools) != 1 || p.ViewedTools[0] != "cursor" {
		t.Errorf("expected single front entry, got %v", p.ViewedTools)
	}
}

func TestTrackView_CapsAtFifty(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 60; i++ {
		if err := store.TrackView("u", fmt.Sprintf("tool-%d", i)); err != nil {
			t.Fatalf("TrackView failed: %v", err)
		}
	}

	p := store.Get("u")
	if len(p.ViewedTools) != 50 {
		t.Fatalf("expected 50 entries, got %d", len(p.ViewedTools))
	}
	// Most recent first; oldest (tool-0..tool-9) evicted
	if p.ViewedTools[0] != "tool-59" {
		t.Errorf("expected tool-59 at front, got %q", p.ViewedTools[0])
	}
	if p.ViewedTools[49] != "tool-10" {
		t.Errorf("expected tool-10 at back, got %q", p.ViewedTools[49])
	}
}

func TestTrackSearch_CapsAtTwenty(t *testing.T) {
	store, _ := newTestStore()

	for i := 0; i < 25; i++ {
		if err := store.TrackSearch("u", fmt.Sprintf("query %d", i)); err != nil {
			t.Fatalf("TrackSearch failed: %v", err)
		}
	}

	p := store.Get("u")
	if len(p.SearchHistory) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(p.SearchHistory))
	}
	if p.SearchHistory[0] != "query 24" {
		t.Errorf("expected most recent query first, got %q", p.SearchHistory[0])
	}
}

func TestTrackSearch_CaseSensitiveDedupe(t *testing.T) {
	store, _ := newTestStore()

	store.TrackSearch("u", "Chatbot")
	store.TrackSearch("u", "chatbot")

	p := store.Get("u")
	if len(p.SearchHistory) != 2 {
		t.Errorf("expected case-sensitive dedupe to keep both, got %v", p.SearchHistory)
	}
}

func TestTrackRating_OverwritesInPlace(t *testing.T) {
	store, _ := newTestStore()

	if err := store.TrackRating("u", "cursor", 5); err != nil {
		t.Fatalf("TrackRating failed: %v", err)
	}

	p := store.Get("u")
	if len(p.RatedTools) != 1 {
		t.Fatalf("expected one rating, got %d", len(p.RatedTools))
	}
	if r, ok := p.Rating("cursor"); !ok || r != 5 {
		t.Errorf("expected rating 5, got %v (found=%v)", r, ok)
	}

	if err := store.TrackRating("u", "cursor", 3); err != nil {
		t.Fatalf("TrackRating failed: %v", err)
	}

	p = store.Get("u")
	if len(p.RatedTools) != 1 {
		t.Fatalf("re-rating added a second entry: %v", p.RatedTools)
	}
	if r, _ := p.Rating("cursor"); r != 3 {
		t.Errorf("expected rating updated to 3, got %v", r)
	}
}

func TestMutations_PersistImmediately(t *testing.T) {
	store, backend := newTestStore()

	if err := store.TrackView("u", "cursor"); err != nil {
		t.Fatalf("TrackView failed: %v", err)
	}

	blob, err := backend.Get("prefs/u")
	if err != nil {
		t.Fatalf("backend Get failed: %v", err)
	}
	if blob == nil {
		t.Fatal("expected record persisted before TrackView returned")
	}

	var stored UserPreferences
	if err := json.Unmarshal(blob, &stored); err != nil {
		t.Fatalf("persisted blob not valid JSON: %v", err)
	}
	if len(stored.ViewedTools) != 1 || stored.ViewedTools[0] != "cursor" {
		t.Errorf("persisted record out of date: %+v", stored)
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	store, _ := newTestStore()

	store.TrackView("u", "cursor")

	favorites := []string{"Development", "Productivity"}
	if err := store.Update("u", Partial{FavoriteCategories: &favorites}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	p := store.Get("u")
	if len(p.FavoriteCategories) != 2 {
		t.Errorf("expected favorites replaced, got %v", p.FavoriteCategories)
	}
	// Untouched fields survive the merge
	if len(p.ViewedTools) != 1 || p.ViewedTools[0] != "cursor" {
		t.Errorf("expected viewed tools untouched, got %v", p.ViewedTools)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore()

	store.TrackView("u", "cursor")

	p := store.Get("u")
	p.ViewedTools[0] = "mutated"

	again := store.Get("u")
	if again.ViewedTools[0] != "cursor" {
		t.Errorf("cached state mutated through returned copy: %v", again.ViewedTools)
	}
}

func TestStore_SurvivesBackendReload(t *testing.T) {
	backend := storage.NewMemoryStore()

	first := NewStore(backend)
	first.TrackRating("u", "cursor", 4.5)
	first.TrackView("u", "cursor")

	// A second store over the same backend sees the persisted state.
	second := NewStore(backend)
	p, outcome := second.Load("u")
	if outcome != LoadedStored {
		t.Errorf("expected LoadedStored, got %v", outcome)
	}
	if r, ok := p.Rating("cursor"); !ok || r != 4.5 {
		t.Errorf("expected persisted rating, got %v (found=%v)", r, ok)
	}
}
