package prefs

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/toolscout/toolscout/internal/storage"
)

// LoadOutcome reports where a user's preference record came from.
type LoadOutcome int

const (
	// LoadedDefault means no stored record existed; defaults were used.
	LoadedDefault LoadOutcome = iota

	// LoadedStored means a stored record was read and parsed.
	LoadedStored

	// LoadedFallback means a stored record existed but could not be read or
	// parsed, and defaults were silently substituted.
	LoadedFallback
)

// String returns a human-readable outcome name.
func (o LoadOutcome) String() string {
	switch o {
	case LoadedDefault:
		return "default"
	case LoadedStored:
		return "stored"
	case LoadedFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Store owns all per-user preference state.
//
// It keeps a per-user in-memory cache in front of the key-value backend and
// persists the full updated record synchronously on every mutation. Unknown
// users are initialized to empty defaults on first access; a corrupt stored
// record is replaced by defaults without surfacing an error (the fallback
// hook makes this observable for diagnostics).
type Store struct {
	backend storage.Store

	mu    sync.Mutex
	cache map[string]*cacheEntry

	// onFallback, if set, is invoked whenever a corrupt or unreadable stored
	// record is silently replaced with defaults.
	onFallback func(userID string, err error)
}

// cacheEntry pairs cached preferences with how they were loaded.
type cacheEntry struct {
	prefs   UserPreferences
	outcome LoadOutcome
}

// NewStore creates a preference store over the given backend.
func NewStore(backend storage.Store) *Store {
	return &Store{
		backend: backend,
		cache:   make(map[string]*cacheEntry),
	}
}

// OnFallback registers a diagnostic hook invoked when a corrupt stored record
// is replaced with defaults. The external silent-fallback behavior is
// unchanged; the hook only observes it.
func (s *Store) OnFallback(fn func(userID string, err error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFallback = fn
}

// prefKey returns the backend key for a user's preference record.
func prefKey(userID string) string {
	return "prefs/" + userID
}

// Get returns the current preferences for userID, initializing defaults for
// unknown users. Never fails.
func (s *Store) Get(userID string) UserPreferences {
	p, _ := s.Load(userID)
	return p
}

// Load returns the current preferences for userID along with where they came
// from (stored record, fresh defaults, or corrupt-record fallback).
func (s *Store) Load(userID string) (UserPreferences, LoadOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(userID)
	return entry.prefs.clone(), entry.outcome
}

// entry returns the cached record for userID, loading it from the backend on
// first access. Caller must hold s.mu.
func (s *Store) entry(userID string) *cacheEntry {
	if entry, ok := s.cache[userID]; ok {
		return entry
	}

	entry := &cacheEntry{prefs: DefaultPreferences(), outcome: LoadedDefault}

	blob, err := s.backend.Get(prefKey(userID))
	switch {
	case err != nil:
		entry.outcome = LoadedFallback
		s.fallback(userID, err)
	case blob != nil:
		var stored UserPreferences
		if err := json.Unmarshal(blob, &stored); err != nil {
			entry.outcome = LoadedFallback
			s.fallback(userID, fmt.Errorf("corrupt preference record: %w", err))
		} else {
			stored.normalize()
			entry.prefs = stored
			entry.outcome = LoadedStored
		}
	}

	s.cache[userID] = entry
	return entry
}

// fallback invokes the diagnostic hook. Caller must hold s.mu.
func (s *Store) fallback(userID string, err error) {
	if s.onFallback != nil {
		s.onFallback(userID, err)
	}
}

// persist writes a user's full record to the backend. Caller must hold s.mu.
func (s *Store) persist(userID string, entry *cacheEntry) error {
	blob, err := json.Marshal(entry.prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences for %s: %w", userID, err)
	}
	if err := s.backend.Set(prefKey(userID), blob); err != nil {
		return fmt.Errorf("failed to persist preferences for %s: %w", userID, err)
	}
	return nil
}

// TrackView records a tool view: the tool moves to the front of the viewed
// list (deduplicated), truncated to the 50 most recent.
func (s *Store) TrackView(userID, toolID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(userID)
	entry.prefs.ViewedTools = moveToFront(entry.prefs.ViewedTools, toolID, maxViewedTools)
	return s.persist(userID, entry)
}

// TrackRating records the user's rating of a tool, overwriting any prior
// rating for the same tool in place. The range is not validated here.
func (s *Store) TrackRating(userID, toolID string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(userID)

	updated := false
	for i := range entry.prefs.RatedTools {
		if entry.prefs.RatedTools[i].ToolID == toolID {
			entry.prefs.RatedTools[i].Rating = rating
			updated = true
			break
		}
	}
	if !updated {
		entry.prefs.RatedTools = append(entry.prefs.RatedTools, ToolRating{ToolID: toolID, Rating: rating})
	}

	return s.persist(userID, entry)
}

// TrackSearch records a search query: the query moves to the front of the
// history (exact match dedupe, case-sensitive), truncated to the 20 most
// recent.
func (s *Store) TrackSearch(userID, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(userID)
	entry.prefs.SearchHistory = moveToFront(entry.prefs.SearchHistory, query, maxSearchHistory)
	return s.persist(userID, entry)
}

// Update merges a partial set of fields into the user's preferences and
// persists the result. Nil fields are left untouched.
func (s *Store) Update(userID string, partial Partial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.entry(userID)
	if partial.FavoriteCategories != nil {
		entry.prefs.FavoriteCategories = append([]string{}, *partial.FavoriteCategories...)
	}
	if partial.ViewedTools != nil {
		entry.prefs.ViewedTools = append([]string{}, *partial.ViewedTools...)
	}
	if partial.RatedTools != nil {
		entry.prefs.RatedTools = append([]ToolRating{}, *partial.RatedTools...)
	}
	if partial.SearchHistory != nil {
		entry.prefs.SearchHistory = append([]string{}, *partial.SearchHistory...)
	}

	return s.persist(userID, entry)
}
