/*
Package storage provides tests for the persistence layer.
*/
package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// TestSQLiteInit verifies database initialization and schema creation.
func TestSQLiteInit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store := NewSQLiteStoreAt(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	// Verify database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file not created")
	}
}

// TestSQLiteGetMissing verifies that a missing key is not an error.
func TestSQLiteGetMissing(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	value, err := store.Get("prefs/nobody")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil for missing key, got %q", value)
	}
}

// TestSQLiteSetGet verifies round-tripping a blob.
func TestSQLiteSetGet(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	blob := []byte(`{"viewedTools":["cursor"]}`)
	if err := store.Set("prefs/alice", blob); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get("prefs/alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("expected %q, got %q", blob, got)
	}
}

// TestSQLiteSetOverwrite verifies that Set replaces the previous value.
func TestSQLiteSetOverwrite(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("prefs/alice", []byte("one")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("prefs/alice", []byte("two")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get("prefs/alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("expected overwritten value, got %q", got)
	}
}

// TestSQLiteDelete verifies deletion, including of missing keys.
func TestSQLiteDelete(t *testing.T) {
	store := NewSQLiteStoreAt(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if err := store.Set("prefs/alice", []byte("one")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete("prefs/alice"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	value, err := store.Get("prefs/alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != nil {
		t.Errorf("expected nil after delete, got %q", value)
	}

	// Deleting a missing key must not fail
	if err := store.Delete("prefs/alice"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

// TestSQLiteDisabledStore verifies graceful degradation when disabled.
func TestSQLiteDisabledStore(t *testing.T) {
	store := &SQLiteStore{enabled: false}

	if err := store.Init(); err != nil {
		t.Errorf("Init on disabled store should not fail: %v", err)
	}
	if err := store.Set("k", []byte("v")); err != nil {
		t.Errorf("Set on disabled store should not fail: %v", err)
	}

	value, err := store.Get("k")
	if err != nil {
		t.Errorf("Get on disabled store should not fail: %v", err)
	}
	if value != nil {
		t.Errorf("disabled store should report keys as absent, got %q", value)
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close on disabled store should not fail: %v", err)
	}
}

// TestSQLitePersistsAcrossReopen verifies durability across connections.
func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := NewSQLiteStoreAt(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("prefs/alice", []byte("persisted")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStoreAt(dbPath)
	if err := reopened.Init(); err != nil {
		t.Fatalf("reopen Init failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("prefs/alice")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("expected value to survive reopen, got %q", got)
	}
}

// TestMemoryStore verifies the in-memory implementation.
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	value, err := store.Get("missing")
	if err != nil || value != nil {
		t.Errorf("expected (nil, nil) for missing key, got (%q, %v)", value, err)
	}

	if err := store.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("expected v, got %q", got)
	}

	// Mutating the returned slice must not affect stored state
	got[0] = 'x'
	again, _ := store.Get("k")
	if string(again) != "v" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}

	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	value, _ = store.Get("k")
	if value != nil {
		t.Errorf("expected nil after delete, got %q", value)
	}
}
