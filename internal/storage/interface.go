/*
Package storage implements the persistence layer behind the preference store.

This package provides a small key-value contract (get/set raw blobs by key)
with a SQLite-backed implementation for durable storage and an in-memory
implementation for tests and ephemeral runs. The SQLite store degrades
gracefully: if the database cannot be opened, operations become no-ops and
reads report every key as absent.

The database is stored at ~/.toolscout/prefs.db and uses modernc.org/sqlite
(a pure Go, CGo-free implementation).
*/
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store defines the key-value persistence contract.
type Store interface {
	// Init initializes the backing store and runs migrations.
	Init() error

	// Get retrieves the blob stored under key.
	// A missing key returns (nil, nil), not an error.
	Get(key string) ([]byte, error)

	// Set stores a blob under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases the underlying resources.
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewSQLiteStore creates a SQLite store at the default location.
//
// The database is created at ~/.toolscout/prefs.db. If the directory doesn't
// exist, it will be created. If the database cannot be opened, the store is
// disabled but operations will not fail.
func NewSQLiteStore() *SQLiteStore {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteStore{enabled: false}
	}

	return NewSQLiteStoreAt(filepath.Join(home, ".toolscout", "prefs.db"))
}

// NewSQLiteStoreAt creates a SQLite store at a specific path.
func NewSQLiteStoreAt(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath:  dbPath,
		enabled: true,
	}
}

// Init initializes the database and runs migrations.
//
// If initialization fails, the store is disabled and subsequent operations
// become no-ops (graceful degradation).
func (s *SQLiteStore) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		// Ensure directory exists
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			return
		}

		// Open database
		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		// Test connection
		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		// Run migrations
		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}
