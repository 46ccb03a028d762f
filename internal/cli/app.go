/*
Package cli implements the toolscout command-line interface.

Each command wires the same stack: configuration, the catalog (embedded or
user-supplied), the SQLite-backed preference store, and the recommendation
engine. The CLI stands in for the directory UI as the consumer of the
library surface; every personalized command records its interaction the way
the UI would (views, ratings, searches).
*/
package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/config"
	"github.com/toolscout/toolscout/internal/prefs"
	"github.com/toolscout/toolscout/internal/recommend"
	"github.com/toolscout/toolscout/internal/storage"
)

// app bundles the wired stack shared by all commands.
type app struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	backend  *storage.SQLiteStore
	prefs    *prefs.Store
	engine   *recommend.Engine
	selector *recommend.Selector
}

// newApp loads configuration and wires the full stack.
//
// Preference storage degrades gracefully: if the database cannot be opened,
// commands still run, but nothing is persisted.
func newApp() (*app, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cat *catalog.Catalog
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadFile(cfg.CatalogPath)
	} else {
		cat, err = catalog.Embedded()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}

	backend := storage.NewSQLiteStoreAt(dbPath)
	if err := backend.Init(); err != nil {
		log.Printf("Warning: preference storage unavailable, history will not persist: %v", err)
	}

	store := prefs.NewStore(backend)
	store.OnFallback(func(userID string, err error) {
		log.Printf("Warning: preferences for %s could not be read, using defaults: %v", userID, err)
	})

	return &app{
		cfg:      cfg,
		catalog:  cat,
		backend:  backend,
		prefs:    store,
		engine:   recommend.NewEngineWithWeights(cat, store, cfg.EngineWeights(), cfg.SimilarityWeights()),
		selector: recommend.NewSelector(cat),
	}, nil
}

// close releases the storage backend.
func (a *app) close() {
	if err := a.backend.Close(); err != nil {
		log.Printf("Warning: failed to close preference storage: %v", err)
	}
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printToolLine renders one catalog tool as a listing row.
func printToolLine(rank int, tool catalog.Tool) {
	badges := ""
	if tool.Popular {
		badges += " [popular]"
	}
	if tool.Verified {
		badges += " [verified]"
	}
	fmt.Printf("%2d. %s (%s) - %.1f★ · %d reviews · %s%s\n",
		rank, tool.Name, tool.Category, tool.Rating, tool.Reviews, tool.Pricing, badges)
}
