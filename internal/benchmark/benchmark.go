/*
Package benchmark measures ranking latency over the loaded catalog.

It exercises each ranking surface (recommend, similar, trending, category,
search) against a synthetic preference profile and reports per-operation
timings. Useful for judging how a larger or user-supplied catalog behaves
before wiring it into a UI.
*/
package benchmark

import (
	"fmt"
	"time"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/prefs"
	"github.com/toolscout/toolscout/internal/recommend"
	"github.com/toolscout/toolscout/internal/search"
	"github.com/toolscout/toolscout/internal/storage"
)

// benchUser is the synthetic profile user ID.
const benchUser = "benchmark-user"

// DefaultIterations is used when the caller passes a non-positive count.
const DefaultIterations = 100

// OpTiming holds the measured timing for one operation.
type OpTiming struct {
	// Operation names the ranking surface measured.
	Operation string `json:"operation"`

	// Iterations is the number of invocations timed.
	Iterations int `json:"iterations"`

	// TotalMillis is the wall time across all iterations.
	TotalMillis float64 `json:"totalMillis"`

	// AvgMicros is the average per-invocation time.
	AvgMicros float64 `json:"avgMicros"`
}

// Result contains timings for every ranking surface.
type Result struct {
	CatalogSize int        `json:"catalogSize"`
	Timings     []OpTiming `json:"timings"`
}

// Run benchmarks every ranking surface over the given catalog.
func Run(c *catalog.Catalog, iterations int) (*Result, error) {
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	store := prefs.NewStore(storage.NewMemoryStore())
	if err := seedProfile(store, c); err != nil {
		return nil, fmt.Errorf("failed to seed benchmark profile: %w", err)
	}

	engine := recommend.NewEngine(c, store)
	selector := recommend.NewSelector(c)

	indexer, err := search.NewIndexer()
	if err != nil {
		return nil, fmt.Errorf("failed to create search index: %w", err)
	}
	defer indexer.Close()
	if err := indexer.IndexCatalog(c); err != nil {
		return nil, fmt.Errorf("failed to index catalog: %w", err)
	}

	referenceID := ""
	referenceCategory := ""
	if c.Len() > 0 {
		referenceID = c.Tools()[0].ID
		referenceCategory = c.Tools()[0].Category
	}

	result := &Result{CatalogSize: c.Len()}
	result.Timings = append(result.Timings,
		timeOp("recommend", iterations, func() {
			engine.Recommend(benchUser, 6)
		}),
		timeOp("similar", iterations, func() {
			engine.Similar(referenceID, 4)
		}),
		timeOp("trending", iterations, func() {
			selector.Trending(6)
		}),
		timeOp("category", iterations, func() {
			selector.ByCategory(referenceCategory, 6)
		}),
		timeOp("search", iterations, func() {
			indexer.Search("assistant", 10)
		}),
	)

	return result, nil
}

// seedProfile gives the synthetic user enough history to trigger every
// scoring signal: views, high ratings, and searches.
func seedProfile(store *prefs.Store, c *catalog.Catalog) error {
	tools := c.Tools()
	for i, tool := range tools {
		if i >= 5 {
			break
		}
		if err := store.TrackView(benchUser, tool.ID); err != nil {
			return err
		}
	}
	if len(tools) > 0 {
		if err := store.TrackRating(benchUser, tools[0].ID, 5); err != nil {
			return err
		}
	}
	for _, q := range []string{"assistant", "image", "code"} {
		if err := store.TrackSearch(benchUser, q); err != nil {
			return err
		}
	}
	return nil
}

// timeOp measures fn over n iterations.
func timeOp(name string, n int, fn func()) OpTiming {
	start := time.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	elapsed := time.Since(start)

	return OpTiming{
		Operation:   name,
		Iterations:  n,
		TotalMillis: float64(elapsed.Microseconds()) / 1000.0,
		AvgMicros:   float64(elapsed.Microseconds()) / float64(n),
	}
}
