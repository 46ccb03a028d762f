/*
Package search implements full-text search over the tool catalog.

This package provides BM25 keyword search via a Bleve index built in memory
from the catalog at startup. Search results carry the tool ID so callers can
resolve the full catalog record; the directory UI records each query into
the user's search history, which in turn feeds the recommendation engine's
search-relevance signal.
*/
package search

// Result represents a single search hit with its relevance score.
type Result struct {
	ToolID      string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
}
