package search

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/toolscout/toolscout/internal/catalog"
)

// defaultLimit is used when a caller passes a non-positive limit.
const defaultLimit = 10

// Indexer manages the search index over the catalog.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
}

// NewIndexer creates a search indexer with an in-memory Bleve index.
// The catalog is static for the life of the process, so the index is
// rebuilt at startup rather than persisted.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// buildIndexMapping creates the Bleve index mapping for tool documents.
func buildIndexMapping() mapping.IndexMapping {
	toolMapping := bleve.NewDocumentMapping()

	// Name, description, category, and tags are searchable text
	toolMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("category", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("tags", bleve.NewTextFieldMapping())

	// Pricing: stored for retrieval, excluded from the catch-all field so a
	// search for "free" doesn't match every free tool's pricing label.
	pricingMapping := bleve.NewTextFieldMapping()
	pricingMapping.IncludeInAll = false
	toolMapping.AddFieldMappingsAt("pricing", pricingMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", toolMapping)

	return indexMapping
}

// IndexCatalog indexes every tool in the catalog.
func (i *Indexer) IndexCatalog(c *catalog.Catalog) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, tool := range c.Tools() {
		doc := map[string]interface{}{
			"name":        tool.Name,
			"description": tool.Description,
			"category":    tool.Category,
			"tags":        strings.Join(tool.Tags, " "),
			"pricing":     tool.Pricing,
		}

		if err := batch.Index(tool.ID, doc); err != nil {
			log.Printf("Warning: failed to index tool %s: %v", tool.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index tools: %w", err)
	}

	return nil
}

// Search performs BM25 keyword search over the indexed catalog.
func (i *Indexer) Search(query string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = defaultLimit
	}

	searchQuery := bleve.NewMatchQuery(query)
	searchRequest := bleve.NewSearchRequestOptions(searchQuery, limit, 0, false)
	searchRequest.Fields = []string{"name", "description", "category"}

	results, err := i.bleveIndex.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	searchResults := make([]Result, 0, len(results.Hits))
	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		category, _ := hit.Fields["category"].(string)

		searchResults = append(searchResults, Result{
			ToolID:      hit.ID,
			Name:        name,
			Description: description,
			Category:    category,
			Score:       hit.Score,
		})
	}

	return searchResults, nil
}

// Count returns the total number of indexed tools.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
