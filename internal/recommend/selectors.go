package recommend

import (
	"math"
	"sort"

	"github.com/toolscout/toolscout/internal/catalog"
)

const (
	// trendingMinRating qualifies non-popular tools for the trending list.
	trendingMinRating = 4.5

	// categoryRatingEpsilon is the rating difference below which two tools
	// in a category listing count as tied and fall back to review counts.
	categoryRatingEpsilon = 0.1
)

// Selector provides context-free rankings for anonymous visitors, backed
// only by the catalog.
type Selector struct {
	catalog *catalog.Catalog
}

// NewSelector creates a selector over the given catalog.
func NewSelector(c *catalog.Catalog) *Selector {
	return &Selector{catalog: c}
}

// Trending returns up to limit tools that are flagged popular or rated at
// least 4.5, ordered by review count descending.
func (s *Selector) Trending(limit int) []catalog.Tool {
	if limit <= 0 {
		return []catalog.Tool{}
	}

	var tools []catalog.Tool
	for _, t := range s.catalog.Tools() {
		if t.Popular || t.Rating >= trendingMinRating {
			tools = append(tools, t)
		}
	}

	sort.SliceStable(tools, func(i, j int) bool {
		return tools[i].Reviews > tools[j].Reviews
	})

	if len(tools) > limit {
		tools = tools[:limit]
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}
	return tools
}

// ByCategory returns up to limit tools in a category, ordered by rating
// descending; ratings within categoryRatingEpsilon of each other count as
// tied and are ordered by review count descending.
func (s *Selector) ByCategory(category string, limit int) []catalog.Tool {
	if limit <= 0 {
		return []catalog.Tool{}
	}

	tools := s.catalog.ByCategory(category)

	sort.SliceStable(tools, func(i, j int) bool {
		if math.Abs(tools[i].Rating-tools[j].Rating) > categoryRatingEpsilon {
			return tools[i].Rating > tools[j].Rating
		}
		return tools[i].Reviews > tools[j].Reviews
	})

	if len(tools) > limit {
		tools = tools[:limit]
	}
	if tools == nil {
		tools = []catalog.Tool{}
	}
	return tools
}
