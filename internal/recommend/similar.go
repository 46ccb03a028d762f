package recommend

import (
	"math"
	"sort"

	"github.com/toolscout/toolscout/internal/catalog"
)

// Similar returns up to limit tools most similar to toolID, best first.
//
// Similarity is attribute-based: shared category, shared tags, same pricing
// tier, rating proximity, and popularity. The reference tool is never part
// of the result; an unknown toolID yields an empty result, not an error.
func (e *Engine) Similar(toolID string, limit int) []catalog.Tool {
	if limit <= 0 {
		return []catalog.Tool{}
	}

	reference, ok := e.catalog.ByID(toolID)
	if !ok {
		return []catalog.Tool{}
	}

	refTags := make(map[string]bool, len(reference.Tags))
	for _, tag := range reference.Tags {
		refTags[tag] = true
	}

	type candidate struct {
		tool  catalog.Tool
		score float64
	}

	candidates := make([]candidate, 0, e.catalog.Len()-1)
	for _, tool := range e.catalog.Tools() {
		if tool.ID == reference.ID {
			continue
		}
		candidates = append(candidates, candidate{
			tool:  tool,
			score: e.similarityScore(reference, tool, refTags),
		})
	}

	// Stable sort keeps catalog order as the tie-break.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	tools := make([]catalog.Tool, len(candidates))
	for i, c := range candidates {
		tools[i] = c.tool
	}
	return tools
}

// similarityScore computes the attribute closeness of tool to reference.
func (e *Engine) similarityScore(reference, tool catalog.Tool, refTags map[string]bool) float64 {
	sw := e.simWeights

	var score float64

	if tool.Category == reference.Category {
		score += sw.SameCategory
	}

	for _, tag := range tool.Tags {
		if refTags[tag] {
			score += sw.SharedTag
		}
	}

	if tool.Pricing == reference.Pricing {
		score += sw.SamePricing
	}

	// Rating-proximity bands are mutually exclusive; the tighter band wins.
	diff := math.Abs(tool.Rating - reference.Rating)
	switch {
	case diff <= sw.TightBand:
		score += sw.RatingBandTight
	case diff <= sw.LooseBand:
		score += sw.RatingBandLoose
	}

	if tool.Popular {
		score += sw.Popular
	}

	return score
}
