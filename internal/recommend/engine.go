/*
Package recommend implements personalized tool ranking for the directory.

Three rankers live here:

  - Engine.Recommend scores every catalog tool for a user from their tracked
    preferences (favorite categories, ratings, searches, recent views) and
    returns the top N with human-readable reasons.
  - Engine.Similar ranks tools by attribute closeness to a reference tool,
    independent of any user.
  - Selector provides the anonymous fallbacks: trending and per-category
    rankings.

Scoring is a deterministic weighted heuristic, not a model. All rankers are
pure reads over the catalog and preference snapshot; ties are always broken
by catalog order (stable sort), never randomly.
*/
package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/prefs"
)

// Reason strings shown to users, ordered by contribution priority.
const (
	reasonRatedSimilar = "Similar to tools you rated highly"
	reasonSearchMatch  = "Matches your search interests"
	reasonTrending     = "Trending now"
	reasonVerified     = "Verified tool"
	reasonFallback     = "Highly rated"
)

// Scored pairs a tool with its relevance score and the reasons behind it.
// Scores are only meaningful relative to each other within one invocation.
type Scored struct {
	Tool    catalog.Tool `json:"tool"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// Engine computes personalized recommendations over a catalog and a
// preference store. It holds no per-request state and never mutates either.
type Engine struct {
	catalog    *catalog.Catalog
	prefs      *prefs.Store
	weights    Weights
	simWeights SimilarityWeights
}

// NewEngine creates an engine with the default scoring policy.
func NewEngine(c *catalog.Catalog, p *prefs.Store) *Engine {
	return NewEngineWithWeights(c, p, DefaultWeights(), DefaultSimilarityWeights())
}

// NewEngineWithWeights creates an engine with an explicit scoring policy.
func NewEngineWithWeights(c *catalog.Catalog, p *prefs.Store, w Weights, sw SimilarityWeights) *Engine {
	return &Engine{
		catalog:    c,
		prefs:      p,
		weights:    w,
		simWeights: sw,
	}
}

// Recommend returns up to limit tools for userID, best first.
//
// Tools among the user's most recently viewed (RecentViewWindow entries) are
// excluded. Remaining tools are scored as the sum of base quality
// (rating*RatingFactor + ln(reviews+1)*ReviewsFactor) and the triggered
// preference bonuses; each bonus except the pricing bias appends a reason.
// A user with no history gets base-quality ordering and the fallback reason.
func (e *Engine) Recommend(userID string, limit int) []Scored {
	if limit <= 0 {
		return []Scored{}
	}

	p := e.prefs.Get(userID)

	recent := make(map[string]bool)
	for _, id := range p.RecentlyViewed(e.weights.RecentViewWindow) {
		recent[id] = true
	}

	likedCategories := e.likedCategories(p)

	queries := make([]string, 0, len(p.SearchHistory))
	for _, q := range p.SearchHistory {
		queries = append(queries, strings.ToLower(q))
	}

	scores := make([]Scored, 0, e.catalog.Len())
	for _, tool := range e.catalog.Tools() {
		if recent[tool.ID] {
			continue
		}
		scores = append(scores, e.scoreTool(tool, p, likedCategories, queries))
	}

	// Stable sort keeps catalog order as the tie-break.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if len(scores) > limit {
		scores = scores[:limit]
	}
	return scores
}

// scoreTool computes one tool's score and reasons for a preference snapshot.
func (e *Engine) scoreTool(tool catalog.Tool, p prefs.UserPreferences, likedCategories map[string]bool, queries []string) Scored {
	w := e.weights

	// Base quality, no reason string.
	score := tool.Rating*w.RatingFactor + math.Log(float64(tool.Reviews)+1)*w.ReviewsFactor

	var reasons []string

	if p.HasFavoriteCategory(tool.Category) {
		score += w.FavoriteCategory
		reasons = append(reasons, fmt.Sprintf("Popular in %s", tool.Category))
	}

	if likedCategories[tool.Category] {
		score += w.RatedCategory
		reasons = append(reasons, reasonRatedSimilar)
	}

	if matchesAnyQuery(tool, queries) {
		score += w.SearchMatch
		reasons = append(reasons, reasonSearchMatch)
	}

	if tool.Popular {
		score += w.Trending
		reasons = append(reasons, reasonTrending)
	}

	if tool.Verified {
		score += w.Verified
		reasons = append(reasons, reasonVerified)
	}

	// Silent bias toward free tiers.
	if tool.Pricing == catalog.PricingFree || tool.Pricing == catalog.PricingFreemium {
		score += w.FreePricing
	}

	if len(reasons) == 0 {
		reasons = append(reasons, reasonFallback)
	}

	return Scored{Tool: tool, Score: score, Reasons: reasons}
}

// likedCategories collects categories of tools the user rated at or above
// the high-rating threshold. Ratings for tools no longer in the catalog are
// ignored.
func (e *Engine) likedCategories(p prefs.UserPreferences) map[string]bool {
	liked := make(map[string]bool)
	for _, r := range p.RatedTools {
		if r.Rating < e.weights.HighRatingThreshold {
			continue
		}
		if tool, ok := e.catalog.ByID(r.ToolID); ok {
			liked[tool.Category] = true
		}
	}
	return liked
}

// matchesAnyQuery reports whether any past query appears (case-insensitive
// substring) in the tool's name, description, or tags.
func matchesAnyQuery(tool catalog.Tool, loweredQueries []string) bool {
	if len(loweredQueries) == 0 {
		return false
	}

	name := strings.ToLower(tool.Name)
	desc := strings.ToLower(tool.Description)

	for _, q := range loweredQueries {
		if strings.Contains(name, q) || strings.Contains(desc, q) {
			return true
		}
		for _, tag := range tool.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
	}
	return false
}
