/*
Package prefs implements per-user preference tracking for personalization.

A user's preferences are their interaction history with the directory:
tools viewed, tools rated, searches run, and explicitly chosen favorite
categories. The recommend package reads this state to score tools; nothing
in this package computes scores itself.

Preferences persist as one JSON blob per user in the storage layer, written
synchronously on every mutation.
*/
package prefs

const (
	// maxViewedTools caps the viewed-tools history. Oldest entries beyond
	// the cap are dropped.
	maxViewedTools = 50

	// maxSearchHistory caps the search history.
	maxSearchHistory = 20
)

// ToolRating records a user's rating of a single tool.
type ToolRating struct {
	// ToolID is the rated tool's catalog ID.
	ToolID string `json:"toolId"`

	// Rating is the user's rating, expected in [0, 5].
	// The store does not validate the range; callers do.
	Rating float64 `json:"rating"`
}

// UserPreferences holds one user's tracked interaction history.
type UserPreferences struct {
	// FavoriteCategories are categories the user explicitly marked as
	// preferred. Never inferred; set only through Update.
	FavoriteCategories []string `json:"favoriteCategories"`

	// ViewedTools are tool IDs, most recently viewed first, deduplicated.
	ViewedTools []string `json:"viewedTools"`

	// RatedTools maps tools to the user's rating, one entry per tool.
	RatedTools []ToolRating `json:"ratedTools"`

	// SearchHistory are past queries, most recent first, deduplicated.
	SearchHistory []string `json:"searchHistory"`
}

// DefaultPreferences returns an empty preference record.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		FavoriteCategories: []string{},
		ViewedTools:        []string{},
		RatedTools:         []ToolRating{},
		SearchHistory:      []string{},
	}
}

// Rating returns the user's rating for a tool, if any.
func (p UserPreferences) Rating(toolID string) (float64, bool) {
	for _, r := range p.RatedTools {
		if r.ToolID == toolID {
			return r.Rating, true
		}
	}
	return 0, false
}

// HasFavoriteCategory reports whether the user marked category as a favorite.
func (p UserPreferences) HasFavoriteCategory(category string) bool {
	for _, c := range p.FavoriteCategories {
		if c == category {
			return true
		}
	}
	return false
}

// RecentlyViewed returns up to n of the most recently viewed tool IDs.
func (p UserPreferences) RecentlyViewed(n int) []string {
	if n > len(p.ViewedTools) {
		n = len(p.ViewedTools)
	}
	return p.ViewedTools[:n]
}

// clone returns a deep copy so cached state never leaks to callers.
func (p UserPreferences) clone() UserPreferences {
	out := UserPreferences{
		FavoriteCategories: make([]string, len(p.FavoriteCategories)),
		ViewedTools:        make([]string, len(p.ViewedTools)),
		RatedTools:         make([]ToolRating, len(p.RatedTools)),
		SearchHistory:      make([]string, len(p.SearchHistory)),
	}
	copy(out.FavoriteCategories, p.FavoriteCategories)
	copy(out.ViewedTools, p.ViewedTools)
	copy(out.RatedTools, p.RatedTools)
	copy(out.SearchHistory, p.SearchHistory)
	return out
}

// normalize replaces nil slices with empty ones after deserialization.
func (p *UserPreferences) normalize() {
	if p.FavoriteCategories == nil {
		p.FavoriteCategories = []string{}
	}
	if p.ViewedTools == nil {
		p.ViewedTools = []string{}
	}
	if p.RatedTools == nil {
		p.RatedTools = []ToolRating{}
	}
	if p.SearchHistory == nil {
		p.SearchHistory = []string{}
	}
}

// Partial is a partial preference update for Store.Update.
// Nil fields are left unchanged; non-nil fields replace the stored value.
type Partial struct {
	FavoriteCategories *[]string
	ViewedTools        *[]string
	RatedTools         *[]ToolRating
	SearchHistory      *[]string
}

// moveToFront moves value to the front of list (inserting it if absent),
// deduplicated, truncated to max entries.
func moveToFront(list []string, value string, max int) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, value)
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) > max {
		out = out[:max]
	}
	return out
}
