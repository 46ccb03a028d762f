/*
Package catalog provides the static directory of AI tools.

The catalog is loaded once at startup (from the embedded default data set or
from a user-supplied JSON file) and is immutable afterwards. Iteration order
is load order; every ranker in the recommend package relies on that order as
its tie-break, so the catalog never reorders tools after load.
*/
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Pricing tiers a tool can declare.
const (
	PricingFree         = "Free"
	PricingFreemium     = "Freemium"
	PricingSubscription = "Subscription"
	PricingPayPerUse    = "Pay-per-use"
	PricingAddOn        = "Add-on"
)

// Tool represents a single directory entry. Fields are read-only after load.
type Tool struct {
	// ID is the stable slug identifying the tool (e.g. "github-copilot").
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Description is the short listing description.
	Description string `json:"description"`

	// LongDescription is the optional detail-page text.
	LongDescription string `json:"longDescription,omitempty"`

	// Category is the single directory category the tool belongs to.
	Category string `json:"category"`

	// Rating is the average review rating in [0.0, 5.0].
	Rating float64 `json:"rating"`

	// Reviews is the number of reviews backing the rating.
	Reviews int `json:"reviews"`

	// Pricing is one of the Pricing* constants.
	Pricing string `json:"pricing"`

	// Tags are display-ordered descriptive labels.
	Tags []string `json:"tags"`

	// Website is the tool's homepage.
	Website string `json:"website,omitempty"`

	// Developer is the publishing company or team.
	Developer string `json:"developer,omitempty"`

	// LastUpdated is the listing's last review date (YYYY-MM-DD).
	LastUpdated string `json:"lastUpdated,omitempty"`

	// Featured marks tools shown on the landing page.
	Featured bool `json:"featured,omitempty"`

	// Popular marks tools currently trending.
	Popular bool `json:"popular,omitempty"`

	// Verified marks tools whose listing has been verified.
	Verified bool `json:"verified,omitempty"`
}

// HasTag reports whether the tool carries the given tag (exact match).
func (t Tool) HasTag(tag string) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// CategoryCount pairs a category name with the number of tools in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog holds the loaded tool set with an index by ID.
type Catalog struct {
	tools []Tool
	byID  map[string]int
}

//go:embed tools.json
var embeddedTools []byte

// New builds a catalog from a slice of tools, preserving order.
// Duplicate IDs and empty IDs are rejected.
func New(tools []Tool) (*Catalog, error) {
	byID := make(map[string]int, len(tools))
	for i, tool := range tools {
		if tool.ID == "" {
			return nil, fmt.Errorf("tool at index %d has empty id", i)
		}
		if prev, exists := byID[tool.ID]; exists {
			return nil, fmt.Errorf("duplicate tool id %q (indexes %d and %d)", tool.ID, prev, i)
		}
		byID[tool.ID] = i
	}
	return &Catalog{tools: tools, byID: byID}, nil
}

// Embedded loads the default catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return parse(embeddedTools)
}

// LoadFile loads a catalog from a JSON file (same schema as the embedded set).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

// parse decodes and validates catalog JSON.
func parse(data []byte) (*Catalog, error) {
	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(tools)
}

// Tools returns the full tool list in catalog order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Tools() []Tool {
	return c.tools
}

// Len returns the number of tools in the catalog.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// ByID looks up a tool by its ID.
func (c *Catalog) ByID(id string) (Tool, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Tool{}, false
	}
	return c.tools[i], true
}

// ByCategory returns all tools in a category, in catalog order.
func (c *Catalog) ByCategory(category string) []Tool {
	var tools []Tool
	for _, t := range c.tools {
		if t.Category == category {
			tools = append(tools, t)
		}
	}
	return tools
}

// Featured returns tools flagged for the landing page, in catalog order.
func (c *Catalog) Featured() []Tool {
	var tools []Tool
	for _, t := range c.tools {
		if t.Featured {
			tools = append(tools, t)
		}
	}
	return tools
}

// Categories returns each category with its tool count, ordered by first
// appearance in the catalog.
func (c *Catalog) Categories() []CategoryCount {
	var order []string
	counts := make(map[string]int)
	for _, t := range c.tools {
		if _, seen := counts[t.Category]; !seen {
			order = append(order, t.Category)
		}
		counts[t.Category]++
	}

	categories := make([]CategoryCount, 0, len(order))
	for _, name := range order {
		categories = append(categories, CategoryCount{Name: name, Count: counts[name]})
	}
	return categories
}

// Tags returns the sorted set of all tags used across the catalog.
func (c *Catalog) Tags() []string {
	seen := make(map[string]bool)
	var tags []string
	for _, t := range c.tools {
		for _, tag := range t.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
