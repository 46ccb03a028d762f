package recommend

import (
	"testing"

	"github.com/toolscout/toolscout/internal/catalog"
)

func testSelector(t *testing.T, tools []catalog.Tool) *Selector {
	t.Helper()
	return NewSelector(testCatalog(t, tools))
}

func TestTrending_FiltersAndSortsByReviews(t *testing.T) {
	selector := testSelector(t, []catalog.Tool{
		{ID: "popular-few", Category: "Development", Rating: 4.0, Reviews: 100, Popular: true},
		{ID: "unpopular-low", Category: "Development", Rating: 4.2, Reviews: 9000},
		{ID: "highly-rated", Category: "Development", Rating: 4.6, Reviews: 500},
		{ID: "popular-many", Category: "Development", Rating: 3.9, Reviews: 2000, Popular: true},
	})

	results := selector.Trending(10)

	// unpopular-low is neither popular nor rated >= 4.5
	if len(results) != 3 {
		t.Fatalf("expected 3 trending tools, got %d", len(results))
	}
	want := []string{"popular-many", "highly-rated", "popular-few"}
	for i, id := range want {
		if results[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, results[i].ID)
		}
	}
}

func TestTrending_RatingBoundary(t *testing.T) {
	selector := testSelector(t, []catalog.Tool{
		{ID: "at-cutoff", Category: "Development", Rating: 4.5, Reviews: 10},
		{ID: "below-cutoff", Category: "Development", Rating: 4.49, Reviews: 10},
	})

	results := selector.Trending(10)
	if len(results) != 1 || results[0].ID != "at-cutoff" {
		t.Errorf("expected only the 4.5-rated tool, got %v", results)
	}
}

func TestTrending_Limit(t *testing.T) {
	selector := testSelector(t, []catalog.Tool{
		{ID: "a", Category: "Development", Rating: 4.8, Reviews: 300},
		{ID: "b", Category: "Development", Rating: 4.7, Reviews: 200},
		{ID: "c", Category: "Development", Rating: 4.6, Reviews: 100},
	})

	if results := selector.Trending(2); len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
	if results := selector.Trending(0); len(results) != 0 {
		t.Errorf("expected empty result for limit 0, got %d", len(results))
	}
}

func TestByCategory_FiltersAndSortsByRating(t *testing.T) {
	selector := testSelector(t, []catalog.Tool{
		{ID: "dev-low", Category: "Development", Rating: 4.0, Reviews: 5000},
		{ID: "prod", Category: "Productivity", Rating: 5.0, Reviews: 5000},
		{ID: "dev-high", Category: "Development", Rating: 4.8, Reviews: 100},
	})

	results := selector.ByCategory("Development", 10)
	if len(results) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(results))
	}
	if results[0].ID != "dev-high" || results[1].ID != "dev-low" {
		t.Errorf("expected rating-desc order, got %s, %s", results[0].ID, results[1].ID)
	}
}

func TestByCategory_NearTieFallsBackToReviews(t *testing.T) {
	// Ratings within 0.1 count as tied; review counts decide.
	selector := testSelector(t, []catalog.Tool{
		{ID: "slightly-higher", Category: "Development", Rating: 4.55, Reviews: 100},
		{ID: "more-reviews", Category: "Development", Rating: 4.5, Reviews: 3000},
	})

	results := selector.ByCategory("Development", 10)
	if results[0].ID != "more-reviews" {
		t.Errorf("expected near-tie to fall back to reviews, got %s first", results[0].ID)
	}
}

func TestByCategory_UnknownCategoryEmpty(t *testing.T) {
	selector := testSelector(t, []catalog.Tool{
		{ID: "a", Category: "Development", Rating: 4.0, Reviews: 100},
	})

	if results := selector.ByCategory("No Such Category", 10); len(results) != 0 {
		t.Errorf("expected empty result for unknown category, got %v", results)
	}
}
