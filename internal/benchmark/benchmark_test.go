package benchmark

import (
	"testing"

	"github.com/toolscout/toolscout/internal/catalog"
)

func TestRun(t *testing.T) {
	c, err := catalog.Embedded()
	if err != nil {
		t.Fatalf("failed to load embedded catalog: %v", err)
	}

	result, err := Run(c, 5)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.CatalogSize != c.Len() {
		t.Errorf("expected catalog size %d, got %d", c.Len(), result.CatalogSize)
	}

	wantOps := map[string]bool{
		"recommend": false,
		"similar":   false,
		"trending":  false,
		"category":  false,
		"search":    false,
	}
	for _, timing := range result.Timings {
		if timing.Iterations != 5 {
			t.Errorf("%s: expected 5 iterations, got %d", timing.Operation, timing.Iterations)
		}
		if _, ok := wantOps[timing.Operation]; !ok {
			t.Errorf("unexpected operation %q", timing.Operation)
		}
		wantOps[timing.Operation] = true
	}
	for op, seen := range wantOps {
		if !seen {
			t.Errorf("missing timing for %q", op)
		}
	}
}

func TestRun_DefaultIterations(t *testing.T) {
	c, err := catalog.New([]catalog.Tool{
		{ID: "only", Category: "Development", Rating: 4.0, Reviews: 10, Pricing: catalog.PricingFree},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	result, err := Run(c, 0)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, timing := range result.Timings {
		if timing.Iterations != DefaultIterations {
			t.Errorf("%s: expected default iterations, got %d", timing.Operation, timing.Iterations)
		}
	}
}
