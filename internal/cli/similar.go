package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSimilarCmd creates the 'similar' command for tool alternatives.
func NewSimilarCmd() *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "similar <tool-id>",
		Short: "Find tools similar to a given tool",
		Long: `Rank the rest of the catalog by attribute closeness to a reference
tool: shared category, shared tags, pricing tier, rating proximity, and
popularity. Independent of any user's history.`,
		Example: `  toolscout similar github-copilot
  toolscout similar midjourney --limit 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimilar(args[0], limit, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runSimilar computes and prints similar tools.
func runSimilar(toolID string, limit int, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if limit <= 0 {
		limit = a.cfg.ResolveLimits().Similar
	}

	results := a.engine.Similar(toolID, limit)

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		if _, ok := a.catalog.ByID(toolID); !ok {
			fmt.Printf("Tool %q not found in catalog.\n", toolID)
		} else {
			fmt.Println("No similar tools found.")
		}
		return nil
	}

	reference, _ := a.catalog.ByID(toolID)
	fmt.Printf("Tools similar to %s:\n\n", reference.Name)
	for i, tool := range results {
		printToolLine(i+1, tool)
	}

	return nil
}
