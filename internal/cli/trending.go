package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTrendingCmd creates the 'trending' command, the anonymous fallback
// ranking used when no personalization is available.
func NewTrendingCmd() *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending tools",
		Long: `List tools that are flagged popular or rated at least 4.5,
ordered by review count. No user history involved.`,
		Example: `  toolscout trending
  toolscout trending --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrending(limit, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runTrending prints the trending ranking.
func runTrending(limit int, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if limit <= 0 {
		limit = a.cfg.ResolveLimits().Trending
	}

	results := a.selector.Trending(limit)

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No trending tools.")
		return nil
	}

	fmt.Println("Trending tools:")
	fmt.Println()
	for i, tool := range results {
		printToolLine(i+1, tool)
	}

	return nil
}
