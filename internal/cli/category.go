package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoryCmd creates the 'category' command for per-category listings.
func NewCategoryCmd() *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Show the best tools in a category",
		Long: `List a category's tools ordered by rating; near-identical ratings
(within 0.1) fall back to review counts. Run 'toolscout list --categories'
to see the available categories.`,
		Example: `  toolscout category "Language Models"
  toolscout category Development --limit 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategory(args[0], limit, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runCategory prints the category ranking.
func runCategory(category string, limit int, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if limit <= 0 {
		limit = a.cfg.ResolveLimits().Category
	}

	results := a.selector.ByCategory(category, limit)

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Printf("No tools in category %q.\n", category)
		return nil
	}

	fmt.Printf("Top tools in %s:\n\n", category)
	for i, tool := range results {
		printToolLine(i+1, tool)
	}

	return nil
}
