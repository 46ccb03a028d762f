package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCmd creates the 'list' command for browsing the catalog.
func NewListCmd() *cobra.Command {
	var categories bool
	var featured bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tools in the catalog",
		Long: `List every tool in the loaded catalog in catalog order.
Use --categories for a category summary or --featured to show only
featured tools.`,
		Example: `  toolscout list
  toolscout list --categories
  toolscout list --featured --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(categories, featured, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&categories, "categories", false, "List categories with tool counts")
	cmd.Flags().BoolVar(&featured, "featured", false, "Only featured tools")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runList prints the catalog, its categories, or its featured subset.
func runList(categories, featured, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if categories {
		counts := a.catalog.Categories()
		if jsonOutput {
			return printJSON(counts)
		}
		fmt.Printf("Categories (%d):\n", len(counts))
		for _, c := range counts {
			fmt.Printf("  %-20s %d tools\n", c.Name, c.Count)
		}
		return nil
	}

	tools := a.catalog.Tools()
	if featured {
		tools = a.catalog.Featured()
	}

	if jsonOutput {
		return printJSON(tools)
	}

	if len(tools) == 0 {
		fmt.Println("Catalog is empty.")
		return nil
	}

	fmt.Printf("Catalog (%d tools):\n\n", len(tools))
	for i, tool := range tools {
		printToolLine(i+1, tool)
	}

	return nil
}
