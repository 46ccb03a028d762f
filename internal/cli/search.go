package cli

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolscout/toolscout/internal/search"
)

// NewSearchCmd creates the 'search' command for full-text catalog search.
func NewSearchCmd() *cobra.Command {
	var user string
	var limit int
	var jsonOutput bool
	var noTrack bool

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search the tool catalog",
		Long: `Run a full-text query over tool names, descriptions, categories,
and tags. The query is recorded in the user's search history so future
recommendations can pick up on it; pass --no-track to search anonymously.`,
		Example: `  toolscout search "code completion"
  toolscout search image generation --limit 5
  toolscout search chatbot --no-track`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), user, limit, jsonOutput, noTrack)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User whose history records the query (default from config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum results")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVar(&noTrack, "no-track", false, "Do not record the query in search history")

	return cmd
}

// runSearch indexes the catalog, runs the query, and records it.
func runSearch(query, user string, limit int, jsonOutput, noTrack bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	idx, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	defer idx.Close()

	if err := idx.IndexCatalog(a.catalog); err != nil {
		return fmt.Errorf("failed to index catalog: %w", err)
	}

	results, err := idx.Search(query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if !noTrack {
		userID := a.cfg.User(user)
		if err := a.prefs.TrackSearch(userID, query); err != nil {
			log.Printf("Warning: failed to record search: %v", err)
		}
	}

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Printf("No tools match %q.\n", query)
		return nil
	}

	fmt.Printf("Results for %q:\n\n", query)
	for i, r := range results {
		fmt.Printf("%2d. %s (%s) · relevance %.2f\n    %s\n",
			i+1, r.Name, r.Category, r.Score, r.Description)
	}

	return nil
}
