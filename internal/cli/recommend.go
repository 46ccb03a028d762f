package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewRecommendCmd creates the 'recommend' command for personalized rankings.
func NewRecommendCmd() *cobra.Command {
	var user string
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Show personalized tool recommendations",
		Long: `Rank the catalog for a user based on their tracked history:
favorite categories, highly rated tools, past searches, and recent views.
Recently viewed tools are excluded so the list stays fresh. Each result
carries the reasons behind its placement.

Users with no history get a quality-based ranking.`,
		Example: `  toolscout recommend
  toolscout recommend --user alice --limit 10
  toolscout recommend --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(user, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to personalize for (default from config)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum results (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runRecommend computes and prints recommendations.
func runRecommend(user string, limit int, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	userID := a.cfg.User(user)
	if limit <= 0 {
		limit = a.cfg.ResolveLimits().Recommend
	}

	results := a.engine.Recommend(userID, limit)

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No recommendations available (empty catalog?).")
		return nil
	}

	fmt.Printf("Recommendations for %s:\n\n", userID)
	for i, r := range results {
		printToolLine(i+1, r.Tool)
		fmt.Printf("    score %.1f · %s\n", r.Score, strings.Join(r.Reasons, ", "))
	}

	return nil
}
