package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewViewCmd creates the 'view' command, which records a tool view.
func NewViewCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "view <tool-id>",
		Short: "Record that a user viewed a tool",
		Long: `Record a tool view in the user's history and print the tool's
details. Viewed tools are excluded from the user's next recommendations
and kept as a most-recent-first history.`,
		Example: `  toolscout view github-copilot
  toolscout view midjourney --user alice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], user)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to record the view for (default from config)")

	return cmd
}

// runView records the view and prints the tool.
func runView(toolID, user string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tool, ok := a.catalog.ByID(toolID)
	if !ok {
		return fmt.Errorf("tool %q not found in catalog", toolID)
	}

	userID := a.cfg.User(user)
	if err := a.prefs.TrackView(userID, toolID); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}

	fmt.Printf("%s (%s)\n", tool.Name, tool.Category)
	fmt.Printf("  %s\n", tool.Description)
	if tool.LongDescription != "" {
		fmt.Printf("  %s\n", tool.LongDescription)
	}
	fmt.Printf("  Rating: %.1f (%d reviews) · Pricing: %s · Developer: %s\n",
		tool.Rating, tool.Reviews, tool.Pricing, tool.Developer)
	if tool.Website != "" {
		fmt.Printf("  Website: %s\n", tool.Website)
	}

	return nil
}

// NewRateCmd creates the 'rate' command, which records a tool rating.
func NewRateCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "rate <tool-id> <rating>",
		Short: "Record a user's rating for a tool",
		Long: `Record a rating between 0 and 5 for a tool. Re-rating a tool
replaces the previous rating. Tools a user rates 4 or above pull their
category's other tools up in recommendations.`,
		Example: `  toolscout rate claude-3 5
  toolscout rate jasper-ai 3.5 --user alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRate(args[0], args[1], user)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to record the rating for (default from config)")

	return cmd
}

// runRate validates and records the rating.
func runRate(toolID, ratingArg, user string) error {
	rating, err := strconv.ParseFloat(ratingArg, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q: must be a number", ratingArg)
	}
	if rating < 0 || rating > 5 {
		return fmt.Errorf("invalid rating %v: must be between 0 and 5", rating)
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	tool, ok := a.catalog.ByID(toolID)
	if !ok {
		return fmt.Errorf("tool %q not found in catalog", toolID)
	}

	userID := a.cfg.User(user)
	if err := a.prefs.TrackRating(userID, toolID, rating); err != nil {
		return fmt.Errorf("failed to record rating: %w", err)
	}

	fmt.Printf("Recorded %.1f★ for %s.\n", rating, tool.Name)
	return nil
}
