package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toolscout/toolscout/internal/prefs"
)

// NewPrefsCmd creates the 'prefs' command group for inspecting and editing
// a user's tracked preferences.
func NewPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and edit user preferences",
		Long: `Show a user's tracked history (views, ratings, searches, favorite
categories) or set their favorite categories. Favorite categories are the
only preference set directly; everything else accumulates from use.`,
	}

	cmd.AddCommand(newPrefsShowCmd())
	cmd.AddCommand(newPrefsFavoritesCmd())

	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	var user string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a user's tracked preferences",
		Example: `  toolscout prefs show
  toolscout prefs show --user alice --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsShow(user, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to show (default from config)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runPrefsShow(user string, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	userID := a.cfg.User(user)
	p, outcome := a.prefs.Load(userID)

	if jsonOutput {
		return printJSON(p)
	}

	fmt.Printf("Preferences for %s (%s):\n", userID, outcome)
	fmt.Printf("  Favorite categories: %s\n", orNone(strings.Join(p.FavoriteCategories, ", ")))
	fmt.Printf("  Recently viewed:     %s\n", orNone(strings.Join(p.ViewedTools, ", ")))
	fmt.Printf("  Search history:      %s\n", orNone(strings.Join(p.SearchHistory, ", ")))
	if len(p.RatedTools) == 0 {
		fmt.Println("  Rated tools:         (none)")
	} else {
		fmt.Println("  Rated tools:")
		for _, r := range p.RatedTools {
			fmt.Printf("    %s: %.1f\n", r.ToolID, r.Rating)
		}
	}

	return nil
}

func newPrefsFavoritesCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "favorites [category]...",
		Short: "Set a user's favorite categories",
		Long: `Replace the user's favorite categories with the given list. Pass no
arguments to clear them. Tools in favorite categories get the strongest
recommendation boost.`,
		Example: `  toolscout prefs favorites "Language Models" Development
  toolscout prefs favorites`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrefsFavorites(args, user)
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "User to update (default from config)")

	return cmd
}

func runPrefsFavorites(categories []string, user string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	if categories == nil {
		categories = []string{}
	}
	for _, c := range categories {
		if len(a.catalog.ByCategory(c)) == 0 {
			fmt.Printf("Warning: no tools in category %q\n", c)
		}
	}

	userID := a.cfg.User(user)
	if err := a.prefs.Update(userID, prefs.Partial{FavoriteCategories: &categories}); err != nil {
		return fmt.Errorf("failed to update favorites: %w", err)
	}

	if len(categories) == 0 {
		fmt.Printf("Cleared favorite categories for %s.\n", userID)
	} else {
		fmt.Printf("Favorite categories for %s: %s\n", userID, strings.Join(categories, ", "))
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
