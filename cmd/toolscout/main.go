/*
Package main is the entry point for the toolscout CLI.

toolscout is an AI tool directory with personalized recommendations. It
tracks each user's views, ratings, and searches locally and uses that
history to rank the catalog.

Usage:
  toolscout [command]

Available Commands:
  recommend   Show personalized tool recommendations
  similar     Find tools similar to a given tool
  trending    Show trending tools
  category    Show the best tools in a category
  search      Search the tool catalog
  view        Record that a user viewed a tool
  rate        Record a user's rating for a tool
  prefs       Inspect and edit user preferences
  list        List tools in the catalog
  benchmark   Benchmark ranking performance
  version     Show version information
  help        Help about any command

Examples:
  # Browse the catalog and record some history
  toolscout view github-copilot
  toolscout rate github-copilot 5
  toolscout search "image generation"

  # Get recommendations shaped by that history
  toolscout recommend
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolscout/toolscout/internal/cli"
	"github.com/toolscout/toolscout/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toolscout",
		Short: "AI tool directory with personalized recommendations",
		Long: `toolscout ranks a catalog of AI tools for each user based on their
tracked history: favorite categories, highly rated tools, past searches,
and recent views. Without history it falls back to quality-based rankings.

History is stored locally per user; nothing leaves the machine.`,
		Version: version.GetVersion(),
	}

	// Add subcommands
	rootCmd.AddCommand(cli.NewRecommendCmd())
	rootCmd.AddCommand(cli.NewSimilarCmd())
	rootCmd.AddCommand(cli.NewTrendingCmd())
	rootCmd.AddCommand(cli.NewCategoryCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewViewCmd())
	rootCmd.AddCommand(cli.NewRateCmd())
	rootCmd.AddCommand(cli.NewPrefsCmd())
	rootCmd.AddCommand(cli.NewListCmd())
	rootCmd.AddCommand(cli.NewBenchmarkCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
