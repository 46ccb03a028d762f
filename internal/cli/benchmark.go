package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolscout/toolscout/internal/benchmark"
)

// NewBenchmarkCmd creates the 'benchmark' command for measuring ranking
// latency over the loaded catalog.
func NewBenchmarkCmd() *cobra.Command {
	var iterations int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark ranking performance",
		Long: `Time every ranking surface (recommend, similar, trending, category,
search) against a synthetic user profile and report per-operation averages.
Runs entirely in memory; no stored preferences are touched.`,
		Example: `  toolscout benchmark
  toolscout benchmark --iterations 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(iterations, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "i", benchmark.DefaultIterations, "Iterations per operation")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

// runBenchmark runs the benchmark and prints the timings.
func runBenchmark(iterations int, jsonOutput bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	result, err := benchmark.Run(a.catalog, iterations)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	if jsonOutput {
		return printJSON(result)
	}

	fmt.Printf("Benchmark over %d tools:\n\n", result.CatalogSize)
	for _, timing := range result.Timings {
		fmt.Printf("  %-12s %6d iterations  %8.2f ms total  %8.2f µs avg\n",
			timing.Operation, timing.Iterations, timing.TotalMillis, timing.AvgMicros)
	}

	return nil
}
