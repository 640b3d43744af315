// Command wedgesim runs the coastal flood risk-cost simulation over a run
// file and reports discounted investment and damage totals.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "wedgesim",
		Short: "Flood risk-cost simulation for a city on a wedge",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(sweepCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var (
		seed   int64
		dbPath string
		label  string
	)

	cmd := &cobra.Command{
		Use:   "run [run-file]",
		Short: "Run one simulation and report discounted totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulation(args[0], seed, dbPath, label)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for event-mode barrier outcomes")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path to persist the run trace (optional)")
	cmd.Flags().StringVar(&label, "label", "", "label stored with the persisted run")
	return cmd
}

func sweepCmd() *cobra.Command {
	var (
		maxCrest float64
		steps    int
	)

	cmd := &cobra.Command{
		Use:   "sweep [run-file]",
		Short: "Evaluate a range of barrier crest heights against the run file's scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSweep(args[0], maxCrest, steps)
		},
	}

	cmd.Flags().Float64Var(&maxCrest, "max-crest", 8, "highest crest height to evaluate (m)")
	cmd.Flags().IntVar(&steps, "steps", 16, "number of crest heights to evaluate")
	return cmd
}
