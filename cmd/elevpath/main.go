package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/elevpath/heuristic"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "elevpath",
		Short:         "Elevation-aware A* and Dijkstra over terrain grids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(heuristicsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Build the grid, run A* and Dijkstra and print both paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], f)
		},
	}

	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "override the scenario heuristic (see 'elevpath heuristics')")
	cmd.Flags().StringVar(&f.coefficient, "coefficient", "", "override the elevation coefficient; invalid text keeps the scenario value")
	cmd.Flags().IntVar(&f.ticks, "ticks", 0, "simulate N frames through the refresh schedule instead of a single run")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error (default from scenario, else info)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the report as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario.yaml]",
		Short: "Load a scenario and check it builds without running a search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func heuristicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heuristics",
		Short: "List heuristic kinds in toggle order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printHeuristics(cmd.OutOrStdout(), heuristic.Kinds())
		},
	}
}
