package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/di"
)

var (
	verbose bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "phishguard",
	Short: "PhishGuard - SMS phishing detection for African mobile money users",
	Long: `PhishGuard classifies SMS and mobile-money notifications as phishing or
legitimate using deterministic, explainable signal analysis, and records
every verdict for longitudinal threat reporting.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json-output", "j", false, "Output results in JSON format")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(demoCmd)
}

// invoke builds the dependency container and runs fn with its dependencies
// injected. Commands request only the types they need, so a check without
// --record never opens the store.
func invoke(fn interface{}) error {
	container, err := di.BuildContainer(verbose, jsonOut)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}
	return container.Invoke(fn)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
