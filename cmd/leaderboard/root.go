package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Team usage leaderboard backend for LLM gateway analytics",
	Long: `Leaderboard aggregates usage analytics from a LiteLLM gateway into
per-team dashboard data: token totals with per-key breakdowns, daily
time series, success rates, and cost efficiency.

Quick start:
  leaderboard serve     # Start the API server

Management:
  leaderboard validate  # Validate configuration
  leaderboard version   # Print version information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "leaderboard.yaml", "config file path")
}
