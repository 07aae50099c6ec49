package main

import (
	"os"

	"github.com/spf13/cobra"
)

// debugLogPath enables debug logging to the given file when set.
var debugLogPath string

var rootCmd = &cobra.Command{
	Use:   "crewcoord",
	Short: "Crew coordination and state sync engine",
	Long: `Crewcoord analyzes project snapshots against a crew roster, scores
member synergy, and proposes ranked collaboration opportunities with
time-savings estimates and model-tier recommendations.

Core capabilities:
- Scores pairwise crew synergy from skills, specializations, style, and availability
- Finds under-progressing project domains and assembles teams for them
- Discovers cross-project reuse between projects with shared crew
- Executes collaborations, tracking availability and session history
- Reconciles local project state against a remote store with conflict resolution`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&debugLogPath, "debug-log", "", "write debug output to this file")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
