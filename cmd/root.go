package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "verba",
	Short: "Adaptive English grammar tutor",
	Long:  "Verba — terminal app for daily English grammar practice with spaced review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VERBA_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile name (overrides VERBA_LEARNER env var)")

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VERBA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearnerName returns the profile name: --learner flag, then
// VERBA_LEARNER, then "default".
func resolveLearnerName(cmd *cobra.Command) string {
	if n, _ := cmd.Flags().GetString("learner"); n != "" {
		return n
	}
	if n := os.Getenv("VERBA_LEARNER"); n != "" {
		return n
	}
	return "default"
}
