package cmd

import (
	"github.com/abhisek/maturiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maturiz",
	Short: "Maturity assessment engine with AI-assisted diagnosis",
	Long: "Maturiz — terminal maturity assessment engine. Score areas directly, " +
		"or let the reasoning service propose levels from free-text evidence " +
		"(diagnose) or a short interview.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATURIZ_DB env var)")
	rootCmd.PersistentFlags().String("rubric", "", "Path to a YAML rubric catalog (default: built-in)")

	rootCmd.AddCommand(rubricCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATURIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
