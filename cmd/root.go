package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/skilldrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skilldrill",
	Short: "Adaptive assessment drills in your terminal",
	Long:  "SkillDrill — terminal client for the SkillDrill assessment platform: adaptive drills, diagnostics, and reinforcement reviews.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory is a convenience for local setups;
	// variables already in the environment win.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal file (overrides SKILLDRILL_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the journal path using --db flag (highest priority),
// then SKILLDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
