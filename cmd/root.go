package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joshtsang/fopo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "fopo",
	Short: "FOPO self-assessment",
	Long:  "fopo — a terminal self-assessment of how much other people's opinions shape your choices.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Optional .env file for endpoint and AI provider settings.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FOPO_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(resultCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FOPO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
