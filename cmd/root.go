package cmd

import (
	"github.com/abhisek/vimdrill/internal/quiz"
	"github.com/abhisek/vimdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vimdrill",
	Short: "Vim command trainer",
	Long:  "Vimdrill — terminal cheat sheet and quiz game for learning Vim commands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VIMDRILL_DB env var)")
	rootCmd.PersistentFlags().String("data", "", "Path to a command data file (JSON, defaults to the embedded sheet)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(cheatsheetCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VIMDRILL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadItems loads the command repository from --data, or the embedded
// sheet when the flag is unset.
func loadItems(cmd *cobra.Command) ([]quiz.Item, error) {
	path, _ := cmd.Flags().GetString("data")
	return quiz.LoadRepositoryFile(path)
}
