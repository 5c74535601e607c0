package cmd

import (
	"github.com/abhisek/pylearn/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pylearn",
	Short: "AI Python tutor in your terminal",
	Long:  "Pylearn is a terminal assistant for learning Python: chat with a tutor, take quizzes, get code reviews, and work through concept lessons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PYLEARN_DB env var)")
	rootCmd.Flags().String("level", "", "Skill level: beginner, intermediate, or advanced")
	rootCmd.Flags().Bool("no-splash", false, "Skip the startup animation")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PYLEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
