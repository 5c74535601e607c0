package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pylearn/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		accuracy, err := repo.QuizAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query quiz accuracy: %w", err)
		}

		sessions, err := repo.RecentSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		if len(accuracy) == 0 && len(sessions) == 0 {
			fmt.Println("No activity recorded yet.")
			return nil
		}

		if len(accuracy) > 0 {
			fmt.Println("Quiz accuracy")
			fmt.Printf("%-30s  %-13s  %9s  %s\n", "Topic", "Difficulty", "Correct", "Accuracy")
			fmt.Println(strings.Repeat("─", 66))
			for _, a := range accuracy {
				pct := 0.0
				if a.Attempted > 0 {
					pct = 100 * float64(a.Correct) / float64(a.Attempted)
				}
				fmt.Printf("%-30s  %-13s  %4d/%-4d  %5.1f%%\n",
					a.Topic, a.Difficulty, a.Correct, a.Attempted, pct)
			}
			fmt.Println()
		}

		if len(sessions) > 0 {
			fmt.Println("Recent sessions")
			fmt.Printf("%-17s  %-14s  %-13s  %5s  %s\n", "When", "Mode", "Level", "Turns", "Duration")
			fmt.Println(strings.Repeat("─", 66))
			for _, sess := range sessions {
				fmt.Printf("%-17s  %-14s  %-13s  %5d  %dm%02ds\n",
					sess.Timestamp.Local().Format("2006-01-02 15:04"),
					sess.Mode, sess.SkillLevel, sess.Turns,
					sess.DurationSecs/60, sess.DurationSecs%60)
			}
		}

		return nil
	},
}
