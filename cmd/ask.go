package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pylearn/internal/llm"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor one question without opening the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		level := tutor.LevelBeginner
		if flagLevel, _ := cmd.Flags().GetString("level"); flagLevel != "" {
			lvl := tutor.SkillLevel(flagLevel)
			if !lvl.Valid() {
				return fmt.Errorf("unknown skill level %q", flagLevel)
			}
			level = lvl
		}

		// Event logging is best-effort here: a one-shot question should
		// work even when the database is unavailable.
		var eventRepo store.EventRepo
		if dbPath, err := resolveDBPath(cmd); err == nil {
			if st, err := store.Open(dbPath); err == nil {
				defer st.Close()
				eventRepo = st.EventRepo()
			}
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		orch := tutor.New(provider, tutor.DefaultConfig())
		session := tutor.NewSession(level)

		reply, err := orch.Submit(ctx, session, tutor.ModeChat, question)
		if err != nil {
			return err
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	askCmd.Flags().String("level", "", "Skill level: beginner, intermediate, or advanced")
}
