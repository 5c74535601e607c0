package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pylearn/internal/app"
	"github.com/abhisek/pylearn/internal/concepts"
	"github.com/abhisek/pylearn/internal/llm"
	"github.com/abhisek/pylearn/internal/quiz"
	"github.com/abhisek/pylearn/internal/review"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	level := tutor.LevelBeginner
	if flagLevel, _ := cmd.Flags().GetString("level"); flagLevel != "" {
		lvl := tutor.SkillLevel(flagLevel)
		if !lvl.Valid() {
			return fmt.Errorf("unknown skill level %q (use beginner, intermediate, or advanced)", flagLevel)
		}
		level = lvl
	}

	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	eventRepo := st.EventRepo()
	opts := app.Options{
		Session:    tutor.NewSession(level),
		EventRepo:  eventRepo,
		SnapRepo:   st.SnapshotRepo(),
		SkipSplash: skipSplash,
	}

	// The quiz works from the built-in bank even without a provider.
	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Chat, code review, lessons, and AI quiz questions will be unavailable.")
	} else {
		opts.Orchestrator = tutor.New(provider, tutor.DefaultConfig())
		opts.QuizGen = quiz.New(provider, quiz.DefaultConfig())
		opts.ReviewSvc = review.NewService(provider, review.DefaultConfig())
		opts.ConceptSvc = concepts.NewService(provider, concepts.DefaultConfig())
	}

	return app.Run(opts)
}
