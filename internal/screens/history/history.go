package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummary
	Accuracy []store.TopicAccuracy
	Err      error
}

// HistoryScreen displays past sessions and quiz accuracy per topic.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummary
	accuracy  []store.TopicAccuracy
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.RecentSessions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		accuracy, err := s.eventRepo.QuizAccuracy(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}

		return historyLoadedMsg{Sessions: sessions, Accuracy: accuracy}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sessions = msg.Sessions
		s.accuracy = msg.Accuracy
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("Loading history...")
	}
	if s.errMsg != "" {
		return center.Render(theme.Incorrect.Render("Could not load history: " + s.errMsg))
	}
	if len(s.sessions) == 0 && len(s.accuracy) == 0 {
		return center.Foreground(theme.TextDim).Render("Nothing here yet. Go learn something!")
	}

	var b strings.Builder

	if len(s.accuracy) > 0 {
		b.WriteString(theme.Title.Render("Quiz accuracy") + "\n\n")
		barWidth := min(width-8, 64)
		for _, a := range s.accuracy {
			pct := 0.0
			if a.Attempted > 0 {
				pct = float64(a.Correct) / float64(a.Attempted)
			}
			label := fmt.Sprintf("%-28s %-13s %d/%d", a.Topic, a.Difficulty, a.Correct, a.Attempted)
			bar := components.NewProgressBar(label, pct, true, barWidth)
			b.WriteString("  " + bar.View() + "\n")
		}
		b.WriteString("\n")
	}

	if len(s.sessions) > 0 {
		b.WriteString(theme.Title.Render("Recent sessions") + "\n\n")
		for i, sess := range s.sessions {
			line := fmt.Sprintf("  %s  %-14s %-13s %2d turns  %s",
				sess.Timestamp.Format("Jan 02 15:04"),
				sess.Mode,
				sess.SkillLevel,
				sess.Turns,
				formatDuration(sess.DurationSecs))
			if i == s.selected {
				b.WriteString(theme.Selected.Render("▸"+line[1:]) + "\n")
			} else {
				b.WriteString(theme.Body.Render(line) + "\n")
			}
		}
	}

	return center.Render(b.String())
}

func formatDuration(secs int) string {
	d := time.Duration(secs) * time.Second
	if d < time.Minute {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
