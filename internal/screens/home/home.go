package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/concepts"
	"github.com/abhisek/pylearn/internal/quiz"
	"github.com/abhisek/pylearn/internal/review"
	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/screens/chat"
	"github.com/abhisek/pylearn/internal/screens/conceptscreen"
	"github.com/abhisek/pylearn/internal/screens/history"
	"github.com/abhisek/pylearn/internal/screens/placeholder"
	"github.com/abhisek/pylearn/internal/screens/quizscreen"
	"github.com/abhisek/pylearn/internal/screens/reviewscreen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// HomeScreen is the mode picker shown at startup.
type HomeScreen struct {
	session   *tutor.Session
	menu      components.Menu
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	chatTurns     int
	quizQuestions int
	quizCorrect   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen with all mode screens wired in. Any nil
// service degrades its menu entry to a placeholder.
func New(orch *tutor.Orchestrator, session *tutor.Session, generator quiz.Generator, reviewSvc *review.Service, conceptSvc *concepts.Service, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	h := &HomeScreen{session: session, eventRepo: eventRepo, snapRepo: snapRepo}

	// Totals from the last snapshot, if any.
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			h.chatTurns = snap.Data.ChatTurns
			h.quizQuestions = snap.Data.QuizQuestions
			h.quizCorrect = snap.Data.QuizCorrect
			if lvl := tutor.SkillLevel(snap.Data.SkillLevel); lvl.Valid() {
				session.SetLevel(lvl)
			}
		}
	}

	items := []components.MenuItem{
		{Label: "CHAT", Action: func() tea.Cmd {
			if orch == nil {
				return pushPlaceholder("Chat")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(orch, session, eventRepo)}
			}
		}},
		{Label: "QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(generator, session, eventRepo)}
			}
		}},
		{Label: "CODE REVIEW", Action: func() tea.Cmd {
			if reviewSvc == nil {
				return pushPlaceholder("Code Review")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reviewscreen.New(reviewSvc, session, eventRepo)}
			}
		}},
		{Label: "CONCEPTS", Action: func() tea.Cmd {
			if conceptSvc == nil {
				return pushPlaceholder("Concepts")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: conceptscreen.New(conceptSvc, session, eventRepo)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			if eventRepo == nil {
				return pushPlaceholder("History")
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			h.saveProgress()
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func pushPlaceholder(title string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: placeholder.New(title)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Tab", Description: "Skill level"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "tab" {
		h.cycleLevel()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// saveProgress persists the running totals before quitting.
func (h *HomeScreen) saveProgress() {
	if h.snapRepo == nil || h.eventRepo == nil {
		return
	}
	_ = store.SaveProgressSnapshot(context.Background(), h.snapRepo, h.eventRepo, string(h.session.Level()))
}

// cycleLevel advances beginner -> intermediate -> advanced -> beginner.
func (h *HomeScreen) cycleLevel() {
	current := h.session.Level()
	for i, lvl := range tutor.AllLevels {
		if lvl == current {
			h.session.SetLevel(tutor.AllLevels[(i+1)%len(tutor.AllLevels)])
			return
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("pylearn") + "\n" +
		theme.Subtitle.Render("your Python learning assistant")
	sections = append(sections, title)

	sections = append(sections, h.renderLevelBar())

	if h.quizQuestions > 0 || h.chatTurns > 0 {
		sections = append(sections, h.renderStats())
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderLevelBar() string {
	var parts []string
	for _, lvl := range tutor.AllLevels {
		label := string(lvl)
		if lvl == h.session.Level() {
			parts = append(parts, theme.ButtonActive.Render(label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (h *HomeScreen) renderStats() string {
	pct := 0
	if h.quizQuestions > 0 {
		pct = 100 * h.quizCorrect / h.quizQuestions
	}
	return theme.Hint.Render(fmt.Sprintf(
		"%d chat turns  ·  %d quiz questions  ·  %d%% correct",
		h.chatTurns, h.quizQuestions, pct))
}
