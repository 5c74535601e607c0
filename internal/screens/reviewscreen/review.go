package reviewscreen

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/review"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// reviewDoneMsg is sent when the review result arrives.
type reviewDoneMsg struct {
	Review *review.Review
	Err    error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ReviewScreen lets the learner paste code and get a structured review.
type ReviewScreen struct {
	service   *review.Service
	session   *tutor.Session
	eventRepo store.EventRepo

	editor       textarea.Model
	waiting      bool
	spinnerFrame int
	result       *review.Review
	errMsg       string
	startedAt    time.Time
	reviews      int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.Closer = (*ReviewScreen)(nil)

// New creates the code review screen.
func New(service *review.Service, session *tutor.Session, eventRepo store.EventRepo) *ReviewScreen {
	ta := textarea.New()
	ta.Placeholder = "Paste your Python code here..."

	return &ReviewScreen{
		service:   service,
		session:   session,
		eventRepo: eventRepo,
		editor:    ta,
		startedAt: time.Now(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return s.editor.Focus()
	}
	return tea.Batch(s.editor.Focus(), func() tea.Msg {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.session.ID,
			Mode:       string(tutor.ModeCodeReview),
			Action:     "start",
			SkillLevel: string(s.session.Level()),
		})
		return nil
	})
}

// Close records the session end when the screen is popped.
func (s *ReviewScreen) Close() {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.session.ID,
		Mode:         string(tutor.ModeCodeReview),
		Action:       "end",
		SkillLevel:   string(s.session.Level()),
		Turns:        s.reviews,
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *ReviewScreen) Title() string {
	return "Code Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Review more code"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit for review"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewDoneMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.result = msg.Review
		s.reviews++
		return s, nil

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		if s.result != nil {
			if msg.String() == "r" || msg.String() == "R" {
				s.result = nil
				s.errMsg = ""
				s.editor.Reset()
				return s, s.editor.Focus()
			}
			return s, nil
		}
		if msg.String() == "ctrl+s" {
			return s, s.submit()
		}
	}

	if !s.waiting && s.result == nil {
		var cmd tea.Cmd
		s.editor, cmd = s.editor.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit sends the editor contents for review.
func (s *ReviewScreen) submit() tea.Cmd {
	if s.waiting {
		return nil
	}
	code := s.editor.Value()
	if strings.TrimSpace(code) == "" {
		s.errMsg = "paste some code first"
		return nil
	}

	s.waiting = true
	s.errMsg = ""

	return tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			ctx := context.Background()
			r, err := s.service.Review(ctx, review.Input{
				Code:  code,
				Level: s.session.Level(),
			})
			if err != nil {
				return reviewDoneMsg{Err: err}
			}
			s.persist(ctx, code, r)
			return reviewDoneMsg{Review: r}
		},
	)
}

func (s *ReviewScreen) persist(ctx context.Context, code string, r *review.Review) {
	if s.eventRepo == nil {
		return
	}
	level := string(s.session.Level())
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeCodeReview),
		Role:       string(tutor.RoleUser),
		Content:    code,
		SkillLevel: level,
	})
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeCodeReview),
		Role:       string(tutor.RoleAssistant),
		Content:    r.Summary,
		SkillLevel: level,
	})
}

func (s *ReviewScreen) View(width, height int) string {
	if s.result != nil {
		return s.renderResult(width, height)
	}

	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Render("Submit Python code for a structured review") + "\n\n")

	s.editor.SetWidth(width - 6)
	editorHeight := height - 7
	if editorHeight < 3 {
		editorHeight = 3
	}
	s.editor.SetHeight(editorHeight)

	b.WriteString(indent(s.editor.View(), 2))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg) + "\n")
	}
	if s.waiting {
		b.WriteString(theme.Hint.Render("  " + spinnerFrames[s.spinnerFrame] + " reviewing...") + "\n")
	}

	return b.String()
}

func (s *ReviewScreen) renderResult(width, height int) string {
	r := s.result
	wrap := lipgloss.NewStyle().Width(min(width-8, 90))

	var b strings.Builder

	stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
	b.WriteString(theme.Title.Render("Review") + "  " +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(stars) + "\n\n")

	b.WriteString(wrap.Foreground(theme.Text).Render(r.Summary) + "\n\n")

	if len(r.Strengths) > 0 {
		b.WriteString(theme.Correct.Render("What works") + "\n")
		for _, st := range r.Strengths {
			b.WriteString(wrap.Foreground(theme.Text).Render("  + "+st) + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Issues) > 0 {
		b.WriteString(theme.Incorrect.Render("Issues") + "\n")
		for _, issue := range r.Issues {
			tag := lipgloss.NewStyle().Foreground(severityColor(issue.Severity)).Render("[" + issue.Severity + "]")
			b.WriteString(wrap.Foreground(theme.Text).Render(fmt.Sprintf("  %s %s", tag, issue.Message)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Suggestions) > 0 {
		b.WriteString(theme.Selected.Render("Try next") + "\n")
		for _, sg := range r.Suggestions {
			b.WriteString(wrap.Foreground(theme.Text).Render("  > "+sg) + "\n")
		}
	}

	card := theme.Card.Width(min(width-4, 96)).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func severityColor(severity string) color.Color {
	switch severity {
	case "bug":
		return theme.Error
	case "style":
		return theme.Accent
	default:
		return theme.Primary
	}
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
