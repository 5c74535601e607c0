package conceptscreen

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/concepts"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// lessonReadyMsg is sent when a generated lesson arrives.
type lessonReadyMsg struct {
	Lesson *concepts.Lesson
	Err    error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ConceptScreen picks a concept from the catalog, or a free-form topic,
// and shows the generated lesson.
type ConceptScreen struct {
	service   *concepts.Service
	session   *tutor.Session
	eventRepo store.EventRepo

	menu         components.Menu
	topicInput   components.TextInput
	typing       bool
	waiting      bool
	spinnerFrame int
	lesson       *concepts.Lesson
	errMsg       string
	scroll       int
	startedAt    time.Time
	lessons      int
}

var _ screen.Screen = (*ConceptScreen)(nil)
var _ screen.KeyHintProvider = (*ConceptScreen)(nil)
var _ screen.Closer = (*ConceptScreen)(nil)

// New creates the concept lesson screen.
func New(service *concepts.Service, session *tutor.Session, eventRepo store.EventRepo) *ConceptScreen {
	s := &ConceptScreen{
		service:   service,
		session:   session,
		eventRepo: eventRepo,
		startedAt: time.Now(),
	}

	var items []components.MenuItem
	for _, c := range concepts.All() {
		name := c.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return s.requestLesson(name)
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Something else...",
		Action: func() tea.Cmd {
			s.typing = true
			s.topicInput = components.NewTextInput("e.g. list comprehensions", false, 0)
			return s.topicInput.Init()
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *ConceptScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.session.ID,
			Mode:       string(tutor.ModeConceptLesson),
			Action:     "start",
			SkillLevel: string(s.session.Level()),
		})
		return nil
	}
}

// Close records the session end when the screen is popped.
func (s *ConceptScreen) Close() {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.session.ID,
		Mode:         string(tutor.ModeConceptLesson),
		Action:       "end",
		SkillLevel:   string(s.session.Level()),
		Turns:        s.lessons,
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *ConceptScreen) Title() string {
	return "Concepts"
}

func (s *ConceptScreen) KeyHints() []layout.KeyHint {
	if s.lesson != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Enter", Description: "Another concept"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.typing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Teach me"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// requestLesson generates a lesson asynchronously.
func (s *ConceptScreen) requestLesson(topic string) tea.Cmd {
	s.waiting = true
	s.errMsg = ""

	return tea.Batch(
		spinnerTick(),
		func() tea.Msg {
			ctx := context.Background()
			lesson, err := s.service.Teach(ctx, concepts.LessonInput{
				Concept: topic,
				Level:   s.session.Level(),
			})
			if err != nil {
				return lessonReadyMsg{Err: err}
			}
			s.persist(ctx, topic, lesson)
			return lessonReadyMsg{Lesson: lesson}
		},
	)
}

func (s *ConceptScreen) persist(ctx context.Context, topic string, lesson *concepts.Lesson) {
	if s.eventRepo == nil {
		return
	}
	level := string(s.session.Level())
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeConceptLesson),
		Role:       string(tutor.RoleUser),
		Content:    topic,
		SkillLevel: level,
	})
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeConceptLesson),
		Role:       string(tutor.RoleAssistant),
		Content:    lesson.Explanation,
		SkillLevel: level,
	})
}

func (s *ConceptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = "could not build the lesson, try again"
			return s, nil
		}
		s.lesson = msg.Lesson
		s.lessons++
		s.scroll = 0
		return s, nil

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ConceptScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.waiting {
		return s, nil
	}

	if s.lesson != nil {
		switch msg.String() {
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "enter":
			s.lesson = nil
			s.typing = false
		}
		return s, nil
	}

	if s.typing {
		switch msg.String() {
		case "enter":
			topic := strings.TrimSpace(s.topicInput.Value())
			if topic == "" {
				return s, nil
			}
			s.typing = false
			return s, s.requestLesson(topic)
		case "esc":
			s.typing = false
			return s, nil
		}
		var cmd tea.Cmd
		s.topicInput, cmd = s.topicInput.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ConceptScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if s.waiting {
		return center.Foreground(theme.TextDim).
			Render(spinnerFrames[s.spinnerFrame] + " writing your lesson...")
	}

	if s.lesson != nil {
		return s.renderLesson(width, height)
	}

	if s.typing {
		content := theme.Title.Render("What should I teach?") + "\n\n" + s.topicInput.View()
		return center.Render(content)
	}

	header := theme.Title.Render("Pick a concept") + "\n" +
		theme.Subtitle.Render("level: "+string(s.session.Level())) + "\n\n"
	body := header + s.menu.View()
	if s.errMsg != "" {
		body += "\n\n" + theme.Incorrect.Render(s.errMsg)
	}
	return center.Render(body)
}

func (s *ConceptScreen) renderLesson(width, height int) string {
	wrap := lipgloss.NewStyle().Width(min(width-8, 90))

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.lesson.Title) + "\n\n")
	b.WriteString(wrap.Foreground(theme.Text).Render(s.lesson.Explanation) + "\n\n")

	if s.lesson.ExampleCode != "" {
		b.WriteString(theme.Selected.Render("Example") + "\n")
		b.WriteString(theme.Code.Render(s.lesson.ExampleCode) + "\n\n")
	}

	if s.lesson.Practice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Try it") + "\n")
		b.WriteString(wrap.Foreground(theme.Text).Render(s.lesson.Practice) + "\n")
	}

	// Manual scroll: drop s.scroll lines from the top.
	lines := strings.Split(b.String(), "\n")
	if s.scroll > len(lines)-1 {
		s.scroll = len(lines) - 1
	}
	lines = lines[s.scroll:]
	if len(lines) > height-2 {
		lines = lines[:height-2]
	}

	return indent(strings.Join(lines, "\n"), 4)
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
