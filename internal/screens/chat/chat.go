package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

// replyMsg is sent when the assistant's reply arrives.
type replyMsg struct {
	Reply string
	Err   error
}

// spinnerTickMsg animates the waiting indicator.
type spinnerTickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChatScreen is the free-form Q&A mode.
type ChatScreen struct {
	orch      *tutor.Orchestrator
	session   *tutor.Session
	eventRepo store.EventRepo

	input        components.TextInput
	waiting      bool
	spinnerFrame int
	errMsg       string
	startedAt    time.Time
	sentCount    int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.Closer = (*ChatScreen)(nil)

// New creates the chat screen.
func New(orch *tutor.Orchestrator, session *tutor.Session, eventRepo store.EventRepo) *ChatScreen {
	return &ChatScreen{
		orch:      orch,
		session:   session,
		eventRepo: eventRepo,
		input:     components.NewTextInput("Ask anything about Python...", false, 0),
		startedAt: time.Now(),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.recordStart())
}

// recordStart logs the session start. Best effort, like all event logging.
func (s *ChatScreen) recordStart() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.session.ID,
			Mode:       string(tutor.ModeChat),
			Action:     "start",
			SkillLevel: string(s.session.Level()),
		})
		return nil
	}
}

// Close records the session end when the screen is popped.
func (s *ChatScreen) Close() {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.session.ID,
		Mode:         string(tutor.ModeChat),
		Action:       "end",
		SkillLevel:   string(s.session.Level()),
		Turns:        s.sentCount,
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *ChatScreen) Title() string {
	return "Chat"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Clear chat"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.errMsg = userFacingError(msg.Err)
		} else {
			s.sentCount++
		}
		return s, nil

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame = (s.spinnerFrame + 1) % len(spinnerFrames)
		return s, spinnerTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.send()
		case "ctrl+r":
			s.session.Reset(tutor.ModeChat)
			s.errMsg = ""
			return s, nil
		}
	}

	if !s.waiting {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// send submits the typed question asynchronously.
func (s *ChatScreen) send() tea.Cmd {
	if s.waiting {
		return nil
	}
	text := strings.TrimSpace(s.input.Value())
	if text == "" {
		return nil
	}

	s.input = components.NewTextInput("Ask anything about Python...", false, 0)
	s.waiting = true
	s.errMsg = ""

	return tea.Batch(
		s.input.Init(),
		spinnerTick(),
		func() tea.Msg {
			ctx := context.Background()
			reply, err := s.orch.Submit(ctx, s.session, tutor.ModeChat, text)
			if err != nil {
				return replyMsg{Err: err}
			}
			s.persistTurns(ctx, text, reply)
			return replyMsg{Reply: reply}
		},
	)
}

// persistTurns records the completed exchange. Logging failures never
// interrupt the conversation.
func (s *ChatScreen) persistTurns(ctx context.Context, userText, reply string) {
	if s.eventRepo == nil {
		return
	}
	level := string(s.session.Level())
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeChat),
		Role:       string(tutor.RoleUser),
		Content:    userText,
		SkillLevel: level,
	})
	_ = s.eventRepo.AppendTurn(ctx, store.TurnEventData{
		SessionID:  s.session.ID,
		Mode:       string(tutor.ModeChat),
		Role:       string(tutor.RoleAssistant),
		Content:    reply,
		SkillLevel: level,
	})
}

func (s *ChatScreen) View(width, height int) string {
	var b strings.Builder

	transcriptHeight := height - 4
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	b.WriteString(s.renderTranscript(width, transcriptHeight))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	if s.waiting {
		b.WriteString(theme.Hint.Render("  " + spinnerFrames[s.spinnerFrame] + " thinking..."))
		b.WriteString("\n")
	} else {
		b.WriteString("  " + s.input.View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderTranscript renders as many recent turns as fit the given height.
func (s *ChatScreen) renderTranscript(width, height int) string {
	turns := s.session.Turns(tutor.ModeChat)
	if len(turns) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Ask a question to start the conversation.")
	}

	wrap := lipgloss.NewStyle().Width(width - 6)

	var blocks []string
	for _, t := range turns {
		label := theme.Selected.Render("you")
		if t.Role == tutor.RoleAssistant {
			label = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("tutor")
		}
		body := wrap.Foreground(theme.Text).Render(t.Text)
		blocks = append(blocks, fmt.Sprintf("  %s\n%s", label, indent(body, 2)))
	}

	full := strings.Join(blocks, "\n\n")

	// Keep only the last lines that fit.
	lines := strings.Split(full, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// userFacingError maps orchestrator errors to short messages.
func userFacingError(err error) string {
	var verr *tutor.ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	if errors.Is(err, tutor.ErrRequestInFlight) {
		return "still waiting on the previous question"
	}
	return "the tutor is unavailable right now, try again"
}

func spinnerTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
