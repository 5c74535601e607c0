package quizscreen

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/quiz"
	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/components"
	"github.com/abhisek/pylearn/internal/ui/layout"
	"github.com/abhisek/pylearn/internal/ui/theme"
)

type phase int

const (
	phasePick phase = iota
	phaseLoading
	phaseQuestion
	phaseFeedback
	phaseDone
)

// questionReadyMsg is sent when the next question is available.
type questionReadyMsg struct {
	Question *quiz.Question
	Err      error
}

// QuizScreen runs one quiz round: pick a topic, answer questions, see the score.
type QuizScreen struct {
	generator quiz.Generator
	session   *tutor.Session
	eventRepo store.EventRepo
	rng       *rand.Rand

	phase     phase
	topics    components.Menu
	round     *quiz.Round
	current   *quiz.Question
	choice    components.MultiChoice
	lastOK    bool
	errMsg    string
	exhausted bool
	startedAt time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates the quiz screen. A nil generator falls back to the built-in
// question bank only.
func New(generator quiz.Generator, session *tutor.Session, eventRepo store.EventRepo) *QuizScreen {
	s := &QuizScreen{
		generator: generator,
		session:   session,
		eventRepo: eventRepo,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:     phasePick,
		startedAt: time.Now(),
	}
	s.topics = components.NewMenu(s.topicItems())
	return s
}

func (s *QuizScreen) topicItems() []components.MenuItem {
	level := s.session.Level()
	var items []components.MenuItem
	for _, topic := range quiz.BankTopics(level) {
		topic := topic
		items = append(items, components.MenuItem{
			Label: topic,
			Action: func() tea.Cmd {
				return s.startRound(topic)
			},
		})
	}
	return items
}

func (s *QuizScreen) startRound(topic string) tea.Cmd {
	s.round = quiz.NewRound(topic, s.session.Level())
	s.phase = phaseLoading
	s.exhausted = false
	return s.nextQuestion()
}

// nextQuestion pulls from the bank first, then asks the generator once the
// bank runs out for this topic.
func (s *QuizScreen) nextQuestion() tea.Cmd {
	round := s.round
	return func() tea.Msg {
		if q := quiz.FromBank(round.Level, round.Topic, round.Asked(), s.rng); q != nil {
			return questionReadyMsg{Question: q}
		}

		if s.generator == nil {
			return questionReadyMsg{}
		}

		q, err := s.generator.Generate(context.Background(), quiz.GenerateInput{
			Topic:          round.Topic,
			Level:          round.Level,
			PriorQuestions: round.Asked(),
		})
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Question: q}
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.session.ID,
			Mode:       string(tutor.ModeQuiz),
			Action:     "start",
			SkillLevel: string(s.session.Level()),
		})
		return nil
	}
}

// Close records the session end when the screen is popped.
func (s *QuizScreen) Close() {
	if s.eventRepo == nil {
		return
	}
	answered := 0
	if s.round != nil {
		_, answered = s.round.Score()
	}
	_ = s.eventRepo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:    s.session.ID,
		Mode:         string(tutor.ModeQuiz),
		Action:       "end",
		SkillLevel:   string(s.session.Level()),
		Turns:        answered,
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phasePick:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "End quiz"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next question"},
			{Key: "Esc", Description: "End quiz"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseLoading {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = "could not get a new question"
		s.phase = phaseDone
		return s, nil
	}
	if msg.Question == nil {
		// Bank exhausted and no generator configured.
		s.exhausted = true
		s.phase = phaseDone
		return s, nil
	}

	s.current = msg.Question
	s.choice = components.NewMultiChoice(msg.Question.Text, msg.Question.Options, msg.Question.Correct)
	s.phase = phaseQuestion
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phasePick:
		var cmd tea.Cmd
		s.topics, cmd = s.topics.Update(msg)
		return s, cmd

	case phaseQuestion:
		if key == "esc" {
			s.phase = phaseDone
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.recordAnswer()
		}
		return s, cmd

	case phaseFeedback:
		if key == "esc" {
			s.phase = phaseDone
			return s, nil
		}
		s.phase = phaseLoading
		return s, s.nextQuestion()

	case phaseDone:
		if key == "esc" || key == "enter" || key == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

// recordAnswer scores the submitted choice and persists the result.
func (s *QuizScreen) recordAnswer() (screen.Screen, tea.Cmd) {
	s.lastOK = s.round.Record(s.current, s.choice.ChosenIndex)
	s.phase = phaseFeedback

	if s.eventRepo != nil {
		chosen := ""
		if s.choice.ChosenIndex >= 0 && s.choice.ChosenIndex < len(s.current.Options) {
			chosen = s.current.Options[s.choice.ChosenIndex]
		}
		_ = s.eventRepo.AppendQuizResult(context.Background(), store.QuizEventData{
			SessionID:     s.session.ID,
			Topic:         s.current.Topic,
			Difficulty:    string(s.current.Level),
			QuestionText:  s.current.Text,
			CorrectAnswer: s.current.Options[s.current.Correct],
			ChosenAnswer:  chosen,
			Correct:       s.lastOK,
			Generated:     s.current.Generated,
		})
	}

	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	switch s.phase {
	case phasePick:
		header := theme.Title.Render("Pick a topic") + "\n" +
			theme.Subtitle.Render(fmt.Sprintf("level: %s", s.session.Level())) + "\n\n"
		return center.Render(header + s.topics.View())

	case phaseLoading:
		return center.Foreground(theme.TextDim).Render("Preparing a question...")

	case phaseQuestion:
		return s.renderQuestion(width, height, "")

	case phaseFeedback:
		verdict := theme.Correct.Render("Correct!")
		if !s.lastOK {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		explain := theme.Body.Render(s.current.Explanation)
		return s.renderQuestion(width, height, verdict+"\n"+explain)

	default:
		return center.Render(s.renderScore())
	}
}

func (s *QuizScreen) renderQuestion(width, height int, feedback string) string {
	correct, answered := s.round.Score()
	score := theme.Subtitle.Render(fmt.Sprintf("%s  ·  score %d/%d", s.round.Topic, correct, answered))

	body := s.choice.View()
	if feedback != "" {
		body += "\n" + feedback
	}

	card := theme.Card.Width(min(width-4, 80)).Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(score + "\n\n" + card)
}

func (s *QuizScreen) renderScore() string {
	correct, answered := s.round.Score()

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz over") + "\n\n")
	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg) + "\n\n")
	}
	if s.exhausted {
		b.WriteString(theme.Hint.Render("You answered every question on this topic.") + "\n\n")
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("Final score: %d/%d", correct, answered)))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
