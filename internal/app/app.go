package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pylearn/internal/concepts"
	"github.com/abhisek/pylearn/internal/quiz"
	"github.com/abhisek/pylearn/internal/review"
	"github.com/abhisek/pylearn/internal/router"
	"github.com/abhisek/pylearn/internal/screen"
	"github.com/abhisek/pylearn/internal/screens/home"
	"github.com/abhisek/pylearn/internal/screens/welcome"
	"github.com/abhisek/pylearn/internal/store"
	"github.com/abhisek/pylearn/internal/tutor"
	"github.com/abhisek/pylearn/internal/ui/layout"
)

// Options carries the wired services for one app run. Nil services degrade
// the matching screens to placeholders instead of failing startup.
type Options struct {
	Session      *tutor.Session
	Orchestrator *tutor.Orchestrator
	QuizGen      quiz.Generator
	ReviewSvc    *review.Service
	ConceptSvc   *concepts.Service
	EventRepo    store.EventRepo
	SnapRepo     store.SnapshotRepo

	// SkipSplash goes straight to the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	session   *tutor.Session
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo
	width     int
	height    int
}

// newAppModel creates a new AppModel with the welcome or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Orchestrator, opts.Session, opts.QuizGen,
			opts.ReviewSvc, opts.ConceptSvc, opts.EventRepo, opts.SnapRepo)
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router:    router.New(first),
		session:   opts.Session,
		eventRepo: opts.EventRepo,
		snapRepo:  opts.SnapRepo,
	}
}

// saveProgress persists a snapshot of running totals before the app exits.
func (m AppModel) saveProgress() {
	if m.snapRepo == nil || m.eventRepo == nil {
		return
	}
	level := ""
	if m.session != nil {
		level = string(m.session.Level())
	}
	_ = store.SaveProgressSnapshot(context.Background(), m.snapRepo, m.eventRepo, level)
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.saveProgress()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash draws its own full frame.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	level := ""
	if m.session != nil {
		level = string(m.session.Level())
	}
	header := layout.RenderHeader(title, level, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
