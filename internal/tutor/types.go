package tutor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode is one of the four interaction styles.
type Mode string

const (
	ModeChat          Mode = "chat"
	ModeQuiz          Mode = "quiz"
	ModeCodeReview    Mode = "code-review"
	ModeConceptLesson Mode = "concept-lesson"
)

// AllModes lists the supported modes in display order.
var AllModes = []Mode{ModeChat, ModeQuiz, ModeCodeReview, ModeConceptLesson}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeChat, ModeQuiz, ModeCodeReview, ModeConceptLesson:
		return true
	}
	return false
}

// SkillLevel is the learner-selected proficiency tier.
// It selects the prompt phrasing for every mode.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// AllLevels lists the skill levels in ascending order.
var AllLevels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Valid reports whether l is a known skill level.
func (l SkillLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Role is the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one (role, text) exchange in a session's history.
type Turn struct {
	Role Role
	Text string
	At   time.Time
}

// Session holds the conversation state for one run of the app.
// Each mode keeps its own ordered turn history; switching modes never
// touches another mode's turns. History is append-only except for an
// explicit Reset.
type Session struct {
	ID string

	mu       sync.Mutex
	level    SkillLevel
	turns    map[Mode][]Turn
	inFlight bool
}

// NewSession creates an empty session at the given skill level.
func NewSession(level SkillLevel) *Session {
	if !level.Valid() {
		level = LevelBeginner
	}
	return &Session{
		ID:    uuid.New().String(),
		level: level,
		turns: make(map[Mode][]Turn),
	}
}

// Level returns the current skill level.
func (s *Session) Level() SkillLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel changes the skill level for subsequent submissions.
func (s *Session) SetLevel(level SkillLevel) {
	if !level.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}

// Turns returns a copy of the turn history for the given mode.
func (s *Session) Turns(mode Mode) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns[mode]))
	copy(out, s.turns[mode])
	return out
}

// Reset clears the history of one mode. Other modes are untouched.
func (s *Session) Reset(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, mode)
}

// begin marks an outstanding provider call. It returns false if one is
// already pending; a session allows at most one call at a time.
func (s *Session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// end clears the outstanding-call mark.
func (s *Session) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// append records a completed (user, assistant) exchange.
func (s *Session) append(mode Mode, userText, assistantText string) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[mode] = append(s.turns[mode],
		Turn{Role: RoleUser, Text: userText, At: now},
		Turn{Role: RoleAssistant, Text: assistantText, At: now},
	)
}
