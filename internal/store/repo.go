package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner state persisted across runs.
type SnapshotData struct {
	Version    int    `json:"version"`
	SkillLevel string `json:"skill_level,omitempty"`

	// Running totals shown on the home screen.
	ChatTurns     int `json:"chat_turns,omitempty"`
	QuizQuestions int `json:"quiz_questions,omitempty"`
	QuizCorrect   int `json:"quiz_correct,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID    string
	Mode         string
	Action       string // "start" or "end"
	SkillLevel   string
	Turns        int // on end only
	DurationSecs int // on end only
}

// SessionSummary is the read model for past sessions.
type SessionSummary struct {
	SessionID    string
	Mode         string
	SkillLevel   string
	Turns        int
	DurationSecs int
	Timestamp    time.Time
}

// TurnEventData captures one conversation turn in any mode.
type TurnEventData struct {
	SessionID  string
	Mode       string
	Role       string // "user" or "assistant"
	Content    string
	SkillLevel string
}

// Turn is the read model for persisted turns.
type Turn struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// QuizEventData captures one answered quiz question.
type QuizEventData struct {
	SessionID     string
	Topic         string
	Difficulty    string
	QuestionText  string
	CorrectAnswer string
	ChosenAnswer  string
	Correct       bool
	Generated     bool
}

// TopicAccuracy aggregates quiz results for one topic and difficulty.
type TopicAccuracy struct {
	Topic      string
	Difficulty string
	Attempted  int
	Correct    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for persisted LLM request events.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendTurn records a conversation turn.
	AppendTurn(ctx context.Context, data TurnEventData) error

	// AppendQuizResult records an answered quiz question.
	AppendQuizResult(ctx context.Context, data QuizEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentSessions returns ended sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// SessionTurns returns the turns of a session in order.
	SessionTurns(ctx context.Context, sessionID string) ([]Turn, error)

	// TurnCount returns the number of recorded turns for a mode and role.
	TurnCount(ctx context.Context, mode, role string) (int, error)

	// LastSequence returns the most recently assigned sequence number,
	// or 0 if no events exist.
	LastSequence(ctx context.Context) (int64, error)

	// QuizAccuracy aggregates quiz results per topic and difficulty.
	QuizAccuracy(ctx context.Context) ([]TopicAccuracy, error)

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates LLM usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)
}
