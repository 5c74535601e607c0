package store

import (
	"context"
	"testing"
)

func TestAppendTurnAndSessionTurns(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{SessionID: "sess-1", Mode: "chat", Role: "user", Content: "What is a list?", SkillLevel: "beginner"},
		{SessionID: "sess-1", Mode: "chat", Role: "assistant", Content: "A list is an ordered collection.", SkillLevel: "beginner"},
		{SessionID: "sess-2", Mode: "chat", Role: "user", Content: "Explain decorators", SkillLevel: "advanced"},
	}
	for i, d := range turns {
		if err := repo.AppendTurn(ctx, d); err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}

	got, err := repo.SessionTurns(ctx, "sess-1")
	if err != nil {
		t.Fatalf("session turns: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(got))
	}
	if got[0].Role != "user" || got[1].Role != "assistant" {
		t.Errorf("roles = %q, %q, want user, assistant", got[0].Role, got[1].Role)
	}
	if got[0].Content != "What is a list?" {
		t.Errorf("content[0] = %q", got[0].Content)
	}
}

func TestSessionTurnsUnknownSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	got, err := repo.SessionTurns(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("session turns: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(turns) = %d, want 0", len(got))
	}
}

func TestRecentSessionsOnlyEnded(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", Mode: "chat", Action: "start", SkillLevel: "beginner"},
		{SessionID: "a", Mode: "chat", Action: "end", SkillLevel: "beginner", Turns: 4, DurationSecs: 120},
		{SessionID: "b", Mode: "quiz", Action: "start", SkillLevel: "intermediate"},
		{SessionID: "b", Mode: "quiz", Action: "end", SkillLevel: "intermediate", Turns: 6, DurationSecs: 300},
		{SessionID: "c", Mode: "chat", Action: "start", SkillLevel: "beginner"},
	}
	for i, d := range events {
		if err := repo.AppendSessionEvent(ctx, d); err != nil {
			t.Fatalf("append session event %d: %v", i, err)
		}
	}

	got, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(sessions) = %d, want 2 (session c never ended)", len(got))
	}

	// Newest first.
	if got[0].SessionID != "b" || got[1].SessionID != "a" {
		t.Errorf("order = %s, %s, want b, a", got[0].SessionID, got[1].SessionID)
	}
	if got[0].Turns != 6 || got[0].DurationSecs != 300 {
		t.Errorf("session b = %d turns, %ds, want 6 turns, 300s", got[0].Turns, got[0].DurationSecs)
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id, Mode: "chat", Action: "end", SkillLevel: "beginner",
		})
		if err != nil {
			t.Fatalf("append session event %s: %v", id, err)
		}
	}

	got, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(got))
	}
	if got[0].SessionID != "d" {
		t.Errorf("first session = %s, want d", got[0].SessionID)
	}
}

func TestQuizAccuracyAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	results := []QuizEventData{
		{SessionID: "q1", Topic: "Control Flow", Difficulty: "beginner", Correct: true},
		{SessionID: "q1", Topic: "Control Flow", Difficulty: "beginner", Correct: false},
		{SessionID: "q1", Topic: "Control Flow", Difficulty: "beginner", Correct: true},
		{SessionID: "q1", Topic: "Generators", Difficulty: "advanced", Correct: true, Generated: true},
		{SessionID: "q2", Topic: "Control Flow", Difficulty: "intermediate", Correct: false},
	}
	for i, d := range results {
		if err := repo.AppendQuizResult(ctx, d); err != nil {
			t.Fatalf("append quiz result %d: %v", i, err)
		}
	}

	got, err := repo.QuizAccuracy(ctx)
	if err != nil {
		t.Fatalf("quiz accuracy: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(accuracy) = %d, want 3 groups", len(got))
	}

	byKey := make(map[string]TopicAccuracy)
	for _, a := range got {
		byKey[a.Topic+"/"+a.Difficulty] = a
	}

	cf := byKey["Control Flow/beginner"]
	if cf.Attempted != 3 || cf.Correct != 2 {
		t.Errorf("Control Flow beginner = %d/%d, want 2/3", cf.Correct, cf.Attempted)
	}
	gen := byKey["Generators/advanced"]
	if gen.Attempted != 1 || gen.Correct != 1 {
		t.Errorf("Generators advanced = %d/%d, want 1/1", gen.Correct, gen.Attempted)
	}
}

func TestLLMEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    950,
		Success:      true,
		RequestBody:  `{"messages":[]}`,
		ResponseBody: `{"question":"..."}`,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "anthropic" || e.Purpose != "quiz-gen" {
		t.Errorf("event = %s/%s, want anthropic/quiz-gen", e.Provider, e.Purpose)
	}
	if e.InputTokens != 120 || e.OutputTokens != 80 {
		t.Errorf("tokens = %d/%d, want 120/80", e.InputTokens, e.OutputTokens)
	}

	byID, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if byID == nil {
		t.Fatal("expected event by ID")
	}
	if byID.RequestBody != `{"messages":[]}` {
		t.Errorf("request body = %q", byID.RequestBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing LLM event: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown event ID")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "chat", InputTokens: 200, OutputTokens: 100, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "code-review", InputTokens: 300, OutputTokens: 150, LatencyMs: 2000, Success: true},
	}
	for i, d := range calls {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("len(usage) = %d, want 2", len(usage))
	}

	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}

	chat := byPurpose["chat"]
	if chat.Calls != 2 || chat.InputTokens != 300 || chat.OutputTokens != 150 {
		t.Errorf("chat usage = %d calls, %d/%d tokens", chat.Calls, chat.InputTokens, chat.OutputTokens)
	}
	if chat.AvgLatencyMs != 1000 {
		t.Errorf("chat avg latency = %d, want 1000", chat.AvgLatencyMs)
	}
}

func TestTurnCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	turns := []TurnEventData{
		{SessionID: "a", Mode: "chat", Role: "user", Content: "q1"},
		{SessionID: "a", Mode: "chat", Role: "assistant", Content: "a1"},
		{SessionID: "a", Mode: "chat", Role: "user", Content: "q2"},
		{SessionID: "b", Mode: "code-review", Role: "user", Content: "def f(): pass"},
	}
	for i, d := range turns {
		if err := repo.AppendTurn(ctx, d); err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}

	n, err := repo.TurnCount(ctx, "chat", "user")
	if err != nil {
		t.Fatalf("turn count: %v", err)
	}
	if n != 2 {
		t.Errorf("chat user turns = %d, want 2", n)
	}

	n, err = repo.TurnCount(ctx, "code-review", "user")
	if err != nil {
		t.Fatalf("turn count: %v", err)
	}
	if n != 1 {
		t.Errorf("code-review user turns = %d, want 1", n)
	}
}

func TestSaveProgressSnapshot(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	snaps := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendTurn(ctx, TurnEventData{SessionID: "a", Mode: "chat", Role: "user", Content: "q"})
		if err != nil {
			t.Fatalf("append turn: %v", err)
		}
	}
	for _, correct := range []bool{true, true, false} {
		err := events.AppendQuizResult(ctx, QuizEventData{
			SessionID: "a", Topic: "Functions", Difficulty: "intermediate", Correct: correct,
		})
		if err != nil {
			t.Fatalf("append quiz result: %v", err)
		}
	}

	if err := SaveProgressSnapshot(ctx, snaps, events, "intermediate"); err != nil {
		t.Fatalf("save progress snapshot: %v", err)
	}

	snap, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.SkillLevel != "intermediate" {
		t.Errorf("skill level = %q, want intermediate", snap.Data.SkillLevel)
	}
	if snap.Data.ChatTurns != 3 {
		t.Errorf("chat turns = %d, want 3", snap.Data.ChatTurns)
	}
	if snap.Data.QuizQuestions != 3 || snap.Data.QuizCorrect != 2 {
		t.Errorf("quiz totals = %d/%d, want 2/3", snap.Data.QuizCorrect, snap.Data.QuizQuestions)
	}
	if snap.Sequence != 6 {
		t.Errorf("sequence = %d, want 6", snap.Sequence)
	}
}

func TestEventsShareGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTurn(ctx, TurnEventData{SessionID: "s", Mode: "chat", Role: "user", Content: "hi"}); err != nil {
		t.Fatalf("append turn: %v", err)
	}
	if err := repo.AppendQuizResult(ctx, QuizEventData{SessionID: "s", Topic: "Functions", Difficulty: "intermediate"}); err != nil {
		t.Fatalf("append quiz result: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s", Mode: "chat", Action: "end"}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	last, err := repo.LastSequence(ctx)
	if err != nil {
		t.Fatalf("last sequence: %v", err)
	}
	if last != 3 {
		t.Errorf("last sequence = %d, want 3", last)
	}

	// The counter has handed out 3 values, so the next one is 4.
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if next != 4 {
		t.Errorf("next sequence = %d, want 4", next)
	}
}
