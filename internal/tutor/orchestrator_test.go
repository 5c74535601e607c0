package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/pylearn/internal/llm"
)

func textResponse(text string) llm.MockResponse {
	quoted, _ := json.Marshal(text)
	return llm.MockResponse{Content: json.RawMessage(quoted)}
}

func TestSubmitAppendsHistory(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("A list is an ordered mutable sequence."))
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	reply, err := o.Submit(context.Background(), s, ModeChat, "What is a list?")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if reply != "A list is an ordered mutable sequence." {
		t.Errorf("unexpected reply: %q", reply)
	}

	turns := s.Turns(ModeChat)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != RoleUser || turns[0].Text != "What is a list?" {
		t.Errorf("unexpected user turn: %+v", turns[0])
	}
	if turns[1].Role != RoleAssistant || turns[1].Text != reply {
		t.Errorf("unexpected assistant turn: %+v", turns[1])
	}
}

func TestSubmitEmptyInput(t *testing.T) {
	mock := llm.NewMockProvider()
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := o.Submit(context.Background(), s, ModeChat, input)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("input %q: expected ValidationError, got %v", input, err)
		}
	}

	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for invalid input", mock.CallCount())
	}
	if len(s.Turns(ModeChat)) != 0 {
		t.Error("history changed on invalid input")
	}
}

func TestSubmitInputTooLong(t *testing.T) {
	mock := llm.NewMockProvider()
	o := New(mock, Config{MaxInputLen: 10})
	s := NewSession(LevelBeginner)

	_, err := o.Submit(context.Background(), s, ModeChat, strings.Repeat("x", 11))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "input" {
		t.Errorf("expected field %q, got %q", "input", verr.Field)
	}

	// Exactly at the limit is fine.
	mock.AddResponse(textResponse("ok"))
	if _, err := o.Submit(context.Background(), s, ModeChat, strings.Repeat("x", 10)); err != nil {
		t.Fatalf("submit at limit failed: %v", err)
	}
}

func TestSubmitUnknownMode(t *testing.T) {
	mock := llm.NewMockProvider()
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	_, err := o.Submit(context.Background(), s, Mode("debate"), "hello")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "mode" {
		t.Errorf("expected field %q, got %q", "mode", verr.Field)
	}
}

func TestSubmitProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")},
	})
	o := New(mock, Config{})
	s := NewSession(LevelIntermediate)

	_, err := o.Submit(context.Background(), s, ModeChat, "What is a dict?")
	var serr *ExternalServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ExternalServiceError, got %v", err)
	}

	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Error("underlying provider error not preserved")
	}

	if len(s.Turns(ModeChat)) != 0 {
		t.Error("history changed on provider failure")
	}

	// The session accepts new submissions after a failure.
	mock.AddResponse(textResponse("A dict maps keys to values."))
	if _, err := o.Submit(context.Background(), s, ModeChat, "What is a dict?"); err != nil {
		t.Fatalf("submit after failure: %v", err)
	}
	if len(s.Turns(ModeChat)) != 2 {
		t.Errorf("expected 2 turns after recovery, got %d", len(s.Turns(ModeChat)))
	}
}

func TestSubmitEmptyReply(t *testing.T) {
	mock := llm.NewMockProvider(textResponse("   "))
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	_, err := o.Submit(context.Background(), s, ModeChat, "hello")
	var serr *ExternalServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("expected ExternalServiceError for blank reply, got %v", err)
	}
	if len(s.Turns(ModeChat)) != 0 {
		t.Error("history changed on empty reply")
	}
}

func TestHistoriesIsolatedPerMode(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("chat reply"),
		textResponse("lesson reply"),
	)
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	ctx := context.Background()
	if _, err := o.Submit(ctx, s, ModeChat, "hi"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Submit(ctx, s, ModeConceptLesson, "functions"); err != nil {
		t.Fatal(err)
	}

	if got := len(s.Turns(ModeChat)); got != 2 {
		t.Errorf("chat turns = %d, want 2", got)
	}
	if got := len(s.Turns(ModeConceptLesson)); got != 2 {
		t.Errorf("lesson turns = %d, want 2", got)
	}
	if got := len(s.Turns(ModeQuiz)); got != 0 {
		t.Errorf("quiz turns = %d, want 0", got)
	}
}

func TestResetClearsOnlyOneMode(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("chat reply"),
		textResponse("review reply"),
	)
	o := New(mock, Config{})
	s := NewSession(LevelAdvanced)

	ctx := context.Background()
	if _, err := o.Submit(ctx, s, ModeChat, "hi"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Submit(ctx, s, ModeCodeReview, "print('hi')"); err != nil {
		t.Fatal(err)
	}

	s.Reset(ModeChat)

	if got := len(s.Turns(ModeChat)); got != 0 {
		t.Errorf("chat turns after reset = %d, want 0", got)
	}
	if got := len(s.Turns(ModeCodeReview)); got != 2 {
		t.Errorf("review turns after chat reset = %d, want 2", got)
	}
}

func TestChatReplaysHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		textResponse("first reply"),
		textResponse("second reply"),
	)
	o := New(mock, Config{})
	s := NewSession(LevelBeginner)

	ctx := context.Background()
	if _, err := o.Submit(ctx, s, ModeChat, "first question"); err != nil {
		t.Fatal(err)
	}
	if _, err := o.Submit(ctx, s, ModeChat, "second question"); err != nil {
		t.Fatal(err)
	}

	second := mock.Calls[1]
	if len(second.Messages) != 3 {
		t.Fatalf("expected 3 messages on second call, got %d", len(second.Messages))
	}
	if second.Messages[0].Content != "first question" {
		t.Errorf("history user message = %q", second.Messages[0].Content)
	}
	if second.Messages[1].Role != llm.RoleAssistant || second.Messages[1].Content != "first reply" {
		t.Errorf("history assistant message = %+v", second.Messages[1])
	}
	if second.Messages[2].Content != "second question" {
		t.Errorf("current message = %q", second.Messages[2].Content)
	}
}

func TestChatHistoryWindow(t *testing.T) {
	mock := llm.NewMockProvider()
	for i := 0; i < 5; i++ {
		mock.AddResponse(textResponse("reply"))
	}
	o := New(mock, Config{MaxHistoryTurns: 4})
	s := NewSession(LevelBeginner)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := o.Submit(ctx, s, ModeChat, "question"); err != nil {
			t.Fatal(err)
		}
	}

	// All 10 turns stay in the session.
	if got := len(s.Turns(ModeChat)); got != 10 {
		t.Errorf("session turns = %d, want 10", got)
	}

	// The provider only sees the window plus the new input.
	last := mock.Calls[len(mock.Calls)-1]
	if len(last.Messages) != 5 {
		t.Errorf("messages sent = %d, want 5 (4 history + 1 new)", len(last.Messages))
	}
}

// blockingProvider parks Generate until released, for in-flight tests.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	close(p.started)
	<-p.release
	quoted, _ := json.Marshal("done")
	return &llm.Response{Content: quoted, Model: "block", StopReason: "end"}, nil
}

func (p *blockingProvider) ModelID() string { return "block" }

func TestSubmitRejectsConcurrentCall(t *testing.T) {
	p := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	o := New(p, Config{})
	s := NewSession(LevelBeginner)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := o.Submit(context.Background(), s, ModeChat, "slow question"); err != nil {
			t.Errorf("first submit failed: %v", err)
		}
	}()

	<-p.started

	_, err := o.Submit(context.Background(), s, ModeQuiz, "lists")
	if !errors.Is(err, ErrRequestInFlight) {
		t.Errorf("expected ErrRequestInFlight, got %v", err)
	}

	close(p.release)
	wg.Wait()

	// The guard clears once the first call completes.
	if len(s.Turns(ModeChat)) != 2 {
		t.Errorf("first submission not recorded: %d turns", len(s.Turns(ModeChat)))
	}
}
