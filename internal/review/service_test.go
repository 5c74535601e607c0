package review

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/pylearn/internal/llm"
	"github.com/abhisek/pylearn/internal/tutor"
)

func validReview() json.RawMessage {
	out := reviewOutput{
		Summary:   "Solid first attempt with one naming issue.",
		Strengths: []string{"Clear function decomposition"},
		Issues: []issueOutput{
			{Severity: "style", Message: "Use snake_case for myVar"},
		},
		Suggestions: []string{"Use a list comprehension in build_items"},
		Rating:      4,
	}
	data, _ := json.Marshal(out)
	return data
}

func TestReviewSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReview()})
	s := NewService(mock, DefaultConfig())

	r, err := s.Review(context.Background(), Input{
		Code:  "def f():\n    myVar = 1\n    return myVar",
		Level: tutor.LevelBeginner,
	})
	if err != nil {
		t.Fatalf("Review failed: %v", err)
	}

	if r.Rating != 4 {
		t.Errorf("rating = %d, want 4", r.Rating)
	}
	if len(r.Issues) != 1 || r.Issues[0].Severity != "style" {
		t.Errorf("unexpected issues: %+v", r.Issues)
	}
	if len(r.Strengths) == 0 {
		t.Error("strengths missing")
	}
}

func TestReviewPromptWrapsCode(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validReview()})
	s := NewService(mock, DefaultConfig())

	code := "print('hi')"
	if _, err := s.Review(context.Background(), Input{Code: code, Level: tutor.LevelAdvanced}); err != nil {
		t.Fatal(err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "code-review" {
		t.Error("review schema not attached")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "```python\nprint('hi')\n```") {
		t.Errorf("code not fenced:\n%s", msg)
	}
	if !strings.Contains(msg, "skill level: advanced") {
		t.Errorf("level missing:\n%s", msg)
	}
}

func TestReviewRejectsEmptyCode(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	if _, err := s.Review(context.Background(), Input{Code: "   \n"}); err == nil {
		t.Error("expected error for empty code")
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for empty code")
	}
}

func TestReviewRejectsOversizedCode(t *testing.T) {
	mock := llm.NewMockProvider()
	cfg := DefaultConfig()
	cfg.MaxCodeLen = 10
	s := NewService(mock, cfg)

	if _, err := s.Review(context.Background(), Input{Code: strings.Repeat("x", 11)}); err == nil {
		t.Error("expected error for oversized code")
	}
}

func TestReviewRejectsBadRating(t *testing.T) {
	out := reviewOutput{Summary: "ok", Strengths: []string{"x"}, Rating: 7}
	data, _ := json.Marshal(out)
	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	s := NewService(mock, DefaultConfig())

	if _, err := s.Review(context.Background(), Input{Code: "x = 1"}); err == nil {
		t.Error("expected error for out-of-range rating")
	}
}
