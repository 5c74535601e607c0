package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pylearn/internal/llm"
	"github.com/abhisek/pylearn/internal/tutor"
)

func validOutput() json.RawMessage {
	out := questionOutput{
		Question:     "What does len('abc') return?",
		Options:      []string{"3", "2", "'abc'", "Error"},
		CorrectIndex: 0,
		Explanation:  "len() returns the number of characters in a string.",
	}
	data, _ := json.Marshal(out)
	return data
}

func TestGenerateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), GenerateInput{
		Topic: "Strings",
		Level: tutor.LevelBeginner,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if q.Text != "What does len('abc') return?" {
		t.Errorf("unexpected question text: %q", q.Text)
	}
	if len(q.Options) != 4 || q.Correct != 0 {
		t.Errorf("unexpected options: %v correct=%d", q.Options, q.Correct)
	}
	if q.Topic != "Strings" || q.Level != tutor.LevelBeginner {
		t.Errorf("input context not carried: topic=%q level=%q", q.Topic, q.Level)
	}
	if !q.Generated {
		t.Error("Generated flag not set")
	}
}

func TestGeneratePromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutput()})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Topic:          "Lists",
		Level:          tutor.LevelIntermediate,
		PriorQuestions: []string{"What does append do?"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-question" {
		t.Error("quiz schema not attached to request")
	}
	userMsg := req.Messages[0].Content
	for _, want := range []string{"Topic: Lists", "Skill level: intermediate", "What does append do?"} {
		if !strings.Contains(userMsg, want) {
			t.Errorf("user message missing %q:\n%s", want, userMsg)
		}
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Topic: "Lists", Level: tutor.LevelBeginner})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("provider error not wrapped: %v", err)
	}
}

func TestGenerateRejectsBrokenQuestions(t *testing.T) {
	tests := []struct {
		name string
		out  questionOutput
	}{
		{"empty text", questionOutput{Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "x"}},
		{"three options", questionOutput{Question: "q", Options: []string{"a", "b", "c"}, CorrectIndex: 0}},
		{"index out of range", questionOutput{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 4}},
		{"duplicate options", questionOutput{Question: "q", Options: []string{"a", "a", "c", "d"}, CorrectIndex: 0}},
		{"blank option", questionOutput{Question: "q", Options: []string{"a", " ", "c", "d"}, CorrectIndex: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _ := json.Marshal(tt.out)
			mock := llm.NewMockProvider(llm.MockResponse{Content: data})
			g := New(mock, DefaultConfig())

			if _, err := g.Generate(context.Background(), GenerateInput{Topic: "x", Level: tutor.LevelBeginner}); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
