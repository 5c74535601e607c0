package concepts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/pylearn/internal/llm"
)

// Service generates concept lessons through the LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	ExampleCode string `json:"example_code"`
	Practice    string `json:"practice"`
}

// Teach generates one lesson for the given concept.
func (s *Service) Teach(ctx context.Context, input LessonInput) (*Lesson, error) {
	if strings.TrimSpace(input.Concept) == "" {
		return nil, fmt.Errorf("no concept given")
	}

	ctx = llm.WithPurpose(ctx, "lesson")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	if strings.TrimSpace(out.Explanation) == "" {
		return nil, fmt.Errorf("lesson has empty explanation")
	}

	return &Lesson{
		Concept:     input.Concept,
		Title:       out.Title,
		Explanation: out.Explanation,
		ExampleCode: out.ExampleCode,
		Practice:    out.Practice,
	}, nil
}
