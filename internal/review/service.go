package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/pylearn/internal/llm"
)

// Service runs structured code reviews through the LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a review service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type reviewOutput struct {
	Summary     string        `json:"summary"`
	Strengths   []string      `json:"strengths"`
	Issues      []issueOutput `json:"issues"`
	Suggestions []string      `json:"suggestions"`
	Rating      int           `json:"rating"`
}

type issueOutput struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Review reviews one code submission.
func (s *Service) Review(ctx context.Context, input Input) (*Review, error) {
	if strings.TrimSpace(input.Code) == "" {
		return nil, fmt.Errorf("no code to review")
	}
	if utf8.RuneCountInString(input.Code) > s.cfg.MaxCodeLen {
		return nil, fmt.Errorf("submission exceeds %d characters", s.cfg.MaxCodeLen)
	}

	ctx = llm.WithPurpose(ctx, "code-review")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("review generation: %w", err)
	}

	var out reviewOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse review response: %w", err)
	}

	r := &Review{
		Summary:     out.Summary,
		Strengths:   out.Strengths,
		Suggestions: out.Suggestions,
		Rating:      out.Rating,
	}
	for _, i := range out.Issues {
		r.Issues = append(r.Issues, Issue{Severity: i.Severity, Message: i.Message})
	}

	if strings.TrimSpace(r.Summary) == "" {
		return nil, fmt.Errorf("review has empty summary")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return nil, fmt.Errorf("review rating %d out of range", r.Rating)
	}

	return r, nil
}
