package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/pylearn/internal/llm"
)

// Orchestrator validates user input, builds the per-mode prompt, and submits
// it to the LLM provider. Session history is only appended after a successful
// round trip; a failed call leaves the session exactly as it was.
type Orchestrator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an Orchestrator backed by the given provider.
func New(provider llm.Provider, cfg Config) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		cfg:      cfg.withDefaults(),
	}
}

// Submit sends one user input through the given mode and returns the
// assistant's reply. On success the (user, assistant) pair is appended to
// the session's history for that mode.
//
// Errors:
//   - *ValidationError for an unknown mode, empty input, or input over the
//     configured length limit
//   - ErrRequestInFlight if the session already has a pending call
//   - *ExternalServiceError for any provider failure or empty reply
func (o *Orchestrator) Submit(ctx context.Context, s *Session, mode Mode, userText string) (string, error) {
	if !mode.Valid() {
		return "", &ValidationError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", string(mode))}
	}

	trimmed := strings.TrimSpace(userText)
	if trimmed == "" {
		return "", &ValidationError{Field: "input", Reason: "input is empty"}
	}
	if utf8.RuneCountInString(trimmed) > o.cfg.MaxInputLen {
		return "", &ValidationError{Field: "input", Reason: "input exceeds the length limit"}
	}

	if !s.begin() {
		return "", ErrRequestInFlight
	}
	defer s.end()

	req := llm.Request{
		System:      buildSystemPrompt(mode, s.Level()),
		Messages:    buildMessages(mode, s.Turns(mode), trimmed, o.cfg.MaxHistoryTurns),
		MaxTokens:   o.cfg.MaxTokens,
		Temperature: o.cfg.Temperature,
	}

	ctx = llm.WithPurpose(ctx, purposes[mode])

	resp, err := o.provider.Generate(ctx, req)
	if err != nil {
		return "", &ExternalServiceError{Err: err}
	}

	reply := decodeText(resp.Content)
	if reply == "" {
		return "", &ExternalServiceError{Err: errors.New("empty response from provider")}
	}

	s.append(mode, trimmed, reply)
	return reply, nil
}

// decodeText extracts plain text from a schemaless response. Providers may
// return the text as a bare string or wrapped as a JSON string.
func decodeText(content json.RawMessage) string {
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(content))
}
