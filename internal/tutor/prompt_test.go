package tutor

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptIncludesLevel(t *testing.T) {
	for _, level := range AllLevels {
		prompt := buildSystemPrompt(ModeChat, level)
		if !strings.Contains(prompt, levelGuidance[level]) {
			t.Errorf("level %s guidance missing from prompt", level)
		}
		if !strings.Contains(prompt, "Python programming tutor") {
			t.Errorf("chat role missing from prompt for level %s", level)
		}
	}
}

func TestSystemPromptsPerMode(t *testing.T) {
	seen := make(map[string]Mode)
	for _, mode := range AllModes {
		prompt, ok := systemPrompts[mode]
		if !ok || prompt == "" {
			t.Fatalf("mode %s has no system prompt", mode)
		}
		if prev, dup := seen[prompt]; dup {
			t.Errorf("modes %s and %s share a system prompt", prev, mode)
		}
		seen[prompt] = mode
	}
}

func TestBuildUserMessageFraming(t *testing.T) {
	tests := []struct {
		mode  Mode
		input string
		want  string
	}{
		{ModeChat, "what is a tuple?", "what is a tuple?"},
		{ModeQuiz, "list comprehensions", "Write one quiz question about: list comprehensions"},
		{ModeConceptLesson, "decorators", "Teach me about: decorators"},
	}
	for _, tt := range tests {
		if got := buildUserMessage(tt.mode, tt.input); got != tt.want {
			t.Errorf("buildUserMessage(%s, %q) = %q, want %q", tt.mode, tt.input, got, tt.want)
		}
	}
}

func TestBuildUserMessageWrapsCode(t *testing.T) {
	got := buildUserMessage(ModeCodeReview, "def f():\n    return 1")
	if !strings.Contains(got, "```python\ndef f():\n    return 1\n```") {
		t.Errorf("code not fenced:\n%s", got)
	}
}

func TestBuildMessagesSingleTurnModes(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Text: "old question"},
		{Role: RoleAssistant, Text: "old answer"},
	}
	for _, mode := range []Mode{ModeQuiz, ModeCodeReview, ModeConceptLesson} {
		messages := buildMessages(mode, history, "new input", 20)
		if len(messages) != 1 {
			t.Errorf("mode %s sent %d messages, want 1", mode, len(messages))
		}
	}
}

func TestPurposeForEveryMode(t *testing.T) {
	for _, mode := range AllModes {
		if purposes[mode] == "" {
			t.Errorf("mode %s has no purpose label", mode)
		}
	}
}
