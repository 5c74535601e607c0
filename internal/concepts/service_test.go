package concepts

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/pylearn/internal/llm"
	"github.com/abhisek/pylearn/internal/tutor"
)

func validLesson() json.RawMessage {
	out := lessonOutput{
		Title:       "Functions in Python",
		Explanation: "A function groups reusable code behind a name.",
		ExampleCode: "def greet(name):\n    return f'Hello, {name}'",
		Practice:    "Write a function that returns the square of its argument.",
	}
	data, _ := json.Marshal(out)
	return data
}

func TestTeachSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLesson()})
	s := NewService(mock, DefaultConfig())

	lesson, err := s.Teach(context.Background(), LessonInput{
		Concept: "Functions",
		Level:   tutor.LevelBeginner,
	})
	if err != nil {
		t.Fatalf("Teach failed: %v", err)
	}

	if lesson.Concept != "Functions" {
		t.Errorf("concept = %q", lesson.Concept)
	}
	if lesson.Title == "" || lesson.ExampleCode == "" || lesson.Practice == "" {
		t.Errorf("lesson incomplete: %+v", lesson)
	}
}

func TestTeachPromptIncludesCatalogScope(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLesson()})
	s := NewService(mock, DefaultConfig())

	_, err := s.Teach(context.Background(), LessonInput{
		Concept: "Control Flow",
		Level:   tutor.LevelIntermediate,
	})
	if err != nil {
		t.Fatal(err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Concept: Control Flow") {
		t.Errorf("concept missing:\n%s", msg)
	}
	if !strings.Contains(msg, "if/elif/else") {
		t.Errorf("catalog scope missing:\n%s", msg)
	}
}

func TestTeachFreeFormConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLesson()})
	s := NewService(mock, DefaultConfig())

	_, err := s.Teach(context.Background(), LessonInput{
		Concept: "asyncio event loops",
		Level:   tutor.LevelAdvanced,
	})
	if err != nil {
		t.Fatalf("free-form concept rejected: %v", err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, "Scope:") {
		t.Errorf("unexpected catalog scope for free-form concept:\n%s", msg)
	}
}

func TestTeachRejectsEmptyConcept(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewService(mock, DefaultConfig())

	if _, err := s.Teach(context.Background(), LessonInput{Concept: "  "}); err == nil {
		t.Error("expected error for empty concept")
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for empty concept")
	}
}

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("catalog has %d entries, want 5", len(all))
	}

	if _, ok := Find("Classes & Objects"); !ok {
		t.Error("Classes & Objects missing from catalog")
	}
	if _, ok := Find("Monads"); ok {
		t.Error("Find returned a concept not in the catalog")
	}

	// Mutating the returned slice must not touch the catalog.
	all[0].Name = "changed"
	if catalog[0].Name == "changed" {
		t.Error("All returned the backing array")
	}
}
