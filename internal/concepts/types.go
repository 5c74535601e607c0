package concepts

import "github.com/abhisek/pylearn/internal/tutor"

// Lesson is an LLM-generated explainer for one concept.
type Lesson struct {
	Concept     string
	Title       string
	Explanation string

	// ExampleCode is a short runnable Python example.
	ExampleCode string

	// Practice is a small exercise for the learner to try on their own.
	Practice string
}

// LessonInput holds the context for generating one lesson.
type LessonInput struct {
	// Concept is the topic to teach. Usually a catalog entry name but
	// free-form topics are accepted.
	Concept string

	Level tutor.SkillLevel
}
