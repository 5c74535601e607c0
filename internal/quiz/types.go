package quiz

import (
	"context"

	"github.com/abhisek/pylearn/internal/tutor"
)

// Question is a single multiple-choice quiz item.
type Question struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options are the answer choices. Always exactly 4.
	Options []string

	// Correct is the index into Options of the right answer.
	Correct int

	// Explanation says why the correct answer is right.
	Explanation string

	// Topic the question covers, e.g. "Functions".
	Topic string

	// Level the question targets.
	Level tutor.SkillLevel

	// Generated is true when the question came from the LLM rather
	// than the built-in bank.
	Generated bool
}

// GenerateInput carries the context for generating one question.
type GenerateInput struct {
	Topic string
	Level tutor.SkillLevel

	// PriorQuestions are question texts already asked this session,
	// passed to the generator so it avoids repeats.
	PriorQuestions []string
}

// Generator produces quiz questions.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
