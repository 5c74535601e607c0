package concepts

import "github.com/abhisek/pylearn/internal/llm"

// LessonSchema defines the JSON schema for concept lesson responses.
var LessonSchema = &llm.Schema{
	Name:        "concept-lesson",
	Description: "A short Python lesson with explanation, example, and practice exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short lesson title",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "The concept explained in a few paragraphs, matched to the skill level",
			},
			"example_code": map[string]any{
				"type":        "string",
				"description": "A short runnable Python example demonstrating the concept. Code only, no fences.",
			},
			"practice": map[string]any{
				"type":        "string",
				"description": "One small exercise the learner can try on their own",
			},
		},
		"required":             []any{"title", "explanation", "example_code", "practice"},
		"additionalProperties": false,
	},
}
