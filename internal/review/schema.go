package review

import "github.com/abhisek/pylearn/internal/llm"

// ReviewSchema defines the JSON schema for code review responses.
var ReviewSchema = &llm.Schema{
	Name:        "code-review",
	Description: "A structured review of a learner's Python code",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentence overall assessment",
			},
			"strengths": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Things the code does well. At least one entry.",
			},
			"issues": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"severity": map[string]any{
							"type":        "string",
							"enum":        []any{"bug", "style", "clarity"},
							"description": "bug: wrong behavior. style: PEP 8. clarity: readability.",
						},
						"message": map[string]any{
							"type":        "string",
							"description": "What is wrong and how to fix it",
						},
					},
					"required":             []any{"severity", "message"},
					"additionalProperties": false,
				},
				"description": "Problems found, most severe first. Empty if the code is clean.",
			},
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Improvements beyond the issues, e.g. more idiomatic constructs",
			},
			"rating": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"maximum":     5,
				"description": "Overall score from 1 (needs work) to 5 (excellent)",
			},
		},
		"required":             []any{"summary", "strengths", "issues", "suggestions", "rating"},
		"additionalProperties": false,
	},
}
