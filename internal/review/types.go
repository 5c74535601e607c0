package review

import "github.com/abhisek/pylearn/internal/tutor"

// Input holds the code submission to review.
type Input struct {
	Code  string
	Level tutor.SkillLevel
}

// Review is the structured result of one code review.
type Review struct {
	// Summary is a short overall assessment.
	Summary string

	// Strengths lists things the code does well. Never empty; the
	// reviewer is asked to find at least one.
	Strengths []string

	// Issues lists problems found, most severe first.
	Issues []Issue

	// Suggestions lists concrete improvements beyond the issues.
	Suggestions []string

	// Rating is an overall score from 1 (needs work) to 5 (excellent).
	Rating int
}

// Issue is a single problem found in the submitted code.
type Issue struct {
	// Severity is one of "bug", "style", "clarity".
	Severity string

	// Message describes the problem and how to fix it.
	Message string
}
