package concepts

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Python instructor writing a short self-contained lesson.

Rules:
- Explain one concept: what it is, when to use it, and the common pitfalls.
- The example code must be short, runnable as-is, and demonstrate the concept
  directly. No placeholder comments like "your code here".
- The practice exercise should be solvable with only the lesson's content.
- Match depth to the learner's skill level. For beginners define every term;
  for advanced learners cover internals and edge cases.`

// buildUserMessage constructs the user message for one lesson request.
func buildUserMessage(input LessonInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Concept: %s\n", input.Concept)
	if c, ok := Find(input.Concept); ok {
		fmt.Fprintf(&b, "Scope: %s\n", c.Description)
	}
	fmt.Fprintf(&b, "Learner skill level: %s\n", input.Level)

	return b.String()
}
