package review

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Python code reviewer helping a learner improve.

Rules:
- Review the submitted code for correctness first, then PEP 8 style, then clarity.
- Report each problem as an issue with a severity: "bug" for wrong behavior,
  "style" for PEP 8 violations, "clarity" for hard-to-read constructs.
- Always find at least one genuine strength. Be encouraging but honest.
- Suggestions are for improvements beyond fixing issues, such as a more
  idiomatic construct or a simpler algorithm.
- Match the depth of feedback to the learner's skill level.`

// buildUserMessage constructs the user message for one review request.
func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Learner skill level: %s\n\n", input.Level)
	b.WriteString("Code to review:\n\n```python\n")
	b.WriteString(input.Code)
	if !strings.HasSuffix(input.Code, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```")

	return b.String()
}
