package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Python instructor writing multiple-choice quiz questions.

Rules:
- Generate a single question appropriate for the given topic and skill level.
- Provide exactly 4 options where exactly one is correct. Distractors should
  reflect common misconceptions, not random values.
- Keep code snippets short and runnable. Use real Python output in options,
  e.g. "<class 'int'>" not "int".
- The explanation should say in one or two sentences why the answer is correct.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Skill level: %s\n", input.Level)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior question texts for the prompt, keeping only the
// most recent max entries.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, strings.ReplaceAll(q, "\n", " "))
	}
	return strings.TrimRight(b.String(), "\n")
}
