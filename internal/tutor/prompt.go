package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/pylearn/internal/llm"
)

// Prompt construction for each mode. System prompts are static per mode;
// the skill level and user input are interpolated into fixed templates.

const chatSystemPrompt = `You are a friendly and patient Python programming tutor.
Answer the learner's questions about Python clearly and accurately.
Use short runnable code examples where they help.
If the learner is off topic, gently steer them back to Python.
Format code in fenced code blocks.`

const quizSystemPrompt = `You are a Python quiz master.
Write one multiple-choice Python question on the requested topic.
The question must have exactly four options with one correct answer.
Include a one-sentence explanation of why the answer is correct.`

const reviewSystemPrompt = `You are a Python code reviewer for a learner.
Review the submitted code for correctness, style (PEP 8), and clarity.
Point out bugs first, then style issues, then possible improvements.
Be encouraging. Mention at least one thing the code does well.`

const lessonSystemPrompt = `You are a Python instructor writing a short lesson.
Explain the requested concept with a definition, a worked code example,
and one small practice exercise the learner can try on their own.`

var systemPrompts = map[Mode]string{
	ModeChat:          chatSystemPrompt,
	ModeQuiz:          quizSystemPrompt,
	ModeCodeReview:    reviewSystemPrompt,
	ModeConceptLesson: lessonSystemPrompt,
}

var levelGuidance = map[SkillLevel]string{
	LevelBeginner:     "The learner is a beginner. Avoid jargon, explain every term, and keep examples very short.",
	LevelIntermediate: "The learner is at an intermediate level. Assume they know the basics; focus on idiomatic Python.",
	LevelAdvanced:     "The learner is advanced. Be concise and cover edge cases, performance, and internals where relevant.",
}

// purposes maps each mode to the LLM request purpose recorded in events.
var purposes = map[Mode]string{
	ModeChat:          "chat",
	ModeQuiz:          "quiz-gen",
	ModeCodeReview:    "code-review",
	ModeConceptLesson: "lesson",
}

// buildSystemPrompt composes the mode's static prompt with level guidance.
func buildSystemPrompt(mode Mode, level SkillLevel) string {
	var b strings.Builder
	b.WriteString(systemPrompts[mode])
	b.WriteString("\n\n")
	b.WriteString(levelGuidance[level])
	return b.String()
}

// buildMessages produces the message list for one submission. Chat replays
// up to maxHistory prior turns so the model sees the conversation; the other
// modes are single-turn and send only the current input.
func buildMessages(mode Mode, history []Turn, userText string, maxHistory int) []llm.Message {
	var messages []llm.Message

	if mode == ModeChat {
		turns := history
		if len(turns) > maxHistory {
			turns = turns[len(turns)-maxHistory:]
		}
		for _, t := range turns {
			role := llm.RoleUser
			if t.Role == RoleAssistant {
				role = llm.RoleAssistant
			}
			messages = append(messages, llm.Message{Role: role, Content: t.Text})
		}
	}

	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: buildUserMessage(mode, userText),
	})
	return messages
}

// buildUserMessage wraps the raw input in the mode's framing.
func buildUserMessage(mode Mode, userText string) string {
	switch mode {
	case ModeQuiz:
		return fmt.Sprintf("Write one quiz question about: %s", userText)
	case ModeCodeReview:
		var b strings.Builder
		b.WriteString("Review this Python code:\n\n```python\n")
		b.WriteString(userText)
		if !strings.HasSuffix(userText, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```")
		return b.String()
	case ModeConceptLesson:
		return fmt.Sprintf("Teach me about: %s", userText)
	default:
		return userText
	}
}
