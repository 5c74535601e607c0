package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one answered quiz question.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a quiz session"),
		field.String("topic").
			NotEmpty().
			Comment("Quiz topic, e.g. Functions"),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate or advanced"),
		field.Text("question_text").
			Comment("Question as shown to the learner"),
		field.String("correct_answer").
			Comment("Text of the correct option"),
		field.String("chosen_answer").
			Comment("Text of the option the learner picked"),
		field.Bool("correct").
			Comment("Whether the learner picked the correct option"),
		field.Bool("generated").
			Default(false).
			Comment("True if the question came from the LLM rather than the bank"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("difficulty"),
		index.Fields("correct"),
	}
}
