package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records a single conversation turn in any mode.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("mode").
			NotEmpty().
			Comment("chat, quiz, code-review or concept-lesson"),
		field.String("role").
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content").
			Comment("Turn text as sent or received"),
		field.String("skill_level").
			Default("beginner").
			Comment("Skill level active for this turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
	}
}
