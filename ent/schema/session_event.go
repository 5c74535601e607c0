package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end) per mode.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("mode").
			NotEmpty().
			Comment("chat, quiz, code-review or concept-lesson"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("skill_level").
			Default("beginner").
			Comment("Skill level selected when the session started"),
		field.Int("turns").
			Default(0).
			Comment("Total turns exchanged (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("mode"),
		index.Fields("action"),
	}
}
