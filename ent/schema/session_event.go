package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one lifecycle transition of an assessment session
// as the client observed it.
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
			Comment("Platform session UUID"),
		field.String("action").
			NotEmpty().
			Comment("start, pause, resume, end, conflict or reconcile"),
		field.String("kind").
			Default("").
			Comment("Session kind"),
		field.String("strategy").
			Default("").
			Comment("Adaptive strategy label"),
		field.Bool("resumed").
			Default(false).
			Comment("Whether the start attached to a live session"),
		field.Int64("version").
			Default(0).
			Comment("Server version after the transition"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered at event time"),
		field.Int("correct_count").
			Default(0).
			Comment("Correct answers at event time"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
