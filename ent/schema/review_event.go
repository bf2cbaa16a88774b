package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records reinforcement-round progress for an ended session.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session whose misses are being reviewed"),
		field.String("review_id").
			Default("").
			Comment("Platform review UUID; empty before a round opens"),
		field.String("action").
			NotEmpty().
			Comment("offered, start, answer, skip, complete or dismiss"),
		field.Bool("correct").
			Default(false).
			Comment("Grading outcome (on answer only)"),
		field.Bool("reinforced").
			Default(false).
			Comment("Whether the answer reinforced a missed concept"),
		field.Int("reviewed_count").
			Default(0).
			Comment("Questions reviewed at event time"),
		field.Int("reinforced_count").
			Default(0).
			Comment("Reinforcements at event time"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("review_id"),
		index.Fields("action"),
	}
}
