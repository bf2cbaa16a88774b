package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubmissionEvent records the dispatch lifecycle of one answer submission.
// The idempotency key ties a dispatched row to its resolution, so after a
// crash the client can tell which keys were minted but never resolved and
// keep reusing them instead of minting duplicates.
type SubmissionEvent struct {
	ent.Schema
}

func (SubmissionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SubmissionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Platform session UUID"),
		field.String("question_id").
			NotEmpty().
			Comment("Question the submission answers"),
		field.String("idempotency_key").
			NotEmpty().
			Comment("UUID shared by all attempts of one logical submission"),
		field.String("phase").
			NotEmpty().
			Comment("dispatched, resolved or failed"),
		field.String("selected_option").
			Default("").
			Comment("Option the learner chose"),
		field.Bool("correct").
			Default(false).
			Comment("Grading outcome (on resolved only)"),
		field.Int("answered").
			Default(0).
			Comment("Server-reported answered count (on resolved only)"),
		field.Int("correct_count").
			Default(0).
			Comment("Server-reported correct count (on resolved only)"),
		field.Int64("version").
			Default(0).
			Comment("Server version after grading (on resolved only)"),
		field.String("error_kind").
			Default("").
			Comment("Failure classification (on failed only)"),
	}
}

func (SubmissionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("idempotency_key"),
		index.Fields("session_id", "question_id"),
	}
}
