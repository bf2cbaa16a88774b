package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GatewayCallEvent records every platform API call for debugging and
// offline inspection of what the client actually did.
type GatewayCallEvent struct {
	ent.Schema
}

func (GatewayCallEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GatewayCallEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("operation").
			NotEmpty().
			Comment("Logical endpoint name: StartSession, SubmitAnswer, ..."),
		field.Bool("success").
			Comment("Whether the call succeeded"),
		field.Int("status").
			Default(0).
			Comment("HTTP status, 0 when the request never completed"),
		field.String("error_kind").
			Default("").
			Comment("Normalized failure classification if failed"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
	}
}

func (GatewayCallEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation"),
		index.Fields("success"),
	}
}
