package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReadingSnapshot persists the last good reading-stats fetch, so the
// unread badge has something to show before the first poll of a new
// process completes.
type ReadingSnapshot struct {
	ent.Schema
}

func (ReadingSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of capture"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the stats were fetched"),
		field.Int("unread_count").
			Default(0).
			Comment("Unread materials reported by the platform"),
		field.Int("high_priority_count").
			Default(0).
			Comment("High-priority subset of unread_count"),
	}
}

func (ReadingSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
