// Code generated by ent, DO NOT EDIT.

package readingsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// UnreadCount applies equality check predicate on the "unread_count" field. It's identical to UnreadCountEQ.
func UnreadCount(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldUnreadCount, v))
}

// HighPriorityCount applies equality check predicate on the "high_priority_count" field. It's identical to HighPriorityCountEQ.
func HighPriorityCount(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldHighPriorityCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLTE(FieldTimestamp, v))
}

// UnreadCountEQ applies the EQ predicate on the "unread_count" field.
func UnreadCountEQ(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldUnreadCount, v))
}

// UnreadCountNEQ applies the NEQ predicate on the "unread_count" field.
func UnreadCountNEQ(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNEQ(FieldUnreadCount, v))
}

// UnreadCountIn applies the In predicate on the "unread_count" field.
func UnreadCountIn(vs ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldIn(FieldUnreadCount, vs...))
}

// UnreadCountNotIn applies the NotIn predicate on the "unread_count" field.
func UnreadCountNotIn(vs ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNotIn(FieldUnreadCount, vs...))
}

// UnreadCountGT applies the GT predicate on the "unread_count" field.
func UnreadCountGT(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGT(FieldUnreadCount, v))
}

// UnreadCountGTE applies the GTE predicate on the "unread_count" field.
func UnreadCountGTE(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGTE(FieldUnreadCount, v))
}

// UnreadCountLT applies the LT predicate on the "unread_count" field.
func UnreadCountLT(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLT(FieldUnreadCount, v))
}

// UnreadCountLTE applies the LTE predicate on the "unread_count" field.
func UnreadCountLTE(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLTE(FieldUnreadCount, v))
}

// HighPriorityCountEQ applies the EQ predicate on the "high_priority_count" field.
func HighPriorityCountEQ(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldEQ(FieldHighPriorityCount, v))
}

// HighPriorityCountNEQ applies the NEQ predicate on the "high_priority_count" field.
func HighPriorityCountNEQ(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNEQ(FieldHighPriorityCount, v))
}

// HighPriorityCountIn applies the In predicate on the "high_priority_count" field.
func HighPriorityCountIn(vs ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldIn(FieldHighPriorityCount, vs...))
}

// HighPriorityCountNotIn applies the NotIn predicate on the "high_priority_count" field.
func HighPriorityCountNotIn(vs ...int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldNotIn(FieldHighPriorityCount, vs...))
}

// HighPriorityCountGT applies the GT predicate on the "high_priority_count" field.
func HighPriorityCountGT(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGT(FieldHighPriorityCount, v))
}

// HighPriorityCountGTE applies the GTE predicate on the "high_priority_count" field.
func HighPriorityCountGTE(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldGTE(FieldHighPriorityCount, v))
}

// HighPriorityCountLT applies the LT predicate on the "high_priority_count" field.
func HighPriorityCountLT(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLT(FieldHighPriorityCount, v))
}

// HighPriorityCountLTE applies the LTE predicate on the "high_priority_count" field.
func HighPriorityCountLTE(v int) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.FieldLTE(FieldHighPriorityCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReadingSnapshot) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReadingSnapshot) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReadingSnapshot) predicate.ReadingSnapshot {
	return predicate.ReadingSnapshot(sql.NotPredicates(p))
}
