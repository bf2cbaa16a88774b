// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// ReviewID applies equality check predicate on the "review_id" field. It's identical to ReviewIDEQ.
func ReviewID(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReviewID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldAction, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCorrect, v))
}

// Reinforced applies equality check predicate on the "reinforced" field. It's identical to ReinforcedEQ.
func Reinforced(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReinforced, v))
}

// ReviewedCount applies equality check predicate on the "reviewed_count" field. It's identical to ReviewedCountEQ.
func ReviewedCount(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReviewedCount, v))
}

// ReinforcedCount applies equality check predicate on the "reinforced_count" field. It's identical to ReinforcedCountEQ.
func ReinforcedCount(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReinforcedCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ReviewIDEQ applies the EQ predicate on the "review_id" field.
func ReviewIDEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReviewID, v))
}

// ReviewIDNEQ applies the NEQ predicate on the "review_id" field.
func ReviewIDNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldReviewID, v))
}

// ReviewIDIn applies the In predicate on the "review_id" field.
func ReviewIDIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldReviewID, vs...))
}

// ReviewIDNotIn applies the NotIn predicate on the "review_id" field.
func ReviewIDNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldReviewID, vs...))
}

// ReviewIDGT applies the GT predicate on the "review_id" field.
func ReviewIDGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldReviewID, v))
}

// ReviewIDGTE applies the GTE predicate on the "review_id" field.
func ReviewIDGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldReviewID, v))
}

// ReviewIDLT applies the LT predicate on the "review_id" field.
func ReviewIDLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldReviewID, v))
}

// ReviewIDLTE applies the LTE predicate on the "review_id" field.
func ReviewIDLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldReviewID, v))
}

// ReviewIDContains applies the Contains predicate on the "review_id" field.
func ReviewIDContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldReviewID, v))
}

// ReviewIDHasPrefix applies the HasPrefix predicate on the "review_id" field.
func ReviewIDHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldReviewID, v))
}

// ReviewIDHasSuffix applies the HasSuffix predicate on the "review_id" field.
func ReviewIDHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldReviewID, v))
}

// ReviewIDEqualFold applies the EqualFold predicate on the "review_id" field.
func ReviewIDEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldReviewID, v))
}

// ReviewIDContainsFold applies the ContainsFold predicate on the "review_id" field.
func ReviewIDContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldReviewID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldContainsFold(FieldAction, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldCorrect, v))
}

// ReinforcedEQ applies the EQ predicate on the "reinforced" field.
func ReinforcedEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReinforced, v))
}

// ReinforcedNEQ applies the NEQ predicate on the "reinforced" field.
func ReinforcedNEQ(v bool) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldReinforced, v))
}

// ReviewedCountEQ applies the EQ predicate on the "reviewed_count" field.
func ReviewedCountEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReviewedCount, v))
}

// ReviewedCountNEQ applies the NEQ predicate on the "reviewed_count" field.
func ReviewedCountNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldReviewedCount, v))
}

// ReviewedCountIn applies the In predicate on the "reviewed_count" field.
func ReviewedCountIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldReviewedCount, vs...))
}

// ReviewedCountNotIn applies the NotIn predicate on the "reviewed_count" field.
func ReviewedCountNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldReviewedCount, vs...))
}

// ReviewedCountGT applies the GT predicate on the "reviewed_count" field.
func ReviewedCountGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldReviewedCount, v))
}

// ReviewedCountGTE applies the GTE predicate on the "reviewed_count" field.
func ReviewedCountGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldReviewedCount, v))
}

// ReviewedCountLT applies the LT predicate on the "reviewed_count" field.
func ReviewedCountLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldReviewedCount, v))
}

// ReviewedCountLTE applies the LTE predicate on the "reviewed_count" field.
func ReviewedCountLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldReviewedCount, v))
}

// ReinforcedCountEQ applies the EQ predicate on the "reinforced_count" field.
func ReinforcedCountEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldEQ(FieldReinforcedCount, v))
}

// ReinforcedCountNEQ applies the NEQ predicate on the "reinforced_count" field.
func ReinforcedCountNEQ(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNEQ(FieldReinforcedCount, v))
}

// ReinforcedCountIn applies the In predicate on the "reinforced_count" field.
func ReinforcedCountIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldIn(FieldReinforcedCount, vs...))
}

// ReinforcedCountNotIn applies the NotIn predicate on the "reinforced_count" field.
func ReinforcedCountNotIn(vs ...int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldNotIn(FieldReinforcedCount, vs...))
}

// ReinforcedCountGT applies the GT predicate on the "reinforced_count" field.
func ReinforcedCountGT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGT(FieldReinforcedCount, v))
}

// ReinforcedCountGTE applies the GTE predicate on the "reinforced_count" field.
func ReinforcedCountGTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldGTE(FieldReinforcedCount, v))
}

// ReinforcedCountLT applies the LT predicate on the "reinforced_count" field.
func ReinforcedCountLT(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLT(FieldReinforcedCount, v))
}

// ReinforcedCountLTE applies the LTE predicate on the "reinforced_count" field.
func ReinforcedCountLTE(v int) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.FieldLTE(FieldReinforcedCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewEvent) predicate.ReviewEvent {
	return predicate.ReviewEvent(sql.NotPredicates(p))
}
