// Code generated by ent, DO NOT EDIT.

package submissionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// IdempotencyKey applies equality check predicate on the "idempotency_key" field. It's identical to IdempotencyKeyEQ.
func IdempotencyKey(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldPhase, v))
}

// SelectedOption applies equality check predicate on the "selected_option" field. It's identical to SelectedOptionEQ.
func SelectedOption(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSelectedOption, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrect, v))
}

// Answered applies equality check predicate on the "answered" field. It's identical to AnsweredEQ.
func Answered(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldAnswered, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldVersion, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldErrorKind, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// IdempotencyKeyEQ applies the EQ predicate on the "idempotency_key" field.
func IdempotencyKeyEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyNEQ applies the NEQ predicate on the "idempotency_key" field.
func IdempotencyKeyNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldIdempotencyKey, v))
}

// IdempotencyKeyIn applies the In predicate on the "idempotency_key" field.
func IdempotencyKeyIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyNotIn applies the NotIn predicate on the "idempotency_key" field.
func IdempotencyKeyNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldIdempotencyKey, vs...))
}

// IdempotencyKeyGT applies the GT predicate on the "idempotency_key" field.
func IdempotencyKeyGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldIdempotencyKey, v))
}

// IdempotencyKeyGTE applies the GTE predicate on the "idempotency_key" field.
func IdempotencyKeyGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyLT applies the LT predicate on the "idempotency_key" field.
func IdempotencyKeyLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldIdempotencyKey, v))
}

// IdempotencyKeyLTE applies the LTE predicate on the "idempotency_key" field.
func IdempotencyKeyLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldIdempotencyKey, v))
}

// IdempotencyKeyContains applies the Contains predicate on the "idempotency_key" field.
func IdempotencyKeyContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasPrefix applies the HasPrefix predicate on the "idempotency_key" field.
func IdempotencyKeyHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldIdempotencyKey, v))
}

// IdempotencyKeyHasSuffix applies the HasSuffix predicate on the "idempotency_key" field.
func IdempotencyKeyHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldIdempotencyKey, v))
}

// IdempotencyKeyEqualFold applies the EqualFold predicate on the "idempotency_key" field.
func IdempotencyKeyEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldIdempotencyKey, v))
}

// IdempotencyKeyContainsFold applies the ContainsFold predicate on the "idempotency_key" field.
func IdempotencyKeyContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldIdempotencyKey, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldPhase, v))
}

// SelectedOptionEQ applies the EQ predicate on the "selected_option" field.
func SelectedOptionEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldSelectedOption, v))
}

// SelectedOptionNEQ applies the NEQ predicate on the "selected_option" field.
func SelectedOptionNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldSelectedOption, v))
}

// SelectedOptionIn applies the In predicate on the "selected_option" field.
func SelectedOptionIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldSelectedOption, vs...))
}

// SelectedOptionNotIn applies the NotIn predicate on the "selected_option" field.
func SelectedOptionNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldSelectedOption, vs...))
}

// SelectedOptionGT applies the GT predicate on the "selected_option" field.
func SelectedOptionGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldSelectedOption, v))
}

// SelectedOptionGTE applies the GTE predicate on the "selected_option" field.
func SelectedOptionGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldSelectedOption, v))
}

// SelectedOptionLT applies the LT predicate on the "selected_option" field.
func SelectedOptionLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldSelectedOption, v))
}

// SelectedOptionLTE applies the LTE predicate on the "selected_option" field.
func SelectedOptionLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldSelectedOption, v))
}

// SelectedOptionContains applies the Contains predicate on the "selected_option" field.
func SelectedOptionContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldSelectedOption, v))
}

// SelectedOptionHasPrefix applies the HasPrefix predicate on the "selected_option" field.
func SelectedOptionHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldSelectedOption, v))
}

// SelectedOptionHasSuffix applies the HasSuffix predicate on the "selected_option" field.
func SelectedOptionHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldSelectedOption, v))
}

// SelectedOptionEqualFold applies the EqualFold predicate on the "selected_option" field.
func SelectedOptionEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldSelectedOption, v))
}

// SelectedOptionContainsFold applies the ContainsFold predicate on the "selected_option" field.
func SelectedOptionContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldSelectedOption, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCorrect, v))
}

// AnsweredEQ applies the EQ predicate on the "answered" field.
func AnsweredEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldAnswered, v))
}

// AnsweredNEQ applies the NEQ predicate on the "answered" field.
func AnsweredNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldAnswered, v))
}

// AnsweredIn applies the In predicate on the "answered" field.
func AnsweredIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldAnswered, vs...))
}

// AnsweredNotIn applies the NotIn predicate on the "answered" field.
func AnsweredNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldAnswered, vs...))
}

// AnsweredGT applies the GT predicate on the "answered" field.
func AnsweredGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldAnswered, v))
}

// AnsweredGTE applies the GTE predicate on the "answered" field.
func AnsweredGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldAnswered, v))
}

// AnsweredLT applies the LT predicate on the "answered" field.
func AnsweredLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldAnswered, v))
}

// AnsweredLTE applies the LTE predicate on the "answered" field.
func AnsweredLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldAnswered, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldVersion, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.FieldContainsFold(FieldErrorKind, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionEvent) predicate.SubmissionEvent {
	return predicate.SubmissionEvent(sql.NotPredicates(p))
}
