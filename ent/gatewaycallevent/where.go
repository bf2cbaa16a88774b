// Code generated by ent, DO NOT EDIT.

package gatewaycallevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldOperation, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldSuccess, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldStatus, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldErrorKind, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldTimestamp, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldContainsFold(FieldOperation, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldSuccess, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v int) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldStatus, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldContainsFold(FieldErrorKind, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GatewayCallEvent) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GatewayCallEvent) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GatewayCallEvent) predicate.GatewayCallEvent {
	return predicate.GatewayCallEvent(sql.NotPredicates(p))
}
