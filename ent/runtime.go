// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
	"github.com/abhisek/skilldrill/ent/reviewevent"
	"github.com/abhisek/skilldrill/ent/schema"
	"github.com/abhisek/skilldrill/ent/sessionevent"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gatewaycalleventMixin := schema.GatewayCallEvent{}.Mixin()
	gatewaycalleventMixinFields0 := gatewaycalleventMixin[0].Fields()
	_ = gatewaycalleventMixinFields0
	gatewaycalleventFields := schema.GatewayCallEvent{}.Fields()
	_ = gatewaycalleventFields
	// gatewaycalleventDescTimestamp is the schema descriptor for timestamp field.
	gatewaycalleventDescTimestamp := gatewaycalleventMixinFields0[1].Descriptor()
	// gatewaycallevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gatewaycallevent.DefaultTimestamp = gatewaycalleventDescTimestamp.Default.(func() time.Time)
	// gatewaycalleventDescOperation is the schema descriptor for operation field.
	gatewaycalleventDescOperation := gatewaycalleventFields[0].Descriptor()
	// gatewaycallevent.OperationValidator is a validator for the "operation" field. It is called by the builders before save.
	gatewaycallevent.OperationValidator = gatewaycalleventDescOperation.Validators[0].(func(string) error)
	// gatewaycalleventDescStatus is the schema descriptor for status field.
	gatewaycalleventDescStatus := gatewaycalleventFields[2].Descriptor()
	// gatewaycallevent.DefaultStatus holds the default value on creation for the status field.
	gatewaycallevent.DefaultStatus = gatewaycalleventDescStatus.Default.(int)
	// gatewaycalleventDescErrorKind is the schema descriptor for error_kind field.
	gatewaycalleventDescErrorKind := gatewaycalleventFields[3].Descriptor()
	// gatewaycallevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	gatewaycallevent.DefaultErrorKind = gatewaycalleventDescErrorKind.Default.(string)
	// gatewaycalleventDescLatencyMs is the schema descriptor for latency_ms field.
	gatewaycalleventDescLatencyMs := gatewaycalleventFields[4].Descriptor()
	// gatewaycallevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	gatewaycallevent.DefaultLatencyMs = gatewaycalleventDescLatencyMs.Default.(int64)
	readingsnapshotFields := schema.ReadingSnapshot{}.Fields()
	_ = readingsnapshotFields
	// readingsnapshotDescTimestamp is the schema descriptor for timestamp field.
	readingsnapshotDescTimestamp := readingsnapshotFields[1].Descriptor()
	// readingsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	readingsnapshot.DefaultTimestamp = readingsnapshotDescTimestamp.Default.(func() time.Time)
	// readingsnapshotDescUnreadCount is the schema descriptor for unread_count field.
	readingsnapshotDescUnreadCount := readingsnapshotFields[2].Descriptor()
	// readingsnapshot.DefaultUnreadCount holds the default value on creation for the unread_count field.
	readingsnapshot.DefaultUnreadCount = readingsnapshotDescUnreadCount.Default.(int)
	// readingsnapshotDescHighPriorityCount is the schema descriptor for high_priority_count field.
	readingsnapshotDescHighPriorityCount := readingsnapshotFields[3].Descriptor()
	// readingsnapshot.DefaultHighPriorityCount holds the default value on creation for the high_priority_count field.
	readingsnapshot.DefaultHighPriorityCount = readingsnapshotDescHighPriorityCount.Default.(int)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescReviewID is the schema descriptor for review_id field.
	revieweventDescReviewID := revieweventFields[1].Descriptor()
	// reviewevent.DefaultReviewID holds the default value on creation for the review_id field.
	reviewevent.DefaultReviewID = revieweventDescReviewID.Default.(string)
	// revieweventDescAction is the schema descriptor for action field.
	revieweventDescAction := revieweventFields[2].Descriptor()
	// reviewevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	reviewevent.ActionValidator = revieweventDescAction.Validators[0].(func(string) error)
	// revieweventDescCorrect is the schema descriptor for correct field.
	revieweventDescCorrect := revieweventFields[3].Descriptor()
	// reviewevent.DefaultCorrect holds the default value on creation for the correct field.
	reviewevent.DefaultCorrect = revieweventDescCorrect.Default.(bool)
	// revieweventDescReinforced is the schema descriptor for reinforced field.
	revieweventDescReinforced := revieweventFields[4].Descriptor()
	// reviewevent.DefaultReinforced holds the default value on creation for the reinforced field.
	reviewevent.DefaultReinforced = revieweventDescReinforced.Default.(bool)
	// revieweventDescReviewedCount is the schema descriptor for reviewed_count field.
	revieweventDescReviewedCount := revieweventFields[5].Descriptor()
	// reviewevent.DefaultReviewedCount holds the default value on creation for the reviewed_count field.
	reviewevent.DefaultReviewedCount = revieweventDescReviewedCount.Default.(int)
	// revieweventDescReinforcedCount is the schema descriptor for reinforced_count field.
	revieweventDescReinforcedCount := revieweventFields[6].Descriptor()
	// reviewevent.DefaultReinforcedCount holds the default value on creation for the reinforced_count field.
	reviewevent.DefaultReinforcedCount = revieweventDescReinforcedCount.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultKind holds the default value on creation for the kind field.
	sessionevent.DefaultKind = sessioneventDescKind.Default.(string)
	// sessioneventDescStrategy is the schema descriptor for strategy field.
	sessioneventDescStrategy := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultStrategy holds the default value on creation for the strategy field.
	sessionevent.DefaultStrategy = sessioneventDescStrategy.Default.(string)
	// sessioneventDescResumed is the schema descriptor for resumed field.
	sessioneventDescResumed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultResumed holds the default value on creation for the resumed field.
	sessionevent.DefaultResumed = sessioneventDescResumed.Default.(bool)
	// sessioneventDescVersion is the schema descriptor for version field.
	sessioneventDescVersion := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultVersion holds the default value on creation for the version field.
	sessionevent.DefaultVersion = sessioneventDescVersion.Default.(int64)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescCorrectCount is the schema descriptor for correct_count field.
	sessioneventDescCorrectCount := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	sessionevent.DefaultCorrectCount = sessioneventDescCorrectCount.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescTimestamp is the schema descriptor for timestamp field.
	submissioneventDescTimestamp := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	submissionevent.DefaultTimestamp = submissioneventDescTimestamp.Default.(func() time.Time)
	// submissioneventDescSessionID is the schema descriptor for session_id field.
	submissioneventDescSessionID := submissioneventFields[0].Descriptor()
	// submissionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	submissionevent.SessionIDValidator = submissioneventDescSessionID.Validators[0].(func(string) error)
	// submissioneventDescQuestionID is the schema descriptor for question_id field.
	submissioneventDescQuestionID := submissioneventFields[1].Descriptor()
	// submissionevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	submissionevent.QuestionIDValidator = submissioneventDescQuestionID.Validators[0].(func(string) error)
	// submissioneventDescIdempotencyKey is the schema descriptor for idempotency_key field.
	submissioneventDescIdempotencyKey := submissioneventFields[2].Descriptor()
	// submissionevent.IdempotencyKeyValidator is a validator for the "idempotency_key" field. It is called by the builders before save.
	submissionevent.IdempotencyKeyValidator = submissioneventDescIdempotencyKey.Validators[0].(func(string) error)
	// submissioneventDescPhase is the schema descriptor for phase field.
	submissioneventDescPhase := submissioneventFields[3].Descriptor()
	// submissionevent.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	submissionevent.PhaseValidator = submissioneventDescPhase.Validators[0].(func(string) error)
	// submissioneventDescSelectedOption is the schema descriptor for selected_option field.
	submissioneventDescSelectedOption := submissioneventFields[4].Descriptor()
	// submissionevent.DefaultSelectedOption holds the default value on creation for the selected_option field.
	submissionevent.DefaultSelectedOption = submissioneventDescSelectedOption.Default.(string)
	// submissioneventDescCorrect is the schema descriptor for correct field.
	submissioneventDescCorrect := submissioneventFields[5].Descriptor()
	// submissionevent.DefaultCorrect holds the default value on creation for the correct field.
	submissionevent.DefaultCorrect = submissioneventDescCorrect.Default.(bool)
	// submissioneventDescAnswered is the schema descriptor for answered field.
	submissioneventDescAnswered := submissioneventFields[6].Descriptor()
	// submissionevent.DefaultAnswered holds the default value on creation for the answered field.
	submissionevent.DefaultAnswered = submissioneventDescAnswered.Default.(int)
	// submissioneventDescCorrectCount is the schema descriptor for correct_count field.
	submissioneventDescCorrectCount := submissioneventFields[7].Descriptor()
	// submissionevent.DefaultCorrectCount holds the default value on creation for the correct_count field.
	submissionevent.DefaultCorrectCount = submissioneventDescCorrectCount.Default.(int)
	// submissioneventDescVersion is the schema descriptor for version field.
	submissioneventDescVersion := submissioneventFields[8].Descriptor()
	// submissionevent.DefaultVersion holds the default value on creation for the version field.
	submissionevent.DefaultVersion = submissioneventDescVersion.Default.(int64)
	// submissioneventDescErrorKind is the schema descriptor for error_kind field.
	submissioneventDescErrorKind := submissioneventFields[9].Descriptor()
	// submissionevent.DefaultErrorKind holds the default value on creation for the error_kind field.
	submissionevent.DefaultErrorKind = submissioneventDescErrorKind.Default.(string)
}
