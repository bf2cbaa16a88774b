// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

// SubmissionEvent is the model entity for the SubmissionEvent schema.
type SubmissionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Platform session UUID
	SessionID string `json:"session_id,omitempty"`
	// Question the submission answers
	QuestionID string `json:"question_id,omitempty"`
	// UUID shared by all attempts of one logical submission
	IdempotencyKey string `json:"idempotency_key,omitempty"`
	// dispatched, resolved or failed
	Phase string `json:"phase,omitempty"`
	// Option the learner chose
	SelectedOption string `json:"selected_option,omitempty"`
	// Grading outcome (on resolved only)
	Correct bool `json:"correct,omitempty"`
	// Server-reported answered count (on resolved only)
	Answered int `json:"answered,omitempty"`
	// Server-reported correct count (on resolved only)
	CorrectCount int `json:"correct_count,omitempty"`
	// Server version after grading (on resolved only)
	Version int64 `json:"version,omitempty"`
	// Failure classification (on failed only)
	ErrorKind    string `json:"error_kind,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmissionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case submissionevent.FieldID, submissionevent.FieldSequence, submissionevent.FieldAnswered, submissionevent.FieldCorrectCount, submissionevent.FieldVersion:
			values[i] = new(sql.NullInt64)
		case submissionevent.FieldSessionID, submissionevent.FieldQuestionID, submissionevent.FieldIdempotencyKey, submissionevent.FieldPhase, submissionevent.FieldSelectedOption, submissionevent.FieldErrorKind:
			values[i] = new(sql.NullString)
		case submissionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmissionEvent fields.
func (_m *SubmissionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submissionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case submissionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case submissionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case submissionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case submissionevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case submissionevent.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = value.String
			}
		case submissionevent.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = value.String
			}
		case submissionevent.FieldSelectedOption:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field selected_option", values[i])
			} else if value.Valid {
				_m.SelectedOption = value.String
			}
		case submissionevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case submissionevent.FieldAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answered", values[i])
			} else if value.Valid {
				_m.Answered = int(value.Int64)
			}
		case submissionevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				_m.CorrectCount = int(value.Int64)
			}
		case submissionevent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case submissionevent.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmissionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SubmissionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubmissionEvent.
// Note that you need to call SubmissionEvent.Unwrap() before calling this method if this SubmissionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmissionEvent) Update() *SubmissionEventUpdateOne {
	return NewSubmissionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmissionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmissionEvent) Unwrap() *SubmissionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmissionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmissionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SubmissionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("idempotency_key=")
	builder.WriteString(_m.IdempotencyKey)
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(_m.Phase)
	builder.WriteString(", ")
	builder.WriteString("selected_option=")
	builder.WriteString(_m.SelectedOption)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answered))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteByte(')')
	return builder.String()
}

// SubmissionEvents is a parsable slice of SubmissionEvent.
type SubmissionEvents []*SubmissionEvent
