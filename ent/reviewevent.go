// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/reviewevent"
)

// ReviewEvent is the model entity for the ReviewEvent schema.
type ReviewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Session whose misses are being reviewed
	SessionID string `json:"session_id,omitempty"`
	// Platform review UUID; empty before a round opens
	ReviewID string `json:"review_id,omitempty"`
	// offered, start, answer, skip, complete or dismiss
	Action string `json:"action,omitempty"`
	// Grading outcome (on answer only)
	Correct bool `json:"correct,omitempty"`
	// Whether the answer reinforced a missed concept
	Reinforced bool `json:"reinforced,omitempty"`
	// Questions reviewed at event time
	ReviewedCount int `json:"reviewed_count,omitempty"`
	// Reinforcements at event time
	ReinforcedCount int `json:"reinforced_count,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldCorrect, reviewevent.FieldReinforced:
			values[i] = new(sql.NullBool)
		case reviewevent.FieldID, reviewevent.FieldSequence, reviewevent.FieldReviewedCount, reviewevent.FieldReinforcedCount:
			values[i] = new(sql.NullInt64)
		case reviewevent.FieldSessionID, reviewevent.FieldReviewID, reviewevent.FieldAction:
			values[i] = new(sql.NullString)
		case reviewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewEvent fields.
func (_m *ReviewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case reviewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case reviewevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case reviewevent.FieldReviewID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_id", values[i])
			} else if value.Valid {
				_m.ReviewID = value.String
			}
		case reviewevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case reviewevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case reviewevent.FieldReinforced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reinforced", values[i])
			} else if value.Valid {
				_m.Reinforced = value.Bool
			}
		case reviewevent.FieldReviewedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_count", values[i])
			} else if value.Valid {
				_m.ReviewedCount = int(value.Int64)
			}
		case reviewevent.FieldReinforcedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reinforced_count", values[i])
			} else if value.Valid {
				_m.ReinforcedCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewEvent.
// Note that you need to call ReviewEvent.Unwrap() before calling this method if this ReviewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewEvent) Update() *ReviewEventUpdateOne {
	return NewReviewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewEvent) Unwrap() *ReviewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewEvent(")
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
	builder.WriteString("review_id=")
	builder.WriteString(_m.ReviewID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("reinforced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reinforced))
	builder.WriteString(", ")
	builder.WriteString("reviewed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewedCount))
	builder.WriteString(", ")
	builder.WriteString("reinforced_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReinforcedCount))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewEvents is a parsable slice of ReviewEvent.
type ReviewEvents []*ReviewEvent
