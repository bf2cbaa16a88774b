// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
)

// ReadingSnapshot is the model entity for the ReadingSnapshot schema.
type ReadingSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Event sequence number at the time of capture
	Sequence int64 `json:"sequence,omitempty"`
	// When the stats were fetched
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Unread materials reported by the platform
	UnreadCount int `json:"unread_count,omitempty"`
	// High-priority subset of unread_count
	HighPriorityCount int `json:"high_priority_count,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReadingSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case readingsnapshot.FieldID, readingsnapshot.FieldSequence, readingsnapshot.FieldUnreadCount, readingsnapshot.FieldHighPriorityCount:
			values[i] = new(sql.NullInt64)
		case readingsnapshot.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReadingSnapshot fields.
func (_m *ReadingSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case readingsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case readingsnapshot.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case readingsnapshot.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case readingsnapshot.FieldUnreadCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unread_count", values[i])
			} else if value.Valid {
				_m.UnreadCount = int(value.Int64)
			}
		case readingsnapshot.FieldHighPriorityCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field high_priority_count", values[i])
			} else if value.Valid {
				_m.HighPriorityCount = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReadingSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *ReadingSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReadingSnapshot.
// Note that you need to call ReadingSnapshot.Unwrap() before calling this method if this ReadingSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReadingSnapshot) Update() *ReadingSnapshotUpdateOne {
	return NewReadingSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReadingSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReadingSnapshot) Unwrap() *ReadingSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReadingSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReadingSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("ReadingSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("unread_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnreadCount))
	builder.WriteString(", ")
	builder.WriteString("high_priority_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HighPriorityCount))
	builder.WriteByte(')')
	return builder.String()
}

// ReadingSnapshots is a parsable slice of ReadingSnapshot.
type ReadingSnapshots []*ReadingSnapshot
