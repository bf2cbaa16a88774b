// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
)

// GatewayCallEvent is the model entity for the GatewayCallEvent schema.
type GatewayCallEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Logical endpoint name: StartSession, SubmitAnswer, ...
	Operation string `json:"operation,omitempty"`
	// Whether the call succeeded
	Success bool `json:"success,omitempty"`
	// HTTP status, 0 when the request never completed
	Status int `json:"status,omitempty"`
	// Normalized failure classification if failed
	ErrorKind string `json:"error_kind,omitempty"`
	// Wall-clock time for the call
	LatencyMs    int64 `json:"latency_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GatewayCallEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gatewaycallevent.FieldSuccess:
			values[i] = new(sql.NullBool)
		case gatewaycallevent.FieldID, gatewaycallevent.FieldSequence, gatewaycallevent.FieldStatus, gatewaycallevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case gatewaycallevent.FieldOperation, gatewaycallevent.FieldErrorKind:
			values[i] = new(sql.NullString)
		case gatewaycallevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GatewayCallEvent fields.
func (_m *GatewayCallEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gatewaycallevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gatewaycallevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case gatewaycallevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gatewaycallevent.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case gatewaycallevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case gatewaycallevent.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = int(value.Int64)
			}
		case gatewaycallevent.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = value.String
			}
		case gatewaycallevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GatewayCallEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GatewayCallEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GatewayCallEvent.
// Note that you need to call GatewayCallEvent.Unwrap() before calling this method if this GatewayCallEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GatewayCallEvent) Update() *GatewayCallEventUpdateOne {
	return NewGatewayCallEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GatewayCallEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GatewayCallEvent) Unwrap() *GatewayCallEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GatewayCallEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GatewayCallEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GatewayCallEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error_kind=")
	builder.WriteString(_m.ErrorKind)
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteByte(')')
	return builder.String()
}

// GatewayCallEvents is a parsable slice of GatewayCallEvent.
type GatewayCallEvents []*GatewayCallEvent
