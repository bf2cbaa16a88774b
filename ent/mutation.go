// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
	"github.com/abhisek/skilldrill/ent/predicate"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
	"github.com/abhisek/skilldrill/ent/reviewevent"
	"github.com/abhisek/skilldrill/ent/sessionevent"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGatewayCallEvent = "GatewayCallEvent"
	TypeReadingSnapshot  = "ReadingSnapshot"
	TypeReviewEvent      = "ReviewEvent"
	TypeSessionEvent     = "SessionEvent"
	TypeSubmissionEvent  = "SubmissionEvent"
)

// GatewayCallEventMutation represents an operation that mutates the GatewayCallEvent nodes in the graph.
type GatewayCallEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	operation     *string
	success       *bool
	status        *int
	addstatus     *int
	error_kind    *string
	latency_ms    *int64
	addlatency_ms *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GatewayCallEvent, error)
	predicates    []predicate.GatewayCallEvent
}

var _ ent.Mutation = (*GatewayCallEventMutation)(nil)

// gatewaycalleventOption allows management of the mutation configuration using functional options.
type gatewaycalleventOption func(*GatewayCallEventMutation)

// newGatewayCallEventMutation creates new mutation for the GatewayCallEvent entity.
func newGatewayCallEventMutation(c config, op Op, opts ...gatewaycalleventOption) *GatewayCallEventMutation {
	m := &GatewayCallEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGatewayCallEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGatewayCallEventID sets the ID field of the mutation.
func withGatewayCallEventID(id int) gatewaycalleventOption {
	return func(m *GatewayCallEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GatewayCallEvent
		)
		m.oldValue = func(ctx context.Context) (*GatewayCallEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GatewayCallEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGatewayCallEvent sets the old GatewayCallEvent of the mutation.
func withGatewayCallEvent(node *GatewayCallEvent) gatewaycalleventOption {
	return func(m *GatewayCallEventMutation) {
		m.oldValue = func(context.Context) (*GatewayCallEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GatewayCallEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GatewayCallEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GatewayCallEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GatewayCallEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GatewayCallEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *GatewayCallEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *GatewayCallEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *GatewayCallEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *GatewayCallEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *GatewayCallEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *GatewayCallEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GatewayCallEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GatewayCallEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetOperation sets the "operation" field.
func (m *GatewayCallEventMutation) SetOperation(s string) {
	m.operation = &s
}

// Operation returns the value of the "operation" field in the mutation.
func (m *GatewayCallEventMutation) Operation() (r string, exists bool) {
	v := m.operation
	if v == nil {
		return
	}
	return *v, true
}

// OldOperation returns the old "operation" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldOperation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperation: %w", err)
	}
	return oldValue.Operation, nil
}

// ResetOperation resets all changes to the "operation" field.
func (m *GatewayCallEventMutation) ResetOperation() {
	m.operation = nil
}

// SetSuccess sets the "success" field.
func (m *GatewayCallEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *GatewayCallEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *GatewayCallEventMutation) ResetSuccess() {
	m.success = nil
}

// SetStatus sets the "status" field.
func (m *GatewayCallEventMutation) SetStatus(i int) {
	m.status = &i
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *GatewayCallEventMutation) Status() (r int, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldStatus(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds i to the "status" field.
func (m *GatewayCallEventMutation) AddStatus(i int) {
	if m.addstatus != nil {
		*m.addstatus += i
	} else {
		m.addstatus = &i
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *GatewayCallEventMutation) AddedStatus() (r int, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *GatewayCallEventMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *GatewayCallEventMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *GatewayCallEventMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *GatewayCallEventMutation) ResetErrorKind() {
	m.error_kind = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *GatewayCallEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *GatewayCallEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the GatewayCallEvent entity.
// If the GatewayCallEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GatewayCallEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *GatewayCallEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *GatewayCallEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *GatewayCallEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// Where appends a list predicates to the GatewayCallEventMutation builder.
func (m *GatewayCallEventMutation) Where(ps ...predicate.GatewayCallEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GatewayCallEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GatewayCallEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GatewayCallEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GatewayCallEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GatewayCallEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GatewayCallEvent).
func (m *GatewayCallEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GatewayCallEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, gatewaycallevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, gatewaycallevent.FieldTimestamp)
	}
	if m.operation != nil {
		fields = append(fields, gatewaycallevent.FieldOperation)
	}
	if m.success != nil {
		fields = append(fields, gatewaycallevent.FieldSuccess)
	}
	if m.status != nil {
		fields = append(fields, gatewaycallevent.FieldStatus)
	}
	if m.error_kind != nil {
		fields = append(fields, gatewaycallevent.FieldErrorKind)
	}
	if m.latency_ms != nil {
		fields = append(fields, gatewaycallevent.FieldLatencyMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GatewayCallEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gatewaycallevent.FieldSequence:
		return m.Sequence()
	case gatewaycallevent.FieldTimestamp:
		return m.Timestamp()
	case gatewaycallevent.FieldOperation:
		return m.Operation()
	case gatewaycallevent.FieldSuccess:
		return m.Success()
	case gatewaycallevent.FieldStatus:
		return m.Status()
	case gatewaycallevent.FieldErrorKind:
		return m.ErrorKind()
	case gatewaycallevent.FieldLatencyMs:
		return m.LatencyMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GatewayCallEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gatewaycallevent.FieldSequence:
		return m.OldSequence(ctx)
	case gatewaycallevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case gatewaycallevent.FieldOperation:
		return m.OldOperation(ctx)
	case gatewaycallevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case gatewaycallevent.FieldStatus:
		return m.OldStatus(ctx)
	case gatewaycallevent.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case gatewaycallevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	}
	return nil, fmt.Errorf("unknown GatewayCallEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GatewayCallEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gatewaycallevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case gatewaycallevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case gatewaycallevent.FieldOperation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperation(v)
		return nil
	case gatewaycallevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case gatewaycallevent.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case gatewaycallevent.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case gatewaycallevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown GatewayCallEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GatewayCallEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, gatewaycallevent.FieldSequence)
	}
	if m.addstatus != nil {
		fields = append(fields, gatewaycallevent.FieldStatus)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, gatewaycallevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GatewayCallEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gatewaycallevent.FieldSequence:
		return m.AddedSequence()
	case gatewaycallevent.FieldStatus:
		return m.AddedStatus()
	case gatewaycallevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GatewayCallEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gatewaycallevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case gatewaycallevent.FieldStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case gatewaycallevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown GatewayCallEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GatewayCallEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GatewayCallEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GatewayCallEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GatewayCallEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GatewayCallEventMutation) ResetField(name string) error {
	switch name {
	case gatewaycallevent.FieldSequence:
		m.ResetSequence()
		return nil
	case gatewaycallevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case gatewaycallevent.FieldOperation:
		m.ResetOperation()
		return nil
	case gatewaycallevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case gatewaycallevent.FieldStatus:
		m.ResetStatus()
		return nil
	case gatewaycallevent.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case gatewaycallevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	}
	return fmt.Errorf("unknown GatewayCallEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GatewayCallEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GatewayCallEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GatewayCallEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GatewayCallEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GatewayCallEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GatewayCallEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GatewayCallEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GatewayCallEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GatewayCallEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GatewayCallEvent edge %s", name)
}

// ReadingSnapshotMutation represents an operation that mutates the ReadingSnapshot nodes in the graph.
type ReadingSnapshotMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	sequence               *int64
	addsequence            *int64
	timestamp              *time.Time
	unread_count           *int
	addunread_count        *int
	high_priority_count    *int
	addhigh_priority_count *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ReadingSnapshot, error)
	predicates             []predicate.ReadingSnapshot
}

var _ ent.Mutation = (*ReadingSnapshotMutation)(nil)

// readingsnapshotOption allows management of the mutation configuration using functional options.
type readingsnapshotOption func(*ReadingSnapshotMutation)

// newReadingSnapshotMutation creates new mutation for the ReadingSnapshot entity.
func newReadingSnapshotMutation(c config, op Op, opts ...readingsnapshotOption) *ReadingSnapshotMutation {
	m := &ReadingSnapshotMutation{
		config:        c,
		op:            op,
		typ:           TypeReadingSnapshot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReadingSnapshotID sets the ID field of the mutation.
func withReadingSnapshotID(id int) readingsnapshotOption {
	return func(m *ReadingSnapshotMutation) {
		var (
			err   error
			once  sync.Once
			value *ReadingSnapshot
		)
		m.oldValue = func(ctx context.Context) (*ReadingSnapshot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReadingSnapshot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReadingSnapshot sets the old ReadingSnapshot of the mutation.
func withReadingSnapshot(node *ReadingSnapshot) readingsnapshotOption {
	return func(m *ReadingSnapshotMutation) {
		m.oldValue = func(context.Context) (*ReadingSnapshot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReadingSnapshotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReadingSnapshotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReadingSnapshotMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReadingSnapshotMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReadingSnapshot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReadingSnapshotMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReadingSnapshotMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReadingSnapshot entity.
// If the ReadingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingSnapshotMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReadingSnapshotMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReadingSnapshotMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReadingSnapshotMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReadingSnapshotMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReadingSnapshotMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReadingSnapshot entity.
// If the ReadingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingSnapshotMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReadingSnapshotMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetUnreadCount sets the "unread_count" field.
func (m *ReadingSnapshotMutation) SetUnreadCount(i int) {
	m.unread_count = &i
	m.addunread_count = nil
}

// UnreadCount returns the value of the "unread_count" field in the mutation.
func (m *ReadingSnapshotMutation) UnreadCount() (r int, exists bool) {
	v := m.unread_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUnreadCount returns the old "unread_count" field's value of the ReadingSnapshot entity.
// If the ReadingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingSnapshotMutation) OldUnreadCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnreadCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnreadCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnreadCount: %w", err)
	}
	return oldValue.UnreadCount, nil
}

// AddUnreadCount adds i to the "unread_count" field.
func (m *ReadingSnapshotMutation) AddUnreadCount(i int) {
	if m.addunread_count != nil {
		*m.addunread_count += i
	} else {
		m.addunread_count = &i
	}
}

// AddedUnreadCount returns the value that was added to the "unread_count" field in this mutation.
func (m *ReadingSnapshotMutation) AddedUnreadCount() (r int, exists bool) {
	v := m.addunread_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnreadCount resets all changes to the "unread_count" field.
func (m *ReadingSnapshotMutation) ResetUnreadCount() {
	m.unread_count = nil
	m.addunread_count = nil
}

// SetHighPriorityCount sets the "high_priority_count" field.
func (m *ReadingSnapshotMutation) SetHighPriorityCount(i int) {
	m.high_priority_count = &i
	m.addhigh_priority_count = nil
}

// HighPriorityCount returns the value of the "high_priority_count" field in the mutation.
func (m *ReadingSnapshotMutation) HighPriorityCount() (r int, exists bool) {
	v := m.high_priority_count
	if v == nil {
		return
	}
	return *v, true
}

// OldHighPriorityCount returns the old "high_priority_count" field's value of the ReadingSnapshot entity.
// If the ReadingSnapshot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReadingSnapshotMutation) OldHighPriorityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHighPriorityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHighPriorityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHighPriorityCount: %w", err)
	}
	return oldValue.HighPriorityCount, nil
}

// AddHighPriorityCount adds i to the "high_priority_count" field.
func (m *ReadingSnapshotMutation) AddHighPriorityCount(i int) {
	if m.addhigh_priority_count != nil {
		*m.addhigh_priority_count += i
	} else {
		m.addhigh_priority_count = &i
	}
}

// AddedHighPriorityCount returns the value that was added to the "high_priority_count" field in this mutation.
func (m *ReadingSnapshotMutation) AddedHighPriorityCount() (r int, exists bool) {
	v := m.addhigh_priority_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetHighPriorityCount resets all changes to the "high_priority_count" field.
func (m *ReadingSnapshotMutation) ResetHighPriorityCount() {
	m.high_priority_count = nil
	m.addhigh_priority_count = nil
}

// Where appends a list predicates to the ReadingSnapshotMutation builder.
func (m *ReadingSnapshotMutation) Where(ps ...predicate.ReadingSnapshot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReadingSnapshotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReadingSnapshotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReadingSnapshot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReadingSnapshotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReadingSnapshotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReadingSnapshot).
func (m *ReadingSnapshotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReadingSnapshotMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, readingsnapshot.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, readingsnapshot.FieldTimestamp)
	}
	if m.unread_count != nil {
		fields = append(fields, readingsnapshot.FieldUnreadCount)
	}
	if m.high_priority_count != nil {
		fields = append(fields, readingsnapshot.FieldHighPriorityCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReadingSnapshotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case readingsnapshot.FieldSequence:
		return m.Sequence()
	case readingsnapshot.FieldTimestamp:
		return m.Timestamp()
	case readingsnapshot.FieldUnreadCount:
		return m.UnreadCount()
	case readingsnapshot.FieldHighPriorityCount:
		return m.HighPriorityCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReadingSnapshotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case readingsnapshot.FieldSequence:
		return m.OldSequence(ctx)
	case readingsnapshot.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case readingsnapshot.FieldUnreadCount:
		return m.OldUnreadCount(ctx)
	case readingsnapshot.FieldHighPriorityCount:
		return m.OldHighPriorityCount(ctx)
	}
	return nil, fmt.Errorf("unknown ReadingSnapshot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadingSnapshotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case readingsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case readingsnapshot.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case readingsnapshot.FieldUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnreadCount(v)
		return nil
	case readingsnapshot.FieldHighPriorityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHighPriorityCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReadingSnapshot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReadingSnapshotMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, readingsnapshot.FieldSequence)
	}
	if m.addunread_count != nil {
		fields = append(fields, readingsnapshot.FieldUnreadCount)
	}
	if m.addhigh_priority_count != nil {
		fields = append(fields, readingsnapshot.FieldHighPriorityCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReadingSnapshotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case readingsnapshot.FieldSequence:
		return m.AddedSequence()
	case readingsnapshot.FieldUnreadCount:
		return m.AddedUnreadCount()
	case readingsnapshot.FieldHighPriorityCount:
		return m.AddedHighPriorityCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReadingSnapshotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case readingsnapshot.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case readingsnapshot.FieldUnreadCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnreadCount(v)
		return nil
	case readingsnapshot.FieldHighPriorityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHighPriorityCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReadingSnapshot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReadingSnapshotMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReadingSnapshotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReadingSnapshotMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReadingSnapshot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReadingSnapshotMutation) ResetField(name string) error {
	switch name {
	case readingsnapshot.FieldSequence:
		m.ResetSequence()
		return nil
	case readingsnapshot.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case readingsnapshot.FieldUnreadCount:
		m.ResetUnreadCount()
		return nil
	case readingsnapshot.FieldHighPriorityCount:
		m.ResetHighPriorityCount()
		return nil
	}
	return fmt.Errorf("unknown ReadingSnapshot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReadingSnapshotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReadingSnapshotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReadingSnapshotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReadingSnapshotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReadingSnapshotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReadingSnapshotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReadingSnapshotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReadingSnapshot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReadingSnapshotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReadingSnapshot edge %s", name)
}

// ReviewEventMutation represents an operation that mutates the ReviewEvent nodes in the graph.
type ReviewEventMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	sequence            *int64
	addsequence         *int64
	timestamp           *time.Time
	session_id          *string
	review_id           *string
	action              *string
	correct             *bool
	reinforced          *bool
	reviewed_count      *int
	addreviewed_count   *int
	reinforced_count    *int
	addreinforced_count *int
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*ReviewEvent, error)
	predicates          []predicate.ReviewEvent
}

var _ ent.Mutation = (*ReviewEventMutation)(nil)

// revieweventOption allows management of the mutation configuration using functional options.
type revieweventOption func(*ReviewEventMutation)

// newReviewEventMutation creates new mutation for the ReviewEvent entity.
func newReviewEventMutation(c config, op Op, opts ...revieweventOption) *ReviewEventMutation {
	m := &ReviewEventMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewEventID sets the ID field of the mutation.
func withReviewEventID(id int) revieweventOption {
	return func(m *ReviewEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewEvent
		)
		m.oldValue = func(ctx context.Context) (*ReviewEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewEvent sets the old ReviewEvent of the mutation.
func withReviewEvent(node *ReviewEvent) revieweventOption {
	return func(m *ReviewEventMutation) {
		m.oldValue = func(context.Context) (*ReviewEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ReviewEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ReviewEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ReviewEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ReviewEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ReviewEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ReviewEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ReviewEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ReviewEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ReviewEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ReviewEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ReviewEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetReviewID sets the "review_id" field.
func (m *ReviewEventMutation) SetReviewID(s string) {
	m.review_id = &s
}

// ReviewID returns the value of the "review_id" field in the mutation.
func (m *ReviewEventMutation) ReviewID() (r string, exists bool) {
	v := m.review_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewID returns the old "review_id" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldReviewID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewID: %w", err)
	}
	return oldValue.ReviewID, nil
}

// ResetReviewID resets all changes to the "review_id" field.
func (m *ReviewEventMutation) ResetReviewID() {
	m.review_id = nil
}

// SetAction sets the "action" field.
func (m *ReviewEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *ReviewEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ReviewEventMutation) ResetAction() {
	m.action = nil
}

// SetCorrect sets the "correct" field.
func (m *ReviewEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ReviewEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ReviewEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetReinforced sets the "reinforced" field.
func (m *ReviewEventMutation) SetReinforced(b bool) {
	m.reinforced = &b
}

// Reinforced returns the value of the "reinforced" field in the mutation.
func (m *ReviewEventMutation) Reinforced() (r bool, exists bool) {
	v := m.reinforced
	if v == nil {
		return
	}
	return *v, true
}

// OldReinforced returns the old "reinforced" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldReinforced(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReinforced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReinforced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReinforced: %w", err)
	}
	return oldValue.Reinforced, nil
}

// ResetReinforced resets all changes to the "reinforced" field.
func (m *ReviewEventMutation) ResetReinforced() {
	m.reinforced = nil
}

// SetReviewedCount sets the "reviewed_count" field.
func (m *ReviewEventMutation) SetReviewedCount(i int) {
	m.reviewed_count = &i
	m.addreviewed_count = nil
}

// ReviewedCount returns the value of the "reviewed_count" field in the mutation.
func (m *ReviewEventMutation) ReviewedCount() (r int, exists bool) {
	v := m.reviewed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedCount returns the old "reviewed_count" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldReviewedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedCount: %w", err)
	}
	return oldValue.ReviewedCount, nil
}

// AddReviewedCount adds i to the "reviewed_count" field.
func (m *ReviewEventMutation) AddReviewedCount(i int) {
	if m.addreviewed_count != nil {
		*m.addreviewed_count += i
	} else {
		m.addreviewed_count = &i
	}
}

// AddedReviewedCount returns the value that was added to the "reviewed_count" field in this mutation.
func (m *ReviewEventMutation) AddedReviewedCount() (r int, exists bool) {
	v := m.addreviewed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewedCount resets all changes to the "reviewed_count" field.
func (m *ReviewEventMutation) ResetReviewedCount() {
	m.reviewed_count = nil
	m.addreviewed_count = nil
}

// SetReinforcedCount sets the "reinforced_count" field.
func (m *ReviewEventMutation) SetReinforcedCount(i int) {
	m.reinforced_count = &i
	m.addreinforced_count = nil
}

// ReinforcedCount returns the value of the "reinforced_count" field in the mutation.
func (m *ReviewEventMutation) ReinforcedCount() (r int, exists bool) {
	v := m.reinforced_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReinforcedCount returns the old "reinforced_count" field's value of the ReviewEvent entity.
// If the ReviewEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewEventMutation) OldReinforcedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReinforcedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReinforcedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReinforcedCount: %w", err)
	}
	return oldValue.ReinforcedCount, nil
}

// AddReinforcedCount adds i to the "reinforced_count" field.
func (m *ReviewEventMutation) AddReinforcedCount(i int) {
	if m.addreinforced_count != nil {
		*m.addreinforced_count += i
	} else {
		m.addreinforced_count = &i
	}
}

// AddedReinforcedCount returns the value that was added to the "reinforced_count" field in this mutation.
func (m *ReviewEventMutation) AddedReinforcedCount() (r int, exists bool) {
	v := m.addreinforced_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReinforcedCount resets all changes to the "reinforced_count" field.
func (m *ReviewEventMutation) ResetReinforcedCount() {
	m.reinforced_count = nil
	m.addreinforced_count = nil
}

// Where appends a list predicates to the ReviewEventMutation builder.
func (m *ReviewEventMutation) Where(ps ...predicate.ReviewEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewEvent).
func (m *ReviewEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, reviewevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, reviewevent.FieldSessionID)
	}
	if m.review_id != nil {
		fields = append(fields, reviewevent.FieldReviewID)
	}
	if m.action != nil {
		fields = append(fields, reviewevent.FieldAction)
	}
	if m.correct != nil {
		fields = append(fields, reviewevent.FieldCorrect)
	}
	if m.reinforced != nil {
		fields = append(fields, reviewevent.FieldReinforced)
	}
	if m.reviewed_count != nil {
		fields = append(fields, reviewevent.FieldReviewedCount)
	}
	if m.reinforced_count != nil {
		fields = append(fields, reviewevent.FieldReinforcedCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.Sequence()
	case reviewevent.FieldTimestamp:
		return m.Timestamp()
	case reviewevent.FieldSessionID:
		return m.SessionID()
	case reviewevent.FieldReviewID:
		return m.ReviewID()
	case reviewevent.FieldAction:
		return m.Action()
	case reviewevent.FieldCorrect:
		return m.Correct()
	case reviewevent.FieldReinforced:
		return m.Reinforced()
	case reviewevent.FieldReviewedCount:
		return m.ReviewedCount()
	case reviewevent.FieldReinforcedCount:
		return m.ReinforcedCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewevent.FieldSequence:
		return m.OldSequence(ctx)
	case reviewevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case reviewevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case reviewevent.FieldReviewID:
		return m.OldReviewID(ctx)
	case reviewevent.FieldAction:
		return m.OldAction(ctx)
	case reviewevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case reviewevent.FieldReinforced:
		return m.OldReinforced(ctx)
	case reviewevent.FieldReviewedCount:
		return m.OldReviewedCount(ctx)
	case reviewevent.FieldReinforcedCount:
		return m.OldReinforcedCount(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case reviewevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case reviewevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case reviewevent.FieldReviewID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewID(v)
		return nil
	case reviewevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case reviewevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case reviewevent.FieldReinforced:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReinforced(v)
		return nil
	case reviewevent.FieldReviewedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedCount(v)
		return nil
	case reviewevent.FieldReinforcedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReinforcedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, reviewevent.FieldSequence)
	}
	if m.addreviewed_count != nil {
		fields = append(fields, reviewevent.FieldReviewedCount)
	}
	if m.addreinforced_count != nil {
		fields = append(fields, reviewevent.FieldReinforcedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewevent.FieldSequence:
		return m.AddedSequence()
	case reviewevent.FieldReviewedCount:
		return m.AddedReviewedCount()
	case reviewevent.FieldReinforcedCount:
		return m.AddedReinforcedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case reviewevent.FieldReviewedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewedCount(v)
		return nil
	case reviewevent.FieldReinforcedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReinforcedCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewEventMutation) ResetField(name string) error {
	switch name {
	case reviewevent.FieldSequence:
		m.ResetSequence()
		return nil
	case reviewevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case reviewevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case reviewevent.FieldReviewID:
		m.ResetReviewID()
		return nil
	case reviewevent.FieldAction:
		m.ResetAction()
		return nil
	case reviewevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case reviewevent.FieldReinforced:
		m.ResetReinforced()
		return nil
	case reviewevent.FieldReviewedCount:
		m.ResetReviewedCount()
		return nil
	case reviewevent.FieldReinforcedCount:
		m.ResetReinforcedCount()
		return nil
	}
	return fmt.Errorf("unknown ReviewEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	action           *string
	kind             *string
	strategy         *string
	resumed          *bool
	version          *int64
	addversion       *int64
	answered         *int
	addanswered      *int
	correct_count    *int
	addcorrect_count *int
	duration_secs    *int
	addduration_secs *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SessionEvent, error)
	predicates       []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetKind sets the "kind" field.
func (m *SessionEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SessionEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SessionEventMutation) ResetKind() {
	m.kind = nil
}

// SetStrategy sets the "strategy" field.
func (m *SessionEventMutation) SetStrategy(s string) {
	m.strategy = &s
}

// Strategy returns the value of the "strategy" field in the mutation.
func (m *SessionEventMutation) Strategy() (r string, exists bool) {
	v := m.strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldStrategy returns the old "strategy" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrategy: %w", err)
	}
	return oldValue.Strategy, nil
}

// ResetStrategy resets all changes to the "strategy" field.
func (m *SessionEventMutation) ResetStrategy() {
	m.strategy = nil
}

// SetResumed sets the "resumed" field.
func (m *SessionEventMutation) SetResumed(b bool) {
	m.resumed = &b
}

// Resumed returns the value of the "resumed" field in the mutation.
func (m *SessionEventMutation) Resumed() (r bool, exists bool) {
	v := m.resumed
	if v == nil {
		return
	}
	return *v, true
}

// OldResumed returns the old "resumed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldResumed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumed: %w", err)
	}
	return oldValue.Resumed, nil
}

// ResetResumed resets all changes to the "resumed" field.
func (m *SessionEventMutation) ResetResumed() {
	m.resumed = nil
}

// SetVersion sets the "version" field.
func (m *SessionEventMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SessionEventMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SessionEventMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SessionEventMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SessionEventMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetAnswered sets the "answered" field.
func (m *SessionEventMutation) SetAnswered(i int) {
	m.answered = &i
	m.addanswered = nil
}

// Answered returns the value of the "answered" field in the mutation.
func (m *SessionEventMutation) Answered() (r int, exists bool) {
	v := m.answered
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswered returns the old "answered" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswered: %w", err)
	}
	return oldValue.Answered, nil
}

// AddAnswered adds i to the "answered" field.
func (m *SessionEventMutation) AddAnswered(i int) {
	if m.addanswered != nil {
		*m.addanswered += i
	} else {
		m.addanswered = &i
	}
}

// AddedAnswered returns the value that was added to the "answered" field in this mutation.
func (m *SessionEventMutation) AddedAnswered() (r int, exists bool) {
	v := m.addanswered
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswered resets all changes to the "answered" field.
func (m *SessionEventMutation) ResetAnswered() {
	m.answered = nil
	m.addanswered = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *SessionEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *SessionEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *SessionEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *SessionEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *SessionEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.kind != nil {
		fields = append(fields, sessionevent.FieldKind)
	}
	if m.strategy != nil {
		fields = append(fields, sessionevent.FieldStrategy)
	}
	if m.resumed != nil {
		fields = append(fields, sessionevent.FieldResumed)
	}
	if m.version != nil {
		fields = append(fields, sessionevent.FieldVersion)
	}
	if m.answered != nil {
		fields = append(fields, sessionevent.FieldAnswered)
	}
	if m.correct_count != nil {
		fields = append(fields, sessionevent.FieldCorrectCount)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldKind:
		return m.Kind()
	case sessionevent.FieldStrategy:
		return m.Strategy()
	case sessionevent.FieldResumed:
		return m.Resumed()
	case sessionevent.FieldVersion:
		return m.Version()
	case sessionevent.FieldAnswered:
		return m.Answered()
	case sessionevent.FieldCorrectCount:
		return m.CorrectCount()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldKind:
		return m.OldKind(ctx)
	case sessionevent.FieldStrategy:
		return m.OldStrategy(ctx)
	case sessionevent.FieldResumed:
		return m.OldResumed(ctx)
	case sessionevent.FieldVersion:
		return m.OldVersion(ctx)
	case sessionevent.FieldAnswered:
		return m.OldAnswered(ctx)
	case sessionevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case sessionevent.FieldStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrategy(v)
		return nil
	case sessionevent.FieldResumed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumed(v)
		return nil
	case sessionevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case sessionevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswered(v)
		return nil
	case sessionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addversion != nil {
		fields = append(fields, sessionevent.FieldVersion)
	}
	if m.addanswered != nil {
		fields = append(fields, sessionevent.FieldAnswered)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, sessionevent.FieldCorrectCount)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldVersion:
		return m.AddedVersion()
	case sessionevent.FieldAnswered:
		return m.AddedAnswered()
	case sessionevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case sessionevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswered(v)
		return nil
	case sessionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldKind:
		m.ResetKind()
		return nil
	case sessionevent.FieldStrategy:
		m.ResetStrategy()
		return nil
	case sessionevent.FieldResumed:
		m.ResetResumed()
		return nil
	case sessionevent.FieldVersion:
		m.ResetVersion()
		return nil
	case sessionevent.FieldAnswered:
		m.ResetAnswered()
		return nil
	case sessionevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// SubmissionEventMutation represents an operation that mutates the SubmissionEvent nodes in the graph.
type SubmissionEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	question_id      *string
	idempotency_key  *string
	phase            *string
	selected_option  *string
	correct          *bool
	answered         *int
	addanswered      *int
	correct_count    *int
	addcorrect_count *int
	version          *int64
	addversion       *int64
	error_kind       *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SubmissionEvent, error)
	predicates       []predicate.SubmissionEvent
}

var _ ent.Mutation = (*SubmissionEventMutation)(nil)

// submissioneventOption allows management of the mutation configuration using functional options.
type submissioneventOption func(*SubmissionEventMutation)

// newSubmissionEventMutation creates new mutation for the SubmissionEvent entity.
func newSubmissionEventMutation(c config, op Op, opts ...submissioneventOption) *SubmissionEventMutation {
	m := &SubmissionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmissionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionEventID sets the ID field of the mutation.
func withSubmissionEventID(id int) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmissionEvent
		)
		m.oldValue = func(ctx context.Context) (*SubmissionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmissionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmissionEvent sets the old SubmissionEvent of the mutation.
func withSubmissionEvent(node *SubmissionEvent) submissioneventOption {
	return func(m *SubmissionEventMutation) {
		m.oldValue = func(context.Context) (*SubmissionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmissionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SubmissionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SubmissionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SubmissionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SubmissionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SubmissionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SubmissionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SubmissionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SubmissionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SubmissionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SubmissionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SubmissionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *SubmissionEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *SubmissionEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *SubmissionEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *SubmissionEventMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *SubmissionEventMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *SubmissionEventMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetPhase sets the "phase" field.
func (m *SubmissionEventMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *SubmissionEventMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *SubmissionEventMutation) ResetPhase() {
	m.phase = nil
}

// SetSelectedOption sets the "selected_option" field.
func (m *SubmissionEventMutation) SetSelectedOption(s string) {
	m.selected_option = &s
}

// SelectedOption returns the value of the "selected_option" field in the mutation.
func (m *SubmissionEventMutation) SelectedOption() (r string, exists bool) {
	v := m.selected_option
	if v == nil {
		return
	}
	return *v, true
}

// OldSelectedOption returns the old "selected_option" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldSelectedOption(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSelectedOption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSelectedOption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSelectedOption: %w", err)
	}
	return oldValue.SelectedOption, nil
}

// ResetSelectedOption resets all changes to the "selected_option" field.
func (m *SubmissionEventMutation) ResetSelectedOption() {
	m.selected_option = nil
}

// SetCorrect sets the "correct" field.
func (m *SubmissionEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *SubmissionEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *SubmissionEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetAnswered sets the "answered" field.
func (m *SubmissionEventMutation) SetAnswered(i int) {
	m.answered = &i
	m.addanswered = nil
}

// Answered returns the value of the "answered" field in the mutation.
func (m *SubmissionEventMutation) Answered() (r int, exists bool) {
	v := m.answered
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswered returns the old "answered" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswered: %w", err)
	}
	return oldValue.Answered, nil
}

// AddAnswered adds i to the "answered" field.
func (m *SubmissionEventMutation) AddAnswered(i int) {
	if m.addanswered != nil {
		*m.addanswered += i
	} else {
		m.addanswered = &i
	}
}

// AddedAnswered returns the value that was added to the "answered" field in this mutation.
func (m *SubmissionEventMutation) AddedAnswered() (r int, exists bool) {
	v := m.addanswered
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnswered resets all changes to the "answered" field.
func (m *SubmissionEventMutation) ResetAnswered() {
	m.answered = nil
	m.addanswered = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *SubmissionEventMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *SubmissionEventMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *SubmissionEventMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *SubmissionEventMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *SubmissionEventMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetVersion sets the "version" field.
func (m *SubmissionEventMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SubmissionEventMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SubmissionEventMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SubmissionEventMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SubmissionEventMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetErrorKind sets the "error_kind" field.
func (m *SubmissionEventMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *SubmissionEventMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the SubmissionEvent entity.
// If the SubmissionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionEventMutation) OldErrorKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *SubmissionEventMutation) ResetErrorKind() {
	m.error_kind = nil
}

// Where appends a list predicates to the SubmissionEventMutation builder.
func (m *SubmissionEventMutation) Where(ps ...predicate.SubmissionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmissionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmissionEvent).
func (m *SubmissionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, submissionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, submissionevent.FieldSessionID)
	}
	if m.question_id != nil {
		fields = append(fields, submissionevent.FieldQuestionID)
	}
	if m.idempotency_key != nil {
		fields = append(fields, submissionevent.FieldIdempotencyKey)
	}
	if m.phase != nil {
		fields = append(fields, submissionevent.FieldPhase)
	}
	if m.selected_option != nil {
		fields = append(fields, submissionevent.FieldSelectedOption)
	}
	if m.correct != nil {
		fields = append(fields, submissionevent.FieldCorrect)
	}
	if m.answered != nil {
		fields = append(fields, submissionevent.FieldAnswered)
	}
	if m.correct_count != nil {
		fields = append(fields, submissionevent.FieldCorrectCount)
	}
	if m.version != nil {
		fields = append(fields, submissionevent.FieldVersion)
	}
	if m.error_kind != nil {
		fields = append(fields, submissionevent.FieldErrorKind)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.Sequence()
	case submissionevent.FieldTimestamp:
		return m.Timestamp()
	case submissionevent.FieldSessionID:
		return m.SessionID()
	case submissionevent.FieldQuestionID:
		return m.QuestionID()
	case submissionevent.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case submissionevent.FieldPhase:
		return m.Phase()
	case submissionevent.FieldSelectedOption:
		return m.SelectedOption()
	case submissionevent.FieldCorrect:
		return m.Correct()
	case submissionevent.FieldAnswered:
		return m.Answered()
	case submissionevent.FieldCorrectCount:
		return m.CorrectCount()
	case submissionevent.FieldVersion:
		return m.Version()
	case submissionevent.FieldErrorKind:
		return m.ErrorKind()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submissionevent.FieldSequence:
		return m.OldSequence(ctx)
	case submissionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case submissionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case submissionevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case submissionevent.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case submissionevent.FieldPhase:
		return m.OldPhase(ctx)
	case submissionevent.FieldSelectedOption:
		return m.OldSelectedOption(ctx)
	case submissionevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case submissionevent.FieldAnswered:
		return m.OldAnswered(ctx)
	case submissionevent.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case submissionevent.FieldVersion:
		return m.OldVersion(ctx)
	case submissionevent.FieldErrorKind:
		return m.OldErrorKind(ctx)
	}
	return nil, fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case submissionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case submissionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case submissionevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case submissionevent.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case submissionevent.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case submissionevent.FieldSelectedOption:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSelectedOption(v)
		return nil
	case submissionevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case submissionevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswered(v)
		return nil
	case submissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case submissionevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case submissionevent.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, submissionevent.FieldSequence)
	}
	if m.addanswered != nil {
		fields = append(fields, submissionevent.FieldAnswered)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, submissionevent.FieldCorrectCount)
	}
	if m.addversion != nil {
		fields = append(fields, submissionevent.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submissionevent.FieldSequence:
		return m.AddedSequence()
	case submissionevent.FieldAnswered:
		return m.AddedAnswered()
	case submissionevent.FieldCorrectCount:
		return m.AddedCorrectCount()
	case submissionevent.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submissionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case submissionevent.FieldAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnswered(v)
		return nil
	case submissionevent.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case submissionevent.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmissionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionEventMutation) ResetField(name string) error {
	switch name {
	case submissionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case submissionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case submissionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case submissionevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case submissionevent.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case submissionevent.FieldPhase:
		m.ResetPhase()
		return nil
	case submissionevent.FieldSelectedOption:
		m.ResetSelectedOption()
		return nil
	case submissionevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case submissionevent.FieldAnswered:
		m.ResetAnswered()
		return nil
	case submissionevent.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case submissionevent.FieldVersion:
		m.ResetVersion()
		return nil
	case submissionevent.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	}
	return fmt.Errorf("unknown SubmissionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubmissionEvent edge %s", name)
}
