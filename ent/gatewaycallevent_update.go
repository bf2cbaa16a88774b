// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// GatewayCallEventUpdate is the builder for updating GatewayCallEvent entities.
type GatewayCallEventUpdate struct {
	config
	hooks    []Hook
	mutation *GatewayCallEventMutation
}

// Where appends a list predicates to the GatewayCallEventUpdate builder.
func (_u *GatewayCallEventUpdate) Where(ps ...predicate.GatewayCallEvent) *GatewayCallEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *GatewayCallEventUpdate) SetOperation(v string) *GatewayCallEventUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *GatewayCallEventUpdate) SetNillableOperation(v *string) *GatewayCallEventUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GatewayCallEventUpdate) SetSuccess(v bool) *GatewayCallEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GatewayCallEventUpdate) SetNillableSuccess(v *bool) *GatewayCallEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GatewayCallEventUpdate) SetStatus(v int) *GatewayCallEventUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GatewayCallEventUpdate) SetNillableStatus(v *int) *GatewayCallEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *GatewayCallEventUpdate) AddStatus(v int) *GatewayCallEventUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *GatewayCallEventUpdate) SetErrorKind(v string) *GatewayCallEventUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *GatewayCallEventUpdate) SetNillableErrorKind(v *string) *GatewayCallEventUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GatewayCallEventUpdate) SetLatencyMs(v int64) *GatewayCallEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GatewayCallEventUpdate) SetNillableLatencyMs(v *int64) *GatewayCallEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GatewayCallEventUpdate) AddLatencyMs(v int64) *GatewayCallEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GatewayCallEventMutation object of the builder.
func (_u *GatewayCallEventUpdate) Mutation() *GatewayCallEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GatewayCallEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GatewayCallEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GatewayCallEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GatewayCallEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GatewayCallEventUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := gatewaycallevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "GatewayCallEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *GatewayCallEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gatewaycallevent.Table, gatewaycallevent.Columns, sqlgraph.NewFieldSpec(gatewaycallevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(gatewaycallevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(gatewaycallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gatewaycallevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(gatewaycallevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(gatewaycallevent.FieldErrorKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(gatewaycallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(gatewaycallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gatewaycallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GatewayCallEventUpdateOne is the builder for updating a single GatewayCallEvent entity.
type GatewayCallEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GatewayCallEventMutation
}

// SetOperation sets the "operation" field.
func (_u *GatewayCallEventUpdateOne) SetOperation(v string) *GatewayCallEventUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *GatewayCallEventUpdateOne) SetNillableOperation(v *string) *GatewayCallEventUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GatewayCallEventUpdateOne) SetSuccess(v bool) *GatewayCallEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GatewayCallEventUpdateOne) SetNillableSuccess(v *bool) *GatewayCallEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *GatewayCallEventUpdateOne) SetStatus(v int) *GatewayCallEventUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *GatewayCallEventUpdateOne) SetNillableStatus(v *int) *GatewayCallEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *GatewayCallEventUpdateOne) AddStatus(v int) *GatewayCallEventUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *GatewayCallEventUpdateOne) SetErrorKind(v string) *GatewayCallEventUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *GatewayCallEventUpdateOne) SetNillableErrorKind(v *string) *GatewayCallEventUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *GatewayCallEventUpdateOne) SetLatencyMs(v int64) *GatewayCallEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *GatewayCallEventUpdateOne) SetNillableLatencyMs(v *int64) *GatewayCallEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *GatewayCallEventUpdateOne) AddLatencyMs(v int64) *GatewayCallEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// Mutation returns the GatewayCallEventMutation object of the builder.
func (_u *GatewayCallEventUpdateOne) Mutation() *GatewayCallEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GatewayCallEventUpdate builder.
func (_u *GatewayCallEventUpdateOne) Where(ps ...predicate.GatewayCallEvent) *GatewayCallEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GatewayCallEventUpdateOne) Select(field string, fields ...string) *GatewayCallEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GatewayCallEvent entity.
func (_u *GatewayCallEventUpdateOne) Save(ctx context.Context) (*GatewayCallEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GatewayCallEventUpdateOne) SaveX(ctx context.Context) *GatewayCallEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GatewayCallEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GatewayCallEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GatewayCallEventUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := gatewaycallevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "GatewayCallEvent.operation": %w`, err)}
		}
	}
	return nil
}

func (_u *GatewayCallEventUpdateOne) sqlSave(ctx context.Context) (_node *GatewayCallEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gatewaycallevent.Table, gatewaycallevent.Columns, sqlgraph.NewFieldSpec(gatewaycallevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GatewayCallEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gatewaycallevent.FieldID)
		for _, f := range fields {
			if !gatewaycallevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gatewaycallevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(gatewaycallevent.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(gatewaycallevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(gatewaycallevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(gatewaycallevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(gatewaycallevent.FieldErrorKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(gatewaycallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(gatewaycallevent.FieldLatencyMs, field.TypeInt64, value)
	}
	_node = &GatewayCallEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gatewaycallevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
