// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
)

// GatewayCallEventCreate is the builder for creating a GatewayCallEvent entity.
type GatewayCallEventCreate struct {
	config
	mutation *GatewayCallEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GatewayCallEventCreate) SetSequence(v int64) *GatewayCallEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GatewayCallEventCreate) SetTimestamp(v time.Time) *GatewayCallEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GatewayCallEventCreate) SetNillableTimestamp(v *time.Time) *GatewayCallEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOperation sets the "operation" field.
func (_c *GatewayCallEventCreate) SetOperation(v string) *GatewayCallEventCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *GatewayCallEventCreate) SetSuccess(v bool) *GatewayCallEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *GatewayCallEventCreate) SetStatus(v int) *GatewayCallEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *GatewayCallEventCreate) SetNillableStatus(v *int) *GatewayCallEventCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *GatewayCallEventCreate) SetErrorKind(v string) *GatewayCallEventCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *GatewayCallEventCreate) SetNillableErrorKind(v *string) *GatewayCallEventCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *GatewayCallEventCreate) SetLatencyMs(v int64) *GatewayCallEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *GatewayCallEventCreate) SetNillableLatencyMs(v *int64) *GatewayCallEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// Mutation returns the GatewayCallEventMutation object of the builder.
func (_c *GatewayCallEventCreate) Mutation() *GatewayCallEventMutation {
	return _c.mutation
}

// Save creates the GatewayCallEvent in the database.
func (_c *GatewayCallEventCreate) Save(ctx context.Context) (*GatewayCallEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GatewayCallEventCreate) SaveX(ctx context.Context) *GatewayCallEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GatewayCallEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GatewayCallEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GatewayCallEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gatewaycallevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := gatewaycallevent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ErrorKind(); !ok {
		v := gatewaycallevent.DefaultErrorKind
		_c.mutation.SetErrorKind(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := gatewaycallevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GatewayCallEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GatewayCallEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GatewayCallEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "GatewayCallEvent.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := gatewaycallevent.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "GatewayCallEvent.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "GatewayCallEvent.success"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "GatewayCallEvent.status"`)}
	}
	if _, ok := _c.mutation.ErrorKind(); !ok {
		return &ValidationError{Name: "error_kind", err: errors.New(`ent: missing required field "GatewayCallEvent.error_kind"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "GatewayCallEvent.latency_ms"`)}
	}
	return nil
}

func (_c *GatewayCallEventCreate) sqlSave(ctx context.Context) (*GatewayCallEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GatewayCallEventCreate) createSpec() (*GatewayCallEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GatewayCallEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gatewaycallevent.Table, sqlgraph.NewFieldSpec(gatewaycallevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gatewaycallevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gatewaycallevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(gatewaycallevent.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(gatewaycallevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(gatewaycallevent.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(gatewaycallevent.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(gatewaycallevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	return _node, _spec
}

// GatewayCallEventCreateBulk is the builder for creating many GatewayCallEvent entities in bulk.
type GatewayCallEventCreateBulk struct {
	config
	err      error
	builders []*GatewayCallEventCreate
}

// Save creates the GatewayCallEvent entities in the database.
func (_c *GatewayCallEventCreateBulk) Save(ctx context.Context) ([]*GatewayCallEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GatewayCallEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GatewayCallEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GatewayCallEventCreateBulk) SaveX(ctx context.Context) []*GatewayCallEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GatewayCallEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GatewayCallEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
