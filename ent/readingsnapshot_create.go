// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
)

// ReadingSnapshotCreate is the builder for creating a ReadingSnapshot entity.
type ReadingSnapshotCreate struct {
	config
	mutation *ReadingSnapshotMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ReadingSnapshotCreate) SetSequence(v int64) *ReadingSnapshotCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ReadingSnapshotCreate) SetTimestamp(v time.Time) *ReadingSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ReadingSnapshotCreate) SetNillableTimestamp(v *time.Time) *ReadingSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUnreadCount sets the "unread_count" field.
func (_c *ReadingSnapshotCreate) SetUnreadCount(v int) *ReadingSnapshotCreate {
	_c.mutation.SetUnreadCount(v)
	return _c
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_c *ReadingSnapshotCreate) SetNillableUnreadCount(v *int) *ReadingSnapshotCreate {
	if v != nil {
		_c.SetUnreadCount(*v)
	}
	return _c
}

// SetHighPriorityCount sets the "high_priority_count" field.
func (_c *ReadingSnapshotCreate) SetHighPriorityCount(v int) *ReadingSnapshotCreate {
	_c.mutation.SetHighPriorityCount(v)
	return _c
}

// SetNillableHighPriorityCount sets the "high_priority_count" field if the given value is not nil.
func (_c *ReadingSnapshotCreate) SetNillableHighPriorityCount(v *int) *ReadingSnapshotCreate {
	if v != nil {
		_c.SetHighPriorityCount(*v)
	}
	return _c
}

// Mutation returns the ReadingSnapshotMutation object of the builder.
func (_c *ReadingSnapshotCreate) Mutation() *ReadingSnapshotMutation {
	return _c.mutation
}

// Save creates the ReadingSnapshot in the database.
func (_c *ReadingSnapshotCreate) Save(ctx context.Context) (*ReadingSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReadingSnapshotCreate) SaveX(ctx context.Context) *ReadingSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReadingSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := readingsnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UnreadCount(); !ok {
		v := readingsnapshot.DefaultUnreadCount
		_c.mutation.SetUnreadCount(v)
	}
	if _, ok := _c.mutation.HighPriorityCount(); !ok {
		v := readingsnapshot.DefaultHighPriorityCount
		_c.mutation.SetHighPriorityCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReadingSnapshotCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ReadingSnapshot.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ReadingSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.UnreadCount(); !ok {
		return &ValidationError{Name: "unread_count", err: errors.New(`ent: missing required field "ReadingSnapshot.unread_count"`)}
	}
	if _, ok := _c.mutation.HighPriorityCount(); !ok {
		return &ValidationError{Name: "high_priority_count", err: errors.New(`ent: missing required field "ReadingSnapshot.high_priority_count"`)}
	}
	return nil
}

func (_c *ReadingSnapshotCreate) sqlSave(ctx context.Context) (*ReadingSnapshot, error) {
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

func (_c *ReadingSnapshotCreate) createSpec() (*ReadingSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ReadingSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(readingsnapshot.Table, sqlgraph.NewFieldSpec(readingsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(readingsnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(readingsnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UnreadCount(); ok {
		_spec.SetField(readingsnapshot.FieldUnreadCount, field.TypeInt, value)
		_node.UnreadCount = value
	}
	if value, ok := _c.mutation.HighPriorityCount(); ok {
		_spec.SetField(readingsnapshot.FieldHighPriorityCount, field.TypeInt, value)
		_node.HighPriorityCount = value
	}
	return _node, _spec
}

// ReadingSnapshotCreateBulk is the builder for creating many ReadingSnapshot entities in bulk.
type ReadingSnapshotCreateBulk struct {
	config
	err      error
	builders []*ReadingSnapshotCreate
}

// Save creates the ReadingSnapshot entities in the database.
func (_c *ReadingSnapshotCreateBulk) Save(ctx context.Context) ([]*ReadingSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReadingSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReadingSnapshotMutation)
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
func (_c *ReadingSnapshotCreateBulk) SaveX(ctx context.Context) []*ReadingSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReadingSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReadingSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
