// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/predicate"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
)

// ReadingSnapshotUpdate is the builder for updating ReadingSnapshot entities.
type ReadingSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ReadingSnapshotMutation
}

// Where appends a list predicates to the ReadingSnapshotUpdate builder.
func (_u *ReadingSnapshotUpdate) Where(ps ...predicate.ReadingSnapshot) *ReadingSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *ReadingSnapshotUpdate) SetSequence(v int64) *ReadingSnapshotUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ReadingSnapshotUpdate) SetNillableSequence(v *int64) *ReadingSnapshotUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ReadingSnapshotUpdate) AddSequence(v int64) *ReadingSnapshotUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ReadingSnapshotUpdate) SetTimestamp(v time.Time) *ReadingSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ReadingSnapshotUpdate) SetNillableTimestamp(v *time.Time) *ReadingSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ReadingSnapshotUpdate) SetUnreadCount(v int) *ReadingSnapshotUpdate {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ReadingSnapshotUpdate) SetNillableUnreadCount(v *int) *ReadingSnapshotUpdate {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ReadingSnapshotUpdate) AddUnreadCount(v int) *ReadingSnapshotUpdate {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetHighPriorityCount sets the "high_priority_count" field.
func (_u *ReadingSnapshotUpdate) SetHighPriorityCount(v int) *ReadingSnapshotUpdate {
	_u.mutation.ResetHighPriorityCount()
	_u.mutation.SetHighPriorityCount(v)
	return _u
}

// SetNillableHighPriorityCount sets the "high_priority_count" field if the given value is not nil.
func (_u *ReadingSnapshotUpdate) SetNillableHighPriorityCount(v *int) *ReadingSnapshotUpdate {
	if v != nil {
		_u.SetHighPriorityCount(*v)
	}
	return _u
}

// AddHighPriorityCount adds value to the "high_priority_count" field.
func (_u *ReadingSnapshotUpdate) AddHighPriorityCount(v int) *ReadingSnapshotUpdate {
	_u.mutation.AddHighPriorityCount(v)
	return _u
}

// Mutation returns the ReadingSnapshotMutation object of the builder.
func (_u *ReadingSnapshotUpdate) Mutation() *ReadingSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReadingSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReadingSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReadingSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(readingsnapshot.Table, readingsnapshot.Columns, sqlgraph.NewFieldSpec(readingsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(readingsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(readingsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(readingsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(readingsnapshot.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(readingsnapshot.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighPriorityCount(); ok {
		_spec.SetField(readingsnapshot.FieldHighPriorityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighPriorityCount(); ok {
		_spec.AddField(readingsnapshot.FieldHighPriorityCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReadingSnapshotUpdateOne is the builder for updating a single ReadingSnapshot entity.
type ReadingSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReadingSnapshotMutation
}

// SetSequence sets the "sequence" field.
func (_u *ReadingSnapshotUpdateOne) SetSequence(v int64) *ReadingSnapshotUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *ReadingSnapshotUpdateOne) SetNillableSequence(v *int64) *ReadingSnapshotUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *ReadingSnapshotUpdateOne) AddSequence(v int64) *ReadingSnapshotUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ReadingSnapshotUpdateOne) SetTimestamp(v time.Time) *ReadingSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ReadingSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *ReadingSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetUnreadCount sets the "unread_count" field.
func (_u *ReadingSnapshotUpdateOne) SetUnreadCount(v int) *ReadingSnapshotUpdateOne {
	_u.mutation.ResetUnreadCount()
	_u.mutation.SetUnreadCount(v)
	return _u
}

// SetNillableUnreadCount sets the "unread_count" field if the given value is not nil.
func (_u *ReadingSnapshotUpdateOne) SetNillableUnreadCount(v *int) *ReadingSnapshotUpdateOne {
	if v != nil {
		_u.SetUnreadCount(*v)
	}
	return _u
}

// AddUnreadCount adds value to the "unread_count" field.
func (_u *ReadingSnapshotUpdateOne) AddUnreadCount(v int) *ReadingSnapshotUpdateOne {
	_u.mutation.AddUnreadCount(v)
	return _u
}

// SetHighPriorityCount sets the "high_priority_count" field.
func (_u *ReadingSnapshotUpdateOne) SetHighPriorityCount(v int) *ReadingSnapshotUpdateOne {
	_u.mutation.ResetHighPriorityCount()
	_u.mutation.SetHighPriorityCount(v)
	return _u
}

// SetNillableHighPriorityCount sets the "high_priority_count" field if the given value is not nil.
func (_u *ReadingSnapshotUpdateOne) SetNillableHighPriorityCount(v *int) *ReadingSnapshotUpdateOne {
	if v != nil {
		_u.SetHighPriorityCount(*v)
	}
	return _u
}

// AddHighPriorityCount adds value to the "high_priority_count" field.
func (_u *ReadingSnapshotUpdateOne) AddHighPriorityCount(v int) *ReadingSnapshotUpdateOne {
	_u.mutation.AddHighPriorityCount(v)
	return _u
}

// Mutation returns the ReadingSnapshotMutation object of the builder.
func (_u *ReadingSnapshotUpdateOne) Mutation() *ReadingSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReadingSnapshotUpdate builder.
func (_u *ReadingSnapshotUpdateOne) Where(ps ...predicate.ReadingSnapshot) *ReadingSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReadingSnapshotUpdateOne) Select(field string, fields ...string) *ReadingSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReadingSnapshot entity.
func (_u *ReadingSnapshotUpdateOne) Save(ctx context.Context) (*ReadingSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReadingSnapshotUpdateOne) SaveX(ctx context.Context) *ReadingSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReadingSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReadingSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ReadingSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ReadingSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(readingsnapshot.Table, readingsnapshot.Columns, sqlgraph.NewFieldSpec(readingsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReadingSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, readingsnapshot.FieldID)
		for _, f := range fields {
			if !readingsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != readingsnapshot.FieldID {
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
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(readingsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(readingsnapshot.FieldSequence, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(readingsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UnreadCount(); ok {
		_spec.SetField(readingsnapshot.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnreadCount(); ok {
		_spec.AddField(readingsnapshot.FieldUnreadCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighPriorityCount(); ok {
		_spec.SetField(readingsnapshot.FieldHighPriorityCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighPriorityCount(); ok {
		_spec.AddField(readingsnapshot.FieldHighPriorityCount, field.TypeInt, value)
	}
	_node = &ReadingSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{readingsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
