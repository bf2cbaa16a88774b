// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/predicate"
	"github.com/abhisek/skilldrill/ent/readingsnapshot"
)

// ReadingSnapshotDelete is the builder for deleting a ReadingSnapshot entity.
type ReadingSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *ReadingSnapshotMutation
}

// Where appends a list predicates to the ReadingSnapshotDelete builder.
func (_d *ReadingSnapshotDelete) Where(ps ...predicate.ReadingSnapshot) *ReadingSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReadingSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadingSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReadingSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(readingsnapshot.Table, sqlgraph.NewFieldSpec(readingsnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReadingSnapshotDeleteOne is the builder for deleting a single ReadingSnapshot entity.
type ReadingSnapshotDeleteOne struct {
	_d *ReadingSnapshotDelete
}

// Where appends a list predicates to the ReadingSnapshotDelete builder.
func (_d *ReadingSnapshotDeleteOne) Where(ps ...predicate.ReadingSnapshot) *ReadingSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReadingSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{readingsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReadingSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
