// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/gatewaycallevent"
	"github.com/abhisek/skilldrill/ent/predicate"
)

// GatewayCallEventDelete is the builder for deleting a GatewayCallEvent entity.
type GatewayCallEventDelete struct {
	config
	hooks    []Hook
	mutation *GatewayCallEventMutation
}

// Where appends a list predicates to the GatewayCallEventDelete builder.
func (_d *GatewayCallEventDelete) Where(ps ...predicate.GatewayCallEvent) *GatewayCallEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GatewayCallEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GatewayCallEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GatewayCallEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gatewaycallevent.Table, sqlgraph.NewFieldSpec(gatewaycallevent.FieldID, field.TypeInt))
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

// GatewayCallEventDeleteOne is the builder for deleting a single GatewayCallEvent entity.
type GatewayCallEventDeleteOne struct {
	_d *GatewayCallEventDelete
}

// Where appends a list predicates to the GatewayCallEventDelete builder.
func (_d *GatewayCallEventDeleteOne) Where(ps ...predicate.GatewayCallEvent) *GatewayCallEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GatewayCallEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gatewaycallevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GatewayCallEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
