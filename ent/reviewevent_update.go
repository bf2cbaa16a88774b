// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/predicate"
	"github.com/abhisek/skilldrill/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *ReviewEventUpdate) SetReviewID(v string) *ReviewEventUpdate {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableReviewID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdate) SetAction(v string) *ReviewEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableAction(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdate) SetCorrect(v bool) *ReviewEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableCorrect(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReinforced sets the "reinforced" field.
func (_u *ReviewEventUpdate) SetReinforced(v bool) *ReviewEventUpdate {
	_u.mutation.SetReinforced(v)
	return _u
}

// SetNillableReinforced sets the "reinforced" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableReinforced(v *bool) *ReviewEventUpdate {
	if v != nil {
		_u.SetReinforced(*v)
	}
	return _u
}

// SetReviewedCount sets the "reviewed_count" field.
func (_u *ReviewEventUpdate) SetReviewedCount(v int) *ReviewEventUpdate {
	_u.mutation.ResetReviewedCount()
	_u.mutation.SetReviewedCount(v)
	return _u
}

// SetNillableReviewedCount sets the "reviewed_count" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableReviewedCount(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetReviewedCount(*v)
	}
	return _u
}

// AddReviewedCount adds value to the "reviewed_count" field.
func (_u *ReviewEventUpdate) AddReviewedCount(v int) *ReviewEventUpdate {
	_u.mutation.AddReviewedCount(v)
	return _u
}

// SetReinforcedCount sets the "reinforced_count" field.
func (_u *ReviewEventUpdate) SetReinforcedCount(v int) *ReviewEventUpdate {
	_u.mutation.ResetReinforcedCount()
	_u.mutation.SetReinforcedCount(v)
	return _u
}

// SetNillableReinforcedCount sets the "reinforced_count" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableReinforcedCount(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetReinforcedCount(*v)
	}
	return _u
}

// AddReinforcedCount adds value to the "reinforced_count" field.
func (_u *ReviewEventUpdate) AddReinforcedCount(v int) *ReviewEventUpdate {
	_u.mutation.AddReinforcedCount(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewID(); ok {
		_spec.SetField(reviewevent.FieldReviewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reinforced(); ok {
		_spec.SetField(reviewevent.FieldReinforced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedCount(); ok {
		_spec.SetField(reviewevent.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedCount(); ok {
		_spec.AddField(reviewevent.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReinforcedCount(); ok {
		_spec.SetField(reviewevent.FieldReinforcedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReinforcedCount(); ok {
		_spec.AddField(reviewevent.FieldReinforcedCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReviewID sets the "review_id" field.
func (_u *ReviewEventUpdateOne) SetReviewID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetReviewID(v)
	return _u
}

// SetNillableReviewID sets the "review_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableReviewID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetReviewID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ReviewEventUpdateOne) SetAction(v string) *ReviewEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableAction(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ReviewEventUpdateOne) SetCorrect(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableCorrect(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReinforced sets the "reinforced" field.
func (_u *ReviewEventUpdateOne) SetReinforced(v bool) *ReviewEventUpdateOne {
	_u.mutation.SetReinforced(v)
	return _u
}

// SetNillableReinforced sets the "reinforced" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableReinforced(v *bool) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetReinforced(*v)
	}
	return _u
}

// SetReviewedCount sets the "reviewed_count" field.
func (_u *ReviewEventUpdateOne) SetReviewedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetReviewedCount()
	_u.mutation.SetReviewedCount(v)
	return _u
}

// SetNillableReviewedCount sets the "reviewed_count" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableReviewedCount(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetReviewedCount(*v)
	}
	return _u
}

// AddReviewedCount adds value to the "reviewed_count" field.
func (_u *ReviewEventUpdateOne) AddReviewedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.AddReviewedCount(v)
	return _u
}

// SetReinforcedCount sets the "reinforced_count" field.
func (_u *ReviewEventUpdateOne) SetReinforcedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetReinforcedCount()
	_u.mutation.SetReinforcedCount(v)
	return _u
}

// SetNillableReinforcedCount sets the "reinforced_count" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableReinforcedCount(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetReinforcedCount(*v)
	}
	return _u
}

// AddReinforcedCount adds value to the "reinforced_count" field.
func (_u *ReviewEventUpdateOne) AddReinforcedCount(v int) *ReviewEventUpdateOne {
	_u.mutation.AddReinforcedCount(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := reviewevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewID(); ok {
		_spec.SetField(reviewevent.FieldReviewID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(reviewevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(reviewevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reinforced(); ok {
		_spec.SetField(reviewevent.FieldReinforced, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewedCount(); ok {
		_spec.SetField(reviewevent.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewedCount(); ok {
		_spec.AddField(reviewevent.FieldReviewedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReinforcedCount(); ok {
		_spec.SetField(reviewevent.FieldReinforcedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReinforcedCount(); ok {
		_spec.AddField(reviewevent.FieldReinforcedCount, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
