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
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

// SubmissionEventUpdate is the builder for updating SubmissionEvent entities.
type SubmissionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdate) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdate) SetSessionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSessionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdate) SetQuestionID(v string) *SubmissionEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableQuestionID(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *SubmissionEventUpdate) SetIdempotencyKey(v string) *SubmissionEventUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableIdempotencyKey(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SubmissionEventUpdate) SetPhase(v string) *SubmissionEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillablePhase(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *SubmissionEventUpdate) SetSelectedOption(v string) *SubmissionEventUpdate {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableSelectedOption(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdate) SetCorrect(v bool) *SubmissionEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCorrect(v *bool) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SubmissionEventUpdate) SetAnswered(v int) *SubmissionEventUpdate {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableAnswered(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SubmissionEventUpdate) AddAnswered(v int) *SubmissionEventUpdate {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SubmissionEventUpdate) SetCorrectCount(v int) *SubmissionEventUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableCorrectCount(v *int) *SubmissionEventUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SubmissionEventUpdate) AddCorrectCount(v int) *SubmissionEventUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubmissionEventUpdate) SetVersion(v int64) *SubmissionEventUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableVersion(v *int64) *SubmissionEventUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubmissionEventUpdate) AddVersion(v int64) *SubmissionEventUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *SubmissionEventUpdate) SetErrorKind(v string) *SubmissionEventUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *SubmissionEventUpdate) SetNillableErrorKind(v *string) *SubmissionEventUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdate) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdempotencyKey(); ok {
		if err := submissionevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.idempotency_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := submissionevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(submissionevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(submissionevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(submissionevent.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(submissionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(submissionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(submissionevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(submissionevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(submissionevent.FieldErrorKind, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionEventUpdateOne is the builder for updating a single SubmissionEvent entity.
type SubmissionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SubmissionEventUpdateOne) SetSessionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSessionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *SubmissionEventUpdateOne) SetQuestionID(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableQuestionID(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *SubmissionEventUpdateOne) SetIdempotencyKey(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableIdempotencyKey(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *SubmissionEventUpdateOne) SetPhase(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillablePhase(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetSelectedOption sets the "selected_option" field.
func (_u *SubmissionEventUpdateOne) SetSelectedOption(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetSelectedOption(v)
	return _u
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableSelectedOption(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetSelectedOption(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionEventUpdateOne) SetCorrect(v bool) *SubmissionEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCorrect(v *bool) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetAnswered sets the "answered" field.
func (_u *SubmissionEventUpdateOne) SetAnswered(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetAnswered()
	_u.mutation.SetAnswered(v)
	return _u
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableAnswered(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetAnswered(*v)
	}
	return _u
}

// AddAnswered adds value to the "answered" field.
func (_u *SubmissionEventUpdateOne) AddAnswered(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddAnswered(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *SubmissionEventUpdateOne) SetCorrectCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableCorrectCount(v *int) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *SubmissionEventUpdateOne) AddCorrectCount(v int) *SubmissionEventUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *SubmissionEventUpdateOne) SetVersion(v int64) *SubmissionEventUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableVersion(v *int64) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *SubmissionEventUpdateOne) AddVersion(v int64) *SubmissionEventUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *SubmissionEventUpdateOne) SetErrorKind(v string) *SubmissionEventUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *SubmissionEventUpdateOne) SetNillableErrorKind(v *string) *SubmissionEventUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_u *SubmissionEventUpdateOne) Mutation() *SubmissionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionEventUpdate builder.
func (_u *SubmissionEventUpdateOne) Where(ps ...predicate.SubmissionEvent) *SubmissionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionEventUpdateOne) Select(field string, fields ...string) *SubmissionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionEvent entity.
func (_u *SubmissionEventUpdateOne) Save(ctx context.Context) (*SubmissionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) SaveX(ctx context.Context) *SubmissionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdempotencyKey(); ok {
		if err := submissionevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.idempotency_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := submissionevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionEventUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionevent.Table, submissionevent.Columns, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionevent.FieldID)
		for _, f := range fields {
			if !submissionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionevent.FieldID {
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
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(submissionevent.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(submissionevent.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.SelectedOption(); ok {
		_spec.SetField(submissionevent.FieldSelectedOption, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Answered(); ok {
		_spec.SetField(submissionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnswered(); ok {
		_spec.AddField(submissionevent.FieldAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(submissionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(submissionevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(submissionevent.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(submissionevent.FieldErrorKind, field.TypeString, value)
	}
	_node = &SubmissionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
