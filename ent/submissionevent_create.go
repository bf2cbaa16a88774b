// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skilldrill/ent/submissionevent"
)

// SubmissionEventCreate is the builder for creating a SubmissionEvent entity.
type SubmissionEventCreate struct {
	config
	mutation *SubmissionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SubmissionEventCreate) SetSequence(v int64) *SubmissionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SubmissionEventCreate) SetTimestamp(v time.Time) *SubmissionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableTimestamp(v *time.Time) *SubmissionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SubmissionEventCreate) SetSessionID(v string) *SubmissionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *SubmissionEventCreate) SetQuestionID(v string) *SubmissionEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *SubmissionEventCreate) SetIdempotencyKey(v string) *SubmissionEventCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *SubmissionEventCreate) SetPhase(v string) *SubmissionEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetSelectedOption sets the "selected_option" field.
func (_c *SubmissionEventCreate) SetSelectedOption(v string) *SubmissionEventCreate {
	_c.mutation.SetSelectedOption(v)
	return _c
}

// SetNillableSelectedOption sets the "selected_option" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableSelectedOption(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetSelectedOption(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *SubmissionEventCreate) SetCorrect(v bool) *SubmissionEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableCorrect(v *bool) *SubmissionEventCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetAnswered sets the "answered" field.
func (_c *SubmissionEventCreate) SetAnswered(v int) *SubmissionEventCreate {
	_c.mutation.SetAnswered(v)
	return _c
}

// SetNillableAnswered sets the "answered" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableAnswered(v *int) *SubmissionEventCreate {
	if v != nil {
		_c.SetAnswered(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *SubmissionEventCreate) SetCorrectCount(v int) *SubmissionEventCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableCorrectCount(v *int) *SubmissionEventCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *SubmissionEventCreate) SetVersion(v int64) *SubmissionEventCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableVersion(v *int64) *SubmissionEventCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *SubmissionEventCreate) SetErrorKind(v string) *SubmissionEventCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *SubmissionEventCreate) SetNillableErrorKind(v *string) *SubmissionEventCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// Mutation returns the SubmissionEventMutation object of the builder.
func (_c *SubmissionEventCreate) Mutation() *SubmissionEventMutation {
	return _c.mutation
}

// Save creates the SubmissionEvent in the database.
func (_c *SubmissionEventCreate) Save(ctx context.Context) (*SubmissionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionEventCreate) SaveX(ctx context.Context) *SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := submissionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		v := submissionevent.DefaultSelectedOption
		_c.mutation.SetSelectedOption(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := submissionevent.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Answered(); !ok {
		v := submissionevent.DefaultAnswered
		_c.mutation.SetAnswered(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := submissionevent.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := submissionevent.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ErrorKind(); !ok {
		v := submissionevent.DefaultErrorKind
		_c.mutation.SetErrorKind(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SubmissionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SubmissionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SubmissionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := submissionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "SubmissionEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := submissionevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "SubmissionEvent.idempotency_key"`)}
	}
	if v, ok := _c.mutation.IdempotencyKey(); ok {
		if err := submissionevent.IdempotencyKeyValidator(v); err != nil {
			return &ValidationError{Name: "idempotency_key", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.idempotency_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "SubmissionEvent.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := submissionevent.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "SubmissionEvent.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SelectedOption(); !ok {
		return &ValidationError{Name: "selected_option", err: errors.New(`ent: missing required field "SubmissionEvent.selected_option"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "SubmissionEvent.correct"`)}
	}
	if _, ok := _c.mutation.Answered(); !ok {
		return &ValidationError{Name: "answered", err: errors.New(`ent: missing required field "SubmissionEvent.answered"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "SubmissionEvent.correct_count"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SubmissionEvent.version"`)}
	}
	if _, ok := _c.mutation.ErrorKind(); !ok {
		return &ValidationError{Name: "error_kind", err: errors.New(`ent: missing required field "SubmissionEvent.error_kind"`)}
	}
	return nil
}

func (_c *SubmissionEventCreate) sqlSave(ctx context.Context) (*SubmissionEvent, error) {
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

func (_c *SubmissionEventCreate) createSpec() (*SubmissionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionevent.Table, sqlgraph.NewFieldSpec(submissionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(submissionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(submissionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(submissionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(submissionevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(submissionevent.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(submissionevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.SelectedOption(); ok {
		_spec.SetField(submissionevent.FieldSelectedOption, field.TypeString, value)
		_node.SelectedOption = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(submissionevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Answered(); ok {
		_spec.SetField(submissionevent.FieldAnswered, field.TypeInt, value)
		_node.Answered = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(submissionevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(submissionevent.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(submissionevent.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = value
	}
	return _node, _spec
}

// SubmissionEventCreateBulk is the builder for creating many SubmissionEvent entities in bulk.
type SubmissionEventCreateBulk struct {
	config
	err      error
	builders []*SubmissionEventCreate
}

// Save creates the SubmissionEvent entities in the database.
func (_c *SubmissionEventCreateBulk) Save(ctx context.Context) ([]*SubmissionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionEventMutation)
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
func (_c *SubmissionEventCreateBulk) SaveX(ctx context.Context) []*SubmissionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
