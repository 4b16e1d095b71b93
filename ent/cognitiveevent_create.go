// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/cognitiveevent"
)

// CognitiveEventCreate is the builder for creating a CognitiveEvent entity.
type CognitiveEventCreate struct {
	config
	mutation *CognitiveEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CognitiveEventCreate) SetSequence(v int64) *CognitiveEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CognitiveEventCreate) SetTimestamp(v time.Time) *CognitiveEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CognitiveEventCreate) SetNillableTimestamp(v *time.Time) *CognitiveEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *CognitiveEventCreate) SetUserID(v string) *CognitiveEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *CognitiveEventCreate) SetQuestionID(v string) *CognitiveEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *CognitiveEventCreate) SetSubject(v string) *CognitiveEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_c *CognitiveEventCreate) SetTimeTakenSecs(v float64) *CognitiveEventCreate {
	_c.mutation.SetTimeTakenSecs(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *CognitiveEventCreate) SetCorrect(v bool) *CognitiveEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *CognitiveEventCreate) SetConfidence(v float64) *CognitiveEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_c *CognitiveEventCreate) Mutation() *CognitiveEventMutation {
	return _c.mutation
}

// Save creates the CognitiveEvent in the database.
func (_c *CognitiveEventCreate) Save(ctx context.Context) (*CognitiveEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CognitiveEventCreate) SaveX(ctx context.Context) *CognitiveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CognitiveEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := cognitiveevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CognitiveEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CognitiveEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CognitiveEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CognitiveEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := cognitiveevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "CognitiveEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := cognitiveevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "CognitiveEvent.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := cognitiveevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeTakenSecs(); !ok {
		return &ValidationError{Name: "time_taken_secs", err: errors.New(`ent: missing required field "CognitiveEvent.time_taken_secs"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "CognitiveEvent.correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "CognitiveEvent.confidence"`)}
	}
	return nil
}

func (_c *CognitiveEventCreate) sqlSave(ctx context.Context) (*CognitiveEvent, error) {
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

func (_c *CognitiveEventCreate) createSpec() (*CognitiveEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CognitiveEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cognitiveevent.Table, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(cognitiveevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(cognitiveevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(cognitiveevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(cognitiveevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(cognitiveevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.TimeTakenSecs(); ok {
		_spec.SetField(cognitiveevent.FieldTimeTakenSecs, field.TypeFloat64, value)
		_node.TimeTakenSecs = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(cognitiveevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(cognitiveevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	return _node, _spec
}

// CognitiveEventCreateBulk is the builder for creating many CognitiveEvent entities in bulk.
type CognitiveEventCreateBulk struct {
	config
	err      error
	builders []*CognitiveEventCreate
}

// Save creates the CognitiveEvent entities in the database.
func (_c *CognitiveEventCreateBulk) Save(ctx context.Context) ([]*CognitiveEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CognitiveEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CognitiveEventMutation)
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
func (_c *CognitiveEventCreateBulk) SaveX(ctx context.Context) []*CognitiveEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CognitiveEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CognitiveEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
