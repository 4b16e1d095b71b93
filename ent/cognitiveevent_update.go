// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/cognitiveevent"
	"github.com/arnav/studium/ent/predicate"
)

// CognitiveEventUpdate is the builder for updating CognitiveEvent entities.
type CognitiveEventUpdate struct {
	config
	hooks    []Hook
	mutation *CognitiveEventMutation
}

// Where appends a list predicates to the CognitiveEventUpdate builder.
func (_u *CognitiveEventUpdate) Where(ps ...predicate.CognitiveEvent) *CognitiveEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *CognitiveEventUpdate) SetUserID(v string) *CognitiveEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableUserID(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *CognitiveEventUpdate) SetQuestionID(v string) *CognitiveEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableQuestionID(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CognitiveEventUpdate) SetSubject(v string) *CognitiveEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableSubject(v *string) *CognitiveEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *CognitiveEventUpdate) SetTimeTakenSecs(v float64) *CognitiveEventUpdate {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableTimeTakenSecs(v *float64) *CognitiveEventUpdate {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *CognitiveEventUpdate) AddTimeTakenSecs(v float64) *CognitiveEventUpdate {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CognitiveEventUpdate) SetCorrect(v bool) *CognitiveEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableCorrect(v *bool) *CognitiveEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CognitiveEventUpdate) SetConfidence(v float64) *CognitiveEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CognitiveEventUpdate) SetNillableConfidence(v *float64) *CognitiveEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CognitiveEventUpdate) AddConfidence(v float64) *CognitiveEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_u *CognitiveEventUpdate) Mutation() *CognitiveEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CognitiveEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CognitiveEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cognitiveevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := cognitiveevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := cognitiveevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitiveevent.Table, cognitiveevent.Columns, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cognitiveevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(cognitiveevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(cognitiveevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(cognitiveevent.FieldTimeTakenSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(cognitiveevent.FieldTimeTakenSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(cognitiveevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cognitiveevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cognitiveevent.FieldConfidence, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitiveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CognitiveEventUpdateOne is the builder for updating a single CognitiveEvent entity.
type CognitiveEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CognitiveEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *CognitiveEventUpdateOne) SetUserID(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableUserID(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *CognitiveEventUpdateOne) SetQuestionID(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableQuestionID(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *CognitiveEventUpdateOne) SetSubject(v string) *CognitiveEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableSubject(v *string) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *CognitiveEventUpdateOne) SetTimeTakenSecs(v float64) *CognitiveEventUpdateOne {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableTimeTakenSecs(v *float64) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *CognitiveEventUpdateOne) AddTimeTakenSecs(v float64) *CognitiveEventUpdateOne {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CognitiveEventUpdateOne) SetCorrect(v bool) *CognitiveEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableCorrect(v *bool) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *CognitiveEventUpdateOne) SetConfidence(v float64) *CognitiveEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *CognitiveEventUpdateOne) SetNillableConfidence(v *float64) *CognitiveEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *CognitiveEventUpdateOne) AddConfidence(v float64) *CognitiveEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// Mutation returns the CognitiveEventMutation object of the builder.
func (_u *CognitiveEventUpdateOne) Mutation() *CognitiveEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CognitiveEventUpdate builder.
func (_u *CognitiveEventUpdateOne) Where(ps ...predicate.CognitiveEvent) *CognitiveEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CognitiveEventUpdateOne) Select(field string, fields ...string) *CognitiveEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CognitiveEvent entity.
func (_u *CognitiveEventUpdateOne) Save(ctx context.Context) (*CognitiveEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CognitiveEventUpdateOne) SaveX(ctx context.Context) *CognitiveEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CognitiveEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CognitiveEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CognitiveEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := cognitiveevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := cognitiveevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := cognitiveevent.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "CognitiveEvent.subject": %w`, err)}
		}
	}
	return nil
}

func (_u *CognitiveEventUpdateOne) sqlSave(ctx context.Context) (_node *CognitiveEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cognitiveevent.Table, cognitiveevent.Columns, sqlgraph.NewFieldSpec(cognitiveevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CognitiveEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cognitiveevent.FieldID)
		for _, f := range fields {
			if !cognitiveevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cognitiveevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(cognitiveevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(cognitiveevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(cognitiveevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(cognitiveevent.FieldTimeTakenSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(cognitiveevent.FieldTimeTakenSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(cognitiveevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(cognitiveevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(cognitiveevent.FieldConfidence, field.TypeFloat64, value)
	}
	_node = &CognitiveEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cognitiveevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
