// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/feedbackevent"
	"github.com/arnav/studium/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackEventUpdate) SetUserID(v string) *FeedbackEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableUserID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *FeedbackEventUpdate) SetTopicID(v string) *FeedbackEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableTopicID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *FeedbackEventUpdate) SetCompletionRate(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableCompletionRate(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *FeedbackEventUpdate) AddCompletionRate(v float64) *FeedbackEventUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *FeedbackEventUpdate) SetDifficulty(v int) *FeedbackEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableDifficulty(v *int) *FeedbackEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *FeedbackEventUpdate) AddDifficulty(v int) *FeedbackEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuizAccuracy sets the "quiz_accuracy" field.
func (_u *FeedbackEventUpdate) SetQuizAccuracy(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetQuizAccuracy()
	_u.mutation.SetQuizAccuracy(v)
	return _u
}

// SetNillableQuizAccuracy sets the "quiz_accuracy" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableQuizAccuracy(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetQuizAccuracy(*v)
	}
	return _u
}

// AddQuizAccuracy adds value to the "quiz_accuracy" field.
func (_u *FeedbackEventUpdate) AddQuizAccuracy(v float64) *FeedbackEventUpdate {
	_u.mutation.AddQuizAccuracy(v)
	return _u
}

// SetLearningRate sets the "learning_rate" field.
func (_u *FeedbackEventUpdate) SetLearningRate(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetLearningRate()
	_u.mutation.SetLearningRate(v)
	return _u
}

// SetNillableLearningRate sets the "learning_rate" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableLearningRate(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetLearningRate(*v)
	}
	return _u
}

// AddLearningRate adds value to the "learning_rate" field.
func (_u *FeedbackEventUpdate) AddLearningRate(v float64) *FeedbackEventUpdate {
	_u.mutation.AddLearningRate(v)
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *FeedbackEventUpdate) SetMasteryBefore(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableMasteryBefore(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *FeedbackEventUpdate) AddMasteryBefore(v float64) *FeedbackEventUpdate {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *FeedbackEventUpdate) SetMasteryAfter(v float64) *FeedbackEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableMasteryAfter(v *float64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *FeedbackEventUpdate) AddMasteryAfter(v float64) *FeedbackEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := feedbackevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := feedbackevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedbackevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(feedbackevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(feedbackevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(feedbackevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(feedbackevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(feedbackevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizAccuracy(); ok {
		_spec.SetField(feedbackevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizAccuracy(); ok {
		_spec.AddField(feedbackevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningRate(); ok {
		_spec.SetField(feedbackevent.FieldLearningRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningRate(); ok {
		_spec.AddField(feedbackevent.FieldLearningRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(feedbackevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(feedbackevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackEventUpdateOne) SetUserID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableUserID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *FeedbackEventUpdateOne) SetTopicID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableTopicID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *FeedbackEventUpdateOne) SetCompletionRate(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableCompletionRate(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *FeedbackEventUpdateOne) AddCompletionRate(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *FeedbackEventUpdateOne) SetDifficulty(v int) *FeedbackEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableDifficulty(v *int) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *FeedbackEventUpdateOne) AddDifficulty(v int) *FeedbackEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetQuizAccuracy sets the "quiz_accuracy" field.
func (_u *FeedbackEventUpdateOne) SetQuizAccuracy(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetQuizAccuracy()
	_u.mutation.SetQuizAccuracy(v)
	return _u
}

// SetNillableQuizAccuracy sets the "quiz_accuracy" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableQuizAccuracy(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetQuizAccuracy(*v)
	}
	return _u
}

// AddQuizAccuracy adds value to the "quiz_accuracy" field.
func (_u *FeedbackEventUpdateOne) AddQuizAccuracy(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddQuizAccuracy(v)
	return _u
}

// SetLearningRate sets the "learning_rate" field.
func (_u *FeedbackEventUpdateOne) SetLearningRate(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetLearningRate()
	_u.mutation.SetLearningRate(v)
	return _u
}

// SetNillableLearningRate sets the "learning_rate" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableLearningRate(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetLearningRate(*v)
	}
	return _u
}

// AddLearningRate adds value to the "learning_rate" field.
func (_u *FeedbackEventUpdateOne) AddLearningRate(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddLearningRate(v)
	return _u
}

// SetMasteryBefore sets the "mastery_before" field.
func (_u *FeedbackEventUpdateOne) SetMasteryBefore(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetMasteryBefore()
	_u.mutation.SetMasteryBefore(v)
	return _u
}

// SetNillableMasteryBefore sets the "mastery_before" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableMasteryBefore(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetMasteryBefore(*v)
	}
	return _u
}

// AddMasteryBefore adds value to the "mastery_before" field.
func (_u *FeedbackEventUpdateOne) AddMasteryBefore(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddMasteryBefore(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *FeedbackEventUpdateOne) SetMasteryAfter(v float64) *FeedbackEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableMasteryAfter(v *float64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *FeedbackEventUpdateOne) AddMasteryAfter(v float64) *FeedbackEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := feedbackevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := feedbackevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
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
		_spec.SetField(feedbackevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(feedbackevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(feedbackevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(feedbackevent.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(feedbackevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(feedbackevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizAccuracy(); ok {
		_spec.SetField(feedbackevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizAccuracy(); ok {
		_spec.AddField(feedbackevent.FieldQuizAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearningRate(); ok {
		_spec.SetField(feedbackevent.FieldLearningRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLearningRate(); ok {
		_spec.AddField(feedbackevent.FieldLearningRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryBefore(); ok {
		_spec.SetField(feedbackevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryBefore(); ok {
		_spec.AddField(feedbackevent.FieldMasteryBefore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(feedbackevent.FieldMasteryAfter, field.TypeFloat64, value)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
