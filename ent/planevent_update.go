// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/planevent"
	"github.com/arnav/studium/ent/predicate"
	"github.com/arnav/studium/ent/schema"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdate) SetPlanID(v string) *PlanEventUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePlanID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanEventUpdate) SetUserID(v string) *PlanEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableUserID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PlanEventUpdate) SetDate(v string) *PlanEventUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableDate(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PlanEventUpdate) SetStrategy(v string) *PlanEventUpdate {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableStrategy(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *PlanEventUpdate) SetModelVersion(v string) *PlanEventUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableModelVersion(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PlanEventUpdate) SetTotalMinutes(v int) *PlanEventUpdate {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTotalMinutes(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PlanEventUpdate) AddTotalMinutes(v int) *PlanEventUpdate {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetEstimatedGain sets the "estimated_gain" field.
func (_u *PlanEventUpdate) SetEstimatedGain(v float64) *PlanEventUpdate {
	_u.mutation.ResetEstimatedGain()
	_u.mutation.SetEstimatedGain(v)
	return _u
}

// SetNillableEstimatedGain sets the "estimated_gain" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableEstimatedGain(v *float64) *PlanEventUpdate {
	if v != nil {
		_u.SetEstimatedGain(*v)
	}
	return _u
}

// AddEstimatedGain adds value to the "estimated_gain" field.
func (_u *PlanEventUpdate) AddEstimatedGain(v float64) *PlanEventUpdate {
	_u.mutation.AddEstimatedGain(v)
	return _u
}

// SetSlots sets the "slots" field.
func (_u *PlanEventUpdate) SetSlots(v []schema.PlanSlotData) *PlanEventUpdate {
	_u.mutation.SetSlots(v)
	return _u
}

// AppendSlots appends value to the "slots" field.
func (_u *PlanEventUpdate) AppendSlots(v []schema.PlanSlotData) *PlanEventUpdate {
	_u.mutation.AppendSlots(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := planevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := planevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := planevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := planevent.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(planevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(planevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(planevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(planevent.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedGain(); ok {
		_spec.SetField(planevent.FieldEstimatedGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedGain(); ok {
		_spec.AddField(planevent.FieldEstimatedGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Slots(); ok {
		_spec.SetField(planevent.FieldSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldSlots, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanEventUpdateOne) SetPlanID(v string) *PlanEventUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePlanID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PlanEventUpdateOne) SetUserID(v string) *PlanEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableUserID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PlanEventUpdateOne) SetDate(v string) *PlanEventUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableDate(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetStrategy sets the "strategy" field.
func (_u *PlanEventUpdateOne) SetStrategy(v string) *PlanEventUpdateOne {
	_u.mutation.SetStrategy(v)
	return _u
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableStrategy(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetStrategy(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *PlanEventUpdateOne) SetModelVersion(v string) *PlanEventUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableModelVersion(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetTotalMinutes sets the "total_minutes" field.
func (_u *PlanEventUpdateOne) SetTotalMinutes(v int) *PlanEventUpdateOne {
	_u.mutation.ResetTotalMinutes()
	_u.mutation.SetTotalMinutes(v)
	return _u
}

// SetNillableTotalMinutes sets the "total_minutes" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTotalMinutes(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTotalMinutes(*v)
	}
	return _u
}

// AddTotalMinutes adds value to the "total_minutes" field.
func (_u *PlanEventUpdateOne) AddTotalMinutes(v int) *PlanEventUpdateOne {
	_u.mutation.AddTotalMinutes(v)
	return _u
}

// SetEstimatedGain sets the "estimated_gain" field.
func (_u *PlanEventUpdateOne) SetEstimatedGain(v float64) *PlanEventUpdateOne {
	_u.mutation.ResetEstimatedGain()
	_u.mutation.SetEstimatedGain(v)
	return _u
}

// SetNillableEstimatedGain sets the "estimated_gain" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableEstimatedGain(v *float64) *PlanEventUpdateOne {
	if v != nil {
		_u.SetEstimatedGain(*v)
	}
	return _u
}

// AddEstimatedGain adds value to the "estimated_gain" field.
func (_u *PlanEventUpdateOne) AddEstimatedGain(v float64) *PlanEventUpdateOne {
	_u.mutation.AddEstimatedGain(v)
	return _u
}

// SetSlots sets the "slots" field.
func (_u *PlanEventUpdateOne) SetSlots(v []schema.PlanSlotData) *PlanEventUpdateOne {
	_u.mutation.SetSlots(v)
	return _u
}

// AppendSlots appends value to the "slots" field.
func (_u *PlanEventUpdateOne) AppendSlots(v []schema.PlanSlotData) *PlanEventUpdateOne {
	_u.mutation.AppendSlots(v)
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanEventUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planevent.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.plan_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := planevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Date(); ok {
		if err := planevent.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Strategy(); ok {
		if err := planevent.StrategyValidator(v); err != nil {
			return &ValidationError{Name: "strategy", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.strategy": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := planevent.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "PlanEvent.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planevent.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(planevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(planevent.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Strategy(); ok {
		_spec.SetField(planevent.FieldStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(planevent.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalMinutes(); ok {
		_spec.SetField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMinutes(); ok {
		_spec.AddField(planevent.FieldTotalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EstimatedGain(); ok {
		_spec.SetField(planevent.FieldEstimatedGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEstimatedGain(); ok {
		_spec.AddField(planevent.FieldEstimatedGain, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Slots(); ok {
		_spec.SetField(planevent.FieldSlots, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSlots(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldSlots, value)
		})
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
