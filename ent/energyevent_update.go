// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/energyevent"
	"github.com/arnav/studium/ent/predicate"
)

// EnergyEventUpdate is the builder for updating EnergyEvent entities.
type EnergyEventUpdate struct {
	config
	hooks    []Hook
	mutation *EnergyEventMutation
}

// Where appends a list predicates to the EnergyEventUpdate builder.
func (_u *EnergyEventUpdate) Where(ps ...predicate.EnergyEvent) *EnergyEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EnergyEventUpdate) SetUserID(v string) *EnergyEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EnergyEventUpdate) SetNillableUserID(v *string) *EnergyEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSleepHours sets the "sleep_hours" field.
func (_u *EnergyEventUpdate) SetSleepHours(v float64) *EnergyEventUpdate {
	_u.mutation.ResetSleepHours()
	_u.mutation.SetSleepHours(v)
	return _u
}

// SetNillableSleepHours sets the "sleep_hours" field if the given value is not nil.
func (_u *EnergyEventUpdate) SetNillableSleepHours(v *float64) *EnergyEventUpdate {
	if v != nil {
		_u.SetSleepHours(*v)
	}
	return _u
}

// AddSleepHours adds value to the "sleep_hours" field.
func (_u *EnergyEventUpdate) AddSleepHours(v float64) *EnergyEventUpdate {
	_u.mutation.AddSleepHours(v)
	return _u
}

// SetTiredness sets the "tiredness" field.
func (_u *EnergyEventUpdate) SetTiredness(v int) *EnergyEventUpdate {
	_u.mutation.ResetTiredness()
	_u.mutation.SetTiredness(v)
	return _u
}

// SetNillableTiredness sets the "tiredness" field if the given value is not nil.
func (_u *EnergyEventUpdate) SetNillableTiredness(v *int) *EnergyEventUpdate {
	if v != nil {
		_u.SetTiredness(*v)
	}
	return _u
}

// AddTiredness adds value to the "tiredness" field.
func (_u *EnergyEventUpdate) AddTiredness(v int) *EnergyEventUpdate {
	_u.mutation.AddTiredness(v)
	return _u
}

// Mutation returns the EnergyEventMutation object of the builder.
func (_u *EnergyEventUpdate) Mutation() *EnergyEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnergyEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnergyEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnergyEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnergyEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnergyEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := energyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EnergyEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(energyevent.Table, energyevent.Columns, sqlgraph.NewFieldSpec(energyevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(energyevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SleepHours(); ok {
		_spec.SetField(energyevent.FieldSleepHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSleepHours(); ok {
		_spec.AddField(energyevent.FieldSleepHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tiredness(); ok {
		_spec.SetField(energyevent.FieldTiredness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTiredness(); ok {
		_spec.AddField(energyevent.FieldTiredness, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{energyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnergyEventUpdateOne is the builder for updating a single EnergyEvent entity.
type EnergyEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnergyEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *EnergyEventUpdateOne) SetUserID(v string) *EnergyEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EnergyEventUpdateOne) SetNillableUserID(v *string) *EnergyEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSleepHours sets the "sleep_hours" field.
func (_u *EnergyEventUpdateOne) SetSleepHours(v float64) *EnergyEventUpdateOne {
	_u.mutation.ResetSleepHours()
	_u.mutation.SetSleepHours(v)
	return _u
}

// SetNillableSleepHours sets the "sleep_hours" field if the given value is not nil.
func (_u *EnergyEventUpdateOne) SetNillableSleepHours(v *float64) *EnergyEventUpdateOne {
	if v != nil {
		_u.SetSleepHours(*v)
	}
	return _u
}

// AddSleepHours adds value to the "sleep_hours" field.
func (_u *EnergyEventUpdateOne) AddSleepHours(v float64) *EnergyEventUpdateOne {
	_u.mutation.AddSleepHours(v)
	return _u
}

// SetTiredness sets the "tiredness" field.
func (_u *EnergyEventUpdateOne) SetTiredness(v int) *EnergyEventUpdateOne {
	_u.mutation.ResetTiredness()
	_u.mutation.SetTiredness(v)
	return _u
}

// SetNillableTiredness sets the "tiredness" field if the given value is not nil.
func (_u *EnergyEventUpdateOne) SetNillableTiredness(v *int) *EnergyEventUpdateOne {
	if v != nil {
		_u.SetTiredness(*v)
	}
	return _u
}

// AddTiredness adds value to the "tiredness" field.
func (_u *EnergyEventUpdateOne) AddTiredness(v int) *EnergyEventUpdateOne {
	_u.mutation.AddTiredness(v)
	return _u
}

// Mutation returns the EnergyEventMutation object of the builder.
func (_u *EnergyEventUpdateOne) Mutation() *EnergyEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EnergyEventUpdate builder.
func (_u *EnergyEventUpdateOne) Where(ps ...predicate.EnergyEvent) *EnergyEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnergyEventUpdateOne) Select(field string, fields ...string) *EnergyEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnergyEvent entity.
func (_u *EnergyEventUpdateOne) Save(ctx context.Context) (*EnergyEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnergyEventUpdateOne) SaveX(ctx context.Context) *EnergyEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnergyEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnergyEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnergyEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := energyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyEvent.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EnergyEventUpdateOne) sqlSave(ctx context.Context) (_node *EnergyEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(energyevent.Table, energyevent.Columns, sqlgraph.NewFieldSpec(energyevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnergyEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, energyevent.FieldID)
		for _, f := range fields {
			if !energyevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != energyevent.FieldID {
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
		_spec.SetField(energyevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SleepHours(); ok {
		_spec.SetField(energyevent.FieldSleepHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSleepHours(); ok {
		_spec.AddField(energyevent.FieldSleepHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Tiredness(); ok {
		_spec.SetField(energyevent.FieldTiredness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTiredness(); ok {
		_spec.AddField(energyevent.FieldTiredness, field.TypeInt, value)
	}
	_node = &EnergyEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{energyevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
