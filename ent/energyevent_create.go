// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arnav/studium/ent/energyevent"
)

// EnergyEventCreate is the builder for creating a EnergyEvent entity.
type EnergyEventCreate struct {
	config
	mutation *EnergyEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EnergyEventCreate) SetSequence(v int64) *EnergyEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EnergyEventCreate) SetTimestamp(v time.Time) *EnergyEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EnergyEventCreate) SetNillableTimestamp(v *time.Time) *EnergyEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EnergyEventCreate) SetUserID(v string) *EnergyEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSleepHours sets the "sleep_hours" field.
func (_c *EnergyEventCreate) SetSleepHours(v float64) *EnergyEventCreate {
	_c.mutation.SetSleepHours(v)
	return _c
}

// SetTiredness sets the "tiredness" field.
func (_c *EnergyEventCreate) SetTiredness(v int) *EnergyEventCreate {
	_c.mutation.SetTiredness(v)
	return _c
}

// Mutation returns the EnergyEventMutation object of the builder.
func (_c *EnergyEventCreate) Mutation() *EnergyEventMutation {
	return _c.mutation
}

// Save creates the EnergyEvent in the database.
func (_c *EnergyEventCreate) Save(ctx context.Context) (*EnergyEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnergyEventCreate) SaveX(ctx context.Context) *EnergyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnergyEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnergyEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnergyEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := energyevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnergyEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EnergyEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EnergyEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "EnergyEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := energyevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "EnergyEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SleepHours(); !ok {
		return &ValidationError{Name: "sleep_hours", err: errors.New(`ent: missing required field "EnergyEvent.sleep_hours"`)}
	}
	if _, ok := _c.mutation.Tiredness(); !ok {
		return &ValidationError{Name: "tiredness", err: errors.New(`ent: missing required field "EnergyEvent.tiredness"`)}
	}
	return nil
}

func (_c *EnergyEventCreate) sqlSave(ctx context.Context) (*EnergyEvent, error) {
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

func (_c *EnergyEventCreate) createSpec() (*EnergyEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EnergyEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(energyevent.Table, sqlgraph.NewFieldSpec(energyevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(energyevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(energyevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(energyevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SleepHours(); ok {
		_spec.SetField(energyevent.FieldSleepHours, field.TypeFloat64, value)
		_node.SleepHours = value
	}
	if value, ok := _c.mutation.Tiredness(); ok {
		_spec.SetField(energyevent.FieldTiredness, field.TypeInt, value)
		_node.Tiredness = value
	}
	return _node, _spec
}

// EnergyEventCreateBulk is the builder for creating many EnergyEvent entities in bulk.
type EnergyEventCreateBulk struct {
	config
	err      error
	builders []*EnergyEventCreate
}

// Save creates the EnergyEvent entities in the database.
func (_c *EnergyEventCreateBulk) Save(ctx context.Context) ([]*EnergyEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnergyEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnergyEventMutation)
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
func (_c *EnergyEventCreateBulk) SaveX(ctx context.Context) []*EnergyEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnergyEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnergyEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
