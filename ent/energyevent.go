// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnav/studium/ent/energyevent"
)

// EnergyEvent is the model entity for the EnergyEvent schema.
type EnergyEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global append order, unique across event types
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock capture time, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Hours slept, 0-12
	SleepHours float64 `json:"sleep_hours,omitempty"`
	// Self-reported tiredness, 1-10
	Tiredness    int `json:"tiredness,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EnergyEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case energyevent.FieldSleepHours:
			values[i] = new(sql.NullFloat64)
		case energyevent.FieldID, energyevent.FieldSequence, energyevent.FieldTiredness:
			values[i] = new(sql.NullInt64)
		case energyevent.FieldUserID:
			values[i] = new(sql.NullString)
		case energyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EnergyEvent fields.
func (_m *EnergyEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case energyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case energyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case energyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case energyevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case energyevent.FieldSleepHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sleep_hours", values[i])
			} else if value.Valid {
				_m.SleepHours = value.Float64
			}
		case energyevent.FieldTiredness:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tiredness", values[i])
			} else if value.Valid {
				_m.Tiredness = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EnergyEvent.
// This includes values selected through modifiers, order, etc.
func (_m *EnergyEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EnergyEvent.
// Note that you need to call EnergyEvent.Unwrap() before calling this method if this EnergyEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EnergyEvent) Update() *EnergyEventUpdateOne {
	return NewEnergyEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EnergyEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EnergyEvent) Unwrap() *EnergyEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EnergyEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EnergyEvent) String() string {
	var builder strings.Builder
	builder.WriteString("EnergyEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("sleep_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.SleepHours))
	builder.WriteString(", ")
	builder.WriteString("tiredness=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tiredness))
	builder.WriteByte(')')
	return builder.String()
}

// EnergyEvents is a parsable slice of EnergyEvent.
type EnergyEvents []*EnergyEvent
