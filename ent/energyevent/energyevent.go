// Code generated by ent, DO NOT EDIT.

package energyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the energyevent type in the database.
	Label = "energy_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSleepHours holds the string denoting the sleep_hours field in the database.
	FieldSleepHours = "sleep_hours"
	// FieldTiredness holds the string denoting the tiredness field in the database.
	FieldTiredness = "tiredness"
	// Table holds the table name of the energyevent in the database.
	Table = "energy_events"
)

// Columns holds all SQL columns for energyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSleepHours,
	FieldTiredness,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
)

// OrderOption defines the ordering options for the EnergyEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySleepHours orders the results by the sleep_hours field.
func BySleepHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSleepHours, opts...).ToFunc()
}

// ByTiredness orders the results by the tiredness field.
func ByTiredness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiredness, opts...).ToFunc()
}
