// Code generated by ent, DO NOT EDIT.

package energyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/arnav/studium/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldUserID, v))
}

// SleepHours applies equality check predicate on the "sleep_hours" field. It's identical to SleepHoursEQ.
func SleepHours(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldSleepHours, v))
}

// Tiredness applies equality check predicate on the "tiredness" field. It's identical to TirednessEQ.
func Tiredness(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldTiredness, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldContainsFold(FieldUserID, v))
}

// SleepHoursEQ applies the EQ predicate on the "sleep_hours" field.
func SleepHoursEQ(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldSleepHours, v))
}

// SleepHoursNEQ applies the NEQ predicate on the "sleep_hours" field.
func SleepHoursNEQ(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldSleepHours, v))
}

// SleepHoursIn applies the In predicate on the "sleep_hours" field.
func SleepHoursIn(vs ...float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldSleepHours, vs...))
}

// SleepHoursNotIn applies the NotIn predicate on the "sleep_hours" field.
func SleepHoursNotIn(vs ...float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldSleepHours, vs...))
}

// SleepHoursGT applies the GT predicate on the "sleep_hours" field.
func SleepHoursGT(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldSleepHours, v))
}

// SleepHoursGTE applies the GTE predicate on the "sleep_hours" field.
func SleepHoursGTE(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldSleepHours, v))
}

// SleepHoursLT applies the LT predicate on the "sleep_hours" field.
func SleepHoursLT(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldSleepHours, v))
}

// SleepHoursLTE applies the LTE predicate on the "sleep_hours" field.
func SleepHoursLTE(v float64) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldSleepHours, v))
}

// TirednessEQ applies the EQ predicate on the "tiredness" field.
func TirednessEQ(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldEQ(FieldTiredness, v))
}

// TirednessNEQ applies the NEQ predicate on the "tiredness" field.
func TirednessNEQ(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNEQ(FieldTiredness, v))
}

// TirednessIn applies the In predicate on the "tiredness" field.
func TirednessIn(vs ...int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldIn(FieldTiredness, vs...))
}

// TirednessNotIn applies the NotIn predicate on the "tiredness" field.
func TirednessNotIn(vs ...int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldNotIn(FieldTiredness, vs...))
}

// TirednessGT applies the GT predicate on the "tiredness" field.
func TirednessGT(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGT(FieldTiredness, v))
}

// TirednessGTE applies the GTE predicate on the "tiredness" field.
func TirednessGTE(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldGTE(FieldTiredness, v))
}

// TirednessLT applies the LT predicate on the "tiredness" field.
func TirednessLT(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLT(FieldTiredness, v))
}

// TirednessLTE applies the LTE predicate on the "tiredness" field.
func TirednessLTE(v int) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.FieldLTE(FieldTiredness, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnergyEvent) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnergyEvent) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnergyEvent) predicate.EnergyEvent {
	return predicate.EnergyEvent(sql.NotPredicates(p))
}
