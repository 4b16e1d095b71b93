// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/arnav/studium/ent/cognitiveevent"
)

// CognitiveEvent is the model entity for the CognitiveEvent schema.
type CognitiveEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position in the global append order, unique across event types
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock capture time, UTC
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner the attempt belongs to
	UserID string `json:"user_id,omitempty"`
	// Question attempted; repeats indicate retries
	QuestionID string `json:"question_id,omitempty"`
	// Subject the question belongs to
	Subject string `json:"subject,omitempty"`
	// Seconds spent on the attempt
	TimeTakenSecs float64 `json:"time_taken_secs,omitempty"`
	// Whether the attempt was correct
	Correct bool `json:"correct,omitempty"`
	// Self-reported confidence in [0,1]; negative means not reported
	Confidence   float64 `json:"confidence,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CognitiveEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cognitiveevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case cognitiveevent.FieldTimeTakenSecs, cognitiveevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case cognitiveevent.FieldID, cognitiveevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case cognitiveevent.FieldUserID, cognitiveevent.FieldQuestionID, cognitiveevent.FieldSubject:
			values[i] = new(sql.NullString)
		case cognitiveevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CognitiveEvent fields.
func (_m *CognitiveEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cognitiveevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cognitiveevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case cognitiveevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case cognitiveevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case cognitiveevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case cognitiveevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case cognitiveevent.FieldTimeTakenSecs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_taken_secs", values[i])
			} else if value.Valid {
				_m.TimeTakenSecs = value.Float64
			}
		case cognitiveevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case cognitiveevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CognitiveEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CognitiveEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CognitiveEvent.
// Note that you need to call CognitiveEvent.Unwrap() before calling this method if this CognitiveEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CognitiveEvent) Update() *CognitiveEventUpdateOne {
	return NewCognitiveEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CognitiveEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CognitiveEvent) Unwrap() *CognitiveEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CognitiveEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CognitiveEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CognitiveEvent(")
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
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("time_taken_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeTakenSecs))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteByte(')')
	return builder.String()
}

// CognitiveEvents is a parsable slice of CognitiveEvent.
type CognitiveEvents []*CognitiveEvent
