package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent archives a generated study plan. Plans are append-only:
// regenerating for the same date adds a new event rather than
// replacing the old one.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Unique().
			Comment("UUID of the generated plan"),
		field.String("user_id").
			NotEmpty(),
		field.String("date").
			NotEmpty().
			Comment("Plan date, YYYY-MM-DD"),
		field.String("strategy").
			NotEmpty().
			Comment("Strategy that produced the plan"),
		field.String("model_version").
			NotEmpty(),
		field.Int("total_minutes"),
		field.Float("estimated_gain"),
		field.JSON("slots", []PlanSlotData{}).
			Comment("Ordered slot assignments"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("date"),
	}
}

// PlanSlotData is the stored form of one assigned slot.
type PlanSlotData struct {
	StartMinute  int     `json:"start_minute"`
	EndMinute    int     `json:"end_minute"`
	TimeRange    string  `json:"time_range"`
	Subject      string  `json:"subject"`
	Topic        string  `json:"topic"`
	TopicID      string  `json:"topic_id"`
	Method       string  `json:"method"`
	Intensity    string  `json:"intensity"`
	Rationale    string  `json:"rationale"`
	EnergyMatch  float64 `json:"energy_match"`
	CognitiveFit float64 `json:"cognitive_fit"`
}
