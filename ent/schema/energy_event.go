package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnergyEvent records a daily sleep/tiredness self-report.
type EnergyEvent struct {
	ent.Schema
}

func (EnergyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EnergyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.Float("sleep_hours").
			Comment("Hours slept, 0-12"),
		field.Int("tiredness").
			Comment("Self-reported tiredness, 1-10"),
	}
}

func (EnergyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
