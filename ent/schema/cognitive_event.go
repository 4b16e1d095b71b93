package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CognitiveEvent records a single quiz or practice attempt with its
// timing, correctness, and self-reported confidence.
type CognitiveEvent struct {
	ent.Schema
}

func (CognitiveEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CognitiveEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Learner the attempt belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question attempted; repeats indicate retries"),
		field.String("subject").
			NotEmpty().
			Comment("Subject the question belongs to"),
		field.Float("time_taken_secs").
			Comment("Seconds spent on the attempt"),
		field.Bool("correct").
			Comment("Whether the attempt was correct"),
		field.Float("confidence").
			Comment("Self-reported confidence in [0,1]; negative means not reported"),
	}
}

func (CognitiveEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
	}
}
