package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records a post-session feedback submission and the
// mastery transition it caused, for audit and analytics.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Float("completion_rate").
			Comment("Fraction of the session completed, [0,1]"),
		field.Int("difficulty").
			Comment("Perceived difficulty, 1-5"),
		field.Float("quiz_accuracy").
			Comment("Post-session quiz accuracy in [0,1]; negative means none taken"),
		field.Float("learning_rate").
			Comment("Effective learning rate applied"),
		field.Float("mastery_before"),
		field.Float("mastery_after"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("topic_id"),
	}
}
