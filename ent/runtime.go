// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arnav/studium/ent/cognitiveevent"
	"github.com/arnav/studium/ent/energyevent"
	"github.com/arnav/studium/ent/feedbackevent"
	"github.com/arnav/studium/ent/llmrequestevent"
	"github.com/arnav/studium/ent/masteryrecord"
	"github.com/arnav/studium/ent/planevent"
	"github.com/arnav/studium/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cognitiveeventMixin := schema.CognitiveEvent{}.Mixin()
	cognitiveeventMixinFields0 := cognitiveeventMixin[0].Fields()
	_ = cognitiveeventMixinFields0
	cognitiveeventFields := schema.CognitiveEvent{}.Fields()
	_ = cognitiveeventFields
	// cognitiveeventDescTimestamp is the schema descriptor for timestamp field.
	cognitiveeventDescTimestamp := cognitiveeventMixinFields0[1].Descriptor()
	// cognitiveevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	cognitiveevent.DefaultTimestamp = cognitiveeventDescTimestamp.Default.(func() time.Time)
	// cognitiveeventDescUserID is the schema descriptor for user_id field.
	cognitiveeventDescUserID := cognitiveeventFields[0].Descriptor()
	// cognitiveevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	cognitiveevent.UserIDValidator = cognitiveeventDescUserID.Validators[0].(func(string) error)
	// cognitiveeventDescQuestionID is the schema descriptor for question_id field.
	cognitiveeventDescQuestionID := cognitiveeventFields[1].Descriptor()
	// cognitiveevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	cognitiveevent.QuestionIDValidator = cognitiveeventDescQuestionID.Validators[0].(func(string) error)
	// cognitiveeventDescSubject is the schema descriptor for subject field.
	cognitiveeventDescSubject := cognitiveeventFields[2].Descriptor()
	// cognitiveevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	cognitiveevent.SubjectValidator = cognitiveeventDescSubject.Validators[0].(func(string) error)
	energyeventMixin := schema.EnergyEvent{}.Mixin()
	energyeventMixinFields0 := energyeventMixin[0].Fields()
	_ = energyeventMixinFields0
	energyeventFields := schema.EnergyEvent{}.Fields()
	_ = energyeventFields
	// energyeventDescTimestamp is the schema descriptor for timestamp field.
	energyeventDescTimestamp := energyeventMixinFields0[1].Descriptor()
	// energyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	energyevent.DefaultTimestamp = energyeventDescTimestamp.Default.(func() time.Time)
	// energyeventDescUserID is the schema descriptor for user_id field.
	energyeventDescUserID := energyeventFields[0].Descriptor()
	// energyevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	energyevent.UserIDValidator = energyeventDescUserID.Validators[0].(func(string) error)
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescUserID is the schema descriptor for user_id field.
	feedbackeventDescUserID := feedbackeventFields[0].Descriptor()
	// feedbackevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	feedbackevent.UserIDValidator = feedbackeventDescUserID.Validators[0].(func(string) error)
	// feedbackeventDescTopicID is the schema descriptor for topic_id field.
	feedbackeventDescTopicID := feedbackeventFields[1].Descriptor()
	// feedbackevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	feedbackevent.TopicIDValidator = feedbackeventDescTopicID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescTopicID is the schema descriptor for topic_id field.
	masteryrecordDescTopicID := masteryrecordFields[1].Descriptor()
	// masteryrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masteryrecord.TopicIDValidator = masteryrecordDescTopicID.Validators[0].(func(string) error)
	// masteryrecordDescMastery is the schema descriptor for mastery field.
	masteryrecordDescMastery := masteryrecordFields[2].Descriptor()
	// masteryrecord.DefaultMastery holds the default value on creation for the mastery field.
	masteryrecord.DefaultMastery = masteryrecordDescMastery.Default.(float64)
	// masteryrecordDescUpdatedAt is the schema descriptor for updated_at field.
	masteryrecordDescUpdatedAt := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	masteryrecord.DefaultUpdatedAt = masteryrecordDescUpdatedAt.Default.(func() time.Time)
	// masteryrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	masteryrecord.UpdateDefaultUpdatedAt = masteryrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescPlanID is the schema descriptor for plan_id field.
	planeventDescPlanID := planeventFields[0].Descriptor()
	// planevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	planevent.PlanIDValidator = planeventDescPlanID.Validators[0].(func(string) error)
	// planeventDescUserID is the schema descriptor for user_id field.
	planeventDescUserID := planeventFields[1].Descriptor()
	// planevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	planevent.UserIDValidator = planeventDescUserID.Validators[0].(func(string) error)
	// planeventDescDate is the schema descriptor for date field.
	planeventDescDate := planeventFields[2].Descriptor()
	// planevent.DateValidator is a validator for the "date" field. It is called by the builders before save.
	planevent.DateValidator = planeventDescDate.Validators[0].(func(string) error)
	// planeventDescStrategy is the schema descriptor for strategy field.
	planeventDescStrategy := planeventFields[3].Descriptor()
	// planevent.StrategyValidator is a validator for the "strategy" field. It is called by the builders before save.
	planevent.StrategyValidator = planeventDescStrategy.Validators[0].(func(string) error)
	// planeventDescModelVersion is the schema descriptor for model_version field.
	planeventDescModelVersion := planeventFields[4].Descriptor()
	// planevent.ModelVersionValidator is a validator for the "model_version" field. It is called by the builders before save.
	planevent.ModelVersionValidator = planeventDescModelVersion.Validators[0].(func(string) error)
}
