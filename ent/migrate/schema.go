// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CognitiveEventsColumns holds the columns for the "cognitive_events" table.
	CognitiveEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "time_taken_secs", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeFloat64},
	}
	// CognitiveEventsTable holds the schema information for the "cognitive_events" table.
	CognitiveEventsTable = &schema.Table{
		Name:       "cognitive_events",
		Columns:    CognitiveEventsColumns,
		PrimaryKey: []*schema.Column{CognitiveEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cognitiveevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[1]},
			},
			{
				Name:    "cognitiveevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[2]},
			},
			{
				Name:    "cognitiveevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[3]},
			},
			{
				Name:    "cognitiveevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{CognitiveEventsColumns[4]},
			},
		},
	}
	// EnergyEventsColumns holds the columns for the "energy_events" table.
	EnergyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sleep_hours", Type: field.TypeFloat64},
		{Name: "tiredness", Type: field.TypeInt},
	}
	// EnergyEventsTable holds the schema information for the "energy_events" table.
	EnergyEventsTable = &schema.Table{
		Name:       "energy_events",
		Columns:    EnergyEventsColumns,
		PrimaryKey: []*schema.Column{EnergyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "energyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EnergyEventsColumns[1]},
			},
			{
				Name:    "energyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EnergyEventsColumns[2]},
			},
			{
				Name:    "energyevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{EnergyEventsColumns[3]},
			},
		},
	}
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "completion_rate", Type: field.TypeFloat64},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "quiz_accuracy", Type: field.TypeFloat64},
		{Name: "learning_rate", Type: field.TypeFloat64},
		{Name: "mastery_before", Type: field.TypeFloat64},
		{Name: "mastery_after", Type: field.TypeFloat64},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1]},
			},
			{
				Name:    "feedbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[2]},
			},
			{
				Name:    "feedbackevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[3]},
			},
			{
				Name:    "feedbackevent_topic_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
		},
	}
	// PlanEventsColumns holds the columns for the "plan_events" table.
	PlanEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeString},
		{Name: "strategy", Type: field.TypeString},
		{Name: "model_version", Type: field.TypeString},
		{Name: "total_minutes", Type: field.TypeInt},
		{Name: "estimated_gain", Type: field.TypeFloat64},
		{Name: "slots", Type: field.TypeJSON},
	}
	// PlanEventsTable holds the schema information for the "plan_events" table.
	PlanEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    PlanEventsColumns,
		PrimaryKey: []*schema.Column{PlanEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[1]},
			},
			{
				Name:    "planevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[2]},
			},
			{
				Name:    "planevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[4]},
			},
			{
				Name:    "planevent_date",
				Unique:  false,
				Columns: []*schema.Column{PlanEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CognitiveEventsTable,
		EnergyEventsTable,
		FeedbackEventsTable,
		LlmRequestEventsTable,
		MasteryRecordsTable,
		PlanEventsTable,
	}
)

func init() {
}
