package store

import (
	"context"
	"time"

	"github.com/arnav/studium/ent/schema"
	"github.com/arnav/studium/internal/features"
)

// CognitiveEventData captures one quiz/practice attempt for appending.
type CognitiveEventData struct {
	UserID        string
	QuestionID    string
	Subject       string
	TimeTakenSecs float64
	Correct       bool
	// Confidence in [0,1]; negative means not reported.
	Confidence float64
	Timestamp  time.Time
}

// EnergyEventData captures one sleep/tiredness self-report.
type EnergyEventData struct {
	UserID     string
	SleepHours float64
	Tiredness  int
	Timestamp  time.Time
}

// FeedbackEventData captures a feedback submission and the mastery
// transition it caused.
type FeedbackEventData struct {
	UserID         string
	TopicID        string
	CompletionRate float64
	Difficulty     int
	// QuizAccuracy in [0,1]; negative means no quiz taken.
	QuizAccuracy  float64
	LearningRate  float64
	MasteryBefore float64
	MasteryAfter  float64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// PlanRecord is one archived plan. Callers build a record from their
// plan representation before appending; the store never depends on the
// planner's types.
type PlanRecord struct {
	PlanID        string
	UserID        string
	Date          string
	Strategy      string
	ModelVersion  string
	TotalMinutes  int
	EstimatedGain float64
	Slots         []schema.PlanSlotData
	Timestamp     time.Time
}

// SlotFit is the planning-time fit recorded for a slot, used to scale
// feedback credit.
type SlotFit struct {
	EnergyMatch  float64
	CognitiveFit float64
}

// EventRepo provides append and query access to behavioral events.
type EventRepo interface {
	// AppendCognitiveEvent records one quiz/practice attempt.
	AppendCognitiveEvent(ctx context.Context, data CognitiveEventData) error

	// AppendEnergyEvent records one sleep/tiredness self-report.
	AppendEnergyEvent(ctx context.Context, data EnergyEventData) error

	// AppendFeedbackEvent records a feedback submission for audit.
	AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentCognitiveEvents returns the user's last limit attempts,
	// oldest first.
	RecentCognitiveEvents(ctx context.Context, userID string, limit int) ([]features.CognitiveEvent, error)

	// CognitiveEventsSince returns attempts at or after since, oldest first.
	CognitiveEventsSince(ctx context.Context, userID string, since time.Time) ([]features.CognitiveEvent, error)

	// EnergyLogsSince returns self-reports at or after since, oldest first.
	EnergyLogsSince(ctx context.Context, userID string, since time.Time) ([]features.EnergyLog, error)

	// LatestEnergyLog returns the most recent self-report, or nil if
	// none exists.
	LatestEnergyLog(ctx context.Context, userID string) (*features.EnergyLog, error)
}

// MasteryRepo manages per-user, per-topic mastery state. Records are
// created lazily at mastery 0 on first reference and never deleted.
type MasteryRepo interface {
	// Get returns the mastery for a pair, 0 if never recorded.
	Get(ctx context.Context, userID, topicID string) (float64, error)

	// All returns every recorded mastery for a user keyed by topic ID.
	All(ctx context.Context, userID string) (map[string]float64, error)

	// Update applies fn to the current mastery under per-(user,topic)
	// mutual exclusion and returns the stored result.
	Update(ctx context.Context, userID, topicID string, fn func(float64) float64) (float64, error)
}

// PlanRepo archives generated plans. Plans are append-only history.
type PlanRepo interface {
	// AppendPlan archives a generated plan. rec.UserID keys the
	// archive.
	AppendPlan(ctx context.Context, rec PlanRecord) error

	// LatestSlotFit returns the fit recorded for the topic's most
	// recent planned slot. ok is false when the topic was never planned.
	LatestSlotFit(ctx context.Context, userID, topicID string) (SlotFit, bool, error)

	// PlansForDate returns all plans archived for a date, oldest first.
	PlansForDate(ctx context.Context, userID, date string) ([]PlanRecord, error)

	// LatestPlan returns the most recently archived plan, or nil.
	LatestPlan(ctx context.Context, userID string) (*PlanRecord, error)
}
