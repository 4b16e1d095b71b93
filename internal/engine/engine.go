// Package engine is the decision core's facade: it pulls event windows
// from the store, runs the feature, profile, energy, and scheduling
// pipeline, and persists what comes out.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/arnav/studium/ent/schema"
	"github.com/arnav/studium/internal/energy"
	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/feedback"
	"github.com/arnav/studium/internal/llm"
	"github.com/arnav/studium/internal/profile"
	"github.com/arnav/studium/internal/scheduler"
	"github.com/arnav/studium/internal/store"
)

// Engine orchestrates the pipeline. All heavy computation happens in
// the pure packages; the engine only fetches windows, dispatches, and
// persists results.
type Engine struct {
	events     store.EventRepo
	mastery    store.MasteryRepo
	plans      store.PlanRepo
	classifier profile.Classifier
	estimator  energy.Estimator
	strategy   scheduler.Strategy
	feedback   *feedback.Processor

	now func() time.Time
}

// Config selects the variant for each pluggable stage. Zero values
// select the rule-based defaults.
type Config struct {
	Classifier profile.Config
	Estimator  energy.Config
	Strategy   scheduler.Config
	// Provider backs the "llm" classifier variant; the rule-based
	// default never touches it.
	Provider llm.Provider
}

// New wires an engine from its stores and stage configs.
func New(cfg Config, events store.EventRepo, mastery store.MasteryRepo, plans store.PlanRepo) (*Engine, error) {
	classifier, err := profile.New(cfg.Classifier, cfg.Provider)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	estimator, err := energy.New(cfg.Estimator)
	if err != nil {
		return nil, fmt.Errorf("build estimator: %w", err)
	}
	strategy, err := scheduler.New(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("build strategy: %w", err)
	}
	return &Engine{
		events:     events,
		mastery:    mastery,
		plans:      plans,
		classifier: classifier,
		estimator:  estimator,
		strategy:   strategy,
		feedback:   feedback.NewProcessor(mastery, events, plans),
		now:        func() time.Time { return time.Now().UTC() },
	}, nil
}

// RecordQuizAttempt validates and appends one cognitive event. An
// ordinal 1-5 confidence is accepted by normalizing before storage; a
// missing confidence is stored as -1 and forward-filled at feature
// time.
func (e *Engine) RecordQuizAttempt(ctx context.Context, userID string, ev features.CognitiveEvent) error {
	if userID == "" {
		return &features.InvalidInputError{Field: "user_id", Reason: "must not be empty"}
	}
	if err := features.ValidateCognitiveEvent(ev); err != nil {
		return err
	}
	return e.events.AppendCognitiveEvent(ctx, store.CognitiveEventData{
		UserID:        userID,
		QuestionID:    ev.QuestionID,
		Subject:       ev.Subject,
		TimeTakenSecs: ev.TimeTakenSecs,
		Correct:       ev.Correct,
		Confidence:    ev.Confidence,
		Timestamp:     ev.Timestamp,
	})
}

// RecordEnergyLog validates and appends one sleep/tiredness report.
func (e *Engine) RecordEnergyLog(ctx context.Context, userID string, log features.EnergyLog) error {
	if userID == "" {
		return &features.InvalidInputError{Field: "user_id", Reason: "must not be empty"}
	}
	if err := features.ValidateEnergyLog(log); err != nil {
		return err
	}
	return e.events.AppendEnergyEvent(ctx, store.EnergyEventData{
		UserID:     userID,
		SleepHours: log.SleepHours,
		Tiredness:  log.Tiredness,
		Timestamp:  log.Timestamp,
	})
}

// BuildProfile classifies the user's cognitive style from the recent
// event window. Fewer events than the minimum threshold is an
// insufficient-data failure, never a low-confidence guess.
func (e *Engine) BuildProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	events, err := e.events.RecentCognitiveEvents(ctx, userID, features.CognitiveWindow)
	if err != nil {
		return nil, fmt.Errorf("fetch cognitive events: %w", err)
	}
	if len(events) < profile.MinEvents {
		return nil, &features.InsufficientDataError{
			Reason: fmt.Sprintf("%d events recorded, need at least %d", len(events), profile.MinEvents),
		}
	}
	feats, err := features.ComputeCognitive(events)
	if err != nil {
		return nil, err
	}
	return e.classifier.Classify(ctx, *feats)
}

// BuildEnergyState scores current capacity from the latest report and
// the 7-day history. A user with no reports gets the neutral default
// state rather than a failure; capacity is always answerable.
func (e *Engine) BuildEnergyState(ctx context.Context, userID string) (*energy.State, error) {
	latest, err := e.events.LatestEnergyLog(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch latest energy log: %w", err)
	}
	history, err := e.energyHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	sleep, tiredness := 7.0, 5
	if latest != nil {
		sleep, tiredness = latest.SleepHours, latest.Tiredness
	}
	state := e.estimator.Score(sleep, tiredness, *history)
	return &state, nil
}

func (e *Engine) energyHistory(ctx context.Context, userID string) (*features.Energy, error) {
	since := e.now().AddDate(0, 0, -features.EnergyWindowDays)
	logs, err := e.events.EnergyLogsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("fetch energy logs: %w", err)
	}
	events, err := e.events.CognitiveEventsSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("fetch cognitive events: %w", err)
	}
	hist := features.ComputeEnergy(logs, events)
	return &hist, nil
}

// PlanRequest carries the caller-supplied constraints for one plan.
type PlanRequest struct {
	UserID string
	// Date defaults to today.
	Date time.Time
	// Slots are "HH:MM-HH:MM" availability ranges; required.
	Slots []string
	// Subjects filters the topic catalog; empty means all subjects.
	Subjects []string
	Prefs    scheduler.Preferences
}

// GeneratePlan runs the full pipeline and archives the result. Zero
// availability always fails with no-feasible-schedule before any other
// check runs.
func (e *Engine) GeneratePlan(ctx context.Context, req PlanRequest) (*scheduler.Plan, error) {
	if len(req.Slots) == 0 {
		return nil, &scheduler.NoFeasibleError{Reason: scheduler.ReasonNoSlots}
	}
	if req.UserID == "" {
		return nil, &features.InvalidInputError{Field: "user_id", Reason: "must not be empty"}
	}
	windows, err := scheduler.ParseWindows(req.Slots)
	if err != nil {
		return nil, err
	}

	prof, err := e.BuildProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	state, err := e.BuildEnergyState(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	history, err := e.energyHistory(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	mastery, err := e.mastery.All(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch mastery: %w", err)
	}

	date := req.Date
	if date.IsZero() {
		date = e.now()
	}

	plan, err := e.strategy.Generate(ctx, scheduler.Input{
		UserID:      req.UserID,
		Date:        date,
		ProfileType: prof.Type,
		Energy:      *state,
		BurnoutRisk: history.BurnoutRisk,
		Mastery:     mastery,
		Topics:      scheduler.TopicsForSubjects(req.Subjects),
		Windows:     windows,
		Prefs:       req.Prefs,
	})
	if err != nil {
		return nil, err
	}

	if err := e.plans.AppendPlan(ctx, planRecord(req.UserID, plan)); err != nil {
		return nil, fmt.Errorf("archive plan: %w", err)
	}
	return plan, nil
}

// planRecord flattens a plan into the store's archive representation.
func planRecord(userID string, plan *scheduler.Plan) store.PlanRecord {
	slots := make([]schema.PlanSlotData, len(plan.Slots))
	for i, s := range plan.Slots {
		slots[i] = schema.PlanSlotData{
			StartMinute:  s.StartMinute,
			EndMinute:    s.EndMinute,
			TimeRange:    s.TimeRange,
			Subject:      s.Subject,
			Topic:        s.Topic,
			TopicID:      s.TopicID,
			Method:       s.Method,
			Intensity:    string(s.Intensity),
			Rationale:    s.Rationale,
			EnergyMatch:  s.EnergyMatch,
			CognitiveFit: s.CognitiveFit,
		}
	}
	return store.PlanRecord{
		PlanID:        plan.ID.String(),
		UserID:        userID,
		Date:          plan.Date,
		Strategy:      plan.Metadata.Strategy,
		ModelVersion:  plan.Metadata.ModelVersion,
		TotalMinutes:  plan.TotalMinutes,
		EstimatedGain: plan.EstimatedLearningGain,
		Slots:         slots,
		Timestamp:     plan.Metadata.GeneratedAt,
	}
}

// RecordFeedback applies a post-session submission to mastery.
func (e *Engine) RecordFeedback(ctx context.Context, userID, topicID string, completion float64, difficulty int, quizAccuracy *float64) (*feedback.Result, error) {
	return e.feedback.Apply(ctx, userID, topicID, completion, difficulty, quizAccuracy)
}

// Mastery returns the user's recorded mastery map.
func (e *Engine) Mastery(ctx context.Context, userID string) (map[string]float64, error) {
	return e.mastery.All(ctx, userID)
}

// LatestPlan returns the most recently archived plan, or nil.
func (e *Engine) LatestPlan(ctx context.Context, userID string) (*store.PlanRecord, error) {
	return e.plans.LatestPlan(ctx, userID)
}
