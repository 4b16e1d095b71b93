package store

import (
	"context"
	"sync"
	"time"

	"github.com/arnav/studium/internal/features"
)

// MemoryEventRepo is an in-memory EventRepo for tests and ephemeral
// runs. Events are kept in append order per user.
type MemoryEventRepo struct {
	mu        sync.Mutex
	cognitive map[string][]features.CognitiveEvent
	energy    map[string][]features.EnergyLog
	feedback  map[string][]FeedbackEventData
	LLMEvents []LLMRequestEventData
}

// NewMemoryEventRepo returns an empty in-memory event repo.
func NewMemoryEventRepo() *MemoryEventRepo {
	return &MemoryEventRepo{
		cognitive: make(map[string][]features.CognitiveEvent),
		energy:    make(map[string][]features.EnergyLog),
		feedback:  make(map[string][]FeedbackEventData),
	}
}

func (r *MemoryEventRepo) AppendCognitiveEvent(ctx context.Context, data CognitiveEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	r.cognitive[data.UserID] = append(r.cognitive[data.UserID], features.CognitiveEvent{
		QuestionID:    data.QuestionID,
		Subject:       data.Subject,
		TimeTakenSecs: data.TimeTakenSecs,
		Correct:       data.Correct,
		Confidence:    data.Confidence,
		Timestamp:     ts,
	})
	return nil
}

func (r *MemoryEventRepo) AppendEnergyEvent(ctx context.Context, data EnergyEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	r.energy[data.UserID] = append(r.energy[data.UserID], features.EnergyLog{
		SleepHours: data.SleepHours,
		Tiredness:  data.Tiredness,
		Timestamp:  ts,
	})
	return nil
}

func (r *MemoryEventRepo) AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback[data.UserID] = append(r.feedback[data.UserID], data)
	return nil
}

func (r *MemoryEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LLMEvents = append(r.LLMEvents, data)
	return nil
}

func (r *MemoryEventRepo) RecentCognitiveEvents(ctx context.Context, userID string, limit int) ([]features.CognitiveEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := r.cognitive[userID]
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	out := make([]features.CognitiveEvent, len(events))
	copy(out, events)
	return out, nil
}

func (r *MemoryEventRepo) CognitiveEventsSince(ctx context.Context, userID string, since time.Time) ([]features.CognitiveEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []features.CognitiveEvent
	for _, e := range r.cognitive[userID] {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *MemoryEventRepo) EnergyLogsSince(ctx context.Context, userID string, since time.Time) ([]features.EnergyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []features.EnergyLog
	for _, l := range r.energy[userID] {
		if !l.Timestamp.Before(since) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *MemoryEventRepo) LatestEnergyLog(ctx context.Context, userID string) (*features.EnergyLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	logs := r.energy[userID]
	if len(logs) == 0 {
		return nil, nil
	}
	last := logs[len(logs)-1]
	return &last, nil
}

// FeedbackEvents returns the recorded feedback for a user, in append order.
func (r *MemoryEventRepo) FeedbackEvents(userID string) []FeedbackEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FeedbackEventData, len(r.feedback[userID]))
	copy(out, r.feedback[userID])
	return out
}

// MemoryMasteryRepo is an in-memory MasteryRepo with the same per-key
// serialization guarantee as the SQLite-backed one.
type MemoryMasteryRepo struct {
	mu     sync.Mutex
	values map[string]float64
	locks  *keyedLocks
}

// NewMemoryMasteryRepo returns an empty in-memory mastery repo.
func NewMemoryMasteryRepo() *MemoryMasteryRepo {
	return &MemoryMasteryRepo{
		values: make(map[string]float64),
		locks:  newKeyedLocks(),
	}
}

func (r *MemoryMasteryRepo) Get(ctx context.Context, userID, topicID string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[masteryKey(userID, topicID)], nil
}

func (r *MemoryMasteryRepo) All(ctx context.Context, userID string) (map[string]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prefix := userID + "\x00"
	out := make(map[string]float64)
	for k, v := range r.values {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out, nil
}

func (r *MemoryMasteryRepo) Update(ctx context.Context, userID, topicID string, fn func(float64) float64) (float64, error) {
	key := masteryKey(userID, topicID)
	lock := r.locks.get(key)
	lock.Lock()
	defer lock.Unlock()

	r.mu.Lock()
	current := r.values[key]
	r.mu.Unlock()

	next := fn(current)

	r.mu.Lock()
	r.values[key] = next
	r.mu.Unlock()
	return next, nil
}

// MemoryPlanRepo is an in-memory PlanRepo.
type MemoryPlanRepo struct {
	mu    sync.Mutex
	plans map[string][]PlanRecord
}

// NewMemoryPlanRepo returns an empty in-memory plan repo.
func NewMemoryPlanRepo() *MemoryPlanRepo {
	return &MemoryPlanRepo{plans: make(map[string][]PlanRecord)}
}

func (r *MemoryPlanRepo) AppendPlan(ctx context.Context, rec PlanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[rec.UserID] = append(r.plans[rec.UserID], rec)
	return nil
}

func (r *MemoryPlanRepo) LatestSlotFit(ctx context.Context, userID, topicID string) (SlotFit, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plans := r.plans[userID]
	for i := len(plans) - 1; i >= 0; i-- {
		for _, slot := range plans[i].Slots {
			if slot.TopicID == topicID {
				return SlotFit{EnergyMatch: slot.EnergyMatch, CognitiveFit: slot.CognitiveFit}, true, nil
			}
		}
	}
	return SlotFit{}, false, nil
}

func (r *MemoryPlanRepo) PlansForDate(ctx context.Context, userID, date string) ([]PlanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []PlanRecord
	for _, p := range r.plans[userID] {
		if p.Date == date {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *MemoryPlanRepo) LatestPlan(ctx context.Context, userID string) (*PlanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	plans := r.plans[userID]
	if len(plans) == 0 {
		return nil, nil
	}
	last := plans[len(plans)-1]
	return &last, nil
}
