// Package feedback ingests post-session completion data and updates
// per-topic mastery, closing the plan-study-feedback loop.
package feedback

import (
	"context"
	"fmt"

	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/store"
)

// baseLearningRate anchors how much one session can move mastery.
// The effective rate scales with how well the planned slot fit the
// learner's energy and cognitive style, so planning and crediting
// pull in the same direction.
const baseLearningRate = 0.2

// neutralFit is assumed when the topic was never planned, landing the
// effective rate exactly at the base.
const neutralFit = 0.5

// Result reports the outcome of one feedback application.
type Result struct {
	UserID        string  `json:"user_id"`
	TopicID       string  `json:"topic_id"`
	MasteryBefore float64 `json:"mastery_before"`
	MasteryAfter  float64 `json:"mastery_after"`
	LearningRate  float64 `json:"learning_rate"`
}

// Processor applies feedback submissions to the mastery store and
// records each application as an audit event.
type Processor struct {
	mastery store.MasteryRepo
	events  store.EventRepo
	plans   store.PlanRepo
}

// NewProcessor wires a processor to its stores.
func NewProcessor(mastery store.MasteryRepo, events store.EventRepo, plans store.PlanRepo) *Processor {
	return &Processor{mastery: mastery, events: events, plans: plans}
}

// Apply validates a submission, updates mastery atomically for the
// (user, topic) pair, and appends an audit event. quizAccuracy is nil
// when no post-session quiz was taken; completion stands in for it.
func (p *Processor) Apply(ctx context.Context, userID, topicID string, completion float64, difficulty int, quizAccuracy *float64) (*Result, error) {
	if userID == "" {
		return nil, &features.InvalidInputError{Field: "user_id", Reason: "must not be empty"}
	}
	if topicID == "" {
		return nil, &features.InvalidInputError{Field: "topic_id", Reason: "must not be empty"}
	}
	if completion < 0 || completion > 1 {
		return nil, &features.InvalidInputError{Field: "completion_rate", Reason: fmt.Sprintf("%.3f outside [0,1]", completion)}
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, &features.InvalidInputError{Field: "difficulty", Reason: fmt.Sprintf("%d outside [1,5]", difficulty)}
	}
	if quizAccuracy != nil && (*quizAccuracy < 0 || *quizAccuracy > 1) {
		return nil, &features.InvalidInputError{Field: "quiz_accuracy", Reason: fmt.Sprintf("%.3f outside [0,1]", *quizAccuracy)}
	}

	lr, err := p.learningRate(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}

	accuracy := completion
	if quizAccuracy != nil {
		accuracy = *quizAccuracy
	}

	var before float64
	after, err := p.mastery.Update(ctx, userID, topicID, func(old float64) float64 {
		before = old
		next := old + lr*completion*accuracy
		if next < 0 {
			next = 0
		}
		if next > 1 {
			next = 1
		}
		return next
	})
	if err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	quizField := -1.0
	if quizAccuracy != nil {
		quizField = *quizAccuracy
	}
	if err := p.events.AppendFeedbackEvent(ctx, store.FeedbackEventData{
		UserID:         userID,
		TopicID:        topicID,
		CompletionRate: completion,
		Difficulty:     difficulty,
		QuizAccuracy:   quizField,
		LearningRate:   lr,
		MasteryBefore:  before,
		MasteryAfter:   after,
	}); err != nil {
		return nil, fmt.Errorf("record feedback event: %w", err)
	}

	return &Result{
		UserID:        userID,
		TopicID:       topicID,
		MasteryBefore: before,
		MasteryAfter:  after,
		LearningRate:  lr,
	}, nil
}

// learningRate scales the base rate by the fit recorded when the topic
// was last planned. A well-matched session earns more credit than a
// poorly matched one; an unplanned session earns exactly the base. A
// failing plan lookup surfaces as an error rather than quietly
// degrading to the neutral rate.
func (p *Processor) learningRate(ctx context.Context, userID, topicID string) (float64, error) {
	fit := neutralFit
	if p.plans != nil {
		sf, ok, err := p.plans.LatestSlotFit(ctx, userID, topicID)
		if err != nil {
			return 0, fmt.Errorf("latest slot fit: %w", err)
		}
		if ok {
			fit = sf.EnergyMatch * sf.CognitiveFit
		}
	}
	return baseLearningRate * (0.5 + fit), nil
}
