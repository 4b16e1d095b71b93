package feedback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studium/ent/schema"
	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/store"
)

func newTestProcessor() (*Processor, *store.MemoryMasteryRepo, *store.MemoryEventRepo, *store.MemoryPlanRepo) {
	mastery := store.NewMemoryMasteryRepo()
	events := store.NewMemoryEventRepo()
	plans := store.NewMemoryPlanRepo()
	return NewProcessor(mastery, events, plans), mastery, events, plans
}

func TestApplyBasicUpdate(t *testing.T) {
	p, _, events, _ := newTestProcessor()
	ctx := context.Background()

	res, err := p.Apply(ctx, "u1", "math:algebra", 1.0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.MasteryBefore)
	// Base rate, full completion, completion stands in for accuracy.
	assert.InDelta(t, 0.2, res.MasteryAfter, 0.0001)

	audit := events.FeedbackEvents("u1")
	require.Len(t, audit, 1)
	assert.Negative(t, audit[0].QuizAccuracy, "no quiz taken should record negative accuracy")
	assert.InDelta(t, 0.0, audit[0].MasteryBefore, 0.0001)
	assert.InDelta(t, res.MasteryAfter, audit[0].MasteryAfter, 0.0001)
}

func TestApplyQuizAccuracyOverridesCompletion(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	ctx := context.Background()

	quiz := 0.5
	res, err := p.Apply(ctx, "u1", "math:algebra", 0.8, 2, &quiz)
	require.NoError(t, err)
	assert.InDelta(t, 0.2*0.8*0.5, res.MasteryAfter, 0.0001)
}

func TestApplyValidation(t *testing.T) {
	p, _, _, _ := newTestProcessor()
	ctx := context.Background()

	bad := -0.1
	tests := []struct {
		name       string
		userID     string
		topicID    string
		completion float64
		difficulty int
		quiz       *float64
	}{
		{"empty user", "", "t", 0.5, 3, nil},
		{"empty topic", "u", "", 0.5, 3, nil},
		{"completion above 1", "u", "t", 1.1, 3, nil},
		{"completion below 0", "u", "t", -0.1, 3, nil},
		{"difficulty low", "u", "t", 0.5, 0, nil},
		{"difficulty high", "u", "t", 0.5, 6, nil},
		{"quiz out of range", "u", "t", 0.5, 3, &bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Apply(ctx, tt.userID, tt.topicID, tt.completion, tt.difficulty, tt.quiz)
			var invalid *features.InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestMasteryNeverLeavesRange(t *testing.T) {
	p, mastery, _, _ := newTestProcessor()
	ctx := context.Background()

	// Adversarial repeated full-credit submissions.
	for i := 0; i < 50; i++ {
		_, err := p.Apply(ctx, "u1", "t1", 1.0, 5, nil)
		require.NoError(t, err)
	}
	m, err := mastery.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, m, 0.0)
	assert.LessOrEqual(t, m, 1.0)
	assert.Greater(t, m, 0.99, "repeated full-credit feedback should saturate near 1")
}

func TestConcurrentFeedbackNoLostUpdates(t *testing.T) {
	p, mastery, _, _ := newTestProcessor()
	ctx := context.Background()

	const submissions = 16
	var wg sync.WaitGroup
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Apply(ctx, "u1", "t1", 0.1, 3, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	m, err := mastery.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	// Each submission adds 0.2*0.1*0.1 = 0.002; all must land.
	assert.InDelta(t, float64(submissions)*0.002, m, 0.0001)
}

func TestLearningRateScalesWithPlannedFit(t *testing.T) {
	p, _, _, plans := newTestProcessor()
	ctx := context.Background()

	rec := store.PlanRecord{
		PlanID: uuid.New().String(),
		UserID: "u1",
		Date:   "2026-03-14",
		Slots: []schema.PlanSlotData{
			{
				TopicID:      "math:calculus",
				TimeRange:    "18:00-19:00",
				EnergyMatch:  1.0,
				CognitiveFit: 1.0,
			},
			{
				TopicID:      "physics:optics",
				TimeRange:    "19:15-20:15",
				EnergyMatch:  0.2,
				CognitiveFit: 0.5,
			},
		},
		Timestamp: time.Now().UTC(),
	}
	require.NoError(t, plans.AppendPlan(ctx, rec))

	wellFit, err := p.Apply(ctx, "u1", "math:calculus", 1.0, 3, nil)
	require.NoError(t, err)
	poorFit, err := p.Apply(ctx, "u1", "physics:optics", 1.0, 3, nil)
	require.NoError(t, err)
	unplanned, err := p.Apply(ctx, "u1", "chem:organic", 1.0, 3, nil)
	require.NoError(t, err)

	assert.Greater(t, wellFit.LearningRate, unplanned.LearningRate,
		"a well-matched session earns more credit than an unplanned one")
	assert.Less(t, poorFit.LearningRate, unplanned.LearningRate,
		"a poorly matched session earns less credit than an unplanned one")
}

// failingPlanRepo errors on every fit lookup.
type failingPlanRepo struct{}

func (failingPlanRepo) AppendPlan(context.Context, store.PlanRecord) error { return nil }

func (failingPlanRepo) LatestSlotFit(context.Context, string, string) (store.SlotFit, bool, error) {
	return store.SlotFit{}, false, errors.New("plan archive unavailable")
}

func (failingPlanRepo) PlansForDate(context.Context, string, string) ([]store.PlanRecord, error) {
	return nil, nil
}

func (failingPlanRepo) LatestPlan(context.Context, string) (*store.PlanRecord, error) {
	return nil, nil
}

func TestApplyFailsWhenFitLookupFails(t *testing.T) {
	mastery := store.NewMemoryMasteryRepo()
	p := NewProcessor(mastery, store.NewMemoryEventRepo(), failingPlanRepo{})
	ctx := context.Background()

	_, err := p.Apply(ctx, "u1", "t1", 1.0, 3, nil)
	require.ErrorContains(t, err, "latest slot fit")

	m, err := mastery.Get(ctx, "u1", "t1")
	require.NoError(t, err)
	assert.Zero(t, m, "a failing lookup must not move mastery")
}
