package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/profile"
	"github.com/arnav/studium/internal/scheduler"
	"github.com/arnav/studium/internal/store"
)

func newTestEngine(t *testing.T) (*Engine, *store.MemoryEventRepo, *store.MemoryMasteryRepo, *store.MemoryPlanRepo) {
	t.Helper()
	events := store.NewMemoryEventRepo()
	mastery := store.NewMemoryMasteryRepo()
	plans := store.NewMemoryPlanRepo()
	e, err := New(Config{}, events, mastery, plans)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e, events, mastery, plans
}

func seedQuizAttempts(t *testing.T, e *Engine, userID string, n int, timeTaken float64, accuracy float64) {
	t.Helper()
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < n; i++ {
		correct := i < int(accuracy*float64(n)+0.5)
		err := e.RecordQuizAttempt(ctx, userID, features.CognitiveEvent{
			QuestionID:    "q" + string(rune('a'+i%26)),
			Subject:       "Math",
			TimeTakenSecs: timeTaken,
			Correct:       correct,
			Confidence:    0.7,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("seed attempt %d: %v", i, err)
		}
	}
}

func TestBuildProfileInsufficientData(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.BuildProfile(ctx, "u1")
	var insufficient *features.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}

	// Two events is still below the threshold.
	seedQuizAttempts(t, e, "u1", 2, 15, 1.0)
	_, err = e.BuildProfile(ctx, "u1")
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError at 2 events, got %v", err)
	}
}

func TestBuildProfileClassifies(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	seedQuizAttempts(t, e, "u1", 10, 25, 0.9)
	prof, err := e.BuildProfile(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if prof.Type != profile.TypeSlowAccurate {
		t.Errorf("profile = %s, want slow_accurate", prof.Type)
	}
	if prof.Confidence < 0 || prof.Confidence > 1 {
		t.Errorf("confidence %f outside [0,1]", prof.Confidence)
	}
}

func TestBuildEnergyStateDefaultsWithoutLogs(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	state, err := e.BuildEnergyState(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	// Neutral default report: 7h sleep, tiredness 5.
	if state.Score != 34 {
		t.Errorf("default score = %d, want 34", state.Score)
	}
	if len(state.Recommended) == 0 {
		t.Error("expected recommendations even without logs")
	}
}

func TestBuildEnergyStateUsesLatestLog(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	err := e.RecordEnergyLog(ctx, "u1", features.EnergyLog{SleepHours: 8, Tiredness: 3, Timestamp: time.Now().UTC()})
	if err != nil {
		t.Fatal(err)
	}
	state, err := e.BuildEnergyState(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if state.Score != 66 {
		t.Errorf("score = %d, want 66", state.Score)
	}
}

func TestGeneratePlanZeroSlotsFailsFirst(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	// No events either, but zero slots must win.
	_, err := e.GeneratePlan(ctx, PlanRequest{UserID: "u1"})
	var nf *scheduler.NoFeasibleError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NoFeasibleError, got %v", err)
	}
	if nf.Reason != scheduler.ReasonNoSlots {
		t.Errorf("reason = %q", nf.Reason)
	}
}

func TestGeneratePlanEndToEnd(t *testing.T) {
	e, _, _, plans := newTestEngine(t)
	ctx := context.Background()

	seedQuizAttempts(t, e, "u1", 10, 15, 0.8)
	if err := e.RecordEnergyLog(ctx, "u1", features.EnergyLog{SleepHours: 8, Tiredness: 2, Timestamp: time.Now().UTC()}); err != nil {
		t.Fatal(err)
	}

	plan, err := e.GeneratePlan(ctx, PlanRequest{
		UserID:   "u1",
		Slots:    []string{"18:00-19:00", "19:15-20:15"},
		Subjects: []string{"Math"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Slots) == 0 {
		t.Fatal("empty plan")
	}
	if plan.TotalMinutes == 0 {
		t.Error("zero total minutes")
	}

	// The plan is archived with its slots and fit factors intact.
	latest, err := plans.LatestPlan(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.PlanID != plan.ID.String() {
		t.Fatalf("plan not archived: %+v", latest)
	}
	if len(latest.Slots) != len(plan.Slots) {
		t.Fatalf("archived %d slots, plan has %d", len(latest.Slots), len(plan.Slots))
	}
	for i, s := range plan.Slots {
		got := latest.Slots[i]
		if got.TopicID != s.TopicID || got.TimeRange != s.TimeRange {
			t.Errorf("slot %d archived as %+v, want %+v", i, got, s)
		}
		if got.EnergyMatch != s.EnergyMatch || got.CognitiveFit != s.CognitiveFit {
			t.Errorf("slot %d fit archived as (%f,%f), want (%f,%f)",
				i, got.EnergyMatch, got.CognitiveFit, s.EnergyMatch, s.CognitiveFit)
		}
	}
	if latest.TotalMinutes != plan.TotalMinutes || latest.Strategy != plan.Metadata.Strategy {
		t.Errorf("archived record %+v does not mirror plan", latest)
	}
}

func TestGeneratePlanInvalidSlot(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	seedQuizAttempts(t, e, "u1", 5, 15, 0.8)
	_, err := e.GeneratePlan(ctx, PlanRequest{
		UserID: "u1",
		Slots:  []string{"19:00-18:00"},
	})
	var invalid *features.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestFeedbackLoopRaisesMastery(t *testing.T) {
	e, _, mastery, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := e.RecordFeedback(ctx, "u1", "math:calculus", 1.0, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.MasteryAfter <= res.MasteryBefore {
		t.Errorf("mastery did not increase: %+v", res)
	}
	m, err := mastery.Get(ctx, "u1", "math:calculus")
	if err != nil {
		t.Fatal(err)
	}
	if m != res.MasteryAfter {
		t.Errorf("stored %f, reported %f", m, res.MasteryAfter)
	}
}

func TestRecordQuizAttemptValidates(t *testing.T) {
	e, _, _, _ := newTestEngine(t)
	ctx := context.Background()

	err := e.RecordQuizAttempt(ctx, "u1", features.CognitiveEvent{
		QuestionID:    "q1",
		TimeTakenSecs: -5,
		Confidence:    0.5,
	})
	var invalid *features.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}
