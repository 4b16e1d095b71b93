package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/arnav/studium/ent/schema"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCognitiveEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	for i := 0; i < 5; i++ {
		err := repo.AppendCognitiveEvent(ctx, CognitiveEventData{
			UserID:        "u1",
			QuestionID:    "q" + string(rune('a'+i)),
			Subject:       "Math",
			TimeTakenSecs: float64(10 + i),
			Correct:       i%2 == 0,
			Confidence:    0.8,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentCognitiveEvents(ctx, "u1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Oldest-first within the returned window.
	if events[0].TimeTakenSecs != 12 || events[2].TimeTakenSecs != 14 {
		t.Errorf("unexpected ordering: %v", events)
	}

	other, err := repo.RecentCognitiveEvents(ctx, "u2", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("u2 should have no events, got %d", len(other))
	}
}

func TestEnergyLogQueries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	old := now.Add(-10 * 24 * time.Hour)
	for _, data := range []EnergyEventData{
		{UserID: "u1", SleepHours: 6, Tiredness: 5, Timestamp: old},
		{UserID: "u1", SleepHours: 7.5, Tiredness: 3, Timestamp: now.Add(-time.Hour)},
		{UserID: "u1", SleepHours: 8, Tiredness: 2, Timestamp: now},
	} {
		if err := repo.AppendEnergyEvent(ctx, data); err != nil {
			t.Fatal(err)
		}
	}

	since := now.Add(-7 * 24 * time.Hour)
	logs, err := repo.EnergyLogsSince(ctx, "u1", since)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs in window, want 2", len(logs))
	}

	latest, err := repo.LatestEnergyLog(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.SleepHours != 8 {
		t.Errorf("latest = %+v, want sleep 8", latest)
	}

	none, err := repo.LatestEnergyLog(ctx, "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Errorf("expected nil for unknown user, got %+v", none)
	}
}

func TestMasteryLazyCreationAndClamp(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	m, err := repo.Get(ctx, "u1", "math:algebra")
	if err != nil {
		t.Fatal(err)
	}
	if m != 0 {
		t.Errorf("unseen pair mastery = %f, want 0", m)
	}

	got, err := repo.Update(ctx, "u1", "math:algebra", func(old float64) float64 {
		return old + 0.25
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.25 {
		t.Errorf("after update = %f, want 0.25", got)
	}

	all, err := repo.All(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if all["math:algebra"] != 0.25 {
		t.Errorf("All = %v", all)
	}
}

func TestMasteryConcurrentUpdates(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "u1", "physics:optics", func(old float64) float64 {
				return old + 0.05
			})
			if err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	m, err := repo.Get(ctx, "u1", "physics:optics")
	if err != nil {
		t.Fatal(err)
	}
	want := float64(writers) * 0.05
	if m < want-0.001 || m > want+0.001 {
		t.Errorf("mastery = %f, want %f (lost update?)", m, want)
	}
}

func TestPlanArchiveAndSlotFit(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	plan := testPlan("2026-03-14")
	if err := repo.AppendPlan(ctx, plan); err != nil {
		t.Fatal(err)
	}

	records, err := repo.PlansForDate(ctx, "u1", "2026-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d plans, want 1", len(records))
	}
	if records[0].PlanID != plan.PlanID {
		t.Errorf("plan ID mismatch")
	}
	if len(records[0].Slots) != len(plan.Slots) {
		t.Errorf("slot count mismatch")
	}

	fit, ok, err := repo.LatestSlotFit(ctx, "u1", "math:calculus")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected fit for planned topic")
	}
	if fit.EnergyMatch != 1.0 || fit.CognitiveFit != 0.8 {
		t.Errorf("fit = %+v", fit)
	}

	_, ok, err = repo.LatestSlotFit(ctx, "u1", "never:planned")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no fit for unplanned topic")
	}

	// Regenerating appends rather than replacing.
	if err := repo.AppendPlan(ctx, testPlan("2026-03-14")); err != nil {
		t.Fatal(err)
	}
	records, err = repo.PlansForDate(ctx, "u1", "2026-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("got %d plans after regeneration, want 2", len(records))
	}
}

func testPlan(date string) PlanRecord {
	return PlanRecord{
		PlanID:       uuid.New().String(),
		UserID:       "u1",
		Date:         date,
		Strategy:     "greedy",
		ModelVersion: "v1",
		TotalMinutes: 60,
		Slots: []schema.PlanSlotData{
			{
				StartMinute:  1080,
				EndMinute:    1140,
				TimeRange:    "18:00-19:00",
				Subject:      "Math",
				Topic:        "Calculus",
				TopicID:      "math:calculus",
				Method:       "Problem Practice",
				Intensity:    "high",
				Rationale:    "Peak energy + weak topic - optimal learning conditions",
				EnergyMatch:  1.0,
				CognitiveFit: 0.8,
			},
		},
		Timestamp: time.Now().UTC(),
	}
}
