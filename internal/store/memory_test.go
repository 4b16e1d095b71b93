package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMemoryEventRepoWindows(t *testing.T) {
	repo := NewMemoryEventRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		err := repo.AppendCognitiveEvent(ctx, CognitiveEventData{
			UserID:        "u1",
			QuestionID:    "q1",
			Subject:       "Math",
			TimeTakenSecs: float64(i),
			Correct:       true,
			Confidence:    0.5,
			Timestamp:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	events, err := repo.RecentCognitiveEvents(ctx, "u1", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 20 {
		t.Fatalf("got %d events, want 20", len(events))
	}
	if events[0].TimeTakenSecs != 5 {
		t.Errorf("window should keep newest 20, first = %f", events[0].TimeTakenSecs)
	}
}

func TestMemoryMasteryRepoConcurrency(t *testing.T) {
	repo := NewMemoryMasteryRepo()
	ctx := context.Background()

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "u1", "t1", func(old float64) float64 {
				return old + 1
			})
			if err != nil {
				t.Errorf("update: %v", err)
			}
		}()
	}
	wg.Wait()

	m, err := repo.Get(ctx, "u1", "t1")
	if err != nil {
		t.Fatal(err)
	}
	if m != writers {
		t.Errorf("mastery = %f, want %d (lost update)", m, writers)
	}
}

func TestMemoryMasteryRepoAllScopedToUser(t *testing.T) {
	repo := NewMemoryMasteryRepo()
	ctx := context.Background()

	repo.Update(ctx, "u1", "t1", func(float64) float64 { return 0.3 })
	repo.Update(ctx, "u2", "t1", func(float64) float64 { return 0.9 })

	all, err := repo.All(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all["t1"] != 0.3 {
		t.Errorf("All(u1) = %v", all)
	}
}
