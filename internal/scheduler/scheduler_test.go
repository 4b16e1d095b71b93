package scheduler

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/arnav/studium/internal/energy"
	"github.com/arnav/studium/internal/profile"
)

func testInput(windows []Window, mastery map[string]float64) Input {
	return Input{
		UserID:      "u1",
		Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		ProfileType: profile.TypeBalanced,
		Energy:      energy.State{Score: 80, Level: energy.LevelHigh},
		BurnoutRisk: 0.3,
		Mastery:     mastery,
		Topics:      TopicsForSubjects([]string{"Physics", "Math"}),
		Windows:     windows,
		Prefs:       DefaultPreferences(),
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    Window
		wantErr bool
	}{
		{"18:00-19:00", Window{1080, 1140}, false},
		{"09:30-10:45", Window{570, 645}, false},
		{"19:00-18:00", Window{}, true},
		{"18:00", Window{}, true},
		{"25:00-26:00", Window{}, true},
		{"18:60-19:00", Window{}, true},
	}
	for _, tt := range tests {
		got, err := ParseWindow(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWindow(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWindow(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWindow(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestMergeWindows(t *testing.T) {
	got := MergeWindows([]Window{{600, 660}, {1080, 1140}, {640, 700}})
	want := []Window{{600, 700}, {1080, 1140}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MergeWindows = %+v, want %+v", got, want)
	}
}

func TestGreedyZeroSlotsFails(t *testing.T) {
	s := &GreedyStrategy{}
	_, err := s.Generate(context.Background(), testInput(nil, map[string]float64{}))
	var nf *NoFeasibleError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NoFeasibleError, got %v", err)
	}
	if nf.Reason != ReasonNoSlots {
		t.Errorf("reason = %q, want %q", nf.Reason, ReasonNoSlots)
	}
}

func TestGreedyAllMasteredFails(t *testing.T) {
	mastery := map[string]float64{}
	for _, topic := range TopicsForSubjects(nil) {
		mastery[topic.ID] = 1.0
	}
	in := testInput([]Window{{1080, 1140}}, mastery)
	in.Topics = TopicsForSubjects(nil)
	s := &GreedyStrategy{}
	_, err := s.Generate(context.Background(), in)
	var nf *NoFeasibleError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NoFeasibleError, got %v", err)
	}
	if nf.Reason != ReasonAllMastered {
		t.Errorf("reason = %q, want %q", nf.Reason, ReasonAllMastered)
	}
}

func TestGreedyHardConstraints(t *testing.T) {
	in := testInput([]Window{{540, 720}, {840, 1020}}, map[string]float64{})
	s := &GreedyStrategy{}
	plan, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for i, slot := range plan.Slots {
		total += slot.Duration()
		if slot.Duration() > in.Prefs.MaxSessionMinutes {
			t.Errorf("slot %d exceeds max session: %d min", i, slot.Duration())
		}
		inWindow := false
		for _, w := range in.Windows {
			if slot.StartMinute >= w.Start && slot.EndMinute <= w.End {
				inWindow = true
			}
		}
		if !inWindow {
			t.Errorf("slot %d (%s) outside availability", i, slot.TimeRange)
		}
		if i == 0 {
			continue
		}
		prev := plan.Slots[i-1]
		if slot.StartMinute < prev.EndMinute {
			t.Errorf("slots %d and %d overlap", i-1, i)
		}
		if gap := slot.StartMinute - prev.EndMinute; gap < in.Prefs.MinBreakMinutes {
			// Gaps spanning distinct availability windows still
			// satisfy the break if the windows are that far apart.
			t.Errorf("break between slots %d and %d is %d min", i-1, i, gap)
		}
	}
	if total != plan.TotalMinutes {
		t.Errorf("TotalMinutes = %d, slot sum = %d", plan.TotalMinutes, total)
	}

	// Diversity: no topic in 3+ consecutive slots.
	consecutive := 1
	for i := 1; i < len(plan.Slots); i++ {
		if plan.Slots[i].TopicID == plan.Slots[i-1].TopicID {
			consecutive++
			if consecutive > 2 {
				t.Errorf("topic %s occupies %d consecutive slots", plan.Slots[i].TopicID, consecutive)
			}
		} else {
			consecutive = 1
		}
	}

	capacity := 0
	for _, w := range in.Windows {
		capacity += w.Duration()
	}
	if plan.TotalMinutes > capacity {
		t.Errorf("total %d exceeds capacity %d", plan.TotalMinutes, capacity)
	}
}

func TestGreedyDeterminism(t *testing.T) {
	in := testInput([]Window{{540, 720}}, map[string]float64{"math:calculus": 0.4})
	s := &GreedyStrategy{}
	a, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Slots, b.Slots) {
		t.Error("identical inputs produced different slot assignments")
	}
	if a.TotalMinutes != b.TotalMinutes || a.EstimatedLearningGain != b.EstimatedLearningGain {
		t.Error("identical inputs produced different plan totals")
	}
}

func TestGreedyFavorsWeakTopicAtHighEnergy(t *testing.T) {
	// Two evening slots, one weak hard topic and one nearly mastered
	// easy topic: the weak topic should land first with the higher
	// intensity.
	weak := Topic{ID: "physics:electromagnetism", Subject: "Physics", Name: "Electromagnetism", Weight: 1.0, Difficulty: DifficultyHard}
	strong := Topic{ID: "physics:optics", Subject: "Physics", Name: "Optics", Weight: 1.0, Difficulty: DifficultyEasy}

	in := testInput([]Window{{1080, 1140}, {1155, 1215}}, map[string]float64{
		weak.ID:   0.2,
		strong.ID: 0.9,
	})
	in.Topics = []Topic{strong, weak}

	s := &GreedyStrategy{}
	plan, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Slots) == 0 {
		t.Fatal("empty plan")
	}
	first := plan.Slots[0]
	if first.TopicID != weak.ID {
		t.Errorf("first slot topic = %s, want %s", first.TopicID, weak.ID)
	}
	if first.Intensity != IntensityHigh {
		t.Errorf("first slot intensity = %s, want high", first.Intensity)
	}
}

func TestGreedyMethodRotation(t *testing.T) {
	in := testInput([]Window{{540, 780}}, map[string]float64{})
	in.ProfileType = profile.TypeStruggling
	s := &GreedyStrategy{}
	plan, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Slots) >= 2 && plan.Slots[0].Method == plan.Slots[1].Method {
		t.Error("expected method rotation across consecutive slots")
	}
	for _, slot := range plan.Slots {
		if slot.Rationale == "" {
			t.Error("slot missing rationale")
		}
	}
}

func TestExhaustiveMatchesContract(t *testing.T) {
	in := testInput([]Window{{1080, 1140}, {1155, 1215}}, map[string]float64{})
	s := &ExhaustiveStrategy{Budget: time.Second}
	plan, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(plan.Slots); i++ {
		if plan.Slots[i].StartMinute < plan.Slots[i-1].EndMinute {
			t.Errorf("slots %d and %d overlap", i-1, i)
		}
	}
	if plan.Metadata.Strategy != "exhaustive" {
		t.Errorf("strategy = %q", plan.Metadata.Strategy)
	}
}

func TestExhaustiveHonorsDiversity(t *testing.T) {
	in := testInput([]Window{{540, 720}}, map[string]float64{"math:statistics": 0.1})
	plan, err := (&ExhaustiveStrategy{Budget: 5 * time.Second}).Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Slots) == 0 {
		t.Fatal("empty plan")
	}
	consecutive := 1
	for i := 1; i < len(plan.Slots); i++ {
		if plan.Slots[i].TopicID == plan.Slots[i-1].TopicID {
			consecutive++
			if consecutive > 2 {
				t.Errorf("topic %s occupies %d consecutive slots", plan.Slots[i].TopicID, consecutive)
			}
		} else {
			consecutive = 1
		}
	}
	if plan.EstimatedLearningGain <= 0 {
		t.Errorf("learning gain = %f, want positive", plan.EstimatedLearningGain)
	}
}

func TestExhaustiveFallsBackOnCancel(t *testing.T) {
	in := testInput([]Window{{540, 1020}}, map[string]float64{})
	in.Topics = TopicsForSubjects(nil)
	s := &ExhaustiveStrategy{Budget: time.Nanosecond}
	plan, err := s.Generate(context.Background(), in)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Metadata.Strategy != "exhaustive/fallback-greedy" {
		t.Errorf("strategy = %q, want fallback marker", plan.Metadata.Strategy)
	}
}

func TestNewStrategyVariants(t *testing.T) {
	for _, variant := range []string{"", "greedy", "exhaustive"} {
		if _, err := New(Config{Variant: variant}); err != nil {
			t.Errorf("New(%q) failed: %v", variant, err)
		}
	}
	if _, err := New(Config{Variant: "oracle"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestTopicID(t *testing.T) {
	if got := TopicID("Physics", "Organic Chemistry"); got != "physics:organic-chemistry" {
		t.Errorf("TopicID = %q", got)
	}
}
