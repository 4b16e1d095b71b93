package energy

import (
	"testing"

	"github.com/arnav/studium/internal/features"
)

func TestFormulaEstimatorScores(t *testing.T) {
	tests := []struct {
		name      string
		sleep     float64
		tiredness int
		wantScore int
		wantLevel Level
	}{
		{"well rested", 8, 3, 66, LevelMedium},
		{"peak", 12, 1, 100, LevelHigh},
		{"exhausted", 0, 10, 0, LevelLow},
		{"high boundary", 7.5, 2, 70, LevelHigh},
		{"low boundary", 5, 2, 40, LevelMedium},
		{"just below medium", 4.9, 2, 38, LevelLow},
	}

	est := &FormulaEstimator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := est.Score(tt.sleep, tt.tiredness, features.Energy{})
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Level != tt.wantLevel {
				t.Errorf("level = %s, want %s", got.Level, tt.wantLevel)
			}
		})
	}
}

func TestFormulaEstimatorState(t *testing.T) {
	est := &FormulaEstimator{}
	got := est.Score(8, 3, features.Energy{})

	if got.FatigueIndex < 0 || got.FatigueIndex > 1 {
		t.Errorf("fatigue index %f out of [0,1]", got.FatigueIndex)
	}
	if len(got.Recommended) == 0 {
		t.Error("expected recommended activities")
	}
	if len(got.Avoid) == 0 {
		t.Error("expected avoid activities")
	}
}

func TestTrendEstimatorAdjustment(t *testing.T) {
	est := &TrendEstimator{}

	base := est.Score(8, 3, features.Energy{RecoveryTrend: 0.5})
	improving := est.Score(8, 3, features.Energy{RecoveryTrend: 1.0})
	declining := est.Score(8, 3, features.Energy{RecoveryTrend: 0.0})

	if base.Score != 66 {
		t.Errorf("neutral trend score = %d, want 66", base.Score)
	}
	if improving.Score <= base.Score {
		t.Errorf("improving trend should lift score: %d vs %d", improving.Score, base.Score)
	}
	if declining.Score >= base.Score {
		t.Errorf("declining trend should cut score: %d vs %d", declining.Score, base.Score)
	}
	if improving.Score-base.Score > 10 {
		t.Errorf("trend adjustment too large: +%d", improving.Score-base.Score)
	}
}

func TestTrendEstimatorBounds(t *testing.T) {
	est := &TrendEstimator{}

	top := est.Score(12, 1, features.Energy{RecoveryTrend: 1.0})
	if top.Score > 100 {
		t.Errorf("score exceeds 100: %d", top.Score)
	}
	bottom := est.Score(0, 10, features.Energy{RecoveryTrend: 0.0})
	if bottom.Score < 0 {
		t.Errorf("score below 0: %d", bottom.Score)
	}
}

func TestActivitiesIsolation(t *testing.T) {
	rec, _ := ActivitiesFor(LevelHigh)
	rec[0] = "mutated"
	again, _ := ActivitiesFor(LevelHigh)
	if again[0] == "mutated" {
		t.Error("ActivitiesFor returned shared backing slice")
	}
}

func TestNewVariants(t *testing.T) {
	for _, variant := range []string{"", "formula", "trend"} {
		if _, err := New(Config{Variant: variant}); err != nil {
			t.Errorf("New(%q) failed: %v", variant, err)
		}
	}
	if _, err := New(Config{Variant: "psychic"}); err == nil {
		t.Error("expected error for unknown variant")
	}
}
