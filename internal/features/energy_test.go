package features

import (
	"testing"
	"time"
)

func log(day int, sleep float64, tired int) EnergyLog {
	return EnergyLog{
		SleepHours: sleep,
		Tiredness:  tired,
		Timestamp:  time.Date(2026, 3, 1+day, 8, 0, 0, 0, time.UTC),
	}
}

func TestEnergyScore_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		sleep float64
		tired int
		want  int
	}{
		{"exhausted clamps to 0", 0, 10, 0},
		{"fully rested clamps to 100", 12, 1, 100},
		{"typical mid-range", 8, 3, 66},
		{"short sleep high tiredness", 4, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnergyScore(tt.sleep, tt.tired)
			if got != tt.want {
				t.Errorf("EnergyScore(%g, %d) = %d, want %d", tt.sleep, tt.tired, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d outside [0,100]", got)
			}
		})
	}
}

func TestFatigueIndex(t *testing.T) {
	tests := []struct {
		name  string
		tired int
		sleep float64
		want  float64
	}{
		{"rested and fresh", 1, 9, 0},
		{"exhausted no sleep", 10, 0, 1.0},
		{"oversleep gives no extra credit", 1, 12, 0},
		{"midpoint", 5, 4.5, 0.6*(4.0/9.0) + 0.4*0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FatigueIndex(tt.tired, tt.sleep)
			if !almostEqual(got, tt.want) {
				t.Errorf("FatigueIndex(%d, %g) = %f, want %f", tt.tired, tt.sleep, got, tt.want)
			}
		})
	}
}

func TestComputeEnergy_EmptyWindow(t *testing.T) {
	e := ComputeEnergy(nil, nil)
	if !almostEqual(e.FatigueIndex, 0.5) || !almostEqual(e.RecoveryTrend, 0.5) || !almostEqual(e.BurnoutRisk, 0.5) {
		t.Errorf("empty window should yield neutral features, got %+v", e)
	}
	if e.OptimalHourOfDay != 9 {
		t.Errorf("OptimalHourOfDay = %d, want default 9", e.OptimalHourOfDay)
	}
}

func TestComputeEnergy_RecoveryTrend(t *testing.T) {
	improving := []EnergyLog{
		log(0, 5, 8),
		log(1, 6, 6),
		log(2, 7, 4),
		log(3, 8, 3),
	}
	declining := []EnergyLog{
		log(0, 8, 3),
		log(1, 7, 4),
		log(2, 6, 6),
		log(3, 5, 8),
	}

	up := ComputeEnergy(improving, nil)
	down := ComputeEnergy(declining, nil)

	if up.RecoveryTrend <= 0.5 {
		t.Errorf("improving trend = %f, want > 0.5", up.RecoveryTrend)
	}
	if down.RecoveryTrend >= 0.5 {
		t.Errorf("declining trend = %f, want < 0.5", down.RecoveryTrend)
	}
}

func TestComputeEnergy_BurnoutRisk(t *testing.T) {
	grinding := []EnergyLog{
		log(0, 5, 7),
		log(1, 5, 8),
		log(2, 4, 9),
		log(3, 4, 9),
	}
	rested := []EnergyLog{
		log(0, 8, 2),
		log(1, 9, 2),
		log(2, 8, 1),
		log(3, 9, 2),
	}

	high := ComputeEnergy(grinding, nil).BurnoutRisk
	low := ComputeEnergy(rested, nil).BurnoutRisk

	if high <= low {
		t.Errorf("burnout risk: grinding %f should exceed rested %f", high, low)
	}
	for _, v := range []float64{high, low} {
		if v < 0 || v > 1 {
			t.Errorf("burnout risk %f outside [0,1]", v)
		}
	}
}

func TestComputeEnergy_SingleLog(t *testing.T) {
	e := ComputeEnergy([]EnergyLog{log(0, 7, 5)}, nil)
	if !almostEqual(e.RecoveryTrend, 0.5) {
		t.Errorf("single-log trend = %f, want 0.5", e.RecoveryTrend)
	}
	if !almostEqual(e.BurnoutRisk, 0.3) {
		t.Errorf("single-log burnout = %f, want 0.3", e.BurnoutRisk)
	}
}

func TestOptimalHour_TieBreaksEarliest(t *testing.T) {
	at := func(hour int, correct bool) CognitiveEvent {
		return CognitiveEvent{
			QuestionID:    "q",
			TimeTakenSecs: 10,
			Correct:       correct,
			Confidence:    0.5,
			Timestamp:     time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC),
		}
	}
	// 9am and 18pm both at 100% accuracy; earliest wins.
	events := []CognitiveEvent{
		at(18, true),
		at(9, true),
		at(14, false),
	}
	if got := optimalHour(events); got != 9 {
		t.Errorf("optimalHour = %d, want 9", got)
	}
}

func TestOptimalHour_HighestAccuracyWins(t *testing.T) {
	at := func(hour int, correct bool) CognitiveEvent {
		return CognitiveEvent{
			QuestionID:    "q",
			TimeTakenSecs: 10,
			Correct:       correct,
			Confidence:    0.5,
			Timestamp:     time.Date(2026, 3, 1, hour, 0, 0, 0, time.UTC),
		}
	}
	events := []CognitiveEvent{
		at(9, false), at(9, true), // 50%
		at(20, true), at(20, true), // 100%
	}
	if got := optimalHour(events); got != 20 {
		t.Errorf("optimalHour = %d, want 20", got)
	}
}

func TestValidateCognitiveEvent(t *testing.T) {
	valid := CognitiveEvent{QuestionID: "q1", TimeTakenSecs: 5, Confidence: 0.5}
	if err := ValidateCognitiveEvent(valid); err != nil {
		t.Errorf("valid event rejected: %v", err)
	}
	missing := CognitiveEvent{QuestionID: "q1", TimeTakenSecs: 5, Confidence: -1}
	if err := ValidateCognitiveEvent(missing); err != nil {
		t.Errorf("missing-confidence sentinel rejected: %v", err)
	}

	tests := []struct {
		name string
		ev   CognitiveEvent
	}{
		{"zero time", CognitiveEvent{QuestionID: "q", TimeTakenSecs: 0, Confidence: 0.5}},
		{"negative time", CognitiveEvent{QuestionID: "q", TimeTakenSecs: -3, Confidence: 0.5}},
		{"confidence above 1", CognitiveEvent{QuestionID: "q", TimeTakenSecs: 5, Confidence: 1.5}},
		{"empty question id", CognitiveEvent{TimeTakenSecs: 5, Confidence: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCognitiveEvent(tt.ev); err == nil {
				t.Error("expected InvalidInputError, got nil")
			}
		})
	}
}

func TestValidateEnergyLog(t *testing.T) {
	if err := ValidateEnergyLog(EnergyLog{SleepHours: 7, Tiredness: 4}); err != nil {
		t.Errorf("valid log rejected: %v", err)
	}
	if err := ValidateEnergyLog(EnergyLog{SleepHours: 13, Tiredness: 4}); err == nil {
		t.Error("sleep_hours 13 should be rejected")
	}
	if err := ValidateEnergyLog(EnergyLog{SleepHours: 7, Tiredness: 0}); err == nil {
		t.Error("tiredness 0 should be rejected")
	}
	if err := ValidateEnergyLog(EnergyLog{SleepHours: 7, Tiredness: 11}); err == nil {
		t.Error("tiredness 11 should be rejected")
	}
}

func TestNormalizeOrdinalConfidence(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{1, 0.0},
		{3, 0.5},
		{5, 1.0},
	}
	for _, tt := range tests {
		got, err := NormalizeOrdinalConfidence(tt.in)
		if err != nil {
			t.Errorf("NormalizeOrdinalConfidence(%d): %v", tt.in, err)
			continue
		}
		if !almostEqual(got, tt.want) {
			t.Errorf("NormalizeOrdinalConfidence(%d) = %f, want %f", tt.in, got, tt.want)
		}
	}
	if _, err := NormalizeOrdinalConfidence(6); err == nil {
		t.Error("ordinal 6 should be rejected")
	}
}
