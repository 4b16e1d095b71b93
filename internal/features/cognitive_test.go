package features

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func event(q string, secs float64, correct bool, conf float64) CognitiveEvent {
	return CognitiveEvent{
		QuestionID:    q,
		Subject:       "math",
		TimeTakenSecs: secs,
		Correct:       correct,
		Confidence:    conf,
		Timestamp:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestComputeCognitive_EmptyWindow(t *testing.T) {
	_, err := ComputeCognitive(nil)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientDataError", err)
	}
}

func TestComputeCognitive_AllFeaturesInRange(t *testing.T) {
	events := []CognitiveEvent{
		event("q1", 5, true, 0.9),
		event("q2", 30, false, 0.2),
		event("q3", 12, true, 0.7),
		event("q1", 8, true, 0.8),
		event("q4", 45, false, 0.5),
	}
	f, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}

	checks := map[string]float64{
		"avg_response_time": f.AvgResponseTime,
		"accuracy_rate":     f.AccuracyRate,
		"retry_pattern":     f.RetryPattern,
		"confidence_gap":    f.ConfidenceGap,
		"speed_consistency": f.SpeedConsistency,
	}
	for name, v := range checks {
		if v < 0 || v > 1 {
			t.Errorf("%s = %f, want in [0,1]", name, v)
		}
	}
	if f.EventCount != 5 {
		t.Errorf("EventCount = %d, want 5", f.EventCount)
	}
}

func TestComputeCognitive_Deterministic(t *testing.T) {
	events := []CognitiveEvent{
		event("q1", 10, true, 0.6),
		event("q2", 20, false, 0.4),
		event("q3", 15, true, 0.8),
	}
	a, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	b, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("outputs differ: %+v vs %+v", a, b)
	}
}

func TestComputeCognitive_UniformTimes(t *testing.T) {
	// min == max degenerate window: time-derived features yield exactly 0.5.
	events := []CognitiveEvent{
		event("q1", 10, true, 1.0),
		event("q2", 10, true, 1.0),
		event("q3", 10, true, 1.0),
	}
	f, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}
	if !almostEqual(f.AvgResponseTime, 0.5) {
		t.Errorf("AvgResponseTime = %f, want 0.5", f.AvgResponseTime)
	}
	if !almostEqual(f.SpeedConsistency, 0.5) {
		t.Errorf("SpeedConsistency = %f, want 0.5", f.SpeedConsistency)
	}
}

func TestComputeCognitive_AccuracyRate(t *testing.T) {
	events := []CognitiveEvent{
		event("q1", 10, true, 0.5),
		event("q2", 12, false, 0.5),
		event("q3", 14, true, 0.5),
		event("q4", 16, false, 0.5),
	}
	f, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}
	if !almostEqual(f.AccuracyRate, 0.5) {
		t.Errorf("AccuracyRate = %f, want 0.5", f.AccuracyRate)
	}
}

func TestComputeCognitive_RetryPattern(t *testing.T) {
	// q1 attempted twice, q2 and q3 once: 1 of 3 questions retried.
	events := []CognitiveEvent{
		event("q1", 10, false, 0.5),
		event("q1", 12, true, 0.6),
		event("q2", 14, true, 0.7),
		event("q3", 16, true, 0.7),
	}
	f, err := ComputeCognitive(events)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}
	if !almostEqual(f.RetryPattern, 1.0/3.0) {
		t.Errorf("RetryPattern = %f, want %f", f.RetryPattern, 1.0/3.0)
	}
}

func TestComputeCognitive_ConfidenceGap(t *testing.T) {
	// Perfectly calibrated: confident and correct, unconfident and wrong.
	calibrated := []CognitiveEvent{
		event("q1", 10, true, 1.0),
		event("q2", 12, false, 0.0),
	}
	f, err := ComputeCognitive(calibrated)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}
	if !almostEqual(f.ConfidenceGap, 0) {
		t.Errorf("calibrated ConfidenceGap = %f, want 0", f.ConfidenceGap)
	}

	// Fully miscalibrated: certain but wrong, uncertain but right.
	miscalibrated := []CognitiveEvent{
		event("q1", 10, false, 1.0),
		event("q2", 12, true, 0.0),
	}
	f, err = ComputeCognitive(miscalibrated)
	if err != nil {
		t.Fatalf("ComputeCognitive: %v", err)
	}
	if !almostEqual(f.ConfidenceGap, 1) {
		t.Errorf("miscalibrated ConfidenceGap = %f, want 1", f.ConfidenceGap)
	}
}

func TestForwardFillConfidence(t *testing.T) {
	events := []CognitiveEvent{
		event("q1", 10, true, 0.8),
		event("q2", 12, false, -1),
		event("q3", 14, true, -1),
		event("q4", 16, true, 0.3),
	}
	filled, err := forwardFillConfidence(events)
	if err != nil {
		t.Fatalf("forwardFillConfidence: %v", err)
	}
	want := []float64{0.8, 0.8, 0.8, 0.3}
	for i, w := range want {
		if !almostEqual(filled[i].Confidence, w) {
			t.Errorf("filled[%d].Confidence = %f, want %f", i, filled[i].Confidence, w)
		}
	}
	// Input untouched.
	if events[1].Confidence != -1 {
		t.Error("forwardFillConfidence mutated its input")
	}
}

func TestForwardFillConfidence_NoPriorValue(t *testing.T) {
	events := []CognitiveEvent{event("q1", 10, true, -1)}
	_, err := forwardFillConfidence(events)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientDataError", err)
	}
}

func TestCapOutliers(t *testing.T) {
	// One extreme value gets pulled to within 3 standard deviations.
	xs := []float64{10, 11, 9, 10, 12, 10, 11, 9, 10, 500}
	capped := capOutliers(xs, 3.0)

	m := mean(xs)
	sd := stddev(xs, m)
	hi := m + 3*sd
	if capped[len(capped)-1] > hi+epsilon {
		t.Errorf("outlier capped to %f, want <= %f", capped[len(capped)-1], hi)
	}
	// Non-outliers unchanged.
	if capped[0] != 10 {
		t.Errorf("capped[0] = %f, want 10", capped[0])
	}
}

func TestMinMax_Degenerate(t *testing.T) {
	if v := minMax(7, 7, 7); !almostEqual(v, 0.5) {
		t.Errorf("minMax degenerate = %f, want 0.5", v)
	}
}
