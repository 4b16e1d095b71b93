package profile

import (
	"context"
	"reflect"
	"testing"

	"github.com/arnav/studium/internal/features"
)

func feats(rawSecs, accuracy float64, count int) features.Cognitive {
	return features.Cognitive{
		AvgResponseTime:    0.5,
		AccuracyRate:       accuracy,
		RetryPattern:       0.1,
		ConfidenceGap:      0.2,
		SpeedConsistency:   0.6,
		RawAvgResponseSecs: rawSecs,
		EventCount:         count,
	}
}

func TestRuleClassifier_Types(t *testing.T) {
	tests := []struct {
		name     string
		rawSecs  float64
		accuracy float64
		want     Type
	}{
		{"low accuracy is struggling", 15, 0.4, TypeStruggling},
		{"struggling wins even when fast", 8, 0.4, TypeStruggling},
		{"fast with mediocre accuracy", 8, 0.6, TypeFastCareless},
		{"slow with high accuracy", 25, 0.9, TypeSlowAccurate},
		{"middle of the space", 16, 0.7, TypeBalanced},
		{"fast but accurate enough", 8, 0.8, TypeBalanced},
		{"slow but not accurate enough", 25, 0.7, TypeBalanced},
	}

	c := &RuleClassifier{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := c.Classify(context.Background(), feats(tt.rawSecs, tt.accuracy, 20))
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if p.Type != tt.want {
				t.Errorf("Type = %s, want %s", p.Type, tt.want)
			}
			if p.Confidence < 0 || p.Confidence > 1 {
				t.Errorf("Confidence = %f outside [0,1]", p.Confidence)
			}
		})
	}
}

func TestRuleClassifier_StrugglingConfidence(t *testing.T) {
	c := &RuleClassifier{}

	// Very low accuracy: high confidence.
	p, err := c.Classify(context.Background(), feats(15, 0.1, 20))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if p.Confidence < 0.85 {
		t.Errorf("Confidence = %f, want >= 0.85 for accuracy 0.1", p.Confidence)
	}

	// Accuracy just under the cutoff: confidence bottoms out near 0.5.
	p, err = c.Classify(context.Background(), feats(15, 0.49, 20))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if p.Confidence > 0.6 {
		t.Errorf("Confidence = %f, want near the 0.5 floor", p.Confidence)
	}
}

func TestRuleClassifier_StrugglingFloorSurvivesThinWindow(t *testing.T) {
	c := &RuleClassifier{}

	// Accuracy 0.4 gives raw confidence 0.6; a 5-event window damps
	// that below 0.5, which the struggling rule's floor catches.
	p, err := c.Classify(context.Background(), feats(15, 0.4, 5))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if p.Type != TypeStruggling {
		t.Fatalf("Type = %s, want struggling", p.Type)
	}
	if p.Confidence < 0.5 {
		t.Errorf("Confidence = %f, want >= 0.5", p.Confidence)
	}
}

func TestRuleClassifier_FewerEventsLowerConfidence(t *testing.T) {
	c := &RuleClassifier{}
	ctx := context.Background()

	full, err := c.Classify(ctx, feats(25, 0.9, 20))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	thin, err := c.Classify(ctx, feats(25, 0.9, 4))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if thin.Confidence >= full.Confidence {
		t.Errorf("thin-window confidence %f should be below full-window %f",
			thin.Confidence, full.Confidence)
	}
}

func TestRuleClassifier_Deterministic(t *testing.T) {
	c := &RuleClassifier{}
	in := feats(8, 0.6, 12)

	a, err := c.Classify(context.Background(), in)
	if err != nil {
		t.Fatalf("first classify: %v", err)
	}
	b, err := c.Classify(context.Background(), in)
	if err != nil {
		t.Fatalf("second classify: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("outputs differ: %+v vs %+v", a, b)
	}
}

func TestNew_Variants(t *testing.T) {
	if c, err := New(Config{}, nil); err != nil || c.Name() != "rules" {
		t.Errorf("default variant: classifier %v, err %v", c, err)
	}
	if c, err := New(Config{Variant: "rules"}, nil); err != nil || c.Name() != "rules" {
		t.Errorf("rules variant: classifier %v, err %v", c, err)
	}
	if _, err := New(Config{Variant: "llm"}, nil); err == nil {
		t.Error("llm variant without provider should fail")
	}
	if _, err := New(Config{Variant: "bogus"}, nil); err == nil {
		t.Error("unknown variant should fail")
	}
}
