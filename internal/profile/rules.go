package profile

import (
	"context"

	"github.com/arnav/studium/internal/features"
)

// Threshold constants for the rule-based classifier. Response-time
// thresholds apply to raw seconds, before normalization.
const (
	StrugglingAccuracy   = 0.5
	FastCarelessTimeSecs = 12.0
	FastCarelessAccuracy = 0.75
	SlowAccurateTimeSecs = 20.0
	SlowAccurateAccuracy = 0.8
)

// RuleClassifier is the default threshold-rule classifier. Rules are
// evaluated in a fixed order, first match wins, so identical feature
// vectors always classify identically.
type RuleClassifier struct{}

func (c *RuleClassifier) Name() string { return "rules" }

func (c *RuleClassifier) Classify(_ context.Context, feats features.Cognitive) (*Profile, error) {
	acc := feats.AccuracyRate
	raw := feats.RawAvgResponseSecs
	cov := coverageFactor(feats.EventCount)

	var typ Type
	var conf float64

	switch {
	case acc < StrugglingAccuracy:
		typ = TypeStruggling
		conf = clampFloat(1-acc, 0.5, 1.0)

	case raw < FastCarelessTimeSecs && acc < FastCarelessAccuracy:
		typ = TypeFastCareless
		conf = thresholdConfidence(
			(FastCarelessTimeSecs-raw)/FastCarelessTimeSecs,
			(FastCarelessAccuracy-acc)/FastCarelessAccuracy,
		)

	case raw > SlowAccurateTimeSecs && acc > SlowAccurateAccuracy:
		typ = TypeSlowAccurate
		conf = thresholdConfidence(
			(raw-SlowAccurateTimeSecs)/SlowAccurateTimeSecs,
			(acc-SlowAccurateAccuracy)/(1-SlowAccurateAccuracy),
		)

	default:
		typ = TypeBalanced
		conf = balancedConfidence(raw, acc)
	}

	conf = clampFloat(conf*cov, 0, 1)
	if typ == TypeStruggling && conf < 0.5 {
		// The struggling rule promises at least 0.5; coverage damping
		// may not undercut it.
		conf = 0.5
	}

	return &Profile{
		Type:       typ,
		Confidence: conf,
		Features:   feats,
	}, nil
}

// thresholdConfidence maps the weakest margin past a rule's thresholds
// onto [0.5, 0.95]: barely matching gives 0.5, a comfortable margin
// approaches 0.95.
func thresholdConfidence(margins ...float64) float64 {
	m := margins[0]
	for _, v := range margins[1:] {
		if v < m {
			m = v
		}
	}
	m = clampFloat(m, 0, 1)
	return clampFloat(0.5+0.45*m, 0.5, 0.95)
}

// balancedConfidence grows with distance from every rule boundary: a
// learner sitting right next to the struggling cutoff is a weaker
// "balanced" than one in the middle of the space.
func balancedConfidence(rawSecs, acc float64) float64 {
	dist := minFloat(
		absDiff(acc, StrugglingAccuracy),
		absDiff(acc, FastCarelessAccuracy),
		absDiff(acc, SlowAccurateAccuracy),
		absDiff(rawSecs, FastCarelessTimeSecs)/60.0,
		absDiff(rawSecs, SlowAccurateTimeSecs)/60.0,
	)
	return clampFloat(0.5+0.9*dist, 0.5, 0.95)
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func minFloat(vs ...float64) float64 {
	m := vs[0]
	for _, v := range vs[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
