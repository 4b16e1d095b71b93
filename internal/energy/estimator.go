// Package energy scores a learner's current usable mental capacity from
// sleep and tiredness self-reports.
package energy

import (
	"fmt"

	"github.com/arnav/studium/internal/features"
)

// Level buckets the energy score.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// State is the full energy assessment for right now.
type State struct {
	Score        int     `json:"energy_score"` // [0,100]
	Level        Level   `json:"energy_level"`
	FatigueIndex float64 `json:"fatigue_index"`
	Recommended  []string `json:"recommended_activities"`
	Avoid        []string `json:"avoid_activities"`
}

// Estimator scores capacity from the latest report plus the feature
// window. Variants are interchangeable; callers depend only on this
// interface.
type Estimator interface {
	Name() string
	Score(sleepHours float64, tiredness int, history features.Energy) State
}

// Config selects the estimator variant.
type Config struct {
	// Variant is "formula" (default) or "trend".
	Variant string
}

// New builds the configured estimator.
func New(cfg Config) (Estimator, error) {
	switch cfg.Variant {
	case "", "formula":
		return &FormulaEstimator{}, nil
	case "trend":
		return &TrendEstimator{}, nil
	default:
		return nil, fmt.Errorf("unknown estimator variant: %q", cfg.Variant)
	}
}

// LevelFor buckets a score: >=70 high, 40-69 medium, below low.
func LevelFor(score int) Level {
	switch {
	case score >= 70:
		return LevelHigh
	case score >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}

// FormulaEstimator is the default: the fixed sleep/tiredness formula
// with no adjustment from history. Pure function, no suspension, no
// external calls.
type FormulaEstimator struct{}

func (e *FormulaEstimator) Name() string { return "formula" }

func (e *FormulaEstimator) Score(sleepHours float64, tiredness int, history features.Energy) State {
	score := features.EnergyScore(sleepHours, tiredness)
	return buildState(score, sleepHours, tiredness)
}

// TrendEstimator nudges the formula score by the 7-day recovery trend:
// a learner on the mend gets a small lift, one sliding downward a small
// cut. The adjustment stays within ±10 points.
type TrendEstimator struct{}

func (e *TrendEstimator) Name() string { return "trend" }

func (e *TrendEstimator) Score(sleepHours float64, tiredness int, history features.Energy) State {
	score := features.EnergyScore(sleepHours, tiredness)
	score += int((history.RecoveryTrend - 0.5) * 20)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return buildState(score, sleepHours, tiredness)
}

func buildState(score int, sleepHours float64, tiredness int) State {
	level := LevelFor(score)
	rec, avoid := ActivitiesFor(level)
	return State{
		Score:        score,
		Level:        level,
		FatigueIndex: features.FatigueIndex(tiredness, sleepHours),
		Recommended:  rec,
		Avoid:        avoid,
	}
}
