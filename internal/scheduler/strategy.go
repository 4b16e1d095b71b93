package scheduler

import (
	"context"
	"fmt"
	"time"
)

// NoFeasibleError reports that the constraints admit no positive-value
// assignment. Reason explains which constraint killed the plan.
type NoFeasibleError struct {
	Reason string
}

func (e *NoFeasibleError) Error() string {
	return fmt.Sprintf("no feasible schedule: %s", e.Reason)
}

const (
	ReasonNoSlots     = "no available slots"
	ReasonAllMastered = "all topics mastered"
	ReasonNoPositive  = "no positive-value assignment"
	ReasonNoTopics    = "no topics to schedule"
)

// Strategy produces a plan from an input. Implementations must honor
// the same hard constraints (no overlaps, session and break limits,
// topic diversity) and be deterministic for identical inputs.
type Strategy interface {
	Name() string
	Generate(ctx context.Context, in Input) (*Plan, error)
}

// Config selects and tunes the strategy.
type Config struct {
	// Variant is "greedy" (default) or "exhaustive".
	Variant string
	// Budget bounds the exhaustive search; past it the search
	// falls back to the greedy result. Zero means a 200ms default.
	Budget time.Duration
}

// New builds the configured strategy.
func New(cfg Config) (Strategy, error) {
	switch cfg.Variant {
	case "", "greedy":
		return &GreedyStrategy{}, nil
	case "exhaustive":
		budget := cfg.Budget
		if budget <= 0 {
			budget = 200 * time.Millisecond
		}
		return &ExhaustiveStrategy{Budget: budget}, nil
	default:
		return nil, fmt.Errorf("unknown scheduler strategy: %q", cfg.Variant)
	}
}

// validateInput applies the checks shared by every strategy. Zero
// windows is checked before anything else so the failure mode is
// stable regardless of the rest of the input.
func validateInput(in Input) error {
	if len(in.Windows) == 0 {
		return &NoFeasibleError{Reason: ReasonNoSlots}
	}
	if len(in.Topics) == 0 {
		return &NoFeasibleError{Reason: ReasonNoTopics}
	}
	allMastered := true
	for _, t := range in.Topics {
		if in.Mastery[t.ID] < 1.0 {
			allMastered = false
			break
		}
	}
	if allMastered {
		return &NoFeasibleError{Reason: ReasonAllMastered}
	}
	return nil
}
