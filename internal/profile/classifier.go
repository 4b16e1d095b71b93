package profile

import (
	"context"
	"fmt"

	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/llm"
)

// Classifier turns a cognitive feature vector into a Profile. Variants
// (rule-based default, learned alternative) are interchangeable behind
// this interface; the scheduler never depends on which is active.
type Classifier interface {
	Name() string
	Classify(ctx context.Context, feats features.Cognitive) (*Profile, error)
}

// Config selects the classifier variant at construction time.
type Config struct {
	// Variant is "rules" (default) or "llm".
	Variant string
}

// New builds the configured classifier. The provider is only required
// for the "llm" variant.
func New(cfg Config, provider llm.Provider) (Classifier, error) {
	switch cfg.Variant {
	case "", "rules":
		return &RuleClassifier{}, nil
	case "llm":
		if provider == nil {
			return nil, fmt.Errorf("llm classifier requires a provider")
		}
		return NewLLMClassifier(provider), nil
	default:
		return nil, fmt.Errorf("unknown profiler variant: %q", cfg.Variant)
	}
}

// coverageFactor dampens confidence on thin windows. Mirrors the idea
// that a classification from 5 events deserves less trust than one from
// a full window.
func coverageFactor(n int) float64 {
	switch {
	case n >= features.CognitiveWindow:
		return 1.0
	case n >= 10:
		return 0.85
	default:
		return 0.7
	}
}
