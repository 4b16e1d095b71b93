package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arnav/studium/internal/features"
	"github.com/arnav/studium/internal/llm"
)

// LLMClassifier is the learned classifier variant: it asks a language
// model to classify the feature vector, constrained to the same output
// shape as the rule classifier. The schema validation in the provider
// guarantees a well-formed result or an error, never a silent guess.
type LLMClassifier struct {
	provider llm.Provider
}

// NewLLMClassifier builds a classifier on top of the given provider.
func NewLLMClassifier(provider llm.Provider) *LLMClassifier {
	return &LLMClassifier{provider: provider}
}

func (c *LLMClassifier) Name() string { return "llm" }

const classifySystemPrompt = `You classify a learner's cognitive style from quiz-behavior features.
Categories:
- struggling: low accuracy regardless of speed
- fast_careless: fast responses with mediocre accuracy
- slow_accurate: slow responses with high accuracy
- balanced: none of the above
Respond with the category and your confidence in it.`

var classifySchema = &llm.Schema{
	Name:        "cognitive-profile",
	Description: "Cognitive style classification of a learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "string",
				"enum": []any{"struggling", "fast_careless", "slow_accurate", "balanced"},
			},
			"confidence": map[string]any{
				"type":        "number",
				"description": "Confidence in [0,1]",
			},
			"reasoning": map[string]any{
				"type": "string",
			},
		},
		"required": []any{"type", "confidence"},
	},
}

type classifyResult struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

func (c *LLMClassifier) Classify(ctx context.Context, feats features.Cognitive) (*Profile, error) {
	ctx = llm.WithPurpose(ctx, "cognitive-profile")

	prompt := fmt.Sprintf(
		"Features over the last %d attempts:\n"+
			"- average response time: %.1f seconds\n"+
			"- accuracy rate: %.2f\n"+
			"- retry pattern: %.2f\n"+
			"- confidence gap (calibration error): %.2f\n"+
			"- speed consistency: %.2f\n",
		feats.EventCount,
		feats.RawAvgResponseSecs,
		feats.AccuracyRate,
		feats.RetryPattern,
		feats.ConfidenceGap,
		feats.SpeedConsistency,
	)

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:    classifySystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    classifySchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("llm classify: %w", err)
	}

	var result classifyResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return nil, fmt.Errorf("decode classification: %w", err)
	}

	typ := Type(result.Type)
	if !ValidType(typ) {
		return nil, fmt.Errorf("llm classify: unknown type %q", result.Type)
	}

	// The model's self-reported confidence is capped by sample coverage:
	// it may not claim more certainty than the data supports.
	conf := clampFloat(result.Confidence, 0, 1)
	if limit := coverageFactor(feats.EventCount); conf > limit {
		conf = limit
	}

	return &Profile{
		Type:       typ,
		Confidence: conf,
		Features:   feats,
	}, nil
}
