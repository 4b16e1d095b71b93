package profile

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/arnav/studium/internal/llm"
)

func TestLLMClassifier_Classify(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"type":"fast_careless","confidence":0.9,"reasoning":"quick and sloppy"}`),
	})
	c := NewLLMClassifier(mock)

	p, err := c.Classify(context.Background(), feats(8, 0.6, 20))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if p.Type != TypeFastCareless {
		t.Errorf("Type = %s, want fast_careless", p.Type)
	}
	if p.Confidence != 0.9 {
		t.Errorf("Confidence = %f, want 0.9", p.Confidence)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
	// The request must carry the structured-output schema.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "cognitive-profile" {
		t.Error("request missing cognitive-profile schema")
	}
}

func TestLLMClassifier_ConfidenceCappedByCoverage(t *testing.T) {
	// The model claims 0.95 but only 4 events back it.
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"type":"balanced","confidence":0.95}`),
	})
	c := NewLLMClassifier(mock)

	p, err := c.Classify(context.Background(), feats(15, 0.7, 4))
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if p.Confidence > 0.7 {
		t.Errorf("Confidence = %f, want capped at coverage 0.7", p.Confidence)
	}
}

func TestLLMClassifier_UnknownType(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"type":"galaxy_brain","confidence":0.9}`),
	})
	c := NewLLMClassifier(mock)

	if _, err := c.Classify(context.Background(), feats(15, 0.7, 20)); err == nil {
		t.Fatal("unknown type should be rejected")
	}
}

func TestLLMClassifier_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → unavailable
	c := NewLLMClassifier(mock)

	if _, err := c.Classify(context.Background(), feats(15, 0.7, 20)); err == nil {
		t.Fatal("provider failure should surface")
	}
}
