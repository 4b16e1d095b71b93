package features

import "fmt"

// ValidateCognitiveEvent rejects out-of-range fields before any computation
// or persistence touches the event.
func ValidateCognitiveEvent(e CognitiveEvent) error {
	if e.QuestionID == "" {
		return &InvalidInputError{Field: "question_id", Reason: "must not be empty"}
	}
	if e.TimeTakenSecs <= 0 {
		return &InvalidInputError{
			Field:  "time_taken_secs",
			Reason: fmt.Sprintf("must be > 0, got %g", e.TimeTakenSecs),
		}
	}
	// Negative confidence is the missing-value sentinel, forward-filled
	// during feature extraction.
	if e.Confidence > 1 {
		return &InvalidInputError{
			Field:  "confidence",
			Reason: fmt.Sprintf("must be in [0,1], got %g", e.Confidence),
		}
	}
	return nil
}

// ValidateEnergyLog rejects out-of-range sleep/tiredness reports.
func ValidateEnergyLog(l EnergyLog) error {
	if l.SleepHours < 0 || l.SleepHours > 12 {
		return &InvalidInputError{
			Field:  "sleep_hours",
			Reason: fmt.Sprintf("must be in [0,12], got %g", l.SleepHours),
		}
	}
	if l.Tiredness < tirednessMin || l.Tiredness > tirednessMax {
		return &InvalidInputError{
			Field:  "tiredness",
			Reason: fmt.Sprintf("must be in [%d,%d], got %d", tirednessMin, tirednessMax, l.Tiredness),
		}
	}
	return nil
}

// NormalizeOrdinalConfidence maps an ordinal 1-5 confidence report onto
// [0,1]. Upstream clients disagree on the confidence scale; the core only
// ever sees the float form.
func NormalizeOrdinalConfidence(v int) (float64, error) {
	if v < 1 || v > 5 {
		return 0, &InvalidInputError{
			Field:  "confidence",
			Reason: fmt.Sprintf("ordinal form must be in [1,5], got %d", v),
		}
	}
	return float64(v-1) / 4.0, nil
}
