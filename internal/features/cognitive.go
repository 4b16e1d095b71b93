package features

// ComputeCognitive extracts the cognitive feature vector from a window of
// events. The window is expected to be ordered oldest-first and trimmed to
// the caller's desired size (CognitiveWindow by default).
//
// Pure function: identical windows produce identical vectors.
func ComputeCognitive(events []CognitiveEvent) (*Cognitive, error) {
	if len(events) == 0 {
		return nil, &InsufficientDataError{Reason: "no cognitive events in window"}
	}

	filled, err := forwardFillConfidence(events)
	if err != nil {
		return nil, err
	}

	times := make([]float64, len(filled))
	for i, e := range filled {
		times[i] = e.TimeTakenSecs
	}
	times = capOutliers(times, 3.0)

	rawAvg := mean(times)
	lo, hi := minSlice(times), maxSlice(times)

	correct := 0
	confGapSum := 0.0
	for _, e := range filled {
		indicator := 0.0
		if e.Correct {
			correct++
			indicator = 1.0
		}
		confGapSum += absFloat(e.Confidence - indicator)
	}
	n := float64(len(filled))

	var consistency float64
	if hi == lo {
		consistency = 0.5
	} else {
		consistency = clamp(1-stddev(times, rawAvg)/(hi-lo), 0, 1)
	}

	return &Cognitive{
		AvgResponseTime:    minMax(rawAvg, lo, hi),
		AccuracyRate:       float64(correct) / n,
		RetryPattern:       retryPattern(filled),
		ConfidenceGap:      clamp(confGapSum/n, 0, 1),
		SpeedConsistency:   consistency,
		RawAvgResponseSecs: rawAvg,
		EventCount:         len(filled),
	}, nil
}

// retryPattern is the fraction of distinct questions with more than one
// recorded attempt within the window.
func retryPattern(events []CognitiveEvent) float64 {
	attempts := make(map[string]int)
	for _, e := range events {
		attempts[e.QuestionID]++
	}
	if len(attempts) == 0 {
		return 0
	}
	retried := 0
	for _, c := range attempts {
		if c > 1 {
			retried++
		}
	}
	return float64(retried) / float64(len(attempts))
}

// forwardFillConfidence replaces missing (negative) confidence values with
// the most recent prior value. A window whose earliest events all lack a
// confidence fails with InsufficientData: there is nothing to fill from.
func forwardFillConfidence(events []CognitiveEvent) ([]CognitiveEvent, error) {
	out := make([]CognitiveEvent, len(events))
	copy(out, events)

	last := -1.0
	for i := range out {
		if out[i].Confidence < 0 {
			if last < 0 {
				return nil, &InsufficientDataError{
					Reason: "missing confidence with no prior value to fill from",
				}
			}
			out[i].Confidence = last
		} else {
			last = out[i].Confidence
		}
	}
	return out, nil
}

func minSlice(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxSlice(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
