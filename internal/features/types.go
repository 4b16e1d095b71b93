package features

import "time"

// CognitiveEvent is one recorded quiz attempt: timing, correctness, and
// self-reported confidence. Immutable once recorded.
type CognitiveEvent struct {
	QuestionID    string
	Subject       string
	TimeTakenSecs float64
	Correct       bool
	// Confidence is the self-reported confidence in [0,1]. A negative value
	// means the learner didn't report one; it is forward-filled from the
	// most recent prior event during feature extraction.
	Confidence float64
	Timestamp  time.Time
}

// EnergyLog is one daily sleep/tiredness self-report.
type EnergyLog struct {
	SleepHours float64 // [0,12]
	Tiredness  int     // [1,10]
	Timestamp  time.Time
}

// Cognitive is the normalized cognitive feature vector. Every normalized
// field lies in [0,1]. RawAvgResponseSecs and EventCount are carried
// alongside so profiler rules can apply raw-second thresholds and scale
// confidence by sample coverage.
type Cognitive struct {
	AvgResponseTime  float64 `json:"avg_response_time"`
	AccuracyRate     float64 `json:"accuracy_rate"`
	RetryPattern     float64 `json:"retry_pattern"`
	ConfidenceGap    float64 `json:"confidence_gap"`
	SpeedConsistency float64 `json:"speed_consistency"`

	RawAvgResponseSecs float64 `json:"raw_avg_response_secs"`
	EventCount         int     `json:"event_count"`
}

// Energy is the normalized energy feature vector derived from a 7-day
// rolling window of energy logs. Every field lies in [0,1].
type Energy struct {
	FatigueIndex  float64 `json:"fatigue_index"`
	RecoveryTrend float64 `json:"recovery_trend"` // 0.5 = flat, >0.5 = improving
	OptimalHour   float64 `json:"optimal_hour"`   // hour-of-day / 23
	BurnoutRisk   float64 `json:"burnout_risk"`

	OptimalHourOfDay int `json:"optimal_hour_of_day"`
}

// CognitiveWindow is the default number of recent events used for
// cognitive feature extraction.
const CognitiveWindow = 20

// EnergyWindowDays is the rolling window for energy feature extraction.
const EnergyWindowDays = 7
