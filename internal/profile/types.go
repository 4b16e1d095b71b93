package profile

import "github.com/arnav/studium/internal/features"

// Type is the learning-style category a learner is classified into.
type Type string

const (
	TypeStruggling   Type = "struggling"
	TypeFastCareless Type = "fast_careless"
	TypeSlowAccurate Type = "slow_accurate"
	TypeBalanced     Type = "balanced"
)

// Profile is the classified cognitive profile with the confidence of the
// classification and the feature vector it was derived from.
type Profile struct {
	Type       Type               `json:"type"`
	Confidence float64            `json:"confidence"`
	Features   features.Cognitive `json:"features"`
}

// MinEvents is the minimum window size below which no profile is
// produced. The caller gets an explicit insufficient-data signal instead
// of a low-confidence guess.
const MinEvents = 3

// ValidType reports whether t is a known profile type.
func ValidType(t Type) bool {
	switch t {
	case TypeStruggling, TypeFastCareless, TypeSlowAccurate, TypeBalanced:
		return true
	}
	return false
}
