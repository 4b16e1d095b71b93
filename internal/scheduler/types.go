// Package scheduler assigns study topics to available time slots,
// maximizing expected learning gain under fatigue and diversity
// constraints.
package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/arnav/studium/internal/energy"
	"github.com/arnav/studium/internal/profile"
)

// ModelVersion is stamped into plan metadata so stored plans can be
// traced back to the scoring rules that produced them.
const ModelVersion = "v1"

// Intensity classifies the cognitive load of a scheduled session.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// Difficulty is the intrinsic difficulty of a topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Topic is one schedulable unit of study.
type Topic struct {
	ID         string
	Subject    string
	Name       string
	Weight     float64
	Difficulty Difficulty
}

// Preferences are the caller-tunable session-shaping knobs.
type Preferences struct {
	MaxSessionMinutes int
	MinBreakMinutes   int
	// TopicWeights overrides catalog weights per topic ID.
	TopicWeights map[string]float64
}

// DefaultPreferences mirror the product defaults: hour-long sessions
// with quarter-hour breaks.
func DefaultPreferences() Preferences {
	return Preferences{
		MaxSessionMinutes: 60,
		MinBreakMinutes:   15,
	}
}

func (p Preferences) withDefaults() Preferences {
	if p.MaxSessionMinutes <= 0 {
		p.MaxSessionMinutes = 60
	}
	if p.MinBreakMinutes < 0 {
		p.MinBreakMinutes = 15
	}
	return p
}

// Slot is one assigned study session within a plan.
type Slot struct {
	StartMinute  int       `json:"start_minute"`
	EndMinute    int       `json:"end_minute"`
	TimeRange    string    `json:"time_range"`
	Subject      string    `json:"subject"`
	Topic        string    `json:"topic"`
	TopicID      string    `json:"topic_id"`
	Method       string    `json:"method"`
	Intensity    Intensity `json:"intensity"`
	Rationale    string    `json:"rationale"`
	EnergyMatch  float64   `json:"energy_match"`
	CognitiveFit float64   `json:"cognitive_fit"`
}

// Duration is the slot length in minutes.
func (s Slot) Duration() int { return s.EndMinute - s.StartMinute }

// Metadata records provenance for an emitted plan.
type Metadata struct {
	GeneratedAt  time.Time `json:"generated_at"`
	ModelVersion string    `json:"model_version"`
	Strategy     string    `json:"strategy"`
}

// Plan is an immutable day schedule. Regenerating for the same date
// produces a new plan with a new ID; history is append-only.
type Plan struct {
	ID                    uuid.UUID `json:"id"`
	Date                  string    `json:"date"`
	TotalMinutes          int       `json:"total_study_time_minutes"`
	EstimatedLearningGain float64   `json:"estimated_learning_gain"`
	Slots                 []Slot    `json:"slots"`
	Metadata              Metadata  `json:"metadata"`
}

// Input is everything a strategy needs to produce a plan. It is a pure
// value; strategies perform no I/O while optimizing.
type Input struct {
	UserID      string
	Date        time.Time
	ProfileType profile.Type
	Energy      energy.State
	BurnoutRisk float64
	Mastery     map[string]float64
	Topics      []Topic
	Windows     []Window
	Prefs       Preferences
}
