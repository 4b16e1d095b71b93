package scheduler

import (
	"github.com/arnav/studium/internal/energy"
	"github.com/arnav/studium/internal/profile"
)

// How well a topic difficulty suits the current energy level.
var energyMatchMap = map[energy.Level]map[Difficulty]float64{
	energy.LevelHigh:   {DifficultyHard: 1.0, DifficultyMedium: 0.7, DifficultyEasy: 0.3},
	energy.LevelMedium: {DifficultyHard: 0.5, DifficultyMedium: 1.0, DifficultyEasy: 0.7},
	energy.LevelLow:    {DifficultyHard: 0.2, DifficultyMedium: 0.5, DifficultyEasy: 1.0},
}

// How well a cognitive style handles a topic difficulty.
var cognitiveFitMap = map[profile.Type]map[Difficulty]float64{
	profile.TypeStruggling:   {DifficultyHard: 0.3, DifficultyMedium: 0.7, DifficultyEasy: 1.0},
	profile.TypeFastCareless: {DifficultyHard: 0.7, DifficultyMedium: 1.0, DifficultyEasy: 0.5},
	profile.TypeSlowAccurate: {DifficultyHard: 1.0, DifficultyMedium: 0.8, DifficultyEasy: 0.5},
	profile.TypeBalanced:     {DifficultyHard: 0.8, DifficultyMedium: 1.0, DifficultyEasy: 0.8},
}

var intensityByDifficulty = map[Difficulty]Intensity{
	DifficultyHard:   IntensityHigh,
	DifficultyMedium: IntensityMedium,
	DifficultyEasy:   IntensityLow,
}

// Fatigue load contributed per hour of study at each intensity.
var loadByIntensity = map[Intensity]float64{
	IntensityHigh:   1.0,
	IntensityMedium: 0.6,
	IntensityLow:    0.3,
}

// breakDecayPerHour is how much accumulated fatigue a resting hour
// sheds.
const breakDecayPerHour = 0.5

func energyMatch(level energy.Level, d Difficulty) float64 {
	if m, ok := energyMatchMap[level][d]; ok {
		return m
	}
	return 0.5
}

func cognitiveFit(pt profile.Type, d Difficulty) float64 {
	if f, ok := cognitiveFitMap[pt][d]; ok {
		return f
	}
	return 0.7
}

func intensityFor(d Difficulty) Intensity {
	if i, ok := intensityByDifficulty[d]; ok {
		return i
	}
	return IntensityMedium
}

// learningGain is the raw value of studying a topic: weakest topics
// with the highest caller priority score first.
func learningGain(t Topic, mastery float64, prefs Preferences) float64 {
	weight := t.Weight
	if w, ok := prefs.TopicWeights[t.ID]; ok {
		weight = w
	}
	return (1 - mastery) * weight
}

// fatiguePenalty discourages stacking high-intensity sessions. The
// penalty scales with the day's accumulated load and with the
// learner's standing burnout risk.
func fatiguePenalty(accumulated, burnoutRisk float64) float64 {
	return 0.15 * accumulated * (0.5 + burnoutRisk)
}

// slotObjective is the per-assignment score the strategies maximize.
func slotObjective(t Topic, mastery float64, in Input, accumulated float64) float64 {
	gain := learningGain(t, mastery, in.Prefs)
	em := energyMatch(in.Energy.Level, t.Difficulty)
	cf := cognitiveFit(in.ProfileType, t.Difficulty)
	return gain*em*cf - fatiguePenalty(accumulated, in.BurnoutRisk)
}
