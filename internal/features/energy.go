package features

import "sort"

const (
	// fullRestHours caps sleep normalization: sleeping past 9 hours doesn't
	// earn extra credit.
	fullRestHours = 9.0

	tirednessMin = 1
	tirednessMax = 10
)

// EnergyScore computes the usable-capacity score in [0,100] from a single
// sleep/tiredness report.
func EnergyScore(sleepHours float64, tiredness int) int {
	score := sleepHours*12 - float64(tiredness)*10
	return int(clamp(score, 0, 100))
}

// FatigueIndex combines tiredness and sleep debt into a [0,1] index.
// Tiredness dominates (0.6 weight); sleep_norm is capped at the full-rest
// ceiling so oversleeping can't mask exhaustion.
func FatigueIndex(tiredness int, sleepHours float64) float64 {
	tn := float64(tiredness-tirednessMin) / float64(tirednessMax-tirednessMin)
	sn := clamp(sleepHours, 0, fullRestHours) / fullRestHours
	return clamp(0.6*tn+0.4*(1-sn), 0, 1)
}

// ComputeEnergy derives the energy feature vector from a rolling window of
// energy logs plus the cognitive event history (needed for the optimal-hour
// bucket). Logs are expected oldest-first. Unlike cognitive extraction this
// never fails: sparse windows fall back to neutral values.
//
// Pure function: identical windows produce identical vectors.
func ComputeEnergy(logs []EnergyLog, events []CognitiveEvent) Energy {
	hour := optimalHour(events)

	e := Energy{
		FatigueIndex:     0.5,
		RecoveryTrend:    0.5,
		BurnoutRisk:      0.5,
		OptimalHour:      float64(hour) / 23.0,
		OptimalHourOfDay: hour,
	}
	if len(logs) == 0 {
		return e
	}

	latest := logs[len(logs)-1]
	e.FatigueIndex = FatigueIndex(latest.Tiredness, latest.SleepHours)
	e.RecoveryTrend = recoveryTrend(logs)
	e.BurnoutRisk = burnoutRisk(logs)
	return e
}

// recoveryTrend maps the per-day slope of the energy score onto [0,1],
// with 0.5 meaning flat. A +25 points/day slope saturates at 1.
func recoveryTrend(logs []EnergyLog) float64 {
	if len(logs) < 2 {
		return 0.5
	}
	base := logs[0].Timestamp
	xs := make([]float64, len(logs))
	ys := make([]float64, len(logs))
	for i, l := range logs {
		xs[i] = l.Timestamp.Sub(base).Hours() / 24.0
		ys[i] = float64(EnergyScore(l.SleepHours, l.Tiredness))
	}
	slope := linearSlope(xs, ys)
	return clamp(0.5+slope/50.0, 0, 1)
}

// burnoutRisk blends the window's mean fatigue with its direction of
// travel: sustained high fatigue that is still rising is the worst case.
// One report is too little signal; treat it as low risk.
func burnoutRisk(logs []EnergyLog) float64 {
	if len(logs) < 2 {
		return 0.3
	}
	base := logs[0].Timestamp
	xs := make([]float64, len(logs))
	fs := make([]float64, len(logs))
	for i, l := range logs {
		xs[i] = l.Timestamp.Sub(base).Hours() / 24.0
		fs[i] = FatigueIndex(l.Tiredness, l.SleepHours)
	}
	slope := linearSlope(xs, fs) // fatigue units per day
	return clamp(mean(fs)+0.5*slope*float64(EnergyWindowDays), 0, 1)
}

// optimalHour is the hour-of-day bucket with the highest historical mean
// accuracy; ties break toward the earliest hour. With no history the
// default is mid-morning.
func optimalHour(events []CognitiveEvent) int {
	if len(events) == 0 {
		return 9
	}

	type bucket struct{ correct, total int }
	buckets := make(map[int]*bucket)
	for _, e := range events {
		h := e.Timestamp.Hour()
		b := buckets[h]
		if b == nil {
			b = &bucket{}
			buckets[h] = b
		}
		b.total++
		if e.Correct {
			b.correct++
		}
	}

	hours := make([]int, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	best, bestAcc := hours[0], -1.0
	for _, h := range hours {
		b := buckets[h]
		acc := float64(b.correct) / float64(b.total)
		if acc > bestAcc {
			best, bestAcc = h, acc
		}
	}
	return best
}
