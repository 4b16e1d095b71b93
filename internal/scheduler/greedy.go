package scheduler

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// GreedyStrategy is the baseline: rank topics by learning gain, walk
// the day chronologically, and give each carved session to the topic
// with the best objective at that point. Fatigue accumulates across
// sessions and decays over breaks, so later slots prefer lighter work.
type GreedyStrategy struct{}

func (s *GreedyStrategy) Name() string { return "greedy" }

func (s *GreedyStrategy) Generate(ctx context.Context, in Input) (*Plan, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	ranked := rankTopics(in)
	slots := assignGreedy(in, ranked)
	if len(slots) == 0 {
		return nil, &NoFeasibleError{Reason: ReasonNoPositive}
	}
	return buildPlan(in, slots, s.Name()), nil
}

// rankTopics orders candidates by learning gain descending, then by
// lowest mastery, then by topic ID. The full ordering makes plan
// generation reproducible.
func rankTopics(in Input) []Topic {
	ranked := make([]Topic, len(in.Topics))
	copy(ranked, in.Topics)
	sort.SliceStable(ranked, func(i, j int) bool {
		gi := learningGain(ranked[i], in.Mastery[ranked[i].ID], in.Prefs)
		gj := learningGain(ranked[j], in.Mastery[ranked[j].ID], in.Prefs)
		if gi != gj {
			return gi > gj
		}
		mi, mj := in.Mastery[ranked[i].ID], in.Mastery[ranked[j].ID]
		if mi != mj {
			return mi < mj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// session is an unassigned carved time range.
type session struct {
	start, end int
}

// carveSessions splits the availability windows into candidate
// sessions no longer than the max session length, separated by at
// least the minimum break. Gaps between windows count toward breaks.
func carveSessions(windows []Window, prefs Preferences) []session {
	var out []session
	lastEnd := -1 << 30
	for _, w := range windows {
		cursor := w.Start
		for cursor < w.End {
			if gap := cursor - lastEnd; lastEnd > 0 && gap < prefs.MinBreakMinutes {
				cursor = lastEnd + prefs.MinBreakMinutes
				continue
			}
			length := prefs.MaxSessionMinutes
			if rem := w.End - cursor; rem < length {
				length = rem
			}
			// Too short to be worth a session.
			if length < 15 {
				break
			}
			out = append(out, session{start: cursor, end: cursor + length})
			lastEnd = cursor + length
			cursor = lastEnd
		}
	}
	return out
}

func assignGreedy(in Input, ranked []Topic) []Slot {
	prefs := in.Prefs.withDefaults()
	in.Prefs = prefs
	sessions := carveSessions(in.Windows, prefs)

	var slots []Slot
	var accumulated float64
	lastTopic := ""
	consecutive := 0
	lastEnd := 0

	for _, sess := range sessions {
		// Breaks shed fatigue before this session starts.
		if len(slots) > 0 {
			restHours := float64(sess.start-lastEnd) / 60
			accumulated = math.Max(0, accumulated-restHours*breakDecayPerHour)
		}

		best := -1
		bestScore := 0.0
		for i, t := range ranked {
			if t.ID == lastTopic && consecutive >= 2 {
				continue
			}
			if in.Mastery[t.ID] >= 1.0 {
				continue
			}
			score := slotObjective(t, in.Mastery[t.ID], in, accumulated)
			if score <= 0 {
				continue
			}
			if best == -1 || score > bestScore {
				best, bestScore = i, score
			}
		}
		if best == -1 {
			continue
		}
		topic := ranked[best]
		if topic.ID == lastTopic {
			consecutive++
		} else {
			lastTopic = topic.ID
			consecutive = 1
		}

		slot := makeSlot(sess, topic, in, len(slots))
		slots = append(slots, slot)

		hours := float64(sess.end-sess.start) / 60
		accumulated += hours * loadByIntensity[slot.Intensity]
		lastEnd = sess.end
	}
	return slots
}

// Study methods matched to cognitive style, rotated across a plan so
// consecutive sessions vary.
var methodsByProfile = map[string][]string{
	"struggling":    {"Concept Review", "Video Lecture", "Guided Practice"},
	"fast_careless": {"Slow Practice", "Reflection Journal", "Error Analysis"},
	"slow_accurate": {"Timed Drills", "Speed Practice", "Pattern Recognition"},
	"balanced":      {"Problem Practice", "Mixed Problems", "Active Recall"},
}

func methodFor(profileType string, slotIndex int) string {
	methods, ok := methodsByProfile[profileType]
	if !ok || len(methods) == 0 {
		return "Problem Practice"
	}
	return methods[slotIndex%len(methods)]
}

func makeSlot(sess session, t Topic, in Input, slotIndex int) Slot {
	mastery := in.Mastery[t.ID]
	intensity := intensityFor(t.Difficulty)
	return Slot{
		StartMinute:  sess.start,
		EndMinute:    sess.end,
		TimeRange:    Window{Start: sess.start, End: sess.end}.String(),
		Subject:      t.Subject,
		Topic:        t.Name,
		TopicID:      t.ID,
		Method:       methodFor(string(in.ProfileType), slotIndex),
		Intensity:    intensity,
		Rationale:    rationale(in, t, mastery),
		EnergyMatch:  energyMatch(in.Energy.Level, t.Difficulty),
		CognitiveFit: cognitiveFit(in.ProfileType, t.Difficulty),
	}
}

var energyPhrases = map[string]string{
	"high":   "Peak energy",
	"medium": "Moderate energy",
	"low":    "Low energy",
}

var profileContext = map[string]string{
	"struggling":    "needs foundational review",
	"fast_careless": "focus on accuracy",
	"slow_accurate": "speed practice beneficial",
	"balanced":      "optimal learning conditions",
}

// rationale is the human-readable justification attached to a slot.
// It is derived only from the inputs so identical plans carry
// identical explanations.
func rationale(in Input, t Topic, mastery float64) string {
	strength := "strong topic"
	switch {
	case mastery < 0.4:
		strength = "weak topic"
	case mastery < 0.7:
		strength = "developing topic"
	}
	return fmt.Sprintf("%s + %s - %s",
		energyPhrases[string(in.Energy.Level)], strength, profileContext[string(in.ProfileType)])
}

func buildPlan(in Input, slots []Slot, strategy string) *Plan {
	total := 0
	gain := 0.0
	for _, s := range slots {
		total += s.Duration()
		hours := float64(s.Duration()) / 60
		gain += learningGainBySlot(in, s) * hours * 0.1
	}
	return &Plan{
		ID:                    uuid.New(),
		Date:                  in.Date.Format("2006-01-02"),
		TotalMinutes:          total,
		EstimatedLearningGain: math.Round(gain*100) / 100,
		Slots:                 slots,
		Metadata: Metadata{
			GeneratedAt:  time.Now().UTC(),
			ModelVersion: ModelVersion,
			Strategy:     strategy,
		},
	}
}

func learningGainBySlot(in Input, s Slot) float64 {
	for _, t := range in.Topics {
		if t.ID == s.TopicID {
			return learningGain(t, in.Mastery[t.ID], in.Prefs) * s.EnergyMatch * s.CognitiveFit
		}
	}
	return 0
}
