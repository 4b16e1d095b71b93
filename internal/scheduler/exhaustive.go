package scheduler

import (
	"context"
	"errors"
	"math"
	"time"
)

// ExhaustiveStrategy searches every feasible topic assignment over the
// carved sessions and keeps the highest-objective plan. The search is
// bounded by Budget; if it runs out, the greedy result is returned
// instead. Cancellation is cooperative, checked between candidates.
type ExhaustiveStrategy struct {
	Budget time.Duration
}

func (s *ExhaustiveStrategy) Name() string { return "exhaustive" }

var errSearchAborted = errors.New("search aborted")

func (s *ExhaustiveStrategy) Generate(ctx context.Context, in Input) (*Plan, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	searchCtx, cancel := context.WithTimeout(ctx, s.Budget)
	defer cancel()

	prefs := in.Prefs.withDefaults()
	in.Prefs = prefs
	sessions := carveSessions(in.Windows, prefs)
	ranked := rankTopics(in)

	best, err := searchAssignments(searchCtx, in, sessions, ranked)
	if err != nil {
		// Out of budget or cancelled: the greedy baseline still has
		// to answer. Its failure escalates normally.
		fallback := &GreedyStrategy{}
		plan, gerr := fallback.Generate(ctx, in)
		if gerr != nil {
			return nil, gerr
		}
		plan.Metadata.Strategy = s.Name() + "/fallback-greedy"
		return plan, nil
	}
	if len(best) == 0 {
		return nil, &NoFeasibleError{Reason: ReasonNoPositive}
	}
	return buildPlan(in, best, s.Name()), nil
}

type searchState struct {
	in       Input
	sessions []session
	ranked   []Topic

	bestSlots []Slot
	bestValue float64
}

// searchAssignments runs a depth-first branch and bound over the
// session list. Each level either skips the session or assigns one of
// the non-excluded topics; the accumulated objective prunes branches
// that cannot beat the incumbent.
func searchAssignments(ctx context.Context, in Input, sessions []session, ranked []Topic) ([]Slot, error) {
	st := &searchState{in: in, sessions: sessions, ranked: ranked, bestValue: 0}
	if err := st.search(ctx, 0, nil, 0, "", 0, 0); err != nil {
		return nil, err
	}
	return st.bestSlots, nil
}

func (st *searchState) search(ctx context.Context, depth int, slots []Slot, value float64, lastTopic string, consecutive int, accumulated float64) error {
	if err := ctx.Err(); err != nil {
		return errSearchAborted
	}
	if depth == len(st.sessions) {
		if value > st.bestValue {
			st.bestValue = value
			st.bestSlots = append([]Slot(nil), slots...)
		}
		return nil
	}
	// Upper bound: remaining sessions at the best conceivable
	// per-hour objective. Prune when even that cannot win.
	if value+st.upperBound(depth) <= st.bestValue {
		return nil
	}

	sess := st.sessions[depth]
	rest := accumulated
	if depth > 0 && len(slots) > 0 {
		restHours := float64(sess.start-st.sessions[depth-1].end) / 60
		rest = math.Max(0, accumulated-restHours*breakDecayPerHour)
	}

	for _, t := range st.ranked {
		if t.ID == lastTopic && consecutive >= 2 {
			continue
		}
		if st.in.Mastery[t.ID] >= 1.0 {
			continue
		}
		score := slotObjective(t, st.in.Mastery[t.ID], st.in, rest)
		if score <= 0 {
			continue
		}
		slot := makeSlot(sess, t, st.in, len(slots))
		next := consecutive
		if t.ID == lastTopic {
			next++
		} else {
			next = 1
		}
		hours := float64(sess.end-sess.start) / 60
		load := rest + hours*loadByIntensity[slot.Intensity]
		if err := st.search(ctx, depth+1, append(slots, slot), value+score, t.ID, next, load); err != nil {
			return err
		}
	}
	// Leaving the session empty is always feasible.
	return st.search(ctx, depth+1, slots, value, lastTopic, consecutive, rest)
}

func (st *searchState) upperBound(depth int) float64 {
	maxGain := 0.0
	for _, t := range st.ranked {
		if g := learningGain(t, st.in.Mastery[t.ID], st.in.Prefs); g > maxGain {
			maxGain = g
		}
	}
	return float64(len(st.sessions)-depth) * maxGain
}
