package scheduler

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arnav/studium/internal/features"
)

// Window is a contiguous availability range within one day, in minutes
// since midnight.
type Window struct {
	Start int
	End   int
}

// Duration is the window length in minutes.
func (w Window) Duration() int { return w.End - w.Start }

func (w Window) String() string {
	return fmt.Sprintf("%s-%s", formatMinute(w.Start), formatMinute(w.End))
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseWindow parses an "HH:MM-HH:MM" availability range.
func ParseWindow(s string) (Window, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Window{}, &features.InvalidInputError{Field: "slot", Reason: fmt.Sprintf("%q is not of form HH:MM-HH:MM", s)}
	}
	start, err := parseClock(strings.TrimSpace(parts[0]))
	if err != nil {
		return Window{}, &features.InvalidInputError{Field: "slot", Reason: err.Error()}
	}
	end, err := parseClock(strings.TrimSpace(parts[1]))
	if err != nil {
		return Window{}, &features.InvalidInputError{Field: "slot", Reason: err.Error()}
	}
	if end <= start {
		return Window{}, &features.InvalidInputError{Field: "slot", Reason: fmt.Sprintf("%q ends before it starts", s)}
	}
	return Window{Start: start, End: end}, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%q is not a HH:MM time", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", s)
	}
	return h*60 + m, nil
}

// ParseWindows parses and normalizes a set of availability ranges:
// sorted by start time with overlapping or touching ranges merged, so
// strategies can treat the result as disjoint and ordered.
func ParseWindows(slots []string) ([]Window, error) {
	windows := make([]Window, 0, len(slots))
	for _, s := range slots {
		w, err := ParseWindow(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return MergeWindows(windows), nil
}

// MergeWindows sorts windows and merges any that overlap or touch.
func MergeWindows(windows []Window) []Window {
	if len(windows) == 0 {
		return nil
	}
	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := []Window{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start <= last.End {
			if w.End > last.End {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}
