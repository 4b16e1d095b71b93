package energy

// Activity guidance per level. Fixed tables; the scheduler reuses the
// same level semantics when matching intensity to slots.
var (
	highRecommended = []string{
		"learn new concepts",
		"attempt hard problems",
		"active recall sessions",
	}
	highAvoid = []string{
		"passive reading",
	}

	mediumRecommended = []string{
		"practice problems",
		"group discussion",
		"worked examples",
	}
	mediumAvoid = []string{
		"extremely difficult topics",
	}

	lowRecommended = []string{
		"light revision",
		"flashcards",
		"review notes",
	}
	lowAvoid = []string{
		"new material",
		"hard problem sets",
	}
)

// ActivitiesFor returns copies of the recommended and avoid lists for a
// level so callers can't mutate the tables.
func ActivitiesFor(level Level) (recommended, avoid []string) {
	switch level {
	case LevelHigh:
		recommended, avoid = highRecommended, highAvoid
	case LevelMedium:
		recommended, avoid = mediumRecommended, mediumAvoid
	default:
		recommended, avoid = lowRecommended, lowAvoid
	}
	out := make([]string, len(recommended))
	copy(out, recommended)
	av := make([]string, len(avoid))
	copy(av, avoid)
	return out, av
}
