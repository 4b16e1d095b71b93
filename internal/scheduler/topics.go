package scheduler

import (
	"sort"
	"strings"
)

// defaultCatalog is the built-in topic database, grouped by subject.
// Topic IDs are "subject:name" slugs, stable across runs so mastery
// records keyed by them stay meaningful.
var defaultCatalog = map[string][]Topic{
	"Physics": {
		{Subject: "Physics", Name: "Mechanics", Weight: 1.0, Difficulty: DifficultyMedium},
		{Subject: "Physics", Name: "Electromagnetism", Weight: 1.2, Difficulty: DifficultyHard},
		{Subject: "Physics", Name: "Thermodynamics", Weight: 0.9, Difficulty: DifficultyMedium},
		{Subject: "Physics", Name: "Optics", Weight: 0.8, Difficulty: DifficultyEasy},
	},
	"Math": {
		{Subject: "Math", Name: "Calculus", Weight: 1.2, Difficulty: DifficultyHard},
		{Subject: "Math", Name: "Algebra", Weight: 1.0, Difficulty: DifficultyMedium},
		{Subject: "Math", Name: "Trigonometry", Weight: 0.8, Difficulty: DifficultyMedium},
		{Subject: "Math", Name: "Statistics", Weight: 0.7, Difficulty: DifficultyEasy},
	},
	"Chemistry": {
		{Subject: "Chemistry", Name: "Organic Chemistry", Weight: 1.1, Difficulty: DifficultyHard},
		{Subject: "Chemistry", Name: "Inorganic Chemistry", Weight: 0.9, Difficulty: DifficultyMedium},
		{Subject: "Chemistry", Name: "Physical Chemistry", Weight: 1.0, Difficulty: DifficultyHard},
	},
}

// TopicID derives the stable mastery key for a subject/topic pair.
func TopicID(subject, name string) string {
	slug := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "-")
	}
	return slug(subject) + ":" + slug(name)
}

// Subjects lists the catalog subjects in sorted order.
func Subjects() []string {
	out := make([]string, 0, len(defaultCatalog))
	for s := range defaultCatalog {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// TopicsForSubjects returns catalog topics for the named subjects, ID
// filled in. Unknown subjects are skipped. An empty subject list means
// the whole catalog. The result ordering is deterministic.
func TopicsForSubjects(subjects []string) []Topic {
	if len(subjects) == 0 {
		subjects = Subjects()
	}
	var out []Topic
	for _, subject := range subjects {
		for _, t := range defaultCatalog[canonicalSubject(subject)] {
			t.ID = TopicID(t.Subject, t.Name)
			out = append(out, t)
		}
	}
	return out
}

func canonicalSubject(s string) string {
	for name := range defaultCatalog {
		if strings.EqualFold(name, s) {
			return name
		}
	}
	return s
}
