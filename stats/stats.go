// Package stats summarises the practice records logged during a run
package stats

import (
	"cmp"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"github.com/srmtimer/srm/internal/models"
	"github.com/srmtimer/srm/internal/timeutil"
)

// LanguageTotal is the practice time spent in a single language.
type LanguageTotal struct {
	Language string `json:"language"`
	Seconds  int    `json:"seconds"`
	Count    int    `json:"count"`
}

// Summary aggregates a list of records.
type Summary struct {
	// Problems holds the distinct non-empty problem names in natural order
	Problems  []string        `json:"problems"`
	Languages []LanguageTotal `json:"languages"`
	Divisions map[int]int     `json:"divisions"`
	Count     int             `json:"count"`
	Seconds   int             `json:"seconds"`
}

// Total returns the total practice time formatted for display.
func (s Summary) Total() string {
	return timeutil.FormatDuration(s.Seconds)
}

// Average returns the mean session length formatted for display.
func (s Summary) Average() string {
	if s.Count == 0 {
		return timeutil.FormatDuration(0)
	}

	return timeutil.FormatDuration(s.Seconds / s.Count)
}

// Summarize computes the totals for records.
func Summarize(records []models.Record) Summary {
	s := Summary{
		Divisions: make(map[int]int),
	}

	byLanguage := make(map[string]*LanguageTotal)
	seen := make(map[string]bool)

	for _, r := range records {
		s.Count++
		s.Seconds += r.Time
		s.Divisions[r.Division]++

		lt, ok := byLanguage[r.Language]
		if !ok {
			lt = &LanguageTotal{Language: r.Language}
			byLanguage[r.Language] = lt
		}

		lt.Seconds += r.Time
		lt.Count++

		if r.Name != "" && !seen[r.Name] {
			seen[r.Name] = true
			s.Problems = append(s.Problems, r.Name)
		}
	}

	for _, lt := range byLanguage {
		s.Languages = append(s.Languages, *lt)
	}

	slices.SortFunc(s.Languages, func(a, b LanguageTotal) int {
		if c := cmp.Compare(b.Seconds, a.Seconds); c != 0 {
			return c
		}

		return cmp.Compare(a.Language, b.Language)
	})

	sort.Sort(natural.StringSlice(s.Problems))

	return s
}
