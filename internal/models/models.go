// Package models defines the values shared between the timer, the record log
// and the reporting layers.
package models

import "time"

// Record describes one logged practice session. It is created once, when the
// session is logged, and never modified afterwards.
type Record struct {
	LoggedAt time.Time `json:"logged_at"`
	Name     string    `json:"name"`
	Language string    `json:"language"`
	Division int       `json:"division"`
	Time     int       `json:"time"` // seconds
}

// Languages is the list of languages a session can be practiced in, in the
// order they are offered for selection.
var Languages = []string{
	"JavaScript",
	"Objective-C",
	"Swift",
	"C++",
	"C",
	"C#",
	"Java",
	"Python",
	"Ruby",
	"PHP",
	"HTML5",
	"CSS",
}

// DefaultLanguage is the language selected when nothing else is configured.
const DefaultLanguage = "Swift"

// Divisions holds the labels of the competition tiers. Division n is at
// index n-1.
var Divisions = []string{
	"Division I",
	"Division II",
}

// Tips are shown while no session is in progress.
var Tips = []string{
	"SRM Timer helps you track your\nprogress while practicing for\nSingle Round Matches.",
	"Use it every day and you’ll be\na winner in no time :)",
	"Press the Start button, come on!\nI know you want to.",
}

// NewRecord builds a record from the zero-based selection indices of the
// division and language controls. The division is stored as 1 or 2. An
// index outside Languages is a programming error and panics.
func NewRecord(
	name string,
	divisionIndex, languageIndex, seconds int,
) Record {
	return Record{
		Name:     name,
		Division: divisionIndex + 1,
		Language: Languages[languageIndex],
		Time:     seconds,
		LoggedAt: time.Now(),
	}
}

// LanguageIndex returns the position of lang in Languages, or -1.
func LanguageIndex(lang string) int {
	for i, v := range Languages {
		if v == lang {
			return i
		}
	}

	return -1
}

// DivisionLabel returns the display label for a division number.
func DivisionLabel(division int) string {
	if division < 1 || division > len(Divisions) {
		return ""
	}

	return Divisions[division-1]
}
