// Package award grants a title depending on the final score.
package award

import (
	"sort"

	"github.com/vovakirdan/ecoris/internal/config"
)

// Table maps score thresholds to titles.
type Table struct {
	awards []config.Award
}

// NewTable builds a table from configured awards, sorted by threshold.
func NewTable(awards []config.Award) Table {
	sorted := append([]config.Award(nil), awards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinScore < sorted[j].MinScore
	})
	return Table{awards: sorted}
}

// Title returns the title of the highest threshold not above score.
// Scores below every threshold get the lowest title; an empty table yields "".
func (t Table) Title(score int) string {
	if len(t.awards) == 0 {
		return ""
	}
	title := t.awards[0].Title
	for _, a := range t.awards {
		if score < a.MinScore {
			break
		}
		title = a.Title
	}
	return title
}

// Next returns the next title and the score still needed to reach it.
// ok is false when score already holds the top title.
func (t Table) Next(score int) (title string, needed int, ok bool) {
	for _, a := range t.awards {
		if a.MinScore > score {
			return a.Title, a.MinScore - score, true
		}
	}
	return "", 0, false
}
