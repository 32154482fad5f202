package logic

import (
	"fmt"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Swing thresholds: starter moves of 8+ points and depth moves of 10+
// points are worth calling out; smaller moves are noise.
const (
	starterShiftThreshold = 8
	depthShiftThreshold   = 10
)

// PositionalShifts compares two snapshots of the same roster and reports
// the meaningful swings, in position-table order. A position can produce
// both a starter and a depth note.
func PositionalShifts(before, after *models.RosterEvaluation) []string {
	notes := make([]string, 0)
	for _, pos := range models.PositionOrder {
		b, ok := before.Scores[pos]
		if !ok {
			continue
		}
		a := after.Scores[pos]

		starterDiff := a.StarterScore - b.StarterScore
		depthDiff := a.DepthScore - b.DepthScore

		if starterDiff >= starterShiftThreshold {
			notes = append(notes, fmt.Sprintf("Your %s starters improve by about %d points.", pos, starterDiff))
		}
		if starterDiff <= -starterShiftThreshold {
			notes = append(notes, fmt.Sprintf("Your %s starters weaken by about %d points.", pos, -starterDiff))
		}
		if depthDiff >= depthShiftThreshold {
			notes = append(notes, fmt.Sprintf("Your %s depth improves by about %d points.", pos, depthDiff))
		}
		if depthDiff <= -depthShiftThreshold {
			notes = append(notes, fmt.Sprintf("Your %s depth drops by about %d points.", pos, -depthDiff))
		}
	}
	return notes
}
