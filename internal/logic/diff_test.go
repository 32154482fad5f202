package logic

import (
	"reflect"
	"strings"
	"testing"

	"github.com/fantasygrid/trade-api/internal/models"
)

func snapshot(scores map[models.Position]models.PositionScore) *models.RosterEvaluation {
	return &models.RosterEvaluation{Scores: scores}
}

func TestPositionalShifts_TableDriven(t *testing.T) {
	tests := []struct {
		name     string
		before   map[models.Position]models.PositionScore
		after    map[models.Position]models.PositionScore
		expected []string
	}{
		{
			name: "Below thresholds yields nothing",
			before: map[models.Position]models.PositionScore{
				models.PositionRB: {StarterScore: 80, DepthScore: 60},
			},
			after: map[models.Position]models.PositionScore{
				models.PositionRB: {StarterScore: 87, DepthScore: 69},
			},
			expected: []string{},
		},
		{
			name: "Starter improvement at threshold",
			before: map[models.Position]models.PositionScore{
				models.PositionWR: {StarterScore: 70},
			},
			after: map[models.Position]models.PositionScore{
				models.PositionWR: {StarterScore: 78},
			},
			expected: []string{"Your WR starters improve by about 8 points."},
		},
		{
			name: "Starter drop and depth drop on one position",
			before: map[models.Position]models.PositionScore{
				models.PositionRB: {StarterScore: 90, DepthScore: 75},
			},
			after: map[models.Position]models.PositionScore{
				models.PositionRB: {StarterScore: 78, DepthScore: 60},
			},
			expected: []string{
				"Your RB starters weaken by about 12 points.",
				"Your RB depth drops by about 15 points.",
			},
		},
		{
			name: "Depth improvement at threshold",
			before: map[models.Position]models.PositionScore{
				models.PositionTE: {StarterScore: 40, DepthScore: 0},
			},
			after: map[models.Position]models.PositionScore{
				models.PositionTE: {StarterScore: 40, DepthScore: 10},
			},
			expected: []string{"Your TE depth improves by about 10 points."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionalShifts(snapshot(tt.before), snapshot(tt.after))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("PositionalShifts = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPositionalShifts_FollowsPositionOrder(t *testing.T) {
	before := map[models.Position]models.PositionScore{
		models.PositionK:  {StarterScore: 10},
		models.PositionQB: {StarterScore: 40},
		models.PositionWR: {StarterScore: 75},
	}
	after := map[models.Position]models.PositionScore{
		models.PositionK:  {StarterScore: 30},
		models.PositionQB: {StarterScore: 60},
		models.PositionWR: {StarterScore: 95},
	}

	notes := PositionalShifts(snapshot(before), snapshot(after))
	if len(notes) != 3 {
		t.Fatalf("got %d notes, want 3", len(notes))
	}

	// QB before WR before K, regardless of map iteration order.
	wantOrder := []string{"QB", "WR", "K"}
	for i, pos := range wantOrder {
		if !strings.Contains(notes[i], pos) {
			t.Errorf("notes[%d] = %q, want a %s note", i, notes[i], pos)
		}
	}
}
