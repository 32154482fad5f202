package league

import (
	"context"

	"github.com/fantasygrid/trade-api/internal/models"
)

// MockProvider serves a small built-in league for development and
// tests when no league file is configured.
type MockProvider struct {
	league *models.League
}

func NewMockProvider() *MockProvider {
	return &MockProvider{league: mockLeague()}
}

func (p *MockProvider) League(_ context.Context) (*models.League, error) {
	return p.league, nil
}

func mockLeague() *models.League {
	return &models.League{
		Teams: []models.Team{
			{
				ID:   "team-gridiron",
				Name: "Gridiron Giants",
				Roster: []models.Player{
					{ID: "p-101", Name: "Patrick Mahomes", Position: models.PositionQB},
					{ID: "p-102", Name: "Jahmyr Gibbs", Position: models.PositionRB},
					{ID: "p-103", Name: "Derrick Henry", Position: models.PositionRB},
					{ID: "p-104", Name: "Justin Jefferson", Position: models.PositionWR},
					{ID: "p-105", Name: "Jayden Reed", Position: models.PositionWR},
					{ID: "p-106", Name: "Chris Olave", Position: models.PositionWR},
					{ID: "p-107", Name: "Sam LaPorta", Position: models.PositionTE},
					{ID: "p-108", Name: "Cowboys D/ST", Position: models.PositionDST},
					{ID: "p-109", Name: "Justin Tucker", Position: models.PositionK},
					{ID: "p-110", Name: "Rachaad White", Position: models.PositionRB},
				},
			},
			{
				ID:   "team-endzone",
				Name: "End Zone Elite",
				Roster: []models.Player{
					{ID: "p-201", Name: "Josh Allen", Position: models.PositionQB},
					{ID: "p-202", Name: "Christian McCaffrey", Position: models.PositionRB},
					{ID: "p-203", Name: "James Cook", Position: models.PositionRB},
					{ID: "p-204", Name: "Ja'Marr Chase", Position: models.PositionWR},
					{ID: "p-205", Name: "Puka Nacua", Position: models.PositionWR},
					{ID: "p-206", Name: "DeVonta Smith", Position: models.PositionWR},
					{ID: "p-207", Name: "Travis Kelce", Position: models.PositionTE},
					{ID: "p-208", Name: "49ers D/ST", Position: models.PositionDST},
					{ID: "p-209", Name: "Harrison Butker", Position: models.PositionK},
					{ID: "p-210", Name: "Tony Pollard", Position: models.PositionRB},
				},
			},
			{
				ID:   "team-blitz",
				Name: "Blitz Brigade",
				Roster: []models.Player{
					{ID: "p-301", Name: "Jared Goff", Position: models.PositionQB},
					{ID: "p-302", Name: "De'Von Achane", Position: models.PositionRB},
					{ID: "p-303", Name: "Najee Harris", Position: models.PositionRB},
					{ID: "p-304", Name: "CeeDee Lamb", Position: models.PositionWR},
					{ID: "p-305", Name: "Jordan Addison", Position: models.PositionWR},
					{ID: "p-306", Name: "Cooper Kupp", Position: models.PositionWR},
					{ID: "p-307", Name: "Evan Engram", Position: models.PositionTE},
					{ID: "p-308", Name: "Ravens D/ST", Position: models.PositionDST},
					{ID: "p-309", Name: "Jake Elliott", Position: models.PositionK},
				},
			},
		},
	}
}
