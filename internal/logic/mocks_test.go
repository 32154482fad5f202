package logic

import (
	"context"
	"sync"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Mocks

type MockOracle struct {
	PlayerValueFunc func(ctx context.Context, p models.Player) (float64, error)
	mu              sync.Mutex
	calls           int
}

func (m *MockOracle) PlayerValue(ctx context.Context, p models.Player) (float64, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.PlayerValueFunc != nil {
		return m.PlayerValueFunc(ctx, p)
	}
	return 0, nil
}

func (m *MockOracle) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type cacheEntry struct {
	value  int
	source models.ValueSourceKind
}

type MockCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	sets    int
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string]cacheEntry)}
}

func (m *MockCache) Get(_ context.Context, name string) (int, models.ValueSourceKind, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[name]
	if !ok {
		return 0, "", false
	}
	return e.value, e.source, true
}

func (m *MockCache) Set(_ context.Context, name string, value int, source models.ValueSourceKind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[name] = cacheEntry{value: value, source: source}
	m.sets++
}

func (m *MockCache) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}

// Test fixtures

func testPlayer(id, name string, pos models.Position) models.Player {
	return models.Player{ID: id, Name: name, Position: pos}
}

// twoTeamLeague builds a league where every player name carries no bonus,
// so heuristic values equal the position base unless stated otherwise.
func twoTeamLeague() *models.League {
	return &models.League{
		Teams: []models.Team{
			{
				ID:   "team-a",
				Name: "Team A",
				Roster: []models.Player{
					testPlayer("a-qb", "Alpha Quarterback", models.PositionQB),
					testPlayer("a-rb1", "Alpha Rusher One", models.PositionRB),
					testPlayer("a-rb2", "Alpha Rusher Two", models.PositionRB),
					testPlayer("a-wr1", "Alpha Receiver One", models.PositionWR),
					testPlayer("a-wr2", "Alpha Receiver Two", models.PositionWR),
					testPlayer("a-wr3", "Alpha Receiver Three", models.PositionWR),
					testPlayer("a-te", "Alpha Tightend", models.PositionTE),
					testPlayer("a-dst", "Alpha D/ST", models.PositionDST),
					testPlayer("a-k", "Alpha Kicker", models.PositionK),
				},
			},
			{
				ID:   "team-b",
				Name: "Team B",
				Roster: []models.Player{
					testPlayer("b-qb", "Beta Quarterback", models.PositionQB),
					testPlayer("b-rb1", "Beta Rusher One", models.PositionRB),
					testPlayer("b-rb2", "Beta Rusher Two", models.PositionRB),
					testPlayer("b-wr1", "Beta Receiver One", models.PositionWR),
					testPlayer("b-wr2", "Beta Receiver Two", models.PositionWR),
					testPlayer("b-wr3", "Beta Receiver Three", models.PositionWR),
					testPlayer("b-te", "Beta Tightend", models.PositionTE),
					testPlayer("b-dst", "Beta D/ST", models.PositionDST),
					testPlayer("b-k", "Beta Kicker", models.PositionK),
				},
			},
		},
	}
}
