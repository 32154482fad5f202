package handlers

import (
	"context"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Mocks

type MockTradeService struct {
	AnalyzeTradeFunc func(ctx context.Context, league *models.League, req models.TradeAnalysisRequest) (*models.TradeResult, error)
}

func (m *MockTradeService) AnalyzeTrade(ctx context.Context, league *models.League, req models.TradeAnalysisRequest) (*models.TradeResult, error) {
	if m.AnalyzeTradeFunc != nil {
		return m.AnalyzeTradeFunc(ctx, league, req)
	}
	return &models.TradeResult{}, nil
}

type MockRosterService struct {
	TeamInsightFunc func(ctx context.Context, league *models.League, teamID string) (*models.RosterEvaluation, error)
}

func (m *MockRosterService) EvaluateRoster(_ context.Context, roster []models.Player) *models.RosterEvaluation {
	return &models.RosterEvaluation{}
}

func (m *MockRosterService) EvaluateRosterHeuristic(roster []models.Player) *models.RosterEvaluation {
	return &models.RosterEvaluation{}
}

func (m *MockRosterService) TeamInsight(ctx context.Context, league *models.League, teamID string) (*models.RosterEvaluation, error) {
	if m.TeamInsightFunc != nil {
		return m.TeamInsightFunc(ctx, league, teamID)
	}
	return &models.RosterEvaluation{}, nil
}

type MockLeagueProvider struct {
	LeagueFunc func(ctx context.Context) (*models.League, error)
}

func (m *MockLeagueProvider) League(ctx context.Context) (*models.League, error) {
	if m.LeagueFunc != nil {
		return m.LeagueFunc(ctx)
	}
	return &models.League{Teams: []models.Team{{ID: "t1", Name: "One"}}}, nil
}
