package logic

import (
	"context"
	"errors"

	"github.com/fantasygrid/trade-api/internal/models"
)

// ErrTeamNotFound is returned when a trade or insight call references a
// team id that does not exist in the league. It is the only failure that
// aborts a call; everything else degrades locally.
var ErrTeamNotFound = errors.New("team not found in league")

// ValueOracle supplies an externally sourced player value. It may fail or
// return garbage; callers must treat both as "unavailable".
type ValueOracle interface {
	PlayerValue(ctx context.Context, p models.Player) (float64, error)
}

// ValueCache is an advisory side-table for resolved values, keyed by exact
// player name. Correctness must never depend on it.
type ValueCache interface {
	Get(ctx context.Context, name string) (int, models.ValueSourceKind, bool)
	Set(ctx context.Context, name string, value int, source models.ValueSourceKind)
}

// RosterService evaluates rosters into positional snapshots.
type RosterService interface {
	// EvaluateRoster values every player (external source first, heuristic
	// fallback) and aggregates the roster.
	EvaluateRoster(ctx context.Context, roster []models.Player) *models.RosterEvaluation
	// EvaluateRosterHeuristic is the synchronous heuristic-only path.
	EvaluateRosterHeuristic(roster []models.Player) *models.RosterEvaluation
	// TeamInsight evaluates a single team's current roster.
	TeamInsight(ctx context.Context, league *models.League, teamID string) (*models.RosterEvaluation, error)
}

// TradeService analyzes proposed trades between two league teams.
type TradeService interface {
	AnalyzeTrade(ctx context.Context, league *models.League, req models.TradeAnalysisRequest) (*models.TradeResult, error)
}
