package logic

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Fairness threshold: the delta must beat 12% of the bigger side of the
// deal (floored at 20) before the verdict leaves Fair territory.
const (
	fairnessFloor = 20
	fairnessRate  = 0.12
)

type tradeService struct {
	source *ValueSource
	roster RosterService
	logger *zap.SugaredLogger
}

func NewTradeService(source *ValueSource, roster RosterService, logger *zap.Logger) TradeService {
	return &tradeService{
		source: source,
		roster: roster,
		logger: logger.Sugar(),
	}
}

// AnalyzeTrade evaluates a proposed trade from the fromTeam's perspective.
// Unknown team ids abort the call with ErrTeamNotFound; unknown player ids
// are dropped from the offer. The league is never mutated: "after" rosters
// are freshly built views.
func (s *tradeService) AnalyzeTrade(ctx context.Context, league *models.League, req models.TradeAnalysisRequest) (*models.TradeResult, error) {
	fromTeam, ok := league.Team(req.FromTeamID)
	if !ok {
		return nil, fmt.Errorf("trade from team %q: %w", req.FromTeamID, ErrTeamNotFound)
	}
	toTeam, ok := league.Team(req.ToTeamID)
	if !ok {
		return nil, fmt.Errorf("trade to team %q: %w", req.ToTeamID, ErrTeamNotFound)
	}

	offerFrom := s.resolveOffer(league, req.OfferFromIDs)
	offerTo := s.resolveOffer(league, req.OfferToIDs)

	fromBefore := s.roster.EvaluateRoster(ctx, fromTeam.Roster)
	toBefore := s.roster.EvaluateRoster(ctx, toTeam.Roster)

	fromAfter := s.roster.EvaluateRoster(ctx, applyTrade(fromTeam.Roster, offerFrom, offerTo))
	toAfter := s.roster.EvaluateRoster(ctx, applyTrade(toTeam.Roster, offerTo, offerFrom))

	// Offered players are revalued independently rather than read back out
	// of the roster snapshots, so the offer sums cannot drift with them.
	offerFromValued := s.valueOffer(ctx, offerFrom)
	offerToValued := s.valueOffer(ctx, offerTo)
	offerFromValue := sumValues(offerFromValued)
	offerToValue := sumValues(offerToValued)

	valueDelta := offerToValue - offerFromValue
	scale := fairnessScale(offerFromValue, offerToValue)

	verdict := models.VerdictFair
	rationale := make([]string, 0, 4)
	switch {
	case valueDelta >= scale:
		verdict = models.VerdictUserGainsValue
		rationale = append(rationale, fmt.Sprintf("You gain about %d points of value in this deal.", valueDelta))
	case valueDelta <= -scale:
		verdict = models.VerdictUserLosesValue
		rationale = append(rationale, fmt.Sprintf("You give up about %d points of value in this deal.", -valueDelta))
	default:
		rationale = append(rationale, fmt.Sprintf("Raw value is close to even (delta %+d against a fairness band of %d).", valueDelta, scale))
	}

	shifts := PositionalShifts(fromBefore, fromAfter)
	if len(shifts) == 0 {
		rationale = append(rationale, "No major shifts to your starters or depth at any position.")
	} else {
		rationale = append(rationale, shifts...)
	}

	return &models.TradeResult{
		OfferFromValue: offerFromValue,
		OfferToValue:   offerToValue,
		ValueDelta:     valueDelta,
		Verdict:        verdict,
		Rationale:      rationale,
		FromTeam: models.TeamSnapshot{
			TeamID:   fromTeam.ID,
			TeamName: fromTeam.Name,
			Before:   fromBefore,
			After:    fromAfter,
		},
		ToTeam: models.TeamSnapshot{
			TeamID:   toTeam.ID,
			TeamName: toTeam.Name,
			Before:   toBefore,
			After:    toAfter,
		},
		OfferFrom: offerFromValued,
		OfferTo:   offerToValued,
	}, nil
}

// resolveOffer maps offered ids to players anywhere in the league. Ids with
// no match are dropped, not errors; the trade proceeds with what remains.
func (s *tradeService) resolveOffer(league *models.League, ids []string) []models.Player {
	players := make([]models.Player, 0, len(ids))
	for _, id := range ids {
		p, ok := league.FindPlayer(id)
		if !ok {
			s.logger.Warnw("Offered player id not found in league, dropping from trade", "playerId", id)
			continue
		}
		players = append(players, p)
	}
	return players
}

func (s *tradeService) valueOffer(ctx context.Context, players []models.Player) []models.ValuedPlayer {
	valued := make([]models.ValuedPlayer, len(players))
	for i, p := range players {
		value, source := s.source.ResolveValue(ctx, p)
		valued[i] = models.ValuedPlayer{Player: p, Value: value, Source: source}
	}
	return valued
}

// applyTrade builds the post-trade roster view: outgoing players removed,
// incoming appended. The input roster is left untouched.
func applyTrade(roster []models.Player, outgoing, incoming []models.Player) []models.Player {
	leaving := make(map[string]struct{}, len(outgoing))
	for _, p := range outgoing {
		leaving[p.ID] = struct{}{}
	}

	next := make([]models.Player, 0, len(roster)+len(incoming))
	for _, p := range roster {
		if _, gone := leaving[p.ID]; gone {
			continue
		}
		next = append(next, p)
	}
	return append(next, incoming...)
}

func fairnessScale(offerFromValue, offerToValue int) int {
	largest := offerFromValue
	if offerToValue > largest {
		largest = offerToValue
	}
	if largest < 1 {
		largest = 1
	}

	scale := int(math.Round(fairnessRate * float64(largest)))
	if scale < fairnessFloor {
		scale = fairnessFloor
	}
	return scale
}

func sumValues(valued []models.ValuedPlayer) int {
	sum := 0
	for _, vp := range valued {
		sum += vp.Value
	}
	return sum
}
