package logic

import "github.com/fantasygrid/trade-api/internal/models"

// Heuristic bonuses. Elite takes precedence over breakout; the risk
// penalty stacks with either. The floor applies after summing.
const (
	heuristicFloor = 10
	eliteBonus     = 20
	breakoutBonus  = 12
	riskPenalty    = 8
)

// Value computes the deterministic heuristic value for a player:
// max(floor, positionBase + nameBonus). Name matching is exact and
// case-sensitive against the curated lists.
func (t *ValuationTables) Value(p models.Player) int {
	base, ok := t.PositionBase[p.Position]
	if !ok {
		base = t.DefaultBase
	}

	value := base
	if _, ok := t.elite[p.Name]; ok {
		value += eliteBonus
	} else if _, ok := t.breakout[p.Name]; ok {
		value += breakoutBonus
	}
	if _, ok := t.risk[p.Name]; ok {
		value -= riskPenalty
	}

	if value < heuristicFloor {
		value = heuristicFloor
	}
	return value
}
