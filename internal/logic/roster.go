package logic

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fantasygrid/trade-api/internal/models"
)

// starterNeeds is the fixed number of starting slots per position.
var starterNeeds = map[models.Position]int{
	models.PositionQB:  1,
	models.PositionRB:  2,
	models.PositionWR:  3,
	models.PositionTE:  1,
	models.PositionDST: 1,
	models.PositionK:   1,
}

const (
	depthSlots         = 2
	strengthThreshold  = 75
	weaknessThreshold  = 60
	maxConcurrentLooks = 4
)

type rosterService struct {
	source *ValueSource
	logger *zap.SugaredLogger
}

func NewRosterService(source *ValueSource, logger *zap.Logger) RosterService {
	return &rosterService{
		source: source,
		logger: logger.Sugar(),
	}
}

// EvaluateRoster values every player through the ValueSource (external
// lookups may suspend) and aggregates the result. Players are valued
// concurrently; aggregation is order-insensitive after sorting, so
// completion order does not matter.
func (s *rosterService) EvaluateRoster(ctx context.Context, roster []models.Player) *models.RosterEvaluation {
	valued := make([]models.ValuedPlayer, len(roster))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLooks)
	for i, p := range roster {
		i, p := i, p
		g.Go(func() error {
			value, source := s.source.ResolveValue(gctx, p)
			valued[i] = models.ValuedPlayer{Player: p, Value: value, Source: source}
			return nil
		})
	}
	// Workers never return errors; resolution failures degrade to the heuristic.
	_ = g.Wait()

	return aggregateRoster(valued)
}

// EvaluateRosterHeuristic is the synchronous heuristic-only path: no
// external lookups, no cache, fully deterministic.
func (s *rosterService) EvaluateRosterHeuristic(roster []models.Player) *models.RosterEvaluation {
	valued := make([]models.ValuedPlayer, len(roster))
	for i, p := range roster {
		valued[i] = models.ValuedPlayer{
			Player: p,
			Value:  s.source.HeuristicValue(p),
			Source: models.SourceFallback,
		}
	}
	return aggregateRoster(valued)
}

func (s *rosterService) TeamInsight(ctx context.Context, league *models.League, teamID string) (*models.RosterEvaluation, error) {
	team, ok := league.Team(teamID)
	if !ok {
		return nil, fmt.Errorf("insight for team %q: %w", teamID, ErrTeamNotFound)
	}
	return s.EvaluateRoster(ctx, team.Roster), nil
}

// aggregateRoster turns valued players into positional scores, strengths
// and weaknesses. Every known position gets a score entry even when empty,
// so short rosters surface count-based weaknesses.
func aggregateRoster(valued []models.ValuedPlayer) *models.RosterEvaluation {
	byPosition := make(map[models.Position][]int, len(starterNeeds))
	total := 0
	for _, vp := range valued {
		total += vp.Value
		byPosition[vp.Position] = append(byPosition[vp.Position], vp.Value)
	}

	scores := make(map[models.Position]models.PositionScore, len(models.PositionOrder))
	strengths := make([]models.Position, 0)
	weaknesses := make([]models.Position, 0)

	for _, pos := range models.PositionOrder {
		values := byPosition[pos]
		sort.Sort(sort.Reverse(sort.IntSlice(values)))

		need := starterNeeds[pos]
		starterScore := meanRounded(values[:minInt(need, len(values))])
		depthScore := 0
		if len(values) > need {
			depthScore = meanRounded(values[need:minInt(need+depthSlots, len(values))])
		}

		scores[pos] = models.PositionScore{
			StarterScore: starterScore,
			DepthScore:   depthScore,
			Count:        len(values),
		}

		if starterScore >= strengthThreshold {
			strengths = append(strengths, pos)
		}
		if starterScore < weaknessThreshold || len(values) < need {
			weaknesses = append(weaknesses, pos)
		}
	}

	return &models.RosterEvaluation{
		Players:    valued,
		TotalValue: total,
		Scores:     scores,
		Strengths:  strengths,
		Weaknesses: weaknesses,
	}
}

func meanRounded(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
