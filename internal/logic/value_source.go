package logic

import (
	"context"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/models"
)

// Prometheus metrics
var (
	externalLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_external_lookups_total",
		Help: "Total number of external value lookups attempted",
	})

	externalFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_external_failures_total",
		Help: "Total number of external value lookups that failed or returned invalid data",
	})

	fallbackValues = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_fallback_values_total",
		Help: "Total number of values resolved via the local heuristic",
	})

	valueCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_value_cache_hits_total",
		Help: "Total number of value resolutions served from the cache",
	})
)

// ValueSource resolves a single player's value, preferring the external
// oracle and degrading to the heuristic on any failure. Both the oracle
// and the cache are optional injected capabilities.
type ValueSource struct {
	oracle ValueOracle
	cache  ValueCache
	tables *ValuationTables
	logger *zap.SugaredLogger
}

func NewValueSource(oracle ValueOracle, cache ValueCache, tables *ValuationTables, logger *zap.Logger) *ValueSource {
	if tables == nil {
		tables = DefaultTables()
	}
	return &ValueSource{
		oracle: oracle,
		cache:  cache,
		tables: tables,
		logger: logger.Sugar(),
	}
}

// ResolveValue returns a positive value for the player and where it came
// from. It never fails: oracle errors, non-positive or non-finite results
// and a missing oracle all degrade to the heuristic.
func (s *ValueSource) ResolveValue(ctx context.Context, p models.Player) (int, models.ValueSourceKind) {
	if s.cache != nil {
		if value, source, ok := s.cache.Get(ctx, p.Name); ok {
			valueCacheHits.Inc()
			return value, source
		}
	}

	value, source := s.resolve(ctx, p)

	if s.cache != nil {
		s.cache.Set(ctx, p.Name, value, source)
	}
	return value, source
}

// HeuristicValue exposes the synchronous heuristic-only path.
func (s *ValueSource) HeuristicValue(p models.Player) int {
	return s.tables.Value(p)
}

func (s *ValueSource) resolve(ctx context.Context, p models.Player) (int, models.ValueSourceKind) {
	if s.oracle == nil {
		fallbackValues.Inc()
		return s.tables.Value(p), models.SourceFallback
	}

	externalLookups.Inc()
	raw, err := s.oracle.PlayerValue(ctx, p)
	if err != nil {
		externalFailures.Inc()
		fallbackValues.Inc()
		s.logger.Warnw("External valuation failed, using heuristic",
			"player", p.Name,
			"error", err,
		)
		return s.tables.Value(p), models.SourceFallback
	}

	value := int(math.Round(raw))
	if math.IsNaN(raw) || math.IsInf(raw, 0) || value <= 0 {
		externalFailures.Inc()
		fallbackValues.Inc()
		s.logger.Warnw("External valuation returned invalid value, using heuristic",
			"player", p.Name,
			"raw", raw,
		)
		return s.tables.Value(p), models.SourceFallback
	}

	return value, models.SourceExternal
}
