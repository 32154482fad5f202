// Package worker implements the background cache warmer: it periodically
// resolves every league player through the value source so interactive
// trade analysis hits a warm cache instead of waiting on the upstream API.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/league"
	"github.com/fantasygrid/trade-api/internal/models"
)

// Prometheus metrics
var (
	warmCycles = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_warm_cycles_total",
		Help: "Total number of completed cache warm cycles",
	})

	valuesWarmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fantasy_values_warmed_total",
		Help: "Total number of player values resolved by the warmer",
	})

	warmDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fantasy_warm_duration_seconds",
		Help:    "Duration of cache warm cycles",
		Buckets: prometheus.DefBuckets,
	})
)

// Valuer is the slice of the value source the warmer needs.
type Valuer interface {
	ResolveValue(ctx context.Context, p models.Player) (int, models.ValueSourceKind)
}

// WarmerConfig configures the cache warmer.
type WarmerConfig struct {
	Interval    time.Duration
	WorkerCount int
	Provider    league.Provider
	Source      Valuer
	Logger      *zap.Logger
}

// Warmer periodically resolves all league player values.
type Warmer struct {
	config WarmerConfig
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.SugaredLogger
}

// NewWarmer creates a cache warmer with defaults applied.
func NewWarmer(cfg WarmerConfig) *Warmer {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	return &Warmer{
		config: cfg,
		logger: cfg.Logger.Sugar(),
	}
}

// Start launches the warm loop. The first cycle runs immediately.
func (w *Warmer) Start(ctx context.Context) {
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.warmCycle(w.ctx)

		ticker := time.NewTicker(w.config.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.warmCycle(w.ctx)
			case <-w.ctx.Done():
				return
			}
		}
	}()

	w.logger.Infow("Cache warmer started",
		"interval", w.config.Interval,
		"workers", w.config.WorkerCount,
	)
}

// Stop shuts the warmer down and waits for in-flight work.
func (w *Warmer) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("Cache warmer stopped")
}

func (w *Warmer) warmCycle(ctx context.Context) {
	start := time.Now()

	l, err := w.config.Provider.League(ctx)
	if err != nil {
		w.logger.Warnw("Warm cycle skipped, league unavailable", "error", err)
		return
	}

	players := make(chan models.Player)
	var workers sync.WaitGroup
	for i := 0; i < w.config.WorkerCount; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for p := range players {
				w.config.Source.ResolveValue(ctx, p)
				valuesWarmed.Inc()
			}
		}()
	}

	total := 0
	for _, team := range l.Teams {
		for _, p := range team.Roster {
			select {
			case players <- p:
				total++
			case <-ctx.Done():
				close(players)
				workers.Wait()
				return
			}
		}
	}
	close(players)
	workers.Wait()

	warmCycles.Inc()
	warmDuration.Observe(time.Since(start).Seconds())
	w.logger.Infow("Warm cycle complete", "players", total, "duration", time.Since(start))
}
