package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/cache"
	"github.com/fantasygrid/trade-api/internal/config"
	"github.com/fantasygrid/trade-api/internal/handlers"
	"github.com/fantasygrid/trade-api/internal/league"
	"github.com/fantasygrid/trade-api/internal/logic"
	"github.com/fantasygrid/trade-api/internal/oracle"
	"github.com/fantasygrid/trade-api/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Valuation tables: YAML file or built-in defaults.
	tables := logic.DefaultTables()
	if cfg.TablesPath != "" {
		tables, err = logic.LoadTables(cfg.TablesPath)
		if err != nil {
			sugar.Fatalw("Failed to load valuation tables", "path", cfg.TablesPath, "error", err)
		}
		sugar.Infow("Valuation tables loaded", "path", cfg.TablesPath)
	}

	// League provider: JSON file or built-in mock.
	var provider league.Provider
	if cfg.LeaguePath != "" {
		provider = league.NewFileProvider(cfg.LeaguePath)
		sugar.Infow("Using league file", "path", cfg.LeaguePath)
	} else {
		provider = league.NewMockProvider()
		sugar.Info("No league file configured, using mock league")
	}

	// Value cache: Redis when configured, otherwise in-memory.
	var valueCache logic.ValueCache
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
		valueCache = cache.NewRedisValueCache(redisClient, cfg.CacheTTL, logger)
		sugar.Info("Using Redis value cache")
	} else {
		valueCache = cache.NewMemoryValueCache()
		sugar.Info("Using in-memory value cache")
	}

	// External oracle: optional, wrapped with rate limiting and retries.
	var valueOracle logic.ValueOracle
	if cfg.OracleBaseURL != "" {
		client := oracle.NewClient(oracle.Config{
			BaseURL: cfg.OracleBaseURL,
			APIKey:  cfg.OracleAPIKey,
			Timeout: cfg.OracleTimeout,
		})
		valueOracle = oracle.NewRateLimited(
			oracle.NewRetrying(client, logger, cfg.OracleRetries, cfg.OracleRetryBackoff),
			cfg.OracleRatePerSec,
			cfg.OracleBurst,
		)
		sugar.Infow("External value oracle enabled", "baseUrl", cfg.OracleBaseURL)
	} else {
		sugar.Info("No oracle configured, valuation is heuristic-only")
	}

	source := logic.NewValueSource(valueOracle, valueCache, tables, logger)
	rosterService := logic.NewRosterService(source, logger)
	tradeService := logic.NewTradeService(source, rosterService, logger)

	warmer := worker.NewWarmer(worker.WarmerConfig{
		Interval:    cfg.WarmInterval,
		WorkerCount: cfg.WarmWorkers,
		Provider:    provider,
		Source:      source,
		Logger:      logger,
	})
	warmer.Start(context.Background())

	h := handlers.New(handlers.Config{
		League: provider,
		Redis:  redisClient,
		Logger: logger,
		Trade:  tradeService,
		Roster: rosterService,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/trades/analyze", h.AnalyzeTrade)
		r.Get("/teams/{teamId}/insight", h.GetTeamInsight)
		r.Get("/league", h.GetLeague)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}

	warmer.Stop()
	if redisClient != nil {
		redisClient.Close()
	}
	sugar.Info("Server stopped")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
