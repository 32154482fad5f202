package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Data sources
	LeaguePath string // JSON league file; empty uses the built-in mock league
	TablesPath string // YAML valuation tables; empty uses built-in defaults
	RedisURL   string // optional; empty uses the in-memory value cache
	CacheTTL   time.Duration

	// External value oracle
	OracleBaseURL      string // empty disables external valuation entirely
	OracleAPIKey       string
	OracleTimeout      time.Duration
	OracleRetries      int
	OracleRetryBackoff time.Duration
	OracleRatePerSec   float64
	OracleBurst        int

	// Cache warmer
	WarmInterval time.Duration
	WarmWorkers  int
}

// Load loads configuration from the environment (and .env when present).
// Everything is optional: with no configuration at all the service runs
// against the mock league with heuristic-only valuation.
func Load() (*Config, error) {
	// Load .env if present; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		Env:  getEnv("ENV", "development"),

		LeaguePath: getEnv("LEAGUE_PATH", ""),
		TablesPath: getEnv("VALUATION_TABLES_PATH", ""),
		RedisURL:   getEnv("REDIS_URL", ""),
		CacheTTL:   getEnvDuration("VALUE_CACHE_TTL", time.Hour),

		OracleBaseURL:      getEnv("ORACLE_BASE_URL", ""),
		OracleAPIKey:       getEnv("ORACLE_API_KEY", ""),
		OracleTimeout:      getEnvDuration("ORACLE_TIMEOUT", 5*time.Second),
		OracleRetries:      getEnvInt("ORACLE_RETRIES", 3),
		OracleRetryBackoff: getEnvDuration("ORACLE_RETRY_BACKOFF", 200*time.Millisecond),
		OracleRatePerSec:   getEnvFloat("ORACLE_RATE_PER_SECOND", 10),
		OracleBurst:        getEnvInt("ORACLE_BURST", 20),

		WarmInterval: getEnvDuration("WARM_INTERVAL", 15*time.Minute),
		WarmWorkers:  getEnvInt("WARM_WORKERS", 4),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
