package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fantasygrid/trade-api/internal/league"
	"github.com/fantasygrid/trade-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	League league.Provider
	Redis  *redis.Client // optional, only used for readiness
	Logger *zap.Logger
	// Services
	Trade  logic.TradeService
	Roster logic.RosterService
}

type Handler struct {
	league    league.Provider
	redis     *redis.Client
	logger    *zap.SugaredLogger
	validator *validator.Validate
	trade     logic.TradeService
	roster    logic.RosterService
}

func New(cfg Config) *Handler {
	return &Handler{
		league:    cfg.League,
		redis:     cfg.Redis,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		trade:     cfg.Trade,
		roster:    cfg.Roster,
	}
}
