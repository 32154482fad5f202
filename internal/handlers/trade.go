package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fantasygrid/trade-api/internal/logic"
	"github.com/fantasygrid/trade-api/internal/models"
)

// AnalyzeTrade evaluates a proposed trade between two league teams
// @Summary Analyze Trade
// @Description Compute before/after roster evaluations, value delta, verdict and rationale for a proposed trade
// @Tags Trades
// @Accept json
// @Produce json
// @Param request body models.TradeAnalysisRequest true "Trade proposal"
// @Success 200 {object} models.TradeResult "Trade analysis"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Unknown team"
// @Router /trades/analyze [post]
func (h *Handler) AnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.TradeAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "fromTeamId and toTeamId are required and must differ")
		return
	}

	l, err := h.league.League(ctx)
	if err != nil {
		h.logger.Errorw("Failed to load league", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "League unavailable")
		return
	}

	result, err := h.trade.AnalyzeTrade(ctx, l, req)
	if err != nil {
		if errors.Is(err, logic.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Errorw("Trade analysis failed", "fromTeamId", req.FromTeamID, "toTeamId", req.ToTeamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Trade analysis failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, result)
}
