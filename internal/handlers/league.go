package handlers

import (
	"net/http"
)

// GetLeague returns the loaded league
// @Summary Get League
// @Description List all teams and rosters in the league
// @Tags League
// @Produce json
// @Success 200 {object} models.League "League"
// @Failure 500 {object} map[string]string "League unavailable"
// @Router /league [get]
func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	l, err := h.league.League(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to load league", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "League unavailable")
		return
	}

	h.jsonResponse(w, http.StatusOK, l)
}
