package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fantasygrid/trade-api/internal/logic"
)

// GetTeamInsight returns the roster evaluation for one team
// @Summary Team Roster Insight
// @Description Evaluate a team's current roster: positional scores, strengths and weaknesses
// @Tags Teams
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} models.RosterEvaluation "Roster evaluation"
// @Failure 404 {object} map[string]string "Unknown team"
// @Router /teams/{teamId}/insight [get]
func (h *Handler) GetTeamInsight(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	teamID := chi.URLParam(r, "teamId")

	l, err := h.league.League(ctx)
	if err != nil {
		h.logger.Errorw("Failed to load league", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "League unavailable")
		return
	}

	evaluation, err := h.roster.TeamInsight(ctx, l, teamID)
	if err != nil {
		if errors.Is(err, logic.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Errorw("Roster insight failed", "teamId", teamID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Roster insight failed")
		return
	}

	h.jsonResponse(w, http.StatusOK, evaluation)
}
