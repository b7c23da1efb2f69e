package handler

import (
	"net/http"

	"github.com/cricsight/cricsight-data/internal/api/respond"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
)

// LiveMatches returns the upstream live match listing. An empty listing may
// mean "no live matches" or "upstream temporarily unavailable"; the handler
// responds 200 either way and the client has already logged the failure.
// @Summary Live matches
// @Tags live
// @Produce json
// @Success 200 {object} cricbuzz.LiveMatches
// @Router /api/v1/live-matches [get]
func (h *Handler) LiveMatches(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, h.stats.LiveMatches(r.Context()))
}

// MatchScorecard returns the flattened innings scorecard for one match.
// @Summary Match scorecard
// @Tags live
// @Produce json
// @Param matchID path int true "Match ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/matches/{matchID}/scorecard [get]
func (h *Handler) MatchScorecard(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "matchID")
	if !ok {
		return
	}
	sc := h.stats.Scorecard(r.Context(), id)
	innings := cricbuzz.FlattenScorecard(sc)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"match_id": id,
		"innings":  innings,
	})
}
