package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cricsight/cricsight-data/internal/api/respond"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
)

// Stat table columns hidden from the UI, matching the upstream's oddball
// extras (400-run innings count, 10-wicket hauls).
var (
	battingDropColumns = []string{"400"}
	bowlingDropColumns = []string{"10w"}
)

// SearchUpstreamPlayers queries the upstream player search.
// @Summary Search upstream players
// @Tags stats
// @Param name query string true "Name fragment"
// @Produce json
// @Success 200 {array} cricbuzz.PlayerCandidate
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/stats/player/search [get]
func (h *Handler) SearchUpstreamPlayers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "name query parameter is required")
		return
	}
	candidates := h.stats.SearchPlayers(r.Context(), name)
	if candidates == nil {
		candidates = []cricbuzz.PlayerCandidate{}
	}
	respond.WriteJSONObject(w, http.StatusOK, candidates)
}

// PlayerProfile returns upstream profile and rankings for one player.
// @Summary Player profile
// @Tags stats
// @Param playerID path int true "Player ID"
// @Produce json
// @Success 200 {object} cricbuzz.PlayerProfile
// @Router /api/v1/stats/player/{playerID} [get]
func (h *Handler) PlayerProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID")
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, h.stats.PlayerProfile(r.Context(), id))
}

// PlayerStatTable returns a flattened batting or bowling stat table.
// @Summary Player stat table
// @Tags stats
// @Param playerID path int true "Player ID"
// @Param kind path string true "batting or bowling"
// @Produce json
// @Success 200 {object} cricbuzz.StatTable
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/stats/player/{playerID}/{kind} [get]
func (h *Handler) PlayerStatTable(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID")
	if !ok {
		return
	}

	var kind cricbuzz.StatKind
	var drop []string
	switch chi.URLParam(r, "kind") {
	case string(cricbuzz.StatBatting):
		kind, drop = cricbuzz.StatBatting, battingDropColumns
	case string(cricbuzz.StatBowling):
		kind, drop = cricbuzz.StatBowling, bowlingDropColumns
	default:
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "kind must be batting or bowling")
		return
	}

	raw := h.stats.PlayerStats(r.Context(), id, kind)
	respond.WriteJSONObject(w, http.StatusOK, cricbuzz.FlattenStatTable(raw, drop))
}
