package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cricsight/cricsight-data/internal/api/respond"
	"github.com/cricsight/cricsight-data/internal/store"
)

// playerPayload is the request body for player create/update.
type playerPayload struct {
	PlayerID     int64  `json:"player_id"`
	FullName     string `json:"full_name"`
	NickName     string `json:"nick_name"`
	Role         string `json:"role"`
	BattingStyle string `json:"batting_style"`
	BowlingStyle string `json:"bowling_style"`
	TeamID       *int64 `json:"team_id"`
}

func (p playerPayload) toPlayer() store.Player {
	return store.Player{
		ID:           p.PlayerID,
		FullName:     strings.TrimSpace(p.FullName),
		NickName:     strings.TrimSpace(p.NickName),
		Role:         p.Role,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		TeamID:       p.TeamID,
	}
}

// ListPlayers returns every player joined with its optional team.
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {object} store.Table
// @Router /api/v1/players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	table, err := h.store.ListPlayers(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to list players")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, table)
}

// SearchPlayers finds stored players by name fragment.
// @Summary Search stored players
// @Tags players
// @Param name query string false "Name fragment (case-insensitive)"
// @Produce json
// @Success 200 {array} store.Player
// @Router /api/v1/players/search [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.store.SearchPlayersByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to search players")
		return
	}
	if players == nil {
		players = []store.Player{}
	}
	respond.WriteJSONObject(w, http.StatusOK, players)
}

// GetPlayer fetches one player by id.
// @Summary Get player
// @Tags players
// @Param playerID path int true "Player ID"
// @Produce json
// @Success 200 {object} store.Player
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{playerID} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID")
	if !ok {
		return
	}
	p, err := h.store.GetPlayer(r.Context(), id)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to fetch player")
		return
	}
	if p == nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, p)
}

// CreatePlayer inserts a new player. Inserting an id that already exists is
// a no-op reported as already_exists, not an error.
// @Summary Create player
// @Tags players
// @Accept json
// @Produce json
// @Success 201 {object} store.InsertResult
// @Success 200 {object} store.InsertResult
// @Failure 400 {object} respond.ErrorResponse
// @Router /api/v1/players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var payload playerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	p := payload.toPlayer()
	if p.ID <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "player_id must be a positive integer")
		return
	}
	if p.FullName == "" {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "full_name is required")
		return
	}

	result, err := h.store.InsertPlayer(r.Context(), p)
	if err != nil {
		if store.IsConstraintViolation(err) {
			respond.WriteError(w, http.StatusBadRequest, "CONSTRAINT_VIOLATION", "team_id does not reference an existing team")
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to insert player")
		return
	}
	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}
	respond.WriteJSONObject(w, status, result)
}

// UpdatePlayer replaces a player's mutable fields.
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{playerID} [put]
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID")
	if !ok {
		return
	}
	var payload playerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body")
		return
	}
	p := payload.toPlayer()
	if p.FullName == "" {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "full_name is required")
		return
	}

	affected, err := h.store.UpdatePlayer(r.Context(), id, p)
	if err != nil {
		if store.IsConstraintViolation(err) {
			respond.WriteError(w, http.StatusBadRequest, "CONSTRAINT_VIOLATION", "team_id does not reference an existing team")
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to update player")
		return
	}
	if affected == 0 {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"player_id": id,
		"updated":   true,
	})
}

// DeletePlayer hard-deletes a player.
// @Summary Delete player
// @Tags players
// @Produce json
// @Param playerID path int true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/players/{playerID} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "playerID")
	if !ok {
		return
	}
	affected, err := h.store.DeletePlayer(r.Context(), id)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "WRITE_FAILED", "Failed to delete player")
		return
	}
	if affected == 0 {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "Player not found")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"player_id": id,
		"deleted":   true,
	})
}

// ListTeams returns all teams.
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} store.Team
// @Router /api/v1/teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.ListTeams(r.Context())
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to list teams")
		return
	}
	if teams == nil {
		teams = []store.Team{}
	}
	respond.WriteJSONObject(w, http.StatusOK, teams)
}

// pathID parses a numeric chi URL parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", param+" must be a positive integer")
		return 0, false
	}
	return id, true
}
