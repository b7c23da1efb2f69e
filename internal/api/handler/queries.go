package handler

import (
	"errors"
	"net/http"

	"github.com/cricsight/cricsight-data/internal/api/respond"
	"github.com/cricsight/cricsight-data/internal/catalog"
	"github.com/cricsight/cricsight-data/internal/store"
)

// queryInfo is one catalog entry as listed to clients.
type queryInfo struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	SQL        string `json:"sql"`
}

// queryResult is the payload for an executed catalog query. A store failure
// degrades to an empty table with the notice inlined; the process never
// surfaces a raw database error.
type queryResult struct {
	Title      string      `json:"title"`
	Difficulty string      `json:"difficulty"`
	SQL        string      `json:"sql"`
	Table      store.Table `json:"table"`
	RowCount   int         `json:"row_count"`
	Notice     string      `json:"notice,omitempty"`
}

// ListQueries returns the catalog in definition order.
// @Summary List catalog queries
// @Tags queries
// @Produce json
// @Success 200 {array} handler.queryInfo
// @Router /api/v1/queries [get]
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	titles := h.catalog.Titles()
	out := make([]queryInfo, 0, len(titles))
	for _, title := range titles {
		difficulty, err := catalog.Classify(title)
		if err != nil {
			// Every catalog title carries an ordinal; a miss here is a
			// programming error and fails loudly.
			respond.WriteError(w, http.StatusInternalServerError, "CATALOG_INVALID", err.Error())
			return
		}
		sql, err := h.catalog.SQL(title)
		if err != nil {
			respond.WriteError(w, http.StatusInternalServerError, "CATALOG_INVALID", err.Error())
			return
		}
		out = append(out, queryInfo{Title: title, Difficulty: string(difficulty), SQL: sql})
	}
	respond.WriteJSONObject(w, http.StatusOK, out)
}

// RunQuery executes one catalog query by exact title.
// @Summary Run catalog query
// @Tags queries
// @Param title query string true "Exact catalog title, e.g. Q1. Players from India"
// @Produce json
// @Success 200 {object} handler.queryResult
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/queries/run [get]
func (h *Handler) RunQuery(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		respond.WriteError(w, http.StatusBadRequest, "BAD_REQUEST", "title query parameter is required")
		return
	}

	sql, err := h.catalog.SQL(title)
	if err != nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	difficulty, err := catalog.Classify(title)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "CATALOG_INVALID", err.Error())
		return
	}

	result := queryResult{
		Title:      title,
		Difficulty: string(difficulty),
		SQL:        sql,
		Table:      store.Table{Columns: []string{}, Rows: [][]any{}},
	}

	table, err := h.catalog.Execute(r.Context(), h.store, title)
	if err != nil {
		var qErr *store.QueryError
		if errors.As(err, &qErr) {
			result.Notice = "Query failed; showing empty result"
			respond.WriteJSONObject(w, http.StatusOK, result)
			return
		}
		respond.WriteError(w, http.StatusInternalServerError, "QUERY_FAILED", "Failed to execute query")
		return
	}
	result.Table = table
	result.RowCount = table.RowCount()
	respond.WriteJSONObject(w, http.StatusOK, result)
}
