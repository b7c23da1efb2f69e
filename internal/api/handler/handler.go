// Package handler provides HTTP handlers for all API endpoints. Persisted
// data goes through the store, live data through the cricbuzz client, and
// canned analytics through the query catalog.
package handler

import (
	"net/http"
	"time"

	"github.com/cricsight/cricsight-data/internal/api/respond"
	"github.com/cricsight/cricsight-data/internal/catalog"
	"github.com/cricsight/cricsight-data/internal/config"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
	"github.com/cricsight/cricsight-data/internal/db"
	"github.com/cricsight/cricsight-data/internal/store"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	pool    *db.Pool
	store   *store.Store
	stats   *cricbuzz.Client
	catalog *catalog.Catalog
	cfg     *config.Config
}

// New creates a Handler with shared dependencies.
func New(pool *db.Pool, stats *cricbuzz.Client, cfg *config.Config) *Handler {
	return &Handler{
		pool:    pool,
		store:   store.New(pool),
		stats:   stats,
		catalog: catalog.New(),
		cfg:     cfg,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Cricsight Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
