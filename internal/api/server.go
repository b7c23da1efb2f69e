package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/cricsight/cricsight-data/internal/api/handler"
	"github.com/cricsight/cricsight-data/internal/config"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
	"github.com/cricsight/cricsight-data/internal/db"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(pool *db.Pool, stats *cricbuzz.Client, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// --- Handler dependencies ---
	h := handler.New(pool, stats, cfg)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Live data (upstream passthrough)
		r.Get("/live-matches", h.LiveMatches)
		r.Get("/matches/{matchID}/scorecard", h.MatchScorecard)

		// Upstream player stats
		r.Get("/stats/player/search", h.SearchUpstreamPlayers)
		r.Get("/stats/player/{playerID}", h.PlayerProfile)
		r.Get("/stats/player/{playerID}/{kind}", h.PlayerStatTable)

		// Persisted players / teams (CRUD surface)
		r.Get("/players", h.ListPlayers)
		r.Post("/players", h.CreatePlayer)
		r.Get("/players/search", h.SearchPlayers)
		r.Get("/players/{playerID}", h.GetPlayer)
		r.Put("/players/{playerID}", h.UpdatePlayer)
		r.Delete("/players/{playerID}", h.DeletePlayer)
		r.Get("/teams", h.ListTeams)

		// Query catalog
		r.Get("/queries", h.ListQueries)
		r.Get("/queries/run", h.RunQuery)
	})

	return r
}
