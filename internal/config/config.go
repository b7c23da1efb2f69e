// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names, single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	PlayersTable          = "players"
	TeamsTable            = "teams"
	MatchesTable          = "matches"
	VenuesTable           = "venues"
	BattingScorecardTable = "batting_scorecard"
	BowlingScorecardTable = "bowling_scorecard"
)

// Placeholder values substituted for absent optional fields so NULLs never
// reach display logic.
const (
	PlaceholderText  = "—"
	PlaceholderStyle = "N/A"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DBHost         string
	DBPort         int
	DBName         string
	DBUser         string
	DBPassword     string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Cricbuzz (RapidAPI) upstream
	CricbuzzAPIKey    string
	CricbuzzAPIHost   string
	CricbuzzTimeout   time.Duration
	CricbuzzReqPerMin int
}

// Load reads configuration from environment variables with sensible defaults.
// The database defaults mirror a stock local Postgres install.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envInt("DB_PORT", 5432),
		DBName:         envOr("DB_NAME", "cricsight"),
		DBUser:         envOr("DB_USER", "postgres"),
		DBPassword:     envOr("DB_PASSWORD", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8501",
		}),

		CricbuzzAPIKey:    envOr("CRICBUZZ_API_KEY", ""),
		CricbuzzAPIHost:   envOr("CRICBUZZ_API_HOST", "cricbuzz-cricket.p.rapidapi.com"),
		CricbuzzTimeout:   time.Duration(envInt("CRICBUZZ_TIMEOUT_SECONDS", 10)) * time.Second,
		CricbuzzReqPerMin: envInt("CRICBUZZ_REQUESTS_PER_MINUTE", 60),
	}

	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME must not be empty")
	}
	return cfg, nil
}

// DatabaseURL assembles a pgx connection string. An explicit DATABASE_URL
// wins over the individual DB_* variables.
func (c *Config) DatabaseURL() string {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(c.DBUser), url.QueryEscape(c.DBPassword),
		c.DBHost, c.DBPort, url.PathEscape(c.DBName))
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
