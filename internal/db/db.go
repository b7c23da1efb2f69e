// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema bootstrap, and health checking.
package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cricsight/cricsight-data/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// ConnectionError reports that the database is unreachable or rejected the
// supplied credentials.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("parse database URL: %w", err)}
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("create pool: %w", err)}
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &ConnectionError{Err: fmt.Errorf("ping database: %w", err)}
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// InitSchema applies the embedded schema. Every statement uses IF NOT EXISTS,
// so re-running is safe.
func (p *Pool) InitSchema(ctx context.Context) error {
	// No bind parameters, so pgx sends this as a simple-protocol script and
	// the multi-statement schema executes in one round trip.
	if _, err := p.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// registerPreparedStatements registers the statements the typed store helpers
// use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Store: player lookups
		"player_by_id": `SELECT player_id, full_name,
			COALESCE(nick_name, '` + config.PlaceholderText + `'),
			COALESCE(role, '` + config.PlaceholderText + `'),
			COALESCE(batting_style, '` + config.PlaceholderStyle + `'),
			COALESCE(bowling_style, '` + config.PlaceholderStyle + `'),
			team_id, created_at
			FROM players WHERE player_id = $1`,

		// Store: team listing
		"team_list": "SELECT team_id, team_name, country FROM teams ORDER BY team_name",
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
