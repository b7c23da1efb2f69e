// Command ingest is the Cricsight data ingestion CLI.
//
// Usage:
//
//	cricsight-ingest init
//	cricsight-ingest live
//	cricsight-ingest scorecard --match 89654
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cricsight/cricsight-data/internal/config"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
	"github.com/cricsight/cricsight-data/internal/db"
	"github.com/cricsight/cricsight-data/internal/ingest"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "cricsight-ingest",
		Short: "Cricsight data ingestion CLI",
	}

	root.AddCommand(initCmd())
	root.AddCommand(liveCmd())
	root.AddCommand(scorecardCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// init command
// --------------------------------------------------------------------------

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Apply the database schema (idempotent)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				if err := pool.InitSchema(ctx); err != nil {
					return err
				}
				logger.Info("Schema applied")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// live command
// --------------------------------------------------------------------------

func liveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "Ingest current live matches and their scorecards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				client, err := buildClient(cfg)
				if err != nil {
					return err
				}
				start := time.Now()
				result := ingest.LiveMatches(ctx, pool.Pool, client, logger)
				logger.Info("Live ingest finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("ingest error", "error", e)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// scorecard command
// --------------------------------------------------------------------------

func scorecardCmd() *cobra.Command {
	var matchID int64
	cmd := &cobra.Command{
		Use:   "scorecard",
		Short: "Ingest the scorecard of a single match by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			if matchID == 0 {
				return fmt.Errorf("--match is required")
			}
			return runIngest(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				client, err := buildClient(cfg)
				if err != nil {
					return err
				}
				start := time.Now()
				sc := client.Scorecard(ctx, matchID)
				result, err := ingest.StoreScorecard(ctx, pool.Pool, matchID, sc)
				if err != nil {
					return fmt.Errorf("store scorecard %d: %w", matchID, err)
				}
				logger.Info("Scorecard ingest finished",
					"match_id", matchID,
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&matchID, "match", 0, "Match ID to ingest")
	return cmd
}

// buildClient creates the upstream client, requiring a configured API key.
func buildClient(cfg *config.Config) (*cricbuzz.Client, error) {
	if cfg.CricbuzzAPIKey == "" {
		return nil, fmt.Errorf("CRICBUZZ_API_KEY is required")
	}
	return cricbuzz.NewClient(
		"https://"+cfg.CricbuzzAPIHost,
		cfg.CricbuzzAPIKey, cfg.CricbuzzAPIHost,
		cfg.CricbuzzTimeout, cfg.CricbuzzReqPerMin,
		logger,
	), nil
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runIngest handles config loading, DB connection, and context cancellation.
func runIngest(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
