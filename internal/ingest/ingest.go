package ingest

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cricsight/cricsight-data/internal/config"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
)

// LiveMatches runs the full live ingestion flow: walk the nested live
// listing, upsert venues and matches, then fetch and store each match's
// scorecard. An empty listing (upstream down or genuinely quiet) ingests
// nothing and is not an error.
func LiveMatches(ctx context.Context, pool *pgxpool.Pool, client *cricbuzz.Client, logger *slog.Logger) Result {
	var result Result

	logger.Info("Fetching live matches...")
	live := client.LiveMatches(ctx)

	for _, tm := range live.TypeMatches {
		for _, sm := range tm.SeriesMatches {
			series := sm.SeriesAdWrapper
			for _, m := range series.Matches {
				if m.Info.MatchID == 0 {
					continue
				}
				if err := UpsertVenue(ctx, pool, m.Info.Venue); err != nil {
					result.AddErrorf("upsert venue %q: %v", m.Info.Venue.Ground, err)
				} else {
					result.VenuesUpserted++
				}
				if err := UpsertMatch(ctx, pool, series.SeriesName, m); err != nil {
					result.AddErrorf("upsert match %d: %v", m.Info.MatchID, err)
					continue
				}
				result.MatchesUpserted++

				sc := client.Scorecard(ctx, int64(m.Info.MatchID))
				scr, err := StoreScorecard(ctx, pool, int64(m.Info.MatchID), sc)
				if err != nil {
					result.AddErrorf("store scorecard %d: %v", m.Info.MatchID, err)
					continue
				}
				result.Add(scr)
			}
		}
	}

	logger.Info("Live ingestion complete", "summary", result.Summary())
	return result
}

// UpsertVenue records a venue. Capacity is not part of the live feed, so an
// existing row wins over the fresh one.
func UpsertVenue(ctx context.Context, pool *pgxpool.Pool, v cricbuzz.VenueInfo) error {
	if v.Ground == "" {
		return nil
	}
	_, err := pool.Exec(ctx, `
		INSERT INTO `+config.VenuesTable+` (ground, city)
		VALUES ($1, $2)
		ON CONFLICT (ground, city) DO NOTHING`,
		v.Ground, v.City,
	)
	return err
}

// UpsertMatch writes one live match. Re-ingesting refreshes the mutable
// fields (status, state, end date); winner and toss metadata are not carried
// by the live feed and keep their stored values.
func UpsertMatch(ctx context.Context, pool *pgxpool.Pool, seriesName string, m cricbuzz.Match) error {
	info := m.Info
	_, err := pool.Exec(ctx, `
		INSERT INTO `+config.MatchesTable+` (
			match_id, match_desc, match_format,
			team1_id, team1_name, team2_id, team2_name,
			venue_name, venue_city,
			start_date, end_date, status, state
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (match_id) DO UPDATE SET
			match_desc = EXCLUDED.match_desc,
			status = EXCLUDED.status,
			state = EXCLUDED.state,
			end_date = EXCLUDED.end_date`,
		int64(info.MatchID), info.MatchDesc, info.MatchFormat,
		int64(info.Team1.TeamID), info.Team1.TeamName,
		int64(info.Team2.TeamID), info.Team2.TeamName,
		info.Venue.Ground, info.Venue.City,
		nilZeroTime(info.StartDate), nilZeroTime(info.EndDate),
		info.Status, info.State,
	)
	return err
}

// StoreScorecard replaces the batting and bowling scorecard rows for one
// match with the flattened innings rows. The delete scopes to the match, so
// re-ingestion is idempotent.
func StoreScorecard(ctx context.Context, pool *pgxpool.Pool, matchID int64, sc cricbuzz.Scorecard) (Result, error) {
	var result Result

	innings := cricbuzz.FlattenScorecard(sc)
	if len(innings) == 0 {
		return result, nil
	}

	if _, err := pool.Exec(ctx, `DELETE FROM `+config.BattingScorecardTable+` WHERE match_id = $1`, matchID); err != nil {
		return result, err
	}
	if _, err := pool.Exec(ctx, `DELETE FROM `+config.BowlingScorecardTable+` WHERE match_id = $1`, matchID); err != nil {
		return result, err
	}

	for _, inn := range innings {
		bowlTeam := bowlingTeamFor(innings, inn.Number)
		for _, b := range inn.Batting {
			if _, err := pool.Exec(ctx, `
				INSERT INTO `+config.BattingScorecardTable+`
					(player_name, team_name, match_id, runs, balls_faced, strike_rate)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				b.Name, inn.BattingTeam, matchID, b.Runs, b.Balls, b.StrikeRate,
			); err != nil {
				return result, err
			}
			result.BattingRows++
		}
		for _, bl := range inn.Bowling {
			if _, err := pool.Exec(ctx, `
				INSERT INTO `+config.BowlingScorecardTable+`
					(player_name, team_name, match_id, overs, economy_rate, wickets)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				bl.Name, bowlTeam, matchID, bl.Overs, bl.Economy, bl.Wickets,
			); err != nil {
				return result, err
			}
			result.BowlingRows++
		}
	}
	return result, nil
}

// bowlingTeamFor infers the fielding side of one innings: the batting team
// of the nearest other innings. Empty when the scorecard lists only one side.
func bowlingTeamFor(innings []cricbuzz.InningsRows, number int) string {
	for _, other := range innings {
		if other.Number != number && other.BattingTeam != "" {
			return other.BattingTeam
		}
	}
	return ""
}

// nilZeroTime maps the zero time to SQL NULL.
func nilZeroTime(t cricbuzz.EpochMillis) any {
	if t.IsZero() {
		return nil
	}
	return t.Time
}
