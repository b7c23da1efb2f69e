package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cricsight/cricsight-data/internal/config"
)

// Player is a persisted player record. The ID is externally assigned (the
// upstream stats API's player id) and never changes after creation.
type Player struct {
	ID           int64     `json:"player_id"`
	FullName     string    `json:"full_name"`
	NickName     string    `json:"nick_name"`
	Role         string    `json:"role"`
	BattingStyle string    `json:"batting_style"`
	BowlingStyle string    `json:"bowling_style"`
	TeamID       *int64    `json:"team_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Team is a persisted team record. Read-only from this layer.
type Team struct {
	ID      int64  `json:"team_id"`
	Name    string `json:"team_name"`
	Country string `json:"country"`
}

// InsertResult distinguishes a fresh insert from a conflict no-op. The
// "already exists" branch is an expected outcome, not a fault, so it is never
// reported as an error.
type InsertResult struct {
	ID            int64 `json:"player_id"`
	AlreadyExists bool  `json:"already_exists"`
}

// InsertPlayer inserts a player, silently no-opping when the id already
// exists. A constraint failure other than the id conflict (e.g. a team_id
// that resolves to no team) is surfaced as a WriteError.
func (s *Store) InsertPlayer(ctx context.Context, p Player) (InsertResult, error) {
	var id int64
	err := s.pool.QueryRow(ctx, `
		INSERT INTO `+config.PlayersTable+`
			(player_id, full_name, nick_name, role, batting_style, bowling_style, team_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (player_id) DO NOTHING
		RETURNING player_id`,
		p.ID, p.FullName, nilEmpty(p.NickName), nilEmpty(p.Role),
		nilEmpty(p.BattingStyle), nilEmpty(p.BowlingStyle), p.TeamID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return InsertResult{ID: p.ID, AlreadyExists: true}, nil
	}
	if err != nil {
		return InsertResult{}, &WriteError{Err: fmt.Errorf("insert player %d: %w", p.ID, err)}
	}
	return InsertResult{ID: id}, nil
}

// UpdatePlayer replaces all mutable fields of an existing player. The
// returned count is zero when the id does not exist; this layer does not
// synthesize a not-found error, callers check the count.
func (s *Store) UpdatePlayer(ctx context.Context, id int64, p Player) (int64, error) {
	return s.Exec(ctx, `
		UPDATE `+config.PlayersTable+`
		SET full_name = $1, nick_name = $2, role = $3,
		    batting_style = $4, bowling_style = $5, team_id = $6
		WHERE player_id = $7`,
		p.FullName, nilEmpty(p.NickName), nilEmpty(p.Role),
		nilEmpty(p.BattingStyle), nilEmpty(p.BowlingStyle), p.TeamID, id,
	)
}

// DeletePlayer hard-deletes a player. Historical scorecard rows reference
// players by name and are left in place (orphan-and-ignore).
func (s *Store) DeletePlayer(ctx context.Context, id int64) (int64, error) {
	return s.Exec(ctx, `DELETE FROM `+config.PlayersTable+` WHERE player_id = $1`, id)
}

// GetPlayer fetches one player by id, with optional fields substituted by
// display placeholders. Returns (nil, nil) when the id does not exist.
func (s *Store) GetPlayer(ctx context.Context, id int64) (*Player, error) {
	var p Player
	err := s.pool.QueryRow(ctx, "player_by_id", id).Scan(
		&p.ID, &p.FullName, &p.NickName, &p.Role,
		&p.BattingStyle, &p.BowlingStyle, &p.TeamID, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &QueryError{Err: fmt.Errorf("get player %d: %w", id, err)}
	}
	return &p, nil
}

// SearchPlayersByName finds players whose full name contains the fragment,
// case-insensitively. An empty fragment lists everyone.
func (s *Store) SearchPlayersByName(ctx context.Context, fragment string) ([]Player, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT player_id, full_name,
		       COALESCE(nick_name, '`+config.PlaceholderText+`'),
		       COALESCE(role, '`+config.PlaceholderText+`'),
		       COALESCE(batting_style, '`+config.PlaceholderStyle+`'),
		       COALESCE(bowling_style, '`+config.PlaceholderStyle+`'),
		       team_id, created_at
		FROM `+config.PlayersTable+`
		WHERE full_name ILIKE '%' || $1 || '%'
		ORDER BY full_name`,
		fragment,
	)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(
			&p.ID, &p.FullName, &p.NickName, &p.Role,
			&p.BattingStyle, &p.BowlingStyle, &p.TeamID, &p.CreatedAt,
		); err != nil {
			return nil, &QueryError{Err: err}
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return players, nil
}

// ListTeams returns all teams ordered by name.
func (s *Store) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := s.pool.Query(ctx, "team_list")
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Country); err != nil {
			return nil, &QueryError{Err: err}
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return teams, nil
}

// ListPlayers returns every player LEFT JOINed with its optional team as a
// display-ready table. Absent team associations surface as placeholders,
// never as NULL.
func (s *Store) ListPlayers(ctx context.Context) (Table, error) {
	return s.Query(ctx, `
		SELECT p.player_id, p.full_name,
		       COALESCE(p.nick_name, '`+config.PlaceholderText+`') AS nick_name,
		       COALESCE(t.team_name, '`+config.PlaceholderText+`') AS team,
		       COALESCE(t.country, '`+config.PlaceholderText+`') AS country,
		       COALESCE(p.role, '`+config.PlaceholderText+`') AS role,
		       COALESCE(p.batting_style, '`+config.PlaceholderStyle+`') AS batting_style,
		       COALESCE(p.bowling_style, '`+config.PlaceholderStyle+`') AS bowling_style,
		       p.team_id, p.created_at
		FROM `+config.PlayersTable+` p
		LEFT JOIN `+config.TeamsTable+` t ON p.team_id = t.team_id
		ORDER BY p.player_id`)
}

// nilEmpty returns nil for empty strings (maps to SQL NULL).
func nilEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
