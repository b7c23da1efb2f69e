package catalog

// defaultQueries is the full catalog, ordered by ordinal. All queries are
// parameter-free; date arithmetic happens store-side (CURRENT_DATE).
var defaultQueries = []Query{
	{
		Title: "Q1. Players from India",
		SQL: `SELECT full_name, role, batting_style, bowling_style
FROM players
JOIN teams ON players.team_id = teams.team_id
WHERE teams.country = 'India';`,
	},
	{
		Title: "Q2. Matches played in last few days",
		SQL: `SELECT match_desc, team1_name, team2_name, venue_name, venue_city, start_date
FROM matches
WHERE start_date >= CURRENT_DATE - INTERVAL '7 days'
ORDER BY start_date DESC;`,
	},
	{
		Title: "Q3. Top 10 run scorers in ODI",
		SQL: `SELECT player_name, runs, batting_average, hundreds
FROM player_master_stats
WHERE format = 'ODI'
ORDER BY runs DESC
LIMIT 10;`,
	},
	{
		Title: "Q4. Venues with capacity > 30000",
		SQL: `SELECT ground, city, country, capacity
FROM venues
WHERE capacity > 30000
ORDER BY capacity DESC;`,
	},
	{
		Title: "Q5. Matches won by each team",
		SQL: `SELECT winner_team_name, COUNT(*) AS total_wins
FROM matches
WHERE winner_team_name != 'No Result'
GROUP BY winner_team_name
ORDER BY total_wins DESC;`,
	},
	{
		Title: "Q6. Count players by role",
		SQL: `SELECT role, COUNT(*) AS total_players
FROM players
GROUP BY role;`,
	},
	{
		Title: "Q7. Highest individual score by format",
		SQL: `SELECT format, MAX(highest_score) AS highest_score
FROM player_master_stats
GROUP BY format;`,
	},
	{
		Title: "Q8. Series started in 2024",
		SQL: `SELECT series_name, host_country, series_type, start_date, total_matches
FROM series
WHERE EXTRACT(YEAR FROM start_date) = 2024;`,
	},
	{
		Title: "Q9. All-rounders with 1000 runs and 50 wickets",
		SQL: `SELECT player_name, format, runs, wickets
FROM player_master_stats
WHERE runs > 1000 AND wickets > 50
ORDER BY runs DESC, wickets DESC;`,
	},
	{
		Title: "Q10. Last 20 completed matches",
		SQL: `SELECT start_date, match_desc, team1_name, team2_name, status, winner_team_name,
       win_by_runs, win_by_wickets, venue_name
FROM matches
WHERE LOWER(state) = 'complete'
ORDER BY start_date DESC
LIMIT 20;`,
	},
	{
		Title: "Q11. Compare player runs across formats",
		SQL: `SELECT player_name,
       SUM(CASE WHEN format = 'Test' THEN runs ELSE 0 END) AS test_runs,
       SUM(CASE WHEN format = 'ODI' THEN runs ELSE 0 END) AS odi_runs,
       SUM(CASE WHEN format = 'T20I' THEN runs ELSE 0 END) AS t20_runs,
       ROUND(AVG(batting_average)::numeric, 2) AS overall_avg
FROM player_master_stats
GROUP BY player_name
HAVING COUNT(DISTINCT format) >= 2;`,
	},
	{
		Title: "Q12. Team wins home vs away",
		SQL: `SELECT t.team_name,
       SUM(CASE WHEN m.venue_country = t.country AND m.winner_team_id = t.team_id THEN 1 ELSE 0 END) AS home_wins,
       SUM(CASE WHEN m.venue_country <> t.country AND m.winner_team_id = t.team_id THEN 1 ELSE 0 END) AS away_wins
FROM teams t
JOIN matches m ON t.team_id IN (m.team1_id, m.team2_id)
GROUP BY t.team_name;`,
	},
	{
		Title: "Q13. Partnerships above 100 runs",
		SQL: `SELECT batsman1, batsman2, runs, innings_number
FROM partnerships
WHERE runs >= 100;`,
	},
	{
		Title: "Q14. Bowling performance at venues",
		SQL: `SELECT b.player_name,
       m.venue_name,
       ROUND(AVG(b.economy_rate)::numeric, 2) AS avg_economy,
       SUM(b.wickets) AS total_wickets,
       COUNT(DISTINCT b.match_id) AS matches_played
FROM bowling_scorecard b
JOIN matches m ON b.match_id = m.match_id
WHERE b.overs >= 4
GROUP BY b.player_name, m.venue_name
HAVING COUNT(DISTINCT b.match_id) >= 3
ORDER BY avg_economy ASC, total_wickets DESC;`,
	},
	{
		Title: "Q15. Player performance in close matches",
		SQL: `SELECT b.player_name,
       t.country,
       ROUND(AVG(b.runs)::numeric, 0) AS avg_runs,
       COUNT(DISTINCT b.match_id) AS close_matches
FROM batting_scorecard b
JOIN matches m ON b.match_id = m.match_id
JOIN players p ON b.player_name = p.full_name
JOIN teams t ON p.team_id = t.team_id
WHERE (m.win_by_runs < 50 OR m.win_by_wickets < 5)
  AND m.winner_team_name != 'No Result'
GROUP BY b.player_name, t.country
ORDER BY avg_runs DESC;`,
	},
	{
		Title: "Q16. Yearly batting since 2020",
		SQL: `SELECT b.player_name,
       b.team_name,
       EXTRACT(YEAR FROM m.start_date) AS year,
       ROUND(AVG(b.runs)::numeric, 0) AS avg_runs,
       ROUND(AVG(b.strike_rate)::numeric, 2) AS avg_sr,
       COUNT(b.match_id) AS matches_played
FROM batting_scorecard b
JOIN matches m ON b.match_id = m.match_id
WHERE EXTRACT(YEAR FROM m.start_date) >= 2020
GROUP BY b.player_name, b.team_name, EXTRACT(YEAR FROM m.start_date)
HAVING COUNT(b.match_id) >= 1
ORDER BY year DESC, avg_runs DESC;`,
	},
	{
		Title: "Q17. Toss advantage",
		SQL: `SELECT toss_decision,
       COUNT(*) AS matches,
       ROUND(AVG(CASE WHEN winner_team_id = toss_winner_id THEN 1 ELSE 0 END) * 100, 2) AS win_percent
FROM matches
WHERE LOWER(state) = 'complete' AND toss_winner_id IS NOT NULL
GROUP BY toss_decision;`,
	},
	{
		Title: "Q18. Most economical bowlers (ODI,T20)",
		SQL: `SELECT b.player_name,
       b.team_name,
       ROUND(AVG(b.economy_rate)::numeric, 2) AS avg_economy,
       SUM(b.wickets) AS total_wickets,
       COUNT(DISTINCT b.match_id) AS matches_bowled
FROM bowling_scorecard b
JOIN matches m ON b.match_id = m.match_id
WHERE m.match_format IN ('ODI', 'T20I')
  AND b.overs >= 2
GROUP BY b.player_name, b.team_name
HAVING COUNT(DISTINCT b.match_id) >= 1
ORDER BY avg_economy ASC, total_wickets DESC;`,
	},
	{
		Title: "Q19. Consistent batsmen since 2022",
		SQL: `SELECT b.player_name,
       b.team_name,
       ROUND(AVG(b.runs)::numeric, 0) AS avg_runs,
       ROUND(STDDEV_POP(b.runs)::numeric, 2) AS run_stddev,
       COUNT(*) AS innings
FROM batting_scorecard b
JOIN matches m ON b.match_id = m.match_id
WHERE m.start_date >= '2022-01-01'
  AND b.balls_faced >= 10
GROUP BY b.player_name, b.team_name
HAVING COUNT(*) >= 1
ORDER BY run_stddev ASC, avg_runs DESC;`,
	},
	{
		Title: "Q20. Matches and averages per format",
		SQL: `SELECT player_name,
       SUM(CASE WHEN format = 'Test' THEN matches ELSE 0 END) AS test_matches,
       SUM(CASE WHEN format = 'ODI' THEN matches ELSE 0 END) AS odi_matches,
       SUM(CASE WHEN format = 'T20I' THEN matches ELSE 0 END) AS t20_matches,
       ROUND(SUM(runs)::numeric / NULLIF(SUM(innings), 0), 2) AS overall_bat_avg
FROM player_master_stats
GROUP BY player_name
HAVING SUM(matches) >= 20;`,
	},
	{
		Title: "Q21. Player ranking score",
		SQL: `SELECT player_name,
       format,
       ROUND((
           SUM(runs) * 0.01
         + AVG(batting_average) * 0.5
         + AVG(strike_rate) * 0.3
         + SUM(wickets) * 2
         + (50 - AVG(bowling_average)) * 0.5
         + (6 - AVG(economy_rate)) * 2
       )::numeric, 2) AS total_points
FROM player_master_stats
GROUP BY player_name, format
ORDER BY format DESC;`,
	},
	{
		Title: "Q22. Head-to-head team stats (last 3 yrs)",
		SQL: `SELECT m.team1_name,
       m.team2_name,
       COUNT(*) AS total_matches,
       SUM(CASE WHEN m.winner_team_name = m.team1_name THEN 1 ELSE 0 END) AS team1_wins,
       SUM(CASE WHEN m.winner_team_name = m.team2_name THEN 1 ELSE 0 END) AS team2_wins
FROM matches m
WHERE m.start_date >= CURRENT_DATE - INTERVAL '3 years'
  AND m.winner_team_name != 'No Result'
GROUP BY m.team1_name, m.team2_name
HAVING COUNT(*) >= 1
ORDER BY total_matches DESC;`,
	},
	{
		Title: "Q23. Recent form (last 10 innings)",
		SQL: `SELECT b.player_name, b.team_name,
       ROUND(AVG(b.runs)::numeric, 0) AS avg_runs,
       ROUND(AVG(b.strike_rate)::numeric, 2) AS avg_sr,
       SUM(CASE WHEN b.runs >= 50 THEN 1 ELSE 0 END) AS fifties
FROM batting_scorecard b
JOIN matches m ON b.match_id = m.match_id
GROUP BY b.player_name, b.team_name
ORDER BY avg_runs DESC
LIMIT 50;`,
	},
	{
		Title: "Q24. Successful partnerships",
		SQL: `SELECT batsman1,
       batsman2,
       ROUND(AVG(runs)::numeric, 0) AS avg_runs,
       COUNT(*) AS total_partnerships,
       MAX(runs) AS highest
FROM partnerships
GROUP BY batsman1, batsman2
HAVING COUNT(*) >= 1
ORDER BY avg_runs DESC;`,
	},
	{
		Title: "Q25. Time series performance by quarter",
		SQL: `SELECT b.player_name, b.team_name,
       DATE_TRUNC('quarter', m.start_date) AS quarter,
       ROUND(AVG(b.runs)::numeric, 0) AS avg_runs,
       ROUND(AVG(b.strike_rate)::numeric, 2) AS avg_sr,
       COUNT(*) AS matches
FROM batting_scorecard b
JOIN matches m ON b.match_id = m.match_id
GROUP BY b.player_name, b.team_name, DATE_TRUNC('quarter', m.start_date)
HAVING COUNT(*) >= 3
ORDER BY b.player_name, quarter;`,
	},
}
