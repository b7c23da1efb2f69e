// Package ingest persists live match listings and scorecards fetched from
// the upstream stats API into Postgres.
package ingest

import "fmt"

// Result tracks counts and errors from an ingestion run.
type Result struct {
	VenuesUpserted  int
	MatchesUpserted int
	BattingRows     int
	BowlingRows     int
	Errors          []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.VenuesUpserted += other.VenuesUpserted
	r.MatchesUpserted += other.MatchesUpserted
	r.BattingRows += other.BattingRows
	r.BowlingRows += other.BowlingRows
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the ingestion run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"venues=%d matches=%d batting_rows=%d bowling_rows=%d errors=%d",
		r.VenuesUpserted, r.MatchesUpserted,
		r.BattingRows, r.BowlingRows,
		len(r.Errors),
	)
}
