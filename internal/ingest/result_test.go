package ingest

import (
	"testing"

	"github.com/cricsight/cricsight-data/internal/cricbuzz"
)

func TestResultAddAndSummary(t *testing.T) {
	var r Result
	r.Add(Result{VenuesUpserted: 2, MatchesUpserted: 3, BattingRows: 22, BowlingRows: 12})
	r.AddErrorf("upsert match %d: %s", 89654, "timeout")

	if r.VenuesUpserted != 2 || r.MatchesUpserted != 3 {
		t.Errorf("counts = %+v", r)
	}
	if len(r.Errors) != 1 || r.Errors[0] != "upsert match 89654: timeout" {
		t.Errorf("errors = %v", r.Errors)
	}
	want := "venues=2 matches=3 batting_rows=22 bowling_rows=12 errors=1"
	if got := r.Summary(); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestBowlingTeamFor(t *testing.T) {
	innings := []cricbuzz.InningsRows{
		{Number: 1, BattingTeam: "India"},
		{Number: 2, BattingTeam: "Australia"},
	}
	if got := bowlingTeamFor(innings, 1); got != "Australia" {
		t.Errorf("innings 1 bowling side = %q", got)
	}
	if got := bowlingTeamFor(innings, 2); got != "India" {
		t.Errorf("innings 2 bowling side = %q", got)
	}

	solo := []cricbuzz.InningsRows{{Number: 1, BattingTeam: "England"}}
	if got := bowlingTeamFor(solo, 1); got != "" {
		t.Errorf("single innings bowling side = %q, want empty", got)
	}
}

func TestNilZeroTime(t *testing.T) {
	var zero cricbuzz.EpochMillis
	if nilZeroTime(zero) != nil {
		t.Error("zero time must map to nil")
	}
}
