package cricbuzz

// Pure transformations from the upstream's nested payloads into flat rows.
// No I/O happens here; missing fields have already been absorbed into zero
// values by the tolerant decoders in types.go.

// BattingRow is one batter's line in one innings.
type BattingRow struct {
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Dismissal  string  `json:"dismissal"`
}

// BowlingRow is one bowler's line in one innings.
type BowlingRow struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Economy float64 `json:"economy"`
}

// InningsRows is the flattened form of one innings: one row per listed
// batter and one per listed bowler, in upstream order.
type InningsRows struct {
	Number      int          `json:"innings"`
	BattingTeam string       `json:"batting_team"`
	Batting     []BattingRow `json:"batting"`
	Bowling     []BowlingRow `json:"bowling"`
}

// FlattenScorecard shapes a nested scorecard into per-innings row sets. An
// innings missing its batsman or bowler list yields zero rows for that side
// without failing.
func FlattenScorecard(sc Scorecard) []InningsRows {
	out := make([]InningsRows, 0, len(sc.Innings))
	for i, inn := range sc.Innings {
		rows := InningsRows{
			Number:      i + 1,
			BattingTeam: inn.BattingTeam,
			Batting:     make([]BattingRow, 0, len(inn.Batsmen)),
			Bowling:     make([]BowlingRow, 0, len(inn.Bowlers)),
		}
		for _, b := range inn.Batsmen {
			rows.Batting = append(rows.Batting, BattingRow{
				Name:       b.Name,
				Runs:       int(b.Runs),
				Balls:      int(b.Balls),
				Fours:      int(b.Fours),
				Sixes:      int(b.Sixes),
				StrikeRate: float64(b.StrikeRate),
				Dismissal:  b.Dismissal,
			})
		}
		for _, bl := range inn.Bowlers {
			rows.Bowling = append(rows.Bowling, BowlingRow{
				Name:    bl.Name,
				Overs:   float64(bl.Overs),
				Runs:    int(bl.Runs),
				Wickets: int(bl.Wickets),
				Economy: float64(bl.Economy),
			})
		}
		out = append(out, rows)
	}
	return out
}

// StatTable is a flattened header/value stat table.
type StatTable struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Empty reports whether the table holds no data rows.
func (t StatTable) Empty() bool { return len(t.Rows) == 0 }

// FlattenStatTable pairs the upstream header list positionally with each
// value row and drops any caller-specified columns. Rows shorter than the
// header list are padded with empty cells; longer rows are truncated. Absent
// headers or values yield an empty table.
func FlattenStatTable(raw RawStatTable, dropColumns []string) StatTable {
	if len(raw.Headers) == 0 || len(raw.Values) == 0 {
		return StatTable{}
	}

	drop := make(map[int]bool, len(dropColumns))
	for i, h := range raw.Headers {
		for _, d := range dropColumns {
			if h == d {
				drop[i] = true
			}
		}
	}

	cols := make([]string, 0, len(raw.Headers))
	for i, h := range raw.Headers {
		if !drop[i] {
			cols = append(cols, h)
		}
	}

	t := StatTable{Columns: cols, Rows: make([][]string, 0, len(raw.Values))}
	for _, v := range raw.Values {
		row := make([]string, 0, len(cols))
		for i := range raw.Headers {
			if drop[i] {
				continue
			}
			cell := ""
			if i < len(v.Values) {
				cell = v.Values[i]
			}
			row = append(row, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
