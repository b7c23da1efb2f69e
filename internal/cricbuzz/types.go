package cricbuzz

import (
	"bytes"
	"strconv"
	"time"
)

// ---------------------------------------------------------------------------
// Tolerant scalars
//
// The upstream API is loose about numeric fields: the same field arrives as a
// JSON number in one payload and a quoted string in the next. These types
// absorb both and default to zero on anything unparseable.
// ---------------------------------------------------------------------------

// Num is a float64 that also accepts quoted numbers and empty strings.
type Num float64

func (n *Num) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = Num(f)
	return nil
}

// Int is an int64 with the same tolerance as Num.
type Int int64

func (i *Int) UnmarshalJSON(b []byte) error {
	var n Num
	if err := n.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = Int(n)
	return nil
}

// EpochMillis decodes the upstream's millisecond timestamps, which arrive as
// quoted strings.
type EpochMillis struct {
	time.Time
}

func (e *EpochMillis) UnmarshalJSON(b []byte) error {
	var ms Int
	if err := ms.UnmarshalJSON(b); err != nil {
		return err
	}
	if ms == 0 {
		e.Time = time.Time{}
		return nil
	}
	e.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

// ---------------------------------------------------------------------------
// Live match listing: /matches/v1/live
// ---------------------------------------------------------------------------

type LiveMatches struct {
	TypeMatches []TypeMatch `json:"typeMatches"`
}

type TypeMatch struct {
	MatchType     string        `json:"matchType"`
	SeriesMatches []SeriesMatch `json:"seriesMatches"`
}

type SeriesMatch struct {
	SeriesAdWrapper SeriesWrapper `json:"seriesAdWrapper"`
}

type SeriesWrapper struct {
	SeriesID   Int     `json:"seriesId"`
	SeriesName string  `json:"seriesName"`
	Matches    []Match `json:"matches"`
}

type Match struct {
	Info  MatchInfo  `json:"matchInfo"`
	Score MatchScore `json:"matchScore"`
}

type MatchInfo struct {
	MatchID     Int         `json:"matchId"`
	SeriesName  string      `json:"seriesName"`
	MatchDesc   string      `json:"matchDesc"`
	MatchFormat string      `json:"matchFormat"`
	StartDate   EpochMillis `json:"startDate"`
	EndDate     EpochMillis `json:"endDate"`
	State       string      `json:"state"`
	StateTitle  string      `json:"stateTitle"`
	Status      string      `json:"status"`
	Team1       TeamInfo    `json:"team1"`
	Team2       TeamInfo    `json:"team2"`
	Venue       VenueInfo   `json:"venueInfo"`
}

type TeamInfo struct {
	TeamID    Int    `json:"teamId"`
	TeamName  string `json:"teamName"`
	TeamSName string `json:"teamSName"`
}

type VenueInfo struct {
	Ground string `json:"ground"`
	City   string `json:"city"`
}

type MatchScore struct {
	Team1Score TeamScore `json:"team1Score"`
	Team2Score TeamScore `json:"team2Score"`
}

type TeamScore struct {
	Innings1 InningsScore `json:"inngs1"`
}

type InningsScore struct {
	Runs    Int `json:"runs"`
	Wickets Int `json:"wickets"`
	Overs   Num `json:"overs"`
}

// ---------------------------------------------------------------------------
// Scorecard: /mcenter/v1/{matchId}/scard
// ---------------------------------------------------------------------------

type Scorecard struct {
	Innings []Innings `json:"scorecard"`
}

type Innings struct {
	BattingTeam string    `json:"batteamname"`
	Batsmen     []Batsman `json:"batsman"`
	Bowlers     []Bowler  `json:"bowler"`
}

type Batsman struct {
	Name       string `json:"name"`
	Runs       Int    `json:"runs"`
	Balls      Int    `json:"balls"`
	Fours      Int    `json:"fours"`
	Sixes      Int    `json:"sixes"`
	StrikeRate Num    `json:"strkrate"`
	Dismissal  string `json:"outdec"`
}

type Bowler struct {
	Name    string `json:"name"`
	Overs   Num    `json:"overs"`
	Runs    Int    `json:"runs"`
	Wickets Int    `json:"wickets"`
	Economy Num    `json:"economy"`
}

// ---------------------------------------------------------------------------
// Player search, profile, stats: /stats/v1/player/...
// ---------------------------------------------------------------------------

type PlayerSearch struct {
	Players []PlayerCandidate `json:"player"`
}

type PlayerCandidate struct {
	ID       Int    `json:"id"`
	Name     string `json:"name"`
	TeamName string `json:"teamName"`
	DOB      string `json:"dob"`
}

type PlayerProfile struct {
	ID         Int      `json:"id"`
	Name       string   `json:"name"`
	NickName   string   `json:"nickName"`
	Role       string   `json:"role"`
	Bat        string   `json:"bat"`
	Bowl       string   `json:"bowl"`
	BirthPlace string   `json:"birthPlace"`
	IntlTeam   string   `json:"intlTeam"`
	Teams      string   `json:"teams"`
	DOB        string   `json:"DoB"`
	Rankings   Rankings `json:"rankings"`
}

// Rankings maps ranking keys (e.g. "odiRank", "testBestRank") to values. The
// upstream sends every value as a string.
type Rankings struct {
	Bat  map[string]string `json:"bat"`
	Bowl map[string]string `json:"bowl"`
	All  map[string]string `json:"all"`
}

// RawStatTable is the upstream header/value stat layout before flattening.
type RawStatTable struct {
	Headers []string `json:"headers"`
	Values  []struct {
		Values []string `json:"values"`
	} `json:"values"`
}
