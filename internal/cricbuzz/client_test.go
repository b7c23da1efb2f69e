package cricbuzz

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	c := NewClient(srv.URL, "test-key", "test-host", 5*time.Second, 600, logger)
	return c, &logBuf
}

func TestLiveMatches(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/v1/live" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("x-rapidapi-key") != "test-key" || r.Header.Get("x-rapidapi-host") != "test-host" {
			t.Errorf("auth headers missing: %v", r.Header)
		}
		w.Write([]byte(`{
			"typeMatches": [{
				"matchType": "International",
				"seriesMatches": [{
					"seriesAdWrapper": {
						"seriesId": "7607",
						"seriesName": "The Ashes",
						"matches": [{
							"matchInfo": {
								"matchId": 89654,
								"matchDesc": "1st Test",
								"state": "In Progress",
								"team1": {"teamId": 9, "teamName": "England"},
								"team2": {"teamId": 4, "teamName": "Australia"},
								"venueInfo": {"ground": "Lord's", "city": "London"}
							},
							"matchScore": {
								"team1Score": {"inngs1": {"runs": "325", "wickets": 7, "overs": "88.3"}}
							}
						}]
					}
				}]
			}]
		}`))
	})

	out := c.LiveMatches(context.Background())
	if len(out.TypeMatches) != 1 {
		t.Fatalf("typeMatches = %d", len(out.TypeMatches))
	}
	wrapper := out.TypeMatches[0].SeriesMatches[0].SeriesAdWrapper
	if int64(wrapper.SeriesID) != 7607 || wrapper.SeriesName != "The Ashes" {
		t.Errorf("series = %+v", wrapper)
	}
	m := wrapper.Matches[0]
	if int64(m.Info.MatchID) != 89654 || m.Info.Team1.TeamName != "England" {
		t.Errorf("match info = %+v", m.Info)
	}
	score := m.Score.Team1Score.Innings1
	if int64(score.Runs) != 325 || float64(score.Overs) != 88.3 {
		t.Errorf("score = %+v", score)
	}
}

func TestLiveMatchesDegradesToEmpty(t *testing.T) {
	c, logBuf := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	out := c.LiveMatches(context.Background())
	if len(out.TypeMatches) != 0 {
		t.Errorf("expected empty listing, got %+v", out)
	}
	if !strings.Contains(logBuf.String(), "cricbuzz request failed") {
		t.Errorf("failure not logged: %q", logBuf.String())
	}
}

func TestScorecardMalformedJSON(t *testing.T) {
	c, logBuf := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"scorecard": [`))
	})

	out := c.Scorecard(context.Background(), 89654)
	if len(out.Innings) != 0 {
		t.Errorf("expected empty scorecard, got %+v", out)
	}
	if !strings.Contains(logBuf.String(), "cricbuzz request failed") {
		t.Errorf("failure not logged: %q", logBuf.String())
	}
}

func TestSearchPlayers(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/v1/player/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("plrN"); got != "kohli" {
			t.Errorf("plrN = %q", got)
		}
		w.Write([]byte(`{"player": [{"id": "1413", "name": "Virat Kohli", "teamName": "India"}]}`))
	})

	players := c.SearchPlayers(context.Background(), "kohli")
	if len(players) != 1 {
		t.Fatalf("players = %d", len(players))
	}
	if int64(players[0].ID) != 1413 || players[0].Name != "Virat Kohli" {
		t.Errorf("player = %+v", players[0])
	}
}

func TestSearchPlayersFailureReturnsNil(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	if players := c.SearchPlayers(context.Background(), "kohli"); players != nil {
		t.Errorf("expected nil, got %+v", players)
	}
}

func TestPlayerStatsPath(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/v1/player/1413/bowling" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"headers": ["ROWHEADER", "Test"], "values": [{"values": ["Wickets", "4"]}]}`))
	})

	raw := c.PlayerStats(context.Background(), 1413, StatBowling)
	if len(raw.Headers) != 2 || len(raw.Values) != 1 {
		t.Errorf("raw = %+v", raw)
	}
}

func TestPlayerProfile(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/v1/player/1413" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "1413",
			"name": "Virat Kohli",
			"role": "Batsman",
			"bat": "Right Handed Bat",
			"intlTeam": "India",
			"rankings": {"bat": {"odiRank": "4", "odiBestRank": "1"}}
		}`))
	})

	p := c.PlayerProfile(context.Background(), 1413)
	if p.Name != "Virat Kohli" || p.Role != "Batsman" {
		t.Errorf("profile = %+v", p)
	}
	if p.Rankings.Bat["odiBestRank"] != "1" {
		t.Errorf("rankings = %+v", p.Rankings)
	}
}

func TestTransportErrorCarriesStatus(t *testing.T) {
	err := error(&TransportError{Endpoint: "/matches/v1/live", StatusCode: 429})
	tErr, ok := AsTransportError(err)
	if !ok {
		t.Fatal("AsTransportError failed")
	}
	if tErr.StatusCode != 429 {
		t.Errorf("status = %d", tErr.StatusCode)
	}
	if !strings.Contains(tErr.Error(), "429") {
		t.Errorf("message = %q", tErr.Error())
	}
}
