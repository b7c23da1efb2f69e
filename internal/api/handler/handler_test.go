package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cricsight/cricsight-data/internal/config"
	"github.com/cricsight/cricsight-data/internal/cricbuzz"
)

// newTestHandler builds a Handler whose upstream client points at a local
// test server. The database pool is nil; tests here only exercise endpoints
// that never touch it.
func newTestHandler(t *testing.T, upstream http.HandlerFunc) *Handler {
	t.Helper()
	cfg := &config.Config{Environment: "development"}

	var stats *cricbuzz.Client
	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		stats = cricbuzz.NewClient(srv.URL, "k", "h", 5*time.Second, 600,
			slog.New(slog.NewTextHandler(io.Discard, nil)))
	}
	return New(nil, stats, cfg)
}

// newTestRouter mounts the handler on the same route shapes the server uses,
// so chi URL parameters resolve.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/", h.Root)
	r.Get("/health", h.HealthCheck)
	r.Get("/api/v1/live-matches", h.LiveMatches)
	r.Get("/api/v1/matches/{matchID}/scorecard", h.MatchScorecard)
	r.Get("/api/v1/stats/player/search", h.SearchUpstreamPlayers)
	r.Get("/api/v1/stats/player/{playerID}/{kind}", h.PlayerStatTable)
	r.Get("/api/v1/queries", h.ListQueries)
	r.Get("/api/v1/queries/run", h.RunQuery)
	return r
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	w := doGet(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "running" {
		t.Errorf("body = %v", body)
	}
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	w := doGet(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestListQueries(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	w := doGet(t, r, "/api/v1/queries")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out []struct {
		Title      string `json:"title"`
		Difficulty string `json:"difficulty"`
		SQL        string `json:"sql"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 25 {
		t.Fatalf("queries = %d", len(out))
	}
	if out[0].Difficulty != "Beginner" || out[24].Difficulty != "Advanced" {
		t.Errorf("difficulties = %q, %q", out[0].Difficulty, out[24].Difficulty)
	}
	for i, q := range out {
		if q.Title == "" || q.SQL == "" {
			t.Errorf("entry %d incomplete: %+v", i, q)
		}
	}
}

func TestRunQueryMissingTitle(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	if w := doGet(t, r, "/api/v1/queries/run"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestRunQueryUnknownTitle(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	if w := doGet(t, r, "/api/v1/queries/run?title=Q99.+Nope"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func TestSearchUpstreamPlayersRequiresName(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	if w := doGet(t, r, "/api/v1/stats/player/search"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestSearchUpstreamPlayers(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"player": [{"id": "1413", "name": "Virat Kohli", "teamName": "India"}]}`))
	})
	r := newTestRouter(h)

	w := doGet(t, r, "/api/v1/stats/player/search?name=kohli")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out []cricbuzz.PlayerCandidate
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Virat Kohli" {
		t.Errorf("players = %+v", out)
	}
}

func TestSearchUpstreamPlayersFailureGivesEmptyList(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	r := newTestRouter(h)

	w := doGet(t, r, "/api/v1/stats/player/search?name=kohli")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out []cricbuzz.PlayerCandidate
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty list, got %+v", out)
	}
}

func TestPlayerStatTableRejectsBadKind(t *testing.T) {
	r := newTestRouter(newTestHandler(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	if w := doGet(t, r, "/api/v1/stats/player/1413/fielding"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}

func TestPlayerStatTableDropsColumns(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"headers": ["ROWHEADER", "Test", "400"],
			"values": [{"values": ["Matches", "113", "0"]}]
		}`))
	})
	r := newTestRouter(h)

	w := doGet(t, r, "/api/v1/stats/player/1413/batting")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out cricbuzz.StatTable
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Columns) != 2 || out.Columns[1] != "Test" {
		t.Errorf("columns = %v", out.Columns)
	}
	if len(out.Rows) != 1 || len(out.Rows[0]) != 2 {
		t.Errorf("rows = %v", out.Rows)
	}
}

func TestMatchScorecard(t *testing.T) {
	h := newTestHandler(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mcenter/v1/89654/scard" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"scorecard": [{
			"batteamname": "India",
			"batsman": [{"name": "R Sharma", "runs": "56", "balls": 41}],
			"bowler": [{"name": "M Starc", "overs": "9", "wickets": 2}]
		}]}`))
	})
	r := newTestRouter(h)

	w := doGet(t, r, "/api/v1/matches/89654/scorecard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		MatchID int64                  `json:"match_id"`
		Innings []cricbuzz.InningsRows `json:"innings"`
	}
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.MatchID != 89654 || len(out.Innings) != 1 {
		t.Fatalf("body = %+v", out)
	}
	if out.Innings[0].Batting[0].Runs != 56 {
		t.Errorf("batting row = %+v", out.Innings[0].Batting[0])
	}
}

func TestMatchScorecardRejectsBadID(t *testing.T) {
	r := newTestRouter(newTestHandler(t, nil))
	if w := doGet(t, r, "/api/v1/matches/abc/scorecard"); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
}
