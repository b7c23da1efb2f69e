// Package cricbuzz wraps the Cricbuzz RapidAPI endpoints behind a single
// seam. Every network call applies the same contract: on transport failure,
// timeout, non-2xx status, or malformed JSON, the failure is logged and the
// empty structure is returned; a transport error never propagates to
// callers. Callers must treat empty as "temporarily unavailable", not "no
// data exists".
package cricbuzz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// StatKind selects a player stat table.
type StatKind string

const (
	StatBatting StatKind = "batting"
	StatBowling StatKind = "bowling"
)

// TransportError captures a failed upstream request.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("cricbuzz %s returned %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("cricbuzz %s: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// Client is the shared HTTP client for all Cricbuzz endpoints.
//
// RapidAPI authenticates via key and host headers. Rate limiting is handled
// with a token bucket limiter so bursts of UI actions stay under the plan's
// quota.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiHost    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a Cricbuzz HTTP client with rate limiting.
func NewClient(baseURL, apiKey, apiHost string, timeout time.Duration, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		apiHost:    apiHost,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// getJSON performs a rate-limited GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Endpoint: path, Err: fmt.Errorf("rate limit wait: %w", err)}
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &TransportError{Endpoint: path, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Endpoint: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Endpoint: path, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return &TransportError{Endpoint: path, StatusCode: resp.StatusCode, Err: fmt.Errorf("%s", truncate(body, 200))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Endpoint: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// report logs an upstream failure through the observability channel. The
// public operations degrade to empty afterwards.
func (c *Client) report(op string, err error) {
	c.logger.Error("cricbuzz request failed", "op", op, "error", err)
}

// LiveMatches fetches the current live match listing. Empty on failure.
func (c *Client) LiveMatches(ctx context.Context) LiveMatches {
	var out LiveMatches
	if err := c.getJSON(ctx, "/matches/v1/live", nil, &out); err != nil {
		c.report("live_matches", err)
		return LiveMatches{}
	}
	return out
}

// Scorecard fetches the innings scorecard for one match. Empty on failure.
func (c *Client) Scorecard(ctx context.Context, matchID int64) Scorecard {
	var out Scorecard
	path := fmt.Sprintf("/mcenter/v1/%d/scard", matchID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		c.report("scorecard", err)
		return Scorecard{}
	}
	return out
}

// SearchPlayers queries candidates by partial name. An empty slice covers
// both "no matches" and "request failed"; the two are deliberately not
// distinguished here.
func (c *Client) SearchPlayers(ctx context.Context, name string) []PlayerCandidate {
	var out PlayerSearch
	params := url.Values{"plrN": {name}}
	if err := c.getJSON(ctx, "/stats/v1/player/search", params, &out); err != nil {
		c.report("search_players", err)
		return nil
	}
	return out.Players
}

// PlayerProfile fetches profile and rankings for one player. Empty on failure.
func (c *Client) PlayerProfile(ctx context.Context, playerID int64) PlayerProfile {
	var out PlayerProfile
	path := fmt.Sprintf("/stats/v1/player/%d", playerID)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		c.report("player_profile", err)
		return PlayerProfile{}
	}
	return out
}

// PlayerStats fetches the batting or bowling header/value stat table for one
// player. Empty on failure.
func (c *Client) PlayerStats(ctx context.Context, playerID int64, kind StatKind) RawStatTable {
	var out RawStatTable
	path := fmt.Sprintf("/stats/v1/player/%d/%s", playerID, kind)
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		c.report("player_stats", err)
		return RawStatTable{}
	}
	return out
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
