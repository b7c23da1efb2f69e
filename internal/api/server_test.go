package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cricsight/cricsight-data/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "development",
		CORSAllowOrigins: []string{"http://localhost:3000"},
	}
}

func TestRouterRoutes(t *testing.T) {
	r := NewRouter(nil, nil, testConfig())

	tests := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/api/v1/queries", http.StatusOK},
		{"/no/such/route", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tt.want {
			t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestTimingMiddleware(t *testing.T) {
	var invoked bool
	h := TimingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoked = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if !invoked {
		t.Fatal("handler not invoked")
	}
	if got := w.Header().Get("X-Process-Time"); got == "" {
		t.Error("X-Process-Time header not set")
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	r := NewRouter(nil, nil, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/players", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
