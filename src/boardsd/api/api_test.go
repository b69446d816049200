package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/gin-gonic/gin"
)

const testInput = `{
  "detectedPorts": {
    "port+serial://COM1": {
      "port": {"protocol": "serial", "address": "COM1"},
      "boards": [{"name": "Arduino Uno", "fqbn": "arduino:avr:uno"}]
    }
  },
  "boardsConfig": {
    "selectedBoard": {"name": "Arduino Uno", "fqbn": "arduino:avr:uno"},
    "selectedPort": {"protocol": "serial", "address": "COM1"}
  }
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, cfg Config) *gin.Engine {
	t.Helper()
	a := New(cfg)
	t.Cleanup(a.Close)

	router := gin.New()
	a.RegisterRoutes(router)
	return router
}

func request(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Routing Tests
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	router := setupRouter(t, Config{Options: boards.DefaultOptions()})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/v1/health", "", http.StatusOK},
		{http.MethodGet, "/v1/version", "", http.StatusOK},
		{http.MethodPost, "/v1/boards-list", testInput, http.StatusOK},
		{http.MethodPost, "/v1/boards-list/ports", testInput, http.StatusOK},
		{http.MethodPost, "/v1/boards-list/ports?protocol=serial", testInput, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := request(router, tt.method, tt.path, tt.body)
			if w.Code != tt.status {
				t.Errorf("expected %d, got %d: %s", tt.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestRegisterRoutes_BoardsList(t *testing.T) {
	router := setupRouter(t, Config{Options: boards.DefaultOptions()})

	w := request(router, http.MethodPost, "/v1/boards-list", testInput)
	var view boards.ListView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(view.Items) != 1 || view.SelectedIndex != 0 {
		t.Errorf("unexpected view: %d items, selected %d", len(view.Items), view.SelectedIndex)
	}
	if view.Labels.BoardLabel != "Arduino Uno" {
		t.Errorf("expected the selected board as the label, got %q", view.Labels.BoardLabel)
	}
}

func TestRegisterRoutes_NotFound(t *testing.T) {
	router := setupRouter(t, Config{Options: boards.DefaultOptions()})

	w := request(router, http.MethodGet, "/v1/unknown", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error != "internal.not_found" || resp.Field != "/v1/unknown" {
		t.Errorf("unexpected response %+v", resp)
	}
}

// =============================================================================
// Rate Limiting Tests
// =============================================================================

func TestRateLimit(t *testing.T) {
	router := setupRouter(t, Config{
		Options:   boards.DefaultOptions(),
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerMin: 2},
	})

	for i := 0; i < 2; i++ {
		if w := request(router, http.MethodPost, "/v1/boards-list", testInput); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}

	w := request(router, http.MethodPost, "/v1/boards-list/ports", testInput)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("expected Retry-After 60, got %q", w.Header().Get("Retry-After"))
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Error != "internal.rate_limited" {
		t.Errorf("unexpected error %q", resp.Error)
	}

	// Discovery endpoints are not limited
	if w := request(router, http.MethodGet, "/v1/health", ""); w.Code != http.StatusOK {
		t.Errorf("expected health to stay available, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	a := New(Config{
		Options:   boards.DefaultOptions(),
		RateLimit: RateLimitConfig{Enabled: false, RequestsPerMin: 1},
	})
	defer a.Close()

	if a.rateLimiter != nil {
		t.Fatal("expected no limiter when rate limiting is disabled")
	}

	router := gin.New()
	a.RegisterRoutes(router)
	for i := 0; i < 5; i++ {
		if w := request(router, http.MethodPost, "/v1/boards-list", testInput); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}
