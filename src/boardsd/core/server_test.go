package core

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boardsd/api"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() Config {
	return Config{
		Bind:    "127.0.0.1",
		Port:    0,
		Options: boards.DefaultOptions(),
	}
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s := NewServer(cfg)
	t.Cleanup(s.api.Close)
	return s
}

func middlewareRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(handlers...)
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})
	return router
}

// =============================================================================
// Request ID Middleware Tests
// =============================================================================

func TestRequestID_Generated(t *testing.T) {
	router := middlewareRouter(requestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a generated UUID, got %q", id)
	}
	if w.Body.String() != id {
		t.Errorf("expected the id in the context, got %q", w.Body.String())
	}
}

func TestRequestID_Kept(t *testing.T) {
	router := middlewareRouter(requestID())
	id := uuid.NewString()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, id)
	router.ServeHTTP(w, req)

	if got := w.Header().Get(requestIDHeader); got != id {
		t.Errorf("expected %s, got %s", id, got)
	}
}

func TestRequestID_Replaced(t *testing.T) {
	router := middlewareRouter(requestID())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "client-chosen-id")
	router.ServeHTTP(w, req)

	id := w.Header().Get(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected the client id to be replaced, got %q", id)
	}
}

// =============================================================================
// CORS Middleware Tests
// =============================================================================

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"any origin", nil, "http://ide.local", "http://ide.local"},
		{"allowed origin", []string{"http://ide.local"}, "http://ide.local", "http://ide.local"},
		{"other origin", []string{"http://ide.local"}, "http://evil.local", ""},
		{"no origin", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := middlewareRouter(corsMiddleware(tt.allowed))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			router.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
		})
	}
}

func TestCORS_Preflight(t *testing.T) {
	router := middlewareRouter(corsMiddleware(nil))
	router.OPTIONS("/ping", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://ide.local")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost) {
		t.Errorf("expected POST to be allowed, got %q", w.Header().Get("Access-Control-Allow-Methods"))
	}
}

// =============================================================================
// Server Tests
// =============================================================================

func TestNewServer_Routes(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Error("expected every response to carry a request id")
	}

	w = httptest.NewRecorder()
	body := strings.NewReader(`{"detectedPorts": {}}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/boards-list", body)
	req.Header.Set("Content-Type", "application/json")
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for an empty snapshot, got %d: %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestNewServer_TrustProxy(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		want       string
	}{
		{"peer address", false, "192.0.2.1"},
		{"forwarded address", true, "203.0.113.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateLimit = api.RateLimitConfig{TrustProxy: tt.trustProxy}
			s := newTestServer(t, cfg)

			var got string
			s.router.GET("/client-ip", func(c *gin.Context) {
				got = c.ClientIP()
			})

			req := httptest.NewRequest(http.MethodGet, "/client-ip", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			s.Handler().ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestServe_Shutdown(t *testing.T) {
	s := newTestServer(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.serve(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a graceful shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServe_TLSWithoutCertificate(t *testing.T) {
	cfg := testConfig()
	cfg.TLS = TLSConfig{Enabled: true, KeyPath: "/tmp/key.pem"}
	s := newTestServer(t, cfg)

	err := s.serve(context.Background())
	if err == nil || !strings.Contains(err.Error(), keyTLSCertPath) {
		t.Errorf("expected a TLS configuration error, got %v", err)
	}
}

func TestServe_ListenError(t *testing.T) {
	cfg := testConfig()
	cfg.Port = 70000
	s := newTestServer(t, cfg)

	err := s.serve(context.Background())
	if err == nil || !strings.HasPrefix(err.Error(), "server error:") {
		t.Errorf("expected a listen error, got %v", err)
	}
}

// =============================================================================
// Configuration Tests
// =============================================================================

func TestConfigAddr(t *testing.T) {
	cfg := Config{Bind: "0.0.0.0", Port: defaultPort}
	if got := cfg.Addr(); got != "0.0.0.0:8484" {
		t.Errorf("expected 0.0.0.0:8484, got %s", got)
	}
}

func TestConfigFromViper(t *testing.T) {
	viper.Set(keyServerPort, 9000)
	viper.Set(keyRateLimitPerMin, 5)
	viper.Set(keyCORSOrigins, []string{"http://ide.local"})
	defer func() {
		viper.Set(keyServerPort, defaultPort)
		viper.Set(keyRateLimitPerMin, api.DefaultRateLimitConfig().RequestsPerMin)
		viper.Set(keyCORSOrigins, []string{})
	}()

	cfg := configFromViper()
	if cfg.Port != 9000 || cfg.Bind != "0.0.0.0" {
		t.Errorf("unexpected address %s", cfg.Addr())
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMin != 5 {
		t.Errorf("unexpected rate limit %+v", cfg.RateLimit)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://ide.local" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.Options.FirstPartyVendor != "arduino" {
		t.Errorf("expected the default vendor, got %q", cfg.Options.FirstPartyVendor)
	}
	if cfg.TLS.Enabled {
		t.Error("expected TLS to be disabled by default")
	}
}

func TestRootCommandFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"port", "p", "8484"},
		{"bind", "b", "0.0.0.0"},
		{"tls-enabled", "", "false"},
		{"tls-cert", "", ""},
		{"tls-key", "", ""},
		{"log-level", "", "info"},
		{"log-output", "", "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("expected --%s flag", tt.name)
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("expected shorthand %q, got %q", tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("expected default %q, got %q", tt.defValue, flag.DefValue)
			}
		})
	}

	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("expected --config flag")
	}
}
