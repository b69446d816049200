package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boards/snapshot"
	"github.com/bitswalk/boardlist/src/boardsd/api"
	"github.com/bitswalk/boardlist/src/common/cli"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	shutdownTimeout = 30 * time.Second
)

// TLSConfig holds the certificate of a TLS listener
type TLSConfig struct {
	Enabled  bool
	CertPath string
	KeyPath  string
}

// Config holds everything the server is built from
type Config struct {
	Bind           string
	Port           int
	TLS            TLSConfig
	Debug          bool
	AllowedOrigins []string
	Options        boards.Options
	RateLimit      api.RateLimitConfig
}

// Addr returns the listen address
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Bind, c.Port)
}

// configFromViper reads the server configuration
func configFromViper() Config {
	return Config{
		Bind: viper.GetString(keyServerBind),
		Port: viper.GetInt(keyServerPort),
		TLS: TLSConfig{
			Enabled:  viper.GetBool(keyTLSEnabled),
			CertPath: cli.GetExpandedString(keyTLSCertPath),
			KeyPath:  cli.GetExpandedString(keyTLSKeyPath),
		},
		Debug:          viper.GetString(cli.KeyLogLevel) == "debug",
		AllowedOrigins: viper.GetStringSlice(keyCORSOrigins),
		Options:        cli.BoardsOptions(),
		RateLimit: api.RateLimitConfig{
			Enabled:        viper.GetBool(keyRateLimitOn),
			RequestsPerMin: viper.GetInt(keyRateLimitPerMin),
			TrustProxy:     viper.GetBool(keyTrustProxy),
		},
	}
}

// Server holds the HTTP server instance and configuration
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	api        *api.API
}

// NewServer creates a new Server instance
func NewServer(cfg Config) *Server {
	// Set Gin mode based on log level
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if !cfg.RateLimit.TrustProxy {
		// ClientIP is the peer address unless proxies are trusted
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Warn("Failed to reset trusted proxies", "error", err)
		}
	}

	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(ginLogger())

	api.SetLogger(log)
	api.SetVersionInfo(VersionInfo)
	apiInstance := api.New(api.Config{
		Options:   cfg.Options,
		RateLimit: cfg.RateLimit,
	})
	apiInstance.RegisterRoutes(router)

	return &Server{
		config: cfg,
		router: router,
		api:    apiInstance,
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM
func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return s.serve(ctx)
}

// serve listens until ctx is done, then shuts down gracefully
func (s *Server) serve(ctx context.Context) error {
	defer s.api.Close()

	tlsCfg := s.config.TLS
	if tlsCfg.Enabled && (tlsCfg.CertPath == "" || tlsCfg.KeyPath == "") {
		return fmt.Errorf("TLS is enabled but %s or %s is not set", keyTLSCertPath, keyTLSKeyPath)
	}

	s.httpServer = &http.Server{
		Addr:         s.config.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener
	errChan := make(chan error, 1)

	go func() {
		var err error
		if tlsCfg.Enabled {
			log.Info("Starting boardsd server", "address", s.httpServer.Addr, "tls", true)
			err = s.httpServer.ListenAndServeTLS(tlsCfg.CertPath, tlsCfg.KeyPath)
		} else {
			log.Info("Starting boardsd server", "address", s.httpServer.Addr)
			err = s.httpServer.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info("Shutting down", "cause", context.Cause(ctx))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// requestID tags every request with an X-Request-ID. A UUID sent by the
// client is kept, anything else is replaced.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// corsMiddleware answers CORS for the allowed origins. An empty list allows
// every origin.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && (len(allowed) == 0 || slices.Contains(allowed, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)
			c.Header("Access-Control-Expose-Headers", requestIDHeader)
			c.Header("Vary", "Origin")
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ginLogger returns a gin middleware for logging requests
func ginLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}

		c.Next()

		log.Debug("HTTP request",
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", path,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		)
	}
}

// runServer is called by the root command to start the server
func runServer() error {
	log.Info("boardsd starting",
		"version", VersionInfo.Version,
		"build_date", VersionInfo.BuildDate,
		"log_output", log.Output(),
	)
	snapshot.SetLogger(log)

	cfg := configFromViper()
	log.Debug("Boards list options",
		"vendor", cfg.Options.FirstPartyVendor,
		"protocols", len(cfg.Options.ProtocolPriorities),
		"rate_limit", cfg.RateLimit.Enabled,
	)

	return NewServer(cfg).Run()
}
