// Package server wires the mock API together: routing, middleware, and
// the HTTP server lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/devstub/devstub/pkg/auth"
	"github.com/devstub/devstub/pkg/config"
	"github.com/devstub/devstub/pkg/latency"
	"github.com/devstub/devstub/pkg/logging"
	"github.com/devstub/devstub/pkg/store"
	"github.com/devstub/devstub/pkg/upload"
)

// defaultTimeoutDelay is the fixed delay of the /timeout endpoint.
const defaultTimeoutDelay = 5 * time.Second

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Server is the mock API server.
type Server struct {
	cfg          *config.Config
	log          *slog.Logger
	store        *store.Store
	auth         *auth.Simulator
	uploads      *upload.Gateway
	delay        latency.Provider
	timeoutDelay time.Duration

	httpServer *http.Server
	mu         sync.RWMutex
	running    bool
	startTime  time.Time
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDelayProvider overrides the latency source. Tests pass latency.Zero
// to make requests immediate.
func WithDelayProvider(p latency.Provider) Option {
	return func(s *Server) {
		s.delay = p
	}
}

// WithStore sets a pre-built resource store instead of one seeded from
// configuration.
func WithStore(st *store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// WithTimeoutDelay overrides the /timeout endpoint's fixed delay.
func WithTimeoutDelay(d time.Duration) Option {
	return func(s *Server) {
		s.timeoutDelay = d
	}
}

// NewServer creates a Server from configuration. Optional Option functions
// customize the server before it is wired up.
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		cfg:          cfg,
		log:          logging.Nop(),
		timeoutDelay: defaultTimeoutDelay,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		seed := store.DefaultSeed()
		if cfg.SeedUsers > 0 {
			seed = store.WithGenerated(seed, cfg.SeedUsers)
		}
		s.store = store.New(seed)
	}

	if s.delay == nil {
		if cfg.Latency.Enabled {
			s.delay = latency.NewUniform(cfg.Latency.Bounds())
		} else {
			s.delay = latency.Zero{}
		}
	}

	gw, err := upload.New(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	s.uploads = gw

	s.auth = auth.NewSimulator(s.store)
	return s, nil
}

// Store returns the resource store (for tests and tooling).
func (s *Server) Store() *store.Store {
	return s.store
}

// Handler builds the full HTTP handler: routes wrapped in the middleware
// chain. Exposed so tests can drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Latency simulation applies to resource and auth endpoints only;
	// upload, download, error injection, timeout, and health respond
	// without artificial delay.
	lat := latency.Middleware(s.delay)
	simulated := func(h http.HandlerFunc) http.Handler { return lat(h) }

	mux.Handle("GET /users", simulated(s.handleListUsers))
	mux.Handle("GET /users/{id}", simulated(s.handleGetUser))
	mux.Handle("POST /users", simulated(s.handleCreateUser))
	mux.Handle("PUT /users/{id}", simulated(s.handleUpdateUser))
	mux.Handle("DELETE /users/{id}", simulated(s.handleDeleteUser))

	mux.Handle("GET /posts", simulated(s.handleListPosts))
	mux.Handle("GET /posts/{id}", simulated(s.handleGetPost))
	mux.Handle("POST /posts", simulated(s.handleCreatePost))
	mux.Handle("PUT /posts/{id}", simulated(s.handleUpdatePost))
	mux.Handle("PATCH /posts/{id}", simulated(s.handlePatchPost))
	mux.Handle("DELETE /posts/{id}", simulated(s.handleDeletePost))

	mux.Handle("POST /login", simulated(s.handleLogin))
	mux.Handle("POST /register", simulated(s.handleRegister))

	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /download/{filename}", s.handleDownload)
	mux.HandleFunc("GET /uploads/{filename}", s.handleServeUpload)

	mux.HandleFunc("GET /errors/{code}", s.handleErrorInjection)
	mux.HandleFunc("GET /timeout", s.handleTimeout)
	mux.HandleFunc("GET /{$}", s.handleHealth)

	var h http.Handler = mux
	h = s.logRequests(h)
	h = s.recoverPanics(h)
	h = corsMiddleware(h)
	return h
}

// Start starts the HTTP server. It returns immediately; serve errors are
// logged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
	}

	s.log.Info("starting HTTP server", "port", s.cfg.Port)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	s.log.Info("server started",
		"port", s.cfg.Port,
		"latency", s.cfg.Latency.Enabled,
		"uploads", s.uploads.Dir(),
		"users", s.store.UserCount(),
		"posts", s.store.PostCount(),
	)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	if err != nil {
		return fmt.Errorf("HTTP shutdown: %w", err)
	}
	return nil
}

// IsRunning returns whether the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns the server uptime in seconds.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}
