package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	// Registers the OpenAPI document read by the /swagger/ handler.
	_ "github.com/HerbHall/distrofinder/internal/apidocs"
	"github.com/HerbHall/distrofinder/internal/version"
)

// RouteRegistrar is implemented by components that serve HTTP routes.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Options configures a Server. Zero durations fall back to the defaults
// below; a zero RateLimit disables rate limiting.
type Options struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	RateLimit    float64
	RateBurst    int
	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// Server is the DistroFinder HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
}

// New creates a new Server that mounts every registrar's routes.
func New(opts Options, logger *zap.Logger, registrars ...RouteRegistrar) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			ReadTimeout:  orDefault(opts.ReadTimeout, 15*time.Second),
			WriteTimeout: orDefault(opts.WriteTimeout, 15*time.Second),
			IdleTimeout:  orDefault(opts.IdleTimeout, 60*time.Second),
		},
		logger: logger,
		mux:    mux,
	}

	s.registerCoreRoutes(opts.Gatherer)
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	mws := []Middleware{RequestID, Recover(logger), AccessLog(logger)}
	if opts.RateLimit > 0 {
		mws = append(mws, NewRateLimiter(opts.RateLimit, opts.RateBurst).Middleware)
	}
	s.httpServer.Handler = Chain(mux, mws...)

	return s
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes(gatherer prometheus.Gatherer) {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	s.mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if gatherer != nil {
		s.mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
//
//	@Summary		Health check
//	@Tags			system
//	@Produce		json
//	@Success		200 {object} map[string]any
//	@Router			/health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-DistroFinder-Version", version.Short())
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"service": "distrofinder",
		"version": version.Map(),
	})
}
