// Package http exposes the calculator as a JSON API alongside the health,
// readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/config"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/domain"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/observability"
	"github.com/ElGugiAlt1/wgt-shot-calculator/internal/render"
)

// Server exposes the calculator API plus health, readiness, and metrics
// HTTP endpoints.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
	ready      atomic.Bool
}

// NewServer creates the API server. The clock stamps response envelopes;
// tests pass a fake to freeze it.
func NewServer(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Server {
	mux := http.NewServeMux()

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
	s.httpServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      s.withRequestID(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	mux.HandleFunc("POST /api/v1/calculate", s.handleCalculate)
	mux.HandleFunc("GET /api/v1/angle-factor", s.handleAngleFactor)
	mux.HandleFunc("GET /api/v1/defaults", s.handleDefaults)
	mux.HandleFunc("GET /api/v1/diagram", s.handleDiagram)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.ready.Store(true)
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	s.metrics.ServerUp.Set(1)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)
	s.metrics.ServerUp.Set(0)
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// calculateRequest mirrors the calculator form.
type calculateRequest struct {
	Distance      float64 `json:"distance"`
	Wind          float64 `json:"wind"`
	Angle         float64 `json:"angle"`
	WindDirection string  `json:"windDirection"`
}

// calculateResponse is the trace plus the server-side timestamp.
type calculateResponse struct {
	domain.CalculationTrace
	ComputedAt time.Time `json:"computedAt"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := s.clock.Now()

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.Calculations.WithLabelValues("", "invalid_input").Inc()
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateInputs(req, s.cfg.Limits); err != nil {
		s.metrics.Calculations.WithLabelValues("", "invalid_input").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trace, err := domain.AdjustDistance(req.Distance, req.Wind, req.Angle, req.WindDirection)
	if err != nil {
		s.metrics.Calculations.WithLabelValues("", "invalid_direction").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	direction, _ := domain.ParseWindDirection(req.WindDirection)
	s.metrics.Calculations.WithLabelValues(string(direction), "ok").Inc()
	s.metrics.CalculationDuration.Observe(s.clock.Now().Sub(start).Seconds())

	writeJSON(w, http.StatusOK, calculateResponse{
		CalculationTrace: trace,
		ComputedAt:       s.clock.Now().UTC(),
	})
}

func (s *Server) handleAngleFactor(w http.ResponseWriter, r *http.Request) {
	angle, err := parseAngleParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{
		"angle":       angle,
		"angleFactor": domain.AngleFactor(angle),
	})
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"form":   s.cfg.Form,
		"limits": s.cfg.Limits,
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	angle, err := parseAngleParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if angle < 0 || angle > s.cfg.Limits.AngleMax {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("angle must be between 0 and %g", s.cfg.Limits.AngleMax))
		return
	}

	svg := render.Diagram(angle, render.DiagramConfig{
		Width:  s.cfg.Diagram.Width,
		Height: s.cfg.Diagram.Height,
		Radius: s.cfg.Diagram.Radius,
	})
	s.metrics.DiagramRenders.Inc()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg)) //nolint:errcheck // best-effort response body
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if !s.ready.Load() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// withRequestID tags every response with a generated request ID and logs
// the request at debug level.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		start := s.clock.Now()
		next.ServeHTTP(w, r)

		s.logger.Debug("request handled",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", s.clock.Now().Sub(start),
		)
	})
}

// validateInputs enforces the UI input ranges. The core treats non-finite
// values as undefined behavior, so they are rejected here.
func validateInputs(req calculateRequest, limits config.InputLimits) error {
	if !isFinite(req.Distance) || req.Distance < 0 {
		return fmt.Errorf("distance must be a finite number >= 0")
	}
	if !isFinite(req.Wind) || req.Wind < 0 || req.Wind > limits.WindMax {
		return fmt.Errorf("wind must be between 0 and %g", limits.WindMax)
	}
	if !isFinite(req.Angle) || req.Angle < 0 || req.Angle > limits.AngleMax {
		return fmt.Errorf("angle must be between 0 and %g", limits.AngleMax)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func parseAngleParam(r *http.Request) (float64, error) {
	raw := r.URL.Query().Get("angle")
	if raw == "" {
		return 0, fmt.Errorf("angle query parameter is required")
	}
	angle, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(angle) {
		return 0, fmt.Errorf("angle must be a finite number")
	}
	return angle, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
