// Package server exposes the language detector over HTTP: JSON endpoints
// for detection and confidence queries, a WebSocket stream, health and
// Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MeKo-Tech/langid/internal/config"
	"github.com/MeKo-Tech/langid/internal/detect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wraps the detector with an HTTP API.
type Server struct {
	detector    *detect.Detector
	httpServer  *http.Server
	corsOrigin  string
	maxTextKB   int
	rateLimiter *RateLimiter
	shutdownSec int
}

// New creates a server around the given detector.
func New(detector *detect.Detector, cfg config.ServerConfig) *Server {
	s := &Server{
		detector:    detector,
		corsOrigin:  cfg.CORSOrigin,
		maxTextKB:   cfg.MaxTextKB,
		shutdownSec: cfg.ShutdownTimeout,
	}
	if cfg.RateLimitPerMin > 0 {
		s.rateLimiter = NewRateLimiter(cfg.RateLimitPerMin)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/detect", s.wrap(s.detectHandler))
	mux.HandleFunc("/confidence", s.wrap(s.confidenceHandler))
	mux.HandleFunc("/languages", s.wrap(s.languagesHandler))
	mux.HandleFunc("/health", s.wrap(s.healthHandler))
	mux.HandleFunc("/ws", s.websocketHandler)
	mux.Handle("/metrics", promhttp.Handler())

	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	return s
}

// wrap applies the standard middleware chain to a handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return s.corsMiddleware(s.rateLimitMiddleware(h))
}

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.shutdownSec)*time.Second)
	defer cancel()
	slog.Info("server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

// writeJSON encodes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeErrorResponse sends a JSON error body with the given status.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, status int) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}
