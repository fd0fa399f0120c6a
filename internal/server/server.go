package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"StageSentinel/internal/service"
)

// Server exposes the analysis entry points over HTTP.
type Server struct {
	httpServer *http.Server
}

// New builds the HTTP server and routes.
func New(port int, analyzer *service.Analyzer) *Server {
	h := &handlers{analyzer: analyzer}

	mux := http.NewServeMux()
	mux.HandleFunc("/analyze/stage2/", h.analyzeStage)
	mux.HandleFunc("/analyze/volume/", h.analyzeVolume)
	mux.HandleFunc("/healthz", h.health)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
