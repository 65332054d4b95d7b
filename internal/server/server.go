package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/offer-dashboard/internal/dashboard"
)

// Server holds the dashboard state and exposes its actions over REST. One
// dashboard per process, mirroring the one-session-per-user model of the
// original UI.
type Server struct {
	httpServer *http.Server
	dash       *dashboard.Dashboard

	// busy serializes actions: one user-triggered action runs to completion
	// before the next is accepted. There is no queueing.
	busy sync.Mutex
}

// Config holds server configuration
type Config struct {
	Port int
}

// New creates a new server instance around an existing dashboard.
func New(cfg Config, dash *dashboard.Dashboard) *Server {
	s := &Server{dash: dash}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Draft side
	mux.HandleFunc("POST /draft/generate", s.guarded(s.handleGenerate))
	mux.HandleFunc("POST /draft/publish", s.guarded(s.handlePublish))

	// Browsing side
	mux.HandleFunc("POST /offers/refresh", s.guarded(s.handleRefresh))
	mux.HandleFunc("POST /offers/search", s.guarded(s.handleSearch))
	mux.HandleFunc("POST /offers/filter/expiring", s.guarded(s.handleFilterExpiring))
	mux.HandleFunc("POST /offers/filter/high-value", s.guarded(s.handleFilterHighValue))
	mux.HandleFunc("GET /offers", s.guarded(s.handleListOffers))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // LLM calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// guarded rejects a request with 409 when another action is in flight. The
// dashboard is single-writer by construction; this enforces it at the
// interaction-trigger level.
func (s *Server) guarded(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.busy.TryLock() {
			s.errorResponse(w, http.StatusConflict, "Another action is in progress")
			return
		}
		defer s.busy.Unlock()
		next(w, r)
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a correlation id
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		start := time.Now()
		log.Printf("[%s] %s %s %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s %s completed in %v", requestID, r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
