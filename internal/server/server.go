// Package server exposes the ranking engine over a small JSON HTTP
// API. It is a delivery shell only: it validates and decodes request
// payloads, hands the engine a normalized batch, and serializes the
// ordered result. Every ranking call is independent, so concurrent
// requests need no locking.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/papapumpkin/triage/internal/rank"
	"github.com/papapumpkin/triage/internal/taskfile"
	"github.com/papapumpkin/triage/internal/telemetry"
)

// Server serves the ranking API over HTTP.
type Server struct {
	addr    string
	emitter *telemetry.Emitter
	srv     *http.Server
	ln      net.Listener
}

// New creates a Server bound to addr. The emitter may be nil to
// disable telemetry.
func New(addr string, emitter *telemetry.Emitter) *Server {
	s := &Server{addr: addr, emitter: emitter}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/tasks/suggest", s.handleSuggest)
	mux.HandleFunc("/healthz", handleHealth)

	s.srv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route mux, for tests that drive the server with
// httptest instead of a real listener.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start binds the listener and begins serving in a goroutine. The
// bound address is available from Addr after Start returns.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.addr, err)
	}
	s.ln = ln
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			fmt.Printf("server error: %v\n", err)
		}
	}()
	return nil
}

// Addr returns the bound listen address, or the configured address if
// the server has not started.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// Shutdown gracefully stops the server, waiting for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// analyzeRequest is the wire payload for both ranking endpoints.
// Tasks use the lenient wire shape so malformed optional fields
// degrade instead of failing the request.
type analyzeRequest struct {
	Tasks    []taskfile.RawTask `json:"tasks"`
	Strategy string             `json:"strategy"`
	Weights  map[string]float64 `json:"weights"`
	Limit    *int               `json:"limit"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	s.serveRanking(w, r, false)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	s.serveRanking(w, r, true)
}

// serveRanking decodes the request, runs the engine, and writes the
// ordered batch. Suggest mode truncates to the requested limit.
func (s *Server) serveRanking(w http.ResponseWriter, r *http.Request, truncate bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	tasks := make([]rank.Task, len(req.Tasks))
	for i, raw := range req.Tasks {
		tasks[i] = raw.Task()
	}

	_ = s.emitter.Emit(telemetry.Event{
		Kind:      telemetry.KindRunStart,
		Strategy:  req.Strategy,
		TaskCount: len(tasks),
	})

	ranked := rank.Analyze(tasks, req.Strategy, req.Weights)
	for _, st := range ranked {
		_ = s.emitter.Emit(telemetry.Event{
			Kind:     telemetry.KindTaskScored,
			Strategy: st.StrategyUsed,
			TaskID:   st.ID,
			Score:    st.Score,
		})
	}
	_ = s.emitter.Emit(telemetry.Event{
		Kind:      telemetry.KindRunDone,
		Strategy:  req.Strategy,
		TaskCount: len(ranked),
	})

	if truncate {
		limit := 3
		if req.Limit != nil {
			limit = *req.Limit
		}
		if limit < 0 {
			limit = 0
		}
		if limit < len(ranked) {
			ranked = ranked[:limit]
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ranked)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
