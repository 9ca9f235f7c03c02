// Package http exposes the planner over a small JSON API. Domain and problem
// models travel as YAML documents inside the request body, matching the CLI
// harness format.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/strategos"
	"github.com/aretw0/strategos/internal/modelfile"
	"github.com/aretw0/strategos/pkg/domain"
)

// SolveRequest carries the models plus per-request search settings.
type SolveRequest struct {
	Domain    string `json:"domain"`
	Problem   string `json:"problem"`
	Strategy  string `json:"strategy,omitempty"`
	NodeLimit int    `json:"node_limit,omitempty"`
	Workers   int    `json:"workers,omitempty"`
}

// SolveResponse reports the outcome and, when solved, the plan.
type SolveResponse struct {
	Outcome        domain.Outcome `json:"outcome"`
	Plan           []domain.Step  `json:"plan,omitempty"`
	NodesExpanded  int            `json:"nodes_expanded"`
	NodesGenerated int            `json:"nodes_generated"`
	DurationMs     float64        `json:"duration_ms"`
}

// ValidateRequest carries the models and a candidate plan.
type ValidateRequest struct {
	Domain  string        `json:"domain"`
	Problem string        `json:"problem"`
	Plan    []domain.Step `json:"plan"`
}

// ValidateResponse reports plan soundness.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// Server holds the handler's dependencies.
type Server struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	hooks    domain.SearchHooks
	timeout  time.Duration
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics exposes the registry on /metrics and feeds the hooks into
// every solve.
func WithMetrics(reg *prometheus.Registry, hooks domain.SearchHooks) Option {
	return func(s *Server) {
		s.registry = reg
		s.hooks = hooks
	}
}

// WithSolveTimeout bounds each solve request (default 30s).
func WithSolveTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// NewHandler builds the HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		logger:  slog.Default(),
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/info", s.handleInfo)
	r.Post("/solve", s.handleSolve)
	r.Post("/validate", s.handleValidate)
	if s.registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "strategos-http",
		"version": strings.TrimSpace(strategos.Version),
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var body SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("solve: invalid request body", "error", err)
		return
	}

	model, problem, ok := s.parseModels(w, body.Domain, body.Problem)
	if !ok {
		return
	}

	opts := []strategos.Option{
		strategos.WithLogger(s.logger),
		strategos.WithNodeLimit(body.NodeLimit),
		strategos.WithWorkers(body.Workers),
		strategos.WithSearchHooks(s.hooks),
	}
	switch body.Strategy {
	case "", "bfs":
		opts = append(opts, strategos.WithStrategy(strategos.StrategyBFS))
	case "astar":
		opts = append(opts, strategos.WithStrategy(strategos.StrategyAStar))
	default:
		http.Error(w, fmt.Sprintf("Unknown strategy %q", body.Strategy), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	res, err := strategos.New(opts...).Solve(ctx, model, problem)
	if err != nil {
		http.Error(w, fmt.Sprintf("Solve error: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("solve failed", "error", err)
		return
	}

	resp := SolveResponse{
		Outcome:        res.Outcome,
		NodesExpanded:  res.NodesExpanded,
		NodesGenerated: res.NodesGenerated,
		DurationMs:     float64(res.Duration.Microseconds()) / 1000,
	}
	if res.Solved() {
		resp.Plan = res.Plan.Steps
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("validate: invalid request body", "error", err)
		return
	}

	model, problem, ok := s.parseModels(w, body.Domain, body.Problem)
	if !ok {
		return
	}

	err := strategos.New(strategos.WithLogger(s.logger)).
		Validate(model, problem, &domain.Plan{Steps: body.Plan})
	resp := ValidateResponse{Valid: err == nil}
	if err != nil {
		resp.Reason = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) parseModels(w http.ResponseWriter, domainYAML, problemYAML string) (*domain.Model, *domain.Problem, bool) {
	model, err := modelfile.ParseModel([]byte(domainYAML))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid domain model: %v", err), http.StatusBadRequest)
		return nil, nil, false
	}
	problem, err := modelfile.ParseProblem([]byte(problemYAML))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid problem model: %v", err), http.StatusBadRequest)
		return nil, nil, false
	}
	return model, problem, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
