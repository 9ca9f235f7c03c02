// Package mcp exposes the planner as a Model Context Protocol server so that
// AI agents can solve and validate planning problems as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/strategos"
	"github.com/aretw0/strategos/internal/modelfile"
	"github.com/aretw0/strategos/internal/presentation/graph"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/household"
)

// SolveResponse is the structured output of the solve_problem tool.
type SolveResponse struct {
	Outcome        domain.Outcome `json:"outcome" jsonschema_description:"solved, no_plan_found or inconclusive"`
	Plan           []domain.Step  `json:"plan,omitempty" jsonschema_description:"Ordered ground actions when solved"`
	Mermaid        string         `json:"mermaid,omitempty" jsonschema_description:"Mermaid flowchart of the plan"`
	NodesExpanded  int            `json:"nodes_expanded"`
	NodesGenerated int            `json:"nodes_generated"`
}

// ValidateResponse is the structured output of the validate_plan tool.
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty" jsonschema_description:"Why the plan is unsound, when it is"`
}

// Server wraps the planner and exposes it as an MCP Server.
type Server struct {
	logger    *slog.Logger
	timeout   time.Duration
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger:    logger,
		timeout:   30 * time.Second,
		mcpServer: server.NewMCPServer("strategos-mcp", strings.TrimSpace(strategos.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer,
		server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}
	errs := make(chan error, 1)
	go func() {
		s.logger.Info("mcp server listening (sse)", "address", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_problem",
		mcp.WithDescription("Ground a typed planning domain against a problem and search for a plan. Domain and problem are YAML documents."),
		mcp.WithString("domain", mcp.Required(), mcp.Description("Domain model YAML: types, predicates, action schemas")),
		mcp.WithString("problem", mcp.Required(), mcp.Description("Problem model YAML: objects, init atoms, goal condition")),
		mcp.WithString("strategy", mcp.Description("Search strategy: bfs (default) or astar")),
		mcp.WithNumber("node_limit", mcp.Description("Maximum nodes to expand; 0 means unlimited")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	validateTool := mcp.NewTool("validate_plan",
		mcp.WithDescription("Replay a plan against a domain and problem, checking every precondition and the final goal."),
		mcp.WithString("domain", mcp.Required(), mcp.Description("Domain model YAML")),
		mcp.WithString("problem", mcp.Required(), mcp.Description("Problem model YAML")),
		mcp.WithString("plan", mcp.Required(), mcp.Description(`JSON array of steps: [{"action":"move","args":["r1","c1","c2"]}]`)),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	model, problem, err := parseModels(args)
	if err != nil {
		return SolveResponse{}, err
	}

	strategy := strategos.StrategyBFS
	if name, _ := args["strategy"].(string); name != "" {
		switch name {
		case "bfs":
		case "astar":
			strategy = strategos.StrategyAStar
		default:
			return SolveResponse{}, fmt.Errorf("unknown strategy %q", name)
		}
	}
	nodeLimit := 0
	if n, ok := args["node_limit"].(float64); ok {
		nodeLimit = int(n)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	planner := strategos.New(
		strategos.WithLogger(s.logger),
		strategos.WithStrategy(strategy),
		strategos.WithNodeLimit(nodeLimit),
	)
	res, err := planner.Solve(ctx, model, problem)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	resp := SolveResponse{
		Outcome:        res.Outcome,
		NodesExpanded:  res.NodesExpanded,
		NodesGenerated: res.NodesGenerated,
	}
	if res.Solved() {
		resp.Plan = res.Plan.Steps
		resp.Mermaid = graph.GenerateMermaid(res.Plan)
	}
	return resp, nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	model, problem, err := parseModels(args)
	if err != nil {
		return ValidateResponse{}, err
	}

	planJSON, _ := args["plan"].(string)
	var steps []domain.Step
	if err := json.Unmarshal([]byte(planJSON), &steps); err != nil {
		return ValidateResponse{}, fmt.Errorf("invalid plan JSON: %w", err)
	}

	err = strategos.New(strategos.WithLogger(s.logger)).
		Validate(model, problem, &domain.Plan{Steps: steps})
	if err != nil {
		return ValidateResponse{Valid: false, Reason: err.Error()}, nil
	}
	return ValidateResponse{Valid: true}, nil
}

func parseModels(args map[string]interface{}) (*domain.Model, *domain.Problem, error) {
	domainYAML, _ := args["domain"].(string)
	problemYAML, _ := args["problem"].(string)

	model, err := modelfile.ParseModel([]byte(domainYAML))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid domain model: %w", err)
	}
	problem, err := modelfile.ParseProblem([]byte(problemYAML))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid problem model: %w", err)
	}
	return model, problem, nil
}

func (s *Server) registerResources() {
	// EXPOSE: strategos://examples/household
	s.mcpServer.AddResource(mcp.NewResource("strategos://examples/household", "Household Service Domain",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload := map[string]any{
			"model":   household.Model(),
			"problem": household.TwoCellScenario(),
		}
		jsonBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode household example: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "strategos://examples/household",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
