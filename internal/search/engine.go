// Package search explores the space of states reachable via ground actions.
// Nodes are states, edges are ground actions whose precondition holds in the
// source state; the goal is any state satisfying the goal condition.
//
// Three modes are provided: breadth-first (the deterministic baseline), A*
// guided by an admissible delete-relaxation heuristic, and a level-
// synchronized parallel breadth-first mode for wide frontiers. All modes
// deduplicate states by their canonical atom-set key, which guarantees
// termination over the finite ground universe.
package search

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/strategos/internal/eval"
	"github.com/aretw0/strategos/internal/ground"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
)

// Strategy selects the search algorithm.
type Strategy string

const (
	StrategyBFS   Strategy = "bfs"
	StrategyAStar Strategy = "astar"
)

// Engine runs searches over one grounded task. The task, evaluator, symbol
// table, and atom space are read-only, so one Engine may serve concurrent
// Solve calls.
type Engine struct {
	task      *ground.Task
	eval      *eval.Evaluator
	strategy  Strategy
	nodeLimit int
	workers   int
	logger    *slog.Logger
	hooks     domain.SearchHooks
}

// Option configures the engine.
type Option func(*Engine)

// WithStrategy selects bfs or astar. The default is bfs.
func WithStrategy(s Strategy) Option {
	return func(e *Engine) { e.strategy = s }
}

// WithNodeLimit bounds the number of expanded nodes. Zero or negative means
// unlimited. Exceeding the limit yields an Inconclusive result, never an
// error: the goal's reachability is simply undetermined.
func WithNodeLimit(n int) Option {
	return func(e *Engine) { e.nodeLimit = n }
}

// WithWorkers enables parallel frontier expansion with the given worker
// count. Values below 2 keep the single-threaded baseline. Parallel mode
// applies to bfs only; astar stays sequential.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithLogger sets a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(h domain.SearchHooks) Option {
	return func(e *Engine) { e.hooks = h }
}

// New creates a search engine for a grounded task.
func New(task *ground.Task, opts ...Option) *Engine {
	e := &Engine{
		task:     task,
		eval:     eval.New(task.Table, task.Space),
		strategy: StrategyBFS,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve searches for a plan. The three outcomes (Solved, NoPlanFound,
// Inconclusive) are ordinary result values; an error means the task itself
// was malformed, which validation should have caught earlier.
func (e *Engine) Solve(ctx context.Context) (*domain.Result, error) {
	start := time.Now()

	var (
		res *domain.Result
		err error
	)
	switch {
	case e.strategy == StrategyAStar:
		res, err = e.solveAStar(ctx)
	case e.workers > 1:
		res, err = e.solveParallel(ctx)
	default:
		res, err = e.solveBFS(ctx)
	}
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	e.logger.Info("search finished",
		"strategy", string(e.strategy),
		"outcome", string(res.Outcome),
		"expanded", res.NodesExpanded,
		"generated", res.NodesGenerated,
		"elapsed", res.Duration)
	if e.hooks.OnFinish != nil {
		e.hooks.OnFinish(res)
	}
	return res, nil
}

// node is one entry of the search tree. Parent links reconstruct the plan.
type node struct {
	st     state.State
	parent *node
	act    *domain.GroundAction
	depth  int
}

func (e *Engine) extractPlan(n *node) *domain.Plan {
	var steps []domain.Step
	for cur := n; cur.parent != nil; cur = cur.parent {
		steps = append(steps, cur.act.Step())
	}
	// Reverse into execution order.
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return &domain.Plan{Steps: steps}
}

// budgetExceeded reports whether another expansion would break the node
// limit.
func (e *Engine) budgetExceeded(expanded int) bool {
	return e.nodeLimit > 0 && expanded >= e.nodeLimit
}
