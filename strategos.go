package strategos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/strategos/internal/eval"
	"github.com/aretw0/strategos/internal/ground"
	"github.com/aretw0/strategos/internal/search"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/ports"
)

// Version of the Strategos engine.
const Version = "0.1.0"

// Strategy re-exports the search strategies for consumers of the facade.
type Strategy = search.Strategy

const (
	StrategyBFS   = search.StrategyBFS
	StrategyAStar = search.StrategyAStar
)

// Planner is the high-level entry point for the Strategos library. It wraps
// grounding and search behind one Solve call and optionally consults a plan
// cache. A Planner is stateless between calls and safe for concurrent use.
type Planner struct {
	logger    *slog.Logger
	strategy  Strategy
	nodeLimit int
	workers   int
	store     ports.PlanStore
	hooks     domain.SearchHooks
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithStrategy selects the search algorithm (default bfs).
func WithStrategy(s Strategy) Option {
	return func(p *Planner) { p.strategy = s }
}

// WithNodeLimit bounds expanded search nodes; zero means unlimited.
// An exceeded budget yields an Inconclusive result.
func WithNodeLimit(n int) Option {
	return func(p *Planner) { p.nodeLimit = n }
}

// WithWorkers enables parallel frontier expansion for bfs.
func WithWorkers(n int) Option {
	return func(p *Planner) { p.workers = n }
}

// WithPlanStore attaches a plan cache consulted before searching and updated
// after a successful solve.
func WithPlanStore(store ports.PlanStore) Option {
	return func(p *Planner) { p.store = store }
}

// WithSearchHooks registers observability hooks.
func WithSearchHooks(hooks domain.SearchHooks) Option {
	return func(p *Planner) { p.hooks = hooks }
}

// New initializes a Planner.
func New(opts ...Option) *Planner {
	p := &Planner{
		strategy: StrategyBFS,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Solve grounds the problem against the model and searches for a plan.
// Structural model errors surface as errors; search outcomes (Solved,
// NoPlanFound, Inconclusive) are carried in the Result.
func (p *Planner) Solve(ctx context.Context, model *domain.Model, problem *domain.Problem) (*domain.Result, error) {
	var fingerprint string
	if p.store != nil {
		fingerprint = domain.Fingerprint(model, problem)
		cached, err := p.store.Load(ctx, fingerprint)
		if err == nil {
			p.logger.Debug("plan cache hit", "fingerprint", fingerprint)
			return &domain.Result{Outcome: domain.OutcomeSolved, Plan: cached}, nil
		}
		if !errors.Is(err, domain.ErrPlanNotFound) {
			p.logger.Warn("plan cache lookup failed", "error", err)
		}
	}

	task, err := ground.NewTask(model, problem, p.logger)
	if err != nil {
		return nil, err
	}

	engine := search.New(task,
		search.WithStrategy(p.strategy),
		search.WithNodeLimit(p.nodeLimit),
		search.WithWorkers(p.workers),
		search.WithLogger(p.logger),
		search.WithHooks(p.hooks),
	)
	res, err := engine.Solve(ctx)
	if err != nil {
		return nil, err
	}

	if res.Solved() && p.store != nil {
		if err := p.store.Save(ctx, fingerprint, res.Plan); err != nil {
			// A failing cache never fails the solve.
			p.logger.Warn("plan cache save failed", "error", err)
		}
	}
	return res, nil
}

// Validate replays a plan against the model and problem: every step's
// precondition must hold before it is applied, and the final state must
// satisfy the goal. A nil return means the plan is sound.
func (p *Planner) Validate(model *domain.Model, problem *domain.Problem, plan *domain.Plan) error {
	task, err := ground.NewTask(model, problem, p.logger)
	if err != nil {
		return err
	}

	index := make(map[string]*domain.GroundAction, len(task.Actions))
	for _, act := range task.Actions {
		index[act.String()] = act
	}

	ev := eval.New(task.Table, task.Space)
	bindings := eval.Bindings{}
	st := task.Init

	for i, step := range plan.Steps {
		act, ok := index[step.String()]
		if !ok {
			return fmt.Errorf("step %d: %s is not a ground action of this problem", i+1, step)
		}
		holds, err := ev.Holds(act.Precondition, st, bindings)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if !holds {
			return fmt.Errorf("step %d: precondition of %s does not hold", i+1, step)
		}
		if st, err = ev.Apply(act.Effect, st, bindings); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}

	holds, err := ev.Holds(task.Goal, st, bindings)
	if err != nil {
		return err
	}
	if !holds {
		return errors.New("final state does not satisfy the goal")
	}
	return nil
}
