package search

import (
	"context"

	"github.com/aretw0/strategos/internal/eval"
	"github.com/aretw0/strategos/pkg/domain"
)

// solveBFS is the deterministic single-threaded baseline: uniform
// breadth-first graph search. Successors are generated in the grounder's
// emission order, so the first plan found is both shortest and reproducible.
func (e *Engine) solveBFS(ctx context.Context) (*domain.Result, error) {
	res := &domain.Result{Outcome: domain.OutcomeNoPlanFound}
	bindings := eval.Bindings{}

	root := &node{st: e.task.Init}
	ok, err := e.eval.Holds(e.task.Goal, root.st, bindings)
	if err != nil {
		return nil, err
	}
	if ok {
		res.Outcome = domain.OutcomeSolved
		res.Plan = &domain.Plan{}
		return res, nil
	}

	queue := []*node{root}
	visited := map[string]bool{root.st.Key(): true}

	for len(queue) > 0 {
		if ctx.Err() != nil || e.budgetExceeded(res.NodesExpanded) {
			res.Outcome = domain.OutcomeInconclusive
			return res, nil
		}

		cur := queue[0]
		queue = queue[1:]
		res.NodesExpanded++
		if e.hooks.OnExpand != nil {
			e.hooks.OnExpand(len(queue))
		}

		for _, act := range e.task.Actions {
			applicable, err := e.eval.Holds(act.Precondition, cur.st, bindings)
			if err != nil {
				return nil, err
			}
			if !applicable {
				continue
			}

			next, err := e.eval.Apply(act.Effect, cur.st, bindings)
			if err != nil {
				return nil, err
			}
			if visited[next.Key()] {
				continue
			}
			visited[next.Key()] = true
			res.NodesGenerated++
			if e.hooks.OnGenerate != nil {
				e.hooks.OnGenerate()
			}

			child := &node{st: next, parent: cur, act: act, depth: cur.depth + 1}
			goal, err := e.eval.Holds(e.task.Goal, next, bindings)
			if err != nil {
				return nil, err
			}
			if goal {
				res.Outcome = domain.OutcomeSolved
				res.Plan = e.extractPlan(child)
				return res, nil
			}
			queue = append(queue, child)
		}
	}

	// The finite reachable space is exhausted: the goal is unreachable.
	return res, nil
}
