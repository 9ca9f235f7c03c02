package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/aretw0/strategos/internal/eval"
	"github.com/aretw0/strategos/pkg/domain"
)

// candidate is a successor proposed by a worker. Goal membership is computed
// by the proposing worker so the merge stays a pure bookkeeping pass.
type candidate struct {
	child *node
	key   string
	goal  bool
}

// solveParallel is level-synchronized parallel breadth-first search. The
// nodes of one depth level are split into contiguous chunks and expanded by
// a worker pool. Workers only read the visited set and propose candidates;
// all writes happen in a single sequential merge that walks the chunks in
// frontier order. When several parents of one level generate the same state,
// the merge keeps the first proposal in that order, so parent links and the
// returned plan are identical to the sequential baseline no matter how the
// workers are scheduled.
func (e *Engine) solveParallel(ctx context.Context) (*domain.Result, error) {
	res := &domain.Result{Outcome: domain.OutcomeNoPlanFound}

	root := &node{st: e.task.Init}
	ok, err := e.eval.Holds(e.task.Goal, root.st, eval.Bindings{})
	if err != nil {
		return nil, err
	}
	if ok {
		res.Outcome = domain.OutcomeSolved
		res.Plan = &domain.Plan{}
		return res, nil
	}

	// Workers never write here while they run, so a plain map suffices.
	visited := map[string]bool{root.st.Key(): true}

	level := []*node{root}
	for len(level) > 0 {
		if ctx.Err() != nil {
			res.Outcome = domain.OutcomeInconclusive
			return res, nil
		}

		truncated := false
		if e.nodeLimit > 0 && res.NodesExpanded+len(level) > e.nodeLimit {
			level = level[:e.nodeLimit-res.NodesExpanded]
			truncated = true
			if len(level) == 0 {
				res.Outcome = domain.OutcomeInconclusive
				return res, nil
			}
		}

		workers := e.workers
		if workers > len(level) {
			workers = len(level)
		}
		chunks := make([][]candidate, workers)

		g, gctx := errgroup.WithContext(ctx)
		chunkSize := (len(level) + workers - 1) / workers
		for w := 0; w < workers; w++ {
			lo := w * chunkSize
			hi := lo + chunkSize
			if hi > len(level) {
				hi = len(level)
			}
			if lo >= hi {
				break
			}
			w, lo, hi := w, lo, hi
			g.Go(func() error {
				// Bindings maps are mutated during evaluation, so each
				// worker carries its own.
				b := eval.Bindings{}
				ev := eval.New(e.task.Table, e.task.Space)
				var out []candidate

				for i := lo; i < hi; i++ {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					cur := level[i]
					if e.hooks.OnExpand != nil {
						e.hooks.OnExpand(len(level) - i)
					}

					for _, act := range e.task.Actions {
						applicable, err := ev.Holds(act.Precondition, cur.st, b)
						if err != nil {
							return err
						}
						if !applicable {
							continue
						}
						next, err := ev.Apply(act.Effect, cur.st, b)
						if err != nil {
							return err
						}
						key := next.Key()
						// Filters prior-level states only; same-level
						// duplicates fall out during the merge.
						if visited[key] {
							continue
						}
						goal, err := ev.Holds(e.task.Goal, next, b)
						if err != nil {
							return err
						}
						out = append(out, candidate{
							child: &node{st: next, parent: cur, act: act, depth: cur.depth + 1},
							key:   key,
							goal:  goal,
						})
					}
				}
				chunks[w] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			if err == context.Canceled || err == context.DeadlineExceeded || ctx.Err() != nil {
				res.Outcome = domain.OutcomeInconclusive
				return res, nil
			}
			return nil, err
		}
		res.NodesExpanded += len(level)

		// Chunks are contiguous slices of the level and workers emit
		// candidates in action order, so first-wins here reproduces the
		// sequential generation order exactly.
		var next []*node
		for _, chunk := range chunks {
			for _, c := range chunk {
				if visited[c.key] {
					continue
				}
				visited[c.key] = true
				res.NodesGenerated++
				if e.hooks.OnGenerate != nil {
					e.hooks.OnGenerate()
				}
				if c.goal {
					res.Outcome = domain.OutcomeSolved
					res.Plan = e.extractPlan(c.child)
					return res, nil
				}
				next = append(next, c.child)
			}
		}

		if truncated {
			res.Outcome = domain.OutcomeInconclusive
			return res, nil
		}
		level = next
	}

	return res, nil
}
