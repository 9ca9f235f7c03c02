package search

import (
	"container/heap"
	"context"
	"math"

	"github.com/aretw0/strategos/internal/eval"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
	"github.com/aretw0/strategos/pkg/symbols"
)

// unreachable marks a state from which the goal cannot hold even under the
// delete relaxation. Since the relaxation over-approximates reachability,
// such states are safe to prune.
const unreachable = math.MaxInt32

// solveAStar runs best-first search with f = g + h, where h counts relaxed
// reachability layers (delete relaxation with optimistic negations). The
// heuristic never overestimates the true remaining cost under unit action
// costs, so the returned plan is shortest. Ties on f are broken by insertion
// order, which itself follows the grounder's emission order.
func (e *Engine) solveAStar(ctx context.Context) (*domain.Result, error) {
	res := &domain.Result{Outcome: domain.OutcomeNoPlanFound}
	bindings := eval.Bindings{}

	root := &node{st: e.task.Init}
	h0, err := e.heuristic(root.st, bindings)
	if err != nil {
		return nil, err
	}

	open := &openList{}
	heap.Init(open)
	if h0 != unreachable {
		open.push(root, h0)
	}
	bestG := map[string]int{root.st.Key(): 0}

	for open.Len() > 0 {
		if ctx.Err() != nil || e.budgetExceeded(res.NodesExpanded) {
			res.Outcome = domain.OutcomeInconclusive
			return res, nil
		}

		cur := open.pop()
		if g, ok := bestG[cur.st.Key()]; ok && cur.depth > g {
			continue // stale entry, a cheaper path was already expanded
		}

		goal, err := e.eval.Holds(e.task.Goal, cur.st, bindings)
		if err != nil {
			return nil, err
		}
		if goal {
			res.Outcome = domain.OutcomeSolved
			res.Plan = e.extractPlan(cur)
			return res, nil
		}

		res.NodesExpanded++
		if e.hooks.OnExpand != nil {
			e.hooks.OnExpand(open.Len())
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
			g := cur.depth + 1
			if prev, seen := bestG[next.Key()]; seen && prev <= g {
				continue
			}
			bestG[next.Key()] = g
			res.NodesGenerated++
			if e.hooks.OnGenerate != nil {
				e.hooks.OnGenerate()
			}

			h, err := e.heuristic(next, bindings)
			if err != nil {
				return nil, err
			}
			if h == unreachable {
				continue
			}
			open.push(&node{st: next, parent: cur, act: act, depth: g}, g+h)
		}
	}

	return res, nil
}

// heuristic counts how many relaxed expansion layers it takes until the goal
// condition relaxed-holds: atoms accumulate monotonically (deletes ignored)
// and any action whose precondition relaxed-holds contributes its adds. The
// count is a lower bound on the real plan length; a fixpoint without the goal
// proves unreachability.
func (e *Engine) heuristic(s state.State, b eval.Bindings) (int, error) {
	cur := s
	for layer := 0; ; layer++ {
		ok, err := e.eval.HoldsRelaxed(e.task.Goal, cur, b)
		if err != nil {
			return 0, err
		}
		if ok {
			return layer, nil
		}

		var adds []symbols.Handle
		for _, act := range e.task.Actions {
			applicable, err := e.eval.HoldsRelaxed(act.Precondition, cur, b)
			if err != nil {
				return 0, err
			}
			if !applicable {
				continue
			}
			more, err := e.eval.CollectRelaxedAdds(act.Effect, cur, b)
			if err != nil {
				return 0, err
			}
			adds = append(adds, more...)
		}

		next := cur.Apply(nil, adds)
		if next.Len() == cur.Len() {
			return unreachable, nil
		}
		cur = next
	}
}

// openList is a min-heap on f with FIFO tie-breaking.
type openList struct {
	items []openItem
	seq   int
}

type openItem struct {
	n   *node
	f   int
	seq int
}

func (o *openList) Len() int { return len(o.items) }
func (o *openList) Less(i, j int) bool {
	if o.items[i].f != o.items[j].f {
		return o.items[i].f < o.items[j].f
	}
	return o.items[i].seq < o.items[j].seq
}
func (o *openList) Swap(i, j int)      { o.items[i], o.items[j] = o.items[j], o.items[i] }
func (o *openList) Push(x any)         { o.items = append(o.items, x.(openItem)) }
func (o *openList) Pop() any {
	last := o.items[len(o.items)-1]
	o.items = o.items[:len(o.items)-1]
	return last
}

func (o *openList) push(n *node, f int) {
	o.seq++
	heap.Push(o, openItem{n: n, f: f, seq: o.seq})
}

func (o *openList) pop() *node {
	return heap.Pop(o).(openItem).n
}
