package eval

import (
	"fmt"

	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
	"github.com/aretw0/strategos/pkg/symbols"
)

// HoldsRelaxed evaluates a condition under the delete relaxation used by the
// search heuristic: negations are optimistically treated as true, and atom
// tests look at the monotonically growing relaxed atom set. The relaxed
// semantics over-approximate real reachability, which keeps the layer-count
// heuristic admissible.
func (e *Evaluator) HoldsRelaxed(c domain.Condition, s state.State, b Bindings) (bool, error) {
	switch n := c.(type) {
	case nil:
		return true, nil
	case domain.Atom:
		return e.holdsAtom(n, s, b)
	case domain.And:
		for _, child := range n.Children {
			ok, err := e.HoldsRelaxed(child, s, b)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case domain.Not:
		// Optimistic: a real delete could always have made this true.
		return true, nil
	case domain.Equal:
		left, err := e.resolve(n.Left, b)
		if err != nil {
			return false, err
		}
		right, err := e.resolve(n.Right, b)
		if err != nil {
			return false, err
		}
		return left == right, nil
	case domain.Quantifier:
		return e.relaxedQuantifier(n, s, b)
	default:
		return false, fmt.Errorf("unknown condition node %T", c)
	}
}

func (e *Evaluator) relaxedQuantifier(q domain.Quantifier, s state.State, b Bindings) (bool, error) {
	if !e.table.HasType(q.Variable.Type) {
		return false, &domain.UndeclaredTypeError{Type: q.Variable.Type, Context: "quantified variable " + q.Variable.Name}
	}

	prev, shadowed := b[q.Variable.Name]
	defer func() {
		if shadowed {
			b[q.Variable.Name] = prev
		} else {
			delete(b, q.Variable.Name)
		}
	}()

	for _, obj := range e.table.ObjectsOfType(q.Variable.Type) {
		b[q.Variable.Name] = obj.Name
		ok, err := e.HoldsRelaxed(q.Body, s, b)
		if err != nil {
			return false, err
		}
		if q.Universal && !ok {
			return false, nil
		}
		if !q.Universal && ok {
			return true, nil
		}
	}
	return q.Universal, nil
}

// CollectRelaxedAdds gathers every atom an effect could add under the
// relaxation: unconditional adds plus conditional adds whose guard
// relaxed-holds. Deletes are ignored entirely.
func (e *Evaluator) CollectRelaxedAdds(eff domain.Effect, s state.State, b Bindings) ([]symbols.Handle, error) {
	adds, err := e.collectAtoms(eff.Adds, b, nil)
	if err != nil {
		return nil, err
	}

	for _, cond := range eff.Conditionals {
		if !e.table.HasType(cond.Variable.Type) {
			return nil, &domain.UndeclaredTypeError{Type: cond.Variable.Type, Context: "quantified variable " + cond.Variable.Name}
		}
		prev, shadowed := b[cond.Variable.Name]
		for _, obj := range e.table.ObjectsOfType(cond.Variable.Type) {
			b[cond.Variable.Name] = obj.Name
			ok, herr := e.HoldsRelaxed(cond.When, s, b)
			if herr != nil {
				err = herr
				break
			}
			if !ok {
				continue
			}
			if adds, err = e.collectAtoms(cond.Adds, b, adds); err != nil {
				break
			}
		}
		if shadowed {
			b[cond.Variable.Name] = prev
		} else {
			delete(b, cond.Variable.Name)
		}
		if err != nil {
			return nil, err
		}
	}

	return adds, nil
}
