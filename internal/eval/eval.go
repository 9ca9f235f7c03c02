// Package eval implements condition evaluation and effect application against
// planning states. Quantifiers are a closed-world scan over the symbol
// table's typed object lists; evaluation is side-effect free.
package eval

import (
	"fmt"

	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
	"github.com/aretw0/strategos/pkg/symbols"
)

// Bindings maps quantifier variables to object names during evaluation.
// Binding is done with save/restore so an inner quantified variable shadows
// an outer one of the same name within its subtree only.
type Bindings map[string]string

// Evaluator evaluates conditions and applies effects for one planning
// session. It only reads from the table and space, so a single Evaluator is
// safe to share across search workers.
type Evaluator struct {
	table *symbols.Table
	space *symbols.Space
}

// New creates an evaluator over the session's symbol table and atom space.
func New(table *symbols.Table, space *symbols.Space) *Evaluator {
	return &Evaluator{table: table, space: space}
}

// Holds reports whether the condition is true in the state under the given
// bindings. A nil condition is vacuously true. Errors indicate a malformed
// tree (unbound variable, unknown quantifier type), never a normal false.
func (e *Evaluator) Holds(c domain.Condition, s state.State, b Bindings) (bool, error) {
	switch n := c.(type) {
	case nil:
		return true, nil
	case domain.Atom:
		return e.holdsAtom(n, s, b)
	case domain.And:
		for _, child := range n.Children {
			ok, err := e.Holds(child, s, b)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case domain.Not:
		ok, err := e.Holds(n.Child, s, b)
		return !ok && err == nil, err
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
		return e.holdsQuantifier(n, s, b)
	default:
		return false, fmt.Errorf("unknown condition node %T", c)
	}
}

func (e *Evaluator) holdsAtom(a domain.Atom, s state.State, b Bindings) (bool, error) {
	args, err := e.resolveArgs(a.Args, b)
	if err != nil {
		return false, err
	}
	h, ok := e.space.Lookup(a.Predicate, args)
	if !ok {
		// Outside the interned universe: false under the closed world.
		return false, nil
	}
	return s.Contains(h), nil
}

func (e *Evaluator) holdsQuantifier(q domain.Quantifier, s state.State, b Bindings) (bool, error) {
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
		ok, err := e.Holds(q.Body, s, b)
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
	// Universal is vacuously true over an empty domain; existential false.
	return q.Universal, nil
}

func (e *Evaluator) resolve(t domain.Term, b Bindings) (string, error) {
	if !t.Variable {
		return t.Name, nil
	}
	name, ok := b[t.Name]
	if !ok {
		return "", &domain.UnboundVariableError{Variable: t.Name}
	}
	return name, nil
}

func (e *Evaluator) resolveArgs(terms []domain.Term, b Bindings) ([]string, error) {
	args := make([]string, len(terms))
	for i, t := range terms {
		name, err := e.resolve(t, b)
		if err != nil {
			return nil, err
		}
		args[i] = name
	}
	return args, nil
}
