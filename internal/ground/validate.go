package ground

import (
	"fmt"

	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/symbols"
)

// validator checks a model (and the problem goal) for structural soundness
// before grounding begins: every referenced type and predicate must be
// declared, arities must match, and every term must satisfy the declared
// argument type. These checks run once; search never sees a malformed tree.
type validator struct {
	model *domain.Model
	table *symbols.Table
}

func (v *validator) validateModel() error {
	seen := map[string]bool{}
	for _, p := range v.model.Predicates {
		if seen[p.Name] {
			return fmt.Errorf("predicate %q declared more than once", p.Name)
		}
		seen[p.Name] = true
		for i, t := range p.ArgTypes {
			if !v.table.HasType(t) {
				return &domain.UndeclaredTypeError{Type: t, Context: fmt.Sprintf("argument %d of predicate %s", i, p.Name)}
			}
		}
	}

	for i := range v.model.Actions {
		action := &v.model.Actions[i]
		env := map[string]string{}
		for _, p := range action.Parameters {
			if !v.table.HasType(p.Type) {
				return &domain.UndeclaredTypeError{Type: p.Type, Context: fmt.Sprintf("parameter %s of action %s", p.Name, action.Name)}
			}
			env[p.Name] = p.Type
		}
		where := "action " + action.Name
		if err := v.validateCondition(action.Precondition, env, where); err != nil {
			return err
		}
		if err := v.validateEffect(action.Effect, env, where); err != nil {
			return err
		}
	}
	return nil
}

// validateCondition walks a condition tree with an environment mapping bound
// variables to their types. Quantifiers extend (and may shadow within) the
// environment for their body.
func (v *validator) validateCondition(c domain.Condition, env map[string]string, where string) error {
	switch n := c.(type) {
	case nil:
		return nil
	case domain.Atom:
		return v.validateAtom(n, env, where)
	case domain.And:
		for _, child := range n.Children {
			if err := v.validateCondition(child, env, where); err != nil {
				return err
			}
		}
		return nil
	case domain.Not:
		return v.validateCondition(n.Child, env, where)
	case domain.Equal:
		if _, err := v.termType(n.Left, env); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		if _, err := v.termType(n.Right, env); err != nil {
			return fmt.Errorf("%s: %w", where, err)
		}
		return nil
	case domain.Quantifier:
		if !v.table.HasType(n.Variable.Type) {
			return &domain.UndeclaredTypeError{Type: n.Variable.Type, Context: where + ", quantified variable " + n.Variable.Name}
		}
		prev, shadowed := env[n.Variable.Name]
		env[n.Variable.Name] = n.Variable.Type
		err := v.validateCondition(n.Body, env, where)
		if shadowed {
			env[n.Variable.Name] = prev
		} else {
			delete(env, n.Variable.Name)
		}
		return err
	default:
		return fmt.Errorf("%s: unknown condition node %T", where, c)
	}
}

func (v *validator) validateEffect(e domain.Effect, env map[string]string, where string) error {
	for _, a := range append(append([]domain.Atom{}, e.Adds...), e.Dels...) {
		if err := v.validateAtom(a, env, where); err != nil {
			return err
		}
	}
	for _, cond := range e.Conditionals {
		if !v.table.HasType(cond.Variable.Type) {
			return &domain.UndeclaredTypeError{Type: cond.Variable.Type, Context: where + ", quantified variable " + cond.Variable.Name}
		}
		prev, shadowed := env[cond.Variable.Name]
		env[cond.Variable.Name] = cond.Variable.Type
		err := v.validateCondition(cond.When, env, where)
		if err == nil {
			for _, a := range append(append([]domain.Atom{}, cond.Adds...), cond.Dels...) {
				if err = v.validateAtom(a, env, where); err != nil {
					break
				}
			}
		}
		if shadowed {
			env[cond.Variable.Name] = prev
		} else {
			delete(env, cond.Variable.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) validateAtom(a domain.Atom, env map[string]string, where string) error {
	pred, ok := v.model.Predicate(a.Predicate)
	if !ok {
		return &domain.UndeclaredPredicateError{Predicate: a.Predicate}
	}
	if len(a.Args) != len(pred.ArgTypes) {
		return &domain.ArityMismatchError{Predicate: a.Predicate, Want: len(pred.ArgTypes), Got: len(a.Args)}
	}
	for i, t := range a.Args {
		got, err := v.termType(t, env)
		if err != nil {
			return fmt.Errorf("%s, atom %s: %w", where, a.String(), err)
		}
		if !v.table.Satisfies(got, pred.ArgTypes[i]) {
			return &domain.TypeMismatchError{Symbol: t.Name, Want: pred.ArgTypes[i], Got: got, Position: i}
		}
	}
	return nil
}

func (v *validator) termType(t domain.Term, env map[string]string) (string, error) {
	if t.Variable {
		typ, ok := env[t.Name]
		if !ok {
			return "", &domain.UnboundVariableError{Variable: t.Name}
		}
		return typ, nil
	}
	obj, ok := v.table.Object(t.Name)
	if !ok {
		return "", fmt.Errorf("unknown object %q", t.Name)
	}
	return obj.Type, nil
}
