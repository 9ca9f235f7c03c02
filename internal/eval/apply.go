package eval

import (
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
	"github.com/aretw0/strategos/pkg/symbols"
)

// Apply computes the successor state for an effect. Application is strictly
// two-phase: every directive, including every forall binding and when guard,
// is evaluated against the pre-action state to collect the full add and
// delete sets, and only then is the state transformed (deletes first, adds
// second, so an atom both deleted and added ends up true). Conditional
// effects therefore always see a consistent snapshot, never each other's
// changes.
func (e *Evaluator) Apply(eff domain.Effect, s state.State, b Bindings) (state.State, error) {
	adds, dels, err := e.Collect(eff, s, b)
	if err != nil {
		return state.State{}, err
	}
	return s.Apply(dels, adds), nil
}

// Collect evaluates an effect against the pre-action state and returns the
// full add and delete handle sets without committing them.
func (e *Evaluator) Collect(eff domain.Effect, s state.State, b Bindings) (adds, dels []symbols.Handle, err error) {
	if adds, err = e.collectAtoms(eff.Adds, b, adds); err != nil {
		return nil, nil, err
	}
	if dels, err = e.collectAtoms(eff.Dels, b, dels); err != nil {
		return nil, nil, err
	}

	for _, cond := range eff.Conditionals {
		if !e.table.HasType(cond.Variable.Type) {
			return nil, nil, &domain.UndeclaredTypeError{Type: cond.Variable.Type, Context: "quantified variable " + cond.Variable.Name}
		}

		prev, shadowed := b[cond.Variable.Name]
		for _, obj := range e.table.ObjectsOfType(cond.Variable.Type) {
			b[cond.Variable.Name] = obj.Name
			ok, herr := e.Holds(cond.When, s, b)
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
			if dels, err = e.collectAtoms(cond.Dels, b, dels); err != nil {
				break
			}
		}
		if shadowed {
			b[cond.Variable.Name] = prev
		} else {
			delete(b, cond.Variable.Name)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	return adds, dels, nil
}

func (e *Evaluator) collectAtoms(atoms []domain.Atom, b Bindings, out []symbols.Handle) ([]symbols.Handle, error) {
	for _, a := range atoms {
		args, err := e.resolveArgs(a.Args, b)
		if err != nil {
			return nil, err
		}
		h, ok := e.space.Lookup(a.Predicate, args)
		if !ok {
			// The grounder interns the full well-typed universe, so a miss
			// here means the effect references an atom outside it.
			return nil, &domain.UndeclaredPredicateError{Predicate: a.Predicate}
		}
		out = append(out, h)
	}
	return out, nil
}
