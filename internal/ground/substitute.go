package ground

import "github.com/aretw0/strategos/pkg/domain"

// substituteCondition replaces parameter variables with constant terms.
// Quantifier-bound variables are left alone: a quantifier re-binding a
// parameter name shadows it for its whole subtree.
func substituteCondition(c domain.Condition, sub map[string]string) domain.Condition {
	switch n := c.(type) {
	case nil:
		return nil
	case domain.Atom:
		return substituteAtom(n, sub)
	case domain.And:
		children := make([]domain.Condition, len(n.Children))
		for i, child := range n.Children {
			children[i] = substituteCondition(child, sub)
		}
		return domain.And{Children: children}
	case domain.Not:
		return domain.Not{Child: substituteCondition(n.Child, sub)}
	case domain.Equal:
		return domain.Equal{Left: substituteTerm(n.Left, sub), Right: substituteTerm(n.Right, sub)}
	case domain.Quantifier:
		inner := sub
		if _, clash := sub[n.Variable.Name]; clash {
			inner = make(map[string]string, len(sub))
			for k, v := range sub {
				if k != n.Variable.Name {
					inner[k] = v
				}
			}
		}
		return domain.Quantifier{Universal: n.Universal, Variable: n.Variable, Body: substituteCondition(n.Body, inner)}
	default:
		return c
	}
}

func substituteEffect(e domain.Effect, sub map[string]string) domain.Effect {
	out := domain.Effect{
		Adds: substituteAtoms(e.Adds, sub),
		Dels: substituteAtoms(e.Dels, sub),
	}
	for _, cond := range e.Conditionals {
		inner := sub
		if _, clash := sub[cond.Variable.Name]; clash {
			inner = make(map[string]string, len(sub))
			for k, v := range sub {
				if k != cond.Variable.Name {
					inner[k] = v
				}
			}
		}
		out.Conditionals = append(out.Conditionals, domain.ConditionalEffect{
			Variable: cond.Variable,
			When:     substituteCondition(cond.When, inner),
			Adds:     substituteAtoms(cond.Adds, inner),
			Dels:     substituteAtoms(cond.Dels, inner),
		})
	}
	return out
}

func substituteAtoms(atoms []domain.Atom, sub map[string]string) []domain.Atom {
	if atoms == nil {
		return nil
	}
	out := make([]domain.Atom, len(atoms))
	for i, a := range atoms {
		out[i] = substituteAtom(a, sub)
	}
	return out
}

func substituteAtom(a domain.Atom, sub map[string]string) domain.Atom {
	args := make([]domain.Term, len(a.Args))
	for i, t := range a.Args {
		args[i] = substituteTerm(t, sub)
	}
	return domain.Atom{Predicate: a.Predicate, Args: args}
}

func substituteTerm(t domain.Term, sub map[string]string) domain.Term {
	if t.Variable {
		if obj, ok := sub[t.Name]; ok {
			return domain.Const(obj)
		}
	}
	return t
}
