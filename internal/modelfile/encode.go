package modelfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/strategos/pkg/domain"
)

// EncodeModel renders a domain model as a YAML document that ParseModel
// accepts back.
func EncodeModel(m *domain.Model) ([]byte, error) {
	doc := modelDoc{Name: m.Name}
	for _, t := range m.Types {
		doc.Types = append(doc.Types, typeDoc{Name: t.Name, Parents: t.Parents})
	}
	for _, p := range m.Predicates {
		doc.Predicates = append(doc.Predicates, predicateDoc{Name: p.Name, Args: p.ArgTypes})
	}
	for _, a := range m.Actions {
		act := actionDoc{Name: a.Name}
		for _, p := range a.Parameters {
			act.Parameters = append(act.Parameters, paramDoc{Name: p.Name, Type: p.Type})
		}
		pre, err := encodeCondition(a.Precondition)
		if err != nil {
			return nil, fmt.Errorf("action %s: precondition: %w", a.Name, err)
		}
		act.Precondition = pre
		act.Effect = encodeEffect(a.Effect)
		doc.Actions = append(doc.Actions, act)
	}
	return yaml.Marshal(doc)
}

// EncodeProblem renders a problem model as a YAML document that ParseProblem
// accepts back.
func EncodeProblem(p *domain.Problem) ([]byte, error) {
	doc := problemDoc{Name: p.Name, Domain: p.Domain}
	for _, o := range p.Objects {
		doc.Objects = append(doc.Objects, objectDoc{Name: o.Name, Type: o.Type})
	}
	for _, a := range p.Init {
		doc.Init = append(doc.Init, encodeAtom(a))
	}
	goal, err := encodeCondition(p.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	doc.Goal = goal
	return yaml.Marshal(doc)
}

func encodeCondition(c domain.Condition) (map[string]any, error) {
	switch n := c.(type) {
	case nil:
		return nil, nil
	case domain.Atom:
		return map[string]any{"atom": atomToMap(n)}, nil
	case domain.And:
		items := make([]any, 0, len(n.Children))
		for _, child := range n.Children {
			sub, err := encodeCondition(child)
			if err != nil {
				return nil, err
			}
			items = append(items, sub)
		}
		return map[string]any{"and": items}, nil
	case domain.Not:
		sub, err := encodeCondition(n.Child)
		if err != nil {
			return nil, err
		}
		return map[string]any{"not": sub}, nil
	case domain.Equal:
		return map[string]any{"eq": []any{n.Left.String(), n.Right.String()}}, nil
	case domain.Quantifier:
		sub, err := encodeCondition(n.Body)
		if err != nil {
			return nil, err
		}
		key := "exists"
		if n.Universal {
			key = "forall"
		}
		return map[string]any{key: map[string]any{
			"var":   n.Variable.Name,
			"type":  n.Variable.Type,
			"where": sub,
		}}, nil
	default:
		return nil, fmt.Errorf("unsupported condition node %T", c)
	}
}

func encodeEffect(e domain.Effect) effectDoc {
	doc := effectDoc{}
	for _, a := range e.Adds {
		doc.Add = append(doc.Add, encodeAtom(a))
	}
	for _, a := range e.Dels {
		doc.Del = append(doc.Del, encodeAtom(a))
	}
	for _, ce := range e.Conditionals {
		f := forallDoc{Var: ce.Variable.Name, Type: ce.Variable.Type}
		// Guards come from the same closed condition grammar, so this
		// cannot fail for effects built through the public constructors.
		f.When, _ = encodeCondition(ce.When)
		for _, a := range ce.Adds {
			f.Add = append(f.Add, encodeAtom(a))
		}
		for _, a := range ce.Dels {
			f.Del = append(f.Del, encodeAtom(a))
		}
		doc.Forall = append(doc.Forall, f)
	}
	return doc
}

func encodeAtom(a domain.Atom) atomDoc {
	args := make([]string, len(a.Args))
	for i, t := range a.Args {
		args[i] = t.String()
	}
	return atomDoc{Pred: a.Predicate, Args: args}
}

func atomToMap(a domain.Atom) map[string]any {
	d := encodeAtom(a)
	m := map[string]any{"pred": d.Pred}
	if len(d.Args) > 0 {
		m["args"] = d.Args
	}
	return m
}
