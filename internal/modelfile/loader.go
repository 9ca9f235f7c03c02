// Package modelfile reads domain and problem models from YAML documents for
// the CLI harness. The format is a plain serialization of the structures in
// pkg/domain, not a planner syntax of its own: variables are ?-prefixed,
// conditions are single-key maps mirroring the condition node types.
//
//	precondition:
//	  and:
//	    - atom: {pred: at_robot, args: ["?r", "?from"]}
//	    - not:
//	        exists: {var: p, type: person, where: {atom: {pred: at_person, args: ["?p", "?to"]}}}
package modelfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/strategos/pkg/domain"
)

type modelDoc struct {
	Name       string         `yaml:"name"`
	Types      []typeDoc      `yaml:"types"`
	Predicates []predicateDoc `yaml:"predicates"`
	Actions    []actionDoc    `yaml:"actions"`
}

type typeDoc struct {
	Name    string   `yaml:"name" mapstructure:"name"`
	Parents []string `yaml:"parents" mapstructure:"parents"`
}

type predicateDoc struct {
	Name string   `yaml:"name" mapstructure:"name"`
	Args []string `yaml:"args" mapstructure:"args"`
}

type actionDoc struct {
	Name         string         `yaml:"name"`
	Parameters   []paramDoc     `yaml:"parameters"`
	Precondition map[string]any `yaml:"precondition"`
	Effect       effectDoc      `yaml:"effect"`
}

type paramDoc struct {
	Name string `yaml:"name" mapstructure:"name"`
	Type string `yaml:"type" mapstructure:"type"`
}

type effectDoc struct {
	Add    []atomDoc   `yaml:"add"`
	Del    []atomDoc   `yaml:"del"`
	Forall []forallDoc `yaml:"forall"`
}

type atomDoc struct {
	Pred string   `yaml:"pred" mapstructure:"pred"`
	Args []string `yaml:"args" mapstructure:"args"`
}

type forallDoc struct {
	Var  string         `yaml:"var"`
	Type string         `yaml:"type"`
	When map[string]any `yaml:"when"`
	Add  []atomDoc      `yaml:"add"`
	Del  []atomDoc      `yaml:"del"`
}

type quantDoc struct {
	Var   string         `mapstructure:"var"`
	Type  string         `mapstructure:"type"`
	Where map[string]any `mapstructure:"where"`
}

type problemDoc struct {
	Name    string         `yaml:"name"`
	Domain  string         `yaml:"domain"`
	Objects []objectDoc    `yaml:"objects"`
	Init    []atomDoc      `yaml:"init"`
	Goal    map[string]any `yaml:"goal"`
}

type objectDoc struct {
	Name string `yaml:"name" mapstructure:"name"`
	Type string `yaml:"type" mapstructure:"type"`
}

// LoadModel reads a domain model from a YAML file.
func LoadModel(path string) (*domain.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read domain model: %w", err)
	}
	return ParseModel(data)
}

// ParseModel decodes a domain model from YAML bytes.
func ParseModel(data []byte) (*domain.Model, error) {
	var doc modelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse domain model: %w", err)
	}

	m := &domain.Model{Name: doc.Name}
	for _, t := range doc.Types {
		m.Types = append(m.Types, domain.Type{Name: t.Name, Parents: t.Parents})
	}
	for _, p := range doc.Predicates {
		m.Predicates = append(m.Predicates, domain.PredicateSchema{Name: p.Name, ArgTypes: p.Args})
	}
	for _, a := range doc.Actions {
		schema := domain.ActionSchema{Name: a.Name}
		for _, p := range a.Parameters {
			schema.Parameters = append(schema.Parameters, domain.Parameter{Name: p.Name, Type: p.Type})
		}
		pre, err := decodeCondition(a.Precondition)
		if err != nil {
			return nil, fmt.Errorf("action %s: precondition: %w", a.Name, err)
		}
		schema.Precondition = pre
		eff, err := decodeEffect(a.Effect)
		if err != nil {
			return nil, fmt.Errorf("action %s: effect: %w", a.Name, err)
		}
		schema.Effect = eff
		m.Actions = append(m.Actions, schema)
	}
	return m, nil
}

// LoadProblem reads a problem model from a YAML file.
func LoadProblem(path string) (*domain.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem model: %w", err)
	}
	return ParseProblem(data)
}

// ParseProblem decodes a problem model from YAML bytes.
func ParseProblem(data []byte) (*domain.Problem, error) {
	var doc problemDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse problem model: %w", err)
	}

	p := &domain.Problem{Name: doc.Name, Domain: doc.Domain}
	for _, o := range doc.Objects {
		p.Objects = append(p.Objects, domain.Object{Name: o.Name, Type: o.Type})
	}
	for _, a := range doc.Init {
		atom, err := decodeAtom(a)
		if err != nil {
			return nil, fmt.Errorf("init: %w", err)
		}
		p.Init = append(p.Init, atom)
	}
	goal, err := decodeCondition(doc.Goal)
	if err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	p.Goal = goal
	return p, nil
}

// decodeCondition interprets a single-key map as a condition node. A nil or
// empty map is the vacuous condition.
func decodeCondition(raw map[string]any) (domain.Condition, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) > 1 {
		return nil, fmt.Errorf("condition must have exactly one key, got %d", len(raw))
	}

	for key, value := range raw {
		switch key {
		case "atom":
			var doc atomDoc
			if err := mapstructure.Decode(value, &doc); err != nil {
				return nil, fmt.Errorf("atom: %w", err)
			}
			return decodeAtom(doc)
		case "and":
			items, ok := value.([]any)
			if !ok {
				return nil, fmt.Errorf("and expects a list")
			}
			var children []domain.Condition
			for i, item := range items {
				sub, ok := item.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("and[%d]: expected a condition map", i)
				}
				child, err := decodeCondition(sub)
				if err != nil {
					return nil, fmt.Errorf("and[%d]: %w", i, err)
				}
				children = append(children, child)
			}
			return domain.And{Children: children}, nil
		case "not":
			sub, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("not expects a condition map")
			}
			child, err := decodeCondition(sub)
			if err != nil {
				return nil, fmt.Errorf("not: %w", err)
			}
			return domain.Not{Child: child}, nil
		case "eq":
			items, ok := value.([]any)
			if !ok || len(items) != 2 {
				return nil, fmt.Errorf("eq expects a list of two terms")
			}
			left, lok := items[0].(string)
			right, rok := items[1].(string)
			if !lok || !rok {
				return nil, fmt.Errorf("eq terms must be strings")
			}
			return domain.Equal{Left: parseTerm(left), Right: parseTerm(right)}, nil
		case "exists", "forall":
			var doc quantDoc
			if err := mapstructure.Decode(value, &doc); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			body, err := decodeCondition(doc.Where)
			if err != nil {
				return nil, fmt.Errorf("%s: where: %w", key, err)
			}
			return domain.Quantifier{
				Universal: key == "forall",
				Variable:  domain.Parameter{Name: doc.Var, Type: doc.Type},
				Body:      body,
			}, nil
		default:
			return nil, fmt.Errorf("unknown condition node %q", key)
		}
	}
	return nil, nil // unreachable
}

func decodeEffect(doc effectDoc) (domain.Effect, error) {
	eff := domain.Effect{}
	var err error
	if eff.Adds, err = decodeAtoms(doc.Add); err != nil {
		return eff, err
	}
	if eff.Dels, err = decodeAtoms(doc.Del); err != nil {
		return eff, err
	}
	for _, f := range doc.Forall {
		when, err := decodeCondition(f.When)
		if err != nil {
			return eff, fmt.Errorf("forall %s: when: %w", f.Var, err)
		}
		cond := domain.ConditionalEffect{
			Variable: domain.Parameter{Name: f.Var, Type: f.Type},
			When:     when,
		}
		if cond.Adds, err = decodeAtoms(f.Add); err != nil {
			return eff, err
		}
		if cond.Dels, err = decodeAtoms(f.Del); err != nil {
			return eff, err
		}
		eff.Conditionals = append(eff.Conditionals, cond)
	}
	return eff, nil
}

func decodeAtoms(docs []atomDoc) ([]domain.Atom, error) {
	var out []domain.Atom
	for _, d := range docs {
		a, err := decodeAtom(d)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func decodeAtom(doc atomDoc) (domain.Atom, error) {
	if doc.Pred == "" {
		return domain.Atom{}, fmt.Errorf("atom is missing a predicate name")
	}
	args := make([]domain.Term, len(doc.Args))
	for i, s := range doc.Args {
		args[i] = parseTerm(s)
	}
	return domain.Atom{Predicate: doc.Pred, Args: args}, nil
}

// parseTerm maps "?x" to a variable and anything else to an object constant.
func parseTerm(s string) domain.Term {
	if strings.HasPrefix(s, "?") {
		return domain.Var(strings.TrimPrefix(s, "?"))
	}
	return domain.Const(s)
}
