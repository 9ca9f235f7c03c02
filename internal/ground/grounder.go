// Package ground turns a model/problem pair into the fixed structures a
// search runs over: the symbol table, the interned atom universe, the ground
// action list, the initial state, and the goal. Everything it produces is
// read-only afterward and safe to share across search workers.
package ground

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/state"
	"github.com/aretw0/strategos/pkg/symbols"
)

// Task is the grounded planning session context. It is built once per
// problem, before search begins, and never mutated afterward.
type Task struct {
	Table   *symbols.Table
	Space   *symbols.Space
	Actions []*domain.GroundAction
	Init    state.State
	Goal    domain.Condition
}

// NewTask validates the model and problem, interns the well-typed atom
// universe, and expands every action schema over the object cross-product.
// Structural errors (undeclared types or predicates, arity or type
// mismatches) abort here, before any search starts. No precondition
// filtering happens: even actions whose precondition can never hold are
// emitted, and the emission order is stable under schema and object
// declaration order so plans are reproducible across runs.
func NewTask(model *domain.Model, problem *domain.Problem, logger *slog.Logger) (*Task, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	table, err := symbols.NewTable(model.Types, problem.Objects)
	if err != nil {
		return nil, err
	}

	v := &validator{model: model, table: table}
	if err := v.validateModel(); err != nil {
		return nil, err
	}

	space := internUniverse(model, table)

	actions, err := groundActions(model, table)
	if err != nil {
		return nil, err
	}

	init, err := groundInit(problem.Init, model, table, space)
	if err != nil {
		return nil, err
	}

	if err := v.validateCondition(problem.Goal, map[string]string{}, "goal"); err != nil {
		return nil, err
	}

	logger.Debug("grounding complete",
		"atoms", space.Len(),
		"actions", len(actions),
		"init_atoms", init.Len(),
		"elapsed", time.Since(start))

	return &Task{
		Table:   table,
		Space:   space,
		Actions: actions,
		Init:    init,
		Goal:    problem.Goal,
	}, nil
}

// internUniverse pre-interns every well-typed ground atom so the atom space
// needs no locking during search: membership tests during evaluation are pure
// lookups.
func internUniverse(model *domain.Model, table *symbols.Table) *symbols.Space {
	space := symbols.NewSpace()
	for _, pred := range model.Predicates {
		domains := make([][]domain.Object, len(pred.ArgTypes))
		for i, t := range pred.ArgTypes {
			domains[i] = table.ObjectsOfType(t)
		}
		args := make([]string, len(pred.ArgTypes))
		forEachCombination(domains, args, func(combo []string) {
			space.Intern(pred.Name, combo)
		})
	}
	return space
}

// forEachCombination walks the cross-product of the object domains in
// declaration order, the last position varying fastest.
func forEachCombination(domains [][]domain.Object, scratch []string, visit func([]string)) {
	var rec func(i int)
	rec = func(i int) {
		if i == len(domains) {
			visit(scratch)
			return
		}
		for _, obj := range domains[i] {
			scratch[i] = obj.Name
			rec(i + 1)
		}
	}
	rec(0)
}

func groundActions(model *domain.Model, table *symbols.Table) ([]*domain.GroundAction, error) {
	var out []*domain.GroundAction
	for i := range model.Actions {
		schema := &model.Actions[i]
		domains := make([][]domain.Object, len(schema.Parameters))
		for j, p := range schema.Parameters {
			if !table.HasType(p.Type) {
				return nil, &domain.UndeclaredTypeError{Type: p.Type, Context: fmt.Sprintf("parameter %s of action %s", p.Name, schema.Name)}
			}
			domains[j] = table.ObjectsOfType(p.Type)
		}

		scratch := make([]string, len(schema.Parameters))
		forEachCombination(domains, scratch, func(combo []string) {
			sub := make(map[string]string, len(combo))
			for j, p := range schema.Parameters {
				sub[p.Name] = combo[j]
			}
			out = append(out, &domain.GroundAction{
				Schema:       schema.Name,
				Args:         append([]string(nil), combo...),
				Precondition: substituteCondition(schema.Precondition, sub),
				Effect:       substituteEffect(schema.Effect, sub),
			})
		})
	}
	return out, nil
}

func groundInit(init []domain.Atom, model *domain.Model, table *symbols.Table, space *symbols.Space) (state.State, error) {
	var atoms []symbols.Handle
	for _, a := range init {
		pred, ok := model.Predicate(a.Predicate)
		if !ok {
			return state.State{}, &domain.UndeclaredPredicateError{Predicate: a.Predicate}
		}
		if len(a.Args) != len(pred.ArgTypes) {
			return state.State{}, &domain.ArityMismatchError{Predicate: a.Predicate, Want: len(pred.ArgTypes), Got: len(a.Args)}
		}
		args := make([]string, len(a.Args))
		for i, t := range a.Args {
			if t.Variable {
				return state.State{}, &domain.UnboundVariableError{Variable: t.Name}
			}
			obj, ok := table.Object(t.Name)
			if !ok {
				return state.State{}, fmt.Errorf("initial atom %s: unknown object %q", a.String(), t.Name)
			}
			if !table.Satisfies(obj.Type, pred.ArgTypes[i]) {
				return state.State{}, &domain.TypeMismatchError{Symbol: obj.Name, Want: pred.ArgTypes[i], Got: obj.Type, Position: i}
			}
			args[i] = t.Name
		}
		h, ok := space.Lookup(a.Predicate, args)
		if !ok {
			return state.State{}, fmt.Errorf("initial atom %s outside the typed universe", a.String())
		}
		atoms = append(atoms, h)
	}
	return state.New(atoms), nil
}
