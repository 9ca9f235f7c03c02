package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos/internal/logging"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/household"
)

func atomG(pred string, args ...domain.Term) domain.Atom {
	return domain.Atom{Predicate: pred, Args: args}
}

// ferryModel is a compact fixture: one action over three typed parameters.
func ferryModel() *domain.Model {
	v := domain.Var
	return &domain.Model{
		Name: "ferry",
		Types: []domain.Type{
			{Name: "boat"},
			{Name: "car"},
			{Name: "shore"},
		},
		Predicates: []domain.PredicateSchema{
			{Name: "at_boat", ArgTypes: []string{"boat", "shore"}},
			{Name: "at_car", ArgTypes: []string{"car", "shore"}},
			{Name: "aboard", ArgTypes: []string{"car", "boat"}},
		},
		Actions: []domain.ActionSchema{{
			Name: "board",
			Parameters: []domain.Parameter{
				{Name: "c", Type: "car"},
				{Name: "b", Type: "boat"},
				{Name: "s", Type: "shore"},
			},
			Precondition: domain.NewAnd(
				atomG("at_car", v("c"), v("s")),
				atomG("at_boat", v("b"), v("s")),
			),
			Effect: domain.Effect{
				Dels: []domain.Atom{atomG("at_car", v("c"), v("s"))},
				Adds: []domain.Atom{atomG("aboard", v("c"), v("b"))},
			},
		}},
	}
}

func ferryProblem() *domain.Problem {
	c := domain.Const
	return &domain.Problem{
		Name:   "crossing",
		Domain: "ferry",
		Objects: []domain.Object{
			{Name: "b1", Type: "boat"},
			{Name: "car1", Type: "car"},
			{Name: "car2", Type: "car"},
			{Name: "north", Type: "shore"},
			{Name: "south", Type: "shore"},
		},
		Init: []domain.Atom{
			atomG("at_boat", c("b1"), c("north")),
			atomG("at_car", c("car1"), c("north")),
		},
		Goal: atomG("aboard", c("car1"), c("b1")),
	}
}

func TestNewTaskGroundActionCount(t *testing.T) {
	task, err := NewTask(ferryModel(), ferryProblem(), logging.NewNop())
	require.NoError(t, err)

	// |car| * |boat| * |shore| = 2 * 1 * 2
	assert.Len(t, task.Actions, 4)

	// Universe: at_boat 1*2 + at_car 2*2 + aboard 2*1 = 8 atoms.
	assert.Equal(t, 8, task.Space.Len())

	assert.Equal(t, 2, task.Init.Len())
}

func TestNewTaskStableOrder(t *testing.T) {
	// Last parameter varies fastest, objects in declaration order.
	task, err := NewTask(ferryModel(), ferryProblem(), logging.NewNop())
	require.NoError(t, err)

	var names []string
	for _, a := range task.Actions {
		names = append(names, a.String())
	}
	assert.Equal(t, []string{
		"(board car1 b1 north)",
		"(board car1 b1 south)",
		"(board car2 b1 north)",
		"(board car2 b1 south)",
	}, names)

	// A second grounding yields the identical order.
	task2, err := NewTask(ferryModel(), ferryProblem(), logging.NewNop())
	require.NoError(t, err)
	for i, a := range task2.Actions {
		assert.Equal(t, names[i], a.String())
	}
}

func TestNewTaskGroundActionsAreClosed(t *testing.T) {
	task, err := NewTask(ferryModel(), ferryProblem(), logging.NewNop())
	require.NoError(t, err)

	// Substitution leaves no free variables behind.
	for _, a := range task.Actions {
		assertNoVariables(t, a.Precondition)
		for _, add := range a.Effect.Adds {
			for _, term := range add.Args {
				assert.False(t, term.Variable, "free variable in %s", a)
			}
		}
	}
}

func assertNoVariables(t *testing.T, c domain.Condition) {
	t.Helper()
	switch n := c.(type) {
	case nil:
	case domain.Atom:
		for _, term := range n.Args {
			assert.False(t, term.Variable, "free variable %s", term.Name)
		}
	case domain.And:
		for _, child := range n.Children {
			assertNoVariables(t, child)
		}
	case domain.Not:
		assertNoVariables(t, n.Child)
	case domain.Equal:
		// Quantified variables may legitimately appear under a quantifier;
		// plain equality over parameters must be closed.
	case domain.Quantifier:
		// Body may reference the quantified variable.
	}
}

func TestNewTaskErrorTaxonomy(t *testing.T) {
	c := domain.Const

	tests := []struct {
		name    string
		mutate  func(m *domain.Model, p *domain.Problem)
		errType any
	}{
		{
			name: "undeclared type on object",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Objects = append(p.Objects, domain.Object{Name: "x", Type: "plane"})
			},
			errType: new(*domain.UndeclaredTypeError),
		},
		{
			name: "duplicate object",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Objects = append(p.Objects, domain.Object{Name: "car1", Type: "car"})
			},
			errType: new(*domain.DuplicateObjectError),
		},
		{
			name: "undeclared predicate in init",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Init = append(p.Init, atomG("sinking", c("b1")))
			},
			errType: new(*domain.UndeclaredPredicateError),
		},
		{
			name: "arity mismatch in init",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Init = append(p.Init, atomG("at_boat", c("b1")))
			},
			errType: new(*domain.ArityMismatchError),
		},
		{
			name: "type mismatch in init",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Init = append(p.Init, atomG("at_boat", c("car1"), c("north")))
			},
			errType: new(*domain.TypeMismatchError),
		},
		{
			name: "variable in init",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Init = append(p.Init, atomG("at_boat", domain.Var("b"), c("north")))
			},
			errType: new(*domain.UnboundVariableError),
		},
		{
			name: "undeclared predicate in goal",
			mutate: func(m *domain.Model, p *domain.Problem) {
				p.Goal = atomG("sinking", c("b1"))
			},
			errType: new(*domain.UndeclaredPredicateError),
		},
		{
			name: "undeclared parameter type",
			mutate: func(m *domain.Model, p *domain.Problem) {
				m.Actions[0].Parameters[0].Type = "plane"
			},
			errType: new(*domain.UndeclaredTypeError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model, problem := ferryModel(), ferryProblem()
			tt.mutate(model, problem)

			_, err := NewTask(model, problem, logging.NewNop())
			require.Error(t, err)
			assert.ErrorAs(t, err, tt.errType)
		})
	}
}

func TestNewTaskHouseholdGrounds(t *testing.T) {
	task, err := NewTask(household.Model(), household.TwoCellScenario(), logging.NewNop())
	require.NoError(t, err)

	// move: 1 robot * 2 cells * 2 cells
	var moves int
	for _, a := range task.Actions {
		if a.Schema == household.ActMove {
			moves++
		}
	}
	assert.Equal(t, 4, moves)
	assert.Positive(t, task.Init.Len())
}
