package strategos_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strategos"
	"github.com/aretw0/strategos/internal/logging"
	"github.com/aretw0/strategos/pkg/adapters/memory"
	"github.com/aretw0/strategos/pkg/domain"
	"github.com/aretw0/strategos/pkg/household"
)

func TestPlannerSolve(t *testing.T) {
	planner := strategos.New(strategos.WithLogger(logging.NewNop()))

	res, err := planner.Solve(context.Background(), household.Model(), household.TwoCellScenario())
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeSolved, res.Outcome)
	require.Len(t, res.Plan.Steps, 2)
	assert.Equal(t, household.ActPickUpDish, res.Plan.Steps[0].Action)
	assert.Equal(t, household.ActServeDish, res.Plan.Steps[1].Action)
}

func TestPlannerSolveStructuralErrors(t *testing.T) {
	planner := strategos.New(strategos.WithLogger(logging.NewNop()))

	problem := household.TwoCellScenario()
	problem.Objects = append(problem.Objects, domain.Object{Name: "x", Type: "spaceship"})

	_, err := planner.Solve(context.Background(), household.Model(), problem)
	var typeErr *domain.UndeclaredTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestPlannerSolveUsesPlanCache(t *testing.T) {
	store := memory.New()
	planner := strategos.New(
		strategos.WithLogger(logging.NewNop()),
		strategos.WithPlanStore(store),
	)

	first, err := planner.Solve(context.Background(), household.Model(), household.TwoCellScenario())
	require.NoError(t, err)
	require.Equal(t, domain.OutcomeSolved, first.Outcome)
	assert.Positive(t, first.NodesExpanded)

	// Same model and problem: answered from the cache without searching.
	second, err := planner.Solve(context.Background(), household.Model(), household.TwoCellScenario())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSolved, second.Outcome)
	assert.Zero(t, second.NodesExpanded)
	assert.Equal(t, first.Plan, second.Plan)

	// A different problem must not hit the cached entry.
	third, err := planner.Solve(context.Background(), household.Model(), household.BlockedCorridorScenario())
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoPlanFound, third.Outcome)
}

func TestPlannerValidate(t *testing.T) {
	planner := strategos.New(strategos.WithLogger(logging.NewNop()))
	model := household.Model()
	problem := household.TwoCellScenario()

	good := &domain.Plan{Steps: []domain.Step{
		{Action: household.ActPickUpDish, Args: []string{"r1", "d1", "c1"}},
		{Action: household.ActServeDish, Args: []string{"r1", "d1", "p1", "c1", "c2"}},
	}}
	assert.NoError(t, planner.Validate(model, problem, good))

	// Serving without holding the dish fails on the precondition.
	outOfOrder := &domain.Plan{Steps: []domain.Step{
		{Action: household.ActServeDish, Args: []string{"r1", "d1", "p1", "c1", "c2"}},
	}}
	err := planner.Validate(model, problem, outOfOrder)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precondition")

	// A step that is no ground action of the problem.
	unknown := &domain.Plan{Steps: []domain.Step{
		{Action: household.ActMove, Args: []string{"r1", "c1", "c9"}},
	}}
	assert.Error(t, planner.Validate(model, problem, unknown))

	// A truncated plan leaves the goal unsatisfied.
	truncated := &domain.Plan{Steps: good.Steps[:1]}
	err = planner.Validate(model, problem, truncated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal")
}

func TestPlannerStrategiesAgree(t *testing.T) {
	model := household.Model()
	problem := household.TwoCellScenario()

	bfs, err := strategos.New(strategos.WithStrategy(strategos.StrategyBFS)).
		Solve(context.Background(), model, problem)
	require.NoError(t, err)
	astar, err := strategos.New(strategos.WithStrategy(strategos.StrategyAStar)).
		Solve(context.Background(), model, problem)
	require.NoError(t, err)

	assert.Equal(t, bfs.Plan, astar.Plan)
}
