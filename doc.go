/*
Package strategos is a grounded classical-planning engine for typed
STRIPS-style domains: typed objects, predicates, and action schemas with
quantified negative preconditions and forall/when conditional effects.

Given an already-structured model and problem, the Planner grounds every
action schema over the object universe and runs systematic state-space search
(breadth-first, A* with an admissible delete-relaxation heuristic, or
parallel breadth-first) under the closed-world assumption, returning a plan
or a definite NoPlanFound / Inconclusive outcome.

	planner := strategos.New()
	res, err := planner.Solve(ctx, household.Model(), household.TwoCellScenario())

Parsing of any concrete planner syntax, plan execution, and visualization are
out of scope; YAML model files exist only as the CLI harness format.
*/
package strategos
