// Package household ships the built-in robot-waiter domain: a robot that
// transports people and dishes between cells, seats people at chairs, and
// serves dishes matching dietary preference. It doubles as the engine's
// reference workload and as the fixture domain for the test suite.
package household

import (
	"github.com/aretw0/strategos/pkg/domain"
)

// Predicate and action names of the household model.
const (
	PredAtRobot      = "at_robot"
	PredAtPerson     = "at_person"
	PredAtDish       = "at_dish"
	PredAtChair      = "at_chair"
	PredAdjacent     = "adjacent"
	PredOccupies     = "occupies"
	PredHolding      = "holding"
	PredHandsFree    = "hands_free"
	PredSeated       = "seated"
	PredServed       = "served"
	PredVeganDish    = "vegan_dish"
	PredPrefersVegan = "prefers_vegan"

	ActMove        = "move"
	ActPickUpDish  = "pick_up_dish"
	ActPutDownDish = "put_down_dish"
	ActSeatPerson  = "seat_person"
	ActServeDish   = "serve_dish"
)

func atom(pred string, args ...domain.Term) domain.Atom {
	return domain.Atom{Predicate: pred, Args: args}
}

// Model builds the household action theory. Types are flat (no subtyping).
func Model() *domain.Model {
	v := domain.Var
	return &domain.Model{
		Name: "household",
		Types: []domain.Type{
			{Name: "robot"},
			{Name: "person"},
			{Name: "cell"},
			{Name: "dish"},
			{Name: "chair"},
		},
		Predicates: []domain.PredicateSchema{
			{Name: PredAtRobot, ArgTypes: []string{"robot", "cell"}},
			{Name: PredAtPerson, ArgTypes: []string{"person", "cell"}},
			{Name: PredAtDish, ArgTypes: []string{"dish", "cell"}},
			{Name: PredAtChair, ArgTypes: []string{"chair", "cell"}},
			{Name: PredAdjacent, ArgTypes: []string{"cell", "cell"}},
			{Name: PredOccupies, ArgTypes: []string{"robot", "cell"}},
			{Name: PredHolding, ArgTypes: []string{"robot", "dish"}},
			{Name: PredHandsFree, ArgTypes: []string{"robot"}},
			{Name: PredSeated, ArgTypes: []string{"person"}},
			{Name: PredServed, ArgTypes: []string{"person"}},
			{Name: PredVeganDish, ArgTypes: []string{"dish"}},
			{Name: PredPrefersVegan, ArgTypes: []string{"person"}},
		},
		Actions: []domain.ActionSchema{
			{
				// The robot may never enter a cell a person stands in.
				Name: ActMove,
				Parameters: []domain.Parameter{
					{Name: "r", Type: "robot"},
					{Name: "from", Type: "cell"},
					{Name: "to", Type: "cell"},
				},
				Precondition: domain.NewAnd(
					atom(PredAtRobot, v("r"), v("from")),
					atom(PredAdjacent, v("from"), v("to")),
					domain.Not{Child: domain.Exists("p", "person", atom(PredAtPerson, v("p"), v("to")))},
				),
				Effect: domain.Effect{
					Dels: []domain.Atom{atom(PredAtRobot, v("r"), v("from"))},
					Adds: []domain.Atom{
						atom(PredAtRobot, v("r"), v("to")),
						atom(PredOccupies, v("r"), v("to")),
					},
					// Clear every previous occupies fact for the mover
					// before the new one lands (adds win over deletes).
					Conditionals: []domain.ConditionalEffect{{
						Variable: domain.Parameter{Name: "c", Type: "cell"},
						When:     atom(PredOccupies, v("r"), v("c")),
						Dels:     []domain.Atom{atom(PredOccupies, v("r"), v("c"))},
					}},
				},
			},
			{
				Name: ActPickUpDish,
				Parameters: []domain.Parameter{
					{Name: "r", Type: "robot"},
					{Name: "d", Type: "dish"},
					{Name: "c", Type: "cell"},
				},
				Precondition: domain.NewAnd(
					atom(PredAtRobot, v("r"), v("c")),
					atom(PredAtDish, v("d"), v("c")),
					atom(PredHandsFree, v("r")),
				),
				Effect: domain.Effect{
					Dels: []domain.Atom{
						atom(PredAtDish, v("d"), v("c")),
						atom(PredHandsFree, v("r")),
					},
					Adds: []domain.Atom{atom(PredHolding, v("r"), v("d"))},
				},
			},
			{
				Name: ActPutDownDish,
				Parameters: []domain.Parameter{
					{Name: "r", Type: "robot"},
					{Name: "d", Type: "dish"},
					{Name: "c", Type: "cell"},
				},
				Precondition: domain.NewAnd(
					atom(PredAtRobot, v("r"), v("c")),
					atom(PredHolding, v("r"), v("d")),
				),
				Effect: domain.Effect{
					Dels: []domain.Atom{atom(PredHolding, v("r"), v("d"))},
					Adds: []domain.Atom{
						atom(PredAtDish, v("d"), v("c")),
						atom(PredHandsFree, v("r")),
					},
				},
			},
			{
				// The robot guides a standing person onto a chair in the
				// person's cell, working from an adjacent cell. No second
				// person may already be seated in that cell; the person
				// themself is excluded from the check via the equality test.
				Name: ActSeatPerson,
				Parameters: []domain.Parameter{
					{Name: "r", Type: "robot"},
					{Name: "p", Type: "person"},
					{Name: "rc", Type: "cell"},
					{Name: "c", Type: "cell"},
					{Name: "ch", Type: "chair"},
				},
				Precondition: domain.NewAnd(
					atom(PredAtRobot, v("r"), v("rc")),
					atom(PredAdjacent, v("rc"), v("c")),
					atom(PredAtPerson, v("p"), v("c")),
					atom(PredAtChair, v("ch"), v("c")),
					domain.Not{Child: atom(PredSeated, v("p"))},
					domain.Not{Child: domain.Exists("p2", "person", domain.NewAnd(
						domain.Not{Child: domain.Equal{Left: v("p2"), Right: v("p")}},
						atom(PredAtPerson, v("p2"), v("c")),
						atom(PredSeated, v("p2")),
					))},
				),
				Effect: domain.Effect{
					Adds: []domain.Atom{atom(PredSeated, v("p"))},
				},
			},
			{
				// Serving happens over the table edge: the robot stands in a
				// cell adjacent to the seated person. The dish must match the
				// dietary preference in both directions.
				Name: ActServeDish,
				Parameters: []domain.Parameter{
					{Name: "r", Type: "robot"},
					{Name: "d", Type: "dish"},
					{Name: "p", Type: "person"},
					{Name: "rc", Type: "cell"},
					{Name: "pc", Type: "cell"},
				},
				Precondition: domain.NewAnd(
					atom(PredAtRobot, v("r"), v("rc")),
					atom(PredAdjacent, v("rc"), v("pc")),
					atom(PredAtPerson, v("p"), v("pc")),
					atom(PredSeated, v("p")),
					atom(PredHolding, v("r"), v("d")),
					domain.Not{Child: atom(PredServed, v("p"))},
					// vegan dish -> vegan preference, non-vegan dish -> not.
					domain.Not{Child: domain.NewAnd(
						atom(PredVeganDish, v("d")),
						domain.Not{Child: atom(PredPrefersVegan, v("p"))},
					)},
					domain.Not{Child: domain.NewAnd(
						domain.Not{Child: atom(PredVeganDish, v("d"))},
						atom(PredPrefersVegan, v("p")),
					)},
				),
				Effect: domain.Effect{
					Dels: []domain.Atom{atom(PredHolding, v("r"), v("d"))},
					Adds: []domain.Atom{
						atom(PredHandsFree, v("r")),
						atom(PredServed, v("p")),
					},
				},
			},
		},
	}
}
