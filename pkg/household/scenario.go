package household

import "github.com/aretw0/strategos/pkg/domain"

// TwoCellScenario is the canonical regression fixture for the move
// occupancy exclusion: one robot and a vegan dish in c1, one vegan person
// already seated at the chair in the adjacent c2. The robot can never enter
// c2, so the only way to the goal is picking the dish up and serving it
// across the cell boundary.
func TwoCellScenario() *domain.Problem {
	c := domain.Const
	return &domain.Problem{
		Name:   "two-cell-serve",
		Domain: "household",
		Objects: []domain.Object{
			{Name: "r1", Type: "robot"},
			{Name: "p1", Type: "person"},
			{Name: "d1", Type: "dish"},
			{Name: "c1", Type: "cell"},
			{Name: "c2", Type: "cell"},
			{Name: "ch1", Type: "chair"},
		},
		Init: []domain.Atom{
			atom(PredAdjacent, c("c1"), c("c2")),
			atom(PredAdjacent, c("c2"), c("c1")),
			atom(PredAtRobot, c("r1"), c("c1")),
			atom(PredOccupies, c("r1"), c("c1")),
			atom(PredHandsFree, c("r1")),
			atom(PredAtDish, c("d1"), c("c1")),
			atom(PredVeganDish, c("d1")),
			atom(PredAtPerson, c("p1"), c("c2")),
			atom(PredAtChair, c("ch1"), c("c2")),
			atom(PredSeated, c("p1")),
			atom(PredPrefersVegan, c("p1")),
		},
		Goal: atom(PredServed, c("p1")),
	}
}

// BlockedCorridorScenario is the unreachable counterpart: a standing person
// blocks the middle cell of a three-cell corridor and the goal asks the robot
// to reach the far end. Every route crosses the occupied cell, so the full
// reachable space exhausts without a plan.
func BlockedCorridorScenario() *domain.Problem {
	c := domain.Const
	return &domain.Problem{
		Name:   "blocked-corridor",
		Domain: "household",
		Objects: []domain.Object{
			{Name: "r1", Type: "robot"},
			{Name: "p1", Type: "person"},
			{Name: "c1", Type: "cell"},
			{Name: "c2", Type: "cell"},
			{Name: "c3", Type: "cell"},
		},
		Init: []domain.Atom{
			atom(PredAdjacent, c("c1"), c("c2")),
			atom(PredAdjacent, c("c2"), c("c1")),
			atom(PredAdjacent, c("c2"), c("c3")),
			atom(PredAdjacent, c("c3"), c("c2")),
			atom(PredAtRobot, c("r1"), c("c1")),
			atom(PredOccupies, c("r1"), c("c1")),
			atom(PredHandsFree, c("r1")),
			atom(PredAtPerson, c("p1"), c("c2")),
		},
		Goal: atom(PredAtRobot, c("r1"), c("c3")),
	}
}

// MismatchScenario offers only a non-vegan dish to a vegan person. No plan
// may ever serve it, so the goal is unreachable.
func MismatchScenario() *domain.Problem {
	p := TwoCellScenario()
	p.Name = "dietary-mismatch"
	filtered := p.Init[:0]
	for _, a := range p.Init {
		if a.Predicate == PredVeganDish {
			continue // d1 becomes non-vegan
		}
		filtered = append(filtered, a)
	}
	p.Init = filtered
	return p
}
